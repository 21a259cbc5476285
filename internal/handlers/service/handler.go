package service

import (
	"net/http"

	"localmarket/infras/otel"
	"localmarket/internal/domains/service/model/dto"
	"localmarket/internal/domains/service/service"
	"localmarket/shared/constant"
	"localmarket/shared/failure"
	"localmarket/shared/validator"
	"localmarket/transport/http/middleware"
	"localmarket/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Service
	mw      middleware.Auth
	otel    otel.Otel
}

func New(service service.Service, mw middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		mw:      mw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchServices)
		routerGroup.With(handler.mw.Auth, handler.mw.VendorOnly).Post("/", handler.CreateService)
	})
}

// SearchServices lists active services matching the optional filters.
// @Summary Search service listings
// @Tags Service
// @Produce json
// @Param category query string false "Category id, or 'all'"
// @Param search query string false "Text match on title or description"
// @Param minPrice query number false "Minimum hourly price"
// @Param maxPrice query number false "Maximum hourly price"
// @Param minRating query number false "Minimum average rating"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {array} dto.ListingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/services [get]
func (handler *Handler) SearchServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchServices")
	defer scope.End()

	params := dto.SearchParams{}

	if err := params.FromRequest(request); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse search parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Search(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search services")

		response.WithError(writer, err)

		return
	}

	if res == nil {
		res = []dto.ListingResponse{}
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateService publishes a new listing for the authenticated vendor.
// @Summary Create a service listing
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} dto.CreateServiceResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Service created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}
