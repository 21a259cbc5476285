package user

import (
	"net/http"

	"localmarket/infras/otel"
	"localmarket/internal/domains/user/model/dto"
	"localmarket/internal/domains/user/service"
	"localmarket/shared/constant"
	"localmarket/shared/failure"
	"localmarket/shared/validator"
	"localmarket/transport/http/middleware"
	"localmarket/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	mw      middleware.Auth
	otel    otel.Otel
}

func New(service service.User, mw middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		mw:      mw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Use(handler.mw.Auth)
		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Post("/become-vendor", handler.BecomeVendor)
	})
}

// GetProfile returns the authenticated user's account.
// @Summary Get own profile
// @Tags User
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Profile(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// BecomeVendor flips the caller's vendor flag, optionally updating bio and
// profile photo in the same call.
// @Summary Opt in as a vendor
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.BecomeVendorRequest true "Become Vendor Request"
// @Success 200 {object} dto.BecomeVendorResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/become-vendor [post]
// @Security BearerAuth
func (handler *Handler) BecomeVendor(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BecomeVendor")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.BecomeVendorRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.BecomeVendor(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to become vendor")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User became a vendor")

	response.WithJSON(writer, http.StatusOK, res)
}
