package category

import (
	"net/http"

	"localmarket/infras/otel"
	"localmarket/internal/domains/category/service"
	"localmarket/shared/constant"
	"localmarket/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Category
	otel    otel.Otel
}

func New(service service.Category, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/categories", handler.GetCategories)
}

// GetCategories lists all categories ordered by name.
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} response.Error
// @Router /api/categories [get]
func (handler *Handler) GetCategories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
