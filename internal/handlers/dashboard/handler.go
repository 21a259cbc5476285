package dashboard

import (
	"net/http"

	"localmarket/infras/otel"
	"localmarket/internal/domains/dashboard/service"
	"localmarket/shared/constant"
	"localmarket/shared/failure"
	"localmarket/transport/http/middleware"
	"localmarket/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vendor
	mw      middleware.Auth
	otel    otel.Otel
}

func New(service service.Vendor, mw middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		mw:      mw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vendor", func(routerGroup chi.Router) {
		routerGroup.Use(handler.mw.Auth, handler.mw.VendorOnly)
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard returns the vendor's summary figures.
// @Summary Vendor dashboard
// @Tags Vendor
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/vendor/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Dashboard(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vendor dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
