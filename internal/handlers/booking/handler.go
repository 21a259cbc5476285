package booking

import (
	"net/http"
	"strconv"

	"localmarket/infras/otel"
	"localmarket/internal/domains/booking/model/dto"
	"localmarket/internal/domains/booking/service"
	"localmarket/shared/constant"
	"localmarket/shared/failure"
	"localmarket/shared/validator"
	"localmarket/transport/http/middleware"
	"localmarket/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	mw      middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, mw middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		mw:      mw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.mw.Auth)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Put("/{id}/status", handler.UpdateBookingStatus)
	})
}

// CreateBooking sends a booking request for a service.
// @Summary Book a service
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists the caller's bookings, from the buyer side by default or
// from the vendor side with type=vendor.
// @Summary List own bookings
// @Tags Booking
// @Produce json
// @Param type query string false "buyer or vendor (default buyer)"
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if request.URL.Query().Get("type") == "vendor" {
		res, err := handler.service.ListForVendor(ctx, userID)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to list bookings for vendor")

			response.WithError(writer, err)

			return
		}

		if res == nil {
			res = []dto.VendorBookingResponse{}
		}

		response.WithJSON(writer, http.StatusOK, res)

		return
	}

	res, err := handler.service.ListForBuyer(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings for buyer")

		response.WithError(writer, err)

		return
	}

	if res == nil {
		res = []dto.BuyerBookingResponse{}
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBookingStatus transitions a booking owned by the calling vendor.
// @Summary Update a booking's status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} dto.UpdateStatusResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID == 0 {
		err := failure.Unauthorized("Invalid token claims")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bookingID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		badRequest := failure.BadRequestFromString("id must be an integer")

		scope.TraceError(badRequest)
		response.WithError(writer, badRequest)

		return
	}

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, bookingID, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
