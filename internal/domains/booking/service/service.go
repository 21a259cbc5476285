package service

import (
	"context"
	"errors"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/internal/domains/booking/model/dto"
	"localmarket/internal/domains/booking/repository"
	serviceModel "localmarket/internal/domains/service/model"
	serviceRepo "localmarket/internal/domains/service/repository"
	"localmarket/shared"
	"localmarket/shared/constant"
	"localmarket/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, buyerID int64, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ListForBuyer(ctx context.Context, buyerID int64) ([]dto.BuyerBookingResponse, error)
	ListForVendor(ctx context.Context, vendorID int64) ([]dto.VendorBookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID, vendorID int64, req dto.UpdateStatusRequest) (dto.UpdateStatusResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	serviceRepo serviceRepo.Service
	otel        otel.Otel
}

func New(repo repository.Booking, serviceRepo serviceRepo.Service, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		otel:        otel,
	}
}

// Create books a service for a buyer. The vendor id is copied from the
// service row at this moment and stays on the booking from then on.
func (s *serviceImpl) Create(ctx context.Context, buyerID int64, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == 0 {
		return res, failure.NotFound("Service not found") // nolint:wrapcheck
	}

	booking, err := req.ToModel(buyerID, service.VendorID)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return res, failure.NotFound("Service not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListForBuyer(ctx context.Context, buyerID int64) (res []dto.BuyerBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForBuyer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	views, err := s.repo.ListForBuyer(ctx, buyerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for buyer")

		return res, fmt.Errorf("failed to list bookings for buyer: %w", err)
	}

	return dto.FromBuyerViews(views), nil
}

func (s *serviceImpl) ListForVendor(ctx context.Context, vendorID int64) (res []dto.VendorBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForVendor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	views, err := s.repo.ListForVendor(ctx, vendorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for vendor")

		return res, fmt.Errorf("failed to list bookings for vendor: %w", err)
	}

	return dto.FromVendorViews(views), nil
}

// UpdateStatus transitions a booking on behalf of its snapshotted vendor. A
// booking owned by another vendor is reported as not found rather than
// forbidden, so callers cannot enumerate booking ids.
func (s *serviceImpl) UpdateStatus(ctx context.Context, bookingID, vendorID int64, req dto.UpdateStatusRequest) (res dto.UpdateStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, found, err := s.repo.UpdateStatusForVendor(ctx, bookingID, vendorID, req.Status, req.TotalHours, req.TotalAmount)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !found {
		return res, failure.NotFound("Booking not found or unauthorized") // nolint:wrapcheck
	}

	res.Message = "Booking status updated successfully"
	res.Booking.FromModel(booking)

	return res, nil
}
