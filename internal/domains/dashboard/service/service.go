package service

import (
	"context"
	"fmt"

	"localmarket/infras/otel"
	bookingModel "localmarket/internal/domains/booking/model"
	bookingRepo "localmarket/internal/domains/booking/repository"
	serviceModel "localmarket/internal/domains/service/model"
	serviceRepo "localmarket/internal/domains/service/repository"
	"localmarket/internal/domains/dashboard/model/dto"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Vendor interface {
	Dashboard(ctx context.Context, vendorID int64) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	serviceRepo serviceRepo.Service
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(serviceRepo serviceRepo.Service, bookingRepo bookingRepo.Booking, otel otel.Otel) Vendor {
	return &serviceImpl{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

// Dashboard computes the three vendor aggregates concurrently. They are
// independent reads against the live store, not a consistent snapshot.
func (s *serviceImpl) Dashboard(ctx context.Context, vendorID int64) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := s.serviceRepo.Count(groupCtx, vendorFilter(serviceModel.TableName, vendorID, ""))
		if err != nil {
			return fmt.Errorf("failed to count services: %w", err)
		}

		res.Stats.ServiceCount = count

		return nil
	})

	group.Go(func() error {
		count, err := s.bookingRepo.Count(groupCtx, vendorFilter(bookingModel.TableName, vendorID, bookingModel.StatusPending))
		if err != nil {
			return fmt.Errorf("failed to count pending bookings: %w", err)
		}

		res.Stats.PendingBookings = count

		return nil
	})

	group.Go(func() error {
		total, err := s.bookingRepo.SumCompletedAmount(groupCtx, vendorID)
		if err != nil {
			return fmt.Errorf("failed to sum earnings: %w", err)
		}

		res.Stats.TotalEarnings = total

		return nil
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build vendor dashboard")

		return res, fmt.Errorf("failed to build vendor dashboard: %w", err)
	}

	return res, nil
}

func vendorFilter(table string, vendorID int64, status string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    "vendor_id",
			Value:    vendorID,
			Operator: gDto.FilterOperatorEq,
			Table:    table,
		},
	}

	if status != "" {
		filters = append(filters, gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
			Table:    table,
		})
	}

	return gDto.FilterGroup{Filters: filters}
}
