package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/infras/postgres"
	"localmarket/internal/domains/booking/model"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"
	"localmarket/shared/logger"
	gRepo "localmarket/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (int64, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListForBuyer(ctx context.Context, buyerID int64) ([]model.BuyerView, error)
	ListForVendor(ctx context.Context, vendorID int64) ([]model.VendorView, error)
	UpdateStatusForVendor(ctx context.Context, bookingID, vendorID int64, status string, totalHours, totalAmount *float64) (model.Booking, bool, error)
	SumCompletedAmount(ctx context.Context, vendorID int64) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const buyerListQuery = `SELECT
	b.id, b.service_id, b.buyer_id, b.vendor_id, b.preferred_date, b.preferred_time,
	b.message, b.status, b.total_hours, b.total_amount, b.created_at, b.updated_at,
	s.title AS service_title,
	u.name AS vendor_name
FROM bookings b
JOIN services s ON b.service_id = s.id
JOIN users u ON b.vendor_id = u.id
WHERE b.buyer_id = :buyer_id
ORDER BY b.created_at DESC`

const vendorListQuery = `SELECT
	b.id, b.service_id, b.buyer_id, b.vendor_id, b.preferred_date, b.preferred_time,
	b.message, b.status, b.total_hours, b.total_amount, b.created_at, b.updated_at,
	s.title AS service_title,
	u.name AS buyer_name
FROM bookings b
JOIN services s ON b.service_id = s.id
JOIN users u ON b.buyer_id = u.id
WHERE b.vendor_id = :vendor_id
ORDER BY b.created_at DESC`

func (repo *repositoryImpl) ListForBuyer(ctx context.Context, buyerID int64) ([]model.BuyerView, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListForBuyer")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, buyerListQuery)

	var views []model.BuyerView

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, buyerListQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return views, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &views, map[string]any{"buyer_id": buyerID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return views, fmt.Errorf("failed to list bookings for buyer: %w", err)
	}

	return views, nil
}

func (repo *repositoryImpl) ListForVendor(ctx context.Context, vendorID int64) ([]model.VendorView, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListForVendor")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, vendorListQuery)

	var views []model.VendorView

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, vendorListQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return views, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &views, map[string]any{"vendor_id": vendorID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return views, fmt.Errorf("failed to list bookings for vendor: %w", err)
	}

	return views, nil
}

// UpdateStatusForVendor transitions a booking owned by the given vendor. The
// vendor id in the WHERE clause is the authorization check: a booking owned
// by someone else matches no row and is reported as not found. totalHours and
// totalAmount overwrite the stored values, including back to NULL.
func (repo *repositoryImpl) UpdateStatusForVendor(ctx context.Context, bookingID, vendorID int64, status string, totalHours, totalAmount *float64) (model.Booking, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateStatusForVendor")
	defer scope.End()

	query := `UPDATE bookings SET
		status = :status,
		total_hours = :total_hours,
		total_amount = :total_amount,
		updated_at = CURRENT_TIMESTAMP
	WHERE id = :id AND vendor_id = :vendor_id
	RETURNING id, service_id, buyer_id, vendor_id, preferred_date, preferred_time,
		message, status, total_hours, total_amount, created_at, updated_at`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":           bookingID,
		"vendor_id":    vendorID,
		"status":       status,
		"total_hours":  totalHours,
		"total_amount": totalAmount,
	}

	var booking model.Booking

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, false, fmt.Errorf("failed to update booking status: %w", err)
	}

	return booking, true, nil
}

// SumCompletedAmount totals the earnings of a vendor over completed bookings.
func (repo *repositoryImpl) SumCompletedAmount(ctx context.Context, vendorID int64) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SumCompletedAmount")
	defer scope.End()

	query := "SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE vendor_id = :vendor_id AND status = :status"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"vendor_id": vendorID,
		"status":    model.StatusCompleted,
	}

	var total float64

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &total, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum completed booking amounts: %w", err)
	}

	return total, nil
}
