package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/infras/postgres"
	"localmarket/internal/domains/service/model"
	"localmarket/internal/domains/service/model/dto"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"
	"localmarket/shared/logger"
	gRepo "localmarket/shared/repository"
)

type Service interface {
	Insert(ctx context.Context, model model.Service) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Search(ctx context.Context, params dto.SearchParams) ([]model.Listing, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Service {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const searchSelect = `SELECT
	s.id, s.vendor_id, s.category_id, s.title, s.description, s.price_per_hour,
	s.location, s.photos, s.is_active, s.created_at, s.updated_at,
	u.name AS vendor_name,
	u.profile_photo AS vendor_photo,
	u.bio AS vendor_bio,
	c.name AS category_name,
	c.icon AS category_icon,
	COALESCE(AVG(r.rating), 0) AS average_rating,
	COUNT(r.id) AS review_count
FROM services s
JOIN users u ON s.vendor_id = u.id
JOIN categories c ON s.category_id = c.id
LEFT JOIN reviews r ON s.id = r.service_id`

// buildSearchQuery assembles the listing query: dynamic WHERE conditions,
// review aggregation per service and an aggregate rating threshold in HAVING,
// after the GROUP BY so it constrains the computed average. All values travel
// as named parameters.
func buildSearchQuery(params dto.SearchParams) (string, map[string]any) {
	filter := params.ToFilterGroup()
	where, args := filter.GetWhereClause()

	query := fmt.Sprintf("%s WHERE %s GROUP BY s.id, u.id, c.id", searchSelect, where)

	if params.MinRating != nil {
		args["min_rating"] = *params.MinRating
		query += " HAVING COALESCE(AVG(r.rating), 0) >= :min_rating"
	}

	args["limit"] = params.Limit
	args["offset"] = params.Offset
	query += " ORDER BY s.created_at DESC LIMIT :limit OFFSET :offset"

	return query, args
}

func (repo *repositoryImpl) Search(ctx context.Context, params dto.SearchParams) ([]model.Listing, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Search")
	defer scope.End()

	query, args := buildSearchQuery(params)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var listings []model.Listing

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return listings, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &listings, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return listings, fmt.Errorf("failed to search services: %w", err)
	}

	return listings, nil
}
