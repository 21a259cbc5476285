package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/infras/postgres"
	"localmarket/internal/domains/category/model"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"
	"localmarket/shared/logger"
	gRepo "localmarket/shared/repository"
)

type Category interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Category, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Seed(ctx context.Context, categories []model.Category) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Category]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Category {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Category](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Seed inserts the given categories, skipping ids that already exist.
func (repo *repositoryImpl) Seed(ctx context.Context, categories []model.Category) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Seed")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (id, name, icon, description) VALUES (:id, :name, :icon, :description) ON CONFLICT (id) DO NOTHING",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	for _, category := range categories {
		if _, err := repo.db.Write.NamedExecContext(ctx, query, category); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to seed category (%s): %w", category.ID, err)
		}
	}

	return nil
}
