package service

import (
	"context"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/internal/domains/category/model"
	"localmarket/internal/domains/category/model/dto"
	"localmarket/internal/domains/category/repository"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"

	"github.com/rs/zerolog/log"
)

type Category interface {
	GetAll(ctx context.Context) ([]dto.CategoryResponse, error)
}

type serviceImpl struct {
	repo repository.Category
	otel otel.Otel
}

func New(repo repository.Category, otel otel.Otel) Category {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	categories, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	return dto.FromModels(categories), nil
}
