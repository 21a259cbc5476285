package service

import (
	"context"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/internal/domains/service/model/dto"
	"localmarket/internal/domains/service/repository"
	"localmarket/shared/constant"

	"github.com/rs/zerolog/log"
)

type Service interface {
	Search(ctx context.Context, params dto.SearchParams) ([]dto.ListingResponse, error)
	Create(ctx context.Context, vendorID int64, req dto.CreateServiceRequest) (dto.CreateServiceResponse, error)
}

type serviceImpl struct {
	repo repository.Service
	otel otel.Otel
}

func New(repo repository.Service, otel otel.Otel) Service {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, params dto.SearchParams) (res []dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listings, err := s.repo.Search(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to search services")

		return res, fmt.Errorf("failed to search services: %w", err)
	}

	return dto.FromModels(listings), nil
}

func (s *serviceImpl) Create(ctx context.Context, vendorID int64, req dto.CreateServiceRequest) (res dto.CreateServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service := req.ToModel(vendorID)

	id, err := s.repo.Insert(ctx, service)
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	service.ID = id
	res.FromModel(service)

	return res, nil
}
