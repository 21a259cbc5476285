package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/internal/domains/user/model"
	"localmarket/internal/domains/user/model/dto"
	"localmarket/internal/domains/user/repository"
	"localmarket/shared"
	"localmarket/shared/constant"
	"localmarket/shared/failure"

	"github.com/rs/zerolog/log"
)

type User interface {
	Profile(ctx context.Context, userID int64) (dto.ProfileResponse, error)
	BecomeVendor(ctx context.Context, userID int64, req dto.BecomeVendorRequest) (dto.BecomeVendorResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Profile(ctx context.Context, userID int64) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("User not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) BecomeVendor(ctx context.Context, userID int64, req dto.BecomeVendorRequest) (res dto.BecomeVendorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BecomeVendor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.PromoteToVendor(ctx, userID, req.Bio, req.ProfilePhoto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, failure.NotFound("User not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to promote user to vendor")

		return res, fmt.Errorf("failed to promote user to vendor: %w", err)
	}

	res.Message = "Successfully became a vendor"
	res.User.FromModel(user)

	return res, nil
}
