package service

import (
	"context"
	"errors"
	"fmt"

	"localmarket/infras/jwt"
	"localmarket/infras/otel"
	"localmarket/internal/domains/auth/model/dto"
	userModel "localmarket/internal/domains/user/model"
	userRepo "localmarket/internal/domains/user/repository"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"
	"localmarket/shared/failure"
	"localmarket/shared/password"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	jwt      jwt.JWT
	otel     otel.Otel
}

func New(userRepo userRepo.User, jwt jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		jwt:      jwt,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.userRepo.Exist(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("User already exists") // nolint:wrapcheck
	}

	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(passwordHash)

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		// The existence pre-check races with concurrent registrations, so the
		// unique constraint on email is mapped to the same conflict.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("User already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.Message = "User created successfully"
	res.Token = token
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if user.ID == 0 {
		return res, failure.ErrInvalidCredentials
	}

	if err := password.Verify(req.Password, user.PasswordHash); err != nil {
		return res, failure.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.Message = "Login successful"
	res.Token = token
	res.User.FromModel(user)

	return res, nil
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}
}
