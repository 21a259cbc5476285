package middleware

import (
	"context"
	"errors"
	"net/http"

	"localmarket/infras/jwt"
	"localmarket/infras/otel"
	userModel "localmarket/internal/domains/user/model"
	userRepo "localmarket/internal/domains/user/repository"
	"localmarket/shared"
	"localmarket/shared/constant"
	"localmarket/shared/failure"
	"localmarket/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards routes behind a bearer token and vendor privilege checks.
type Auth interface {
	Auth(http.Handler) http.Handler
	VendorOnly(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	userRepo   userRepo.User
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, userRepo userRepo.User, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		userRepo:   userRepo,
		otel:       otel,
	}
}

// Auth validates the bearer token and stores the caller's identity in the
// request context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			scope.TraceError(failure.ErrMissingToken)
			scope.End()
			response.WithError(writer, failure.ErrMissingToken)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, failure.ErrMissingToken)

			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			unauthorized := failure.Unauthorized(message)

			scope.TraceError(unauthorized)
			scope.End()
			response.WithError(writer, unauthorized)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// VendorOnly requires a prior Auth middleware and checks the caller's vendor
// flag against the store, so a stale token cannot outlive a revoked flag.
func (m *authImpl) VendorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "vendor.middleware")

		userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
		if !ok || userID == 0 {
			err := failure.Unauthorized("Invalid token claims")

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		user, err := m.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get user for vendor check")

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		if user.ID == 0 {
			notFound := failure.NotFound("User not found")

			scope.TraceError(notFound)
			scope.End()
			response.WithError(writer, notFound)

			return
		}

		if !user.IsVendor {
			scope.TraceError(failure.ErrVendorOnly)
			scope.End()
			response.WithError(writer, failure.ErrVendorOnly)

			return
		}

		scope.End()

		next.ServeHTTP(writer, request)
	})
}
