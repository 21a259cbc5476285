package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"localmarket/infras/otel"
	"localmarket/infras/postgres"
	"localmarket/internal/domains/user/model"
	"localmarket/shared/constant"
	gDto "localmarket/shared/dto"
	"localmarket/shared/logger"
	gRepo "localmarket/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	PromoteToVendor(ctx context.Context, userID int64, bio, profilePhoto *string) (model.User, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// PromoteToVendor flips the vendor flag and overlays bio/photo only when the
// caller supplied them, keeping the previous values otherwise.
func (repo *repositoryImpl) PromoteToVendor(ctx context.Context, userID int64, bio, profilePhoto *string) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".PromoteToVendor")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET
		is_vendor = TRUE,
		bio = COALESCE(:bio, bio),
		profile_photo = COALESCE(:profile_photo, profile_photo),
		updated_at = CURRENT_TIMESTAMP
	WHERE id = :id
	RETURNING id, name, bio, profile_photo, is_vendor, email, phone, location, password_hash, created_at, updated_at`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":            userID,
		"bio":           bio,
		"profile_photo": profilePhoto,
	}

	var user model.User

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &user, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to promote user to vendor: %w", err)
	}

	return user, nil
}
