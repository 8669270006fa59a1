package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"queueup/infras/otel"
	"queueup/infras/postgres"
	"queueup/internal/domains/profile/model"
	"queueup/shared"
	"queueup/shared/constant"
	gDto "queueup/shared/dto"
	"queueup/shared/logger"
	gRepo "queueup/shared/repository"
	"queueup/shared/timezone"
)

type Profile interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Profile, error)
	GetByUserID(ctx context.Context, userID string) (model.Profile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateWhere(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	IncrementCompletedQueues(ctx context.Context, id, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Profile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Profile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByUserID resolves the profile owned by an identity-provider principal.
func (repo *repositoryImpl) GetByUserID(ctx context.Context, userID string) (model.Profile, error) {
	return repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}

// IncrementCompletedQueues bumps the queuer's completion counter in a single
// statement, so concurrent completions never overwrite each other's count.
func (repo *repositoryImpl) IncrementCompletedQueues(ctx context.Context, id, actor string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.IncrementCompletedQueues", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + 1, %s = :modified_at, %s = :modified_by WHERE %s = :id",
		model.TableName,
		model.FieldCompletedQueues, model.FieldCompletedQueues,
		constant.FieldModifiedAt, constant.FieldModifiedBy,
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          id,
		"modified_at": timezone.Now(),
		"modified_by": actor,
	}

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment completed queues (%s): %w", model.EntityName, err)
	}

	return nil
}
