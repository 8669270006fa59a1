package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"queueup/infras/otel"
	"queueup/infras/postgres"
	"queueup/internal/domains/reservation/model"
	gDto "queueup/shared/dto"
	gRepo "queueup/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateWhere(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Ratings(ctx context.Context, queuerID string) ([]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Ratings returns every non-null client rating recorded for the queuer's
// reservations. The full set feeds the average recomputation, which keeps the
// stored mean idempotent with respect to re-runs.
func (repo *repositoryImpl) Ratings(ctx context.Context, queuerID string) ([]int, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldQueuerID,
				Value:    queuerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldClientRating,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
		},
	}

	models, err := repo.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldClientRating)
	if err != nil {
		return nil, err
	}

	ratings := make([]int, 0, len(models))

	for _, mod := range models {
		if mod.ClientRating != nil {
			ratings = append(ratings, *mod.ClientRating)
		}
	}

	return ratings, nil
}
