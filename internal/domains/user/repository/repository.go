package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/internal/domains/user/model"
	"airbnc/shared"
	gRepo "airbnc/shared/repository"
	"context"
)

type User interface {
	// GetByID returns the user with id. found is false when there is none.
	GetByID(ctx context.Context, id int64) (user model.User, found bool, err error)
}

type repositoryImpl struct {
	users gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		users: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int64) (model.User, bool, error) {
	return r.users.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
