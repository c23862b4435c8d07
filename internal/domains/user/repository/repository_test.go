package repository_test

import (
	otelMocks "airbnc/infras/otel/mocks"
	"airbnc/infras/postgres"
	"airbnc/internal/domains/user/repository"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getSQL = "SELECT user_id, first_name, surname, email, phone_number, is_host, avatar, created_at FROM users WHERE (users.user_id = $1) LIMIT 1"

var userColumns = []string{"user_id", "first_name", "surname", "email", "phone_number", "is_host", "avatar", "created_at"}

func setup(t *testing.T) (repository.User, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, otelMocks.NewOtel()), mock
}

func TestGetByID(t *testing.T) {
	repo, mock := setup(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Alice", "Johnson", "alice@example.com", "+44 7000 111111", true, nil, created))

	user, found, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Johnson", user.Surname)
	assert.Equal(t, "+44 7000 111111", *user.PhoneNumber)
	assert.Nil(t, user.Avatar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
		WithArgs(int64(1000)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, found, err := repo.GetByID(context.Background(), 1000)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Error(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSQL)).WillReturnError(errors.New("connection reset"))

	_, found, err := repo.GetByID(context.Background(), 1)

	require.Error(t, err)
	assert.False(t, found)
}
