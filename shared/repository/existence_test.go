package repository_test

import (
	"airbnc/infras/otel/mocks"
	"airbnc/shared/failure"
	"airbnc/shared/repository"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistence_Check(t *testing.T) {
	tests := []struct {
		name        string
		lookup      repository.Lookup
		query       string
		exists      bool
		wantMessage string
	}{
		{
			name:   "row exists",
			lookup: repository.Lookup{Table: "users", Column: "user_id", Value: int64(1), Message: "User not found"},
			query:  `SELECT EXISTS(SELECT 1 FROM "users" WHERE "user_id" = $1)`,
			exists: true,
		},
		{
			name:        "row missing uses message",
			lookup:      repository.Lookup{Table: "users", Column: "user_id", Value: int64(1), Message: "User not found"},
			query:       `SELECT EXISTS(SELECT 1 FROM "users" WHERE "user_id" = $1)`,
			wantMessage: "User not found",
		},
		{
			name:        "ignore case with default message",
			lookup:      repository.Lookup{Table: "property_types", Column: "property_type", Value: "HOUSE", IgnoreCase: true},
			query:       `SELECT EXISTS(SELECT 1 FROM "property_types" WHERE LOWER("property_type") = LOWER($1))`,
			wantMessage: "property_type not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			existence := repository.NewExistence(conn, mocks.NewOtel())

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.lookup.Value).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			err := existence.Check(context.Background(), tt.lookup)

			if tt.wantMessage == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, failure.Is(err, failure.KindNotFound))
				assert.Equal(t, tt.wantMessage, err.Error())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExistence_Check_QueryError(t *testing.T) {
	conn, mock := newConnection(t)
	existence := repository.NewExistence(conn, mocks.NewOtel())

	mock.ExpectQuery("SELECT EXISTS").WillReturnError(errors.New("connection refused"))

	err := existence.Check(context.Background(), repository.Lookup{Table: "properties", Column: "property_id", Value: int64(2)})

	require.Error(t, err)
	assert.Equal(t, failure.KindInternal, failure.KindOf(err))
}
