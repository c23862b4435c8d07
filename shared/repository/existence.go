package repository

//go:generate mockgen -source=existence.go -destination=mocks/existence_mock.go -package=mocks

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/shared/constant"
	"airbnc/shared/failure"
	"airbnc/shared/logger"
	"context"
	"fmt"

	"github.com/lib/pq"
)

// Lookup names a single row to look for. Table and Column are quoted as
// identifiers, Value is always bound as a parameter.
type Lookup struct {
	Table      string
	Column     string
	Value      any
	IgnoreCase bool
	Message    string
}

func (l Lookup) query() string {
	table := pq.QuoteIdentifier(l.Table)
	column := pq.QuoteIdentifier(l.Column)

	if l.IgnoreCase {
		return fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE LOWER(%s) = LOWER($1))", table, column)
	}

	return fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", table, column)
}

func (l Lookup) message() string {
	if l.Message != "" {
		return l.Message
	}

	return l.Column + " not found"
}

type Existence interface {
	// Check returns nil when the row exists and a NotFound failure when it does not.
	Check(ctx context.Context, lookup Lookup) error
}

type existenceImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewExistence(db *postgres.Connection, otl otel.Otel) Existence {
	return &existenceImpl{
		db:   db,
		otel: otl,
	}
}

func (e *existenceImpl) Check(ctx context.Context, lookup Lookup) error {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".existence.Check")
	defer scope.End()

	query := lookup.query()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	err := e.db.Read.GetContext(ctx, &exist, query, lookup.Value)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to check %s.%s: %w", lookup.Table, lookup.Column, err)
	}

	if !exist {
		return failure.NotFound(lookup.message()) // nolint:wrapcheck
	}

	return nil
}
