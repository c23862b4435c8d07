package repository

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/shared/constant"
	"airbnc/shared/dto"
	"airbnc/shared/logger"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name       string
	insertable bool
}

// Queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type Queryer interface {
	sqlx.ExtContext
}

// Repository renders simple single-table statements for the model T. Columns
// come from `db` tags; a field tagged `insert:"false"` is read but never
// written (serial ids, database defaults).
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation)
}

// Get returns the first row matching filter. found is false when there is none.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (model T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.selectColumns(columns...), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.get(ctx, repo.db.Read, &model, query, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, true, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup, orders []dto.OrderBy, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	if len(orders) == 0 {
		orders = []dto.OrderBy{{Column: repo.primaryColumn, SortDir: dto.SortDirAsc}}
	}

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s %s", repo.selectColumns(columns...), repo.table, where, dto.OrderClause(orders...))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	bound, values, err := repo.db.Read.BindNamed(query, args)
	if err == nil {
		err = sqlx.SelectContext(ctx, repo.db.Read, &models, bound, values...)
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

// InsertReturning inserts model and scans the stored row back, so database
// defaults (ids, timestamps) are populated.
func (repo *Repository[T]) InsertReturning(ctx context.Context, model T) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertReturning"))
	defer scope.End()

	return repo.insertReturning(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model T) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertReturningTx"))
	defer scope.End()

	return repo.insertReturning(ctx, sqltx, model)
}

func (repo *Repository[T]) insertReturning(ctx context.Context, q Queryer, model T) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("insertReturning"))
	defer scope.End()

	query := fmt.Sprintf("%s RETURNING %s", repo.insertQuery(), repo.selectColumns())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var stored T

	err := repo.get(ctx, q, &stored, query, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stored, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return stored, nil
}

// DeleteReturning removes the rows matching filter and returns the first one
// removed. found is false when nothing matched.
func (repo *Repository[T]) DeleteReturning(ctx context.Context, filter dto.FilterGroup) (model T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("DeleteReturning"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return model, false, errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s RETURNING %s", repo.table, where, repo.selectColumns())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.get(ctx, repo.db.Write, &model, query, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to delete data (%s): %w", repo.entity, err)
	}

	return model, true, nil
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertBulkTx"))
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqlx.NamedExecContext(ctx, sqltx, query, models)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to bulk insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// BuildWhereClause renders filter with a leading " WHERE ", or "" when the
// group holds no usable filter.
func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) get(ctx context.Context, q Queryer, dest any, query string, arg any) error {
	bound, values, err := q.BindNamed(query, arg)
	if err != nil {
		return fmt.Errorf("failed to bind query: %w", err)
	}

	return sqlx.GetContext(ctx, q, dest, bound, values...) //nolint:wrapcheck
}

func (repo *Repository[T]) insertQuery() string {
	names := []string{}
	placeholders := []string{}

	for _, col := range repo.columns {
		if !col.insertable {
			continue
		}

		names = append(names, col.name)
		placeholders = append(placeholders, ":"+col.name)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) selectColumns(columnsParam ...string) string {
	columns := []string{}

	for _, col := range repo.columns {
		if len(columnsParam) > 0 && !slices.Contains(columnsParam, col.name) {
			continue
		}

		columns = append(columns, col.name)
	}

	return strings.Join(columns, ", ")
}

func getColumns(reflectType reflect.Type) []column {
	columns := []column{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, column{
			name:       dbTag,
			insertable: field.Tag.Get("insert") != "false",
		})
	}

	return columns
}
