package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/internal/domains/property/model"
	"airbnc/shared/constant"
	gDto "airbnc/shared/dto"
	"airbnc/shared/logger"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	listingQuery = `SELECT p.property_id, p.name AS property_name, p.location,
	p.price_per_night AS cost_per_night, p.price_per_night, p.property_type,
	u.first_name || ' ' || u.surname AS host,
	COUNT(f.favourite_id) AS popularity,
	(SELECT i.image_url FROM images i WHERE i.property_id = p.property_id ORDER BY i.image_id LIMIT 1) AS image
FROM properties p
JOIN users u ON p.host_id = u.user_id
LEFT JOIN favourites f ON p.property_id = f.property_id`

	listingGroupBy = "GROUP BY p.property_id, u.user_id"

	detailQuery = `SELECT p.property_id, p.name AS property_name, p.location, p.property_type,
	p.price_per_night, p.description,
	u.first_name || ' ' || u.surname AS host, u.avatar AS host_avatar,
	COUNT(f.favourite_id) AS favourite_count
FROM properties p
JOIN users u ON p.host_id = u.user_id
LEFT JOIN favourites f ON p.property_id = f.property_id
WHERE p.property_id = $1
GROUP BY p.property_id, u.user_id`

	imagesQuery     = "SELECT image_url FROM images WHERE property_id = $1 ORDER BY image_id"
	amenitiesQuery  = "SELECT amenity_slug FROM properties_amenities WHERE property_id = $1 ORDER BY amenity_slug"
	favouritedQuery = "SELECT EXISTS(SELECT 1 FROM favourites WHERE property_id = $1 AND guest_id = $2)"
)

type Property interface {
	GetAll(ctx context.Context, filter gDto.FilterGroup, orders []gDto.OrderBy) ([]model.Listing, error)
	GetDetail(ctx context.Context, id int64) (model.Detail, bool, error)
	GetImages(ctx context.Context, id int64) ([]string, error)
	GetAmenities(ctx context.Context, id int64) ([]string, error)
	IsFavourited(ctx context.Context, propertyID, userID int64) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Property {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// BuildListingQuery renders the listing statement with named parameters.
func BuildListingQuery(filter gDto.FilterGroup, orders []gDto.OrderBy) (string, map[string]any) {
	query := listingQuery

	where, args := filter.GetWhereClause()
	if where != "" {
		query += "\nWHERE " + where
	}

	query += "\n" + listingGroupBy

	if orderClause := gDto.OrderClause(orders...); orderClause != "" {
		query += "\n" + orderClause
	}

	return query, args
}

func (r *repositoryImpl) GetAll(ctx context.Context, filter gDto.FilterGroup, orders []gDto.OrderBy) ([]model.Listing, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.GetAll")
	defer scope.End()

	query, args := BuildListingQuery(filter, orders)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	listings := []model.Listing{}

	bound, values, err := r.db.Read.BindNamed(query, args)
	if err == nil {
		err = sqlx.SelectContext(ctx, r.db.Read, &listings, bound, values...)
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return listings, fmt.Errorf("failed to get properties: %w", err)
	}

	return listings, nil
}

func (r *repositoryImpl) GetDetail(ctx context.Context, id int64) (model.Detail, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.GetDetail")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, detailQuery)

	var detail model.Detail

	err := r.db.Read.GetContext(ctx, &detail, detailQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return detail, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return detail, false, fmt.Errorf("failed to get property detail: %w", err)
	}

	return detail, true, nil
}

func (r *repositoryImpl) GetImages(ctx context.Context, id int64) ([]string, error) {
	return r.selectStrings(ctx, "GetImages", imagesQuery, id)
}

func (r *repositoryImpl) GetAmenities(ctx context.Context, id int64) ([]string, error) {
	return r.selectStrings(ctx, "GetAmenities", amenitiesQuery, id)
}

func (r *repositoryImpl) selectStrings(ctx context.Context, operation, query string, id int64) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property."+operation)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	values := []string{}

	if err := r.db.Read.SelectContext(ctx, &values, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return values, fmt.Errorf("failed to %s: %w", operation, err)
	}

	return values, nil
}

func (r *repositoryImpl) IsFavourited(ctx context.Context, propertyID, userID int64) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.IsFavourited")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, favouritedQuery)

	favourited := false

	if err := r.db.Read.GetContext(ctx, &favourited, favouritedQuery, propertyID, userID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check favourite: %w", err)
	}

	return favourited, nil
}
