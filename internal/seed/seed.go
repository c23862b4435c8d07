package seed

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	bookingModel "airbnc/internal/domains/booking/model"
	propertyModel "airbnc/internal/domains/property/model"
	reviewModel "airbnc/internal/domains/review/model"
	userModel "airbnc/internal/domains/user/model"
	"airbnc/shared/constant"
	gRepo "airbnc/shared/repository"
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const truncateQuery = `TRUNCATE TABLE properties_amenities, amenities, bookings, favourites, images,
reviews, properties, users, property_types RESTART IDENTITY CASCADE`

// Seeder replaces every row in the database with a fixture set. The schema
// itself is owned by the migrations.
type Seeder struct {
	db   *postgres.Connection
	otel otel.Otel

	propertyTypes     gRepo.Repository[propertyModel.PropertyType]
	users             gRepo.Repository[userRow]
	properties        gRepo.Repository[propertyModel.Property]
	amenities         gRepo.Repository[propertyModel.Amenity]
	propertyAmenities gRepo.Repository[propertyModel.PropertyAmenity]
	reviews           gRepo.Repository[reviewRow]
	images            gRepo.Repository[propertyModel.Image]
	favourites        gRepo.Repository[propertyModel.Favourite]
	bookings          gRepo.Repository[bookingRow]
}

func New(db *postgres.Connection, otel otel.Otel) *Seeder {
	return &Seeder{
		db:   db,
		otel: otel,

		propertyTypes: gRepo.NewRepository[propertyModel.PropertyType](
			propertyModel.PropertyTypeEntityName, propertyModel.PropertyTypeTableName, propertyModel.FieldPropertyType, db, otel),
		users: gRepo.NewRepository[userRow](
			userModel.EntityName, userModel.TableName, userModel.FieldID, db, otel),
		properties: gRepo.NewRepository[propertyModel.Property](
			propertyModel.EntityName, propertyModel.TableName, propertyModel.FieldID, db, otel),
		amenities: gRepo.NewRepository[propertyModel.Amenity](
			propertyModel.AmenityEntityName, propertyModel.AmenityTableName, propertyModel.AmenityFieldSlug, db, otel),
		propertyAmenities: gRepo.NewRepository[propertyModel.PropertyAmenity](
			propertyModel.PropertyAmenityEntityName, propertyModel.PropertyAmenityTableName, propertyModel.FieldID, db, otel),
		reviews: gRepo.NewRepository[reviewRow](
			reviewModel.EntityName, reviewModel.TableName, reviewModel.FieldID, db, otel),
		images: gRepo.NewRepository[propertyModel.Image](
			propertyModel.ImageEntityName, propertyModel.ImageTableName, propertyModel.ImageFieldID, db, otel),
		favourites: gRepo.NewRepository[propertyModel.Favourite](
			propertyModel.FavouriteEntityName, propertyModel.FavouriteTableName, propertyModel.FavouriteFieldID, db, otel),
		bookings: gRepo.NewRepository[bookingRow](
			bookingModel.EntityName, bookingModel.TableName, bookingModel.FieldID, db, otel),
	}
}

// Run truncates every table and loads fx in a single transaction.
func (s *Seeder) Run(ctx context.Context, fx Fixtures) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seed.Run")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
	}()

	err = s.db.RunInTx(ctx, nil, func(tx *sqlx.Tx) error {
		return s.seed(ctx, tx, fx)
	})
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	log.Info().
		Int("users", len(fx.Users)).
		Int("properties", len(fx.Properties)).
		Int("bookings", len(fx.Bookings)).
		Msg("Database seeded")

	return nil
}

func (s *Seeder) seed(ctx context.Context, tx *sqlx.Tx, fx Fixtures) error {
	if _, err := tx.ExecContext(ctx, truncateQuery); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	if err := s.propertyTypes.InsertBulkTx(ctx, tx, propertyTypeRows(fx)); err != nil {
		return err //nolint:wrapcheck
	}

	refs := newReferences()

	for _, u := range fx.Users {
		stored, err := s.users.InsertReturningTx(ctx, tx, toUserRow(u))
		if err != nil {
			return err //nolint:wrapcheck
		}

		refs.users[u.FullName()] = stored.ID
	}

	properties, err := propertyRows(fx, refs)
	if err != nil {
		return err
	}

	for _, p := range properties {
		stored, err := s.properties.InsertReturningTx(ctx, tx, p)
		if err != nil {
			return err //nolint:wrapcheck
		}

		refs.properties[stored.Name] = stored.ID
	}

	if err := s.amenities.InsertBulkTx(ctx, tx, amenityRows(fx)); err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.propertyAmenities.InsertBulkTx(ctx, tx, propertyAmenityRows(fx, refs)); err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.reviews.InsertBulkTx(ctx, tx, reviewRows(fx, refs)); err != nil {
		return err //nolint:wrapcheck
	}

	images, err := imageRows(fx, refs)
	if err != nil {
		return err
	}

	if err := s.images.InsertBulkTx(ctx, tx, images); err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.favourites.InsertBulkTx(ctx, tx, favouriteRows(fx, refs)); err != nil {
		return err //nolint:wrapcheck
	}

	bookings, err := bookingRows(fx, refs)
	if err != nil {
		return err
	}

	return s.bookings.InsertBulkTx(ctx, tx, bookings) //nolint:wrapcheck
}
