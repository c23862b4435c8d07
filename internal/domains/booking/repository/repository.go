package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/internal/domains/booking/model"
	"airbnc/shared"
	"airbnc/shared/constant"
	gDto "airbnc/shared/dto"
	"airbnc/shared/failure"
	"airbnc/shared/logger"
	gRepo "airbnc/shared/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const clashQuery = `SELECT EXISTS(SELECT 1 FROM bookings
WHERE property_id = $1 AND check_out_date > $2 AND check_in_date < $3)`

const guestBookingsQuery = `SELECT b.booking_id, b.check_in_date, b.check_out_date,
	p.property_id, p.name AS property_name,
	u.first_name || ' ' || u.surname AS host,
	(SELECT i.image_url FROM images i WHERE i.property_id = p.property_id ORDER BY i.image_id LIMIT 1) AS image
FROM bookings b
JOIN properties p ON b.property_id = p.property_id
JOIN users u ON p.host_id = u.user_id
WHERE b.guest_id = $1
ORDER BY b.check_in_date ASC, b.booking_id ASC`

var bookingOrders = []gDto.OrderBy{
	{Column: model.FieldCheckInDate, SortDir: gDto.SortDirAsc},
	{Column: model.FieldID, SortDir: gDto.SortDirAsc},
}

type Booking interface {
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetByProperty(ctx context.Context, propertyID int64) ([]model.Booking, error)
	GetByGuest(ctx context.Context, guestID int64) ([]model.GuestBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

var errClash = errors.New("booking dates clash")

// Create checks for a clash and inserts inside one serializable transaction.
// Overlaps caught by the exclusion constraint or by a serialization failure
// are reported the same way as a clash found by the check.
func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) (stored model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, clashQuery)

	err = r.db.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(tx *sqlx.Tx) error {
		clash := false

		err := tx.GetContext(ctx, &clash, clashQuery, booking.PropertyID, booking.CheckInDate, booking.CheckOutDate)
		if err != nil {
			return fmt.Errorf("failed to check booking clash: %w", err)
		}

		if clash {
			return errClash
		}

		stored, err = r.InsertReturningTx(ctx, tx, booking)

		return err //nolint:wrapcheck
	})

	if isClash(err) {
		return stored, failure.BadRequestFromString(constant.MessageBookingClash) // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stored, fmt.Errorf("failed to create booking: %w", err)
	}

	return stored, nil
}

func isClash(err error) bool {
	if errors.Is(err, errClash) {
		return true
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == constant.PqErrorCodeExclusionViolation || pqErr.Code == constant.PqErrorCodeSerializationFailure
}

// GetByProperty lists the bookings of a property by check-in date.
func (r *repositoryImpl) GetByProperty(ctx context.Context, propertyID int64) ([]model.Booking, error) {
	return r.GetAll(ctx, shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName), bookingOrders) //nolint:wrapcheck
}

// GetByGuest lists the bookings made by a guest with their property, host and
// first image, by check-in date.
func (r *repositoryImpl) GetByGuest(ctx context.Context, guestID int64) ([]model.GuestBooking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByGuest")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, guestBookingsQuery)

	bookings := []model.GuestBooking{}

	if err := r.db.Read.SelectContext(ctx, &bookings, guestBookingsQuery, guestID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to get guest bookings: %w", err)
	}

	return bookings, nil
}
