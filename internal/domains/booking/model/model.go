package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "booking_id"
	FieldPropertyID   = "property_id"
	FieldGuestID      = "guest_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldCreatedAt    = "created_at"
)

// Booking occupies the half-open range [CheckInDate, CheckOutDate) of a
// property. GuestID is nil once the guest has been removed.
type Booking struct {
	ID           int64     `db:"booking_id"     insert:"false"`
	PropertyID   int64     `db:"property_id"`
	GuestID      *int64    `db:"guest_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	CreatedAt    time.Time `db:"created_at"     insert:"false"`
}

// GuestBooking is a booking joined with the property it belongs to.
type GuestBooking struct {
	ID           int64     `db:"booking_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	PropertyID   int64     `db:"property_id"`
	PropertyName string    `db:"property_name"`
	Host         string    `db:"host"`
	Image        *string   `db:"image"`
}

// Created is the payload of the booking.created event.
type Created struct {
	BookingID    int64  `json:"booking_id"`
	PropertyID   int64  `json:"property_id"`
	GuestID      *int64 `json:"guest_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	CreatedAt    string `json:"created_at"`
}
