package dto

import (
	"airbnc/internal/domains/booking/model"
	"airbnc/shared/constant"
	"airbnc/shared/failure"
	"airbnc/shared/timezone"
	"airbnc/shared/validator"
	"time"
)

type CreateBookingRequest struct {
	GuestID      *int64  `json:"guest_id"`
	CheckInDate  *string `json:"check_in_date"  validate:"omitempty,date"`
	CheckOutDate *string `json:"check_out_date" validate:"omitempty,date"`

	checkIn  time.Time
	checkOut time.Time
}

// Validate rejects absent fields before looking at the dates themselves. A zero
// guest_id or an empty date counts as absent.
func (c *CreateBookingRequest) Validate() error {
	if c.GuestID == nil || *c.GuestID == 0 || c.CheckInDate == nil || *c.CheckInDate == "" ||
		c.CheckOutDate == nil || *c.CheckOutDate == "" {
		return failure.BadRequestFromString(constant.MessageMissingFields) // nolint:wrapcheck
	}

	if err := validator.ValidateStruct(c); err != nil {
		return err //nolint:wrapcheck
	}

	c.checkIn, _ = timezone.ParseDate(*c.CheckInDate)
	c.checkOut, _ = timezone.ParseDate(*c.CheckOutDate)

	if !c.checkOut.After(c.checkIn) {
		return failure.BadRequestFromString(constant.MessageInvalidDateRange) // nolint:wrapcheck
	}

	return nil
}

// ToModel builds the row to insert. Validate must have succeeded.
func (c *CreateBookingRequest) ToModel(propertyID int64) model.Booking {
	return model.Booking{
		PropertyID:   propertyID,
		GuestID:      c.GuestID,
		CheckInDate:  c.checkIn,
		CheckOutDate: c.checkOut,
	}
}

type CreateBookingResponse struct {
	Msg       string `json:"msg"`
	BookingID int64  `json:"booking_id"`
}

type PropertyBookingResponse struct {
	BookingID    int64  `json:"booking_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	CreatedAt    string `json:"created_at"`
}

type GetPropertyBookingsResponse struct {
	PropertyID int64                     `json:"property_id"`
	Bookings   []PropertyBookingResponse `json:"bookings"`
}

func (g *GetPropertyBookingsResponse) FromModels(propertyID int64, models []model.Booking) {
	g.PropertyID = propertyID
	g.Bookings = make([]PropertyBookingResponse, len(models))

	for i, m := range models {
		g.Bookings[i] = PropertyBookingResponse{
			BookingID:    m.ID,
			CheckInDate:  timezone.FormatDate(m.CheckInDate),
			CheckOutDate: timezone.FormatDate(m.CheckOutDate),
			CreatedAt:    timezone.Format(m.CreatedAt, constant.DateFormat),
		}
	}
}

type UserBookingResponse struct {
	BookingID    int64   `json:"booking_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	PropertyID   int64   `json:"property_id"`
	PropertyName string  `json:"property_name"`
	Host         string  `json:"host"`
	Image        *string `json:"image"`
}

type GetUserBookingsResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
}

func (g *GetUserBookingsResponse) FromModels(models []model.GuestBooking) {
	g.Bookings = make([]UserBookingResponse, len(models))

	for i, m := range models {
		g.Bookings[i] = UserBookingResponse{
			BookingID:    m.ID,
			CheckInDate:  timezone.FormatDate(m.CheckInDate),
			CheckOutDate: timezone.FormatDate(m.CheckOutDate),
			PropertyID:   m.PropertyID,
			PropertyName: m.PropertyName,
			Host:         m.Host,
			Image:        m.Image,
		}
	}
}

// NewCreatedEvent renders the event published once b is committed.
func NewCreatedEvent(b model.Booking) model.Created {
	return model.Created{
		BookingID:    b.ID,
		PropertyID:   b.PropertyID,
		GuestID:      b.GuestID,
		CheckInDate:  timezone.FormatDate(b.CheckInDate),
		CheckOutDate: timezone.FormatDate(b.CheckOutDate),
		CreatedAt:    timezone.Format(b.CreatedAt, constant.DateFormat),
	}
}
