package seed

import (
	propertyModel "airbnc/internal/domains/property/model"
	"airbnc/shared/timezone"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultAltText = "Image"

// Seed-only row shapes. Unlike the domain models they write created_at, so
// fixture timestamps survive.
type userRow struct {
	ID          int64     `db:"user_id"      insert:"false"`
	FirstName   string    `db:"first_name"`
	Surname     string    `db:"surname"`
	Email       string    `db:"email"`
	PhoneNumber *string   `db:"phone_number"`
	IsHost      bool      `db:"is_host"`
	Avatar      *string   `db:"avatar"`
	CreatedAt   time.Time `db:"created_at"`
}

type reviewRow struct {
	ID         int64     `db:"review_id"   insert:"false"`
	PropertyID int64     `db:"property_id"`
	GuestID    int64     `db:"guest_id"`
	Rating     int       `db:"rating"`
	Comment    *string   `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

type bookingRow struct {
	ID           int64     `db:"booking_id"     insert:"false"`
	PropertyID   int64     `db:"property_id"`
	GuestID      int64     `db:"guest_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	CreatedAt    time.Time `db:"created_at"`
}

// references resolves fixture names to the ids the database assigned.
type references struct {
	users      map[string]int64
	properties map[string]int64
}

func newReferences() references {
	return references{
		users:      map[string]int64{},
		properties: map[string]int64{},
	}
}

func createdAt(t *time.Time) time.Time {
	if t == nil {
		return timezone.Now()
	}

	return *t
}

func propertyTypeRows(fx Fixtures) []propertyModel.PropertyType {
	rows := make([]propertyModel.PropertyType, 0, len(fx.PropertyTypes))

	for _, pt := range fx.PropertyTypes {
		description := pt.Description
		rows = append(rows, propertyModel.PropertyType{PropertyType: pt.PropertyType, Description: &description})
	}

	return rows
}

func toUserRow(u UserFixture) userRow {
	return userRow{
		FirstName:   u.FirstName,
		Surname:     u.Surname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsHost:      u.IsHost,
		Avatar:      u.Avatar,
		CreatedAt:   createdAt(u.CreatedAt),
	}
}

// propertyRows fails on the first property whose host is unknown.
func propertyRows(fx Fixtures, refs references) ([]propertyModel.Property, error) {
	rows := make([]propertyModel.Property, 0, len(fx.Properties))

	for _, p := range fx.Properties {
		hostID, ok := refs.users[p.HostName]
		if !ok {
			return nil, fmt.Errorf("no user found for host_name: %s", p.HostName)
		}

		rows = append(rows, propertyModel.Property{
			HostID:        hostID,
			Name:          p.Name,
			Location:      p.Location,
			PropertyType:  p.PropertyType,
			PricePerNight: p.PricePerNight,
			Description:   p.Description,
		})
	}

	return rows, nil
}

// amenityRows returns every distinct amenity in first-seen order.
func amenityRows(fx Fixtures) []propertyModel.Amenity {
	seen := map[string]struct{}{}
	rows := []propertyModel.Amenity{}

	for _, p := range fx.Properties {
		for _, slug := range p.Amenities {
			if _, ok := seen[slug]; ok {
				continue
			}

			seen[slug] = struct{}{}
			rows = append(rows, propertyModel.Amenity{Slug: slug})
		}
	}

	return rows
}

func propertyAmenityRows(fx Fixtures, refs references) []propertyModel.PropertyAmenity {
	rows := []propertyModel.PropertyAmenity{}

	for _, p := range fx.Properties {
		propertyID, ok := refs.properties[p.Name]
		if !ok {
			continue
		}

		seen := map[string]struct{}{}

		for _, slug := range p.Amenities {
			if _, dup := seen[slug]; dup {
				continue
			}

			seen[slug] = struct{}{}
			rows = append(rows, propertyModel.PropertyAmenity{PropertyID: propertyID, AmenitySlug: slug})
		}
	}

	return rows
}

// reviewRows skips reviews whose property or guest cannot be resolved.
func reviewRows(fx Fixtures, refs references) []reviewRow {
	rows := []reviewRow{}

	for _, r := range fx.Reviews {
		propertyID, ok := refs.properties[r.PropertyName]
		if !ok {
			log.Warn().Str("property_name", r.PropertyName).Msg("No property found, skipping review")

			continue
		}

		guestID, ok := refs.users[r.GuestName]
		if !ok {
			log.Warn().Str("guest_name", r.GuestName).Msg("No user found, skipping review")

			continue
		}

		rows = append(rows, reviewRow{
			PropertyID: propertyID,
			GuestID:    guestID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  createdAt(r.CreatedAt),
		})
	}

	return rows
}

// imageRows fails on the first image whose property is unknown.
func imageRows(fx Fixtures, refs references) ([]propertyModel.Image, error) {
	rows := make([]propertyModel.Image, 0, len(fx.Images))

	for _, img := range fx.Images {
		propertyID, ok := refs.properties[img.PropertyName]
		if !ok {
			return nil, fmt.Errorf("no property found for property_name: %s", img.PropertyName)
		}

		altText := img.AltText
		if altText == "" {
			altText = defaultAltText
		}

		rows = append(rows, propertyModel.Image{PropertyID: propertyID, ImageURL: img.ImageURL, AltText: &altText})
	}

	return rows, nil
}

func favouriteRows(fx Fixtures, refs references) []propertyModel.Favourite {
	rows := []propertyModel.Favourite{}

	for _, f := range fx.Favourites {
		guestID, okGuest := refs.users[f.GuestName]
		propertyID, okProperty := refs.properties[f.PropertyName]

		if !okGuest || !okProperty {
			log.Warn().
				Str("guest_name", f.GuestName).
				Str("property_name", f.PropertyName).
				Msg("Unresolved favourite, skipping")

			continue
		}

		rows = append(rows, propertyModel.Favourite{GuestID: guestID, PropertyID: propertyID})
	}

	return rows
}

// bookingRows skips unresolved bookings and fails on malformed dates.
func bookingRows(fx Fixtures, refs references) ([]bookingRow, error) {
	rows := []bookingRow{}

	for _, b := range fx.Bookings {
		propertyID, okProperty := refs.properties[b.PropertyName]
		guestID, okGuest := refs.users[b.GuestName]

		if !okProperty || !okGuest {
			log.Warn().
				Str("guest_name", b.GuestName).
				Str("property_name", b.PropertyName).
				Msg("Unresolved booking, skipping")

			continue
		}

		checkIn, err := timezone.ParseDate(b.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("booking check_in_date %q: %w", b.CheckInDate, err)
		}

		checkOut, err := timezone.ParseDate(b.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("booking check_out_date %q: %w", b.CheckOutDate, err)
		}

		rows = append(rows, bookingRow{
			PropertyID:   propertyID,
			GuestID:      guestID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			CreatedAt:    createdAt(b.CreatedAt),
		})
	}

	return rows, nil
}
