package seed

import (
	"airbnc/shared/constant"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"time"
)

//go:embed data
var fixtureFS embed.FS

const (
	fileNamePropertyTypes = "property_types.json"
	fileNameUsers         = "users.json"
	fileNameProperties    = "properties.json"
	fileNameReviews       = "reviews.json"
	fileNameImages        = "images.json"
	fileNameFavourites    = "favourites.json"
	fileNameBookings      = "bookings.json"
)

type PropertyTypeFixture struct {
	PropertyType string `json:"property_type"`
	Description  string `json:"description"`
}

type UserFixture struct {
	FirstName   string     `json:"first_name"`
	Surname     string     `json:"surname"`
	Email       string     `json:"email"`
	PhoneNumber *string    `json:"phone_number"`
	IsHost      bool       `json:"is_host"`
	Avatar      *string    `json:"avatar"`
	CreatedAt   *time.Time `json:"created_at"`
}

// FullName is the key other fixtures use to refer to a user.
func (u UserFixture) FullName() string {
	return u.FirstName + " " + u.Surname
}

type PropertyFixture struct {
	Name          string   `json:"name"`
	PropertyType  string   `json:"property_type"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	Description   *string  `json:"description"`
	HostName      string   `json:"host_name"`
	Amenities     []string `json:"amenities"`
}

type ReviewFixture struct {
	GuestName    string     `json:"guest_name"`
	PropertyName string     `json:"property_name"`
	Rating       int        `json:"rating"`
	Comment      *string    `json:"comment"`
	CreatedAt    *time.Time `json:"created_at"`
}

type ImageFixture struct {
	PropertyName string `json:"property_name"`
	ImageURL     string `json:"image_url"`
	AltText      string `json:"alt_text"`
}

type FavouriteFixture struct {
	GuestName    string `json:"guest_name"`
	PropertyName string `json:"property_name"`
}

type BookingFixture struct {
	PropertyName string     `json:"property_name"`
	GuestName    string     `json:"guest_name"`
	CheckInDate  string     `json:"check_in_date"`
	CheckOutDate string     `json:"check_out_date"`
	CreatedAt    *time.Time `json:"created_at"`
}

// Fixtures is the whole data set for one environment.
type Fixtures struct {
	PropertyTypes []PropertyTypeFixture
	Users         []UserFixture
	Properties    []PropertyFixture
	Reviews       []ReviewFixture
	Images        []ImageFixture
	Favourites    []FavouriteFixture
	Bookings      []BookingFixture
}

// DataSet maps a server environment to the fixture directory it seeds from.
// Production and unknown environments use the development data.
func DataSet(env string) string {
	if env == constant.ServerEnvTest {
		return constant.ServerEnvTest
	}

	return constant.ServerEnvDevelopment
}

// Load reads the embedded fixtures for env.
func Load(env string) (Fixtures, error) {
	var (
		fx  Fixtures
		dir = path.Join("data", DataSet(env))
	)

	files := []struct {
		name string
		dest any
	}{
		{fileNamePropertyTypes, &fx.PropertyTypes},
		{fileNameUsers, &fx.Users},
		{fileNameProperties, &fx.Properties},
		{fileNameReviews, &fx.Reviews},
		{fileNameImages, &fx.Images},
		{fileNameFavourites, &fx.Favourites},
		{fileNameBookings, &fx.Bookings},
	}

	for _, file := range files {
		raw, err := fixtureFS.ReadFile(path.Join(dir, file.name))
		if err != nil {
			return fx, fmt.Errorf("read fixture %s: %w", file.name, err)
		}

		if err := json.Unmarshal(raw, file.dest); err != nil {
			return fx, fmt.Errorf("decode fixture %s: %w", file.name, err)
		}
	}

	return fx, nil
}
