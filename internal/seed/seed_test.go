package seed

import (
	otelMocks "airbnc/infras/otel/mocks"
	"airbnc/infras/postgres"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSet(t *testing.T) {
	assert.Equal(t, "test", DataSet("test"))
	assert.Equal(t, "development", DataSet("development"))
	assert.Equal(t, "development", DataSet("production"))
	assert.Equal(t, "development", DataSet(""))
}

func TestLoad(t *testing.T) {
	for _, env := range []string{"test", "development"} {
		t.Run(env, func(t *testing.T) {
			fx, err := Load(env)

			require.NoError(t, err)
			assert.NotEmpty(t, fx.PropertyTypes)
			assert.NotEmpty(t, fx.Users)
			assert.NotEmpty(t, fx.Properties)
			assert.NotEmpty(t, fx.Reviews)
			assert.NotEmpty(t, fx.Images)
			assert.NotEmpty(t, fx.Favourites)
			assert.NotEmpty(t, fx.Bookings)
		})
	}
}

func TestLoad_FixturesResolve(t *testing.T) {
	for _, env := range []string{"test", "development"} {
		t.Run(env, func(t *testing.T) {
			fx, err := Load(env)
			require.NoError(t, err)

			refs := newReferences()
			for i, u := range fx.Users {
				refs.users[u.FullName()] = int64(i + 1)
			}

			properties, err := propertyRows(fx, refs)
			require.NoError(t, err)

			for i, p := range properties {
				refs.properties[p.Name] = int64(i + 1)
			}

			_, err = imageRows(fx, refs)
			require.NoError(t, err)

			bookings, err := bookingRows(fx, refs)
			require.NoError(t, err)
			assert.Len(t, bookings, len(fx.Bookings))
			assert.Len(t, reviewRows(fx, refs), len(fx.Reviews))
			assert.Len(t, favouriteRows(fx, refs), len(fx.Favourites))

			for _, b := range bookings {
				assert.True(t, b.CheckOutDate.After(b.CheckInDate))
			}
		})
	}
}

func testRefs() references {
	refs := newReferences()
	refs.users["Alice Johnson"] = 1
	refs.users["Bob Smith"] = 2
	refs.properties["Flat"] = 10

	return refs
}

func TestPropertyRows_UnknownHost(t *testing.T) {
	fx := Fixtures{Properties: []PropertyFixture{{Name: "Flat", HostName: "Nobody"}}}

	_, err := propertyRows(fx, testRefs())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nobody")
}

func TestAmenityRows_Distinct(t *testing.T) {
	fx := Fixtures{Properties: []PropertyFixture{
		{Name: "Flat", Amenities: []string{"WiFi", "TV", "WiFi"}},
		{Name: "House", Amenities: []string{"Parking", "TV"}},
	}}

	amenities := amenityRows(fx)
	links := propertyAmenityRows(fx, testRefs())

	require.Len(t, amenities, 3)
	assert.Equal(t, "WiFi", amenities[0].Slug)
	assert.Equal(t, "TV", amenities[1].Slug)
	assert.Equal(t, "Parking", amenities[2].Slug)

	// House is not in the references, Flat lists WiFi twice.
	require.Len(t, links, 2)
	assert.Equal(t, int64(10), links[0].PropertyID)
}

func TestReviewRows_SkipsUnresolved(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	fx := Fixtures{Reviews: []ReviewFixture{
		{GuestName: "Bob Smith", PropertyName: "Flat", Rating: 5, CreatedAt: &created},
		{GuestName: "Nobody", PropertyName: "Flat", Rating: 4},
		{GuestName: "Bob Smith", PropertyName: "Nowhere", Rating: 3},
	}}

	rows := reviewRows(fx, testRefs())

	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].GuestID)
	assert.Equal(t, created, rows[0].CreatedAt)
}

func TestImageRows(t *testing.T) {
	fx := Fixtures{Images: []ImageFixture{{PropertyName: "Flat", ImageURL: "https://example.com/a.jpg"}}}

	rows, err := imageRows(fx, testRefs())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, defaultAltText, *rows[0].AltText)

	fx.Images = append(fx.Images, ImageFixture{PropertyName: "Nowhere"})

	_, err = imageRows(fx, testRefs())
	assert.Error(t, err)
}

func TestBookingRows(t *testing.T) {
	fx := Fixtures{Bookings: []BookingFixture{
		{PropertyName: "Flat", GuestName: "Bob Smith", CheckInDate: "2025-12-01", CheckOutDate: "2025-12-05"},
		{PropertyName: "Flat", GuestName: "Nobody", CheckInDate: "2025-12-01", CheckOutDate: "2025-12-05"},
	}}

	rows, err := bookingRows(fx, testRefs())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].CheckInDate.Day())
	assert.Equal(t, 5, rows[0].CheckOutDate.Day())
	assert.False(t, rows[0].CreatedAt.IsZero())

	fx.Bookings[0].CheckInDate = "01/12/2025"

	_, err = bookingRows(fx, testRefs())
	assert.Error(t, err)
}

func setup(t *testing.T) (*Seeder, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return New(&postgres.Connection{Read: conn, Write: conn}, otelMocks.NewOtel()), mock
}

func TestRun(t *testing.T) {
	seeder, mock := setup(t)
	now := time.Now()
	fx := Fixtures{
		PropertyTypes: []PropertyTypeFixture{{PropertyType: "Apartment", Description: "Flat"}},
		Users:         []UserFixture{{FirstName: "Alice", Surname: "Johnson", Email: "alice@example.com", IsHost: true}},
		Properties: []PropertyFixture{{
			Name: "Flat", PropertyType: "Apartment", Location: "London, UK",
			PricePerNight: 100, HostName: "Alice Johnson", Amenities: []string{"WiFi"},
		}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO property_types").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "first_name", "surname", "email", "phone_number", "is_host", "avatar", "created_at"}).
			AddRow(1, "Alice", "Johnson", "alice@example.com", nil, true, nil, now))
	mock.ExpectQuery("INSERT INTO properties").
		WithArgs(int64(1), "Flat", "London, UK", "Apartment", float64(100), nil).
		WillReturnRows(sqlmock.NewRows([]string{"property_id", "host_id", "name", "location", "property_type", "price_per_night", "description"}).
			AddRow(10, 1, "Flat", "London, UK", "Apartment", 100, nil))
	mock.ExpectExec("INSERT INTO amenities").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO properties_amenities").
		WithArgs(int64(10), "WiFi").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := seeder.Run(context.Background(), fx)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RollsBackOnUnknownHost(t *testing.T) {
	seeder, mock := setup(t)
	fx := Fixtures{Properties: []PropertyFixture{{Name: "Flat", HostName: "Nobody"}}}

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := seeder.Run(context.Background(), fx)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
