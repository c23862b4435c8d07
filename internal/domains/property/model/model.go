package model

const (
	TableName  = "properties"
	EntityName = "property"
	Alias      = "p"

	FieldID            = "property_id"
	FieldHostID        = "host_id"
	FieldName          = "name"
	FieldLocation      = "location"
	FieldPropertyType  = "property_type"
	FieldPricePerNight = "price_per_night"
	FieldDescription   = "description"
)

const (
	PropertyTypeTableName  = "property_types"
	PropertyTypeEntityName = "property_type"

	ImageTableName  = "images"
	ImageEntityName = "image"
	ImageFieldID    = "image_id"

	FavouriteTableName  = "favourites"
	FavouriteEntityName = "favourite"
	FavouriteFieldID    = "favourite_id"

	AmenityTableName  = "amenities"
	AmenityEntityName = "amenity"
	AmenityFieldSlug  = "amenity_slug"

	PropertyAmenityTableName  = "properties_amenities"
	PropertyAmenityEntityName = "property_amenity"
)

const (
	ColumnPopularity = "popularity"
)

type Property struct {
	ID            int64   `db:"property_id"     insert:"false"`
	HostID        int64   `db:"host_id"`
	Name          string  `db:"name"`
	Location      string  `db:"location"`
	PropertyType  string  `db:"property_type"`
	PricePerNight float64 `db:"price_per_night"`
	Description   *string `db:"description"`
}

type PropertyType struct {
	PropertyType string  `db:"property_type"`
	Description  *string `db:"description"`
}

type Image struct {
	ID         int64   `db:"image_id"    insert:"false"`
	PropertyID int64   `db:"property_id"`
	ImageURL   string  `db:"image_url"`
	AltText    *string `db:"alt_text"`
}

type Favourite struct {
	ID         int64 `db:"favourite_id" insert:"false"`
	GuestID    int64 `db:"guest_id"`
	PropertyID int64 `db:"property_id"`
}

type Amenity struct {
	Slug string `db:"amenity_slug"`
}

type PropertyAmenity struct {
	PropertyID  int64  `db:"property_id"`
	AmenitySlug string `db:"amenity_slug"`
}

// Listing is one row of the property listing query.
type Listing struct {
	PropertyID    int64   `db:"property_id"`
	PropertyName  string  `db:"property_name"`
	Location      string  `db:"location"`
	CostPerNight  float64 `db:"cost_per_night"`
	PricePerNight float64 `db:"price_per_night"`
	PropertyType  string  `db:"property_type"`
	Host          string  `db:"host"`
	Popularity    int64   `db:"popularity"`
	Image         *string `db:"image"`
}

// Detail is a property joined with its host and favourite count.
type Detail struct {
	PropertyID     int64   `db:"property_id"`
	PropertyName   string  `db:"property_name"`
	Location       string  `db:"location"`
	PropertyType   string  `db:"property_type"`
	PricePerNight  float64 `db:"price_per_night"`
	Description    *string `db:"description"`
	Host           string  `db:"host"`
	HostAvatar     *string `db:"host_avatar"`
	FavouriteCount int64   `db:"favourite_count"`
}
