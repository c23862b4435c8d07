package model

import "time"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "review_id"
	FieldPropertyID = "property_id"
	FieldGuestID    = "guest_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldCreatedAt  = "created_at"
)

type Review struct {
	ID         int64     `db:"review_id"   insert:"false"`
	PropertyID int64     `db:"property_id"`
	GuestID    int64     `db:"guest_id"`
	Rating     int       `db:"rating"`
	Comment    *string   `db:"comment"`
	CreatedAt  time.Time `db:"created_at"  insert:"false"`
}

// PropertyReview is a review joined with its author.
type PropertyReview struct {
	ID          int64     `db:"review_id"`
	Comment     *string   `db:"comment"`
	Rating      int       `db:"rating"`
	CreatedAt   time.Time `db:"created_at"`
	Guest       string    `db:"guest"`
	GuestAvatar *string   `db:"guest_avatar"`
}
