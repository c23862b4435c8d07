package model

import "time"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "user_id"
	FieldFirstName   = "first_name"
	FieldSurname     = "surname"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldIsHost      = "is_host"
	FieldAvatar      = "avatar"
	FieldCreatedAt   = "created_at"
)

type User struct {
	ID          int64     `db:"user_id"      insert:"false"`
	FirstName   string    `db:"first_name"`
	Surname     string    `db:"surname"`
	Email       string    `db:"email"`
	PhoneNumber *string   `db:"phone_number"`
	IsHost      bool      `db:"is_host"`
	Avatar      *string   `db:"avatar"`
	CreatedAt   time.Time `db:"created_at"   insert:"false"`
}
