package dto

import (
	"airbnc/internal/domains/user/model"
	"airbnc/shared/constant"
	"airbnc/shared/timezone"
)

type UserResponse struct {
	UserID      int64   `json:"user_id"`
	FirstName   string  `json:"first_name"`
	Surname     string  `json:"surname"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	IsHost      bool    `json:"is_host"`
	Avatar      *string `json:"avatar"`
	CreatedAt   string  `json:"created_at"`
}

func (u *UserResponse) FromModel(m model.User) {
	u.UserID = m.ID
	u.FirstName = m.FirstName
	u.Surname = m.Surname
	u.Email = m.Email
	u.PhoneNumber = m.PhoneNumber
	u.IsHost = m.IsHost
	u.Avatar = m.Avatar
	u.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type GetUserResponse struct {
	User UserResponse `json:"user"`
}
