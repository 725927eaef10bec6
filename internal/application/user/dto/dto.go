package dto

import (
	"time"

	"github.com/deskhub/deskhub/internal/domain/user"
)

type UserDTO struct {
	ID                   uint      `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	Role                 string    `json:"role"`
	IsActive             bool      `json:"is_active"`
	JobTitle             string    `json:"job_title,omitempty"`
	Department           string    `json:"department,omitempty"`
	AvatarURL            string    `json:"avatar_url,omitempty"`
	PhoneNumber          string    `json:"phone_number,omitempty"`
	OfficeLocation       string    `json:"office_location,omitempty"`
	ReceiveNotifications bool      `json:"receive_notifications"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// StaffDTO is the short form used by assignment pickers.
type StaffDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type TokenDTO struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	User        *UserDTO `json:"user"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:                   u.ID(),
		Email:                u.Email().String(),
		FullName:             u.FullName(),
		Role:                 u.Role().String(),
		IsActive:             u.IsActive(),
		JobTitle:             u.JobTitle(),
		Department:           u.Department(),
		AvatarURL:            u.AvatarURL(),
		PhoneNumber:          u.PhoneNumber(),
		OfficeLocation:       u.OfficeLocation(),
		ReceiveNotifications: u.ReceiveNotifications(),
		CreatedAt:            u.CreatedAt(),
		UpdatedAt:            u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

func ToStaffDTOs(users []*user.User) []*StaffDTO {
	out := make([]*StaffDTO, 0, len(users))
	for _, u := range users {
		out = append(out, &StaffDTO{ID: u.ID(), FullName: u.FullName(), Role: u.Role().String()})
	}
	return out
}
