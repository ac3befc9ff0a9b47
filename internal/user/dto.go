// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

// SyncRequest is the body of POST /users. The identity provider is the
// source of truth for profile data; this endpoint mirrors it into the CRM.
// Omitted optional fields overwrite with null on update.
type SyncRequest struct {
	ID        string  `json:"id"        validate:"required"`
	Email     string  `json:"email"     validate:"required,max=255"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName"  validate:"omitempty,max=100"`
	Role      string  `json:"role"      validate:"omitempty,max=50"`
}

type Response struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToResponse(u *User) Response {
	return Response{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToResponseList(users []User) []Response {
	responses := make([]Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(&u))
	}
	return responses
}
