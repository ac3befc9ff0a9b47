// AngelaMos | 2026
// dto.go

package lead

import (
	"time"
)

type CreateRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=255"`
	LastName  string  `json:"lastName" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company   *string `json:"company,omitempty" validate:"omitempty,max=255"`
	JobTitle  *string `json:"jobTitle,omitempty" validate:"omitempty,max=255"`
	Source    *string `json:"source,omitempty" validate:"omitempty,max=100"`
	Status    string  `json:"status,omitempty" validate:"omitempty,max=50"`
	Notes     *string `json:"notes,omitempty"`
}

type UpdateRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=255"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=255"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company   *string `json:"company,omitempty" validate:"omitempty,max=255"`
	JobTitle  *string `json:"jobTitle,omitempty" validate:"omitempty,max=255"`
	Source    *string `json:"source,omitempty" validate:"omitempty,max=100"`
	Status    *string `json:"status,omitempty" validate:"omitempty,max=50"`
	Notes     *string `json:"notes,omitempty"`
}

type Response struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Company    *string   `json:"company"`
	JobTitle   *string   `json:"jobTitle"`
	Source     *string   `json:"source"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	AssignedTo *string   `json:"assignedTo"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToResponse(l *Lead) Response {
	return Response{
		ID:         l.ID,
		FirstName:  l.FirstName,
		LastName:   l.LastName,
		Email:      l.Email,
		Phone:      l.Phone,
		Company:    l.Company,
		JobTitle:   l.JobTitle,
		Source:     l.Source,
		Status:     l.Status,
		Notes:      l.Notes,
		AssignedTo: l.AssignedTo,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func ToResponseList(leads []Lead) []Response {
	out := make([]Response, 0, len(leads))
	for i := range leads {
		out = append(out, ToResponse(&leads[i]))
	}
	return out
}
