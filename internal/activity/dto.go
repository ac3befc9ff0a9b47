// AngelaMos | 2026
// dto.go

package activity

import (
	"time"
)

type CreateRequest struct {
	Type        string  `json:"type" validate:"required,max=50"`
	Subject     string  `json:"subject" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
	LeadID      *string `json:"leadId,omitempty" validate:"omitempty,uuid"`
	DealID      *string `json:"dealId,omitempty" validate:"omitempty,uuid"`
}

type Response struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	Description *string   `json:"description"`
	LeadID      *string   `json:"leadId"`
	DealID      *string   `json:"dealId"`
	UserID      *string   `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToResponse(a *Activity) Response {
	return Response{
		ID:          a.ID,
		Type:        a.Type,
		Subject:     a.Subject,
		Description: a.Description,
		LeadID:      a.LeadID,
		DealID:      a.DealID,
		UserID:      a.UserID,
		CreatedAt:   a.CreatedAt,
	}
}

func ToResponseList(activities []Activity) []Response {
	out := make([]Response, 0, len(activities))
	for i := range activities {
		out = append(out, ToResponse(&activities[i]))
	}
	return out
}
