// AngelaMos | 2026
// dto.go

package deal

import (
	"math"
	"time"
)

// Value crosses the wire as a decimal amount (dollars). A pointer keeps an
// explicit 0 distinguishable from an absent field.
type CreateRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Value             *float64   `json:"value" validate:"required,gte=0"`
	LeadID            *string    `json:"leadId,omitempty" validate:"omitempty,uuid"`
	Stage             string     `json:"stage,omitempty" validate:"omitempty,max=50"`
	Probability       *int       `json:"probability,omitempty" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate,omitempty"`
}

type UpdateRequest struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Value             *float64   `json:"value,omitempty" validate:"omitempty,gte=0"`
	LeadID            *string    `json:"leadId,omitempty" validate:"omitempty,uuid"`
	Stage             *string    `json:"stage,omitempty" validate:"omitempty,max=50"`
	Probability       *int       `json:"probability,omitempty" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate,omitempty"`
	ActualCloseDate   *time.Time `json:"actualCloseDate,omitempty"`
}

type Response struct {
	ID                string     `json:"id"`
	LeadID            *string    `json:"leadId"`
	Title             string     `json:"title"`
	Value             int64      `json:"value"`
	Stage             string     `json:"stage"`
	Probability       int        `json:"probability"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
	ActualCloseDate   *time.Time `json:"actualCloseDate"`
	AssignedTo        *string    `json:"assignedTo"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type ListResponse struct {
	Response
	LeadName     *string `json:"leadName"`
	LeadLastName *string `json:"leadLastName"`
	LeadCompany  *string `json:"leadCompany"`
	LeadEmail    *string `json:"leadEmail"`
}

// ToCents converts a wire amount to the stored integer representation,
// rounding half away from zero so 100.005 becomes 10001, not 10000.
func ToCents(value float64) int64 {
	return int64(math.Round(value * 100))
}

func ToResponse(d *Deal) Response {
	return Response{
		ID:                d.ID,
		LeadID:            d.LeadID,
		Title:             d.Title,
		Value:             d.Value,
		Stage:             d.Stage,
		Probability:       d.Probability,
		ExpectedCloseDate: d.ExpectedCloseDate,
		ActualCloseDate:   d.ActualCloseDate,
		AssignedTo:        d.AssignedTo,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func ToListResponse(rows []WithLead) []ListResponse {
	out := make([]ListResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ListResponse{
			Response:     ToResponse(&rows[i].Deal),
			LeadName:     rows[i].LeadName,
			LeadLastName: rows[i].LeadLastName,
			LeadCompany:  rows[i].LeadCompany,
			LeadEmail:    rows[i].LeadEmail,
		})
	}
	return out
}
