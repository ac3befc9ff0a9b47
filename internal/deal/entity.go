// AngelaMos | 2026
// entity.go

package deal

import (
	"time"
)

// Deal is a sales opportunity. Value is stored in cents so arithmetic on
// pipeline totals stays exact.
type Deal struct {
	ID                string     `db:"id"`
	LeadID            *string    `db:"lead_id"`
	Title             string     `db:"title"`
	Value             int64      `db:"value"`
	Stage             string     `db:"stage"`
	Probability       int        `db:"probability"`
	ExpectedCloseDate *time.Time `db:"expected_close_date"`
	ActualCloseDate   *time.Time `db:"actual_close_date"`
	AssignedTo        *string    `db:"assigned_to"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// WithLead is a deal joined against its lead, if any. The lead columns are
// nullable because lead_id is optional and the join is a LEFT JOIN.
type WithLead struct {
	Deal
	LeadName     *string `db:"lead_name"`
	LeadLastName *string `db:"lead_last_name"`
	LeadCompany  *string `db:"lead_company"`
	LeadEmail    *string `db:"lead_email"`
}

// Recognized stages. The column is an open string with a default.
const (
	StageProspecting   = "prospecting"
	StageQualification = "qualification"
	StageProposal      = "proposal"
	StageNegotiation   = "negotiation"
	StageClosedWon     = "closed_won"
	StageClosedLost    = "closed_lost"

	DefaultStage = StageProspecting
)
