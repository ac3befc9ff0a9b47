// AngelaMos | 2026
// entity.go

package lead

import (
	"time"
)

// Lead is a prospective customer that has not yet committed to a sale.
type Lead struct {
	ID         string    `db:"id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Phone      *string   `db:"phone"`
	Company    *string   `db:"company"`
	JobTitle   *string   `db:"job_title"`
	Source     *string   `db:"source"`
	Status     string    `db:"status"`
	Notes      *string   `db:"notes"`
	AssignedTo *string   `db:"assigned_to"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Recognized statuses. The column is an open string with a default; callers
// may supply values outside this list and they are stored as given.
const (
	StatusNew        = "new"
	StatusQualified  = "qualified"
	StatusProposal   = "proposal"
	StatusClosedWon  = "closed_won"
	StatusClosedLost = "closed_lost"

	DefaultStatus = StatusNew
)
