// AngelaMos | 2026
// entity.go

package activity

import (
	"time"
)

// Activity is an immutable log entry: a call, email, meeting, or note tied
// to a lead or deal. Activities are append-only, so there is no updated_at.
type Activity struct {
	ID          string    `db:"id"`
	Type        string    `db:"type"`
	Subject     string    `db:"subject"`
	Description *string   `db:"description"`
	LeadID      *string   `db:"lead_id"`
	DealID      *string   `db:"deal_id"`
	UserID      *string   `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// Recognized activity types. The column is an open string.
const (
	TypeCall    = "call"
	TypeEmail   = "email"
	TypeMeeting = "meeting"
	TypeNote    = "note"
)
