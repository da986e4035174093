package models

import "time"

type WarningType string

const (
	WarningVerbal  WarningType = "verbal"
	WarningWritten WarningType = "written"
)

// Member is an in-game character. It always belongs to exactly one faction.
type Member struct {
	ID          int       `json:"id"`
	FactionID   int       `json:"factionId"`
	Name        string    `json:"name" validate:"required,maxgraphemes=64"`
	Rank        string    `json:"rank" validate:"maxgraphemes=64"`
	Status      Status    `json:"status" validate:"omitempty,oneof=online afk offline"`
	LastSeen    string    `json:"lastSeen"`
	TotalHours  float64   `json:"totalHours" validate:"gte=0"`
	WeeklyHours float64   `json:"weeklyHours" validate:"gte=0"`
	Warnings    []Warning `json:"warnings"`
	JoinDate    string    `json:"joinDate"`
	Notes       string    `json:"notes,omitempty"`
}

// MemberPatch holds the editable member fields. Nil fields are left as is.
type MemberPatch struct {
	Name        *string
	Rank        *string
	Status      *Status
	TotalHours  *float64
	WeeklyHours *float64
	Notes       *string
}

// Warning is a disciplinary record. Warnings are deactivated, never removed.
type Warning struct {
	ID        string      `json:"id"`
	Type      WarningType `json:"type" validate:"oneof=verbal written"`
	Reason    string      `json:"reason" validate:"required,maxgraphemes=256"`
	AdminID   string      `json:"adminId"`
	AdminName string      `json:"adminName"`
	Timestamp time.Time   `json:"timestamp"`
	IsActive  bool        `json:"isActive"`
}
