package models

import "time"

// User is a system operator of the dashboard, unrelated to Member.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username" validate:"required,maxgraphemes=32"`
	Role         string    `json:"role" validate:"required"`
	Permissions  []string  `json:"permissions"`
	IsBlocked    bool      `json:"isBlocked"`
	FactionID    *int      `json:"factionId,omitempty"`
	LastLogin    time.Time `json:"lastLogin"`
	LastActivity time.Time `json:"lastActivity"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch is shallow-merged into a stored user. Nil fields are left as is.
type UserPatch struct {
	Username     *string
	Role         *string
	Permissions  []string
	IsBlocked    *bool
	FactionID    *int
	LastLogin    *time.Time
	LastActivity *time.Time
}
