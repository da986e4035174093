package models

import "time"

// Account is a named credential tracked for playtime analytics.
type Account struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required,maxgraphemes=64"`
	PasswordHash []byte    `json:"passwordHash,omitempty"`
	Salt         []byte    `json:"salt,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       Status    `json:"status" validate:"omitempty,oneof=online afk offline"`
	LastSeen     time.Time `json:"lastSeen"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountPatch holds the editable account fields. Nil fields are left as is.
type AccountPatch struct {
	Name  *string
	Notes *string
}

// AccountStatus is the current status row of one account.
type AccountStatus struct {
	AccountID string    `json:"accountId" validate:"required"`
	Status    Status    `json:"status" validate:"oneof=online afk offline"`
	Location  string    `json:"location,omitempty"`
	LastSeen  time.Time `json:"lastSeen"`
}

// AccountSession is one activity interval. EndTime and Duration are nil
// while the session is open. Duration is in milliseconds.
type AccountSession struct {
	ID        string     `json:"id" validate:"required"`
	AccountID string     `json:"accountId" validate:"required"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  *int64     `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Status    Status     `json:"status" validate:"omitempty,oneof=online afk offline"`
}

// Open reports whether the session has not been closed yet.
func (s AccountSession) Open() bool {
	return s.EndTime == nil
}
