// Package models defines the entities shared by the faction store and the
// playtime tracker. Types carry no behavior beyond small helpers.
package models

// Status is the activity state of a member or tracked account.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAFK     Status = "afk"
	StatusOffline Status = "offline"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOnline, StatusAFK, StatusOffline:
		return true
	}
	return false
}
