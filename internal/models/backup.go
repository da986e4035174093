package models

import "time"

// Backup is the export envelope of the playtime tracker.
type Backup struct {
	Accounts  []Account        `json:"accounts" validate:"dive"`
	Statuses  []AccountStatus  `json:"statuses" validate:"dive"`
	Sessions  []AccountSession `json:"sessions" validate:"dive"`
	Timestamp time.Time        `json:"timestamp"`
}

// Seed is the initial store content loaded at startup.
type Seed struct {
	Factions []Faction `json:"factions" validate:"dive"`
	Users    []User    `json:"users" validate:"dive"`
}
