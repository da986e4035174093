package models

import "time"

// Action names an activity log event. The set is open: the store records any
// string, the known values below are what the console prints labels for.
type Action string

const (
	ActionLogin         Action = "login"
	ActionLogout        Action = "logout"
	ActionAddMember     Action = "add_member"
	ActionRemoveMember  Action = "remove_member"
	ActionStatusChange  Action = "status_change"
	ActionAddWarning    Action = "add_warning"
	ActionRemoveWarning Action = "remove_warning"
	ActionAddFaction    Action = "add_faction"
	ActionRemoveFaction Action = "remove_faction"
	ActionAddUser       Action = "add_user"
	ActionBlockUser     Action = "block_user"
)

type ActivityLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
