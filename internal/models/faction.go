package models

// Faction is a named group owning a roster of members.
//
// TotalMembers and OnlineMembers are cached aggregates maintained by the
// store; values supplied by callers are ignored.
type Faction struct {
	ID            int      `json:"id"`
	Name          string   `json:"name" validate:"required,maxgraphemes=64"`
	Color         string   `json:"color" validate:"omitempty,hexcolor"`
	Type          string   `json:"type" validate:"maxgraphemes=32"`
	Description   string   `json:"description" validate:"maxgraphemes=512"`
	Members       []Member `json:"members" validate:"dive"`
	TotalMembers  int      `json:"totalMembers"`
	OnlineMembers int      `json:"onlineMembers"`
}

// FactionPatch holds the editable faction fields. Nil fields are left as is.
type FactionPatch struct {
	Name        *string
	Color       *string
	Type        *string
	Description *string
}
