package models

import "time"

// Group is a working set of agents tickets can be routed to.
type Group struct {
	GroupID int64     `db:"group_id" json:"group_id"`
	LeadID  *int64    `db:"lead_id" json:"lead_id"`
	Name    string    `db:"name" json:"name"`
	Notes   *string   `db:"notes" json:"notes"`
	Updated time.Time `db:"updated" json:"updated"`
	Created time.Time `db:"created" json:"created"`

	// Members is populated on reads; persisted through group_members.
	Members []GroupMember `db:"-" json:"members,omitempty"`
}

// GroupMember links an agent into a group.
type GroupMember struct {
	MemberID int64  `db:"member_id" json:"member_id"`
	GroupID  *int64 `db:"group_id" json:"group_id"`
	AgentID  *int64 `db:"agent_id" json:"agent_id"`
}

// UpsertGroupParams carries group create/update input with the full
// member list; members are replaced wholesale on update.
type UpsertGroupParams struct {
	LeadID   *int64  `json:"lead_id"`
	Name     string  `json:"name"`
	Notes    *string `json:"notes"`
	AgentIDs []int64 `json:"agent_ids"`
}
