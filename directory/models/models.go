// Package models holds the small lookup entities that configure
// ticket routing: roles, SLAs, help topics, statuses, priorities,
// and categories.
package models

import "time"

// Role is a named permission set for agents.
type Role struct {
	RoleID      int64     `db:"role_id" json:"role_id"`
	Name        string    `db:"name" json:"name"`
	Permissions string    `db:"permissions" json:"permissions"`
	Notes       *string   `db:"notes" json:"notes"`
	Updated     time.Time `db:"updated" json:"updated"`
	Created     time.Time `db:"created" json:"created"`
}

// SLA sets the grace period applied to a ticket's estimated due date.
type SLA struct {
	SLAID       int64     `db:"sla_id" json:"sla_id"`
	ScheduleID  *int64    `db:"schedule_id" json:"schedule_id"`
	Name        string    `db:"name" json:"name"`
	GracePeriod int       `db:"grace_period" json:"grace_period"`
	Notes       *string   `db:"notes" json:"notes"`
	Updated     time.Time `db:"updated" json:"updated"`
	Created     time.Time `db:"created" json:"created"`
}

// Topic is a help topic: the submitter-facing category that seeds a new
// ticket's defaults (department, status, priority, SLA, agent, form).
type Topic struct {
	TopicID    int64     `db:"topic_id" json:"topic_id"`
	StatusID   *int64    `db:"status_id" json:"status_id"`
	PriorityID *int64    `db:"priority_id" json:"priority_id"`
	DeptID     *int64    `db:"dept_id" json:"dept_id"`
	AgentID    *int64    `db:"agent_id" json:"agent_id"`
	GroupID    *int64    `db:"group_id" json:"group_id"`
	SLAID      *int64    `db:"sla_id" json:"sla_id"`
	FormID     *int64    `db:"form_id" json:"form_id"`
	AutoResp   int       `db:"auto_resp" json:"auto_resp"`
	Topic      string    `db:"topic" json:"topic"`
	Notes      string    `db:"notes" json:"notes"`
	Updated    time.Time `db:"updated" json:"updated"`
	Created    time.Time `db:"created" json:"created"`
}

// TicketStatus is a workflow state (Open, Resolved, Closed, ...).
type TicketStatus struct {
	StatusID   int64     `db:"status_id" json:"status_id"`
	Name       string    `db:"name" json:"name"`
	State      string    `db:"state" json:"state"`
	Mode       string    `db:"mode" json:"mode"`
	Sort       string    `db:"sort" json:"sort"`
	Properties string    `db:"properties" json:"properties"`
	Updated    time.Time `db:"updated" json:"updated"`
	Created    time.Time `db:"created" json:"created"`
}

// TicketPriority is a seeded urgency level.
type TicketPriority struct {
	PriorityID int64  `db:"priority_id" json:"priority_id"`
	Priority   string `db:"priority" json:"priority"`
	Desc       string `db:"priority_desc" json:"priority_desc"`
	Color      string `db:"priority_color" json:"priority_color"`
	Urgency    int    `db:"priority_urgency" json:"priority_urgency"`
}

// Category groups tickets for reporting.
type Category struct {
	CategoryID int64     `db:"category_id" json:"category_id"`
	Name       string    `db:"name" json:"name"`
	Notes      *string   `db:"notes" json:"notes"`
	GroupID    int64     `db:"group_id" json:"group_id"`
	Updated    time.Time `db:"updated" json:"updated"`
	Created    time.Time `db:"created" json:"created"`
}
