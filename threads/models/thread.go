package models

import "time"

// Thread is the conversation and audit trail attached to one ticket.
type Thread struct {
	ThreadID int64     `db:"thread_id" json:"thread_id"`
	TicketID int64     `db:"ticket_id" json:"ticket_id"`
	Updated  time.Time `db:"updated" json:"updated"`
	Created  time.Time `db:"created" json:"created"`
}

// Entry types stored in thread_entries.type.
const (
	EntryTypeNote     = "A" // internal journal note
	EntryTypeMessage  = "M" // message from the end user
	EntryTypeResponse = "R" // agent response
)

// ThreadEntry is a narrative post (note, message, or response) in a thread.
type ThreadEntry struct {
	EntryID    int64     `db:"entry_id" json:"entry_id"`
	ThreadID   int64     `db:"thread_id" json:"thread_id"`
	AgentID    *int64    `db:"agent_id" json:"agent_id"`
	UserID     *int64    `db:"user_id" json:"user_id"`
	Type       string    `db:"type" json:"type"`
	Owner      string    `db:"owner" json:"owner"`
	Editor     *string   `db:"editor" json:"editor"`
	Subject    *string   `db:"subject" json:"subject"`
	Body       string    `db:"body" json:"body"`
	Recipients *string   `db:"recipients" json:"recipients"`
	Updated    time.Time `db:"updated" json:"updated"`
	Created    time.Time `db:"created" json:"created"`
}

// ThreadEvent is a structured, append-only change record in a thread.
// Data holds a serialized change record; its JSON shape is durable.
type ThreadEvent struct {
	EventID  int64     `db:"event_id" json:"event_id"`
	ThreadID int64     `db:"thread_id" json:"thread_id"`
	Type     string    `db:"type" json:"type"`
	AgentID  *int64    `db:"agent_id" json:"agent_id"`
	Owner    string    `db:"owner" json:"owner"`
	UserID   *int64    `db:"user_id" json:"user_id"`
	GroupID  *int64    `db:"group_id" json:"group_id"`
	DeptID   *int64    `db:"dept_id" json:"dept_id"`
	Data     string    `db:"data" json:"data"`
	Created  time.Time `db:"created" json:"created"`
}

// ThreadCollaborator is a user cc'd on a thread.
type ThreadCollaborator struct {
	CollabID int64     `db:"collab_id" json:"collab_id"`
	ThreadID int64     `db:"thread_id" json:"thread_id"`
	UserID   *int64    `db:"user_id" json:"user_id"`
	Role     string    `db:"role" json:"role"`
	Updated  time.Time `db:"updated" json:"updated"`
	Created  time.Time `db:"created" json:"created"`
}
