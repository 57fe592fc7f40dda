package models

import (
	"time"

	"github.com/gethelpdesk/helpdesk/tickets/search"
)

// Ticket represents the central support-request row.
type Ticket struct {
	TicketID    int64      `db:"ticket_id" json:"ticket_id"`
	Number      string     `db:"number" json:"number"`
	UserID      *int64     `db:"user_id" json:"user_id"`
	StatusID    *int64     `db:"status_id" json:"status_id"`
	DeptID      *int64     `db:"dept_id" json:"dept_id"`
	SLAID       *int64     `db:"sla_id" json:"sla_id"`
	CategoryID  *int64     `db:"category_id" json:"category_id"`
	AgentID     *int64     `db:"agent_id" json:"agent_id"`
	GroupID     *int64     `db:"group_id" json:"group_id"`
	PriorityID  *int64     `db:"priority_id" json:"priority_id"`
	TopicID     *int64     `db:"topic_id" json:"topic_id"`
	DueDate     *time.Time `db:"due_date" json:"due_date"`
	EstDueDate  *time.Time `db:"est_due_date" json:"est_due_date"`
	Overdue     int16      `db:"overdue" json:"overdue"`
	Answered    int16      `db:"answered" json:"answered"`
	Title       *string    `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Updated     time.Time  `db:"updated" json:"updated"`
	Created     time.Time  `db:"created" json:"created"`
}

// Snapshot returns the ticket's updatable fields keyed by column name,
// for diffing against a proposed update. Explicit field listing keeps
// the audit surface a deliberate choice rather than a reflection sweep.
func (t *Ticket) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"user_id":      t.UserID,
		"status_id":    t.StatusID,
		"dept_id":      t.DeptID,
		"sla_id":       t.SLAID,
		"category_id":  t.CategoryID,
		"agent_id":     t.AgentID,
		"group_id":     t.GroupID,
		"priority_id":  t.PriorityID,
		"topic_id":     t.TopicID,
		"due_date":     t.DueDate,
		"est_due_date": t.EstDueDate,
		"overdue":      t.Overdue,
		"answered":     t.Answered,
		"title":        t.Title,
		"description":  t.Description,
	}
}

// TicketFormValue is one stored custom-form value on a ticket, joined
// with its field's display label for audit records.
type TicketFormValue struct {
	ValueID int64   `db:"value_id" json:"value_id"`
	EntryID int64   `db:"entry_id" json:"entry_id"`
	FieldID *int64  `db:"field_id" json:"field_id"`
	Label   string  `db:"label" json:"label"`
	Value   *string `db:"value" json:"value"`
}

// CreateTicketParams carries a ticket-creation request. The requester
// is identified by email and name; an existing user row is matched by
// email, otherwise one is created.
type CreateTicketParams struct {
	Email       string                 `json:"email"`
	Name        string                 `json:"name"`
	TopicID     int64                  `json:"topic_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	DueDate     *time.Time             `json:"due_date"`
	FormValues  map[int64]string       `json:"form_values"`
	Extra       map[string]interface{} `json:"-"`
}

// UpdateTicketParams is a sparse field-level update plus an optional
// narrative post and form-value batch.
type UpdateTicketParams struct {
	Fields     map[string]interface{} `json:"fields"`
	FormValues map[int64]string       `json:"form_values"`
}

// SearchRequest is the advanced-search payload: filter triples plus
// sort keys plus pagination.
type SearchRequest struct {
	Filters []search.Filter `json:"filters"`
	Sorts   []string        `json:"sorts"`
	Page    int             `json:"page"`
	Size    int             `json:"size"`
}

// SimpleSearchQuery is the query-string form of a search used by GET
// endpoints, decoded with gorilla/schema. Keyword matches against the
// ticket title; the rest map to equality or special filters.
type SimpleSearchQuery struct {
	Keyword  string `schema:"keyword"`
	StatusID int64  `schema:"status_id"`
	AgentID  int64  `schema:"agent_id"`
	Assigned string `schema:"assigned"`
	Period   string `schema:"period"`
	Sort     string `schema:"sort"`
	Page     int    `schema:"page"`
	Size     int    `schema:"size"`
}

// SearchResult is one page of matching tickets.
type SearchResult struct {
	Tickets []Ticket `json:"tickets"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Size    int      `json:"size"`
}

// UpdateResult reports what a ticket update changed.
type UpdateResult struct {
	Ticket     *Ticket `json:"ticket"`
	EventCount int     `json:"event_count"`
	Journal    bool    `json:"journal"`
}
