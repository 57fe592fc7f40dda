// Package models holds saved ticket searches ("queues"). A queue
// stores its filter triples and sort keys as JSON and replays them
// through the search compiler on demand.
package models

import (
	"time"

	"github.com/gethelpdesk/helpdesk/tickets/search"
)

// Queue is a saved search. A nil AgentID marks a shared queue.
type Queue struct {
	QueueID int64     `db:"queue_id" json:"queue_id"`
	AgentID *int64    `db:"agent_id" json:"agent_id"`
	Title   string    `db:"title" json:"title"`
	Filters string    `db:"filters" json:"filters"`
	Sorts   string    `db:"sorts" json:"sorts"`
	Updated time.Time `db:"updated" json:"updated"`
	Created time.Time `db:"created" json:"created"`
}

// UpsertQueueParams creates or replaces a queue definition. Filters
// and sorts are validated by compiling them before the row is stored.
type UpsertQueueParams struct {
	Title   string          `json:"title"`
	Shared  bool            `json:"shared"`
	Filters []search.Filter `json:"filters"`
	Sorts   []string        `json:"sorts"`
}
