// Package search compiles advanced ticket-search requests (filter
// triples plus sort keys) into executable SQL query fragments.
package search

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTable is returned when a dotted field names a table that
	// is not registered for ticket search.
	ErrUnknownTable = errors.New("unknown table in search field")
	// ErrUnknownColumn is returned when the column does not exist on the
	// resolved table.
	ErrUnknownColumn = errors.New("unknown column in search field")
)

// PrimaryTable is the table a bare (undotted) field name resolves against.
const PrimaryTable = "tickets"

// Column is a fully resolved search field: a registered table plus one
// of its columns.
type Column struct {
	Table string
	Name  string
}

// Qualified returns the table-qualified SQL identifier.
func (c Column) Qualified() string {
	return c.Table + "." + c.Name
}

// tableDef describes one searchable table: the set of columns search
// requests may reference and, for non-primary tables, the JOIN clause
// that links it back to the tickets table.
type tableDef struct {
	columns map[string]struct{}
	join    string
}

func columns(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// registry is the process-wide, read-only schema map for ticket search.
// It is built once at package init and never mutated, so concurrent
// reads need no synchronization. It is the single source of truth for
// which cross-table joins are legal in search.
var registry = map[string]tableDef{
	PrimaryTable: {
		columns: columns(
			"ticket_id", "number", "user_id", "status_id", "dept_id",
			"sla_id", "category_id", "agent_id", "group_id", "priority_id",
			"topic_id", "due_date", "est_due_date", "overdue", "answered",
			"title", "description", "updated", "created",
		),
	},
	"agents": {
		columns: columns(
			"agent_id", "dept_id", "role_id", "email", "username", "phone",
			"firstname", "lastname", "timezone", "admin", "updated", "created",
		),
		join: "agents ON agents.agent_id = tickets.agent_id",
	},
	"users": {
		columns: columns("user_id", "email", "name", "updated", "created"),
		join:    "users ON users.user_id = tickets.user_id",
	},
	"departments": {
		columns: columns(
			"dept_id", "sla_id", "schedule_id", "email", "manager_id",
			"name", "updated", "created",
		),
		join: "departments ON departments.dept_id = tickets.dept_id",
	},
	"ticket_statuses": {
		columns: columns("status_id", "name", "state", "mode", "sort", "updated", "created"),
		join:    "ticket_statuses ON ticket_statuses.status_id = tickets.status_id",
	},
	"ticket_priorities": {
		columns: columns("priority_id", "priority", "priority_desc", "priority_color", "priority_urgency"),
		join:    "ticket_priorities ON ticket_priorities.priority_id = tickets.priority_id",
	},
	"slas": {
		columns: columns("sla_id", "schedule_id", "name", "grace_period", "updated", "created"),
		join:    "slas ON slas.sla_id = tickets.sla_id",
	},
	"categories": {
		columns: columns("category_id", "name", "group_id", "updated", "created"),
		join:    "categories ON categories.category_id = tickets.category_id",
	},
	"groups": {
		columns: columns("group_id", "lead_id", "name", "updated", "created"),
		join:    "groups ON groups.group_id = tickets.group_id",
	},
	"topics": {
		columns: columns(
			"topic_id", "status_id", "priority_id", "dept_id", "agent_id",
			"group_id", "sla_id", "form_id", "auto_resp", "topic", "updated", "created",
		),
		join: "topics ON topics.topic_id = tickets.topic_id",
	},
}

// Resolve maps a search field to a registered table and column. A name
// without a dot resolves against the primary tickets table. Unknown
// tables and unknown columns both fail with an error the compiler
// treats as skip-this-entry, never abort-the-search.
func Resolve(field string) (Column, error) {
	table := PrimaryTable
	column := field
	if idx := strings.Index(field, "."); idx >= 0 {
		table = field[:idx]
		column = field[idx+1:]
	}

	def, ok := registry[table]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	if _, ok := def.columns[column]; !ok {
		return Column{}, fmt.Errorf("%w: %q has no column %q", ErrUnknownColumn, table, column)
	}
	return Column{Table: table, Name: column}, nil
}

// JoinClause returns the JOIN fragment linking table back to the
// tickets table. The primary table needs no join.
func JoinClause(table string) (string, bool) {
	def, ok := registry[table]
	if !ok || def.join == "" {
		return "", false
	}
	return def.join, true
}
