package search

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Scope carries the identity of whoever is running the search. Agent
// searches see every ticket; end-user searches are pinned to the
// requesting user's own tickets.
type Scope struct {
	AgentID int64
	UserID  int64
	EndUser bool
}

// Period tokens accepted by the "period" special filter.
const (
	PeriodToday     = "td"
	PeriodThisWeek  = "tw"
	PeriodThisMonth = "tm"
	PeriodThisYear  = "ty"
)

// specialFilter intercepts a filter triple before generic column
// resolution. Returning (nil, false) means the filter is contextually
// disabled and contributes no predicate; it is not an error.
type specialFilter func(value interface{}, scope Scope, now time.Time) (sq.Sqlizer, bool)

var specialFilters = map[string]specialFilter{
	"assigned": assignedFilter,
	"period":   periodFilter,
}

// assignedFilter handles the "assigned" virtual column: "me" matches
// tickets assigned to the searching agent, "!me" matches everything
// else. End-user searches have no agent identity, so the filter is
// disabled for them.
func assignedFilter(value interface{}, scope Scope, _ time.Time) (sq.Sqlizer, bool) {
	if scope.EndUser || scope.AgentID == 0 {
		return nil, false
	}
	switch value {
	case "me":
		return sq.Eq{"tickets.agent_id": scope.AgentID}, true
	case "!me":
		return sq.NotEq{"tickets.agent_id": scope.AgentID}, true
	default:
		return nil, false
	}
}

// periodFilter restricts tickets to those created since the start of
// today, this week, this month, or this year. Weeks start on Monday.
func periodFilter(value interface{}, _ Scope, now time.Time) (sq.Sqlizer, bool) {
	token, ok := value.(string)
	if !ok {
		return nil, false
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var since time.Time
	switch token {
	case PeriodToday:
		since = dayStart
	case PeriodThisWeek:
		offset := (int(now.Weekday()) + 6) % 7
		since = dayStart.AddDate(0, 0, -offset)
	case PeriodThisMonth:
		since = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodThisYear:
		since = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, false
	}

	return sq.GtOrEq{"tickets.created": since}, true
}
