package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/gethelpdesk/helpdesk/internal/pkg/log"
)

// Filter is one (field, operator, value) triple from a search request.
type Filter struct {
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
}

// CompiledQuery is the result of compiling one search request. It is
// built per call, consumed once, and not reused.
type CompiledQuery struct {
	Predicates []sq.Sqlizer
	Joins      []string
	OrderBys   []string
}

// Apply attaches the compiled predicates, joins, and ordering to a
// squirrel SELECT over the tickets table.
func (q *CompiledQuery) Apply(builder sq.SelectBuilder) sq.SelectBuilder {
	for _, j := range q.Joins {
		builder = builder.LeftJoin(j)
	}
	for _, p := range q.Predicates {
		builder = builder.Where(p)
	}
	if len(q.OrderBys) > 0 {
		builder = builder.OrderBy(q.OrderBys...)
	}
	return builder
}

// ApplyFilters attaches only joins and predicates, for COUNT queries
// where ordering is meaningless.
func (q *CompiledQuery) ApplyFilters(builder sq.SelectBuilder) sq.SelectBuilder {
	for _, j := range q.Joins {
		builder = builder.LeftJoin(j)
	}
	for _, p := range q.Predicates {
		builder = builder.Where(p)
	}
	return builder
}

// Compile turns a list of filter triples and sort keys into a query
// descriptor. Malformed entries are skipped with a warning so one bad
// filter never kills the whole search; the only hard failure is an
// explicitly unsupported operator. End-user scopes are seeded with a
// mandatory own-tickets predicate that no filter can remove.
func Compile(filters []Filter, sorts []string, scope Scope) (*CompiledQuery, error) {
	return compileAt(filters, sorts, scope, time.Now())
}

func compileAt(filters []Filter, sorts []string, scope Scope, now time.Time) (*CompiledQuery, error) {
	q := &CompiledQuery{}
	joinSet := map[string]struct{}{}

	if scope.EndUser {
		q.Predicates = append(q.Predicates, sq.Eq{"tickets.user_id": scope.UserID})
	}

	for _, f := range filters {
		if special, ok := specialFilters[f.Field]; ok {
			pred, active := special(f.Value, scope, now)
			if active {
				q.Predicates = append(q.Predicates, pred)
			}
			continue
		}

		col, err := Resolve(f.Field)
		if err != nil {
			log.Warn("skipping search filter %q: %v", f.Field, err)
			continue
		}

		pred, err := BuildPredicate(col, f.Operator, f.Value)
		if err != nil {
			if errors.Is(err, ErrNotImplemented) {
				return nil, fmt.Errorf("failed to compile filter on %q: %w", f.Field, err)
			}
			log.Warn("skipping search filter %q: %v", f.Field, err)
			continue
		}

		q.Predicates = append(q.Predicates, pred)
		if col.Table != PrimaryTable {
			joinSet[col.Table] = struct{}{}
		}
	}

	for _, s := range sorts {
		desc := strings.HasPrefix(s, "-")
		name := strings.TrimPrefix(s, "-")

		col, err := Resolve(name)
		if err != nil {
			log.Warn("skipping search sort %q: %v", s, err)
			continue
		}

		direction := " ASC"
		if desc {
			direction = " DESC"
		}
		q.OrderBys = append(q.OrderBys, col.Qualified()+direction)
		if col.Table != PrimaryTable {
			joinSet[col.Table] = struct{}{}
		}
	}

	// Deterministic join order keeps generated SQL stable across runs.
	tables := make([]string, 0, len(joinSet))
	for t := range joinSet {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		if clause, ok := JoinClause(t); ok {
			q.Joins = append(q.Joins, clause)
		}
	}

	log.Debug("compiled ticket search: %d predicates, %d joins, %d sorts", len(q.Predicates), len(q.Joins), len(q.OrderBys))
	return q, nil
}
