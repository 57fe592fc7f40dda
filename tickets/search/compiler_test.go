package search

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 12, 15, 30, 0, 0, time.UTC) // a Thursday

func TestCompile_FiltersSortsAndJoins(t *testing.T) {
	filters := []Filter{
		{Field: "tickets.overdue", Operator: OpEq, Value: 1},
		{Field: "agents.lastname", Operator: OpLike, Value: "%Smith%"},
	}
	q, err := compileAt(filters, []string{"-created"}, Scope{AgentID: 9}, testNow)
	require.NoError(t, err)

	require.Len(t, q.Predicates, 2)
	require.Len(t, q.Joins, 1)
	assert.Equal(t, "agents ON agents.agent_id = tickets.agent_id", q.Joins[0])
	require.Len(t, q.OrderBys, 1)
	assert.Equal(t, "tickets.created DESC", q.OrderBys[0])
}

func TestCompile_SkipsUnresolvableEntries(t *testing.T) {
	filters := []Filter{
		{Field: "payments.amount", Operator: OpGt, Value: 10},
		{Field: "tickets.bogus", Operator: OpEq, Value: 1},
		{Field: "title", Operator: OpILike, Value: "%printer%"},
	}
	q, err := compileAt(filters, []string{"nope", "number"}, Scope{AgentID: 1}, testNow)
	require.NoError(t, err)

	assert.Len(t, q.Predicates, 1)
	assert.Empty(t, q.Joins)
	require.Len(t, q.OrderBys, 1)
	assert.Equal(t, "tickets.number ASC", q.OrderBys[0])
}

func TestCompile_NotBetweenAbortsCompilation(t *testing.T) {
	filters := []Filter{
		{Field: "created", Operator: OpNotBetween, Value: []interface{}{"a", "b"}},
	}
	_, err := compileAt(filters, nil, Scope{AgentID: 1}, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestCompile_BadValueSkipsEntry(t *testing.T) {
	filters := []Filter{
		{Field: "created", Operator: OpBetween, Value: "not-a-pair"},
		{Field: "overdue", Operator: OpEq, Value: 1},
	}
	q, err := compileAt(filters, nil, Scope{AgentID: 1}, testNow)
	require.NoError(t, err)
	assert.Len(t, q.Predicates, 1)
}

func TestCompile_EndUserScopeSeedsOwnership(t *testing.T) {
	q, err := compileAt(nil, nil, Scope{UserID: 42, EndUser: true}, testNow)
	require.NoError(t, err)

	require.Len(t, q.Predicates, 1)
	sql, args, err := q.Predicates[0].ToSql()
	require.NoError(t, err)
	assert.Equal(t, "tickets.user_id = ?", sql)
	assert.Equal(t, []interface{}{int64(42)}, args)
}

func TestCompile_AssignedMe(t *testing.T) {
	filters := []Filter{{Field: "assigned", Operator: OpEq, Value: "me"}}
	q, err := compileAt(filters, nil, Scope{AgentID: 7}, testNow)
	require.NoError(t, err)

	require.Len(t, q.Predicates, 1)
	sql, args, err := q.Predicates[0].ToSql()
	require.NoError(t, err)
	assert.Equal(t, "tickets.agent_id = ?", sql)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestCompile_AssignedNotMe(t *testing.T) {
	filters := []Filter{{Field: "assigned", Operator: OpEq, Value: "!me"}}
	q, err := compileAt(filters, nil, Scope{AgentID: 7}, testNow)
	require.NoError(t, err)

	require.Len(t, q.Predicates, 1)
	sql, _, err := q.Predicates[0].ToSql()
	require.NoError(t, err)
	assert.Equal(t, "tickets.agent_id <> ?", sql)
}

func TestCompile_AssignedDisabledForEndUsers(t *testing.T) {
	filters := []Filter{{Field: "assigned", Operator: OpEq, Value: "me"}}
	q, err := compileAt(filters, nil, Scope{UserID: 5, EndUser: true}, testNow)
	require.NoError(t, err)

	// Only the ownership seed remains; "assigned" contributes nothing.
	assert.Len(t, q.Predicates, 1)
}

func TestCompile_PeriodBounds(t *testing.T) {
	cases := []struct {
		token string
		want  time.Time
	}{
		{PeriodToday, time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{PeriodThisWeek, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{PeriodThisMonth, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodThisYear, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		filters := []Filter{{Field: "period", Operator: OpEq, Value: tc.token}}
		q, err := compileAt(filters, nil, Scope{AgentID: 1}, testNow)
		require.NoError(t, err, tc.token)
		require.Len(t, q.Predicates, 1, tc.token)

		sql, args, err := q.Predicates[0].ToSql()
		require.NoError(t, err)
		assert.Equal(t, "tickets.created >= ?", sql)
		assert.Equal(t, []interface{}{tc.want}, args, tc.token)
	}
}

func TestCompile_PeriodUnknownTokenIgnored(t *testing.T) {
	filters := []Filter{{Field: "period", Operator: OpEq, Value: "yesterday"}}
	q, err := compileAt(filters, nil, Scope{AgentID: 1}, testNow)
	require.NoError(t, err)
	assert.Empty(t, q.Predicates)
}

func TestCompiledQuery_Apply(t *testing.T) {
	filters := []Filter{
		{Field: "ticket_statuses.state", Operator: OpEq, Value: "open"},
		{Field: "agents.lastname", Operator: OpLike, Value: "%Lee%"},
	}
	q, err := compileAt(filters, []string{"-created", "number"}, Scope{AgentID: 1}, testNow)
	require.NoError(t, err)

	builder := q.Apply(
		sq.Select("tickets.*").From("tickets").PlaceholderFormat(sq.Dollar),
	)
	sql, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "LEFT JOIN agents ON agents.agent_id = tickets.agent_id")
	assert.Contains(t, sql, "LEFT JOIN ticket_statuses ON ticket_statuses.status_id = tickets.status_id")
	assert.Contains(t, sql, "ORDER BY tickets.created DESC, tickets.number ASC")
	assert.Contains(t, sql, "$1")
	assert.Len(t, args, 2)
}
