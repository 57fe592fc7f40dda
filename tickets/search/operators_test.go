package search

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSQL(t *testing.T, pred sq.Sqlizer) (string, []interface{}) {
	t.Helper()
	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestBuildPredicate_Comparisons(t *testing.T) {
	col := Column{Table: "tickets", Name: "overdue"}

	cases := []struct {
		op   Operator
		want string
	}{
		{OpEq, "tickets.overdue = ?"},
		{OpNeq, "tickets.overdue <> ?"},
		{OpGt, "tickets.overdue > ?"},
		{OpGte, "tickets.overdue >= ?"},
		{OpLt, "tickets.overdue < ?"},
		{OpLte, "tickets.overdue <= ?"},
	}
	for _, tc := range cases {
		pred, err := BuildPredicate(col, tc.op, 1)
		require.NoError(t, err, string(tc.op))
		sql, args := mustSQL(t, pred)
		assert.Equal(t, tc.want, sql)
		assert.Equal(t, []interface{}{1}, args)
	}
}

func TestBuildPredicate_BetweenIsInclusive(t *testing.T) {
	col := Column{Table: "tickets", Name: "created"}
	pred, err := BuildPredicate(col, OpBetween, []interface{}{"2026-01-01", "2026-01-31"})
	require.NoError(t, err)

	sql, args := mustSQL(t, pred)
	assert.Equal(t, "(tickets.created >= ? AND tickets.created <= ?)", sql)
	assert.Equal(t, []interface{}{"2026-01-01", "2026-01-31"}, args)
}

func TestBuildPredicate_BetweenRequiresPair(t *testing.T) {
	col := Column{Table: "tickets", Name: "created"}
	_, err := BuildPredicate(col, OpBetween, []interface{}{"2026-01-01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestBuildPredicate_NotBetweenFailsHard(t *testing.T) {
	col := Column{Table: "tickets", Name: "created"}
	_, err := BuildPredicate(col, OpNotBetween, []interface{}{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestBuildPredicate_InAndNotIn(t *testing.T) {
	col := Column{Table: "tickets", Name: "status_id"}

	pred, err := BuildPredicate(col, OpIn, []interface{}{1, 2, 3})
	require.NoError(t, err)
	sql, args := mustSQL(t, pred)
	assert.Equal(t, "tickets.status_id IN (?,?,?)", sql)
	assert.Len(t, args, 3)

	pred, err = BuildPredicate(col, OpNotIn, []interface{}{1})
	require.NoError(t, err)
	sql, _ = mustSQL(t, pred)
	assert.Equal(t, "tickets.status_id NOT IN (?)", sql)
}

func TestBuildPredicate_EmptyLists(t *testing.T) {
	col := Column{Table: "tickets", Name: "status_id"}

	// Empty IN matches nothing.
	pred, err := BuildPredicate(col, OpIn, []interface{}{})
	require.NoError(t, err)
	sql, _ := mustSQL(t, pred)
	assert.Equal(t, "(1=0)", sql)

	// Empty NOT IN matches everything.
	pred, err = BuildPredicate(col, OpNotIn, []interface{}{})
	require.NoError(t, err)
	sql, _ = mustSQL(t, pred)
	assert.Equal(t, "(1=1)", sql)
}

func TestBuildPredicate_IsHandlesNull(t *testing.T) {
	col := Column{Table: "tickets", Name: "agent_id"}

	pred, err := BuildPredicate(col, OpIs, nil)
	require.NoError(t, err)
	sql, args := mustSQL(t, pred)
	assert.Equal(t, "tickets.agent_id IS NOT DISTINCT FROM ?", sql)
	assert.Equal(t, []interface{}{nil}, args)

	pred, err = BuildPredicate(col, OpIsNot, nil)
	require.NoError(t, err)
	sql, _ = mustSQL(t, pred)
	assert.Equal(t, "tickets.agent_id IS DISTINCT FROM ?", sql)
}

func TestBuildPredicate_LikeVariants(t *testing.T) {
	col := Column{Table: "agents", Name: "lastname"}

	pred, err := BuildPredicate(col, OpLike, "%Smith%")
	require.NoError(t, err)
	sql, args := mustSQL(t, pred)
	assert.Equal(t, "agents.lastname LIKE ?", sql)
	assert.Equal(t, []interface{}{"%Smith%"}, args)

	pred, err = BuildPredicate(col, OpNotILike, "%smith%")
	require.NoError(t, err)
	sql, _ = mustSQL(t, pred)
	assert.Equal(t, "agents.lastname NOT ILIKE ?", sql)
}

func TestBuildPredicate_UnknownFallsBackToEquality(t *testing.T) {
	col := Column{Table: "tickets", Name: "title"}
	pred, err := BuildPredicate(col, Operator("regexp"), "x")
	require.NoError(t, err)

	sql, args := mustSQL(t, pred)
	assert.Equal(t, "tickets.title = ?", sql)
	assert.Equal(t, []interface{}{"x"}, args)
}
