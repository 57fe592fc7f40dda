package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_BareFieldUsesPrimaryTable(t *testing.T) {
	col, err := Resolve("created")
	require.NoError(t, err)
	assert.Equal(t, "tickets", col.Table)
	assert.Equal(t, "created", col.Name)
	assert.Equal(t, "tickets.created", col.Qualified())
}

func TestResolve_DottedField(t *testing.T) {
	col, err := Resolve("agents.lastname")
	require.NoError(t, err)
	assert.Equal(t, "agents", col.Table)
	assert.Equal(t, "lastname", col.Name)
}

func TestResolve_UnknownTable(t *testing.T) {
	_, err := Resolve("payments.amount")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestResolve_UnknownColumn(t *testing.T) {
	_, err := Resolve("tickets.no_such_column")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = Resolve("agents.password")
	require.Error(t, err, "password must not be searchable")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestJoinClause(t *testing.T) {
	clause, ok := JoinClause("agents")
	require.True(t, ok)
	assert.Equal(t, "agents ON agents.agent_id = tickets.agent_id", clause)

	_, ok = JoinClause("tickets")
	assert.False(t, ok, "primary table has no join")

	_, ok = JoinClause("payments")
	assert.False(t, ok)
}
