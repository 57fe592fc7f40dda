package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLookup(labels map[int64]string) Lookup {
	return LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
		label, ok := labels[id]
		return label, ok, nil
	})
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ChangeAdded, Classify(nil, "x"))
	assert.Equal(t, ChangeRemoved, Classify("x", nil))
	assert.Equal(t, ChangeModified, Classify("x", "y"))
	// Both-absent falls through to Added; persisted events depend on it.
	assert.Equal(t, ChangeAdded, Classify(nil, nil))
}

func TestDiff_EqualitySuppressesEvents(t *testing.T) {
	engine := NewEngine(nil)
	agentID := int64(3)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"title": "Printer down", "agent_id": &agentID},
		map[string]interface{}{"title": "Printer down", "agent_id": float64(3)},
	)
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	assert.Nil(t, res.Entry)
	assert.Len(t, res.Update, 2, "update still carries the fields for the write")
}

func TestDiff_ForeignKeyModified(t *testing.T) {
	engine := NewEngine(map[string]Lookup{
		"agent_id": staticLookup(map[int64]string{3: "Jane Doe", 7: "Sam Lee"}),
	})
	prev := int64(3)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"agent_id": &prev, "status_id": int64(1)},
		map[string]interface{}{"agent_id": float64(7)},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)

	ev := res.Events[0]
	assert.Equal(t, ChangeModified, ev.Type)
	assert.Equal(t, "agent_id", ev.Record.Field)
	require.NotNil(t, ev.Record.PrevID)
	require.NotNil(t, ev.Record.NewID)
	assert.Equal(t, int64(3), *ev.Record.PrevID)
	assert.Equal(t, int64(7), *ev.Record.NewID)
	assert.Equal(t, "Jane Doe", ev.Record.PrevVal)
	assert.Equal(t, "Sam Lee", ev.Record.NewVal)
}

func TestDiff_ForeignKeyAddedFromNull(t *testing.T) {
	engine := NewEngine(map[string]Lookup{
		"status_id": staticLookup(map[int64]string{2: "Resolved"}),
	})
	var prev *int64

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"status_id": prev},
		map[string]interface{}{"status_id": float64(2)},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)

	ev := res.Events[0]
	assert.Equal(t, ChangeAdded, ev.Type)
	assert.Nil(t, ev.Record.PrevID)
	assert.Nil(t, ev.Record.PrevVal)
	require.NotNil(t, ev.Record.NewID)
	assert.Equal(t, int64(2), *ev.Record.NewID)
	assert.Equal(t, "Resolved", ev.Record.NewVal)
}

func TestDiff_MissingLookupRowIsNotFatal(t *testing.T) {
	engine := NewEngine(map[string]Lookup{
		"agent_id": staticLookup(map[int64]string{7: "Sam Lee"}),
	})
	prev := int64(99) // deleted agent

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"agent_id": &prev},
		map[string]interface{}{"agent_id": float64(7)},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)

	ev := res.Events[0]
	require.NotNil(t, ev.Record.PrevID)
	assert.Equal(t, int64(99), *ev.Record.PrevID)
	assert.Nil(t, ev.Record.PrevVal, "unresolvable id keeps a null label")
	assert.Equal(t, "Sam Lee", ev.Record.NewVal)
}

func TestDiff_LookupErrorAborts(t *testing.T) {
	boom := errors.New("db gone")
	engine := NewEngine(map[string]Lookup{
		"agent_id": LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			return "", false, boom
		}),
	})

	_, err := engine.Diff(context.Background(),
		map[string]interface{}{"agent_id": nil},
		map[string]interface{}{"agent_id": float64(7)},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestDiff_PlainFieldChange(t *testing.T) {
	engine := NewEngine(nil)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"title": "Printer down"},
		map[string]interface{}{"title": "Printer jammed"},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)

	ev := res.Events[0]
	assert.Equal(t, ChangeModified, ev.Type)
	assert.Nil(t, ev.Record.PrevID)
	assert.Nil(t, ev.Record.NewID)
	assert.Equal(t, "Printer down", ev.Record.PrevVal)
	assert.Equal(t, "Printer jammed", ev.Record.NewVal)
}

func TestDiff_NullStringFieldSetIsAdded(t *testing.T) {
	engine := NewEngine(nil)
	var title *string // snapshot representation of a NULL column

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"title": title},
		map[string]interface{}{"title": "Printer down"},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)

	ev := res.Events[0]
	assert.Equal(t, ChangeAdded, ev.Type)
	assert.Nil(t, ev.Record.PrevVal)
	assert.Equal(t, "Printer down", ev.Record.NewVal)
}

func TestDiff_NullStringFieldClearedIsRemoved(t *testing.T) {
	engine := NewEngine(nil)
	desc := "old text"

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"description": &desc},
		map[string]interface{}{"description": nil},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)

	ev := res.Events[0]
	assert.Equal(t, ChangeRemoved, ev.Type)
	assert.Equal(t, "old text", ev.Record.PrevVal)
	assert.Nil(t, ev.Record.NewVal)
}

func TestDiff_UnchangedDueDateEmitsNothing(t *testing.T) {
	engine := NewEngine(nil)
	due := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"due_date": &due},
		map[string]interface{}{"due_date": "2026-08-28T12:00:00Z"},
	)
	require.NoError(t, err)
	assert.Empty(t, res.Events, "same instant in a different representation is not a change")
}

func TestDiff_DueDateChange(t *testing.T) {
	engine := NewEngine(nil)
	var due *time.Time

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"due_date": due},
		map[string]interface{}{"due_date": "2026-09-01T09:00:00Z"},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, ChangeAdded, res.Events[0].Type)
	assert.Nil(t, res.Events[0].Record.PrevVal)
	assert.Equal(t, "2026-09-01T09:00:00Z", res.Events[0].Record.NewVal)
}

func TestDiff_EventsOrderedByField(t *testing.T) {
	engine := NewEngine(nil)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"title": "a", "description": "b", "overdue": int64(0)},
		map[string]interface{}{"title": "x", "description": "y", "overdue": float64(1)},
	)
	require.NoError(t, err)
	require.Len(t, res.Events, 3)
	assert.Equal(t, "description", res.Events[0].Record.Field)
	assert.Equal(t, "overdue", res.Events[1].Record.Field)
	assert.Equal(t, "title", res.Events[2].Record.Field)
}

func TestDiff_NarrativeFieldsBecomeJournal(t *testing.T) {
	engine := NewEngine(nil)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{"title": "a"},
		map[string]interface{}{"subject": "Called the user", "body": "Left a voicemail", "title": "a"},
	)
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Called the user", res.Entry.Subject)
	assert.Equal(t, "Left a voicemail", res.Entry.Body)
	assert.NotContains(t, res.Update, "subject")
	assert.NotContains(t, res.Update, "body")
}

func TestDiff_SubjectAloneIsNotAJournal(t *testing.T) {
	engine := NewEngine(nil)

	res, err := engine.Diff(context.Background(),
		map[string]interface{}{},
		map[string]interface{}{"subject": "Only a subject"},
	)
	require.NoError(t, err)
	assert.Nil(t, res.Entry)
	assert.Empty(t, res.Update)
}

func TestFormValueEvent(t *testing.T) {
	engine := NewEngine(nil)

	_, changed := engine.FormValueEvent("Asset Tag", "A-100", "A-100")
	assert.False(t, changed)

	ev, changed := engine.FormValueEvent("Asset Tag", "A-100", "A-200")
	require.True(t, changed)
	assert.Equal(t, ChangeModified, ev.Type)
	assert.Equal(t, "Asset Tag", ev.Record.Field)
	assert.Equal(t, "A-100", ev.Record.PrevVal)
	assert.Equal(t, "A-200", ev.Record.NewVal)
}

func TestChangeRecord_JSONShape(t *testing.T) {
	prevID := int64(3)
	newID := int64(7)
	raw, err := json.Marshal(ChangeRecord{
		Field:   "agent_id",
		PrevID:  &prevID,
		NewID:   &newID,
		PrevVal: "Jane Doe",
		NewVal:  "Sam Lee",
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"field":"agent_id","prev_id":3,"new_id":7,"prev_val":"Jane Doe","new_val":"Sam Lee"}`,
		string(raw))

	raw, err = json.Marshal(ChangeRecord{Field: "title", PrevVal: "a", NewVal: "b"})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"field":"title","prev_id":null,"new_id":null,"prev_val":"a","new_val":"b"}`,
		string(raw))
}
