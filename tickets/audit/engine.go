// Package audit diffs ticket updates against the stored row and turns
// every real change into a structured thread event record.
package audit

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// ChangeType labels what kind of change an event records.
type ChangeType string

const (
	ChangeAdded    ChangeType = "Added"
	ChangeRemoved  ChangeType = "Removed"
	ChangeModified ChangeType = "Modified"
)

// Classify derives the change type from the previous and new values.
// A value is absent when nil. Absent-to-absent falls through to Added,
// which mirrors long-standing persisted behavior and must not change
// without a data migration for existing events.
func Classify(prev, next interface{}) ChangeType {
	switch {
	case prev != nil && next == nil:
		return ChangeRemoved
	case prev != nil && next != nil:
		return ChangeModified
	default:
		return ChangeAdded
	}
}

// ChangeRecord is the serialized payload of one thread event. The JSON
// key set is durable: existing rows were written with exactly these
// keys and the frontend parses them.
type ChangeRecord struct {
	Field   string      `json:"field"`
	PrevID  *int64      `json:"prev_id"`
	NewID   *int64      `json:"new_id"`
	PrevVal interface{} `json:"prev_val"`
	NewVal  interface{} `json:"new_val"`
}

// Event is one classified change ready to be persisted as a thread event.
type Event struct {
	Record ChangeRecord
	Type   ChangeType
}

// Journal is the optional narrative post accompanying an update. It is
// produced only when the update carries both a subject and a body.
type Journal struct {
	Subject string
	Body    string
}

// Lookup resolves a foreign-key id to a display label. ok is false when
// no such row exists; that is not an error, the event just records a
// null label. A returned error aborts the whole diff.
type Lookup interface {
	Label(ctx context.Context, id int64) (string, bool, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, id int64) (string, bool, error)

func (f LookupFunc) Label(ctx context.Context, id int64) (string, bool, error) { return f(ctx, id) }

// Engine turns a field-level update into classified change events. The
// refs map declares which fields are foreign keys and how to resolve
// their ids to labels.
type Engine struct {
	refs map[string]Lookup
}

// NewEngine builds an engine with the given foreign-key resolvers.
func NewEngine(refs map[string]Lookup) *Engine {
	if refs == nil {
		refs = map[string]Lookup{}
	}
	return &Engine{refs: refs}
}

// Result is everything Diff produces: the update to apply (narrative
// fields stripped), the events to persist, and the optional journal.
type Result struct {
	Update map[string]interface{}
	Events []Event
	Entry  *Journal
}

// Diff compares a proposed update against the current row snapshot.
// Fields whose new value equals the stored value produce no event.
// Narrative fields (subject, body) are stripped from the update and,
// when both are present, surface as a single journal entry. Events are
// ordered by field name so output is deterministic.
func (e *Engine) Diff(ctx context.Context, current, update map[string]interface{}) (*Result, error) {
	res := &Result{Update: make(map[string]interface{}, len(update))}

	var subject, body string
	for field, value := range update {
		switch field {
		case "subject":
			subject, _ = value.(string)
			continue
		case "body":
			body, _ = value.(string)
			continue
		}
		res.Update[field] = value
	}

	fields := make([]string, 0, len(res.Update))
	for field := range res.Update {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		newValue := res.Update[field]
		prevValue := current[field]
		if equal(prevValue, newValue) {
			continue
		}

		var record ChangeRecord
		if lookup, ok := e.refs[field]; ok {
			rec, err := e.refRecord(ctx, field, lookup, prevValue, newValue)
			if err != nil {
				return nil, err
			}
			record = rec
		} else {
			record = ChangeRecord{Field: field, PrevVal: deref(prevValue), NewVal: deref(newValue)}
		}

		res.Events = append(res.Events, Event{
			Record: record,
			Type:   Classify(record.PrevVal, record.NewVal),
		})
	}

	if subject != "" && body != "" {
		res.Entry = &Journal{Subject: subject, Body: body}
	}

	return res, nil
}

// FormValueEvent runs the same diff-and-classify step for one custom
// form value, keyed by the form field's label instead of a column name.
// ok is false when the value did not change.
func (e *Engine) FormValueEvent(label string, prev, next interface{}) (Event, bool) {
	if equal(prev, next) {
		return Event{}, false
	}
	prev, next = deref(prev), deref(next)
	return Event{
		Record: ChangeRecord{Field: label, PrevVal: prev, NewVal: next},
		Type:   Classify(prev, next),
	}, true
}

// refRecord resolves both sides of a foreign-key change to display
// labels. A missing row yields a null label; a lookup error aborts.
func (e *Engine) refRecord(ctx context.Context, field string, lookup Lookup, prevValue, newValue interface{}) (ChangeRecord, error) {
	record := ChangeRecord{Field: field}

	prevID, prevSet := asID(prevValue)
	newID, newSet := asID(newValue)

	if prevSet {
		record.PrevID = &prevID
		label, found, err := lookup.Label(ctx, prevID)
		if err != nil {
			return ChangeRecord{}, fmt.Errorf("failed to resolve previous %s=%d: %w", field, prevID, err)
		}
		if found {
			record.PrevVal = label
		}
	}
	if newSet {
		record.NewID = &newID
		label, found, err := lookup.Label(ctx, newID)
		if err != nil {
			return ChangeRecord{}, fmt.Errorf("failed to resolve new %s=%d: %w", field, newID, err)
		}
		if found {
			record.NewVal = label
		}
	}

	return record, nil
}

// deref collapses the pointer representations used by model snapshots
// so a nil *int64 and an untyped nil compare as the same absence.
func deref(value interface{}) interface{} {
	switch v := value.(type) {
	case *int64:
		if v == nil {
			return nil
		}
		return *v
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case *time.Time:
		if v == nil {
			return nil
		}
		return *v
	default:
		return value
	}
}

// asTime normalizes the timestamp representations that reach the engine:
// time.Time from model snapshots and RFC 3339 strings from decoded JSON.
func asTime(value interface{}) (time.Time, bool) {
	switch v := deref(value).(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// asID normalizes the id representations that reach the engine: typed
// ints from model snapshots, pointers, and float64 from decoded JSON.
func asID(value interface{}) (int64, bool) {
	switch v := deref(value).(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// equal compares stored and proposed values, collapsing the pointer and
// numeric representation differences between the two sides.
func equal(prev, next interface{}) bool {
	prev = deref(prev)
	next = deref(next)
	if prev == nil || next == nil {
		return prev == nil && next == nil
	}
	prevID, prevIsID := asID(prev)
	nextID, nextIsID := asID(next)
	if prevIsID && nextIsID {
		return prevID == nextID
	}
	prevTime, prevIsTime := asTime(prev)
	nextTime, nextIsTime := asTime(next)
	if prevIsTime && nextIsTime {
		return prevTime.Equal(nextTime)
	}
	return fmt.Sprintf("%v", prev) == fmt.Sprintf("%v", next)
}
