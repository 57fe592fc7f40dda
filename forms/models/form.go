// Package models holds custom forms and their fields. A form is a set
// of extra input fields a help topic can attach to ticket submission.
package models

import "time"

// Form is a named collection of custom fields.
type Form struct {
	FormID       int64       `db:"form_id" json:"form_id"`
	Title        string      `db:"title" json:"title"`
	Instructions *string     `db:"instructions" json:"instructions"`
	Notes        *string     `db:"notes" json:"notes"`
	Updated      time.Time   `db:"updated" json:"updated"`
	Created      time.Time   `db:"created" json:"created"`
	Fields       []FormField `db:"-" json:"fields"`
}

// FormField is one input on a form. Configuration holds the field
// type's options as free-form JSON.
type FormField struct {
	FieldID       int64     `db:"field_id" json:"field_id"`
	FormID        *int64    `db:"form_id" json:"form_id"`
	OrderID       *int64    `db:"order_id" json:"order_id"`
	Type          string    `db:"type" json:"type"`
	Label         string    `db:"label" json:"label"`
	Name          string    `db:"name" json:"name"`
	Configuration *string   `db:"configuration" json:"configuration"`
	Hint          *string   `db:"hint" json:"hint"`
	Updated       time.Time `db:"updated" json:"updated"`
	Created       time.Time `db:"created" json:"created"`
}

// UpsertFormParams creates or replaces a form together with its
// fields. On update the field set is replaced wholesale.
type UpsertFormParams struct {
	Title        string            `json:"title"`
	Instructions *string           `json:"instructions"`
	Notes        *string           `json:"notes"`
	Fields       []FormFieldParams `json:"fields"`
}

// FormFieldParams describes one field in an upsert request.
type FormFieldParams struct {
	OrderID       *int64  `json:"order_id"`
	Type          string  `json:"type"`
	Label         string  `json:"label"`
	Name          string  `json:"name"`
	Configuration *string `json:"configuration"`
	Hint          *string `json:"hint"`
}
