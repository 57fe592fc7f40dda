// Package models holds namespaced key/value configuration rows.
package models

import "time"

// Setting is one configuration value under a namespace.
type Setting struct {
	ID        int64     `db:"id" json:"id"`
	Namespace string    `db:"namespace" json:"namespace"`
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	Updated   time.Time `db:"updated" json:"updated"`
}
