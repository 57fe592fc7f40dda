// Package models holds business-hour schedules and their recurrence
// entries.
package models

import "time"

// Schedule is a named set of recurring availability entries.
type Schedule struct {
	ScheduleID  int64           `db:"schedule_id" json:"schedule_id"`
	Name        string          `db:"name" json:"name"`
	Timezone    *string         `db:"timezone" json:"timezone"`
	Description string          `db:"description" json:"description"`
	Updated     time.Time       `db:"updated" json:"updated"`
	Created     time.Time       `db:"created" json:"created"`
	Entries     []ScheduleEntry `db:"-" json:"entries"`
}

// ScheduleEntry is one recurrence rule. Time-of-day columns are kept
// as "HH:MM:SS" strings so the driver round-trips them untouched.
type ScheduleEntry struct {
	SchedEntryID int64      `db:"sched_entry_id" json:"sched_entry_id"`
	ScheduleID   *int64     `db:"schedule_id" json:"schedule_id"`
	Name         string     `db:"name" json:"name"`
	Repeats      string     `db:"repeats" json:"repeats"`
	StartsOn     *time.Time `db:"starts_on" json:"starts_on"`
	StartsAt     *string    `db:"starts_at" json:"starts_at"`
	EndOn        *time.Time `db:"end_on" json:"end_on"`
	EndsAt       *string    `db:"ends_at" json:"ends_at"`
	StopsOn      *time.Time `db:"stops_on" json:"stops_on"`
	Day          *int       `db:"day" json:"day"`
	Week         *int       `db:"week" json:"week"`
	Month        *int       `db:"month" json:"month"`
	Updated      time.Time  `db:"updated" json:"updated"`
	Created      time.Time  `db:"created" json:"created"`
}

// UpsertScheduleParams creates or replaces a schedule; the entry set
// is replaced wholesale on update.
type UpsertScheduleParams struct {
	Name        string                `json:"name"`
	Timezone    *string               `json:"timezone"`
	Description string                `json:"description"`
	Entries     []ScheduleEntryParams `json:"entries"`
}

// ScheduleEntryParams describes one entry in an upsert request.
type ScheduleEntryParams struct {
	Name     string     `json:"name"`
	Repeats  string     `json:"repeats"`
	StartsOn *time.Time `json:"starts_on"`
	StartsAt *string    `json:"starts_at"`
	EndOn    *time.Time `json:"end_on"`
	EndsAt   *string    `json:"ends_at"`
	StopsOn  *time.Time `json:"stops_on"`
	Day      *int       `json:"day"`
	Week     *int       `json:"week"`
	Month    *int       `json:"month"`
}
