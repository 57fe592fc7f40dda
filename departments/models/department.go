package models

import "time"

// Department owns a slice of agents and tickets.
type Department struct {
	DeptID     int64     `db:"dept_id" json:"dept_id"`
	SLAID      *int64    `db:"sla_id" json:"sla_id"`
	ScheduleID *int64    `db:"schedule_id" json:"schedule_id"`
	Email      *string   `db:"email" json:"email"`
	ManagerID  *int64    `db:"manager_id" json:"manager_id"`
	Name       string    `db:"name" json:"name"`
	Signature  *string   `db:"signature" json:"signature"`
	Updated    time.Time `db:"updated" json:"updated"`
	Created    time.Time `db:"created" json:"created"`
}
