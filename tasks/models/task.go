// Package models holds standalone tasks: small work items with their
// own reference numbers, assignable like tickets but without a thread.
package models

import "time"

// Task is one work item. Closed is nil while the task is open.
type Task struct {
	TaskID  int64      `db:"task_id" json:"task_id"`
	Number  string     `db:"number" json:"number"`
	Title   string     `db:"title" json:"title"`
	DeptID  *int64     `db:"dept_id" json:"dept_id"`
	AgentID *int64     `db:"agent_id" json:"agent_id"`
	GroupID *int64     `db:"group_id" json:"group_id"`
	DueDate *time.Time `db:"due_date" json:"due_date"`
	Closed  *time.Time `db:"closed" json:"closed"`
	Updated time.Time  `db:"updated" json:"updated"`
	Created time.Time  `db:"created" json:"created"`
}

// UpsertTaskParams creates or updates a task. The reference number is
// generated on create and never supplied by the caller.
type UpsertTaskParams struct {
	Title   string     `json:"title"`
	DeptID  *int64     `json:"dept_id"`
	AgentID *int64     `json:"agent_id"`
	GroupID *int64     `json:"group_id"`
	DueDate *time.Time `json:"due_date"`
}
