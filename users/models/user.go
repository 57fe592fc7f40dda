package models

import "time"

// User is an end-user (ticket submitter), as opposed to an agent.
type User struct {
	UserID  int64     `db:"user_id" json:"user_id"`
	Email   string    `db:"email" json:"email"`
	Name    string    `db:"name" json:"name"`
	Updated time.Time `db:"updated" json:"updated"`
	Created time.Time `db:"created" json:"created"`
}

// UpsertUserParams carries user create/update input.
type UpsertUserParams struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
