package models

import "time"

// Agent is a helpdesk staff member.
type Agent struct {
	AgentID   int64     `db:"agent_id" json:"agent_id"`
	DeptID    *int64    `db:"dept_id" json:"dept_id"`
	RoleID    *int64    `db:"role_id" json:"role_id"`
	Email     string    `db:"email" json:"email"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	Phone     *string   `db:"phone" json:"phone"`
	Firstname *string   `db:"firstname" json:"firstname"`
	Lastname  *string   `db:"lastname" json:"lastname"`
	Signature *string   `db:"signature" json:"signature"`
	Timezone  *string   `db:"timezone" json:"timezone"`
	Admin     int       `db:"admin" json:"admin"`
	Updated   time.Time `db:"updated" json:"updated"`
	Created   time.Time `db:"created" json:"created"`
}

// FullName concatenates the agent's first and last name; audit records
// use this as the display label for agent references.
func (a *Agent) FullName() string {
	first, last := "", ""
	if a.Firstname != nil {
		first = *a.Firstname
	}
	if a.Lastname != nil {
		last = *a.Lastname
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return a.Username
	}
}

// CreateAgentParams carries agent-creation input, password in the clear.
type CreateAgentParams struct {
	DeptID    *int64  `json:"dept_id"`
	RoleID    *int64  `json:"role_id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Signature *string `json:"signature"`
	Timezone  *string `json:"timezone"`
	Admin     int     `json:"admin"`
}

// UpdateAgentParams carries agent profile changes; password changes go
// through a dedicated path.
type UpdateAgentParams struct {
	DeptID    *int64  `json:"dept_id"`
	RoleID    *int64  `json:"role_id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Phone     *string `json:"phone"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Signature *string `json:"signature"`
	Timezone  *string `json:"timezone"`
	Admin     int     `json:"admin"`
}

// LoginRequest is the agent login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the agent profile.
type LoginResponse struct {
	Token string `json:"token"`
	Agent *Agent `json:"agent"`
}
