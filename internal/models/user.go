// Package models defines the data types shared by the adminboard stores:
// user identity records, the session snapshot, managed roster entries and
// display preferences.
package models

import "time"

// Role is the closed set of user roles. Roles are inert labels here; no
// permission checks hang off them.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Status describes the lifecycle state of a managed roster entry.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// User is the identity record carried by an authenticated session.
// Email comparisons are case-insensitive at the directory boundary;
// the stored value keeps its original casing.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ManagedUser extends User with roster-management fields. Its identity
// space is independent from the session's User.
type ManagedUser struct {
	User
	Status    Status     `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Session is the authentication state of the active caller.
//
// Invariant: Authenticated is true iff both User and Token are set;
// there is no state with one present and the other absent.
type Session struct {
	User          *User  `json:"user"`
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
}

// Date returns t truncated to day precision in UTC, the granularity used
// for CreatedAt fields.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
