// Package models defines the data types shared by the HotSpot panel core:
// accounts, sessions, view identifiers, and the adapted view-models that
// the dashboard sections render.
package models

import "time"

// Role is the access level attached to an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Account is a locally stored dashboard account. Usernames are unique
// case-sensitively, emails case-insensitively.
//
// Password is kept in plaintext on purpose: the panel emulates the
// behavior of the device it manages and no hashing scheme is part of
// that contract. Do not treat this store as a real credential database.
type Account struct {
	ID                string     `json:"id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	Password          string     `json:"password"`
	FirstName         string     `json:"firstName,omitempty"`
	LastName          string     `json:"lastName,omitempty"`
	Role              Role       `json:"role"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastLogin         *time.Time `json:"lastLogin"`
	IsActive          bool       `json:"isActive"`
	EmailVerified     bool       `json:"emailVerified"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty"`
}

// FailedAttempt records how often a username failed to log in.
// It is written on every failed login and never reset; nothing in the
// core reads it back to enforce a lockout.
type FailedAttempt struct {
	Count       int       `json:"count"`
	LastAttempt time.Time `json:"lastAttempt"`
}
