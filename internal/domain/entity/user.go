package entity

import "time"

// UserStatus marks whether an account may sign in.
type UserStatus string

const (
	// UserStatusActive allows the account to authenticate.
	UserStatusActive UserStatus = "active"
	// UserStatusSuspended blocks authentication without deleting history.
	UserStatusSuspended UserStatus = "suspended"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// User is an account in the system: a client, a staff member, or an admin.
type User struct {
	ID           int64
	Email        string // Unique login identifier.
	Name         string
	Phone        string
	Address      string
	Role         Role
	Status       UserStatus
	PasswordHash string // bcrypt hash, never exposed through the API.
	CreatedAt    time.Time
}

// Actor is the authenticated principal performing an operation.
// It is passed explicitly into policy checks and the activity recorder
// instead of being read from ambient session state.
type Actor struct {
	ID   int64
	Role Role
}

// ActorOf derives an Actor from a full user record.
func ActorOf(u *User) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
