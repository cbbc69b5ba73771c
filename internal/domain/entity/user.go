// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single authenticated
// principal. Email is the unique login identifier across all users.
//
// PasswordHash never leaves the core: API responses are shaped through
// dedicated response types that have no hash field, so omission is enforced
// structurally rather than by stripping a field at runtime.
type User struct {
	ID           int64     // Immutable numeric identifier, assigned by the store on creation.
	Email        string    // Unique login identifier.
	PasswordHash string    // Salted bcrypt hash of the password. Never serialized.
	FirstName    string    // Optional profile field.
	LastName     string    // Optional profile field.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
