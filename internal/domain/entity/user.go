// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single registered account.
// The ID is an opaque identifier assigned by the document store on creation and
// is immutable afterwards.
type User struct {
	ID           string    // Opaque unique identifier assigned by the store.
	Name         string    // The user's display name.
	Email        string    // The user's login email. Uniqueness is enforced by the store.
	PasswordHash string    // One-way bcrypt derivation of the password. Never plaintext.
	ProfileImage string    // Reference (path or URL) to the user's profile image.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
