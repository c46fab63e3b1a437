// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"fmt"

	"roster/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// DuplicateKeyError is returned when a storage-level uniqueness constraint is
// violated. Field names the offending field so callers can report it.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Field)
}

// UserUpdate describes a partial update to a stored user. Only non-nil fields
// are written. The password hash can only be set through this struct after
// hashing; raw user input never reaches it directly.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	ProfileImage *string
}

// IsEmpty reports whether the update would write nothing.
func (u *UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil && u.ProfileImage == nil
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll retrieves every stored user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	// Returns ErrUserNotFound when no user has that ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its ID.
	// Returns *DuplicateKeyError when the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// Update applies an allow-listed partial update and returns the updated user.
	// Returns ErrUserNotFound when the user no longer exists.
	Update(ctx context.Context, id string, update *UserUpdate) (*entity.User, error)

	// Delete removes a user. Returns ErrUserNotFound when the user no longer exists.
	Delete(ctx context.Context, id string) error
}
