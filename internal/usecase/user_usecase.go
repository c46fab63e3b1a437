// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// All four fields are required; the usecase enumerates missing ones.
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profile_image"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// UpdateProfileInput defines the allow-listed fields of a profile update.
// Each field is optional; absent fields are left untouched. A submitted
// password is hashed before it reaches storage, so the stored hash can never
// be overwritten with attacker-controlled data.
type UpdateProfileInput struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password"`
	ProfileImage *string `json:"profile_image"`
}

// --- Output DTOs ---

// UserView is the public shape of an account record. It never carries the
// password hash.
type UserView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// LoginOutput returns the minted token together with the account's public record.
type LoginOutput struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// NewUserView maps a domain entity to its public view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]*UserView, error)

	// Register creates a new account after validating that all required
	// fields are present and the email is not taken.
	Register(ctx context.Context, input *RegisterInput) (*UserView, error)

	// Login verifies the submitted credentials and mints a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile returns the account record for the given ID.
	GetProfile(ctx context.Context, userID string) (*UserView, error)

	// UpdateProfile applies an allow-listed partial update to the account.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*UserView, error)

	// DeleteAccount removes the account.
	DeleteAccount(ctx context.Context, userID string) error
}
