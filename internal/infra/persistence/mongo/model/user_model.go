// Package model contains the persistence models that mirror the stored
// document shapes, kept separate from the pure domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roster/internal/domain/entity"
)

// UserModel is the document shape stored in the users collection.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	ProfileImage string             `bson:"profile_image"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		ProfileImage: m.ProfileImage,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain maps a domain entity to the persistence model. A blank entity ID
// leaves the ObjectID zero so the store assigns one on insert.
func FromDomain(user *entity.User) (*UserModel, error) {
	m := &UserModel{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.ID != "" {
		oid, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
