package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roster/internal/domain/entity"
)

func TestUserModel_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &entity.User{
		ID:           primitive.NewObjectID().Hex(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		ProfileImage: "alice.png",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	m, err := FromDomain(user)
	require.NoError(t, err)
	assert.Equal(t, user, m.ToDomain())
}

func TestFromDomain_BlankIDStaysZero(t *testing.T) {
	m, err := FromDomain(&entity.User{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.True(t, m.ID.IsZero())
}

func TestFromDomain_MalformedID(t *testing.T) {
	_, err := FromDomain(&entity.User{ID: "not-an-object-id"})
	assert.Error(t, err)
}
