package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"
)

func validRegistration() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:         "Alice",
		Email:        "alice@example.com",
		Password:     "s3cret",
		ProfileImage: "alice.png",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	srv := newTestService(repo, &fakeHasher{})

	view, err := srv.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.Equal(t, "alice.png", view.ProfileImage)

	// The stored record carries a derivation of the password, never the plaintext.
	stored := repo.users[view.ID]
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash)
}

func TestRegister_MissingFieldsAreEnumerated(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.RegisterInput)
		missing []string
	}{
		{name: "missing name", mutate: func(in *usecase.RegisterInput) { in.Name = "" }, missing: []string{"name"}},
		{name: "missing email", mutate: func(in *usecase.RegisterInput) { in.Email = "" }, missing: []string{"email"}},
		{name: "missing password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }, missing: []string{"password"}},
		{name: "missing profile image", mutate: func(in *usecase.RegisterInput) { in.ProfileImage = "" }, missing: []string{"profile_image"}},
		{
			name: "missing everything",
			mutate: func(in *usecase.RegisterInput) {
				*in = usecase.RegisterInput{}
			},
			missing: []string{"name", "email", "password", "profile_image"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestService(newFakeUserRepo(), &fakeHasher{})

			input := validRegistration()
			tt.mutate(input)

			view, err := srv.Register(context.Background(), input)
			assert.Nil(t, view)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

			details, ok := appErr.Details().(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.missing, details["missing_fields"])
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	srv := newTestService(repo, &fakeHasher{})

	_, err := srv.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Name = "Another Alice"
	view, err := srv.Register(context.Background(), second)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_KEY", appErr.ErrorCode())

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", details["email"])
}

func TestRegister_HashFailureIsInternal(t *testing.T) {
	srv := newTestService(newFakeUserRepo(), &fakeHasher{failHash: true})

	view, err := srv.Register(context.Background(), validRegistration())
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	srv := newTestService(repo, &fakeHasher{})

	registered, err := srv.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	t.Run("correct credentials mint a token for the account", func(t *testing.T) {
		output, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, tokenSubject(output.Token))
		assert.Equal(t, registered.ID, output.User.ID)
		assert.Equal(t, "alice@example.com", output.User.Email)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		output, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email gives the same answer as a wrong password", func(t *testing.T) {
		output, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "s3cret",
		})
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestGetProfile_NotFound(t *testing.T) {
	srv := newTestService(newFakeUserRepo(), &fakeHasher{})

	view, err := srv.GetProfile(context.Background(), "missing-id")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	newRegistered := func(t *testing.T) (*fakeUserRepo, usecase.UserUsecase, string) {
		t.Helper()
		repo := newFakeUserRepo()
		srv := newTestService(repo, &fakeHasher{})
		view, err := srv.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		return repo, srv, view.ID
	}

	strPtr := func(s string) *string { return &s }

	t.Run("updates only submitted fields", func(t *testing.T) {
		repo, srv, id := newRegistered(t)

		view, err := srv.UpdateProfile(context.Background(), id, &usecase.UpdateProfileInput{
			Name: strPtr("Alice Cooper"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", view.Name)
		assert.Equal(t, "alice@example.com", view.Email)
		assert.Equal(t, "hashed:s3cret", repo.users[id].PasswordHash)
	})

	t.Run("a submitted password is hashed before storage", func(t *testing.T) {
		repo, srv, id := newRegistered(t)

		_, err := srv.UpdateProfile(context.Background(), id, &usecase.UpdateProfileInput{
			Password: strPtr("new-password"),
		})
		require.NoError(t, err)

		// The hash field can never be written with raw input.
		assert.Equal(t, "hashed:new-password", repo.users[id].PasswordHash)
	})

	t.Run("blank submitted fields are rejected", func(t *testing.T) {
		_, srv, id := newRegistered(t)

		view, err := srv.UpdateProfile(context.Background(), id, &usecase.UpdateProfileInput{
			Email: strPtr(""),
		})
		assert.Nil(t, view)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	})

	t.Run("empty update returns the current record", func(t *testing.T) {
		_, srv, id := newRegistered(t)

		view, err := srv.UpdateProfile(context.Background(), id, &usecase.UpdateProfileInput{})
		require.NoError(t, err)
		assert.Equal(t, "Alice", view.Name)
	})

	t.Run("updating a deleted account is not found", func(t *testing.T) {
		_, srv, id := newRegistered(t)
		require.NoError(t, srv.DeleteAccount(context.Background(), id))

		view, err := srv.UpdateProfile(context.Background(), id, &usecase.UpdateProfileInput{
			Name: strPtr("ghost"),
		})
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("updating to a taken email is a duplicate", func(t *testing.T) {
		_, srv, id := newRegistered(t)

		other := validRegistration()
		other.Email = "bob@example.com"
		_, err := srv.Register(context.Background(), other)
		require.NoError(t, err)

		view, err := srv.UpdateProfile(context.Background(), id, &usecase.UpdateProfileInput{
			Email: strPtr("bob@example.com"),
		})
		assert.Nil(t, view)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_KEY", appErr.ErrorCode())
	})
}

func TestDeleteAccount_SecondDeleteIsNotFound(t *testing.T) {
	srv := newTestService(newFakeUserRepo(), &fakeHasher{})

	view, err := srv.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	require.NoError(t, srv.DeleteAccount(context.Background(), view.ID))

	err = srv.DeleteAccount(context.Background(), view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestListUsers_NeverExposesPasswordHash(t *testing.T) {
	srv := newTestService(newFakeUserRepo(), &fakeHasher{})

	_, err := srv.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	views, err := srv.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	// UserView has no hash field at all; spot-check the public shape.
	assert.Equal(t, "alice@example.com", views[0].Email)
}
