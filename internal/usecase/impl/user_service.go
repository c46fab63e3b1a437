// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every registered account.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewUserView(user))
	}

	return views, nil
}

// Register creates a new account from the submitted fields.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	if missing := missingRegistrationFields(input); len(missing) > 0 {
		srv.log(ctx).Warn("Registration rejected, missing fields", slog.Any("missing", missing))

		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]any{
			"missing_fields": missing,
		})
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		ProfileImage: input.ProfileImage,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			srv.log(ctx).Warn("Registration rejected, duplicate key", slog.String("field", dup.Field))

			return nil, domainerrors.ErrDuplicateKey.WithDetails(map[string]string{
				dup.Field: dup.Value,
			})
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Registered user", slog.String("userID", user.ID))

	return usecase.NewUserView(user), nil
}

// Login verifies the submitted credentials and mints a bearer token on success.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same answer as a wrong password; no account enumeration.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.String("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewUserView(user),
	}, nil
}

// GetProfile returns the account record for the given ID.
func (srv *userService) GetProfile(ctx context.Context, userID string) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return usecase.NewUserView(user), nil
}

// UpdateProfile applies an allow-listed partial update. A submitted password
// is re-hashed; the stored hash field is never assignable from user input.
func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*usecase.UserView, error) {
	if empty := emptyUpdateFields(input); len(empty) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]any{
			"empty_fields": empty,
		})
	}

	update := &repository.UserUpdate{
		Name:         input.Name,
		Email:        input.Email,
		ProfileImage: input.ProfileImage,
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		update.PasswordHash = &hash
	}

	if update.IsEmpty() {
		// Nothing to write; answer with the current record.
		return srv.GetProfile(ctx, userID)
	}

	user, err := srv.userRepo.Update(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, domainerrors.ErrDuplicateKey.WithDetails(map[string]string{
				dup.Field: dup.Value,
			})
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Updated profile", slog.String("userID", user.ID))

	return usecase.NewUserView(user), nil
}

// DeleteAccount removes the account.
func (srv *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Deleted account", slog.String("userID", userID))

	return nil
}

// missingRegistrationFields names every required registration field that is absent.
func missingRegistrationFields(input *usecase.RegisterInput) []string {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if input.ProfileImage == "" {
		missing = append(missing, "profile_image")
	}

	return missing
}

// emptyUpdateFields names every field that was submitted but blank.
// Submitting a field means replacing it; replacing it with nothing is rejected.
func emptyUpdateFields(input *usecase.UpdateProfileInput) []string {
	var empty []string
	if input.Name != nil && *input.Name == "" {
		empty = append(empty, "name")
	}
	if input.Email != nil && *input.Email == "" {
		empty = append(empty, "email")
	}
	if input.Password != nil && *input.Password == "" {
		empty = append(empty, "password")
	}
	if input.ProfileImage != nil && *input.ProfileImage == "" {
		empty = append(empty, "profile_image")
	}

	return empty
}
