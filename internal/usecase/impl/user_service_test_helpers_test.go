package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository with a unique email constraint,
// mirroring the document store's behavior.
type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}

	return all, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return &repository.DuplicateKeyError{Field: "email", Value: user.Email}
		}
	}

	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, update *repository.UserUpdate) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if update.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *update.Email {
				return nil, &repository.DuplicateKeyError{Field: "email", Value: *update.Email}
			}
		}
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.ProfileImage != nil {
		user.ProfileImage = *update.ProfileImage
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

// fakeHasher marks hashes in a recognizable way so tests can assert plaintext
// never reaches storage.
type fakeHasher struct {
	failHash bool
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.failHash {
		return "", fmt.Errorf("hashing unavailable")
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues reversible tokens for round-trip assertions.
type fakeTokenService struct{}

func (s *fakeTokenService) Issue(userID string) (string, error) {
	return "token-for:" + userID, nil
}

func (s *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	userID := strings.TrimPrefix(tokenString, "token-for:")
	if userID == tokenString {
		return nil, fmt.Errorf("unknown token")
	}

	return &service.Claims{UserID: userID}, nil
}

func tokenSubject(token string) string {
	return strings.TrimPrefix(token, "token-for:")
}

func newTestService(repo *fakeUserRepo, hasher *fakeHasher) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     repo,
		Hasher:       hasher,
		TokenService: &fakeTokenService{},
		Logger:       newDiscardLogger(),
	})
}
