package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/mongo/model"
)

const usersCollection = "users"

// userRepository implements the domain.UserRepository interface on a Mongo collection.
type userRepository struct {
	coll *mongo.Collection
}

// RepositoryParams defines the dependencies for the user repository.
type RepositoryParams struct {
	fx.In
	fx.Lifecycle

	DB *mongo.Database
}

// NewUserRepository is the constructor for userRepository.
// The unique email index is ensured on startup so uniqueness violations
// surface as distinct duplicate-key errors rather than generic failures.
func NewUserRepository(params RepositoryParams) repository.UserRepository {
	coll := params.DB.Collection(usersCollection)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ensureEmailIndex(ctx, coll)
		},
	})

	return &userRepository{coll: coll}
}

// FindAll retrieves every stored user.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	var docs []model.UserModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].ToDomain())
	}

	return users, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier can never match a stored document.
		return nil, repository.ErrUserNotFound
	}

	var doc model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return doc.ToDomain(), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return doc.ToDomain(), nil
}

// Create persists a new user and assigns its store-generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc, err := model.FromDomain(user)
	if err != nil {
		return errors.Wrap(err, "failed to map user for insert")
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &repository.DuplicateKeyError{Field: "email", Value: user.Email}
		}

		return errors.Wrap(err, "failed to insert user")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type")
	}
	user.ID = oid.Hex()

	return nil
}

// Update applies an allow-listed partial update and returns the updated user.
func (repo *userRepository) Update(ctx context.Context, id string, update *repository.UserUpdate) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}
	if update.ProfileImage != nil {
		set["profile_image"] = *update.ProfileImage
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc model.UserModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			email := ""
			if update.Email != nil {
				email = *update.Email
			}

			return nil, &repository.DuplicateKeyError{Field: "email", Value: email}
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return doc.ToDomain(), nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
