package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

const (
	collectionCredentials = "credentials"
	// collectionRoles matches the original directory layout: one role
	// document per account, keyed by uid, separate from the credentials.
	collectionRoles = "user"
)

// IdentityRepository implements ports.IdentityRepository over the credentials
// and role-document collections.
type IdentityRepository struct {
	credentials *mongo.Collection
	roles       *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{
		credentials: db.Collection(collectionCredentials),
		roles:       db.Collection(collectionRoles),
	}
}

type mongoCredential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	Provider     string             `bson:"provider,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

type mongoRole struct {
	UID   string `bson:"_id"`
	Email string `bson:"email"`
	Role  string `bson:"role"`
}

// FindByEmail retrieves the credential record for email.
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCredential
	if err := r.credentials.FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.User{
		ID:           mc.ID.Hex(),
		Email:        mc.Email,
		PasswordHash: mc.PasswordHash,
		Provider:     mc.Provider,
		CreatedAt:    unixToTime(mc.CreatedAt),
		UpdatedAt:    unixToTime(mc.UpdatedAt),
	}, nil
}

// CreateCredential inserts a new credential record. A duplicate email maps to
// domain.ErrUserExists.
func (r *IdentityRepository) CreateCredential(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCredential{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Provider:     user.Provider,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	res, err := r.credentials.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert credential: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert credential: unexpected id type %T", res.InsertedID)
	}

	created := *user
	created.ID = oid.Hex()
	return &created, nil
}

// GetRole reads the role document keyed by uid.
func (r *IdentityRepository) GetRole(ctx context.Context, uid string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRole
	if err := r.roles.FindOne(ctx, bson.M{"_id": uid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrRoleNotFound
		}
		return "", fmt.Errorf("find role document: %w", err)
	}
	return mr.Role, nil
}

// SetRole writes the role document, replacing any existing one.
func (r *IdentityRepository) SetRole(ctx context.Context, uid, email, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.roles.ReplaceOne(ctx,
		bson.M{"_id": uid},
		mongoRole{UID: uid, Email: email, Role: role},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("set role document: %w", err)
	}
	return nil
}

// MergeRole upserts the role document without clobbering an existing role:
// the email is always refreshed, the role is only written on insert. This is
// what keeps a returning seller a seller on federated sign-in.
func (r *IdentityRepository) MergeRole(ctx context.Context, uid, email, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set":         bson.M{"email": email},
		"$setOnInsert": bson.M{"role": role},
	}
	_, err := r.roles.UpdateOne(ctx, bson.M{"_id": uid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("merge role document: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index on the credentials collection.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.credentials.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
