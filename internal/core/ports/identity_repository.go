package ports

import (
	"context"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

// IdentityRepository defines persistence for credentials and role documents.
// Credentials and roles live in separate collections: the credential record
// belongs to the identity provider, the role document to the directory
// service, and nothing enforces that both writes succeed together.
type IdentityRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateCredential(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetRole reads the role document keyed by uid. A missing document is
	// reported as domain.ErrRoleNotFound, not invented as a default.
	GetRole(ctx context.Context, uid string) (string, error)
	// SetRole writes (or overwrites) the role document for uid.
	SetRole(ctx context.Context, uid, email, role string) error
	// MergeRole upserts the role document: the role is only written when no
	// document exists yet, so an existing seller is never demoted.
	MergeRole(ctx context.Context, uid, email, role string) error
}
