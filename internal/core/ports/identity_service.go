package ports

import (
	"context"
	"time"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

// AuthResult is returned by every sign-in path.
type AuthResult struct {
	Token string
	User  *domain.User
}

// FederatedInput carries a federated assertion that was already verified at
// the identity edge (the popup flow happens outside this service).
type FederatedInput struct {
	Provider string
	Subject  string
	Email    string
}

// IdentityService defines registration, sign-in, and sign-out use cases.
type IdentityService interface {
	// Register creates a credential record and then writes the role
	// document (seller iff the flag was set at the form's checkbox).
	Register(ctx context.Context, email, password string, seller bool) (*domain.User, error)
	// Login verifies credentials and resolves the role document; a missing
	// document silently means buyer.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// FederatedLogin finds or creates the account for a federated identity
	// and upserts the role document with merge semantics.
	FederatedLogin(ctx context.Context, input FederatedInput) (*AuthResult, error)
	// SignOut revokes the token until its natural expiry.
	SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error
	// ResolveRole is the single role-lookup implementation shared by every
	// caller that needs seller status.
	ResolveRole(ctx context.Context, uid string) (string, error)
}
