package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// TokenDenylist abstracts the revocation store (Redis). Revoked token ids are
// kept until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// IdentityService implements registration, both sign-in paths, and
// sign-out. The credential record and the role document are written
// separately, in that order; nothing rolls back the first write when the
// second fails (the role is then read as buyer until repaired).
type IdentityService struct {
	repo      ports.IdentityRepository
	denylist  TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewIdentityService(repo ports.IdentityRepository, denylist TokenDenylist, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &IdentityService{
		repo:      repo,
		denylist:  denylist,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates the credential record, then writes the role document.
// The role is seller iff the flag was checked at registration; there is no
// later promotion path.
func (s *IdentityService) Register(ctx context.Context, email, password string, seller bool) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleBuyer
	if seller {
		role = domain.RoleSeller
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.CreateCredential(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetRole(ctx, created.ID, created.Email, role); err != nil {
		// The account exists but the role document is missing; the user will
		// be read as buyer until the document is written.
		s.logger.Error().Err(err).Str("uid", created.ID).Msg("failed to write role document")
		return nil, fmt.Errorf("write role document: %w", err)
	}

	s.logger.Info().Str("uid", created.ID).Str("role", role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and resolves the role document. A missing role
// document silently downgrades to buyer.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := s.ResolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Role = role

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, User: user}, nil
}

// FederatedLogin finds or creates the account for a pre-verified federated
// assertion and upserts the role document with merge semantics: the role is
// only created when no document exists, so a returning seller keeps seller.
func (s *IdentityService) FederatedLogin(ctx context.Context, input ports.FederatedInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Subject == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		now := time.Now().UTC()
		user, err = s.repo.CreateCredential(ctx, &domain.User{
			Email:     input.Email,
			Provider:  input.Provider,
			Role:      domain.RoleBuyer,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.MergeRole(ctx, user.ID, user.Email, domain.RoleBuyer); err != nil {
		return nil, fmt.Errorf("merge role document: %w", err)
	}

	role, err := s.ResolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Role = role

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("uid", user.ID).Str("provider", input.Provider).Msg("federated sign-in")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// SignOut revokes the token id until the token would have expired anyway.
func (s *IdentityService) SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, tokenID, ttl)
}

// ResolveRole reads the role document for uid. A missing document is not an
// error: it means buyer.
func (s *IdentityService) ResolveRole(ctx context.Context, uid string) (string, error) {
	role, err := s.repo.GetRole(ctx, uid)
	if errors.Is(err, domain.ErrRoleNotFound) {
		return domain.RoleBuyer, nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (s *IdentityService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
