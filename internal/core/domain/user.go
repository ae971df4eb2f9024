package domain

import (
	"errors"
	"time"
)

const (
	// RoleBuyer is the default role; federated sign-ins always start here.
	RoleBuyer = "user"
	// RoleSeller grants access to the product-management dashboard. It is
	// only ever assigned at registration time; there is no promotion flow.
	RoleSeller = "seller"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRoleNotFound = errors.New("role document not found")
var ErrTokenRevoked = errors.New("token revoked")

// User models an authenticated actor. Credentials and the role document are
// stored separately; a missing role document is read as RoleBuyer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Provider     string    `json:"provider,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsSeller reports whether the user may use the product-management dashboard.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
