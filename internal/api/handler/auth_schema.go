package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// Seller mirrors the registration form's "Register as seller" checkbox.
	Seller bool `json:"seller"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// federatedRequest carries a federated assertion already verified upstream;
// the popup flow itself lives at the identity edge, not here.
type federatedRequest struct {
	Provider string `json:"provider" validate:"required,oneof=google"`
	Subject  string `json:"subject"  validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type userResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Seller bool   `json:"seller"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}
