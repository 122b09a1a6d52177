package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Email           string `json:"email"            validate:"required,email,max=254"`
	Username        string `json:"username"         validate:"required,min=1,max=150"`
	FirstName       string `json:"first_name"       validate:"max=150"`
	LastName        string `json:"last_name"        validate:"max=150"`
	Password        string `json:"password"         validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	// Role defaults to supplier; public registration never creates admins.
	Role string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}
