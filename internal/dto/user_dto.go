package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Email           string  `json:"email"            validate:"required,email,max=254"`
	Username        string  `json:"username"         validate:"required,min=1,max=150"`
	FirstName       string  `json:"first_name"       validate:"max=150"`
	LastName        string  `json:"last_name"        validate:"max=150"`
	Password        string  `json:"password"         validate:"required"`
	PasswordConfirm string  `json:"password_confirm" validate:"required"`
	Role            string  `json:"role"             validate:"required"`
	Phone           string  `json:"phone"            validate:"max=20"`
	Department      string  `json:"department"       validate:"max=100"`
	AssignedStoreID *string `json:"assigned_store_id" validate:"omitempty,uuid"`
	HireDate        *string `json:"hire_date"        validate:"omitempty,datetime=2006-01-02"`
}

type UpdateUserRequest struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=150"`
	LastName   *string `json:"last_name"  validate:"omitempty,max=150"`
	Username   *string `json:"username"   validate:"omitempty,min=1,max=150"`
	Phone      *string `json:"phone"      validate:"omitempty,max=20"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	HireDate   *string `json:"hire_date"  validate:"omitempty,datetime=2006-01-02"`
}

type AssignStoreRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type UserFilter struct {
	Role            string `form:"role"`
	IncludeInactive bool   `form:"include_inactive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Username  string           `json:"username"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	FullName  string           `json:"full_name"`
	Role      string           `json:"role"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}

type ProfileResponse struct {
	Phone             string  `json:"phone"`
	Department        string  `json:"department,omitempty"`
	AssignedStoreID   *string `json:"assigned_store_id,omitempty"`
	AssignedStoreName *string `json:"assigned_store_name,omitempty"`
	HireDate          *string `json:"hire_date,omitempty"`
}
