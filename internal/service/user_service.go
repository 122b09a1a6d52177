package service

import (
	"context"
	"strings"
	"time"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
)

const PasswordMinLength = 8

// passwordHashCost is a var so package tests can lower it.
var passwordHashCost = 12

type UserService interface {
	Me(ctx context.Context, actor authz.Actor) (dto.UserResponse, error)
	Create(ctx context.Context, actor authz.Actor, req dto.CreateUserRequest) (dto.UserResponse, error)
	// CreateSupplier creates a supplier, optionally already assigned to a store.
	CreateSupplier(ctx context.Context, actor authz.Actor, req dto.CreateUserRequest) (dto.UserResponse, error)
	List(ctx context.Context, actor authz.Actor, filter dto.UserFilter) ([]dto.UserResponse, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.UserResponse, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateUserRequest) (dto.UserResponse, error)
	Deactivate(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	Reactivate(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

type userService struct {
	repos repository.Repositories
	uow   repository.UnitOfWork
}

func NewUserService(repos repository.Repositories, uow repository.UnitOfWork) UserService {
	return &userService{repos: repos, uow: uow}
}

// newUser is the input shared by public registration and admin creation.
type newUser struct {
	Email           string
	Username        string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
	Role            string
	Phone           string
	Department      string
	AssignedStoreID *uuid.UUID
	HireDate        *time.Time
}

func validatePassword(password, confirm string) error {
	if len(password) < PasswordMinLength {
		return apierror.Validation(apierror.CodeInvalidPassword, "password",
			"password must be at least 8 characters long")
	}
	if password != confirm {
		return apierror.Validation(apierror.CodeInvalidPassword, "password_confirm",
			"password fields didn't match")
	}
	return nil
}

func duplicateEmail() error {
	return apierror.Duplicate(apierror.CodeDuplicateEmail, "email", "a user with this email already exists")
}

// createUser inserts the user and its role profile in one transaction.
func createUser(ctx context.Context, uow repository.UnitOfWork, in newUser) (*model.User, error) {
	if !model.ValidRole(in.Role) {
		return nil, apierror.Validation(apierror.CodeInvalidRole, "role", "role must be admin or supplier")
	}
	if err := validatePassword(in.Password, in.PasswordConfirm); err != nil {
		return nil, err
	}
	if in.AssignedStoreID != nil && in.Role != model.RoleSupplier {
		return nil, apierror.Validation(apierror.CodeInvalidRole, "assigned_store_id",
			"only suppliers can be assigned to a store")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	var created *model.User
	err = uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.Users.FindByEmail(ctx, email); err == nil {
			return duplicateEmail()
		} else if !isNotFound(err) {
			return err
		}

		u := &model.User{
			Email:        email,
			Username:     in.Username,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			PasswordHash: hash,
			Role:         in.Role,
			IsActive:     true,
		}
		if in.Role == model.RoleAdmin {
			u.AdminProfile = &model.AdminProfile{Phone: in.Phone, Department: in.Department}
		} else {
			p := &model.SupplierProfile{Phone: in.Phone, HireDate: in.HireDate}
			if in.AssignedStoreID != nil {
				store, err := tx.Stores.FindByID(ctx, *in.AssignedStoreID, false)
				if err != nil {
					return notFound(err, "store not found")
				}
				p.AssignedStoreID = &store.ID
			}
			u.SupplierProfile = p
		}

		if err := tx.Users.Create(ctx, u); err != nil {
			if isDuplicate(err) {
				return duplicateEmail()
			}
			return err
		}
		loaded, err := tx.Users.FindByID(ctx, u.ID)
		if err != nil {
			return err
		}
		created = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *userService) Me(ctx context.Context, actor authz.Actor) (dto.UserResponse, error) {
	u, err := s.repos.Users.FindByID(ctx, actor.UserID)
	if err != nil {
		return dto.UserResponse{}, notFound(err, "user not found")
	}
	return mapUser(*u), nil
}

func (s *userService) Create(ctx context.Context, actor authz.Actor, req dto.CreateUserRequest) (dto.UserResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.UserResponse{}, err
	}
	storeID, err := parseOptionalID("assigned_store_id", derefString(req.AssignedStoreID))
	if err != nil {
		return dto.UserResponse{}, err
	}
	hireDate, err := parseOptionalDate("hire_date", derefString(req.HireDate))
	if err != nil {
		return dto.UserResponse{}, err
	}
	u, err := createUser(ctx, s.uow, newUser{
		Email:           req.Email,
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Role:            req.Role,
		Phone:           req.Phone,
		Department:      req.Department,
		AssignedStoreID: storeID,
		HireDate:        hireDate,
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	return mapUser(*u), nil
}

func (s *userService) CreateSupplier(ctx context.Context, actor authz.Actor, req dto.CreateUserRequest) (dto.UserResponse, error) {
	req.Role = model.RoleSupplier
	return s.Create(ctx, actor, req)
}

func (s *userService) List(ctx context.Context, actor authz.Actor, filter dto.UserFilter) ([]dto.UserResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if filter.Role != "" && !model.ValidRole(filter.Role) {
		return nil, apierror.Validation(apierror.CodeInvalidRole, "role", "role must be admin or supplier")
	}
	users, err := s.repos.Users.List(ctx, repository.UserQuery{Role: filter.Role, IncludeInactive: filter.IncludeInactive})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapUser(u))
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.UserResponse, error) {
	if !actor.IsAdmin() && actor.UserID != id {
		return dto.UserResponse{}, apierror.Forbidden("you can only view your own account")
	}
	u, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, notFound(err, "user not found")
	}
	return mapUser(*u), nil
}

func (s *userService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	if !actor.IsAdmin() && actor.UserID != id {
		return dto.UserResponse{}, apierror.Forbidden("you can only update your own account")
	}
	if req.HireDate != nil && !actor.IsAdmin() {
		return dto.UserResponse{}, apierror.Forbidden("only admins can change the hire date")
	}
	hireDate, err := parseOptionalDate("hire_date", derefString(req.HireDate))
	if err != nil {
		return dto.UserResponse{}, err
	}

	var updated *model.User
	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		u, err := tx.Users.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "user not found")
		}
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if req.Username != nil {
			u.Username = *req.Username
		}
		if err := tx.Users.Update(ctx, u); err != nil {
			return err
		}

		switch {
		case u.AdminProfile != nil:
			if req.HireDate != nil {
				return apierror.Validation(apierror.CodeInvalidRole, "hire_date", "hire date applies to supplier accounts")
			}
			if req.Phone != nil {
				u.AdminProfile.Phone = *req.Phone
			}
			if req.Department != nil {
				u.AdminProfile.Department = *req.Department
			}
			if err := tx.Users.UpdateAdminProfile(ctx, u.AdminProfile); err != nil {
				return err
			}
		case u.SupplierProfile != nil:
			if req.Department != nil {
				return apierror.Validation(apierror.CodeInvalidRole, "department", "department applies to admin accounts")
			}
			if req.Phone != nil {
				u.SupplierProfile.Phone = *req.Phone
			}
			if hireDate != nil {
				u.SupplierProfile.HireDate = hireDate
			}
			if err := tx.Users.UpdateSupplierProfile(ctx, u.SupplierProfile); err != nil {
				return err
			}
		}

		updated, err = tx.Users.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	return mapUser(*updated), nil
}

func (s *userService) Deactivate(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if actor.UserID == id {
		return apierror.Validation(apierror.CodeSelfDeactivation, "id", "you cannot deactivate your own account")
	}
	return s.setActive(ctx, id, false)
}

func (s *userService) Reactivate(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return s.setActive(ctx, id, true)
}

func (s *userService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.Users.FindByID(ctx, id); err != nil {
			return notFound(err, "user not found")
		}
		return tx.Users.SetActive(ctx, id, active)
	})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
