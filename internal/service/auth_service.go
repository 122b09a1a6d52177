package service

import (
	"context"
	"errors"
	"time"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/config"
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	// ResolveActor loads the user and yields its role-resolved actor.
	// Missing or inactive users fail with ErrInvalidToken.
	ResolveActor(ctx context.Context, userID uuid.UUID) (authz.Actor, error)
}

type authService struct {
	repos repository.Repositories
	uow   repository.UnitOfWork
	cfg   *config.Config
}

func NewAuthService(repos repository.Repositories, uow repository.UnitOfWork, cfg *config.Config) AuthService {
	return &authService{repos: repos, uow: uow, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RoleSupplier
	}
	if role != model.RoleSupplier {
		return dto.UserResponse{}, apierror.Validation(apierror.CodeInvalidRole, "role",
			"public registration can only create supplier accounts")
	}
	u, err := createUser(ctx, s.uow, newUser{
		Email:           req.Email,
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Role:            role,
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	return mapUser(*u), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repos.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	uid, err := ParseToken(s.cfg.JWTSecret, refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.Users.FindByID(ctx, uid)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *authService) ResolveActor(ctx context.Context, userID uuid.UUID) (authz.Actor, error) {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return authz.Actor{}, ErrInvalidToken
		}
		return authz.Actor{}, err
	}
	if !user.IsActive {
		return authz.Actor{}, ErrInvalidToken
	}
	return authz.FromUser(user), nil
}

func (s *authService) issueTokens(user *model.User) (*dto.LoginResponse, error) {
	access, err := s.generateToken(user, TokenTypeAccess, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(user, TokenTypeRefresh, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         mapUser(*user),
	}, nil
}

func (s *authService) generateToken(user *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"typ":     tokenType,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ParseToken validates an HS256 token of the wanted type and returns its user id.
func ParseToken(secret, raw, wantType string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return uuid.Nil, ErrInvalidToken
	}
	raw, _ = claims["user_id"].(string)
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return uid, nil
}

// HashPassword hashes with the cost used for every stored credential.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
