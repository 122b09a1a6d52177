package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	UserIDKey = "user_id"
	ActorKey  = "actor"
)

// JWTAuth validates the Bearer access token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		uid, err := service.ParseToken(secret, strings.TrimPrefix(header, "Bearer "), service.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}

		c.Set(UserIDKey, uid)
		c.Next()
	}
}

// ActorResolver turns an authenticated user id into the acting identity.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID uuid.UUID) (authz.Actor, error)
}

// ResolveActor loads the caller's role and assigned store after JWTAuth.
// Deactivated or deleted users are rejected even with a valid token.
func ResolveActor(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := c.Get(UserIDKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}
		actor, err := resolver.ResolveActor(c.Request.Context(), uid.(uuid.UUID))
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
				return
			}
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("resolve actor")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("internal server error"))
			return
		}
		c.Set(ActorKey, actor)
		c.Next()
	}
}

// RequireRole rejects requests whose resolved role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := c.Get(ActorKey)
		if !ok || !allowed[actor.(authz.Actor).Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Forbidden("insufficient permissions").Response())
			return
		}
		c.Next()
	}
}

// GetActor returns the actor stored by ResolveActor.
func GetActor(c *gin.Context) authz.Actor {
	actor, _ := c.MustGet(ActorKey).(authz.Actor)
	return actor
}
