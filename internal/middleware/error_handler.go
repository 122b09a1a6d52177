package middleware

import (
	"net/http"
	"time"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var internalError = apierror.New("internal server error")

// ErrorHandler answers requests that ended with c.Error and no response.
// Business-rule failures keep their kind; anything else becomes a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last().Err
		if ae, ok := apierror.As(last); ok {
			c.AbortWithStatusJSON(ae.Kind.HTTPStatus(), ae.Response())
			return
		}

		requestLog(c, log.Error()).Err(last).Msg("unhandled error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
	}
}

// Recovery turns a panic into a 500 and logs the panic value.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestLog(c, log.Error()).Interface("panic", r).Msg("panic recovered")
			if !c.Writer.Written() {
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
				return
			}
			c.Abort()
		}()
		c.Next()
	}
}

// Logger writes one line per request; 5xx log at error level, 4xx at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		requestLog(c, ev).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func requestLog(c *gin.Context, ev *zerolog.Event) *zerolog.Event {
	ev = ev.
		Str("request_id", c.GetString(RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path)
	if route := c.FullPath(); route != "" {
		ev = ev.Str("route", route)
	}
	if v, ok := c.Get(ActorKey); ok {
		if actor, ok := v.(authz.Actor); ok {
			ev = ev.Str("actor_id", actor.UserID.String()).Str("role", actor.Role)
		}
	}
	return ev
}
