package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/model"
)

const (
	// SessionContextKey is a gin context key for the resolved session.
	SessionContextKey = "session"

	msgMalformedHeader = "Missing or malformed authorization header"
	msgInvalidToken    = "Invalid session token"
	msgFetchFailed     = "Error fetching balance"
)

// SessionResolver looks up the session owning a token.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*model.Session, error)
}

// RequireSession rejects requests without a valid bearer session token.
func RequireSession(resolver SessionResolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.String(http.StatusUnauthorized, msgMalformedHeader)
			c.Abort()
			return
		}

		sess, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrInvalidToken) {
				c.String(http.StatusUnauthorized, msgInvalidToken)
				c.Abort()
				return
			}
			logger.Error("resolve session", slog.String("error", err.Error()))
			c.String(http.StatusInternalServerError, msgFetchFailed)
			c.Abort()
			return
		}

		c.Set(SessionContextKey, sess)
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	return fields[1], true
}
