package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxSessionUserKey = "session_user_id"

// SessionResolver turns an opaque session token into a verified user id,
// typically by asking the external identity provider.
type SessionResolver interface {
	ResolveUser(ctx context.Context, sessionToken string) (string, error)
}

// SessionMiddleware resolves the caller's session when possible. It never
// aborts: routes keep working with client-supplied user ids when no identity
// provider is configured or no token is sent, but a resolved session takes
// precedence over anything in the request body.
type SessionMiddleware struct {
	resolver SessionResolver
}

func NewSessionMiddleware(resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver}
}

func (m *SessionMiddleware) ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.resolver == nil {
			c.Next()
			return
		}

		token := c.GetHeader("X-Session-Token")
		if token == "" {
			if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}
		if token == "" {
			c.Next()
			return
		}

		userID, err := m.resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			// An unverifiable token downgrades the request to the untrusted
			// path instead of failing it.
			slog.Warn("session resolution failed", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxSessionUserKey, userID)
		c.Next()
	}
}

// GetSessionUserID returns the verified user id, or "" when the request
// carries no resolvable session.
func GetSessionUserID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionUserKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
