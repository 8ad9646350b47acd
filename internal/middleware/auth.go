package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/auth"
	apierrors "github.com/hexeeyy/safc-meeting-scheduler/internal/errors"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/logger"
)

// ContextKeyUserID is where the authenticated user's ID lives in the gin context.
const ContextKeyUserID = "user_id"

// RequireAuth exchanges the Authorization bearer token for a user identity and
// stores the user ID in the request context. Missing or rejected tokens end
// the request with 401.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrBadToken) {
				logger.L().Error("token verification failed", "error", err)
			}
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, identity.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
