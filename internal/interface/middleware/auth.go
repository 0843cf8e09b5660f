package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
	"github.com/oksasatya/go-expense-tracker/pkg/response"
)

// CtxUserIDKey holds the authenticated user id in the Gin context.
const CtxUserIDKey = "userID"

const ctxSessionIDKey = "sessionID"

// Auth validates the bearer token and ensures its session is still live in Redis.
// It sets userID in the Gin context on success.
func Auth(jwt *helpers.JWTManager, sessions *helpers.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Message(c, http.StatusUnauthorized, messages.Unauthorized)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, messages.Unauthorized)
			return
		}

		if sessions == nil {
			response.Message(c, http.StatusUnauthorized, messages.Unauthorized)
			return
		}
		ok, err := sessions.Active(c.Request.Context(), claims.UserID, claims.SessionID)
		if err != nil || !ok {
			response.Message(c, http.StatusUnauthorized, messages.Unauthorized)
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(ctxSessionIDKey, claims.SessionID)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
