package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// OwnerIDKey is the gin context key of the authenticated user's ID
const OwnerIDKey = "owner_id"

// SessionGate admits only requests carrying a valid session token.
// The token is read from the session cookie, then from an Authorization: Bearer header.
func SessionGate(auth usecase.AuthUseCase, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c, cookieName)

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !domainerr.IsUnauthorizedError(err) {
				logger.Error("Session verification failed", map[string]any{
					"error":      err.Error(),
					"request_id": c.GetString(RequestIDKey),
				})
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(domainerr.ErrUnauthorized))
			return
		}

		c.Set(OwnerIDKey, identity.UserID)
		c.Next()
	}
}

// OwnerID returns the authenticated user's ID set by SessionGate
func OwnerID(c *gin.Context) (uint64, bool) {
	value, ok := c.Get(OwnerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok && id != 0
}

func sessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}
