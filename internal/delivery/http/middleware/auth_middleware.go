package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/audit"
	"github.com/hossamaboassi/Busylancer/pkg/token"
)

// AuthMiddleware validates the bearer token and stores the verified claims
// in the gin context. Invalid and expired tokens get the same 401 so the
// response leaks nothing about why validation failed.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization token required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		payload, err := tokens.Validate(tokenString)
		if err != nil {
			if a := audit.Default(); a != nil {
				reqID, _ := c.Get("RequestID")
				idStr, _ := reqID.(string)
				a.Event(audit.EventTokenInvalid, c.ClientIP(), idStr)
			}
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), payload.UserID)
		c.Set(string(domain.KeyUserType), payload.UserType)
		c.Set(string(domain.KeyUserEmail), payload.Email)

		c.Next()
	}
}
