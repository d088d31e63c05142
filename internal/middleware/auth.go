package middleware

import (
	"net/http"
	"strings"

	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserKey is where AuthMiddleware stores the resolved user.
const ContextUserKey = "user"

// AuthMiddleware validates the bearer token and resolves the session user
// from the directory, so downstream handlers always see a full User.
func AuthMiddleware(dir store.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Missing token", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Malformed authorization header", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		user, found := dir.FindByID(userID)
		if !found {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Unknown user", nil)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
