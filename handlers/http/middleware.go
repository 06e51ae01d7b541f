package httpHandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe-server/entities"
	"recipe-server/usecases"
)

const userContextKey = "currentUser"

// TokenAuthMiddleware resolves the bearer token on every request and
// stores the authenticated user in the request context. There is no
// session state; each request must present its own token.
func TokenAuthMiddleware(tokens *usecases.TokenUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header format must be Bearer {token}",
			})
			return
		}

		user, err := tokens.ResolveToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the user resolved by TokenAuthMiddleware.
func currentUser(c *gin.Context) *entities.User {
	return c.MustGet(userContextKey).(*entities.User)
}
