package httpHandler

import (
	"net/http"
	"strings"

	"agriwise-server/auth"
	"agriwise-server/entities"
	"agriwise-server/repositories"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// RequireAuth resolves the acting user from the bearer token and aborts with
// 401 when the token is missing, invalid, expired, or its subject no longer
// resolves to a user. Handlers downstream still perform the per-resource
// ownership check through the guarded repository lookups.
func RequireAuth(users repositories.UserRepository, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			respond(c, http.StatusUnauthorized, false, "No token, authorization denied", nil)
			c.Abort()
			return
		}

		userID, err := auth.ParseSessionToken(token, secret)
		if err != nil {
			respond(c, http.StatusUnauthorized, false, "Token invalid or expired", nil)
			c.Abort()
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			respond(c, http.StatusUnauthorized, false, "Token invalid or expired", nil)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// currentUser returns the user resolved by RequireAuth.
func currentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entities.User)
	return user
}
