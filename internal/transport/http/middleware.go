package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trivia-quiz-service/internal/domain"
)

const ctxUserKey = "authUser"

// RequireAuth authenticates the Bearer token and stores the identity on the
// request context.
func (a *API) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		user, err := a.auth.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidToken.Error()})
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// RequireAdmin re-checks the admin flag against the user store on every
// request. Tokens are trusted only for identity, never for privileges.
func (a *API) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if err := a.admin.EnsureAdmin(c.Request.Context(), user); err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) domain.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(domain.User); ok {
			return user
		}
	}
	return domain.User{}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
