package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tierevents/models"
)

const identityKey = "identity"

// TokenVerifier turns a session token into the identity it was issued for.
type TokenVerifier interface {
	Verify(token string) (*models.Identity, error)
}

// Authenticate attaches the caller's identity when a session token is present.
// No token means an anonymous caller. A bad bearer token is rejected; a bad
// cookie is cleared, with the attributes it was set with, and the caller
// continues anonymously.
func Authenticate(verifier TokenVerifier, cookieName string, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		fromCookie := false

		// Check Header
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// Check Cookie (fallback)
		if tokenString == "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				tokenString = cookie
				fromCookie = true
			}
		}

		if tokenString == "" {
			c.Next()
			return
		}

		identity, err := verifier.Verify(tokenString)
		if err != nil && fromCookie {
			c.SetCookie(cookieName, "", -1, "/", "", secureCookie, true)
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireIdentity rejects anonymous callers.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated identity, or nil for anonymous callers.
func CurrentIdentity(c *gin.Context) *models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*models.Identity)
	return id
}
