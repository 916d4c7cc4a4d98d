package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin returns middleware that rejects non-admin identities with 403.
// It must run after BearerAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil || !claims.IsAdmin() {
			respondError(c, http.StatusForbidden, "forbidden", "admin role required")
			return
		}

		c.Next()
	}
}

// RequirePermission returns middleware that rejects identities lacking the
// given action on the given resource kind with 403. Admins always pass.
// Unknown resources or actions deny by construction. It must run after
// BearerAuth.
func RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil || !claims.Allows(resource, action) {
			respondError(c, http.StatusForbidden, "forbidden", "insufficient permissions")
			return
		}

		c.Next()
	}
}
