package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/auth"
)

// ClaimsKey is the gin context key holding the authenticated token claims.
const ClaimsKey = "claims"

// authTimingFloor is the minimum response time for rejected auth checks to
// prevent timing oracles that could distinguish malformed from expired tokens.
const authTimingFloor = 50 * time.Millisecond

// TokenParser verifies a signed session token and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// enforceTimingFloor sleeps if needed so the response takes at least authTimingFloor.
func enforceTimingFloor(start time.Time) {
	if elapsed := time.Since(start); elapsed < authTimingFloor {
		time.Sleep(authTimingFloor - elapsed)
	}
}

// BearerAuth returns Gin middleware that authenticates requests via a Bearer
// session token. A missing token yields 401; a token that fails signature or
// expiry checks yields 403, so clients can tell "log in" apart from "token
// no longer valid".
func BearerAuth(parser TokenParser, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			status := c.Writer.Status()
			if status == http.StatusUnauthorized || status == http.StatusForbidden {
				enforceTimingFloor(start)
			}
		}()

		token := ExtractBearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing authorization token")
			return
		}

		claims, err := parser.Parse(token)
		if err != nil {
			logAuthFailure(log, c)
			respondError(c, http.StatusForbidden, "forbidden", "invalid or expired token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ExtractBearerToken extracts the session token from the Authorization header.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// CurrentClaims returns the claims set by BearerAuth, or nil when the request
// is unauthenticated.
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}

	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}

	return claims
}

// logAuthFailure logs a rejected session token.
func logAuthFailure(log *logrus.Logger, c *gin.Context) {
	log.WithFields(logrus.Fields{
		"client_ip":  c.ClientIP(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"user_agent": c.Request.UserAgent(),
		"request_id": c.GetString("request_id"),
	}).Warn("authentication failed: invalid or expired token")
}
