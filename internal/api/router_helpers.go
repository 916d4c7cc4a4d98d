package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/middleware"
)

// actorID extracts the authenticated user's ID from the Gin context. A zero
// return means the auth middleware never ran, which the router setup prevents
// on every mutating route.
func actorID(c *gin.Context) int64 {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		respondError(c, 401, ErrCodeUnauthorized, "missing authorization token")

		return 0
	}

	return claims.UserID
}

// parsePathID parses the numeric :id path parameter. It responds 400 and
// returns false when the parameter is not a positive integer.
func parsePathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, 400, ErrCodeInvalidRequest, "invalid id")

		return 0, false
	}

	return id, true
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		if claims := middleware.CurrentClaims(c); claims != nil {
			fields["user"] = claims.Username
		}
		log.WithFields(fields).Info("request")
	}
}

// maxPaginationLimit caps the maximum number of items per page.
const maxPaginationLimit = 500

// maxPaginationOffset caps the maximum offset for paginated queries.
const maxPaginationOffset = 100000

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxPaginationLimit {
		return maxPaginationLimit
	}

	return v
}

func parseOffset(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}

	if v > maxPaginationOffset {
		return maxPaginationOffset
	}

	return v
}
