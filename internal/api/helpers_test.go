package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/middleware"
	"github.com/fieldledger/fieldledger/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// adminClaims returns claims for an admin test user.
func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Username: "boss", Role: models.RoleAdmin}
}

// newTestRouter creates a gin engine that injects the given claims, standing
// in for the bearer auth middleware. Nil claims mean an unauthenticated request.
func newTestRouter(claims *auth.Claims) *gin.Engine {
	r := gin.New()
	if claims != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ClaimsKey, claims)
			c.Next()
		})
	}

	return r
}

// doRequest performs an HTTP request against the test router and returns the recorder.
func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}
