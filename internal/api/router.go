package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/dbpool"
	"github.com/fieldledger/fieldledger/internal/middleware"
	"github.com/fieldledger/fieldledger/internal/models"
	"github.com/fieldledger/fieldledger/internal/security"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log             *logrus.Logger
	Pool            *dbpool.Pool
	Auth            Authenticator
	Users           UserRepository
	Companies       CompanyRepository
	Clients         ClientRepository
	Employees       EmployeeRepository
	Catalog         CatalogRepository
	CoverageReasons CoverageReasonRepository
	WorkLogs        WorkLogRepository
	Audit           AuditRepository
	Tokens          middleware.TokenParser
	Guard           *security.BruteForceGuard
	CORSOrigins     []string
	Version         string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, log, deps.Version)
	authh := NewAuthHandler(deps.Auth, deps.Guard, log)
	companies := NewCompanyHandler(deps.Companies, log)
	clients := NewClientHandler(deps.Clients, log)
	employees := NewEmployeeHandler(deps.Employees, log)
	catalog := NewCatalogHandler(deps.Catalog, log)
	reasons := NewCoverageReasonHandler(deps.CoverageReasons, log)
	workLogs := NewWorkLogHandler(deps.WorkLogs, log)
	users := NewUserHandler(deps.Users, log)
	audit := NewAuditHandler(deps.Audit, log)

	// Health, readiness, and login are unauthenticated.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)
	api.POST("/auth/login", authh.Login)

	// All other API routes require a valid token.
	api.Use(middleware.BearerAuth(deps.Tokens, log))

	// Registry reads are open to any authenticated user; mutations are
	// gated per user permission flags.
	canCreateReg := middleware.RequirePermission(models.ResourceRegistries, models.ActionCreate)
	canEditReg := middleware.RequirePermission(models.ResourceRegistries, models.ActionEdit)
	canDeleteReg := middleware.RequirePermission(models.ResourceRegistries, models.ActionDelete)

	api.GET("/companies", companies.List)
	api.GET("/companies/:id", companies.Get)
	api.POST("/companies", canCreateReg, companies.Create)
	api.PUT("/companies/:id", canEditReg, companies.Update)
	api.DELETE("/companies/:id", canDeleteReg, companies.Delete)

	api.GET("/clients", clients.List)
	api.GET("/clients/:id", clients.Get)
	api.POST("/clients", canCreateReg, clients.Create)
	api.PUT("/clients/:id", canEditReg, clients.Update)
	api.DELETE("/clients/:id", canDeleteReg, clients.Delete)

	api.GET("/employees", employees.List)
	api.GET("/employees/:id", employees.Get)
	api.POST("/employees", canCreateReg, employees.Create)
	api.PUT("/employees/:id", canEditReg, employees.Update)
	api.DELETE("/employees/:id", canDeleteReg, employees.Delete)

	api.GET("/services", catalog.List)
	api.GET("/services/:id", catalog.Get)
	api.POST("/services", canCreateReg, catalog.Create)
	api.PUT("/services/:id", canEditReg, catalog.Update)
	api.DELETE("/services/:id", canDeleteReg, catalog.Delete)

	api.GET("/coverage-reasons", reasons.List)
	api.GET("/coverage-reasons/:id", reasons.Get)
	api.POST("/coverage-reasons", canCreateReg, reasons.Create)
	api.PUT("/coverage-reasons/:id", canEditReg, reasons.Update)
	api.DELETE("/coverage-reasons/:id", canDeleteReg, reasons.Delete)

	// Work logs carry their own permission flags.
	api.GET("/work-logs", workLogs.List)
	api.GET("/work-logs/:id", workLogs.Get)
	api.POST("/work-logs", middleware.RequirePermission(models.ResourceWorkLogs, models.ActionCreate), workLogs.Create)
	api.PUT("/work-logs/:id", middleware.RequirePermission(models.ResourceWorkLogs, models.ActionEdit), workLogs.Update)
	api.DELETE("/work-logs/:id", middleware.RequirePermission(models.ResourceWorkLogs, models.ActionDelete), workLogs.Delete)

	// Any authenticated user may change their own password.
	api.PUT("/users/password", users.ChangePassword)

	// User management and the audit trail are admin only.
	admin := api.Group("", middleware.RequireAdmin())
	admin.GET("/users", users.List)
	admin.GET("/users/:id", users.Get)
	admin.POST("/users", users.Create)
	admin.PUT("/users/:id", users.Update)
	admin.DELETE("/users/:id", users.Delete)
	admin.GET("/audit-logs", audit.List)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api"), deps)

	return r
}
