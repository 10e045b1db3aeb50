package handler

import (
	"payment-reconciler/internal/adapter/http/middleware"
	redisStore "payment-reconciler/internal/adapter/storage/redis"
	"payment-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Verifier         ports.SignatureVerifier
	Dispatcher       ports.EventDispatcher
	AdminSvc         ports.AdminService // nil = admin API disabled
	TokenSvc         ports.TokenService
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers   []ports.HealthChecker
	AuditSvc         ports.AuditService // nil = audit logging disabled
	MaxBodyBytes     int64
	WebhookRateLimit int64
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules(deps.WebhookRateLimit)

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Provider deliveries (signature-authenticated) ---
	webhookHandler := NewWebhookHandler(deps.Verifier, deps.Dispatcher, deps.Logger)
	r.POST("/webhooks/stripe", rl("webhook"), webhookHandler.Receive)

	// --- Operator API ---
	if deps.AdminSvc != nil {
		adminHandler := NewAdminHandler(deps.AdminSvc)
		admin := r.Group("/api/v1/admin")
		admin.POST("/login", rl("admin_login"), adminHandler.Login)

		jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
		authed := admin.Group("", jwtAuth, rl("admin"))
		{
			authed.GET("/events/:id", adminHandler.GetEvent)
			authed.GET("/payouts", adminHandler.ListPayouts)
			authed.GET("/transfers/:id", adminHandler.GetTransfer)
			authed.GET("/transactions/:id", adminHandler.GetTransaction)
		}
	}

	return r
}
