package handler

import (
	"zkwage-settlement/internal/adapter/http/middleware"
	redisStore "zkwage-settlement/internal/adapter/storage/redis"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc         ports.AuthService
	SettlementSvc   ports.SettlementService
	PoolSvc         ports.PoolService
	EmployerSvc     ports.EmployerService
	TokenSvc        ports.TokenService
	NullifierRepo   ports.NullifierRepository
	EventRepo       ports.EventRepository
	VerifierFactory VerifierFactory
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

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

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// Claims are public: the proof is the credential.
	claimHandler := NewClaimHandler(deps.SettlementSvc, deps.NullifierRepo)
	claims := v1.Group("/claims")
	{
		claims.POST("", rl("claims"), claimHandler.SubmitClaim)
	}

	// --- JWT-authenticated routes (operator surface) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	anyOperator := middleware.RequireRole(domain.RoleAdmin, domain.RoleProvider)

	claimsRead := v1.Group("/claims", jwtAuth, anyOperator)
	{
		claimsRead.GET("/stats", rl("queries"), claimHandler.Stats)
		claimsRead.GET("/:token", rl("queries"), claimHandler.GetClaim)
	}

	poolHandler := NewPoolHandler(deps.PoolSvc)
	pool := v1.Group("/pool", jwtAuth)
	{
		pool.GET("", anyOperator, rl("queries"), poolHandler.Snapshot)
		pool.POST("/deposits", anyOperator, rl("pool"), poolHandler.Deposit)
		pool.POST("/withdrawals", anyOperator, rl("pool"), poolHandler.Withdraw)
		pool.POST("/repayments", adminOnly, rl("admin"), poolHandler.Repay)
		pool.POST("/fees/distribute", adminOnly, rl("admin"), poolHandler.DistributeFees)
		pool.PUT("/params", adminOnly, rl("admin"), poolHandler.UpdateParams)
	}

	employerHandler := NewEmployerHandler(deps.EmployerSvc)
	employers := v1.Group("/employers", jwtAuth, adminOnly)
	{
		employers.POST("", rl("admin"), employerHandler.Register)
		employers.GET("/:id", rl("queries"), employerHandler.Get)
		employers.GET("/:id/reputation", rl("queries"), employerHandler.Reputation)
		employers.PUT("/:id/whitelist", rl("admin"), employerHandler.SetWhitelist)
		employers.POST("/:id/stake", rl("admin"), employerHandler.IncreaseStake)
		employers.POST("/:id/unstake", rl("admin"), employerHandler.DecreaseStake)
		employers.POST("/:id/slash", rl("admin"), employerHandler.Slash)
	}

	adminHandler := NewAdminHandler(deps.SettlementSvc, deps.EventRepo, deps.VerifierFactory, deps.Logger)
	admin := v1.Group("/admin", jwtAuth, adminOnly)
	{
		admin.PUT("/pause", rl("admin"), adminHandler.SetPaused)
		admin.POST("/verifier", rl("admin"), adminHandler.RotateVerifier)
		admin.GET("/events", rl("queries"), adminHandler.ListEvents)
	}

	return r
}
