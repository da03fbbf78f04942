package handler

import (
	"time"

	"vaultwise/internal/adapter/http/middleware"
	redisStore "vaultwise/internal/adapter/storage/redis"
	"vaultwise/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	GoalSvc        ports.GoalService
	PayrollSvc     ports.PayrollService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	EmergencyDelay time.Duration
	Logger         zerolog.Logger
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

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

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

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc, deps.EmergencyDelay)
	ledger := v1.Group("/ledger", jwtAuth)
	{
		ledger.PUT("/split-config", rl("transfers"), ledgerHandler.SetSplitConfig)
		ledger.GET("/split-config", rl("queries"), ledgerHandler.GetSplitConfig)
		ledger.POST("/deposits", rl("deposits"), ledgerHandler.Deposit)
		ledger.POST("/transfers", rl("transfers"), ledgerHandler.Transfer)
		ledger.POST("/withdrawals", rl("withdrawals"), ledgerHandler.Withdraw)
		ledger.PUT("/withdraw-limit", rl("transfers"), ledgerHandler.SetWithdrawLimit)
		ledger.POST("/emergency", rl("withdrawals"), ledgerHandler.RequestEmergency)
		ledger.POST("/emergency/execute", rl("withdrawals"), ledgerHandler.ExecuteEmergency)
		ledger.GET("/balances", rl("queries"), ledgerHandler.GetBalances)
	}

	goalHandler := NewGoalHandler(deps.GoalSvc)
	goals := v1.Group("/goals", jwtAuth)
	{
		goals.POST("", rl("goals"), goalHandler.Create)
		goals.GET("", rl("queries"), goalHandler.List)
		goals.POST("/:goal_id/contributions", rl("goals"), goalHandler.Contribute)
	}

	payrollHandler := NewPayrollHandler(deps.PayrollSvc)
	payroll := v1.Group("/payroll", jwtAuth)
	{
		payroll.POST("/employees", rl("payroll"), payrollHandler.AddEmployee)
		payroll.GET("/employees", rl("queries"), payrollHandler.ListEmployees)
		payroll.PUT("/employees/:employee_id", rl("payroll"), payrollHandler.UpdateEmployee)
		payroll.DELETE("/employees/:employee_id", rl("payroll"), payrollHandler.RemoveEmployee)
		payroll.POST("/batches", rl("payroll"), payrollHandler.Schedule)
		payroll.GET("/batches", rl("queries"), payrollHandler.ListBatches)
		payroll.GET("/batches/:batch_id", rl("queries"), payrollHandler.GetBatch)
		payroll.GET("/batches/:batch_id/records", rl("queries"), payrollHandler.ListPaymentRecords)
	}

	// --- Operator-only routes ---
	ops := v1.Group("/payroll/employers", jwtAuth, middleware.OperatorOnly())
	{
		ops.POST("/:employer_id/batches/:batch_id/process", rl("payroll"), payrollHandler.Process)
	}

	return r
}
