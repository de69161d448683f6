package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"expenso/internal/config"
	"expenso/internal/handler"
	"expenso/internal/middleware"
	"expenso/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log zerolog.Logger,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	parseH *handler.ParseHandler,
	expenseH *handler.ExpenseHandler,
	receiptH *handler.ReceiptHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Parse routes
	parse := protected.Group("/parse")
	parse.POST("", parseH.Parse)
	parse.GET("/stats", parseH.Stats)
	parse.POST("/reset", parseH.Reset)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseH.Create)
	expenses.GET("", expenseH.List)
	expenses.GET("/summary", expenseH.Summary)
	expenses.GET("/months", expenseH.Months)
	expenses.GET("/export", expenseH.Export)
	expenses.POST("/delete", expenseH.Delete)
	expenses.GET("/:id", expenseH.GetByID)
	expenses.PUT("/:id", expenseH.Update)

	// Receipt routes
	receipts := protected.Group("/receipts")
	receipts.POST("/upload", receiptH.Upload)
	receipts.GET("", receiptH.List)
	receipts.GET("/:id", receiptH.GetByID)
	receipts.GET("/:id/download", receiptH.Download)
	receipts.GET("/:id/url", receiptH.DownloadURL)
	receipts.DELETE("/:id", receiptH.Delete)

	return r
}
