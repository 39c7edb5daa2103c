// Package server builds the Gin router of the dashboard service.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"moneymanager/internal/app"
	_ "moneymanager/internal/docs" // Import swagger docs
	"moneymanager/internal/handlers"
	"moneymanager/internal/middleware"
	"moneymanager/internal/validator"
)

// NewRouter returns the router with every route mounted.
func NewRouter(a *app.App) *gin.Engine {
	validator.Register()

	authHandler := handlers.NewAuthHandler(a.Auth)
	accountHandler := handlers.NewAccountHandler(a.Accounts)
	dashboardHandler := handlers.NewDashboardHandler(a.Dashboard)
	formHandler := handlers.NewFormHandler(a.Transactions)
	transactionHandler := handlers.NewTransactionHandler(a.Transactions)
	auditHandler := handlers.NewAuditHandler(a.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKey(a.Config.DashboardAPIKey))

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.SessionRequired(a.Auth))

	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/accounts", accountHandler.ListAccounts)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/audit", auditHandler.ListAuditLogs)

	protected.POST("/form", formHandler.Open)
	protected.POST("/form/reduce", formHandler.Reduce)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
