package main

import (
	"fmt"
	"os"

	"moneymanager/internal/app"
	"moneymanager/internal/config"
	"moneymanager/internal/database"
	"moneymanager/internal/logger"
	"moneymanager/internal/server"
)

// @title           Money Manager API
// @version         1.0
// @description     Dashboard backend for a personal money manager. It keeps the session, proxies the transaction service and drives the transaction editor.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared key of the dashboard deployment. Not required when DASHBOARD_API_KEY is unset.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	a, err := app.New(appConfig, dbConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	router := server.NewRouter(a)

	log.Infof("Starting Money Manager dashboard on port %s (transaction service %s)", appConfig.Port, appConfig.APIURL)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
