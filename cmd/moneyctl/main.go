package main

import (
	"fmt"
	"os"

	"moneymanager/internal/app"
	"moneymanager/internal/commands"
	"moneymanager/internal/config"
	"moneymanager/internal/database"
	"moneymanager/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := commands.NewRootCommand(open).Execute(); err != nil {
		os.Exit(1)
	}
}

// open wires the services from the environment, the same way the server does.
func open() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	return app.New(cfg, dbConfig)
}
