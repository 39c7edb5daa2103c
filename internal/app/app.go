// Package app wires configuration, local storage, the transaction service
// client and the services. The HTTP server and the CLI share it.
package app

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"moneymanager/internal/client"
	"moneymanager/internal/clock"
	"moneymanager/internal/config"
	"moneymanager/internal/database"
	"moneymanager/internal/services"
	"moneymanager/internal/session"
)

// App holds the wired services.
type App struct {
	Config  *config.Config
	Session *session.Session
	Client  *client.Client

	Auth         services.AuthServicer
	Accounts     services.AccountServicer
	Dashboard    services.DashboardServicer
	Transactions services.TransactionServicer
	Audit        services.AuditServicer

	db *database.Manager
}

// New opens and migrates the local database and wires everything on top.
func New(cfg *config.Config, dbConfig *database.Config) (*App, error) {
	mgr, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := mgr.Migrate(); err != nil {
		_ = mgr.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	a := Build(cfg, mgr.DB(), clock.Real{}, nil)
	a.db = mgr
	return a, nil
}

// Build wires the services over an already migrated database. A nil
// httpClient gets one with the configured request timeout.
func Build(cfg *config.Config, db *gorm.DB, clk clock.Clock, httpClient *http.Client) *App {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	sess := session.New(session.NewGormStore(db), clk)
	api := client.New(cfg.APIURL, httpClient, sess.Sign)
	audit := services.NewAuditService(db)

	return &App{
		Config:       cfg,
		Session:      sess,
		Client:       api,
		Auth:         services.NewAuthService(api, sess),
		Accounts:     services.NewAccountService(api),
		Dashboard:    services.NewDashboardService(api, clk),
		Transactions: services.NewTransactionService(api, audit, services.NewEditWindow(cfg.EditWindow, clk), clk),
		Audit:        audit,
	}
}

// Close releases the database opened by New.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
