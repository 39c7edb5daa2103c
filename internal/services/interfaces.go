package services

import (
	"context"

	"github.com/shopspring/decimal"

	"moneymanager/internal/aggregator"
	"moneymanager/internal/client"
	"moneymanager/internal/form"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/period"
)

// TransactionAPI is the ledger side of the external service.
type TransactionAPI interface {
	Accounts(ctx context.Context) ([]models.Account, error)
	Transactions(ctx context.Context, r period.Range) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req models.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// AuthAPI is the auth side of the external service.
type AuthAPI interface {
	Login(ctx context.Context, creds client.Credentials) (*client.AuthResult, error)
	Register(ctx context.Context, creds client.Credentials) (*client.AuthResult, error)
}

// SessionStore holds the bearer token and profile.
type SessionStore interface {
	Save(ctx context.Context, token string, user *models.User) error
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// AuthServicer defines the contract for login, registration and the stored session.
type AuthServicer interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Authenticated(ctx context.Context) error
}

// AccountServicer defines the contract for listing accounts.
type AccountServicer interface {
	List(ctx context.Context) ([]models.Account, error)
}

// DashboardQuery selects the time window, filters and page of a dashboard.
type DashboardQuery struct {
	Range     period.Preset
	StartDate string
	EndDate   string
	Filter    aggregator.Filter
	Page      pagination.PageRequest
}

// Totals are the global figures of the window, independent of filters.
type Totals struct {
	Income  decimal.Decimal `json:"total_income"`
	Expense decimal.Decimal `json:"total_expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Dashboard is everything the overview screen renders.
type Dashboard struct {
	Accounts     []models.Account                            `json:"accounts"`
	TotalBalance decimal.Decimal                             `json:"total_balance"`
	Summary      Totals                                      `json:"summary"`
	Transactions pagination.PageResponse[models.Transaction] `json:"transactions"`
	Breakdown    []aggregator.CategoryTotal                  `json:"breakdown"`
	Chart        []aggregator.ChartBar                       `json:"chart"`
	Filter       aggregator.Filter                           `json:"filter"`
}

// DashboardServicer defines the contract for the overview screen.
type DashboardServicer interface {
	Load(ctx context.Context, q DashboardQuery) (*Dashboard, error)
}

// Origin identifies the caller of a mutation for the audit trail.
type Origin struct {
	IPAddress string
	RequestID string
}

// TransactionServicer defines the contract for the transaction editor.
type TransactionServicer interface {
	OpenForm(ctx context.Context, editingID string) (*form.State, error)
	Submit(ctx context.Context, state form.State, origin Origin) (*models.Transaction, error)
	Delete(ctx context.Context, id string, origin Origin) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, action string, tx models.Transaction, origin Origin)
	List(ctx context.Context, kind models.TransactionKind, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}
