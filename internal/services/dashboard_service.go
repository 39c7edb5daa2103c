package services

import (
	"context"

	"moneymanager/internal/aggregator"
	"moneymanager/internal/clock"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/period"
)

// dashboardService fetches accounts and transactions and aggregates them.
type dashboardService struct {
	api   TransactionAPI
	clock clock.Clock
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(api TransactionAPI, clk clock.Clock) DashboardServicer {
	if clk == nil {
		clk = clock.Real{}
	}
	return &dashboardService{api: api, clock: clk}
}

// Load fetches fresh data for the query. Nothing is cached between calls.
func (s *dashboardService) Load(ctx context.Context, q DashboardQuery) (*Dashboard, error) {
	if q.Filter.Division != "" && !q.Filter.Division.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "division must be Personal or Office")
	}

	r, err := period.Resolve(q.Range, q.StartDate, q.EndDate, s.clock.Now())
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	accounts, err := s.api.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.api.Transactions(ctx, r)
	if err != nil {
		return nil, err
	}

	summary := aggregator.Aggregate(txs, q.Filter)
	return &Dashboard{
		Accounts:     accounts,
		TotalBalance: models.TotalBalance(accounts),
		Summary: Totals{
			Income:  summary.TotalIncome,
			Expense: summary.TotalExpense,
			Balance: summary.Balance,
		},
		Transactions: pagination.Slice(summary.Transactions, q.Page),
		Breakdown:    summary.Breakdown,
		Chart:        summary.Chart(),
		Filter:       q.Filter,
	}, nil
}
