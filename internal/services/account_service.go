package services

import (
	"context"

	"moneymanager/internal/models"
)

// accountService lists accounts. Balances are owned upstream and are only
// ever replaced by a re-fetch.
type accountService struct {
	api TransactionAPI
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(api TransactionAPI) AccountServicer {
	return &accountService{api: api}
}

// List fetches the current accounts.
func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	return s.api.Accounts(ctx)
}
