package services

import (
	"context"
	"strings"

	"moneymanager/internal/clock"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/form"
	"moneymanager/internal/logger"
	"moneymanager/internal/models"
	"moneymanager/internal/period"
)

// transactionService opens, submits and deletes transactions. Edit-window
// checks happen here so no caller can bypass them.
type transactionService struct {
	api    TransactionAPI
	audit  AuditServicer
	window EditWindow
	clock  clock.Clock
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(api TransactionAPI, audit AuditServicer, window EditWindow, clk clock.Clock) TransactionServicer {
	if clk == nil {
		clk = clock.Real{}
	}
	return &transactionService{
		api:    api,
		audit:  audit,
		window: window,
		clock:  clk,
	}
}

// OpenForm returns the initial editor state. A non-empty editingID loads
// that record, which must still be inside the edit window.
func (s *transactionService) OpenForm(ctx context.Context, editingID string) (*form.State, error) {
	accounts, err := s.api.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	var editing *models.Transaction
	if editingID = strings.TrimSpace(editingID); editingID != "" {
		editing, err = s.editable(ctx, editingID)
		if err != nil {
			return nil, err
		}
	}

	state := form.Open(accounts, editing, s.clock.Now())
	return &state, nil
}

// Submit builds the request from state and creates or updates the record.
// Accounts and, when editing, the original record are re-fetched so the
// submission is checked against the service's current data rather than
// whatever the caller sent back.
func (s *transactionService) Submit(ctx context.Context, state form.State, origin Origin) (*models.Transaction, error) {
	accounts, err := s.api.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	state.Accounts = accounts

	var original *models.Transaction
	if state.Editing() {
		original, err = s.editable(ctx, state.EditingID)
		if err != nil {
			return nil, err
		}
		state.OriginalKind = form.KindFromWire(original.Type)
		if state.AmountLocked() {
			state.Amount = original.Amount
		}
	}

	req, err := form.Build(state)
	if err != nil {
		return nil, err
	}

	if original == nil {
		tx, err := s.api.CreateTransaction(ctx, req)
		if err != nil {
			return nil, err
		}
		logger.Get().Infow("transaction created", "id", tx.ID, "type", tx.Type, "request_id", origin.RequestID)
		s.audit.Log(ctx, AuditCreate, *tx, origin)
		return tx, nil
	}

	tx, err := s.api.UpdateTransaction(ctx, original.ID, req)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("transaction updated", "id", tx.ID, "type", tx.Type, "request_id", origin.RequestID)
	s.audit.Log(ctx, AuditUpdate, *tx, origin)
	return tx, nil
}

// Delete removes a record that is still inside the edit window.
func (s *transactionService) Delete(ctx context.Context, id string, origin Origin) error {
	tx, err := s.editable(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if err := s.api.DeleteTransaction(ctx, tx.ID); err != nil {
		return err
	}
	logger.Get().Infow("transaction deleted", "id", tx.ID, "request_id", origin.RequestID)
	s.audit.Log(ctx, AuditDelete, *tx, origin)
	return nil
}

// editable looks the record up across all time and checks the edit window.
// The service has no single-record endpoint.
func (s *transactionService) editable(ctx context.Context, id string) (*models.Transaction, error) {
	if id == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction id is required")
	}
	txs, err := s.api.Transactions(ctx, period.Range{})
	if err != nil {
		return nil, err
	}
	for i := range txs {
		if txs[i].ID != id {
			continue
		}
		if !s.window.Allows(txs[i].CreatedAt) {
			return nil, apperrors.ErrEditWindowExpired
		}
		return &txs[i], nil
	}
	return nil, apperrors.ErrTransactionNotFound
}
