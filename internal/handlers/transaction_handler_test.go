package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/form"
	"moneymanager/internal/middleware"
	"moneymanager/internal/models"
	"moneymanager/internal/services"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogging())
	r.POST("/transactions", handler.CreateTransaction)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func submitBody(t *testing.T, s form.State) string {
	t.Helper()
	body, err := json.Marshal(SubmitRequest{State: s})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return string(body)
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 with refresh", func(t *testing.T) {
		var gotOrigin services.Origin
		svc := &mockTransactionService{
			submitFn: func(_ context.Context, s form.State, origin services.Origin) (*models.Transaction, error) {
				gotOrigin = origin
				return &models.Transaction{ID: "tx-1", Type: s.Kind.Wire(), Amount: s.Amount}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		s := twoAccountState()
		s.Amount = decimal.NewFromInt(40)
		rec := doRequest(r, "POST", "/transactions", submitBody(t, s))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["refresh"] != true {
			t.Error("expected refresh flag")
		}
		tx := result["transaction"].(map[string]interface{})
		if tx["_id"] != "tx-1" || tx["type"] != "deposit" {
			t.Errorf("unexpected transaction: %v", tx)
		}
		if gotOrigin.RequestID == "" || gotOrigin.RequestID != rec.Header().Get("X-Request-ID") {
			t.Errorf("expected request id in origin, got %+v", gotOrigin)
		}
	})

	t.Run("returns 400 for edit-mode state", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		s := twoAccountState()
		s.EditingID = "tx-1"
		rec := doRequest(r, "POST", "/transactions", submitBody(t, s))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"state":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown kind before submitting", func(t *testing.T) {
		called := false
		svc := &mockTransactionService{
			submitFn: func(context.Context, form.State, services.Origin) (*models.Transaction, error) {
				called = true
				return &models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		s := twoAccountState()
		s.Kind = "p2p"
		rec := doRequest(r, "POST", "/transactions", submitBody(t, s))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if called {
			t.Error("service must not be called for an unknown kind")
		}
	})

	t.Run("returns validation errors from the form", func(t *testing.T) {
		svc := &mockTransactionService{
			submitFn: func(context.Context, form.State, services.Origin) (*models.Transaction, error) {
				return nil, apperrors.ErrSameAccountTransfer
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions", submitBody(t, twoAccountState()))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SAME_ACCOUNT_TRANSFER")
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("uses path id", func(t *testing.T) {
		var gotID string
		svc := &mockTransactionService{
			submitFn: func(_ context.Context, s form.State, _ services.Origin) (*models.Transaction, error) {
				gotID = s.EditingID
				return &models.Transaction{ID: s.EditingID}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		s := twoAccountState()
		s.EditingID = "ignored"
		rec := doRequest(r, "PUT", "/transactions/tx-7", submitBody(t, s))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != "tx-7" {
			t.Errorf("expected tx-7, got %q", gotID)
		}
	})

	t.Run("returns 409 when window expired", func(t *testing.T) {
		svc := &mockTransactionService{
			submitFn: func(context.Context, form.State, services.Origin) (*models.Transaction, error) {
				return nil, apperrors.ErrEditWindowExpired
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/tx-7", submitBody(t, twoAccountState()))

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EDIT_WINDOW_EXPIRED")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var gotID string
		svc := &mockTransactionService{
			deleteFn: func(_ context.Context, id string, _ services.Origin) error {
				gotID = id
				return nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "DELETE", "/transactions/tx-3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != "tx-3" {
			t.Errorf("expected tx-3, got %q", gotID)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteFn: func(context.Context, string, services.Origin) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "DELETE", "/transactions/nope", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}
