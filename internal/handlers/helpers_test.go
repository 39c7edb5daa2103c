package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"moneymanager/internal/form"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/services"
	"moneymanager/internal/validator"
)

// --- mock services ---

type mockAuthService struct {
	loginFn         func(ctx context.Context, email, password string) (*models.User, error)
	registerFn      func(ctx context.Context, username, email, password string) (*models.User, error)
	logoutFn        func(ctx context.Context) error
	currentUserFn   func(ctx context.Context) (*models.User, error)
	authenticatedFn func(ctx context.Context) error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return &models.User{Email: email}, nil
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, username, email, password)
	}
	return &models.User{Username: username, Email: email}, nil
}

func (m *mockAuthService) Logout(ctx context.Context) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx)
	}
	return &models.User{}, nil
}

func (m *mockAuthService) Authenticated(ctx context.Context) error {
	if m.authenticatedFn != nil {
		return m.authenticatedFn(ctx)
	}
	return nil
}

type mockAccountService struct {
	listFn func(ctx context.Context) ([]models.Account, error)
}

func (m *mockAccountService) List(ctx context.Context) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Account{}, nil
}

type mockDashboardService struct {
	loadFn func(ctx context.Context, q services.DashboardQuery) (*services.Dashboard, error)
}

func (m *mockDashboardService) Load(ctx context.Context, q services.DashboardQuery) (*services.Dashboard, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, q)
	}
	return &services.Dashboard{}, nil
}

type mockTransactionService struct {
	openFormFn func(ctx context.Context, editingID string) (*form.State, error)
	submitFn   func(ctx context.Context, state form.State, origin services.Origin) (*models.Transaction, error)
	deleteFn   func(ctx context.Context, id string, origin services.Origin) error
}

func (m *mockTransactionService) OpenForm(ctx context.Context, editingID string) (*form.State, error) {
	if m.openFormFn != nil {
		return m.openFormFn(ctx, editingID)
	}
	return &form.State{}, nil
}

func (m *mockTransactionService) Submit(ctx context.Context, state form.State, origin services.Origin) (*models.Transaction, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, state, origin)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) Delete(ctx context.Context, id string, origin services.Origin) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, origin)
	}
	return nil
}

type mockAuditService struct {
	listFn func(ctx context.Context, kind models.TransactionKind, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(_ context.Context, _ string, _ models.Transaction, _ services.Origin) {}

func (m *mockAuditService) List(ctx context.Context, kind models.TransactionKind, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(ctx, kind, page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

// verify interface compliance
var (
	_ services.AuthServicer        = (*mockAuthService)(nil)
	_ services.AccountServicer     = (*mockAccountService)(nil)
	_ services.DashboardServicer   = (*mockDashboardService)(nil)
	_ services.TransactionServicer = (*mockTransactionService)(nil)
	_ services.AuditServicer       = (*mockAuditService)(nil)
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertErrorMessage(t *testing.T, result map[string]interface{}, message string) {
	t.Helper()
	errObj, _ := result["error"].(map[string]interface{})
	if errObj["message"] != message {
		t.Errorf("expected error message %q, got %q", message, errObj["message"])
	}
}
