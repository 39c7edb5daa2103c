package testutil

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// RecordedRequest is a request received by FakeAPI.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Body          string
	Authorization string
	RequestID     string
}

type failure struct {
	status  int
	message string
}

// FakeAPI is an in-memory stand-in for the external transaction service.
// It keeps account balances in step with the transactions it accepts.
type FakeAPI struct {
	Server *httptest.Server

	mu           sync.Mutex
	token        string
	now          func() time.Time
	accounts     []models.Account
	transactions []models.Transaction
	requests     []RecordedRequest
	failures     map[string]failure
	seq          int
}

// NewFakeAPI starts a fake service that accepts the given bearer token.
// The server is closed when the test ends.
func NewFakeAPI(t *testing.T, token string) *FakeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &FakeAPI{
		token:    token,
		now:      time.Now,
		failures: map[string]failure{},
	}

	r := gin.New()
	r.Use(f.record, f.injectFailures)
	r.POST("/api/auth/login", f.login)
	r.POST("/api/auth/register", f.register)

	tx := r.Group("/api/transactions", f.requireToken)
	tx.GET("/accounts", f.listAccounts)
	tx.GET("", f.listTransactions)
	tx.POST("/add", f.addTransaction)
	tx.PUT("/:id", f.updateTransaction)
	tx.DELETE("/:id", f.deleteTransaction)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the base URL of the fake.
func (f *FakeAPI) URL() string { return f.Server.URL }

// SetNow replaces the clock used for createdAt stamps.
func (f *FakeAPI) SetNow(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// AddAccount registers an account.
func (f *FakeAPI) AddAccount(a models.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts = append(f.accounts, a)
}

// AddTransaction registers an existing ledger record as-is.
func (f *FakeAPI) AddTransaction(tx models.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions = append(f.transactions, tx)
}

// Accounts returns a copy of the current accounts.
func (f *FakeAPI) Accounts() []models.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Account(nil), f.accounts...)
}

// Transactions returns a copy of the current ledger.
func (f *FakeAPI) Transactions() []models.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Transaction(nil), f.transactions...)
}

// Requests returns every request received so far.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// LastRequest returns the most recent request with the given method.
func (f *FakeAPI) LastRequest(method string) (RecordedRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].Method == method {
			return f.requests[i], true
		}
	}
	return RecordedRequest{}, false
}

// Fail makes every request matching method and path answer with status and
// the given message. An empty message sends a body without one.
func (f *FakeAPI) Fail(method, path string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = failure{status: status, message: message}
}

func (f *FakeAPI) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:        c.Request.Method,
		Path:          c.Request.URL.Path,
		Query:         c.Request.URL.Query(),
		Body:          string(body),
		Authorization: c.GetHeader("Authorization"),
		RequestID:     c.GetHeader("X-Request-ID"),
	})
	f.mu.Unlock()
	c.Next()
}

func (f *FakeAPI) injectFailures(c *gin.Context) {
	f.mu.Lock()
	fail, ok := f.failures[c.Request.Method+" "+c.Request.URL.Path]
	f.mu.Unlock()
	if !ok {
		c.Next()
		return
	}
	if fail.message == "" {
		c.AbortWithStatusJSON(fail.status, gin.H{})
		return
	}
	c.AbortWithStatusJSON(fail.status, gin.H{"message": fail.message})
}

func (f *FakeAPI) requireToken(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+f.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
		return
	}
	c.Next()
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f *FakeAPI) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "wrong" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": "user-1", "username": "asha", "email": req.Email, "token": f.token})
}

func (f *FakeAPI) register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please add all fields"})
		return
	}
	if req.Email == "taken@example.com" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"_id": "user-2", "username": req.Username, "email": req.Email, "token": f.token})
}

func (f *FakeAPI) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, f.Accounts())
}

func (f *FakeAPI) listTransactions(c *gin.Context) {
	start, hasStart := parseBound(c.Query("startDate"))
	end, hasEnd := parseBound(c.Query("endDate"))

	out := make([]models.Transaction, 0)
	for _, tx := range f.Transactions() {
		if hasStart && tx.Date.Before(start) {
			continue
		}
		if hasEnd && tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	c.JSON(http.StatusOK, out)
}

func (f *FakeAPI) addTransaction(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	tx := fromRequest(fmt.Sprintf("tx-%d", f.seq), req)
	tx.CreatedAt = f.now()
	f.applyBalance(tx, 1)
	f.transactions = append(f.transactions, tx)
	c.JSON(http.StatusCreated, tx)
}

func (f *FakeAPI) updateTransaction(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.transactions {
		if existing.ID != c.Param("id") {
			continue
		}
		f.applyBalance(existing, -1)
		tx := fromRequest(existing.ID, req)
		tx.CreatedAt = existing.CreatedAt
		f.applyBalance(tx, 1)
		f.transactions[i] = tx
		c.JSON(http.StatusOK, tx)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
}

func (f *FakeAPI) deleteTransaction(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.transactions {
		if existing.ID == c.Param("id") {
			f.applyBalance(existing, -1)
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Transaction removed"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
}

// applyBalance moves money for tx; sign -1 reverses it. Caller holds mu.
func (f *FakeAPI) applyBalance(tx models.Transaction, sign int64) {
	amount := tx.Amount.Mul(decimal.NewFromInt(sign))
	for i := range f.accounts {
		if tx.AccountFrom != "" && f.accounts[i].ID == tx.AccountFrom {
			f.accounts[i].Balance = f.accounts[i].Balance.Sub(amount)
		}
		if tx.AccountTo != "" && f.accounts[i].ID == tx.AccountTo {
			f.accounts[i].Balance = f.accounts[i].Balance.Add(amount)
		}
	}
}

func fromRequest(id string, req models.TransactionRequest) models.Transaction {
	tx := models.Transaction{
		ID:          id,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Division:    req.Division,
		Date:        req.Date,
	}
	if req.AccountFrom != nil {
		tx.AccountFrom = *req.AccountFrom
	}
	if req.AccountTo != nil {
		tx.AccountTo = *req.AccountTo
	}
	if req.RecipientEmail != nil {
		tx.RecipientEmail = *req.RecipientEmail
	}
	return tx
}

func parseBound(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
