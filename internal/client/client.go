// Package client provides an HTTP client for the external transaction and
// auth service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
	"moneymanager/internal/period"
)

// Signer authenticates an outbound request, typically by setting a bearer
// token. It is called once per request.
type Signer func(ctx context.Context, req *http.Request) error

// Credentials is the body of the login and register endpoints.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the response of login and register: a token plus profile.
type AuthResult struct {
	Token string `json:"token"`
	models.User
}

type requestIDKey struct{}

// WithRequestID returns a context whose outbound requests carry id as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored by WithRequestID.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client communicates with the transaction service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sign       Signer
}

// New creates a client. sign may be nil for a client that only
// authenticates.
func New(baseURL string, httpClient *http.Client, sign Signer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sign:       sign,
	}
}

// Accounts fetches the caller's accounts.
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, "/api/transactions/accounts", nil, nil, true, "", &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// Transactions fetches the transactions inside r. An all-time range sends
// no date parameters.
func (c *Client) Transactions(ctx context.Context, r period.Range) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", r.Params(), nil, true, "", &txs); err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// CreateTransaction submits a new transaction and returns the stored record.
func (c *Client) CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions/add", nil, req, true, "Failed to add transaction", &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction replaces the transaction with the given id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req models.TransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+url.PathEscape(id), nil, req, true, "Failed to update transaction", &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes the transaction with the given id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(id), nil, nil, true, "Failed to delete transaction", nil)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, false, "Login failed", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account with the auth service and returns its token.
func (c *Client) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, creds, false, "Registration failed", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do performs one round trip. Non-2xx responses become *AppError carrying the
// service's message, or fallback when it sent none.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, signed bool, fallback string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("marshaling request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if signed && c.sign != nil {
		if err := c.sign(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpstreamUnavailable, fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.Wrap(apperrors.ErrUpstream, fmt.Errorf("decoding %s %s response: %w", method, path, err))
	}
	return nil
}

func upstreamError(resp *http.Response, fallback string) error {
	if fallback == "" {
		fallback = apperrors.ErrUpstream.Message
	}
	var payload struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, &payload)

	appErr := apperrors.Upstream(resp.StatusCode, payload.Message, fallback)
	appErr.Internal = fmt.Errorf("%s %s: unexpected status %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode)
	return appErr
}
