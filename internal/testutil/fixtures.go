package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Account returns a bank account with the given balance.
func Account(balance int64) models.Account {
	n := nextID()
	return models.Account{
		ID:      fmt.Sprintf("acc-%d", n),
		Name:    fmt.Sprintf("Test Account %d", n),
		Type:    models.AccountTypeBank,
		Balance: decimal.NewFromInt(balance),
	}
}

// Transaction returns a record of the given kind created at createdAt.
func Transaction(kind models.TransactionKind, amount int64, category string, createdAt time.Time) models.Transaction {
	return models.Transaction{
		ID:        fmt.Sprintf("tx-fixture-%d", nextID()),
		Type:      kind,
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Division:  models.DivisionPersonal,
		Date:      createdAt,
		CreatedAt: createdAt,
	}
}

// SignedToken returns an HS256 JWT that expires at exp.
func SignedToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}
