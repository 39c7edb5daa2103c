package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the ledger discriminator stored by the transaction service.
type TransactionKind string

const (
	KindIncome   TransactionKind = "income"
	KindExpense  TransactionKind = "expense"
	KindDeposit  TransactionKind = "deposit"
	KindTransfer TransactionKind = "transfer"
	KindP2P      TransactionKind = "p2p"
)

// IsOutflow reports whether the kind counts towards total expense.
func (k TransactionKind) IsOutflow() bool {
	return k == KindExpense || k == KindP2P
}

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindDeposit, KindTransfer, KindP2P:
		return true
	}
	return false
}

// Division is the cost-center tag of a transaction.
type Division string

const (
	DivisionPersonal Division = "Personal"
	DivisionOffice   Division = "Office"
)

// Valid reports whether d is Personal or Office.
func (d Division) Valid() bool {
	return d == DivisionPersonal || d == DivisionOffice
}

// CategoryTransfer is the synthetic category of deposits and transfers.
const CategoryTransfer = "Transfer"

// ExpenseCategories is the category vocabulary for expenses and sends.
var ExpenseCategories = []string{"Food", "Fuel", "Movie", "Loan", "Medical", "Shopping", "Other"}

// IncomeCategories is the category vocabulary for income.
var IncomeCategories = []string{"Income", "Freelancer", "Investment", "Others"}

// Transaction represents a ledger record owned by the transaction service.
type Transaction struct {
	ID             string          `json:"_id"`
	Type           TransactionKind `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category"`
	Division       Division        `json:"division"`
	Date           time.Time       `json:"date"`
	CreatedAt      time.Time       `json:"createdAt"`
	AccountFrom    string          `json:"accountFrom,omitempty"`
	AccountTo      string          `json:"accountTo,omitempty"`
	RecipientEmail string          `json:"recipientEmail,omitempty"`
}

// TransactionRequest is the body sent to create or update a transaction.
// Account and recipient fields that do not apply are sent as explicit nulls.
type TransactionRequest struct {
	Type           TransactionKind `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Division       Division        `json:"division"`
	Date           time.Time       `json:"date"`
	AccountFrom    *string         `json:"accountFrom"`
	AccountTo      *string         `json:"accountTo"`
	RecipientEmail *string         `json:"recipientEmail"`
}

// MarshalJSON encodes the amount as a JSON number, which is what the
// transaction service expects.
func (r TransactionRequest) MarshalJSON() ([]byte, error) {
	type wire TransactionRequest
	return json.Marshal(struct {
		wire
		Amount json.Number `json:"amount"`
	}{
		wire:   wire(r),
		Amount: json.Number(r.Amount.String()),
	})
}
