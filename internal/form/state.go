// Package form is the transaction editor modelled as a pure reducer.
//
// A State is created with Open, advanced with Reduce, rendered with Describe
// and finally turned into a request with Build. None of these functions
// perform I/O or read the clock; the caller supplies "now" to Open.
package form

import (
	"time"

	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// State is the complete editor state. Account is the main account picker:
// it is the destination of a deposit and the source of every other kind.
// TransferTo is only used by transfers.
type State struct {
	EditingID      string           `json:"editing_id,omitempty"`
	OriginalKind   Kind             `json:"original_kind,omitempty" binding:"omitempty,form_kind"`
	Kind           Kind             `json:"kind" binding:"omitempty,form_kind"`
	Amount         decimal.Decimal  `json:"amount"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Division       models.Division  `json:"division"`
	Date           time.Time        `json:"date"`
	Account        string           `json:"account"`
	TransferTo     string           `json:"transfer_to"`
	RecipientEmail string           `json:"recipient_email"`
	Accounts       []models.Account `json:"accounts"`
}

// Open returns the initial state for a new transaction, or for editing the
// given record when editing is non-nil.
func Open(accounts []models.Account, editing *models.Transaction, now time.Time) State {
	s := State{
		Kind:     KindDeposit,
		Division: models.DivisionPersonal,
		Date:     now.Truncate(time.Minute),
		Accounts: accounts,
	}
	if len(accounts) > 0 {
		s.Account = accounts[0].ID
	}
	if len(accounts) > 1 {
		s.TransferTo = accounts[1].ID
	}
	s.Category = s.Kind.defaultCategory()

	if editing == nil {
		return s
	}

	kind := KindFromWire(editing.Type)
	if !kind.Valid() {
		kind = KindExpense
	}
	s.EditingID = editing.ID
	s.Kind = kind
	s.OriginalKind = kind
	s.Amount = editing.Amount
	s.Description = editing.Description
	s.Category = editing.Category
	if s.Category == "" {
		s.Category = kind.defaultCategory()
	}
	if editing.Division.Valid() {
		s.Division = editing.Division
	}
	if !editing.Date.IsZero() {
		s.Date = editing.Date
	}
	switch {
	case editing.AccountFrom != "":
		s.Account = editing.AccountFrom
	case editing.AccountTo != "":
		s.Account = editing.AccountTo
	}
	if kind == KindTransfer && editing.AccountTo != "" {
		s.TransferTo = editing.AccountTo
	}
	if kind == KindSend {
		s.RecipientEmail = editing.RecipientEmail
	}
	s.TransferTo = s.distinctTransferTo()
	return s
}

// Editing reports whether the state edits an existing record.
func (s State) Editing() bool {
	return s.EditingID != ""
}

// ZeroBalance reports whether the accounts hold no money in total.
func (s State) ZeroBalance() bool {
	return !models.TotalBalance(s.Accounts).IsPositive()
}

// KindEnabled reports whether k may be selected. When creating with no
// money in any account only deposits are possible.
func (s State) KindEnabled(k Kind) bool {
	if !k.Valid() {
		return false
	}
	if s.Editing() || k == KindDeposit {
		return true
	}
	return !s.ZeroBalance()
}

// AmountLocked reports whether the amount is read-only. Amounts of settled
// deposits, transfers and sends cannot be changed after the fact.
func (s State) AmountLocked() bool {
	if !s.Editing() {
		return false
	}
	return s.OriginalKind != KindIncome && s.OriginalKind != KindExpense
}

func (s State) hasAccount(id string) bool {
	_, ok := models.FindAccount(s.Accounts, id)
	return ok
}

// distinctTransferTo returns a transfer destination that differs from the
// selected account, or "" when no other account exists.
func (s State) distinctTransferTo() string {
	if s.TransferTo != "" && s.TransferTo != s.Account {
		return s.TransferTo
	}
	for _, a := range s.Accounts {
		if a.ID != s.Account {
			return a.ID
		}
	}
	return ""
}
