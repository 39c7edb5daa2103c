package form

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// Action is a user interaction with the editor.
type Action interface {
	action()
}

// SelectKind switches the transaction kind.
type SelectKind struct{ Kind Kind }

// SelectAccount picks the main account.
type SelectAccount struct{ ID string }

// SelectTransferTo picks the destination of a transfer.
type SelectTransferTo struct{ ID string }

// SetAmount changes the amount.
type SetAmount struct{ Amount decimal.Decimal }

// SetDescription changes the free-text description.
type SetDescription struct{ Text string }

// SetCategory picks a category from the kind's vocabulary.
type SetCategory struct{ Category string }

// SetDivision picks Personal or Office.
type SetDivision struct{ Division models.Division }

// SetDate changes the effective date.
type SetDate struct{ Date time.Time }

// SetRecipient changes the email a send goes to.
type SetRecipient struct{ Email string }

func (SelectKind) action()       {}
func (SelectAccount) action()    {}
func (SelectTransferTo) action() {}
func (SetAmount) action()        {}
func (SetDescription) action()   {}
func (SetCategory) action()      {}
func (SetDivision) action()      {}
func (SetDate) action()          {}
func (SetRecipient) action()     {}

// Reduce applies a to s and returns the new state. Actions that the current
// state does not allow leave it unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SelectKind:
		if !s.KindEnabled(a.Kind) {
			return s
		}
		s.Kind = a.Kind
		s.Category = a.Kind.defaultCategory()
		if a.Kind == KindTransfer {
			s.TransferTo = s.distinctTransferTo()
		}

	case SelectAccount:
		if !s.hasAccount(a.ID) {
			return s
		}
		s.Account = a.ID
		if s.Kind == KindTransfer && s.TransferTo == a.ID {
			s.TransferTo = ""
			s.TransferTo = s.distinctTransferTo()
		}

	case SelectTransferTo:
		if !s.hasAccount(a.ID) || a.ID == s.Account {
			return s
		}
		s.TransferTo = a.ID

	case SetAmount:
		if s.AmountLocked() || a.Amount.IsNegative() {
			return s
		}
		s.Amount = a.Amount

	case SetDescription:
		s.Description = a.Text

	case SetCategory:
		if !s.Kind.allowsCategory(a.Category) {
			return s
		}
		s.Category = a.Category

	case SetDivision:
		if !a.Division.Valid() {
			return s
		}
		s.Division = a.Division

	case SetDate:
		if a.Date.IsZero() {
			return s
		}
		s.Date = a.Date

	case SetRecipient:
		s.RecipientEmail = strings.TrimSpace(a.Email)
	}
	return s
}
