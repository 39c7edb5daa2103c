package form

import "moneymanager/internal/models"

// Kind is the transaction kind as offered by the form. It differs from the
// ledger kind only in that peer-to-peer sends are called "send".
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindIncome   Kind = "income"
	KindExpense  Kind = "expense"
	KindTransfer Kind = "transfer"
	KindSend     Kind = "send"
)

// Kinds lists the form kinds in display order.
var Kinds = []Kind{KindDeposit, KindIncome, KindExpense, KindTransfer, KindSend}

// Valid reports whether k is a form kind.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindIncome, KindExpense, KindTransfer, KindSend:
		return true
	}
	return false
}

// Label is the button text for the kind.
func (k Kind) Label() string {
	if k == KindDeposit {
		return "Add Money"
	}
	return string(k)
}

// Wire maps the form kind to the ledger kind sent to the transaction service.
func (k Kind) Wire() models.TransactionKind {
	if k == KindSend {
		return models.KindP2P
	}
	return models.TransactionKind(k)
}

// KindFromWire maps a stored ledger kind back to its form kind.
func KindFromWire(t models.TransactionKind) Kind {
	if t == models.KindP2P {
		return KindSend
	}
	return Kind(t)
}

// forcedCategory reports whether the kind always carries the Transfer category.
func (k Kind) forcedCategory() bool {
	return k == KindDeposit || k == KindTransfer
}

// vocabulary is the category list the kind draws from.
func (k Kind) vocabulary() []string {
	switch k {
	case KindIncome:
		return models.IncomeCategories
	case KindExpense, KindSend:
		return models.ExpenseCategories
	}
	return nil
}

func (k Kind) defaultCategory() string {
	if k.forcedCategory() {
		return models.CategoryTransfer
	}
	return k.vocabulary()[0]
}

func (k Kind) allowsCategory(category string) bool {
	for _, c := range k.vocabulary() {
		if c == category {
			return true
		}
	}
	return false
}
