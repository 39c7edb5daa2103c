package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// Action type names accepted by ParseAction.
const (
	ActionSelectKind       = "select_kind"
	ActionSelectAccount    = "select_account"
	ActionSelectTransferTo = "select_transfer_to"
	ActionSetAmount        = "set_amount"
	ActionSetDescription   = "set_description"
	ActionSetCategory      = "set_category"
	ActionSetDivision      = "set_division"
	ActionSetDate          = "set_date"
	ActionSetRecipient     = "set_recipient"
)

// ParseAction decodes a named action with a string value, as sent by a
// browser or given on the command line.
func ParseAction(name, value string) (Action, error) {
	switch name {
	case ActionSelectKind:
		k := Kind(value)
		if !k.Valid() {
			return nil, fmt.Errorf("unknown kind %q", value)
		}
		return SelectKind{Kind: k}, nil
	case ActionSelectAccount:
		return SelectAccount{ID: value}, nil
	case ActionSelectTransferTo:
		return SelectTransferTo{ID: value}, nil
	case ActionSetAmount:
		if strings.TrimSpace(value) == "" {
			return SetAmount{Amount: decimal.Zero}, nil
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q", value)
		}
		return SetAmount{Amount: amount}, nil
	case ActionSetDescription:
		return SetDescription{Text: value}, nil
	case ActionSetCategory:
		return SetCategory{Category: value}, nil
	case ActionSetDivision:
		d := models.Division(value)
		if !d.Valid() {
			return nil, fmt.Errorf("unknown division %q", value)
		}
		return SetDivision{Division: d}, nil
	case ActionSetDate:
		t, err := ParseDate(value)
		if err != nil {
			return nil, err
		}
		return SetDate{Date: t}, nil
	case ActionSetRecipient:
		return SetRecipient{Email: value}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", name)
	}
}

// dateLayouts are tried in order by ParseDate. The second one is what an
// HTML datetime-local input produces.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an effective date in any of the accepted layouts.
// Layouts without a zone are read as UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD", value)
}
