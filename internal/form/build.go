package form

import (
	"fmt"
	"strings"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
)

// Build validates s and packages it as the request sent to the transaction
// service. Account and recipient fields that the kind does not use are nil.
func Build(s State) (models.TransactionRequest, error) {
	var req models.TransactionRequest

	if !s.Kind.Valid() {
		return req, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown kind %q", s.Kind))
	}
	if !s.KindEnabled(s.Kind) {
		return req, apperrors.ErrKindDisabled
	}
	if !s.Amount.IsPositive() {
		return req, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !s.Division.Valid() {
		return req, apperrors.WithMessage(apperrors.ErrInvalidInput, "division must be Personal or Office")
	}
	if s.Date.IsZero() {
		return req, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	req.Type = s.Kind.Wire()
	req.Amount = s.Amount
	req.Description = s.Description
	req.Category = s.Category
	req.Division = s.Division
	req.Date = s.Date

	if s.Kind.forcedCategory() {
		req.Category = models.CategoryTransfer
	} else if req.Category == "" {
		req.Category = s.Kind.defaultCategory()
	}

	switch s.Kind {
	case KindDeposit:
		to, err := s.account(s.Account)
		if err != nil {
			return req, err
		}
		req.AccountTo = to

	case KindExpense:
		from, err := s.account(s.Account)
		if err != nil {
			return req, err
		}
		req.AccountFrom = from

	case KindTransfer:
		from, err := s.account(s.Account)
		if err != nil {
			return req, err
		}
		to, err := s.account(s.TransferTo)
		if err != nil {
			return req, err
		}
		if *from == *to {
			return req, apperrors.ErrSameAccountTransfer
		}
		req.AccountFrom = from
		req.AccountTo = to

	case KindSend:
		from, err := s.account(s.Account)
		if err != nil {
			return req, err
		}
		recipient := strings.TrimSpace(s.RecipientEmail)
		if recipient == "" {
			return req, apperrors.ErrRecipientRequired
		}
		req.AccountFrom = from
		req.RecipientEmail = &recipient
		req.Description = "Sent to " + recipient
	}

	return req, nil
}

// account returns a pointer to a copy of id after checking that it names
// one of the loaded accounts.
func (s State) account(id string) (*string, error) {
	if id == "" {
		return nil, apperrors.ErrAccountRequired
	}
	if !s.hasAccount(id) {
		return nil, apperrors.WithMessage(apperrors.ErrAccountRequired, fmt.Sprintf("unknown account %q", id))
	}
	return &id, nil
}
