package form

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
)

var now = time.Date(2025, 3, 1, 9, 30, 45, 0, time.UTC)

func funded() []models.Account {
	return []models.Account{
		{ID: "bank", Name: "HDFC", Type: models.AccountTypeBank, Balance: decimal.NewFromInt(5000)},
		{ID: "wallet", Name: "Paytm", Type: models.AccountTypeWallet, Balance: decimal.NewFromInt(300)},
		{ID: "cash", Name: "Cash", Type: models.AccountTypeOther, Balance: decimal.Zero},
	}
}

func empty() []models.Account {
	return []models.Account{
		{ID: "bank", Name: "HDFC", Type: models.AccountTypeBank, Balance: decimal.Zero},
		{ID: "wallet", Name: "Paytm", Type: models.AccountTypeWallet, Balance: decimal.NewFromInt(-20)},
	}
}

func apply(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func TestOpen_Defaults(t *testing.T) {
	s := Open(funded(), nil, now)

	assert.Equal(t, KindDeposit, s.Kind)
	assert.Equal(t, "bank", s.Account)
	assert.Equal(t, "wallet", s.TransferTo)
	assert.Equal(t, models.DivisionPersonal, s.Division)
	assert.Equal(t, models.CategoryTransfer, s.Category)
	assert.Equal(t, now.Truncate(time.Minute), s.Date)
	assert.False(t, s.Editing())
}

func TestOpen_NoAccounts(t *testing.T) {
	s := Open(nil, nil, now)
	assert.Empty(t, s.Account)
	assert.Empty(t, s.TransferTo)
	assert.True(t, s.ZeroBalance())
}

func TestOpen_EditingP2P(t *testing.T) {
	record := &models.Transaction{
		ID:             "t1",
		Type:           models.KindP2P,
		Amount:         decimal.NewFromInt(75),
		Description:    "Sent to bob@example.com",
		Category:       "Food",
		Division:       models.DivisionOffice,
		Date:           now.Add(-time.Hour),
		AccountFrom:    "wallet",
		RecipientEmail: "bob@example.com",
	}

	s := Open(funded(), record, now)

	assert.True(t, s.Editing())
	assert.Equal(t, KindSend, s.Kind)
	assert.Equal(t, KindSend, s.OriginalKind)
	assert.Equal(t, "wallet", s.Account)
	assert.Equal(t, models.DivisionOffice, s.Division)
	assert.Equal(t, "bob@example.com", s.RecipientEmail)
	assert.True(t, s.Amount.Equal(decimal.NewFromInt(75)))
}

func TestOpen_EditingDepositUsesDestination(t *testing.T) {
	record := &models.Transaction{ID: "t2", Type: models.KindDeposit, Amount: decimal.NewFromInt(10), AccountTo: "cash"}
	s := Open(funded(), record, now)
	assert.Equal(t, "cash", s.Account)
	assert.NotEqual(t, s.Account, s.TransferTo)
}

func TestKindGuard_ZeroBalance(t *testing.T) {
	s := Open(empty(), nil, now)

	for _, k := range Kinds {
		assert.Equal(t, k == KindDeposit, s.KindEnabled(k), "kind %s", k)
	}

	s = Reduce(s, SelectKind{Kind: KindExpense})
	assert.Equal(t, KindDeposit, s.Kind, "disabled kinds are not selectable")

	view := Describe(s)
	for _, opt := range view.Kinds {
		assert.Equal(t, opt.Kind != KindDeposit, opt.Disabled, "kind %s", opt.Kind)
	}
}

func TestKindGuard_EditingIgnoresZeroBalance(t *testing.T) {
	record := &models.Transaction{ID: "t3", Type: models.KindExpense, Amount: decimal.NewFromInt(5), AccountFrom: "bank"}
	s := Open(empty(), record, now)

	for _, k := range Kinds {
		assert.True(t, s.KindEnabled(k), "kind %s", k)
	}
}

func TestSelectKind_ResetsCategory(t *testing.T) {
	s := Open(funded(), nil, now)

	s = Reduce(s, SelectKind{Kind: KindIncome})
	assert.Equal(t, "Income", s.Category)

	s = Reduce(s, SetCategory{Category: "Freelancer"})
	assert.Equal(t, "Freelancer", s.Category)

	s = Reduce(s, SelectKind{Kind: KindExpense})
	assert.Equal(t, "Food", s.Category)

	s = Reduce(s, SetCategory{Category: "Freelancer"})
	assert.Equal(t, "Food", s.Category, "income category is not valid for expenses")

	s = Reduce(s, SelectKind{Kind: KindTransfer})
	assert.Equal(t, models.CategoryTransfer, s.Category)
}

func TestSelectAccount_TransferReassignsDestination(t *testing.T) {
	s := apply(Open(funded(), nil, now), SelectKind{Kind: KindTransfer})
	require.Equal(t, "bank", s.Account)
	require.Equal(t, "wallet", s.TransferTo)

	s = Reduce(s, SelectAccount{ID: "wallet"})

	assert.Equal(t, "wallet", s.Account)
	assert.NotEqual(t, s.Account, s.TransferTo)
	_, ok := models.FindAccount(s.Accounts, s.TransferTo)
	assert.True(t, ok, "destination %q must be an existing account", s.TransferTo)
}

func TestSelectTransferTo_RejectsSource(t *testing.T) {
	s := apply(Open(funded(), nil, now), SelectKind{Kind: KindTransfer})

	s = Reduce(s, SelectTransferTo{ID: "bank"})
	assert.Equal(t, "wallet", s.TransferTo)

	s = Reduce(s, SelectTransferTo{ID: "cash"})
	assert.Equal(t, "cash", s.TransferTo)

	s = Reduce(s, SelectTransferTo{ID: "missing"})
	assert.Equal(t, "cash", s.TransferTo)
}

func TestSelectAccount_UnknownIgnored(t *testing.T) {
	s := Open(funded(), nil, now)
	s = Reduce(s, SelectAccount{ID: "missing"})
	assert.Equal(t, "bank", s.Account)
}

func TestAmountLock(t *testing.T) {
	tests := []struct {
		name   string
		kind   models.TransactionKind
		locked bool
	}{
		{"income editable", models.KindIncome, false},
		{"expense editable", models.KindExpense, false},
		{"deposit locked", models.KindDeposit, true},
		{"transfer locked", models.KindTransfer, true},
		{"send locked", models.KindP2P, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &models.Transaction{ID: "t", Type: tt.kind, Amount: decimal.NewFromInt(100), AccountFrom: "bank", AccountTo: "wallet"}
			s := Open(funded(), record, now)
			assert.Equal(t, tt.locked, s.AmountLocked())
			assert.Equal(t, !tt.locked, Describe(s).AmountEditable)

			s = Reduce(s, SetAmount{Amount: decimal.NewFromInt(1)})
			if tt.locked {
				assert.True(t, s.Amount.Equal(decimal.NewFromInt(100)))
			} else {
				assert.True(t, s.Amount.Equal(decimal.NewFromInt(1)))
			}
		})
	}
}

func TestAmountLock_FollowsOriginalKind(t *testing.T) {
	record := &models.Transaction{ID: "t", Type: models.KindDeposit, Amount: decimal.NewFromInt(100), AccountTo: "bank"}
	s := apply(Open(funded(), record, now), SelectKind{Kind: KindIncome})
	assert.True(t, s.AmountLocked())
}

func TestSetAmount_NegativeIgnored(t *testing.T) {
	s := Reduce(Open(funded(), nil, now), SetAmount{Amount: decimal.NewFromInt(-5)})
	assert.True(t, s.Amount.IsZero())
}

func TestDescribe_FieldTable(t *testing.T) {
	base := Open(funded(), nil, now)

	tests := []struct {
		kind            Kind
		role            AccountRole
		transferChoices int
		categories      []string
		description     bool
		recipient       bool
	}{
		{KindDeposit, RoleDestination, 0, nil, false, false},
		{KindIncome, RoleNone, 0, models.IncomeCategories, true, false},
		{KindExpense, RoleSource, 0, models.ExpenseCategories, true, false},
		{KindTransfer, RoleSource, 2, nil, false, false},
		{KindSend, RoleSource, 0, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			v := Describe(Reduce(base, SelectKind{Kind: tt.kind}))
			assert.Equal(t, tt.role, v.AccountRole)
			assert.Len(t, v.TransferToChoices, tt.transferChoices)
			assert.Equal(t, tt.categories, v.Categories)
			assert.Equal(t, tt.description, v.ShowDescription)
			assert.Equal(t, tt.recipient, v.ShowRecipient)
			assert.True(t, v.AmountEditable)
			for _, c := range v.TransferToChoices {
				assert.NotEqual(t, "bank", c.ID, "destination list must exclude the source")
			}
		})
	}
}

func TestDescribe_Labels(t *testing.T) {
	v := Describe(Open(funded(), nil, now))
	require.Len(t, v.Kinds, 5)
	assert.Equal(t, "Add Money", v.Kinds[0].Label)
	assert.True(t, v.Kinds[0].Selected)
	assert.Equal(t, "send", v.Kinds[4].Label)
}

func TestBuild_Send(t *testing.T) {
	s := apply(Open(funded(), nil, now),
		SelectKind{Kind: KindSend},
		SelectAccount{ID: "wallet"},
		SetAmount{Amount: decimal.NewFromInt(75)},
		SetRecipient{Email: " bob@example.com "},
		SetDescription{Text: "ignored"},
	)

	req, err := Build(s)
	require.NoError(t, err)

	assert.Equal(t, models.KindP2P, req.Type)
	assert.Nil(t, req.AccountTo)
	require.NotNil(t, req.RecipientEmail)
	assert.Equal(t, "bob@example.com", *req.RecipientEmail)
	require.NotNil(t, req.AccountFrom)
	assert.Equal(t, "wallet", *req.AccountFrom)
	assert.Equal(t, "Sent to bob@example.com", req.Description)
	assert.Equal(t, "Food", req.Category)
}

func TestBuild_SendRequiresRecipient(t *testing.T) {
	s := apply(Open(funded(), nil, now), SelectKind{Kind: KindSend}, SetAmount{Amount: decimal.NewFromInt(5)})
	_, err := Build(s)
	assert.ErrorIs(t, err, apperrors.ErrRecipientRequired)
}

func TestBuild_AccountShapes(t *testing.T) {
	tests := []struct {
		kind     Kind
		wantFrom *string
		wantTo   *string
		category string
	}{
		{KindDeposit, nil, strPtr("bank"), models.CategoryTransfer},
		{KindIncome, nil, nil, "Income"},
		{KindExpense, strPtr("bank"), nil, "Food"},
		{KindTransfer, strPtr("bank"), strPtr("wallet"), models.CategoryTransfer},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := apply(Open(funded(), nil, now), SelectKind{Kind: tt.kind}, SetAmount{Amount: decimal.NewFromInt(10)})
			req, err := Build(s)
			require.NoError(t, err)
			assert.Equal(t, tt.kind.Wire(), req.Type)
			assert.Equal(t, tt.wantFrom, req.AccountFrom)
			assert.Equal(t, tt.wantTo, req.AccountTo)
			assert.Nil(t, req.RecipientEmail)
			assert.Equal(t, tt.category, req.Category)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		_, err := Build(Open(funded(), nil, now))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("disabled kind", func(t *testing.T) {
		s := Open(empty(), nil, now)
		s.Kind = KindExpense
		s.Amount = decimal.NewFromInt(5)
		_, err := Build(s)
		assert.ErrorIs(t, err, apperrors.ErrKindDisabled)
	})

	t.Run("same account transfer", func(t *testing.T) {
		s := apply(Open(funded(), nil, now), SelectKind{Kind: KindTransfer}, SetAmount{Amount: decimal.NewFromInt(5)})
		s.TransferTo = s.Account
		_, err := Build(s)
		assert.ErrorIs(t, err, apperrors.ErrSameAccountTransfer)
	})

	t.Run("transfer with one account", func(t *testing.T) {
		accounts := funded()[:1]
		s := apply(Open(accounts, nil, now), SelectKind{Kind: KindTransfer}, SetAmount{Amount: decimal.NewFromInt(5)})
		assert.Empty(t, s.TransferTo)
		_, err := Build(s)
		assert.ErrorIs(t, err, apperrors.ErrAccountRequired)
	})

	t.Run("unknown account", func(t *testing.T) {
		s := apply(Open(funded(), nil, now), SelectKind{Kind: KindExpense}, SetAmount{Amount: decimal.NewFromInt(5)})
		s.Account = "gone"
		_, err := Build(s)
		assert.ErrorIs(t, err, apperrors.ErrAccountRequired)
	})

	t.Run("unknown kind", func(t *testing.T) {
		s := Open(funded(), nil, now)
		s.Kind = "refund"
		_, err := Build(s)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(ActionSetAmount, "12.50")
	require.NoError(t, err)
	assert.True(t, a.(SetAmount).Amount.Equal(decimal.RequireFromString("12.5")))

	a, err = ParseAction(ActionSetDate, "2025-03-01T10:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC), a.(SetDate).Date)

	a, err = ParseAction(ActionSelectKind, "send")
	require.NoError(t, err)
	assert.Equal(t, SelectKind{Kind: KindSend}, a)

	for _, bad := range [][2]string{
		{ActionSelectKind, "p2p"},
		{ActionSetAmount, "ten"},
		{ActionSetDivision, "Home"},
		{ActionSetDate, "yesterday"},
		{"explode", ""},
	} {
		_, err := ParseAction(bad[0], bad[1])
		assert.Error(t, err, "%s=%s", bad[0], bad[1])
	}
}

func TestKindWireMapping(t *testing.T) {
	assert.Equal(t, models.KindP2P, KindSend.Wire())
	assert.Equal(t, KindSend, KindFromWire(models.KindP2P))
	for _, k := range []Kind{KindDeposit, KindIncome, KindExpense, KindTransfer} {
		assert.Equal(t, k, KindFromWire(k.Wire()))
	}
}

func strPtr(s string) *string { return &s }
