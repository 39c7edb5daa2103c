package form

import "moneymanager/internal/models"

// AccountRole tells the caller what the main account picker stands for.
type AccountRole string

const (
	RoleNone        AccountRole = ""
	RoleSource      AccountRole = "source"
	RoleDestination AccountRole = "destination"
)

// KindOption is one entry of the kind selector.
type KindOption struct {
	Kind     Kind   `json:"kind"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
}

// View describes which inputs are active for a state.
type View struct {
	Kinds             []KindOption     `json:"kinds"`
	AmountEditable    bool             `json:"amount_editable"`
	AccountRole       AccountRole      `json:"account_role,omitempty"`
	AccountChoices    []models.Account `json:"account_choices,omitempty"`
	TransferToChoices []models.Account `json:"transfer_to_choices,omitempty"`
	Categories        []string         `json:"categories,omitempty"`
	ShowDescription   bool             `json:"show_description"`
	ShowRecipient     bool             `json:"show_recipient"`
}

// Describe returns the field activation for s.
//
//	deposit   destination account           category Transfer
//	income    no account                    income categories, description
//	expense   source account                expense categories, description
//	transfer  source + other account        category Transfer
//	send      source account, recipient     description generated
func Describe(s State) View {
	v := View{
		Kinds:          make([]KindOption, 0, len(Kinds)),
		AmountEditable: !s.AmountLocked(),
	}
	for _, k := range Kinds {
		v.Kinds = append(v.Kinds, KindOption{
			Kind:     k,
			Label:    k.Label(),
			Selected: k == s.Kind,
			Disabled: !s.KindEnabled(k),
		})
	}

	switch s.Kind {
	case KindDeposit:
		v.AccountRole = RoleDestination
		v.AccountChoices = s.Accounts
	case KindIncome:
		v.Categories = models.IncomeCategories
		v.ShowDescription = true
	case KindExpense:
		v.AccountRole = RoleSource
		v.AccountChoices = s.Accounts
		v.Categories = models.ExpenseCategories
		v.ShowDescription = true
	case KindTransfer:
		v.AccountRole = RoleSource
		v.AccountChoices = s.Accounts
		v.TransferToChoices = make([]models.Account, 0, len(s.Accounts))
		for _, a := range s.Accounts {
			if a.ID != s.Account {
				v.TransferToChoices = append(v.TransferToChoices, a)
			}
		}
	case KindSend:
		v.AccountRole = RoleSource
		v.AccountChoices = s.Accounts
		v.ShowRecipient = true
	}
	return v
}
