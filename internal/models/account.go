package models

import "github.com/shopspring/decimal"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeBank   AccountType = "Bank"
	AccountTypeWallet AccountType = "Wallet"
	AccountTypeOther  AccountType = "Other"
)

// Account is a monetary account as reported by the transaction service.
// Balance is authoritative upstream; it is only ever replaced by a re-fetch.
type Account struct {
	ID      string          `json:"_id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// TotalBalance sums the balances of all accounts.
func TotalBalance(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// FindAccount returns the account with the given id.
func FindAccount(accounts []Account, id string) (Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
