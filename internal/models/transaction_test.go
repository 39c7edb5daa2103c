package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransactionRequest_MarshalJSON(t *testing.T) {
	from := "acc-1"
	req := TransactionRequest{
		Type:        KindExpense,
		Amount:      decimal.RequireFromString("120.50"),
		Description: "Lunch",
		Category:    "Food",
		Division:    DivisionPersonal,
		Date:        time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
		AccountFrom: &from,
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"amount":120.5`) {
		t.Errorf("expected amount as a JSON number, got %s", body)
	}
	for _, field := range []string{`"accountTo":null`, `"recipientEmail":null`} {
		if !strings.Contains(body, field) {
			t.Errorf("expected %s in %s", field, body)
		}
	}
	if !strings.Contains(body, `"accountFrom":"acc-1"`) {
		t.Errorf("expected accountFrom in %s", body)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["type"] != "expense" {
		t.Errorf("expected type expense, got %v", decoded["type"])
	}
}

func TestTransaction_UnmarshalWire(t *testing.T) {
	raw := `{"_id":"t1","type":"p2p","amount":75,"category":"Other","division":"Office",
		"date":"2025-03-01T10:00:00.000Z","createdAt":"2025-03-01T10:05:00.000Z",
		"accountFrom":"a1","accountTo":null,"recipientEmail":"bob@example.com"}`

	var tx Transaction
	if err := json.Unmarshal([]byte(raw), &tx); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected amount 75, got %s", tx.Amount)
	}
	if tx.Type != KindP2P || !tx.Type.IsOutflow() {
		t.Errorf("expected an outflow p2p kind, got %s", tx.Type)
	}
	if tx.AccountTo != "" {
		t.Errorf("expected empty accountTo, got %q", tx.AccountTo)
	}
	if tx.CreatedAt.Minute() != 5 {
		t.Errorf("expected createdAt minute 5, got %v", tx.CreatedAt)
	}
}

func TestKindAndDivisionValid(t *testing.T) {
	for _, k := range []TransactionKind{KindIncome, KindExpense, KindDeposit, KindTransfer, KindP2P} {
		if !k.Valid() {
			t.Errorf("expected %s to be valid", k)
		}
	}
	if TransactionKind("send").Valid() {
		t.Error("send is a form kind, not a ledger kind")
	}
	if !DivisionOffice.Valid() || Division("Home").Valid() {
		t.Error("division validity mismatch")
	}
}

func TestTotalBalance(t *testing.T) {
	accounts := []Account{
		{ID: "a", Balance: decimal.NewFromInt(100)},
		{ID: "b", Balance: decimal.NewFromInt(-40)},
	}
	if got := TotalBalance(accounts); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected 60, got %s", got)
	}
	if got := TotalBalance(nil); !got.IsZero() {
		t.Errorf("expected zero for no accounts, got %s", got)
	}
	if _, ok := FindAccount(accounts, "b"); !ok {
		t.Error("expected to find account b")
	}
}
