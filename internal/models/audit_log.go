package models

import "github.com/shopspring/decimal"

// AuditLog records every mutation this service forwarded to the
// transaction service.
type AuditLog struct {
	Base
	Action        string          `gorm:"not null;index" json:"action"`
	TransactionID string          `gorm:"index" json:"transaction_id"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `gorm:"type:numeric" json:"amount"`
	IPAddress     string          `json:"ip_address"`
	RequestID     string          `json:"request_id"`
}
