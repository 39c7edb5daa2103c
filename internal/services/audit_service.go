package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/logger"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
)

// Audit actions.
const (
	AuditCreate = "transaction.create"
	AuditUpdate = "transaction.update"
	AuditDelete = "transaction.delete"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(ctx context.Context, action string, tx models.Transaction, origin Origin) {
	entry := &models.AuditLog{
		Action:        action,
		TransactionID: tx.ID,
		Kind:          tx.Type,
		Amount:        tx.Amount,
		IPAddress:     origin.IPAddress,
		RequestID:     origin.RequestID,
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"transaction_id", tx.ID,
			"request_id", origin.RequestID,
		)
	}
}

// List returns audit entries, newest first. An empty kind lists all kinds.
func (s *auditService) List(ctx context.Context, kind models.TransactionKind, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	byKind := func(db *gorm.DB) *gorm.DB {
		if kind == "" {
			return db
		}
		return db.Where("kind = ?", kind)
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.AuditLog{}).Scopes(byKind).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	if err := s.db.WithContext(ctx).
		Scopes(byKind).
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page.Page, page.PageSize, total)
	return &resp, nil
}
