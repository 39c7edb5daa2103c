package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/services"
)

// AuditListRequest pages the audit trail, optionally for one kind.
type AuditListRequest struct {
	pagination.PageRequest
	Kind string `form:"kind" binding:"omitempty,tx_kind"`
}

// AuditHandler exposes the local audit trail.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs returns recorded mutations, newest first
// @Summary     List audit entries
// @Description Mutations forwarded to the transaction service through this server
// @Tags        audit
// @Security    ApiKeyAuth
// @Produce     json
// @Param       kind      query string false "Transaction kind" Enums(income, expense, deposit, transfer, p2p)
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Audit entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	var req AuditListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	req.Defaults()

	entries, err := h.auditService.List(c.Request.Context(), models.TransactionKind(req.Kind), req.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
