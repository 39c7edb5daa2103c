package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/form"
	"moneymanager/internal/models"
	"moneymanager/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// SubmitRequest carries the editor state to submit.
type SubmitRequest struct {
	State form.State `json:"state"`
}

// SubmitResponse is returned for an accepted submission. Refresh tells the
// caller to re-fetch the dashboard and close the editor.
type SubmitResponse struct {
	Transaction models.Transaction `json:"transaction"`
	Refresh     bool               `json:"refresh"`
}

// CreateTransaction submits a create-mode editor state
// @Summary     Create a transaction
// @Description Build the request from the editor state and send it to the transaction service
// @Tags        transactions
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       request body SubmitRequest true "Editor state"
// @Success     201 {object} SubmitResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input or rejected by the transaction service"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Transaction service error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	if req.State.Editing() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "use PUT /transactions/:id to edit"))
		return
	}

	tx, err := h.transactionService.Submit(c.Request.Context(), req.State, getOrigin(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResponse{Transaction: *tx, Refresh: true})
}

// UpdateTransaction submits an edit-mode editor state
// @Summary     Update a transaction
// @Description Re-check the edit window and replace the record with the editor state
// @Tags        transactions
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id      path string        true "Transaction ID"
// @Param       request body SubmitRequest true "Editor state"
// @Success     200 {object} SubmitResponse "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Edit window expired"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	req.State.EditingID = c.Param("id")

	tx, err := h.transactionService.Submit(c.Request.Context(), req.State, getOrigin(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmitResponse{Transaction: *tx, Refresh: true})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Description Delete a record that is still inside the edit window
// @Tags        transactions
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} object "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Edit window expired"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.Delete(c.Request.Context(), c.Param("id"), getOrigin(c)); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted", "refresh": true})
}
