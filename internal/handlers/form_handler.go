package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"moneymanager/internal/form"
	"moneymanager/internal/services"
)

// FormHandler drives the transaction editor. The state lives with the
// caller and is sent back with every action.
type FormHandler struct {
	transactionService services.TransactionServicer
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(transactionService services.TransactionServicer) *FormHandler {
	return &FormHandler{transactionService: transactionService}
}

// OpenFormRequest optionally names the record to edit.
type OpenFormRequest struct {
	EditingID string `json:"editing_id" binding:"max=64"`
}

// ActionRequest is one user interaction with the editor.
type ActionRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
}

// ReduceRequest carries the current state and the action to apply.
type ReduceRequest struct {
	State  form.State    `json:"state"`
	Action ActionRequest `json:"action" binding:"required"`
}

// FormResponse is a state together with its field activation.
type FormResponse struct {
	State form.State `json:"state"`
	View  form.View  `json:"view"`
}

func newFormResponse(s form.State) FormResponse {
	return FormResponse{State: s, View: form.Describe(s)}
}

// Open returns the initial editor state
// @Summary     Open the transaction editor
// @Description Load accounts and, when editing_id is set, the record to edit. Records older than the edit window are rejected.
// @Tags        form
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       request body OpenFormRequest false "Record to edit"
// @Success     200 {object} FormResponse "Editor state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Edit window expired"
// @Router      /form [post]
func (h *FormHandler) Open(c *gin.Context) {
	var req OpenFormRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, invalidInput(err))
		return
	}

	state, err := h.transactionService.OpenForm(c.Request.Context(), req.EditingID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFormResponse(*state))
}

// Reduce applies one action to the editor state
// @Summary     Apply an editor action
// @Description Advance the editor state. Actions that the current state does not allow are ignored.
// @Tags        form
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       request body ReduceRequest true "State and action"
// @Success     200 {object} FormResponse "Next editor state"
// @Failure     400 {object} ErrorResponse "Invalid action"
// @Router      /form/reduce [post]
func (h *FormHandler) Reduce(c *gin.Context) {
	var req ReduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	action, err := form.ParseAction(req.Action.Type, req.Action.Value)
	if err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	c.JSON(http.StatusOK, newFormResponse(form.Reduce(req.State, action)))
}
