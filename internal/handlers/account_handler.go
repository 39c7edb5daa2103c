package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneymanager/internal/models"
	"moneymanager/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountsResponse lists the accounts and their combined balance.
type AccountsResponse struct {
	Accounts     []models.Account `json:"accounts"`
	TotalBalance string           `json:"total_balance"`
}

// ListAccounts returns the current accounts
// @Summary     List accounts
// @Description Fetch the accounts from the transaction service
// @Tags        accounts
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {object} AccountsResponse "Accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Transaction service error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, AccountsResponse{
		Accounts:     accounts,
		TotalBalance: models.TotalBalance(accounts).String(),
	})
}
