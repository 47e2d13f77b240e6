package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/server/http/dto"
)

// BalanceHandler serves the authenticated account endpoints.
type BalanceHandler struct {
	facade BalanceFacade
	logger *slog.Logger
}

// NewBalanceHandler creates BalanceHandler instance.
func NewBalanceHandler(facade BalanceFacade, logger *slog.Logger) *BalanceHandler {
	return &BalanceHandler{facade: facade, logger: logger}
}

// Show handles POST /me/account.
func (h *BalanceHandler) Show(c *gin.Context) {
	balance, err := h.facade.Balance(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// Transaction handles POST /me/account/transaction.
func (h *BalanceHandler) Transaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := req.Validate(); err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}

	balance, err := h.facade.ApplyTransaction(c.Request.Context(), CurrentUserID(c), *req.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

func (h *BalanceHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrAccountNotFound) {
		c.String(http.StatusUnauthorized, "Account not found")
		return
	}
	h.logger.Error("fetch balance", slog.String("error", err.Error()))
	c.String(http.StatusInternalServerError, "Error fetching balance")
}
