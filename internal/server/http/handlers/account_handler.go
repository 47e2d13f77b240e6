package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/banksajt/internal/server/http/dto"
)

// AccountHandler processes user registration.
type AccountHandler struct {
	facade AccountFacade
	logger *slog.Logger
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{facade: facade, logger: logger}
}

// Create handles POST /users.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, account, err := h.facade.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("create user", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		Message:   "User and account created",
		UserID:    user.ID,
		AccountID: account.ID,
	})
}
