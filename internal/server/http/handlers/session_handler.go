package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/server/http/dto"
)

// SessionHandler processes login.
type SessionHandler struct {
	facade SessionFacade
	logger *slog.Logger
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{facade: facade, logger: logger}
}

// Login handles POST /sessions.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}

	sess, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUserNotFound):
			c.String(http.StatusUnauthorized, "User not found")
		case errors.Is(err, domainErrors.ErrInvalidPassword):
			c.String(http.StatusUnauthorized, "Invalid password")
		default:
			h.logger.Error("login", slog.String("error", err.Error()))
			c.String(http.StatusUnauthorized, "Error during login")
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		Token:     sess.Token,
		SessionID: sess.ID,
	})
}
