package dto

import (
	"encoding/json"
	"errors"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

// Transaction amounts fit NUMERIC(28, 8).
const (
	MaxAmountScale         = 8
	MaxAmountIntegerDigits = 20
)

var errAmountOutOfRange = errors.New("amount out of range")

// CredentialsRequest is the body of user creation and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserResponse is returned by POST /users.
type CreateUserResponse struct {
	Message   string `json:"message"`
	UserID    int64  `json:"userId"`
	AccountID int64  `json:"accountId"`
}

// LoginResponse is returned by POST /sessions.
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	SessionID int64  `json:"sessionId"`
}

// BalanceResponse renders the balance as a bare JSON number.
type BalanceResponse struct {
	Balance json.Number `json:"balance"`
}

// NewBalanceResponse converts an exact amount into its response form.
func NewBalanceResponse(amount decimal.Decimal) BalanceResponse {
	return BalanceResponse{Balance: json.Number(amount.String())}
}

// TransactionRequest accepts the amount as a JSON number or a numeric string.
type TransactionRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// Validate bounds the amount to MaxAmountScale fractional and MaxAmountIntegerDigits integer digits.
func (r TransactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.By(amountInRange)),
	)
}

func amountInRange(value any) error {
	amount, _ := value.(*decimal.Decimal)
	if amount == nil {
		return nil
	}
	// Exponent and coefficient size are checked before any operation that scales with them.
	exp := amount.Exponent()
	if exp < -MaxAmountScale || exp > MaxAmountIntegerDigits {
		return errAmountOutOfRange
	}
	if amount.Coefficient().BitLen() > 128 {
		return errAmountOutOfRange
	}
	if amount.NumDigits()+int(exp) > MaxAmountIntegerDigits {
		return errAmountOutOfRange
	}
	return nil
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
