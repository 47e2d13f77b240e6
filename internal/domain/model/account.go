package model

import "github.com/shopspring/decimal"

// Account holds the balance owned by a user.
type Account struct {
	ID     int64
	UserID int64
	Amount decimal.Decimal
}
