package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountInvestment = "investment"
	AccountWallet     = "wallet"
	AccountOther      = "other"
)

type BankAccount struct {
	ID             int             `json:"id" db:"id"`
	UserID         int             `json:"user_id" db:"user_id"`
	Name           string          `json:"name" db:"name"`
	Type           string          `json:"type" db:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance" db:"initial_balance"`
	Color          string          `json:"color" db:"color"`
	Bank           string          `json:"bank" db:"bank"`
	Active         bool            `json:"active" db:"active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}
