package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvestmentCDB     = "cdb"
	InvestmentLCI     = "lci"
	InvestmentLCA     = "lca"
	InvestmentTesouro = "tesouro"
	InvestmentFunds   = "funds"
	InvestmentStocks  = "stocks"
	InvestmentCrypto  = "crypto"
	InvestmentOthers  = "others"
)

type Investment struct {
	ID             int              `json:"id" db:"id"`
	UserID         int              `json:"user_id" db:"user_id"`
	Name           string           `json:"name" db:"name"`
	Amount         decimal.Decimal  `json:"amount" db:"amount"`
	Type           string           `json:"type" db:"type"`
	InitialDate    time.Time        `json:"initial_date" db:"initial_date"`
	DueDate        *time.Time       `json:"due_date,omitempty" db:"due_date"`
	ExpectedReturn *decimal.Decimal `json:"expected_return,omitempty" db:"expected_return"`
	CurrentReturn  *decimal.Decimal `json:"current_return,omitempty" db:"current_return"`
	CategoryID     int              `json:"category_id" db:"category_id"`
	GoalID         *int             `json:"goal_id,omitempty" db:"goal_id"`
	Notes          string           `json:"notes" db:"notes"`
	Active         bool             `json:"active" db:"active"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}
