package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryIncome     = "income"
	CategoryExpense    = "expense"
	CategoryInvestment = "investment"
)

type Category struct {
	ID        int              `json:"id" db:"id"`
	UserID    int              `json:"user_id" db:"user_id"`
	Name      string           `json:"name" db:"name"`
	Type      string           `json:"type" db:"type"`
	Icon      string           `json:"icon" db:"icon"`
	Color     string           `json:"color" db:"color"`
	Budget    *decimal.Decimal `json:"budget,omitempty" db:"budget"`
	Amount    decimal.Decimal  `json:"amount" db:"amount"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
