package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditCard struct {
	ID         int             `json:"id" db:"id"`
	UserID     int             `json:"user_id" db:"user_id"`
	Name       string          `json:"name" db:"name"`
	Limit      decimal.Decimal `json:"limit" db:"credit_limit"`
	ClosingDay int             `json:"closing_day" db:"closing_day"`
	DueDay     int             `json:"due_day" db:"due_day"`
	Color      string          `json:"color" db:"color"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}
