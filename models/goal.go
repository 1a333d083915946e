package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Goal struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	Name          string          `json:"name" db:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" db:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty" db:"deadline"`
	CategoryID    *int            `json:"category_id,omitempty" db:"category_id"`
	Notes         string          `json:"notes" db:"notes"`
	Color         string          `json:"color" db:"color"`
	Active        bool            `json:"active" db:"active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

func (g *Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}
