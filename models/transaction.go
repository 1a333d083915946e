package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionIncome     = "income"
	TransactionExpense    = "expense"
	TransactionInvestment = "investment"
)

const (
	PaymentCash     = "cash"
	PaymentCredit   = "credit"
	PaymentDebit    = "debit"
	PaymentPix      = "pix"
	PaymentTransfer = "transfer"
)

const (
	ExpenseFixed    = "fixed"
	ExpenseVariable = "variable"
)

type Transaction struct {
	ID                int             `json:"id" db:"id"`
	UserID            int             `json:"user_id" db:"user_id"`
	Description       string          `json:"description" db:"description"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	Date              time.Time       `json:"date" db:"date"`
	Type              string          `json:"type" db:"type"`
	CategoryID        int             `json:"category_id" db:"category_id"`
	PaymentMethod     string          `json:"payment_method" db:"payment_method"`
	ExpenseType       *string         `json:"expense_type,omitempty" db:"expense_type"`
	AccountID         *int            `json:"account_id,omitempty" db:"account_id"`
	CreditCardID      *int            `json:"credit_card_id,omitempty" db:"credit_card_id"`
	InstallmentNumber *int            `json:"installment_number,omitempty" db:"installment_number"`
	TotalInstallments *int            `json:"total_installments,omitempty" db:"total_installments"`
	InstallmentGroup  *uuid.UUID      `json:"installment_group,omitempty" db:"installment_group"`
	Paid              bool            `json:"paid" db:"paid"`
	Active            bool            `json:"active" db:"active"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}
