package finance

import (
	"testing"
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func accountTx(accountID int, txType string, amount string, paid bool) models.Transaction {
	id := accountID
	return models.Transaction{
		AccountID: &id,
		Type:      txType,
		Amount:    decimal.RequireFromString(amount),
		Paid:      paid,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAccountBalance(t *testing.T) {
	account := models.BankAccount{ID: 1, InitialBalance: decimal.RequireFromString("500.00")}

	tests := []struct {
		name         string
		transactions []models.Transaction
		want         string
	}{
		{
			name:         "no transactions keeps initial balance",
			transactions: nil,
			want:         "500.00",
		},
		{
			name: "paid income and expense fold into balance",
			transactions: []models.Transaction{
				accountTx(1, models.TransactionIncome, "200.00", true),
				accountTx(1, models.TransactionExpense, "150.00", true),
			},
			want: "550.00",
		},
		{
			name: "unpaid transactions never move the balance",
			transactions: []models.Transaction{
				accountTx(1, models.TransactionIncome, "200.00", true),
				accountTx(1, models.TransactionExpense, "150.00", true),
				accountTx(1, models.TransactionExpense, "999.99", false),
				accountTx(1, models.TransactionIncome, "123.45", false),
			},
			want: "550.00",
		},
		{
			name: "investment transactions leave the account untouched",
			transactions: []models.Transaction{
				accountTx(1, models.TransactionInvestment, "300.00", true),
				accountTx(1, models.TransactionIncome, "50.00", true),
			},
			want: "550.00",
		},
		{
			name: "other accounts are ignored",
			transactions: []models.Transaction{
				accountTx(2, models.TransactionIncome, "1000.00", true),
				accountTx(1, models.TransactionExpense, "100.00", true),
			},
			want: "400.00",
		},
		{
			name: "balance can go negative",
			transactions: []models.Transaction{
				accountTx(1, models.TransactionExpense, "700.00", true),
			},
			want: "-200.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccountBalance(account, tt.transactions)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestAccountBalanceIgnoresTransactionsWithoutAccount(t *testing.T) {
	account := models.BankAccount{ID: 1, InitialBalance: decimal.Zero}
	cardTx := models.Transaction{
		Type:   models.TransactionExpense,
		Amount: decimal.RequireFromString("80.00"),
		Paid:   true,
	}
	got := AccountBalance(account, []models.Transaction{cardTx})
	assert.True(t, got.IsZero(), "got %s, want 0", got)
}
