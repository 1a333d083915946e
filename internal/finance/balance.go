package finance

import (
	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
)

// AccountBalance folds the paid transactions of one bank account over its
// initial balance. Income adds, expense subtracts; investment transactions
// move money into a vehicle tracked on its own and leave the account
// untouched. Unpaid transactions never affect the result.
func AccountBalance(account models.BankAccount, transactions []models.Transaction) decimal.Decimal {
	balance := account.InitialBalance
	for _, tx := range transactions {
		if tx.AccountID == nil || *tx.AccountID != account.ID || !tx.Paid {
			continue
		}
		switch tx.Type {
		case models.TransactionIncome:
			balance = balance.Add(tx.Amount)
		case models.TransactionExpense:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}
