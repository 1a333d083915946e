package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type MonthlyTotal struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type CategoryTotal struct {
	CategoryID int             `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

type IncomeExpenseSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// GetTotalBalance sums the derived balance of every active account: initial
// balances plus the fold of paid income and expense transactions.
func GetTotalBalance(pool *pgxpool.Pool, userID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE((SELECT SUM(initial_balance) FROM bank_accounts WHERE user_id = $1 AND active), 0)
			+ COALESCE((
				SELECT SUM(CASE WHEN t.type = 'income' THEN t.amount
							WHEN t.type = 'expense' THEN -t.amount
							ELSE 0 END)
				FROM transactions t
				JOIN bank_accounts a ON a.id = t.account_id
				WHERE t.user_id = $1 AND t.paid AND t.active AND a.active), 0)`

	var total decimal.Decimal
	err := pool.QueryRow(context.Background(), query, userID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error computing total balance: %v", err)
	}
	return total, nil
}

func GetMonthlyExpenses(pool *pgxpool.Pool, userID int) ([]MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND active
		AND DATE_PART('year', date) = DATE_PART('year', CURRENT_DATE)
		GROUP BY month
		ORDER BY month`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching monthly expenses: %v", err)
	}
	defer rows.Close()

	var totals []MonthlyTotal
	for rows.Next() {
		var mt MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Total); err != nil {
			return nil, err
		}
		totals = append(totals, mt)
	}
	return totals, nil
}

func GetIncomeExpenseSummary(pool *pgxpool.Pool, userID int) (*IncomeExpenseSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE user_id = $1 AND active
		AND DATE_TRUNC('month', date) = DATE_TRUNC('month', CURRENT_DATE)`

	summary := &IncomeExpenseSummary{}
	err := pool.QueryRow(context.Background(), query, userID).
		Scan(&summary.TotalIncome, &summary.TotalExpense)
	if err != nil {
		return nil, fmt.Errorf("error fetching income/expense summary: %v", err)
	}
	return summary, nil
}

func GetCategoryExpenses(pool *pgxpool.Pool, userID int) ([]CategoryTotal, error) {
	query := `
		SELECT c.id, c.name, c.color, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.type = 'expense' AND t.active
		AND DATE_TRUNC('month', t.date) = DATE_TRUNC('month', CURRENT_DATE)
		GROUP BY c.id, c.name, c.color
		ORDER BY total DESC`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching category expenses: %v", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.CategoryID, &ct.Name, &ct.Color, &ct.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, nil
}
