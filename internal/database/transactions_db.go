package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, user_id, description, amount, date, type, category_id,
		payment_method, expense_type, account_id, credit_card_id,
		installment_number, total_installments, installment_group,
		paid, active, created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Description,
		&tx.Amount,
		&tx.Date,
		&tx.Type,
		&tx.CategoryID,
		&tx.PaymentMethod,
		&tx.ExpenseType,
		&tx.AccountID,
		&tx.CreditCardID,
		&tx.InstallmentNumber,
		&tx.TotalInstallments,
		&tx.InstallmentGroup,
		&tx.Paid,
		&tx.Active,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func CreateTransaction(pool *pgxpool.Pool, tx *models.Transaction) error {
	if !tx.Amount.IsPositive() {
		return errors.New("transaction amount must be positive")
	}

	query := `
		INSERT INTO transactions (user_id, description, amount, date, type, category_id,
			payment_method, expense_type, account_id, credit_card_id,
			installment_number, total_installments, installment_group, paid, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`

	err := pool.QueryRow(context.Background(), query,
		tx.UserID,
		tx.Description,
		tx.Amount,
		tx.Date,
		tx.Type,
		tx.CategoryID,
		tx.PaymentMethod,
		tx.ExpenseType,
		tx.AccountID,
		tx.CreditCardID,
		tx.InstallmentNumber,
		tx.TotalInstallments,
		tx.InstallmentGroup,
		tx.Paid,
		tx.Active).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating transaction: %v", err)
	}
	return nil
}

// CreateInstallmentTransactions splits one purchase into its installments:
// every row shares a group id, the amount is divided with the rounding
// remainder on the last installment, and dates advance one month at a time.
func CreateInstallmentTransactions(pool *pgxpool.Pool, tx *models.Transaction) ([]models.Transaction, error) {
	if tx.TotalInstallments == nil || *tx.TotalInstallments < 2 {
		return nil, errors.New("installment purchase needs at least two installments")
	}
	total := *tx.TotalInstallments
	group := uuid.New()

	count := decimal.NewFromInt(int64(total))
	perInstallment := tx.Amount.Div(count).Round(2)
	lastInstallment := tx.Amount.Sub(perInstallment.Mul(count.Sub(decimal.NewFromInt(1))))

	created := make([]models.Transaction, 0, total)
	for i := 1; i <= total; i++ {
		installment := *tx
		number := i
		installment.InstallmentNumber = &number
		installment.InstallmentGroup = &group
		installment.Date = installmentDate(tx.Date, i-1)
		installment.Amount = perInstallment
		if i == total {
			installment.Amount = lastInstallment
		}
		if i > 1 {
			installment.Paid = false
		}
		if err := CreateTransaction(pool, &installment); err != nil {
			return created, fmt.Errorf("error creating installment %d/%d: %v", i, total, err)
		}
		created = append(created, installment)
	}
	return created, nil
}

// installmentDate advances the purchase date by whole months, clamping the
// day so a purchase on the 31st falls on the last day of shorter months.
func installmentDate(base time.Time, offset int) time.Time {
	anchor := time.Date(base.Year(), base.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := base.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)
}

func GetTransactionByID(pool *pgxpool.Pool, transactionID int) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(pool.QueryRow(context.Background(), query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d not found", transactionID)
		}
		return nil, fmt.Errorf("error fetching transaction: %v", err)
	}
	return tx, nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func GetTransactionsByUserID(pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND active
		ORDER BY date DESC, id DESC`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching transactions: %v", err)
	}
	return collectTransactions(rows)
}

func GetTransactionsByAccountID(pool *pgxpool.Pool, accountID int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND active
		ORDER BY date`

	rows, err := pool.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("error fetching account transactions: %v", err)
	}
	return collectTransactions(rows)
}

func GetTransactionsByCardID(pool *pgxpool.Pool, cardID int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE credit_card_id = $1 AND active
		ORDER BY date`

	rows, err := pool.Query(context.Background(), query, cardID)
	if err != nil {
		return nil, fmt.Errorf("error fetching card transactions: %v", err)
	}
	return collectTransactions(rows)
}

func UpdateTransaction(pool *pgxpool.Pool, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET description = $1, amount = $2, date = $3, type = $4, category_id = $5,
			payment_method = $6, expense_type = $7, account_id = $8, credit_card_id = $9,
			paid = $10, active = $11, updated_at = now()
		WHERE id = $12`

	result, err := pool.Exec(context.Background(), query,
		tx.Description,
		tx.Amount,
		tx.Date,
		tx.Type,
		tx.CategoryID,
		tx.PaymentMethod,
		tx.ExpenseType,
		tx.AccountID,
		tx.CreditCardID,
		tx.Paid,
		tx.Active,
		tx.ID)
	if err != nil {
		return fmt.Errorf("error updating transaction: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction with ID %d not found", tx.ID)
	}
	return nil
}

func SetTransactionPaid(pool *pgxpool.Pool, transactionID int, paid bool) error {
	query := `UPDATE transactions SET paid = $1, updated_at = now() WHERE id = $2`

	result, err := pool.Exec(context.Background(), query, paid, transactionID)
	if err != nil {
		return fmt.Errorf("error updating paid flag: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction with ID %d not found", transactionID)
	}
	return nil
}

func DeleteTransaction(pool *pgxpool.Pool, transactionID int) error {
	query := `DELETE FROM transactions WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, transactionID)
	if err != nil {
		return fmt.Errorf("error deleting transaction: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction with ID %d not found", transactionID)
	}
	return nil
}
