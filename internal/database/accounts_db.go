package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateAccount(pool *pgxpool.Pool, account *models.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (user_id, name, type, initial_balance, color, bank, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		account.UserID,
		account.Name,
		account.Type,
		account.InitialBalance,
		account.Color,
		account.Bank,
		account.Active).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating bank account: %v", err)
	}
	return nil
}

func GetAccountByID(pool *pgxpool.Pool, accountID int) (*models.BankAccount, error) {
	query := `
		SELECT id, user_id, name, type, initial_balance, color, bank, active, created_at
		FROM bank_accounts
		WHERE id = $1`

	account := &models.BankAccount{}
	err := pool.QueryRow(context.Background(), query, accountID).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.InitialBalance,
		&account.Color,
		&account.Bank,
		&account.Active,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bank account with ID %d not found", accountID)
		}
		return nil, fmt.Errorf("error fetching bank account: %v", err)
	}
	return account, nil
}

func GetAccountsByUserID(pool *pgxpool.Pool, userID int) ([]models.BankAccount, error) {
	query := `
		SELECT id, user_id, name, type, initial_balance, color, bank, active, created_at
		FROM bank_accounts
		WHERE user_id = $1
		ORDER BY name`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching bank accounts: %v", err)
	}
	defer rows.Close()

	var accounts []models.BankAccount
	for rows.Next() {
		var account models.BankAccount
		if err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Name,
			&account.Type,
			&account.InitialBalance,
			&account.Color,
			&account.Bank,
			&account.Active,
			&account.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func UpdateAccount(pool *pgxpool.Pool, account *models.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET name = $1, type = $2, initial_balance = $3, color = $4, bank = $5, active = $6
		WHERE id = $7`

	result, err := pool.Exec(context.Background(), query,
		account.Name,
		account.Type,
		account.InitialBalance,
		account.Color,
		account.Bank,
		account.Active,
		account.ID)
	if err != nil {
		return fmt.Errorf("error updating bank account: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("bank account with ID %d not found", account.ID)
	}
	return nil
}

func DeleteAccount(pool *pgxpool.Pool, accountID int) error {
	query := `DELETE FROM bank_accounts WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, accountID)
	if err != nil {
		return fmt.Errorf("error deleting bank account: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("bank account with ID %d not found", accountID)
	}
	return nil
}
