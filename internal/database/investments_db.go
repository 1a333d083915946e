package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const investmentColumns = `id, user_id, name, amount, type, initial_date, due_date,
		expected_return, current_return, category_id, goal_id, notes, active, created_at`

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	inv := &models.Investment{}
	err := row.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.Name,
		&inv.Amount,
		&inv.Type,
		&inv.InitialDate,
		&inv.DueDate,
		&inv.ExpectedReturn,
		&inv.CurrentReturn,
		&inv.CategoryID,
		&inv.GoalID,
		&inv.Notes,
		&inv.Active,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func CreateInvestment(pool *pgxpool.Pool, inv *models.Investment) error {
	query := `
		INSERT INTO investments (user_id, name, amount, type, initial_date, due_date,
			expected_return, current_return, category_id, goal_id, notes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		inv.UserID,
		inv.Name,
		inv.Amount,
		inv.Type,
		inv.InitialDate,
		inv.DueDate,
		inv.ExpectedReturn,
		inv.CurrentReturn,
		inv.CategoryID,
		inv.GoalID,
		inv.Notes,
		inv.Active).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating investment: %v", err)
	}
	return nil
}

func GetInvestmentByID(pool *pgxpool.Pool, investmentID int) (*models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1`

	inv, err := scanInvestment(pool.QueryRow(context.Background(), query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("investment with ID %d not found", investmentID)
		}
		return nil, fmt.Errorf("error fetching investment: %v", err)
	}
	return inv, nil
}

func collectInvestments(rows pgx.Rows) ([]models.Investment, error) {
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, *inv)
	}
	return investments, rows.Err()
}

func GetInvestmentsByUserID(pool *pgxpool.Pool, userID int) ([]models.Investment, error) {
	query := `SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = $1 AND active
		ORDER BY initial_date`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching investments: %v", err)
	}
	return collectInvestments(rows)
}

func GetInvestmentsByGoalID(pool *pgxpool.Pool, goalID int) ([]models.Investment, error) {
	query := `SELECT ` + investmentColumns + `
		FROM investments
		WHERE goal_id = $1 AND active
		ORDER BY initial_date`

	rows, err := pool.Query(context.Background(), query, goalID)
	if err != nil {
		return nil, fmt.Errorf("error fetching goal investments: %v", err)
	}
	return collectInvestments(rows)
}

func UpdateInvestment(pool *pgxpool.Pool, inv *models.Investment) error {
	query := `
		UPDATE investments
		SET name = $1, amount = $2, type = $3, initial_date = $4, due_date = $5,
			expected_return = $6, current_return = $7, category_id = $8, goal_id = $9,
			notes = $10, active = $11
		WHERE id = $12`

	result, err := pool.Exec(context.Background(), query,
		inv.Name,
		inv.Amount,
		inv.Type,
		inv.InitialDate,
		inv.DueDate,
		inv.ExpectedReturn,
		inv.CurrentReturn,
		inv.CategoryID,
		inv.GoalID,
		inv.Notes,
		inv.Active,
		inv.ID)
	if err != nil {
		return fmt.Errorf("error updating investment: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("investment with ID %d not found", inv.ID)
	}
	return nil
}

func DeleteInvestment(pool *pgxpool.Pool, investmentID int) error {
	query := `DELETE FROM investments WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, investmentID)
	if err != nil {
		return fmt.Errorf("error deleting investment: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("investment with ID %d not found", investmentID)
	}
	return nil
}
