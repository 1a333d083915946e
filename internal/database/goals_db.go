package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func CreateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, deadline, category_id, notes, color, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.CategoryID,
		goal.Notes,
		goal.Color,
		goal.Active).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating goal: %v", err)
	}
	return nil
}

func GetGoalByID(pool *pgxpool.Pool, goalID int) (*models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, deadline, category_id, notes, color, active, created_at, updated_at
		FROM goals
		WHERE id = $1`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, goalID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Deadline,
		&goal.CategoryID,
		&goal.Notes,
		&goal.Color,
		&goal.Active,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("goal with ID %d not found", goalID)
		}
		return nil, fmt.Errorf("error fetching goal: %v", err)
	}
	return goal, nil
}

func GetGoalsByUserID(pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, deadline, category_id, notes, color, active, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching goals: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Name,
			&goal.TargetAmount,
			&goal.CurrentAmount,
			&goal.Deadline,
			&goal.CategoryID,
			&goal.Notes,
			&goal.Color,
			&goal.Active,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

func UpdateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, deadline = $4,
			category_id = $5, notes = $6, color = $7, active = $8, updated_at = now()
		WHERE id = $9`

	result, err := pool.Exec(context.Background(), query,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.CategoryID,
		goal.Notes,
		goal.Color,
		goal.Active,
		goal.ID)
	if err != nil {
		return fmt.Errorf("error updating goal: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal with ID %d not found", goal.ID)
	}
	return nil
}

func DeleteGoal(pool *pgxpool.Pool, goalID int) error {
	query := `DELETE FROM goals WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, goalID)
	if err != nil {
		return fmt.Errorf("error deleting goal: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal with ID %d not found", goalID)
	}
	return nil
}

// AddProgressToGoal moves the stored current amount forward. The derived
// progress endpoint prefers linked investments; this path serves goals
// funded by hand.
func AddProgressToGoal(pool *pgxpool.Pool, goalID int, amount decimal.Decimal) error {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1, updated_at = now()
		WHERE id = $2`

	result, err := pool.Exec(context.Background(), query, amount, goalID)
	if err != nil {
		return fmt.Errorf("error adding progress to goal: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal with ID %d not found", goalID)
	}
	return nil
}
