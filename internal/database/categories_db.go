package database

import (
	"context"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, icon, color, budget)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		category.UserID,
		category.Name,
		category.Type,
		category.Icon,
		category.Color,
		category.Budget).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating category: %v", err)
	}
	return nil
}

func GetCategoriesByUserID(pool *pgxpool.Pool, userID int) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, icon, color, budget, amount, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching categories: %v", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Type,
			&category.Icon,
			&category.Color,
			&category.Budget,
			&category.Amount,
			&category.CreatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func UpdateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2, icon = $3, color = $4, budget = $5
		WHERE id = $6`

	result, err := pool.Exec(context.Background(), query,
		category.Name,
		category.Type,
		category.Icon,
		category.Color,
		category.Budget,
		category.ID)
	if err != nil {
		return fmt.Errorf("error updating category: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("category with ID %d not found", category.ID)
	}
	return nil
}

func DeleteCategory(pool *pgxpool.Pool, categoryID int) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, categoryID)
	if err != nil {
		return fmt.Errorf("error deleting category: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("category with ID %d not found", categoryID)
	}
	return nil
}

// RefreshCategoryAmounts recomputes each category's running amount from the
// current month's active transactions.
func RefreshCategoryAmounts(pool *pgxpool.Pool) error {
	query := `
		UPDATE categories c
		SET amount = COALESCE((
			SELECT SUM(t.amount)
			FROM transactions t
			WHERE t.category_id = c.id
			AND t.active
			AND DATE_TRUNC('month', t.date) = DATE_TRUNC('month', CURRENT_DATE)), 0)`

	_, err := pool.Exec(context.Background(), query)
	if err != nil {
		return fmt.Errorf("error refreshing category amounts: %v", err)
	}
	return nil
}

// ResetCategoryAmounts zeroes every running amount at the turn of the month.
func ResetCategoryAmounts(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `UPDATE categories SET amount = 0`)
	if err != nil {
		return fmt.Errorf("error resetting category amounts: %v", err)
	}
	return nil
}
