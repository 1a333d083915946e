package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCreditCard(pool *pgxpool.Pool, card *models.CreditCard) error {
	if card.ClosingDay < 1 || card.ClosingDay > 31 {
		return fmt.Errorf("closing day %d out of range", card.ClosingDay)
	}
	if card.DueDay < 1 || card.DueDay > 31 {
		return fmt.Errorf("due day %d out of range", card.DueDay)
	}

	query := `
		INSERT INTO credit_cards (user_id, name, credit_limit, closing_day, due_day, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		card.UserID,
		card.Name,
		card.Limit,
		card.ClosingDay,
		card.DueDay,
		card.Color).Scan(&card.ID, &card.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating credit card: %v", err)
	}
	return nil
}

func GetCreditCardByID(pool *pgxpool.Pool, cardID int) (*models.CreditCard, error) {
	query := `
		SELECT id, user_id, name, credit_limit, closing_day, due_day, color, created_at
		FROM credit_cards
		WHERE id = $1`

	card := &models.CreditCard{}
	err := pool.QueryRow(context.Background(), query, cardID).Scan(
		&card.ID,
		&card.UserID,
		&card.Name,
		&card.Limit,
		&card.ClosingDay,
		&card.DueDay,
		&card.Color,
		&card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("credit card with ID %d not found", cardID)
		}
		return nil, fmt.Errorf("error fetching credit card: %v", err)
	}
	return card, nil
}

func GetCreditCardsByUserID(pool *pgxpool.Pool, userID int) ([]models.CreditCard, error) {
	query := `
		SELECT id, user_id, name, credit_limit, closing_day, due_day, color, created_at
		FROM credit_cards
		WHERE user_id = $1
		ORDER BY name`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching credit cards: %v", err)
	}
	defer rows.Close()

	var cards []models.CreditCard
	for rows.Next() {
		var card models.CreditCard
		if err := rows.Scan(
			&card.ID,
			&card.UserID,
			&card.Name,
			&card.Limit,
			&card.ClosingDay,
			&card.DueDay,
			&card.Color,
			&card.CreatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func UpdateCreditCard(pool *pgxpool.Pool, card *models.CreditCard) error {
	query := `
		UPDATE credit_cards
		SET name = $1, credit_limit = $2, closing_day = $3, due_day = $4, color = $5
		WHERE id = $6`

	result, err := pool.Exec(context.Background(), query,
		card.Name,
		card.Limit,
		card.ClosingDay,
		card.DueDay,
		card.Color,
		card.ID)
	if err != nil {
		return fmt.Errorf("error updating credit card: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("credit card with ID %d not found", card.ID)
	}
	return nil
}

func DeleteCreditCard(pool *pgxpool.Pool, cardID int) error {
	query := `DELETE FROM credit_cards WHERE id = $1`

	result, err := pool.Exec(context.Background(), query, cardID)
	if err != nil {
		return fmt.Errorf("error deleting credit card: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("credit card with ID %d not found", cardID)
	}
	return nil
}
