package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetUserSettingsByID(pool *pgxpool.Pool, userID int) (*models.UserSettings, error) {
	query := `
		SELECT id, user_id, currency, theme, notifications_enabled, weekly_reports
		FROM user_settings
		WHERE user_id = $1`

	settings := &models.UserSettings{}
	err := pool.QueryRow(context.Background(), query, userID).Scan(
		&settings.ID,
		&settings.UserID,
		&settings.Currency,
		&settings.Theme,
		&settings.NotificationsEnabled,
		&settings.WeeklyReports,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("settings for user %d not found", userID)
		}
		return nil, fmt.Errorf("error fetching user settings: %v", err)
	}
	return settings, nil
}

func UpdateUserSettings(pool *pgxpool.Pool, settings *models.UserSettings) error {
	query := `
		UPDATE user_settings
		SET currency = $1, theme = $2, notifications_enabled = $3, weekly_reports = $4
		WHERE user_id = $5`

	result, err := pool.Exec(context.Background(), query,
		settings.Currency,
		settings.Theme,
		settings.NotificationsEnabled,
		settings.WeeklyReports,
		settings.UserID)
	if err != nil {
		return fmt.Errorf("error updating user settings: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("settings for user %d not found", settings.UserID)
	}
	return nil
}
