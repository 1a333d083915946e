package finance

import (
	"testing"
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedInvestment(goalID int, amount string) models.Investment {
	id := goalID
	return models.Investment{
		GoalID: &id,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestCalculateGoalProgressPercentage(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		goal         models.Goal
		investments  []models.Investment
		wantCurrent  string
		wantProgress string
	}{
		{
			name: "stored amount used when nothing is linked",
			goal: models.Goal{
				ID:            1,
				TargetAmount:  decimal.RequireFromString("1000"),
				CurrentAmount: decimal.RequireFromString("250"),
			},
			wantCurrent:  "250",
			wantProgress: "25",
		},
		{
			name: "linked investments override the stored amount",
			goal: models.Goal{
				ID:            1,
				TargetAmount:  decimal.RequireFromString("1000"),
				CurrentAmount: decimal.RequireFromString("250"),
			},
			investments: []models.Investment{
				linkedInvestment(1, "300"),
				linkedInvestment(1, "200"),
				linkedInvestment(2, "5000"),
			},
			wantCurrent:  "500",
			wantProgress: "50",
		},
		{
			name: "progress is unbounded above one hundred",
			goal: models.Goal{
				ID:            1,
				TargetAmount:  decimal.RequireFromString("1000"),
				CurrentAmount: decimal.RequireFromString("1250"),
			},
			wantCurrent:  "1250",
			wantProgress: "125",
		},
		{
			name: "zero target yields zero progress",
			goal: models.Goal{
				ID:            1,
				TargetAmount:  decimal.Zero,
				CurrentAmount: decimal.RequireFromString("250"),
			},
			wantCurrent:  "250",
			wantProgress: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGoalProgress(tt.goal, tt.investments, now)
			assert.True(t, got.CurrentAmount.Equal(decimal.RequireFromString(tt.wantCurrent)),
				"current %s", got.CurrentAmount)
			assert.True(t, got.Progress.Equal(decimal.RequireFromString(tt.wantProgress)),
				"progress %s", got.Progress)
		})
	}
}

func TestCalculateGoalProgressProjection(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	// 25% done after 30 days: the straight line says 120 days total, so
	// completion lands 90 days from today.
	goal := models.Goal{
		ID:            1,
		TargetAmount:  decimal.RequireFromString("1000"),
		CurrentAmount: decimal.RequireFromString("250"),
		Deadline:      &deadline,
		CreatedAt:     now.AddDate(0, 0, -30),
	}

	got := CalculateGoalProgress(goal, nil, now)
	require.NotNil(t, got.EstimatedCompletion)
	assert.Equal(t, 30, got.DaysElapsed)
	assert.Equal(t, 90, got.RemainingDays)
	assert.Equal(t, time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC), *got.EstimatedCompletion)
}

func TestCalculateGoalProgressProjectionCanLandInThePast(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	// 200% done after 100 days: the linear estimate needed only 50 days,
	// so the projected completion is 50 days behind today.
	goal := models.Goal{
		ID:            1,
		TargetAmount:  decimal.RequireFromString("1000"),
		CurrentAmount: decimal.RequireFromString("2000"),
		Deadline:      &deadline,
		CreatedAt:     now.AddDate(0, 0, -100),
	}

	got := CalculateGoalProgress(goal, nil, now)
	require.NotNil(t, got.EstimatedCompletion)
	assert.Equal(t, -50, got.RemainingDays)
	assert.True(t, got.EstimatedCompletion.Before(now))
}

func TestCalculateGoalProgressNoProjectionCases(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	t.Run("without deadline", func(t *testing.T) {
		goal := models.Goal{
			ID:            1,
			TargetAmount:  decimal.RequireFromString("1000"),
			CurrentAmount: decimal.RequireFromString("250"),
			CreatedAt:     now.AddDate(0, 0, -30),
		}
		got := CalculateGoalProgress(goal, nil, now)
		assert.Nil(t, got.EstimatedCompletion)
	})

	t.Run("without progress", func(t *testing.T) {
		goal := models.Goal{
			ID:           1,
			TargetAmount: decimal.RequireFromString("1000"),
			Deadline:     &deadline,
			CreatedAt:    now.AddDate(0, 0, -30),
		}
		got := CalculateGoalProgress(goal, nil, now)
		assert.Nil(t, got.EstimatedCompletion)
	})
}
