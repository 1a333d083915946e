package finance

import (
	"math"
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
)

type GoalProgress struct {
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	Progress            decimal.Decimal `json:"progress"`
	DaysElapsed         int             `json:"days_elapsed,omitempty"`
	RemainingDays       int             `json:"remaining_days,omitempty"`
	EstimatedCompletion *time.Time      `json:"estimated_completion,omitempty"`
}

// CalculateGoalProgress computes a goal's completion percentage and a
// straight-line projection of its completion date. When at least one
// investment is linked to the goal the sum of those investments is the
// current amount; otherwise the goal's stored amount is used. The
// percentage is unbounded above 100, and the projected date can sit in the
// past when progress outran the linear estimate.
func CalculateGoalProgress(goal models.Goal, investments []models.Investment, now time.Time) GoalProgress {
	current := goal.CurrentAmount
	linkedSum := decimal.Zero
	linked := false
	for _, inv := range investments {
		if inv.GoalID != nil && *inv.GoalID == goal.ID {
			linked = true
			linkedSum = linkedSum.Add(inv.Amount)
		}
	}
	if linked {
		current = linkedSum
	}

	progress := GoalProgress{
		CurrentAmount: current,
		TargetAmount:  goal.TargetAmount,
	}
	if goal.TargetAmount.IsPositive() {
		progress.Progress = current.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100))
	}

	if goal.Deadline == nil || !progress.Progress.IsPositive() {
		return progress
	}

	daysElapsed := int(dayOf(now).Sub(dayOf(goal.CreatedAt)).Hours() / 24)
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	ratio, _ := progress.Progress.Float64()
	totalDaysNeeded := int(math.Ceil(float64(daysElapsed) / (ratio / 100)))
	remainingDays := totalDaysNeeded - daysElapsed
	estimate := dayOf(now).AddDate(0, 0, remainingDays)

	progress.DaysElapsed = daysElapsed
	progress.RemainingDays = remainingDays
	progress.EstimatedCompletion = &estimate
	return progress
}
