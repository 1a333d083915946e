package finance

import (
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
)

// NextClosingDate returns the next date a card's billing cycle closes. If
// this month's closing day already passed it rolls into next month. The day
// is clamped to the last valid day of the target month.
func NextClosingDate(closingDay int, now time.Time) time.Time {
	year, month := now.Year(), now.Month()
	if now.Day() > closingDay {
		year, month = addMonths(year, month, 1)
	}
	return dateOn(year, month, closingDay)
}

// NextDueDate returns the next payment date for a card. A due day at or
// before the closing day belongs to the cycle closing this month, so the
// payment lands in the next calendar month.
func NextDueDate(dueDay, closingDay int, now time.Time) time.Time {
	year, month := now.Year(), now.Month()
	if dueDay <= closingDay {
		year, month = addMonths(year, month, 1)
	}
	return dateOn(year, month, dueDay)
}

// NextStatementAmount sums the card transactions inside the reference
// cycle's window. The window rule is shared with GenerateStatements.
func NextStatementAmount(card models.CreditCard, transactions []models.Transaction, now time.Time) decimal.Decimal {
	refYear, refMonth := referenceMonth(card.DueDay, now)
	start, end, _ := billingPeriod(card.ClosingDay, refYear, refMonth)

	total := decimal.Zero
	for _, tx := range transactions {
		day := dayOf(tx.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}
