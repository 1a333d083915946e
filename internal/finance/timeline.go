package finance

import (
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
)

type TimelinePoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Assumed when an investment carries no expected return: 0.5% a month.
var defaultMonthlyRate = decimal.NewFromFloat(0.005)

// InvestmentTimeline produces one portfolio-value data point per calendar
// month from the earliest initial date through the current month. Each
// investment compounds monthly at expectedReturn/12 once its start date is
// reached. Pass onlyID to restrict the series to a single investment.
func InvestmentTimeline(investments []models.Investment, onlyID *int, now time.Time) []TimelinePoint {
	var selected []models.Investment
	for _, inv := range investments {
		if onlyID != nil && inv.ID != *onlyID {
			continue
		}
		selected = append(selected, inv)
	}
	if len(selected) == 0 {
		return nil
	}

	earliest := selected[0].InitialDate
	for _, inv := range selected[1:] {
		if inv.InitialDate.Before(earliest) {
			earliest = inv.InitialDate
		}
	}

	base := dayOf(earliest)
	today := dayOf(now)
	one := decimal.NewFromInt(1)

	var points []TimelinePoint
	for i := 0; ; i++ {
		year, month := addMonths(base.Year(), base.Month(), i)
		point := dateOn(year, month, base.Day())
		if point.After(today) {
			break
		}

		total := decimal.Zero
		for _, inv := range selected {
			start := dayOf(inv.InitialDate)
			if start.After(point) {
				continue
			}
			months := wholeMonthsBetween(start, point)
			rate := defaultMonthlyRate
			if inv.ExpectedReturn != nil {
				rate = inv.ExpectedReturn.
					Div(decimal.NewFromInt(12)).
					Div(decimal.NewFromInt(100))
			}
			growth := one.Add(rate).Pow(decimal.NewFromInt(int64(months)))
			total = total.Add(inv.Amount.Mul(growth))
		}
		points = append(points, TimelinePoint{Date: point, Value: total})
	}
	return points
}
