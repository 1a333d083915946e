package finance

import (
	"testing"
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedReturn(annual string) *decimal.Decimal {
	d := decimal.RequireFromString(annual)
	return &d
}

func TestInvestmentTimelineSingleInvestment(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	investment := models.Investment{
		ID:             1,
		Amount:         decimal.RequireFromString("1000"),
		ExpectedReturn: expectedReturn("12"),
		InitialDate:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	points := InvestmentTimeline([]models.Investment{investment}, nil, now)

	// Three months of history plus the starting point.
	require.Len(t, points, 4)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), points[3].Date)

	// 12% a year compounds at 1% a month: 1000 * 1.01^3.
	assert.True(t, points[0].Value.Equal(decimal.RequireFromString("1000")), "got %s", points[0].Value)
	assert.True(t, points[3].Value.Equal(decimal.RequireFromString("1030.301")), "got %s", points[3].Value)
}

func TestInvestmentTimelineDefaultRate(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	investment := models.Investment{
		ID:          1,
		Amount:      decimal.RequireFromString("1000"),
		InitialDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	points := InvestmentTimeline([]models.Investment{investment}, nil, now)

	require.Len(t, points, 2)
	// No expected return falls back to 0.5% a month.
	assert.True(t, points[1].Value.Equal(decimal.RequireFromString("1005")), "got %s", points[1].Value)
}

func TestInvestmentTimelineLateStarterJoinsMidSeries(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	early := models.Investment{
		ID:             1,
		Amount:         decimal.RequireFromString("1000"),
		ExpectedReturn: expectedReturn("12"),
		InitialDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	late := models.Investment{
		ID:             2,
		Amount:         decimal.RequireFromString("500"),
		ExpectedReturn: expectedReturn("12"),
		InitialDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	points := InvestmentTimeline([]models.Investment{early, late}, nil, now)
	require.Len(t, points, 4)

	// April: only the early investment, one month of growth.
	assert.True(t, points[1].Value.Equal(decimal.RequireFromString("1010")), "got %s", points[1].Value)
	// May: late investment joins at face value.
	assert.True(t, points[2].Value.Equal(decimal.RequireFromString("1520.10")), "got %s", points[2].Value)
	// June: 1000*1.01^3 + 500*1.01.
	assert.True(t, points[3].Value.Equal(decimal.RequireFromString("1535.301")), "got %s", points[3].Value)
}

func TestInvestmentTimelineSingleFilter(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first := models.Investment{
		ID:          1,
		Amount:      decimal.RequireFromString("1000"),
		InitialDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	second := models.Investment{
		ID:          2,
		Amount:      decimal.RequireFromString("500"),
		InitialDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	onlyID := 2
	points := InvestmentTimeline([]models.Investment{first, second}, &onlyID, now)

	// The series starts at the filtered investment's own initial date.
	require.Len(t, points, 2)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.True(t, points[0].Value.Equal(decimal.RequireFromString("500")), "got %s", points[0].Value)
}

func TestInvestmentTimelineEmpty(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, InvestmentTimeline(nil, nil, now))

	missing := 99
	one := models.Investment{ID: 1, Amount: decimal.RequireFromString("100"), InitialDate: now}
	assert.Nil(t, InvestmentTimeline([]models.Investment{one}, &missing, now))
}

func TestInvestmentTimelineMonthEndStart(t *testing.T) {
	// A series anchored on the 31st clamps in shorter months rather than
	// drifting into the following month.
	now := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	investment := models.Investment{
		ID:          1,
		Amount:      decimal.RequireFromString("1000"),
		InitialDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	points := InvestmentTimeline([]models.Investment{investment}, nil, now)
	require.Len(t, points, 4)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), points[1].Date)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), points[2].Date)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), points[3].Date)
}
