package finance

import (
	"time"

	"github.com/controlfin/controlfin-backend/models"
	"github.com/shopspring/decimal"
)

type StatementStatus string

const (
	StatementOpen    StatementStatus = "open"
	StatementPayable StatementStatus = "payable"
	StatementOverdue StatementStatus = "overdue"
	StatementPaid    StatementStatus = "paid"
)

// Statement is one billing cycle of a credit card. Its period runs from the
// previous cycle's closing date through the day before this cycle's closing
// date, both ends inclusive.
type Statement struct {
	Year             int                  `json:"year"`
	Month            time.Month           `json:"month"`
	PeriodStart      time.Time            `json:"period_start"`
	PeriodEnd        time.Time            `json:"period_end"`
	ClosingDate      time.Time            `json:"closing_date"`
	DueDate          time.Time            `json:"due_date"`
	Total            decimal.Decimal      `json:"total"`
	PaidAmount       decimal.Decimal      `json:"paid_amount"`
	TransactionCount int                  `json:"transaction_count"`
	AllPaid          bool                 `json:"all_paid"`
	Status           StatementStatus      `json:"status"`
	Transactions     []models.Transaction `json:"transactions"`
}

// referenceMonth picks the cycle the user is tracking by default: once the
// current month's due date has passed, that is next month's bill.
func referenceMonth(dueDay int, now time.Time) (int, time.Month) {
	if now.Day() > dueDay {
		return addMonths(now.Year(), now.Month(), 1)
	}
	return now.Year(), now.Month()
}

// billingPeriod derives the transaction window of the cycle that closes in
// the given month. Every caller shares this rule so windows never overlap
// and a purchase on the closing date itself lands in the next cycle.
func billingPeriod(closingDay, year int, month time.Month) (start, end, closing time.Time) {
	closing = dateOn(year, month, closingDay)
	prevYear, prevMonth := addMonths(year, month, -1)
	start = dateOn(prevYear, prevMonth, closingDay)
	end = closing.AddDate(0, 0, -1)
	return start, end, closing
}

// GenerateStatements derives the sliding window of statements for a card:
// five past cycles, the reference cycle and four future ones. It must be
// called fresh on every read since the reference month and the status
// labels depend on the supplied current time.
func GenerateStatements(closingDay, dueDay int, transactions []models.Transaction, now time.Time) []Statement {
	refYear, refMonth := referenceMonth(dueDay, now)
	today := dayOf(now)

	statements := make([]Statement, 0, 10)
	for offset := -5; offset < 5; offset++ {
		year, month := addMonths(refYear, refMonth, offset)
		start, end, closing := billingPeriod(closingDay, year, month)
		due := dateOn(year, month, dueDay)

		var inPeriod []models.Transaction
		total := decimal.Zero
		paidAmount := decimal.Zero
		paidCount := 0
		allPaid := true
		for _, tx := range transactions {
			day := dayOf(tx.Date)
			if day.Before(start) || day.After(end) {
				continue
			}
			inPeriod = append(inPeriod, tx)
			total = total.Add(tx.Amount)
			if tx.Paid {
				paidAmount = paidAmount.Add(tx.Amount)
				paidCount++
			} else {
				allPaid = false
			}
		}

		statements = append(statements, Statement{
			Year:        year,
			Month:       month,
			PeriodStart: start,
			PeriodEnd:   end,
			ClosingDate: closing,
			DueDate:     due,
			Total:       total,
			PaidAmount:  paidAmount,
			// Settled items only: pending transactions are not counted.
			TransactionCount: paidCount,
			AllPaid:          allPaid,
			Status:           classifyStatement(end, due, today, len(inPeriod), allPaid),
			Transactions:     inPeriod,
		})
	}
	return statements
}

func classifyStatement(periodEnd, due, today time.Time, txCount int, allPaid bool) StatementStatus {
	if periodEnd.After(today) {
		return StatementOpen
	}
	if txCount == 0 || allPaid {
		return StatementPaid
	}
	if due.Before(today) {
		return StatementOverdue
	}
	return StatementPayable
}
