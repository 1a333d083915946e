package finance

import "time"

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOn builds a date on the given day of month, clamping the day to the
// last valid day of that month (day 31 in April yields April 30).
func dateOn(year int, month time.Month, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// addMonths shifts a year/month pair by offset months, normalizing into
// calendar range.
func addMonths(year int, month time.Month, offset int) (int, time.Month) {
	m := int(month) - 1 + offset
	y := year + m/12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}

// dayOf truncates a timestamp to its calendar day in UTC.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// wholeMonthsBetween counts complete calendar months from start to end.
func wholeMonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
