package statement

import (
	"fmt"
	"strconv"
)

// Billing periods run on a mid-month cycle: period "202403" covers
// [2024-03-06, 2024-04-06). The cycle day models a credit-card style
// statement boundary offset from the calendar month.
const cycleDay = 6

// PeriodRange maps a 6-digit YYYYMM period token onto its half-open
// date interval [from, to). Pure function, no I/O.
func PeriodRange(period string) (from, to string, err error) {
	if len(period) != 6 {
		return "", "", fmt.Errorf("invalid period %q: want YYYYMM", period)
	}
	year, err := strconv.Atoi(period[:4])
	if err != nil {
		return "", "", fmt.Errorf("invalid period %q: want YYYYMM", period)
	}
	month, err := strconv.Atoi(period[4:])
	if err != nil || month < 1 || month > 12 {
		return "", "", fmt.Errorf("invalid period %q: month out of range", period)
	}

	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}

	from = fmt.Sprintf("%04d-%02d-%02d", year, month, cycleDay)
	to = fmt.Sprintf("%04d-%02d-%02d", nextYear, nextMonth, cycleDay)
	return from, to, nil
}
