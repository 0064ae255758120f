package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DayLayout is the fixed-width day-string format used throughout the ledger.
// Because it is zero-padded, lexicographic order equals chronological order.
const DayLayout = "20060102"

// MonthStart returns the day string of the first day of the month.
func MonthStart(year, month int) string {
	return fmt.Sprintf("%04d%02d01", year, month)
}

// MonthEnd returns the day string of the last day of the month, honouring
// Gregorian month lengths and leap years.
func MonthEnd(year, month int) string {
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Format(DayLayout)
}

// DayString formats a time as a YYYYMMDD day string.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// YearMonth extracts the numeric year and month from a day string (YYYYMMDD
// or YYYYMM). Inputs are fixed-width numeric by contract; validation belongs
// to the input layer.
func YearMonth(date string) (year, month int) {
	year, _ = strconv.Atoi(date[:4])
	month, _ = strconv.Atoi(date[4:6])
	return year, month
}

// NextMonth returns the calendar month following (year, month).
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}
