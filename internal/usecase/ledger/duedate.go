package ledger

import "time"

// dueDayOfMonth is when installments fall due: the 10th.
const dueDayOfMonth = 10

// firstDueDate is the initial due date set at approval: the 10th of the
// month after the loan request was created.
func firstDueDate(createdAt time.Time) time.Time {
	y, m, _ := createdAt.UTC().Date()
	// time.Date normalizes month 13 into January next year.
	return time.Date(y, m+1, dueDayOfMonth, 0, 0, 0, 0, time.UTC)
}

// addOneMonth advances d by one calendar month, keeping the day of month
// and clamping it to the last day of the shorter target month
// (Jan 31 -> Feb 28/29). Fixed 30-day increments drifted against the
// statement day and are not used.
func addOneMonth(d time.Time) time.Time {
	y, m, day := d.Date()
	if last := daysIn(y, m+1); day > last {
		day = last
	}
	return time.Date(y, m+1, day, 0, 0, 0, 0, d.Location())
}

// daysIn returns the number of days in the given month; day 0 of the
// following month is its last day.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
