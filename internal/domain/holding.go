package domain

import "time"

// Classify returns LongTerm when the lot was held more than one year.
// The holding period starts the day after buy, so selling on the one-year
// anniversary is still short-term.
func Classify(buy, sell time.Time) Term {
	if dateOnly(sell).After(anniversary(buy)) {
		return LongTerm
	}
	return ShortTerm
}

// anniversary returns the same calendar day one year after d. A Feb 29
// acquisition has its anniversary on Feb 28 of the following year.
func anniversary(d time.Time) time.Time {
	y, m, day := d.Date()
	if m == time.February && day == 29 {
		day = 28
	}
	return time.Date(y+1, m, day, 0, 0, 0, 0, time.UTC)
}

func dateOnly(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
