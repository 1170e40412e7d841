// Package report holds the pure view-model computations behind the
// dashboard: the calendar week builder, the period aggregator, client
// health, and the content bank filter/paginator. Everything here is a
// function of its inputs; no I/O, no ambient state.
package report

import "time"

// Week is one row of the month calendar.
type Week struct {
	Number int         `json:"number"`
	Days   []time.Time `json:"days"`
}

// Calendar builds the ordered weeks displayed for a month. Weeks start
// on Monday; the walk begins at the Monday on or before the 1st and
// advances in 7-day windows. Weekend days are dropped unless
// allowWeekends, and a week is kept only when at least one of its
// remaining days falls inside the target month. Numbering is 1-based and
// sequential, resetting every month. Trailing days that spill into the
// next month stay in the output; rendering de-emphasizes them.
func Calendar(year int, month time.Month, allowWeekends bool) []Week {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	cursor := firstDay
	for cursor.Weekday() != time.Monday {
		cursor = cursor.AddDate(0, 0, -1)
	}

	var weeks []Week
	number := 1
	for !cursor.After(lastDay) {
		var days []time.Time
		inMonth := false
		for i := 0; i < 7; i++ {
			day := cursor.AddDate(0, 0, i)
			weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
			if !allowWeekends && weekend {
				continue
			}
			if day.Month() == month {
				inMonth = true
			}
			days = append(days, day)
		}
		if inMonth {
			weeks = append(weeks, Week{Number: number, Days: days})
			number++
		}
		cursor = cursor.AddDate(0, 0, 7)
	}
	return weeks
}
