package summary

import (
	"laleme/internal/calendar"
	"laleme/internal/models"
)

// Period selects the trailing window used for the self entry of the
// leaderboard.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

var periodDays = map[Period]int64{
	PeriodWeek:    7,
	PeriodMonth:   30,
	PeriodQuarter: 90,
	PeriodYear:    365,
}

func (p Period) Valid() bool {
	_, ok := periodDays[p]
	return ok || p == PeriodAll
}

// CountInPeriod counts records younger than the period window. PeriodAll and
// unknown periods count everything.
func CountInPeriod(records []models.Record, period Period, now int64) int {
	days, ok := periodDays[period]
	if !ok {
		return len(records)
	}
	window := days * calendar.MillisPerDay
	count := 0
	for i := range records {
		if calendar.Within(records[i].Timestamp, now, window) {
			count++
		}
	}
	return count
}
