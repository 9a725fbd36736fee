package summary

import (
	"math"
	"time"

	"laleme/internal/calendar"
	"laleme/internal/models"
)

type Statistics struct {
	Total            int             `json:"total"`
	AveragePerDay    float64         `json:"averagePerDay"`
	DominantCategory models.Category `json:"dominantCategory,omitempty"`
	CurrentStatus    Status          `json:"currentStatus,omitempty"`
	Periods          PeriodCounts    `json:"periods"`
}

// PeriodCounts are record counts in the local calendar week, month and year
// containing now.
type PeriodCounts struct {
	Week  int `json:"week"`
	Month int `json:"month"`
	Year  int `json:"year"`
	Total int `json:"total"`
}

// Compute summarises the whole history. An empty history yields zero
// average, no dominant category and no status.
func Compute(records []models.Record, now int64, loc *time.Location) Statistics {
	stats := Statistics{
		Total:   len(records),
		Periods: Periods(records, now, loc),
	}
	if len(records) == 0 {
		return stats
	}

	span := max(1, calendar.DaysBetween(records[0].Timestamp, now))
	stats.AveragePerDay = roundOneDecimal(float64(len(records)) / float64(span))
	stats.DominantCategory = DominantCategory(records)
	stats.CurrentStatus = Classify(CountThisWeek(records, now), len(records))
	return stats
}

// DominantCategory is the most frequent valid category; ties go to the
// lowest value. Out-of-range categories are ignored.
func DominantCategory(records []models.Record) models.Category {
	var counts [models.CategoryMax + 1]int
	for i := range records {
		if c := records[i].Category; c.Valid() {
			counts[c]++
		}
	}

	best, bestCount := models.CategoryNone, 0
	for _, c := range models.Categories() {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

func Periods(records []models.Record, now int64, loc *time.Location) PeriodCounts {
	today := calendar.DayOf(now, loc)
	week, month, year := today.WeekStart(), today.MonthStart(), today.YearStart()

	pc := PeriodCounts{Total: len(records)}
	for i := range records {
		d := calendar.DayOf(records[i].Timestamp, loc)
		if today.Before(d) {
			continue
		}
		if !d.Before(week) {
			pc.Week++
		}
		if !d.Before(month) {
			pc.Month++
		}
		if !d.Before(year) {
			pc.Year++
		}
	}
	return pc
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
