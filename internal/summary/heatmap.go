package summary

import (
	"iter"
	"slices"
	"time"

	"laleme/internal/calendar"
	"laleme/internal/models"
)

const HeatmapDays = 365

// Level is the display intensity of a heatmap cell.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	default:
		return "high"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func LevelFor(count int) Level {
	switch {
	case count <= 0:
		return LevelNone
	case count == 1:
		return LevelLow
	case count == 2:
		return LevelMedium
	default:
		return LevelHigh
	}
}

type HeatDay struct {
	Date    calendar.Day `json:"date"`
	Count   int          `json:"count"`
	Level   Level        `json:"level"`
	IsToday bool         `json:"isToday"`
}

// CountByDay buckets records into local days.
func CountByDay(records []models.Record, loc *time.Location) map[calendar.Day]int {
	counts := make(map[calendar.Day]int, len(records))
	for i := range records {
		counts[calendar.DayOf(records[i].Timestamp, loc)]++
	}
	return counts
}

// Heatmap yields the 365 local days ending today, oldest first. Each range
// over the sequence recomputes it from records.
func Heatmap(records []models.Record, now int64, loc *time.Location) iter.Seq[HeatDay] {
	return func(yield func(HeatDay) bool) {
		counts := CountByDay(records, loc)
		today := calendar.DayOf(now, loc)
		for i := HeatmapDays - 1; i >= 0; i-- {
			day := today.AddDays(-i)
			count := counts[day]
			if !yield(HeatDay{Date: day, Count: count, Level: LevelFor(count), IsToday: i == 0}) {
				return
			}
		}
	}
}

func HeatmapSlice(records []models.Record, now int64, loc *time.Location) []HeatDay {
	return slices.Collect(Heatmap(records, now, loc))
}
