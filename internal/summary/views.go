package summary

import (
	"time"

	"laleme/internal/calendar"
	"laleme/internal/models"
)

type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewYear  View = "year"
)

func (v View) Valid() bool {
	return v == ViewWeek || v == ViewMonth || v == ViewYear
}

type DayEntry struct {
	Date    calendar.Day    `json:"date"`
	IsToday bool            `json:"isToday"`
	Count   int             `json:"count"`
	Tones   []models.Tone   `json:"tones"`
	Records []models.Record `json:"records,omitempty"`
}

type MonthEntry struct {
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

// CalendarView is one page of the calendar. Week pages list 7 days starting on
// Sunday; month pages list every day of the month with Offset blank cells
// before the 1st; year pages list 12 month totals.
type CalendarView struct {
	View   View         `json:"view"`
	Anchor calendar.Day `json:"anchor"`
	Offset int          `json:"offset,omitempty"`
	Days   []DayEntry   `json:"days,omitempty"`
	Months []MonthEntry `json:"months,omitempty"`
}

func groupByDay(records []models.Record, loc *time.Location) map[calendar.Day][]models.Record {
	out := make(map[calendar.Day][]models.Record)
	for _, r := range records {
		d := calendar.DayOf(r.Timestamp, loc)
		out[d] = append(out[d], r)
	}
	return out
}

func dayEntry(day, today calendar.Day, recs []models.Record, withRecords bool) DayEntry {
	e := DayEntry{Date: day, IsToday: day == today, Count: len(recs), Tones: make([]models.Tone, 0, len(recs))}
	for _, r := range recs {
		e.Tones = append(e.Tones, r.Category.Tone())
	}
	if withRecords {
		e.Records = recs
	}
	return e
}

func WeekView(records []models.Record, anchor calendar.Day, now int64, loc *time.Location) CalendarView {
	byDay := groupByDay(records, loc)
	today := calendar.DayOf(now, loc)
	start := anchor.WeekStart()

	v := CalendarView{View: ViewWeek, Anchor: anchor, Days: make([]DayEntry, 0, 7)}
	for i := 0; i < 7; i++ {
		day := start.AddDays(i)
		v.Days = append(v.Days, dayEntry(day, today, byDay[day], true))
	}
	return v
}

func MonthView(records []models.Record, anchor calendar.Day, now int64, loc *time.Location) CalendarView {
	byDay := groupByDay(records, loc)
	today := calendar.DayOf(now, loc)
	first := anchor.MonthStart()
	n := first.DaysInMonth()

	v := CalendarView{View: ViewMonth, Anchor: anchor, Offset: int(first.Weekday()), Days: make([]DayEntry, 0, n)}
	for i := 0; i < n; i++ {
		day := first.AddDays(i)
		v.Days = append(v.Days, dayEntry(day, today, byDay[day], false))
	}
	return v
}

func YearView(records []models.Record, anchor calendar.Day, loc *time.Location) CalendarView {
	v := CalendarView{View: ViewYear, Anchor: anchor, Months: make([]MonthEntry, 12)}
	for m := range v.Months {
		v.Months[m].Month = time.Month(m + 1)
	}
	for i := range records {
		d := calendar.DayOf(records[i].Timestamp, loc)
		if d.Year == anchor.Year {
			v.Months[d.Month-1].Count++
		}
	}
	return v
}

// BuildView dispatches on view; unknown views fall back to the week page.
func BuildView(view View, records []models.Record, anchor calendar.Day, now int64, loc *time.Location) CalendarView {
	switch view {
	case ViewMonth:
		return MonthView(records, anchor, now, loc)
	case ViewYear:
		return YearView(records, anchor, loc)
	default:
		return WeekView(records, anchor, now, loc)
	}
}
