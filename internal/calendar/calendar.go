// Package calendar maps millisecond timestamps onto local calendar buckets.
// Every function takes the viewer's location explicitly; nothing reads the
// process time zone implicitly.
package calendar

import (
	"fmt"
	"time"
)

const (
	MillisPerDay  int64 = 24 * 60 * 60 * 1000
	MillisPerWeek       = 7 * MillisPerDay
)

// Day is a local calendar date.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func FromMillis(ts int64, loc *time.Location) time.Time {
	return time.UnixMilli(ts).In(location(loc))
}

func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// DayOf returns the local day bucket of ts.
func DayOf(ts int64, loc *time.Location) Day {
	return DayOfTime(FromMillis(ts, loc))
}

func DayOfTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

func IsSameLocalDay(ts1, ts2 int64, loc *time.Location) bool {
	return DayOf(ts1, loc) == DayOf(ts2, loc)
}

// DaysBetween is the elapsed time between two instants in whole days,
// rounded up. It never returns a negative value.
func DaysBetween(earlier, later int64) int {
	if later <= earlier {
		return 0
	}
	diff := elapsed(earlier, later)
	days := diff / uint64(MillisPerDay)
	if diff%uint64(MillisPerDay) != 0 {
		days++
	}
	return int(days)
}

// elapsed is later-earlier for later > earlier, exact across the whole
// int64 range.
func elapsed(earlier, later int64) uint64 {
	return uint64(later) - uint64(earlier)
}

// Within reports whether ts is less than window milliseconds before now.
// Instants at or after now are always within.
func Within(ts, now, window int64) bool {
	if ts >= now {
		return window > 0
	}
	return elapsed(ts, now) < uint64(window)
}

// Start is local midnight of the day.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, location(loc))
}

// AddDays moves by calendar days, so DST transitions never skip or repeat a day.
func (d Day) AddDays(n int) Day {
	return DayOfTime(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// WeekStart is the Sunday that opens the week containing d.
func (d Day) WeekStart() Day {
	return d.AddDays(-int(d.Weekday()))
}

func (d Day) MonthStart() Day {
	return Day{Year: d.Year, Month: d.Month, Day: 1}
}

func (d Day) YearStart() Day {
	return Day{Year: d.Year, Month: time.January, Day: 1}
}

func (d Day) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOfTime(t), nil
}

// WeekOf, MonthOf and YearOf return the bucket start for ts.
func WeekOf(ts int64, loc *time.Location) Day {
	return DayOf(ts, loc).WeekStart()
}

func MonthOf(ts int64, loc *time.Location) Day {
	return DayOf(ts, loc).MonthStart()
}

func YearOf(ts int64, loc *time.Location) Day {
	return DayOf(ts, loc).YearStart()
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
