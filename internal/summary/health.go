// Package summary derives every read model of the journal from the plain
// record list. All functions are pure: the same records and instant always
// give the same answer, and none of them fail.
package summary

import (
	"laleme/internal/calendar"
	"laleme/internal/i18n"
	"laleme/internal/models"
)

type Status string

const (
	StatusNone      Status = ""
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
)

const (
	excellentMin = 3
	excellentMax = 14
)

var statusMessages = map[Status]string{
	StatusExcellent: i18n.KeyHealthExcellent,
	StatusGood:      i18n.KeyHealthGood,
	StatusFair:      i18n.KeyHealthFair,
	StatusPoor:      i18n.KeyHealthPoor,
}

type HealthSummary struct {
	Status         Status `json:"status"`
	Message        string `json:"message"`
	LastRecordTime *int64 `json:"lastRecordTime"`
	CountThisWeek  int    `json:"countThisWeek"`
}

// CountThisWeek counts records strictly less than seven days old. Records
// stamped after now count too.
func CountThisWeek(records []models.Record, now int64) int {
	count := 0
	for i := range records {
		if calendar.Within(records[i].Timestamp, now, calendar.MillisPerWeek) {
			count++
		}
	}
	return count
}

func Classify(countThisWeek, total int) Status {
	switch {
	case countThisWeek >= excellentMin && countThisWeek <= excellentMax:
		return StatusExcellent
	case countThisWeek > 0:
		return StatusGood
	case total > 0:
		return StatusFair
	default:
		return StatusPoor
	}
}

// Health classifies the trailing week. LastRecordTime is the timestamp of the
// last appended record, which is not necessarily the greatest timestamp.
func Health(records []models.Record, now int64, lang models.Language) HealthSummary {
	count := CountThisWeek(records, now)
	status := Classify(count, len(records))

	h := HealthSummary{
		Status:        status,
		Message:       i18n.Text(lang, statusMessages[status]),
		CountThisWeek: count,
	}
	if len(records) > 0 {
		last := records[len(records)-1].Timestamp
		h.LastRecordTime = &last
	}
	return h
}
