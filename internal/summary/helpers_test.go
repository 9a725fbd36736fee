package summary

import (
	"strconv"
	"time"

	"laleme/internal/calendar"
	"laleme/internal/models"
)

const day = calendar.MillisPerDay

// base is 2024-06-12 12:00 UTC, a Wednesday.
var base = time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC).UnixMilli()

func rec(cat int, ts int64) models.Record {
	return models.Record{ID: "r" + strconv.FormatInt(ts, 10), Timestamp: ts, Category: models.Category(cat)}
}
