package summary

import (
	"math"
	"testing"

	"laleme/internal/i18n"
	"laleme/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Empty(t *testing.T) {
	h := Health(nil, base, models.LanguageEn)

	assert.Equal(t, StatusPoor, h.Status)
	assert.Equal(t, 0, h.CountThisWeek)
	assert.Nil(t, h.LastRecordTime)
	assert.Equal(t, i18n.Text(models.LanguageEn, i18n.KeyHealthPoor), h.Message)
}

func TestHealth_SingleRecordYesterdayIsGood(t *testing.T) {
	records := []models.Record{rec(4, base)}

	h := Health(records, base+day, models.LanguageEn)

	assert.Equal(t, StatusGood, h.Status)
	assert.Equal(t, 1, h.CountThisWeek)
	require.NotNil(t, h.LastRecordTime)
	assert.Equal(t, base, *h.LastRecordTime)
}

func TestHealth_ThreeRecordsIsExcellent(t *testing.T) {
	records := []models.Record{rec(4, base-day), rec(4, base-2*day), rec(3, base-3*day)}

	h := Health(records, base, models.LanguageZh)

	assert.Equal(t, StatusExcellent, h.Status)
	assert.Equal(t, 3, h.CountThisWeek)
	assert.Equal(t, i18n.Text(models.LanguageZh, i18n.KeyHealthExcellent), h.Message)
}

func TestHealth_OldHistoryIsFair(t *testing.T) {
	records := []models.Record{rec(4, base-30*day)}

	h := Health(records, base, models.LanguageEn)

	assert.Equal(t, StatusFair, h.Status)
	assert.Equal(t, 0, h.CountThisWeek)
}

func TestHealth_LastRecordTimeFollowsAppendOrder(t *testing.T) {
	// appended out of chronological order
	records := []models.Record{rec(4, base), rec(4, base-2*day)}

	h := Health(records, base, models.LanguageEn)

	require.NotNil(t, h.LastRecordTime)
	assert.Equal(t, base-2*day, *h.LastRecordTime)
}

func TestCountThisWeek_Boundary(t *testing.T) {
	records := []models.Record{
		rec(4, base-7*day),   // exactly seven days old: excluded
		rec(4, base-7*day+1), // just inside
		rec(4, base+day),     // future: counted
	}
	assert.Equal(t, 2, CountThisWeek(records, base))
}

func TestHealth_AncientTimestampIsNotThisWeek(t *testing.T) {
	records := []models.Record{rec(4, math.MinInt64+1)}

	h := Health(records, base, models.LanguageEn)

	assert.Equal(t, StatusFair, h.Status)
	assert.Equal(t, 0, h.CountThisWeek)
}

func TestCountThisWeek_ExtremeTimestamps(t *testing.T) {
	records := []models.Record{
		rec(4, math.MinInt64),
		rec(4, math.MinInt64+1),
		rec(4, math.MaxInt64), // far future: counted
	}
	assert.Equal(t, 1, CountThisWeek(records, base))
	assert.Equal(t, 3, CountThisWeek(records, math.MinInt64))
	assert.Equal(t, 1, CountThisWeek(records, math.MaxInt64))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		count, total int
		expected     Status
	}{
		{0, 0, StatusPoor},
		{0, 5, StatusFair},
		{1, 1, StatusGood},
		{2, 2, StatusGood},
		{3, 3, StatusExcellent},
		{14, 14, StatusExcellent},
		{15, 15, StatusGood},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, Classify(tc.count, tc.total), "count=%d total=%d", tc.count, tc.total)
	}
}
