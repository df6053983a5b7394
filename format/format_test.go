// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateStrings(t *testing.T) {
	for _, test := range []struct {
		In  string
		Out string
	}{
		{"2024-01-05T00:00:00Z", "2024-01-05"},
		{"2024-01-05", "2024-01-05"},
		{"2024-01-05 13:45:00", "2024-01-05"},
		{"2024-01-05T23:30:00-05:00", "2024-01-05"},
		{"2024-01-05T01:30:00+09:00", "2024-01-05"},
		{"2006-01-02T15:04:05.999Z", "2006-01-02"},
		{"  2024-02-29  ", "2024-02-29"},
		{"not a date", InvalidDate},
		{"", InvalidDate},
	} {
		assert.Equal(t, test.Out, Date(test.In), "%q", test.In)
	}
}

func TestDateTimes(t *testing.T) {
	utc := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-05", Date(utc))
	assert.Equal(t, "2024-01-05", Date(&utc))

	east := time.FixedZone("east", 9*60*60)
	late := time.Date(2024, time.January, 5, 23, 0, 0, 0, east)
	assert.Equal(t, "2024-01-05", Date(late))

	var nilTime *time.Time
	assert.Equal(t, InvalidDate, Date(nilTime))
	assert.Equal(t, InvalidDate, Date(time.Time{}))
}

func TestDateMillis(t *testing.T) {
	// 2024-01-05T12:00:00Z
	const ms = 1704456000000
	assert.Equal(t, "2024-01-05", Date(ms))
	assert.Equal(t, "2024-01-05", Date(int64(ms)))
	assert.Equal(t, "2024-01-05", Date(float64(ms)))
	assert.Equal(t, "1970-01-01", Date(0))
	assert.Equal(t, InvalidDate, Date(math.NaN()))
	assert.Equal(t, InvalidDate, Date(math.Inf(1)))
	assert.Equal(t, InvalidDate, Date(math.Inf(-1)))
}

func TestDateMillisRange(t *testing.T) {
	assert.NotEqual(t, InvalidDate, Date(int64(8.64e15)))
	assert.NotEqual(t, InvalidDate, Date(int64(-8.64e15)))
	assert.Equal(t, InvalidDate, Date(int64(8.64e15)+1))
	assert.Equal(t, InvalidDate, Date(int64(math.MaxInt64)))
	assert.Equal(t, InvalidDate, Date(int64(math.MinInt64)))
	assert.Equal(t, InvalidDate, Date(uint64(math.MaxUint64)))
	assert.Equal(t, InvalidDate, Date(uint(math.MaxUint64)))
	assert.Equal(t, InvalidDate, Date(1e300))
	assert.Equal(t, InvalidDate, Date(-1e300))
	assert.Equal(t, InvalidDate, Date(float32(1e30)))
	assert.Equal(t, "2024-01-05", Date(uint64(1704456000000)))
}

func TestDateUnsupported(t *testing.T) {
	assert.Equal(t, InvalidDate, Date(nil))
	assert.Equal(t, InvalidDate, Date(true))
	assert.Equal(t, InvalidDate, Date([]string{"2024-01-05"}))
}

func TestFormatDateAlias(t *testing.T) {
	assert.Equal(t, "2024-01-05", FormatDate("2024-01-05T00:00:00Z"))
}
