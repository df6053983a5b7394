// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package format renders values for display.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the calendar date layout, YYYY-MM-DD.
const DateLayout = "2006-01-02"

// maxMillis bounds numeric dates to 100,000,000 days either side of
// the Unix epoch, the range of an ECMAScript Date.
const maxMillis = 8.64e15

// InvalidDate is returned by Date for anything that is not a date.
const InvalidDate = "Invalid Date"

// Date renders a date-like value as YYYY-MM-DD.  value may be a
// time.Time, a *time.Time, a string in any common layout, or a number
// of milliseconds since the Unix epoch no further than 8.64e15 from it.
// Times are rendered in their own offset; strings without an offset
// are read as UTC.  Anything else renders as InvalidDate.
func Date(value interface{}) string {
	t, ok := toTime(value)
	if !ok {
		return InvalidDate
	}
	return t.Format(DateLayout)
}

// FormatDate is Date, under the name view code uses.
var FormatDate = Date

func toTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return time.Time{}, false
		}
		t, err := dateparse.ParseIn(v, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case int:
		return intMillis(int64(v))
	case int32:
		return intMillis(int64(v))
	case int64:
		return intMillis(v)
	case uint:
		return uintMillis(uint64(v))
	case uint32:
		return uintMillis(uint64(v))
	case uint64:
		return uintMillis(v)
	case float32:
		return floatMillis(float64(v))
	case float64:
		return floatMillis(v)
	}
	return time.Time{}, false
}

func intMillis(ms int64) (time.Time, bool) {
	if ms < -maxMillis || ms > maxMillis {
		return time.Time{}, false
	}
	return millis(ms), true
}

func uintMillis(ms uint64) (time.Time, bool) {
	if ms > maxMillis {
		return time.Time{}, false
	}
	return millis(int64(ms)), true
}

func floatMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || ms < -maxMillis || ms > maxMillis {
		return time.Time{}, false
	}
	return millis(int64(ms)), true
}

func millis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
