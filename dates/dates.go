// Package dates provides date-range helpers for partitioned timeseries
// queries.
package dates

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
	"github.com/teambition/rrule-go"
)

// ValidateISO8601Duration reports whether s is a valid ISO 8601
// duration (e.g. "P1D", "PT30M").
func ValidateISO8601Duration(s string) bool {
	_, err := duration.Parse(s)
	return err == nil
}

// SterilizeDateRange validates and widens a start/end pair. A zero end
// defaults to the start. Date-only values (midnight clock) keep their
// start-of-day start and are widened to the very end of the day on the
// end side, so the range covers the whole final day.
func SterilizeDateRange(start, end time.Time) (time.Time, time.Time, error) {
	if end.IsZero() {
		end = start
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date must come before end date: %s > %s", start, end)
	}

	if h, m, s := end.Clock(); h == 0 && m == 0 && s == 0 && end.Nanosecond() == 0 {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	return start, end, nil
}

// DateRange is one chunk of a split range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ChunkDateRange breaks [start, end] into consecutive chunks on the
// given recurrence frequency (rrule.YEARLY, rrule.MONTHLY, ...). The
// final chunk is truncated at end when the range does not divide
// evenly.
//
//	ChunkDateRange(time.Date(2010, 5, 5, ...), time.Date(2012, 12, 26, ...), rrule.YEARLY)
//	// [{2010-05-05 2011-05-05} {2011-05-05 2012-05-05} {2012-05-05 2012-12-26}]
func ChunkDateRange(start, end time.Time, freq rrule.Frequency) ([]DateRange, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Dtstart: start,
		Until:   end,
	})
	if err != nil {
		return nil, err
	}

	points := rule.Between(start, end, true)
	points = append(points, end)

	chunks := make([]DateRange, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		chunks = append(chunks, DateRange{Start: points[i], End: points[i+1]})
	}
	return chunks, nil
}
