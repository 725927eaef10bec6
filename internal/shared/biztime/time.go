// Package biztime holds the business timezone used to draw day boundaries
// for statistics. Timestamps are stored and transported in UTC.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

const dateLayout = "2006-01-02"

var (
	mu          sync.RWMutex
	bizLocation = time.UTC
)

// Init sets the business timezone. An empty name selects UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns midnight of t's business day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	loc := Location()
	b := t.In(loc)
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, loc).UTC()
}

// DateKey formats t as the YYYY-MM-DD of its business day.
func DateKey(t time.Time) string {
	return t.In(Location()).Format(dateLayout)
}

// LastNDays returns the date keys of the n business days ending with the
// day containing now, oldest first, and the UTC start of the oldest day.
func LastNDays(now time.Time, n int) ([]string, time.Time) {
	if n < 1 {
		n = 1
	}
	loc := Location()
	b := now.In(loc)
	today := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, loc)

	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = today.AddDate(0, 0, i-(n-1)).Format(dateLayout)
	}
	return keys, today.AddDate(0, 0, -(n - 1)).UTC()
}
