package timetricks

import (
	"time"
)

const (
	dayFormat = "20060102"
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// SetClock returns hour:minute on t's calendar day in t's location. Built from
// the calendar fields so that days with a DST transition still land on the
// right wall clock.
func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, int(hour), int(minute), 0, 0, t.Location())
}
