package sunset

import (
	"testing"
	"time"

	"github.com/spencer-p/lowtides/pkg/timetricks"
)

func TestDaylight(t *testing.T) {
	day := time.Date(2020, time.October, 25, 12, 0, 0, 0, HalfMoonBay.Location)
	rise, set, ok := Daylight(HalfMoonBay, day)

	if !ok || !timetricks.SameDay(rise.Time, day) || !timetricks.SameDay(set.Time, day) {
		t.Fatalf("got %s and %s, wanted both on %s", rise.String(), set.String(), day.Format("Jan 2"))
	}
	if rise.Event != Sunrise || set.Event != Sunset {
		t.Errorf("events mislabeled: %s, %s", rise.String(), set.String())
	}

	// Half Moon Bay sees sunrise around 7:27 and sunset around 18:18 that day.
	within := func(t *testing.T, got time.Time, hour, minute int) {
		t.Helper()
		want := timetricks.SetClock(day, time.Duration(hour), time.Duration(minute))
		if d := got.Sub(want); d < -5*time.Minute || d > 5*time.Minute {
			t.Errorf("got %s, wanted within 5m of %s", got.Format(time.Kitchen), want.Format(time.Kitchen))
		}
	}
	within(t, rise.Time, 7, 27)
	within(t, set.Time, 18, 18)
}

func TestDaylightOtherZone(t *testing.T) {
	// Asking with a UTC time still answers for Providence's calendar day.
	day := time.Date(2022, time.April, 29, 2, 0, 0, 0, time.UTC) // 28 April in Providence
	rise, _, ok := Daylight(Providence, day)
	if !ok {
		t.Fatalf("no daylight computed for %s", day)
	}
	if got := rise.Time.In(Providence.Location).Day(); got != 28 {
		t.Errorf("got sunrise on the %dth, wanted the 28th", got)
	}
}

func TestDaylightMidnightSun(t *testing.T) {
	// Longyearbyen has no sunset in late June.
	longyearbyen := Place{78.2232, 15.6267, time.UTC}
	day := time.Date(2021, time.June, 21, 12, 0, 0, 0, time.UTC)
	if rise, set, ok := Daylight(longyearbyen, day); ok {
		t.Errorf("got %s and %s, wanted no daylight window", rise.String(), set.String())
	}
}
