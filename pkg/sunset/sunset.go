package sunset

import (
	"time"

	"github.com/spencer-p/lowtides/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// maxDaySearch bounds the walk toward the requested day.
const maxDaySearch = 3

// Daylight returns the sunrise and sunset on day's calendar date at place. ok
// is false when they could not both be placed on that date, as happens under
// the midnight sun; rise and set then hold the nearest events found.
func Daylight(place Place, day time.Time) (rise, set SunEvent, ok bool) {
	day = day.In(place.Location)

	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, day)

	// The sunrise package is not very clean with its dates; step until the
	// sunrise lands on the requested day.
	for i := 0; i < maxDaySearch && !timetricks.SameDay(day, s.Sunrise()); i++ {
		if s.Sunrise().Before(day) {
			s.AddDays(1)
		} else {
			s.AddDays(-1)
		}
	}

	rise = SunEvent{s.Sunrise(), Sunrise}
	set = SunEvent{s.Sunset(), Sunset}
	ok = timetricks.SameDay(day, rise.Time) && timetricks.SameDay(day, set.Time)
	return rise, set, ok
}
