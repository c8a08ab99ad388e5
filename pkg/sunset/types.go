package sunset

import (
	"fmt"
	"time"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

var (
	HalfMoonBay = Place{
		37.4636, -122.4286,
		locationOrPanic("America/Los_Angeles"),
	}
	HuntingtonBeach = Place{
		33.6595, -117.9988,
		locationOrPanic("America/Los_Angeles"),
	}
	Providence = Place{
		41.8240, -71.4128,
		locationOrPanic("America/New_York"),
	}
	WrightsvilleBeach = Place{
		34.2085, -77.7964,
		locationOrPanic("America/New_York"),
	}
)

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time
	Event Event
}

func (s *SunEvent) String() string {
	return fmt.Sprintf("%s %s",
		s.Time.Format(time.RFC822),
		s.Event.String())
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset        = false
)

func (e Event) String() string {
	if e == Sunrise {
		return "Sunrise"
	}
	return "Sunset"
}

// LoadPlace builds a Place from a time zone name, as found in config files.
func LoadPlace(lat, long float64, zone string) (Place, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Place{}, fmt.Errorf("place time zone: %w", err)
	}
	return Place{Lat: lat, Long: long, Location: loc}, nil
}

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
