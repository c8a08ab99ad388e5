package tideforecast

import (
	"fmt"

	"github.com/spencer-p/lowtides/pkg/sunset"
)

// Location is a place with a tide page.
type Location struct {
	// ID is a short handle for the location, e.g. "half-moon-bay".
	ID   string `json:"id"`
	Name string `json:"name"`
	// URL of the location's latest tides page.
	URL string `json:"url"`
	// Place is used to cross-check the page's sunrise and sunset.
	Place sunset.Place `json:"-"`
}

var (
	HalfMoonBay = Location{
		ID:    "half-moon-bay",
		Name:  "Half Moon Bay, California",
		URL:   PageURL("Half-Moon-Bay-California"),
		Place: sunset.HalfMoonBay,
	}
	HuntingtonBeach = Location{
		ID:    "huntington-beach",
		Name:  "Huntington Beach, California",
		URL:   PageURL("Huntington-Beach"),
		Place: sunset.HuntingtonBeach,
	}
	Providence = Location{
		ID:    "providence",
		Name:  "Providence, Rhode Island",
		URL:   PageURL("Providence-Rhode-Island"),
		Place: sunset.Providence,
	}
	WrightsvilleBeach = Location{
		ID:    "wrightsville-beach",
		Name:  "Wrightsville Beach, North Carolina",
		URL:   PageURL("Wrightsville-Beach-North-Carolina"),
		Place: sunset.WrightsvilleBeach,
	}

	// Locations is the default set of locations, in report order.
	Locations = []Location{HalfMoonBay, HuntingtonBeach, Providence, WrightsvilleBeach}
)

// Select picks the locations named by ids, in the order given. No ids selects
// all of locs.
func Select(locs []Location, ids []string) ([]Location, error) {
	if len(ids) == 0 {
		return locs, nil
	}
	result := make([]Location, 0, len(ids))
	for _, id := range ids {
		loc, ok := Lookup(locs, id)
		if !ok {
			return nil, fmt.Errorf("unknown location %q", id)
		}
		result = append(result, loc)
	}
	return result, nil
}

// Lookup finds the location with the given ID.
func Lookup(locs []Location, id string) (Location, bool) {
	for _, loc := range locs {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}
