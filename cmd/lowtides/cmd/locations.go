package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/spencer-p/lowtides/pkg/sunset"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

// locationConfig is one entry of the "locations" list in the config file:
//
//	locations:
//	  - id: santa-cruz
//	    name: Santa Cruz, California
//	    url: https://www.tide-forecast.com/locations/Santa-Cruz-California/tides/latest
//	    lat: 36.9741
//	    long: -122.0308
//	    timezone: America/Los_Angeles
type locationConfig struct {
	ID       string  `mapstructure:"id"`
	Name     string  `mapstructure:"name"`
	URL      string  `mapstructure:"url"`
	Lat      float64 `mapstructure:"lat"`
	Long     float64 `mapstructure:"long"`
	Timezone string  `mapstructure:"timezone"`
}

// configuredLocations returns the locations from the config file, or the
// built-in ones when it has none.
func configuredLocations() ([]tideforecast.Location, error) {
	var entries []locationConfig
	if err := viper.UnmarshalKey("locations", &entries); err != nil {
		return nil, fmt.Errorf("read locations: %w", err)
	}
	if len(entries) == 0 {
		return tideforecast.Locations, nil
	}
	return toLocations(entries)
}

func toLocations(entries []locationConfig) ([]tideforecast.Location, error) {
	locs := make([]tideforecast.Location, 0, len(entries))
	seen := make(map[string]bool)
	for i, e := range entries {
		if e.ID == "" || e.URL == "" {
			return nil, fmt.Errorf("location %d: id and url are required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("location %q listed twice", e.ID)
		}
		seen[e.ID] = true

		loc := tideforecast.Location{ID: e.ID, Name: e.Name, URL: e.URL}
		if loc.Name == "" {
			loc.Name = e.ID
		}
		// Without a time zone there is nothing to cross-check against.
		if e.Timezone != "" {
			place, err := sunset.LoadPlace(e.Lat, e.Long, e.Timezone)
			if err != nil {
				return nil, fmt.Errorf("location %q: %w", e.ID, err)
			}
			loc.Place = place
		}
		locs = append(locs, loc)
	}
	return locs, nil
}
