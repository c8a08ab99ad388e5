package forecast

import (
	"errors"
	"testing"

	"github.com/spencer-p/lowtides/pkg/timetricks"
)

func TestExtractWindow(t *testing.T) {
	table := []struct {
		summary         string
		sunrise, sunset timetricks.Clock
	}{{
		summary: "Sunrise is at 6:12AM and sunset is at 7:48PM.",
		sunrise: 6*60 + 12,
		sunset:  19*60 + 48,
	}, {
		summary: "The tide is rising. Sunrise is at  6:12 AM  and sunset is at 7:48 PM.",
		sunrise: 6*60 + 12,
		sunset:  19*60 + 48,
	}, {
		summary: "Sunrise is at 00:05AM and sunset is at 00:30PM.",
		sunrise: 5,
		sunset:  12*60 + 30,
	}}

	for _, tc := range table {
		t.Run(tc.summary, func(t *testing.T) {
			got, err := ExtractWindow(tc.summary)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Sunrise != tc.sunrise || got.Sunset != tc.sunset {
				t.Errorf("got %s to %s, wanted %s to %s", got.Sunrise, got.Sunset, tc.sunrise, tc.sunset)
			}
		})
	}
}

func TestExtractWindowNoSentence(t *testing.T) {
	_, err := ExtractWindow("High tide today is at 9:55 AM.")
	var se *StructureError
	if !errors.As(err, &se) {
		t.Errorf("got %v, wanted StructureError", err)
	}
}
