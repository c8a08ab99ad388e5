package forecast

import (
	"regexp"
	"strings"

	"github.com/spencer-p/lowtides/pkg/timetricks"
)

var sunPattern = regexp.MustCompile(`Sunrise is at (.*) and sunset is at (.*)\.`)

// ExtractWindow reads the daylight window from a sentence like
// "Sunrise is at 6:12AM and sunset is at 7:48PM."
func ExtractWindow(summary string) (DaylightWindow, error) {
	m := sunPattern.FindStringSubmatch(summary)
	if m == nil {
		return DaylightWindow{}, &StructureError{What: "no sunrise/sunset sentence in summary"}
	}

	sunrise, err := clockOf(strings.TrimSpace(m[1]))
	if err != nil {
		return DaylightWindow{}, err
	}
	sunset, err := clockOf(strings.TrimSpace(m[2]))
	if err != nil {
		return DaylightWindow{}, err
	}
	return DaylightWindow{Sunrise: sunrise, Sunset: sunset}, nil
}

// clockOf normalizes and parses displayed time text.
func clockOf(text string) (timetricks.Clock, error) {
	norm, err := timetricks.NormalizeHour(text)
	if err != nil {
		return 0, &FormatError{Text: text, Err: err}
	}
	c, err := timetricks.ParseClock(norm)
	if err != nil {
		return 0, &FormatError{Text: text, Err: err}
	}
	return c, nil
}
