package forecast

import (
	"fmt"

	"github.com/spencer-p/lowtides/pkg/timetricks"
)

const (
	SummaryMarker = "tide-header-summary"
	TodayMarker   = "tide-header-today"
)

// Document is a parsed page that can be searched by structural marker, such
// as a CSS class.
type Document interface {
	// FindAll returns every node carrying marker, in document order.
	FindAll(marker string) []Node
}

// Node is a read-only view of one region of a Document.
type Node interface {
	// Text is the text of the node and all of its descendants.
	Text() string
	// Heading is the text of the first heading within the node.
	Heading() (string, bool)
	// Rows holds the cell texts of every row of the first table within the
	// node, in document order.
	Rows() ([][]string, bool)
}

// TideRecord is a single tide event read from the table.
type TideRecord struct {
	// Height in feet
	HeightFeet float64 `json:"height_ft"`
	// Time as displayed on the page, e.g. "3:48 PM"
	Time string `json:"time"`
	// Clock is Time made comparable.
	Clock timetricks.Clock `json:"-"`
}

func (r TideRecord) String() string {
	return fmt.Sprintf("{t: %s, v: %g}", r.Time, r.HeightFeet)
}

// DaylightWindow is the span from sunrise to sunset, both inclusive.
type DaylightWindow struct {
	Sunrise timetricks.Clock `json:"sunrise"`
	Sunset  timetricks.Clock `json:"sunset"`
}

// Contains reports whether c falls within the window.
func (w DaylightWindow) Contains(c timetricks.Clock) bool {
	return w.Sunrise <= c && c <= w.Sunset
}

// Result is what Extract reads out of one page.
type Result struct {
	// Date as the page prints it, e.g. "Thursday 28 April 2022".
	Date string
	// LowTides are today's daylight low tides in page order.
	LowTides []TideRecord
	// Window is the daylight window the low tides were filtered by.
	Window DaylightWindow
}
