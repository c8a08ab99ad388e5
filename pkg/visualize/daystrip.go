package visualize

import (
	"fmt"
	"html"
	"io"

	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/report"
	"github.com/spencer-p/lowtides/pkg/timetricks"
)

const (
	width  = 1200
	height = 120

	minutesPerDay = 24 * 60
	markerWidth   = 4
)

// DayStrip draws one day as an SVG strip: night shaded on both sides of the
// daylight window, and a marker for every daylight low tide.
type DayStrip struct {
	name   string
	result *forecast.Result
}

func NewDayStrip(name string, result *forecast.Result) *DayStrip {
	return &DayStrip{
		name:   name,
		result: result,
	}
}

func (img *DayStrip) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil && err == nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height))

	// Daylight first, night drawn over the ends.
	win := img.result.Window
	risex := clockToX(win.Sunrise)
	setx := clockToX(win.Sunset)
	io(fmt.Fprintf(w, `<rect class="daytime" fill="lightyellow" x="%d" y="%d" width="%d" height="%d"/>`,
		risex, 0,
		setx-risex, height))
	io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
		0, 0,
		risex, height))
	io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
		setx, 0,
		width-setx, height))

	for _, lt := range img.result.LowTides {
		x := clockToX(lt.Clock)
		io(fmt.Fprintf(w, `<rect class="low_tide" fill="%s" x="%d" y="%d" width="%d" height="%d"/>`,
			heightColor(lt.HeightFeet),
			x-markerWidth/2, height/4,
			markerWidth, height/2))
		io(fmt.Fprintf(w, `<text class="low_tide_label" x="%d" y="%d">%s</text>`,
			x+markerWidth, height/4,
			html.EscapeString(report.LowTideString(lt))))
	}

	io(fmt.Fprintf(w, `<text class="date" x="%d" y="%d">%s</text>`,
		markerWidth, height-markerWidth,
		html.EscapeString(img.name+", "+img.result.Date)))

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

// heightColor uses the same bands as the tide level markers: lower is
// warmer.
func heightColor(feet float64) string {
	switch {
	case feet < 0:
		return "#e9c46a"
	case feet < 1:
		return "#f4a261"
	case feet < 2:
		return "#e76f51"
	default:
		return "skyblue"
	}
}

func clockToX(c timetricks.Clock) int {
	return int(c) * width / minutesPerDay
}
