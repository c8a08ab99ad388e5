package visualize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/timetricks"
)

func TestDayStrip(t *testing.T) {
	res := &forecast.Result{
		Date: "Thursday 28 April 2022",
		LowTides: []forecast.TideRecord{
			{HeightFeet: 1.3, Time: "4:10 PM", Clock: 16*60 + 10},
		},
		Window: forecast.DaylightWindow{Sunrise: 6 * 60, Sunset: 18 * 60},
	}

	var b bytes.Buffer
	n, err := NewDayStrip("Half Moon Bay, California", res).Encode(&b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != b.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, b.Len())
	}

	svg := b.String()
	for _, want := range []string{
		`<rect class="daytime" fill="lightyellow" x="300" y="0" width="600" height="120"/>`,
		`<rect class="night" fill="blue" fill-opacity="25%" x="900" y="0" width="300" height="120"/>`,
		`class="low_tide" fill="#e76f51" x="806"`,
		`>Low tide of 1.3 ft at 4:10 PM</text>`,
		`>Half Moon Bay, California, Thursday 28 April 2022</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %s\n%s", want, svg)
		}
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("svg not closed")
	}
}

func TestClockToX(t *testing.T) {
	for c, want := range map[int]int{0: 0, 12 * 60: width / 2, 24*60 - 1: width - 1} {
		if got := clockToX(timetricks.Clock(c)); got != want {
			t.Errorf("clockToX(%d) = %d, wanted %d", c, got, want)
		}
	}
}
