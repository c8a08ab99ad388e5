// Package report gathers daylight low tides for several locations and lays
// them out for people: locations sharing a date are listed under one heading.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/sunset"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

// Report is the outcome of reading one location's page. Exactly one of Result
// and Err is set.
type Report struct {
	Location tideforecast.Location
	Result   *forecast.Result
	Err      error
}

// DayGroup is a run of reports that share a date.
type DayGroup struct {
	Date    string
	Reports []Report
}

// FetchFunc reads the daylight low tides for one location.
type FetchFunc func(context.Context, tideforecast.Location) (*forecast.Result, error)

// Collect fetches every location concurrently. Reports come back in the order
// of locs; a failure for one location does not affect the others.
func Collect(ctx context.Context, locs []tideforecast.Location, fetch FetchFunc) []Report {
	reports := make([]Report, len(locs))

	var wg sync.WaitGroup
	for i := range locs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := fetch(ctx, locs[i])
			reports[i] = Report{Location: locs[i], Result: res, Err: err}
		}(i)
	}
	wg.Wait()

	return reports
}

// GroupByDate groups successful reports by date, in order of first
// appearance. Failed reports are returned separately.
func GroupByDate(reports []Report) (groups []DayGroup, failed []Report) {
	index := make(map[string]int)
	for _, r := range reports {
		if r.Err != nil {
			failed = append(failed, r)
			continue
		}
		i, ok := index[r.Result.Date]
		if !ok {
			i = len(groups)
			index[r.Result.Date] = i
			groups = append(groups, DayGroup{Date: r.Result.Date})
		}
		groups[i].Reports = append(groups[i].Reports, r)
	}
	return groups, failed
}

// Write prints reports as text, one heading per date.
func Write(w io.Writer, reports []Report) error {
	groups, failed := GroupByDate(reports)

	var sb strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&sb, "Data for %s:\n", g.Date)
		for _, r := range g.Reports {
			fmt.Fprintf(&sb, "  %s\n", r.Location.Name)
			for _, lt := range r.Result.LowTides {
				fmt.Fprintf(&sb, "    %s\n", LowTideString(lt))
			}
		}
	}
	if len(failed) > 0 {
		fmt.Fprintf(&sb, "Unavailable:\n")
		for _, r := range failed {
			fmt.Fprintf(&sb, "  %s: %v\n", r.Location.Name, r.Err)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// LowTideString describes one low tide, e.g. "Low tide of 1.3 ft at 4:10 PM".
func LowTideString(r forecast.TideRecord) string {
	return fmt.Sprintf("Low tide of %s ft at %s", feet(r.HeightFeet), r.Time)
}

// feet prints a height with at least one decimal place.
func feet(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (r Report) MarshalJSON() ([]byte, error) {
	out := struct {
		ID       string                   `json:"id"`
		Name     string                   `json:"name"`
		Date     string                   `json:"date,omitempty"`
		LowTides []forecast.TideRecord    `json:"low_tides,omitempty"`
		Window   *forecast.DaylightWindow `json:"window,omitempty"`
		Error    string                   `json:"error,omitempty"`
	}{
		ID:   r.Location.ID,
		Name: r.Location.Name,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	} else if r.Result != nil {
		out.Date = r.Result.Date
		out.LowTides = r.Result.LowTides
		out.Window = &r.Result.Window
	}
	return json.Marshal(out)
}

// Drift compares the page's daylight window with the computed sunrise and
// sunset for place on the calendar day of now. Positive values mean the page
// is later than the computation. ok is false when no sunrise and sunset could
// be computed for that day, in which case there is nothing to compare.
func Drift(res *forecast.Result, place sunset.Place, now time.Time) (rise, set time.Duration, ok bool) {
	day := now.In(place.Location)
	up, down, ok := sunset.Daylight(place, day)
	if !ok {
		return 0, 0, false
	}
	rise = res.Window.Sunrise.On(day).Sub(up.Time)
	set = res.Window.Sunset.On(day).Sub(down.Time)
	return rise, set, true
}

// Drifted reports whether either edge of the window is off by more than
// thresh.
func Drifted(rise, set, thresh time.Duration) bool {
	return abs(rise) > thresh || abs(set) > thresh
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
