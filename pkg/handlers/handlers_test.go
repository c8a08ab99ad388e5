package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"

	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

var thursday = &forecast.Result{
	Date: "Thursday 28 April 2022",
	LowTides: []forecast.TideRecord{
		{HeightFeet: 1.3, Time: "4:10 PM", Clock: 16*60 + 10},
	},
	Window: forecast.DaylightWindow{Sunrise: 6*60 + 12, Sunset: 19*60 + 48},
}

// newTestRouter serves Half Moon Bay and fails Providence.
func newTestRouter(calls *int32) *mux.Router {
	fetch := func(ctx context.Context, loc tideforecast.Location) (*forecast.Result, error) {
		atomic.AddInt32(calls, 1)
		if loc.ID == tideforecast.Providence.ID {
			return nil, errors.New("layout changed")
		}
		return thursday, nil
	}
	r := mux.NewRouter()
	Register(r, Config{
		Locations: []tideforecast.Location{tideforecast.HalfMoonBay, tideforecast.Providence},
		Fetch:     fetch,
	})
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestServeLowTidesText(t *testing.T) {
	var calls int32
	r := newTestRouter(&calls)

	w := get(t, r, "/api/v1/lowtides")
	if w.Code != http.StatusOK {
		t.Fatalf("got code %d", w.Code)
	}
	want := "Data for Thursday 28 April 2022:\n" +
		"  Half Moon Bay, California\n" +
		"    Low tide of 1.3 ft at 4:10 PM\n" +
		"Unavailable:\n" +
		"  Providence, Rhode Island: layout changed\n"
	if diff := cmp.Diff(want, w.Body.String()); diff != "" {
		t.Errorf("incorrect body (-want,+got):\n%s", diff)
	}

	// Half Moon Bay is answered from memory; the failure is retried.
	get(t, r, "/api/v1/lowtides")
	if calls != 3 {
		t.Errorf("got %d fetches, wanted 3", calls)
	}
}

func TestServeLowTidesCached(t *testing.T) {
	var calls int32
	fetch := func(ctx context.Context, loc tideforecast.Location) (*forecast.Result, error) {
		atomic.AddInt32(&calls, 1)
		return thursday, nil
	}
	r := mux.NewRouter()
	Register(r, Config{Locations: []tideforecast.Location{tideforecast.HalfMoonBay}, Fetch: fetch})

	first := get(t, r, "/api/v1/lowtides?o=json")
	second := get(t, r, "/api/v1/lowtides?o=json")
	if calls != 1 {
		t.Errorf("got %d fetches, wanted 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached body differs:\n%s\n%s", first.Body, second.Body)
	}
	if ct := second.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got content type %q", ct)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(second.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["date"] != "Thursday 28 April 2022" {
		t.Errorf("got %v", decoded)
	}
}

func TestServeLocation(t *testing.T) {
	var calls int32
	r := newTestRouter(&calls)

	w := get(t, r, "/api/v1/lowtides/half-moon-bay")
	if w.Code != http.StatusOK {
		t.Fatalf("got code %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"low_tides":[{"height_ft":1.3,"time":"4:10 PM"}]`) {
		t.Errorf("got %s", w.Body)
	}

	if w := get(t, r, "/api/v1/lowtides/providence"); w.Code != http.StatusInternalServerError {
		t.Errorf("got code %d for a failing location", w.Code)
	}
	if w := get(t, r, "/api/v1/lowtides/atlantis"); w.Code != http.StatusNotFound {
		t.Errorf("got code %d for an unknown location", w.Code)
	}
}

func TestServeDayStrip(t *testing.T) {
	var calls int32
	r := newTestRouter(&calls)

	w := get(t, r, "/api/v1/lowtides/half-moon-bay.svg")
	if w.Code != http.StatusOK {
		t.Fatalf("got code %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("got content type %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") {
		t.Errorf("not an svg: %s", w.Body)
	}
}

func TestServerSideIndex(t *testing.T) {
	var calls int32
	r := newTestRouter(&calls)

	w := get(t, r, "/")
	body := w.Body.String()
	for _, want := range []string{
		"<h2>Thursday 28 April 2022</h2>",
		"<h3>Half Moon Bay, California</h3>",
		"<li>Low tide of 1.3 ft at 4:10 PM</li>",
		`<svg viewBox=`,
		"<li>Providence, Rhode Island</li>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %s", want)
		}
	}
}

func TestNoHistoryWithoutStore(t *testing.T) {
	var calls int32
	r := newTestRouter(&calls)
	if w := get(t, r, "/api/v1/history/half-moon-bay"); w.Code != http.StatusNotFound {
		t.Errorf("got code %d", w.Code)
	}
}

func TestIndexReadsEachLocationOnce(t *testing.T) {
	var calls int32
	fetch := func(ctx context.Context, loc tideforecast.Location) (*forecast.Result, error) {
		atomic.AddInt32(&calls, 1)
		return thursday, nil
	}
	r := mux.NewRouter()
	Register(r, Config{Locations: tideforecast.Locations, Fetch: fetch})

	for i := 0; i < 3; i++ {
		if w := get(t, r, "/"); w.Code != http.StatusOK {
			t.Fatalf("got code %d", w.Code)
		}
	}
	if want := int32(len(tideforecast.Locations)); calls != want {
		t.Errorf("got %d fetches, wanted %d", calls, want)
	}
}

func TestRoutesShareResults(t *testing.T) {
	var calls int32
	r := newTestRouter(&calls)

	for _, target := range []string{
		"/api/v1/lowtides/half-moon-bay",
		"/api/v1/lowtides/half-moon-bay",
		"/api/v1/lowtides/half-moon-bay.svg",
		"/api/v1/lowtides/half-moon-bay.svg",
		"/",
		"/api/v1/lowtides",
	} {
		get(t, r, target)
	}
	// One read for Half Moon Bay, and Providence retried by the two pages
	// that list every location.
	if calls != 3 {
		t.Errorf("got %d fetches, wanted 3", calls)
	}
}
