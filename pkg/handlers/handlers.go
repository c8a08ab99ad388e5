package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/spencer-p/lowtides/pkg/cache"
	"github.com/spencer-p/lowtides/pkg/data"
	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/metrics"
	"github.com/spencer-p/lowtides/pkg/report"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
	"github.com/spencer-p/lowtides/pkg/visualize"

	"github.com/gorilla/mux"
)

const (
	defaultCacheTTL = time.Hour
	historyLimit    = 50
)

// Config wires the handlers to their collaborators.
type Config struct {
	Locations []tideforecast.Location
	Fetch     report.FetchFunc
	// CacheTTL bounds how long a location's extracted result is served from
	// memory. Failures are never cached.
	CacheTTL time.Duration
	// SunDrift is how far the page's sunrise or sunset may stray from the
	// computed one before a warning is logged. Zero disables the check.
	SunDrift time.Duration
	// Store is optional; without it there is no history endpoint.
	Store *data.Store
}

type server struct {
	Config
	results *cache.Timed[*forecast.Result]
}

func Register(r *mux.Router, cfg Config) {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	s := &server{
		Config:  cfg,
		results: cache.NewTimed[*forecast.Result](cfg.CacheTTL),
	}

	r.Handle("/", s.makeServerSideIndex())
	r.Handle("/api/v1/lowtides", s.makeServeLowTides())
	r.Handle("/api/v1/lowtides/{id:[a-z0-9-]+}.svg", s.makeServeDayStrip())
	r.Handle("/api/v1/lowtides/{id:[a-z0-9-]+}", s.makeServeLocation())
	if cfg.Store != nil {
		r.Handle("/api/v1/history/{id:[a-z0-9-]+}", s.makeServeHistory())
	}
}

// fetch answers from the result cache when it can and reads the location
// otherwise. Every route goes through here, so a location is read upstream at
// most once per CacheTTL no matter which pages ask for it.
func (s *server) fetch(ctx context.Context, loc tideforecast.Location) (*forecast.Result, error) {
	if res, ok := s.results.Get(loc.ID); ok {
		return res, nil
	}
	res, err := s.read(ctx, loc)
	if err != nil {
		return nil, err
	}
	s.results.Set(loc.ID, res)
	return res, nil
}

// read fetches one location upstream and records what happened.
func (s *server) read(ctx context.Context, loc tideforecast.Location) (*forecast.Result, error) {
	res, err := s.Fetch(ctx, loc)
	if err != nil {
		metrics.ObserveExtraction(loc.ID, 0, err)
		log.Printf("Failed to read %s: %v", loc.Name, err)
		return nil, err
	}
	metrics.ObserveExtraction(loc.ID, len(res.LowTides), nil)

	now := time.Now()
	if s.SunDrift > 0 && loc.Place.Location != nil {
		rise, set, ok := report.Drift(res, loc.Place, now)
		if ok && report.Drifted(rise, set, s.SunDrift) {
			log.Printf("%s: page sunrise/sunset off by %s/%s from computed", loc.Name, rise, set)
		}
	}
	if s.Store != nil {
		if err := s.Store.Record(loc.ID, res, now); err != nil {
			log.Printf("Failed to record history: %v", err)
		}
	}
	return res, nil
}

func (s *server) reports(ctx context.Context) []report.Report {
	return report.Collect(ctx, s.Locations, s.fetch)
}

func (s *server) makeServeLowTides() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reports := s.reports(r.Context())

		var err error
		if r.FormValue("o") == "json" {
			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			err = json.NewEncoder(w).Encode(reports)
		} else {
			w.Header().Add("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			err = report.Write(w, reports)
		}
		if err != nil {
			log.Printf("Failed to write report: %+v", err)
		}
	})
}

func (s *server) makeServeLocation() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, ok := s.location(w, r)
		if !ok {
			return
		}
		res, err := s.fetch(r.Context(), loc)
		if err != nil {
			failed(w, err)
			return
		}
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(report.Report{Location: loc, Result: res}); err != nil {
			log.Printf("Failed to encode JSON result: %+v", err)
		}
	})
}

func (s *server) makeServeDayStrip() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, ok := s.location(w, r)
		if !ok {
			return
		}
		res, err := s.fetch(r.Context(), loc)
		if err != nil {
			failed(w, err)
			return
		}
		w.Header().Add("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		if _, err := visualize.NewDayStrip(loc.Name, res).Encode(w); err != nil {
			log.Printf("Failed to encode day strip: %+v", err)
		}
	})
}

func (s *server) makeServeHistory() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, ok := s.location(w, r)
		if !ok {
			return
		}
		limit := historyLimit
		if n, err := strconv.Atoi(r.FormValue("limit")); err == nil && n > 0 && n < historyLimit {
			limit = n
		}
		rows, err := s.Store.History(loc.ID, limit)
		if err != nil {
			failed(w, err)
			return
		}
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			log.Printf("Failed to encode JSON result: %+v", err)
		}
	})
}

// location resolves the {id} route variable, answering 404 itself when it
// names no configured location.
func (s *server) location(w http.ResponseWriter, r *http.Request) (tideforecast.Location, bool) {
	id := mux.Vars(r)["id"]
	loc, ok := tideforecast.Lookup(s.Locations, id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "No such location %q", id)
	}
	return loc, ok
}

func failed(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "Failed to get data: %+v", err)
}
