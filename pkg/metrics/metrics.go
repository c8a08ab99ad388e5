package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	subsystem = "lowtides"

	// unmatchedPath labels requests that reached no registered route.
	unmatchedPath = "unmatched"
)

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: subsystem,
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	extractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "extractions_total",
			Subsystem: subsystem,
			Help:      "Tide page extractions by location and outcome.",
		},
		[]string{"location", "outcome"},
	)

	lowTides = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:      "daylight_low_tides",
			Subsystem: subsystem,
			Help:      "Daylight low tides found on the last successful extraction.",
		},
		[]string{"location"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		extractions,
		lowTides,
	)
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveExtraction counts one extraction attempt for a location. n is the
// number of low tides found and is ignored on failure.
func ObserveExtraction(location string, n int, err error) {
	if err != nil {
		extractions.WithLabelValues(location, "error").Inc()
		return
	}
	extractions.WithLabelValues(location, "ok").Inc()
	lowTides.WithLabelValues(location).Set(float64(n))
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := routePath(r)
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, strconv.Itoa(rec.code), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}

// routePath names the route template that matched r, e.g.
// "/api/v1/lowtides/{id:[a-z0-9-]+}", so that the path label stays bounded by
// the number of routes rather than the number of URLs clients make up.
func routePath(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedPath
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedPath
	}
	return tmpl
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}
