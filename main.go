package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spencer-p/lowtides/pkg/data"
	"github.com/spencer-p/lowtides/pkg/handlers"
	"github.com/spencer-p/lowtides/pkg/metrics"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

type Config struct {
	Port         string        `default:"8080"`
	Prefix       string        `default:"/"`
	CacheTTL     time.Duration `default:"1h" split_words:"true"`
	FetchTimeout time.Duration `default:"20s" split_words:"true"`
	SunDrift     time.Duration `default:"30m" split_words:"true"`
	UserAgent    string        `default:"lowtides/1.0" split_words:"true"`
	// Location IDs to report on; all known locations when empty.
	Locations []string
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	locs, err := tideforecast.Select(tideforecast.Locations, env.Locations)
	if err != nil {
		log.Fatal(err.Error())
	}

	var store *data.Store
	if dsn, ok := data.PostgresDSNFromEnv(); ok {
		store, err = data.OpenPostgres(dsn)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Println("Recording low tide history to postgres")
	}

	client := tideforecast.NewClient(env.FetchTimeout, env.UserAgent)

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", promhttp.Handler())
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, handlers.Config{
		Locations: locs,
		Fetch:     client.LowTides,
		CacheTTL:  env.CacheTTL,
		SunDrift:  env.SunDrift,
		Store:     store,
	})

	srv := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: env.FetchTimeout + 15*time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Listening and serving on %s/%s", srv.Addr, env.Prefix[1:])
	log.Fatal(srv.ListenAndServe())
}
