package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/beetlebugorg/geofeature/pkg/feature"
	"github.com/beetlebugorg/geofeature/pkg/feature/prommetrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	addr := flag.String("addr", ":2112", "metrics listen address")
	flag.Parse()

	reg := prometheus.NewRegistry()

	opts := feature.DefaultOptions()
	opts.Metrics = prommetrics.New(reg, "geofeature")
	opts.Logger = feature.NewTextLogger(slog.LevelInfo)
	points := feature.NewPointFeature(opts)

	// Simulate a map session: data refreshes every few seconds, picks in between
	go func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for {
			positions := make([]feature.Point, 10000)
			for i := range positions {
				positions[i] = feature.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
			}
			points.SetPositions(positions)

			for i := 0; i < 50; i++ {
				if _, err := points.PointSearch(feature.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}); err != nil {
					log.Printf("pick failed: %v", err)
				}
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Printf("Serving metrics on %s/metrics", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
