package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "parkbike", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "parkbike", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "parkbike", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "parkbike", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	StoreEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "parkbike", Name: "store_events_total", Help: "Key-value store hits/misses/sets/errors."},
		[]string{"store", "event"}, // event: hit|miss|set|error
	)
	RefreshOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "parkbike", Name: "refresh_total", Help: "Data refreshes per slice and outcome."},
		[]string{"slice", "outcome"}, // slice: location|favorites|spots
	)
	FavoriteToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "parkbike", Name: "favorite_toggles_total", Help: "Favorite toggles."},
		[]string{"action", "persisted"}, // action: add|remove
	)
)

// Serve exposes reg on a dedicated listener at addr. An empty addr disables
// it and returns nil.
func Serve(addr string, reg *prometheus.Registry) *http.Server {
	if addr == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsMux(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	return mux
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency,
		StoreEvents, RefreshOutcomes, FavoriteToggles)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveExternal records an outbound call; status 0 means no response.
func ObserveExternal(service string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service).Observe(dur.Seconds())
}

func ObserveStore(store, event string) { // event: hit|miss|set|error
	StoreEvents.WithLabelValues(store, event).Inc()
}

func ObserveRefresh(slice string, err error) {
	RefreshOutcomes.WithLabelValues(slice, LabelErr(err)).Inc()
}

func ObserveFavoriteToggle(added bool, persistErr error) {
	action := "remove"
	if added {
		action = "add"
	}
	FavoriteToggles.WithLabelValues(action, strconv.FormatBool(persistErr == nil)).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
