package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SweepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ats_sweep_duration_seconds",
			Help:    "Duration of each automated sweep in seconds.",
			Buckets: []float64{1, 5, 15, 60, 300, 900},
		},
		[]string{"sweep"},
	)
	MatchQueryDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "ats_match_query_duration_seconds",
			Help:       "Duration of a single match ranking query.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"direction"},
	)
	MatchesComputedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ats_matches_computed_total",
			Help: "Total number of match results returned above the cutoff.",
		},
	)
	AlertsCreatedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_alerts_created_total",
			Help: "Total number of alerts created by sweeps.",
		},
		[]string{"type"},
	)
	NotificationsSentCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ats_notifications_sent_total",
			Help: "Total number of outbound notifications sent.",
		},
	)
)

func StartMetricsServer(address string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SweepDuration)
	prometheus.MustRegister(MatchQueryDuration)
	prometheus.MustRegister(MatchesComputedCounter)
	prometheus.MustRegister(AlertsCreatedCounter)
	prometheus.MustRegister(NotificationsSentCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, nil))
	}()
}
