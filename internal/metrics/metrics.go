// Package metrics defines the Prometheus metrics exported by the server.
// All metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "minisudoku"

// ResultSuccess is the result label of a successful attempt
const ResultSuccess = "success"

// Outcome label values for finished games
const (
	OutcomeSolved    = "solved"
	OutcomeAbandoned = "abandoned"
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", or the failure reason ("unknown_user", "wrong_password", "error")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "username_taken", "invalid_input" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// GamesFinishedTotal counts games recorded to history.
// Label:
//   - outcome: "solved" or "abandoned"
var GamesFinishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_finished_total",
		Help:      "Total number of games recorded, by outcome.",
	},
	[]string{"outcome"},
)

// BestTimeRecordsTotal counts personal best times set
var BestTimeRecordsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "best_time_records_total",
		Help:      "Total number of new personal best times.",
	},
)

// SolveDuration observes the elapsed play time of solved games
var SolveDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "solve_duration_seconds",
		Help:      "Elapsed play time of solved puzzles.",
		Buckets:   []float64{5, 10, 20, 30, 60, 120, 300, 600},
	},
)

// HTTPRequestsTotal counts API requests.
// Labels:
//   - method: HTTP method
//   - route: the matched route template, or "unmatched"
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures API request latency
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ActiveGameElapsed reports the elapsed time of the game in play, updated on every tick
var ActiveGameElapsed = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_game_elapsed_seconds",
		Help:      "Elapsed play time of the active game, zero when nobody is logged in.",
	},
)

// HTTPPanicsTotal counts handler panics caught by the recovery middleware.
// Label:
//   - route: the matched route template, or "unmatched"
var HTTPPanicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of recovered handler panics.",
	},
	[]string{"route"},
)
