package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth counters are labelled with the terminal outcome of each operation so
// dashboards can separate credential failures from storage failures.
var (
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hanlingo_registrations_total",
		Help: "Registration attempts by outcome.",
	}, []string{"outcome"})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hanlingo_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	RefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hanlingo_token_refreshes_total",
		Help: "Refresh token rotations by outcome.",
	}, []string{"outcome"})

	QuizSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hanlingo_quiz_submissions_total",
		Help: "Graded quiz submissions.",
	})
)

const (
	OutcomeOK       = "ok"
	OutcomeDenied   = "denied"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)
