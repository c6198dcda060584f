package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "staysync"

var (
	once sync.Once

	formTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_form_transitions_total",
			Help:      "Count of booking form phase transitions.",
		},
		[]string{"from", "to"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_validation_failures_total",
			Help:      "Count of rejected booking drafts by failing field.",
		},
		[]string{"field"},
	)

	bookingsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_submitted_total",
			Help:      "Count of booking submissions by outcome.",
		},
		[]string{"result"},
	)

	formSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "booking_form_sessions",
			Help:      "Number of open booking form sessions.",
		},
	)

	preferenceToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preference_dark_mode_writes_total",
			Help:      "Count of dark mode preference writes by resulting value.",
		},
		[]string{"dark_mode"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(formTransitions, validationFailures, bookingsSubmitted, formSessions, preferenceToggles)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()

	return promhttp.Handler()
}

func IncFormTransition(from, to string) {
	formTransitions.WithLabelValues(from, to).Inc()
}

func IncValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

func IncBookingSubmitted(result string) {
	bookingsSubmitted.WithLabelValues(result).Inc()
}

func SetFormSessions(count int) {
	formSessions.Set(float64(count))
}

func IncDarkModeWrite(darkMode bool) {
	label := "false"
	if darkMode {
		label = "true"
	}

	preferenceToggles.WithLabelValues(label).Inc()
}
