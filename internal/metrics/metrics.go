// Package metrics exposes Prometheus counters for the intake endpoint.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for IntakeTotal.
const (
	OutcomeCreated      = "created"
	OutcomeMissing      = "missing_fields"
	OutcomeInvalid      = "invalid"
	OutcomeStorageError = "storage_error"
)

// Registry keeps the service's collectors apart from the global default registry.
type Registry struct {
	reg          *prometheus.Registry
	IntakeTotal  *prometheus.CounterVec
	RequestTotal *prometheus.CounterVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		IntakeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techpark",
			Name:      "booking_intake_total",
			Help:      "Booking submissions by outcome.",
		}, []string{"outcome"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techpark",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(r.IntakeTotal, r.RequestTotal, collectors.NewGoCollector())
	return r
}

func (r *Registry) ObserveIntake(outcome string) {
	r.IntakeTotal.WithLabelValues(outcome).Inc()
}

func (r *Registry) ObserveRequest(method, route string, status int) {
	r.RequestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
