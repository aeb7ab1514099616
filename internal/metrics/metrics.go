// Package metrics exposes Prometheus collectors for reservation activity and
// the ops HTTP endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macreserve_login_attempts_total",
		Help: "Login attempts by result",
	}, []string{"result"})

	reservationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macreserve_reservations_created_total",
		Help: "Reservations created, by shift",
	}, []string{"shift"})

	reservationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "macreserve_reservation_conflicts_total",
		Help: "Reservation attempts rejected because the slot was taken",
	})

	reservationsReturned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macreserve_reservations_returned_total",
		Help: "Return attempts by result",
	}, []string{"result"})

	activeReservations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "macreserve_active_reservations",
		Help: "Reservations currently active",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "macreserve_http_requests_total",
		Help: "Total number of ops HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "macreserve_http_request_duration_seconds",
		Help:    "Duration of ops HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// ObserveLogin counts a login attempt; result is "success" or "denied".
func ObserveLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

func ObserveReservationCreated(shift string) {
	reservationsCreated.WithLabelValues(shift).Inc()
}

func ObserveReservationConflict() {
	reservationConflicts.Inc()
}

// ObserveReturn counts a return attempt; result is "success" or "not_found".
func ObserveReturn(result string) {
	reservationsReturned.WithLabelValues(result).Inc()
}

// IncActive and DecActive track reservations entering and leaving the
// active state.
func IncActive() {
	activeReservations.Inc()
}

func DecActive() {
	activeReservations.Dec()
}

// ObserveHTTPRequest records an ops HTTP request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
