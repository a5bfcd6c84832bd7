package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "courtbooker",
			Name:      "reservations_created_total",
			Help:      "Reservations successfully created.",
		},
	)

	reservationsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "courtbooker",
			Name:      "reservations_cancelled_total",
			Help:      "Reservations cancelled.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "courtbooker",
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected by the conflict predicate.",
		},
	)

	emails = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courtbooker",
			Name:      "emails_total",
			Help:      "Notification emails by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationsCreated, reservationsCancelled, bookingConflicts, emails)
	})
}

func IncReservationCreated() {
	reservationsCreated.Inc()
}

func IncReservationCancelled() {
	reservationsCancelled.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

// IncEmail increments the email counter for a result label ("success" or
// "failure").
func IncEmail(result string) {
	emails.WithLabelValues(result).Inc()
}
