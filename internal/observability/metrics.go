package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotelbook_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingsRefused = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotelbook_bookings_refused_total",
			Help: "Total number of bookings refused for unavailable dates",
		},
	)

	RefundsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotelbook_refunds_issued_total",
			Help: "Total number of cancellation refunds issued",
		},
	)

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotelbook_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "code"},
	)
)
