package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the booking lifecycle.
type Metrics struct {
	BookingsCreated   prometheus.Counter
	BookingsConfirmed prometheus.Counter
	BookingsCancelled prometheus.Counter
	CheckIns          prometheus.Counter
	ErrorsCount       *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, namespace)
}

// NewMetricsWith registers the instruments on the given registerer.
func NewMetricsWith(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		BookingsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_confirmed_total",
			Help:      "The total number of bookings confirmed",
		}),
		BookingsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "The total number of bookings cancelled",
		}),
		CheckIns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "The total number of completed check-ins",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
