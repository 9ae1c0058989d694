package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge
	RateLimited     prometheus.Counter

	ProfileUpdatesTotal  prometheus.Counter
	MedicalRecordsShared prometheus.Gauge
	VitalsUpdatesTotal   *prometheus.CounterVec
	PCPUpdatesTotal      prometheus.Counter
	AppointmentsCreated  prometheus.Counter
	StoreResetsTotal     prometheus.Counter
}

// NewCollector registers every metric on reg. Tests pass a fresh
// prometheus.NewRegistry so collectors never collide.
func NewCollector(serviceName string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: f.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),

		ProfileUpdatesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "profile_updates_total",
			Help:      "Total number of user profile updates.",
		}),

		MedicalRecordsShared: f.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "medical_records_shared",
			Help:      "Medical records currently shared with emergency responders.",
		}),

		VitalsUpdatesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "vitals_updates_total",
			Help:      "Vital sign writes by metric.",
		}, []string{"metric"}),

		PCPUpdatesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "pcp_updates_total",
			Help:      "Total number of primary care physician updates.",
		}),

		AppointmentsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "appointments_created_total",
			Help:      "Total appointments booked.",
		}),

		StoreResetsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "store",
			Name:      "resets_total",
			Help:      "Times the record store was reset to its seed.",
		}),
	}
}

func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
