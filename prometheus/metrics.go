package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var LoginCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "portal_login_total",
		Help: "Total number of login attempts",
	},
)

var RegisterCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "portal_register_total",
		Help: "Total number of registration attempts",
	},
)

var LogoutCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "portal_logout_total",
		Help: "Total number of logouts",
	},
)

var OrdersCreatedCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_service_orders_created_total",
		Help: "Total number of service orders created, by repair type",
	},
	[]string{"repair_type"},
)

var ValidationErrorCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_validation_errors_total",
		Help: "Total number of rejected drafts, by operation and field",
	},
	[]string{"operation", "field"},
)

var ActiveSessionsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "portal_active_sessions",
		Help: "Number of open portal sessions",
	},
)

var registerOnce sync.Once

// InitMetrics registers the portal collectors with the default registry.
// Calling it more than once is harmless.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LoginCounter)
		prometheus.MustRegister(RegisterCounter)
		prometheus.MustRegister(LogoutCounter)
		prometheus.MustRegister(OrdersCreatedCounter)
		prometheus.MustRegister(ValidationErrorCounter)
		prometheus.MustRegister(ActiveSessionsGauge)
	})
}

// RecordValidationError counts a rejected draft
func RecordValidationError(operation, field string) {
	ValidationErrorCounter.WithLabelValues(operation, field).Inc()
}

// RecordOrderCreated counts a created service order
func RecordOrderCreated(repairType string) {
	OrdersCreatedCounter.WithLabelValues(repairType).Inc()
}

// SetActiveSessions publishes the number of open sessions
func SetActiveSessions(n int) {
	ActiveSessionsGauge.Set(float64(n))
}
