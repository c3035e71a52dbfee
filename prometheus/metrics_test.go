package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(ValidationErrorCounter.WithLabelValues("create_order", "deviceModel"))
	RecordValidationError("create_order", "deviceModel")
	assert.Equal(t, before+1, testutil.ToFloat64(ValidationErrorCounter.WithLabelValues("create_order", "deviceModel")))

	before = testutil.ToFloat64(OrdersCreatedCounter.WithLabelValues("Troca de bateria"))
	RecordOrderCreated("Troca de bateria")
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersCreatedCounter.WithLabelValues("Troca de bateria")))

	SetActiveSessions(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(ActiveSessionsGauge))
}
