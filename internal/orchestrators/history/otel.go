package history

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/KirkDiggler/vtm-api/internal/orchestrators/history"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
