package audio

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/solar-winds/audio"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
