package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsGenerated counts sleep reports assembled by the insights service.
	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "neuronap_reports_generated_total",
		Help: "Number of sleep reports generated.",
	})

	// qualityPredictions counts quality predictions by source: the trained
	// model or the untrained fallback.
	qualityPredictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neuronap_quality_predictions_total",
		Help: "Number of sleep quality predictions served, by source.",
	}, []string{"source"})
)

// ObserveQualityPrediction records one prediction and whether the trained
// model or the fallback produced it.
func ObserveQualityPrediction(trained bool) {
	source := "fallback"
	if trained {
		source = "model"
	}
	qualityPredictions.WithLabelValues(source).Inc()
}
