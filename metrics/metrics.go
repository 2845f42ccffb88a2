package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Assessments computed, by display risk
	AssessmentsByDisplayRisk = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "denguetect_assessments_total",
		Help: "Total number of risk assessments by display risk",
	}, []string{"risk"})

	// Assessments computed, by enhanced score tier
	AssessmentsByRiskLevel = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "denguetect_assessments_by_level_total",
		Help: "Total number of risk assessments by enhanced score tier",
	}, []string{"level"})

	// Bite analyses, by label class. Decode failures count as "error".
	BiteAnalyses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "denguetect_bite_analyses_total",
		Help: "Total number of bite analyses by label class",
	}, []string{"label"})

	BiteAnalysisLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "denguetect_bite_analysis_duration_seconds",
		Help:    "Time spent decoding and classifying a bite image",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		AssessmentsByDisplayRisk,
		AssessmentsByRiskLevel,
		BiteAnalyses,
		BiteAnalysisLatency,
	)
}
