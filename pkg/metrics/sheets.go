package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SheetLoadMetrics records the outcome of spreadsheet CSV loads per source
// tab (menu, config, features).
type SheetLoadMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	fallback *prometheus.CounterVec
}

// NewSheetLoadMetrics registers the sheet load metrics on the provided registerer.
func NewSheetLoadMetrics(reg prometheus.Registerer) *SheetLoadMetrics {
	if reg == nil {
		return &SheetLoadMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sheet_fetch_duration_seconds",
		Help:    "Duration of spreadsheet CSV fetches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sheet_load_success",
		Help: "Successful loads served from the remote spreadsheet.",
	}, []string{"source"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sheet_load_fallback",
		Help: "Loads served from the bundled fallback CSV.",
	}, []string{"source"})
	reg.MustRegister(duration, success, fallback)
	return &SheetLoadMetrics{
		duration: duration,
		success:  success,
		fallback: fallback,
	}
}

// ObserveFetchDuration records how long the remote fetch took for a source.
func (s *SheetLoadMetrics) ObserveFetchDuration(source string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(source)).Observe(duration.Seconds())
}

// IncSuccess increments the remote-load counter for the source.
func (s *SheetLoadMetrics) IncSuccess(source string) {
	if s == nil || s.success == nil {
		return
	}
	s.success.WithLabelValues(normalizeLabel(source)).Inc()
}

// IncFallback increments the fallback counter for the source.
func (s *SheetLoadMetrics) IncFallback(source string) {
	if s == nil || s.fallback == nil {
		return
	}
	s.fallback.WithLabelValues(normalizeLabel(source)).Inc()
}

func normalizeLabel(source string) string {
	if source == "" {
		return "unknown"
	}
	return source
}
