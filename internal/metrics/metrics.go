package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the service's prometheus collectors.
type Metrics struct {
    Evaluations    *prometheus.CounterVec
    Scores         prometheus.Histogram
    CacheLookups   *prometheus.CounterVec
    Jobs           *prometheus.CounterVec
    JobDuration    prometheus.Histogram
    IssuesResolved prometheus.Counter
    Events         *prometheus.CounterVec
}

// New registers all collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
    f := promauto.With(reg)
    return &Metrics{
        Evaluations: f.NewCounterVec(prometheus.CounterOpts{
            Namespace: "xeni",
            Name:      "health_evaluations_total",
            Help:      "Case health evaluations by resulting tier.",
        }, []string{"tier"}),
        Scores: f.NewHistogram(prometheus.HistogramOpts{
            Namespace: "xeni",
            Name:      "health_score",
            Help:      "Distribution of computed case health scores.",
            Buckets:   []float64{20, 40, 60, 70, 80, 90, 100},
        }),
        CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
            Namespace: "xeni",
            Name:      "report_cache_lookups_total",
            Help:      "Report cache lookups by layer and result.",
        }, []string{"layer", "result"}),
        Jobs: f.NewCounterVec(prometheus.CounterOpts{
            Namespace: "xeni",
            Name:      "health_jobs_total",
            Help:      "Health recompute jobs by outcome.",
        }, []string{"outcome"}),
        JobDuration: f.NewHistogram(prometheus.HistogramOpts{
            Namespace: "xeni",
            Name:      "health_job_duration_seconds",
            Help:      "Time spent processing a recompute job.",
            Buckets:   prometheus.DefBuckets,
        }),
        IssuesResolved: f.NewCounter(prometheus.CounterOpts{
            Namespace: "xeni",
            Name:      "issues_resolved_total",
            Help:      "Issues moved from open to resolved.",
        }),
        Events: f.NewCounterVec(prometheus.CounterOpts{
            Namespace: "xeni",
            Name:      "events_published_total",
            Help:      "Published case events by type and result.",
        }, []string{"type", "result"}),
    }
}

func result(hit bool) string {
    if hit {
        return "hit"
    }
    return "miss"
}

// ObserveLookup records a cache lookup on the named layer.
func (m *Metrics) ObserveLookup(layer string, hit bool) {
    m.CacheLookups.WithLabelValues(layer, result(hit)).Inc()
}
