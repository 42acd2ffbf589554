package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"ayurvignana/internal/models"
)

var (
	symptomLookupDesc = prometheus.NewDesc(
		"ayurvignana_symptom_lookups_total",
		"Total symptom lookup count by matched keyword and outcome",
		[]string{"keyword", "outcome"},
		nil,
	)

	classifierUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ayurvignana_classifier_up",
		Help: "Whether the last classifier health probe succeeded (1) or failed (0)",
	})

	identifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ayurvignana_identifications_total",
		Help: "Image identifications by outcome",
	}, []string{"outcome"})
)

// Identification outcome label values.
const (
	IdentificationFound    = "found"
	IdentificationNotFound = "not_found"
	IdentificationFailed   = "failed"
)

// LookupStore persists symptom lookup counters.
type LookupStore interface {
	IncrementSymptomLookup(ctx context.Context, keyword, outcome string) error
	GetAllSymptomLookups(ctx context.Context) ([]models.SymptomLookup, error)
}

// SymptomCollector is a custom Prometheus collector that reads symptom lookup
// counts from the database on each scrape.
type SymptomCollector struct {
	store LookupStore
}

// NewSymptomCollector creates a collector backed by store.
func NewSymptomCollector(store LookupStore) *SymptomCollector {
	return &SymptomCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *SymptomCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- symptomLookupDesc
}

// Collect queries the database for all symptom lookups and emits them as counters.
func (c *SymptomCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllSymptomLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect symptom lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			symptomLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Keyword,
			l.Outcome,
		)
	}
}

// Recorder provides async symptom lookup recording.
type Recorder struct {
	store LookupStore
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup.
func Init(store LookupStore) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(NewSymptomCollector(store), classifierUp, identifications)
	})
}

// RecordSymptomLookup asynchronously records a symptom lookup outcome.
func RecordSymptomLookup(keyword, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.store.IncrementSymptomLookup(context.Background(), keyword, outcome); err != nil {
			slog.Error("failed to record symptom lookup", "keyword", keyword, "outcome", outcome, "error", err)
		}
	}()
}

// SetClassifierUp records the result of the latest classifier health probe.
func SetClassifierUp(up bool) {
	if up {
		classifierUp.Set(1)
		return
	}
	classifierUp.Set(0)
}

// RecordIdentification counts an identification by outcome.
func RecordIdentification(outcome string) {
	identifications.WithLabelValues(outcome).Inc()
}
