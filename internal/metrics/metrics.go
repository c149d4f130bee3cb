package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"wishlink/internal/db"
)

// Render outcomes recorded for the public endpoint.
const (
	OutcomeRendered = "rendered"
	OutcomeNotFound = "not_found"
)

var publicRenderDesc = prometheus.NewDesc(
	"wishlink_public_renders_total",
	"Total public wishlist render count by outcome",
	[]string{"outcome"},
	nil,
)

// RenderCollector is a custom Prometheus collector that reads public
// render counts from the database on each scrape.
type RenderCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *RenderCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- publicRenderDesc
}

// Collect queries the database for render counters and emits them.
func (c *RenderCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.GetPublicViewCounts(context.Background())
	if err != nil {
		slog.Error("failed to collect public render metrics", "error", err)
		return
	}
	for _, pv := range counts {
		ch <- prometheus.MustNewConstMetric(
			publicRenderDesc,
			prometheus.CounterValue,
			float64(pv.Count),
			pv.Outcome,
		)
	}
}

// Recorder provides async render outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&RenderCollector{db: database})
	})
}

// RecordPublicRender asynchronously records a public render outcome.
func RecordPublicRender(outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementPublicView(context.Background(), outcome); err != nil {
			slog.Error("failed to record public render", "outcome", outcome, "error", err)
		}
	}()
}
