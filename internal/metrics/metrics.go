package metrics

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/genc-murat/crystalmetrics/internal/alerts"
	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/core/ports"
	"github.com/genc-murat/crystalmetrics/internal/export"
	"github.com/genc-murat/crystalmetrics/internal/latency"
)

const DefaultCollectionInterval = 60 * time.Second

type Options struct {
	CollectionInterval time.Duration
	MaxHistory         int
	LatencyCap         int
	ScrapeEnabled      bool
}

func DefaultOptions() Options {
	return Options{
		CollectionInterval: DefaultCollectionInterval,
		MaxHistory:         models.DefaultSeriesCapacity,
		LatencyCap:         latency.DefaultCap,
		ScrapeEnabled:      true,
	}
}

// Endpoint owns the metric series, the alert rules, the per-endpoint latency
// table and the extension status map, and runs the periodic sampler.
type Endpoint struct {
	instanceID string
	startMs    int64

	probe ports.SystemProbe
	clock ports.Clock
	sink  ports.EventSink
	log   zerolog.Logger

	seriesMu   sync.RWMutex
	series     map[string]*models.TimeSeries
	maxHistory int

	latency *latency.Table

	extMu      sync.RWMutex
	extensions map[string]string

	// alertMu spans reading a rule's series, updating the tracker and
	// signalling the sink, so transitions reach the sink in tracker order.
	alertMu sync.Mutex
	rules   *alerts.RuleSet
	tracker *alerts.Tracker

	scrapeEnabled atomic.Bool

	samplerMu  sync.Mutex
	interval   time.Duration
	stop       chan struct{}
	done       chan struct{}
	collecting atomic.Bool

	tickMu sync.Mutex
}

// NewEndpoint creates the endpoint with its built-in series. A nil clock
// falls back to the wall clock and a nil sink drops every signal. A nil probe
// makes ticks record nothing.
func NewEndpoint(probe ports.SystemProbe, clock ports.Clock, sink ports.EventSink, log zerolog.Logger, opts Options) *Endpoint {
	if clock == nil {
		clock = RealClock{}
	}
	if sink == nil {
		sink = NopSink{}
	}
	if opts.CollectionInterval <= 0 {
		opts.CollectionInterval = DefaultCollectionInterval
	}
	if opts.MaxHistory < 1 {
		opts.MaxHistory = models.DefaultSeriesCapacity
	}

	e := &Endpoint{
		instanceID: uuid.NewString(),
		startMs:    clock.NowMs(),
		probe:      probe,
		clock:      clock,
		sink:       sink,
		log:        log.With().Str("component", "metrics").Logger(),
		series:     make(map[string]*models.TimeSeries),
		maxHistory: opts.MaxHistory,
		latency:    latency.NewTable(opts.LatencyCap),
		extensions: make(map[string]string),
		rules:      alerts.NewRuleSet(),
		tracker:    alerts.NewTracker(),
		interval:   opts.CollectionInterval,
	}
	e.scrapeEnabled.Store(opts.ScrapeEnabled)

	for _, b := range models.BuiltinSeries {
		e.series[b.Name] = models.NewTimeSeries(b.Name, b.Unit, opts.MaxHistory)
	}
	return e
}

func (e *Endpoint) InstanceID() string { return e.instanceID }

func (e *Endpoint) UptimeMs() int64 { return e.clock.NowMs() - e.startMs }

// Close stops the sampler and waits for its goroutine to exit.
func (e *Endpoint) Close() {
	e.StopCollection()
}

// RegisterSeries adds a custom series sized by the current max history. Names
// that sanitize to an existing series' metric name are rejected.
func (e *Endpoint) RegisterSeries(name, unit string) error {
	if name == "" || unit == "" {
		return fmt.Errorf("series name and unit are required")
	}

	e.seriesMu.Lock()
	defer e.seriesMu.Unlock()

	if _, exists := e.series[name]; exists {
		return fmt.Errorf("series %s already exists", name)
	}
	metric := export.SanitizeName(name)
	for existing := range e.series {
		if export.SanitizeName(existing) == metric {
			return fmt.Errorf("series %s collides with %s as metric %s", name, existing, metric)
		}
	}
	e.series[name] = models.NewTimeSeries(name, unit, e.maxHistory)
	return nil
}

func (e *Endpoint) Series(name string) (*models.TimeSeries, bool) {
	e.seriesMu.RLock()
	defer e.seriesMu.RUnlock()
	ts, ok := e.series[name]
	return ts, ok
}

// SeriesNames returns built-in series in their fixed order followed by custom
// series sorted by name.
func (e *Endpoint) SeriesNames() []string {
	e.seriesMu.RLock()
	custom := make([]string, 0, len(e.series))
	for name := range e.series {
		if !models.IsBuiltinSeries(name) {
			custom = append(custom, name)
		}
	}
	e.seriesMu.RUnlock()

	sort.Strings(custom)
	names := make([]string, 0, len(models.BuiltinSeries)+len(custom))
	for _, b := range models.BuiltinSeries {
		names = append(names, b.Name)
	}
	return append(names, custom...)
}

func (e *Endpoint) SetMaxHistory(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: max history must be at least 1, got %d", models.ErrInvalidValue, n)
	}
	e.seriesMu.Lock()
	e.maxHistory = n
	e.seriesMu.Unlock()
	return nil
}

func (e *Endpoint) MaxHistory() int {
	e.seriesMu.RLock()
	defer e.seriesMu.RUnlock()
	return e.maxHistory
}

func (e *Endpoint) SetScrapeFormatEnabled(enabled bool) {
	e.scrapeEnabled.Store(enabled)
}

func (e *Endpoint) ScrapeFormatEnabled() bool {
	return e.scrapeEnabled.Load()
}

func (e *Endpoint) LatencyCap() int {
	return e.latency.Cap()
}
