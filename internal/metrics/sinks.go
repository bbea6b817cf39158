package metrics

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/core/ports"
	"github.com/genc-murat/crystalmetrics/internal/export"
)

type NopSink struct{}

func (NopSink) CollectionStarted()                                 {}
func (NopSink) CollectionStopped()                                 {}
func (NopSink) MetricsCollected()                                  {}
func (NopSink) AlertTriggered(string, models.AlertLevel, float64) {}

// LogSink writes every signal to a zerolog logger. Alert levels map to
// info, warn and error.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) CollectionStarted() {
	s.log.Info().Msg("Metrics collection started")
}

func (s *LogSink) CollectionStopped() {
	s.log.Info().Msg("Metrics collection stopped")
}

func (s *LogSink) MetricsCollected() {
	s.log.Debug().Msg("Metrics collected")
}

func (s *LogSink) AlertTriggered(metric string, level models.AlertLevel, value float64) {
	var ev *zerolog.Event
	switch level {
	case models.AlertCritical:
		ev = s.log.Error()
	case models.AlertWarning:
		ev = s.log.Warn()
	default:
		ev = s.log.Info()
	}
	ev.Str("metric", metric).Str("level", string(level)).Float64("value", value).Msg("Alert level changed")
}

// MultiSink fans every signal out to its members in registration order.
type MultiSink struct {
	mu    sync.RWMutex
	sinks []ports.EventSink
}

func NewMultiSink(sinks ...ports.EventSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Add(sink ports.EventSink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinks = append(m.sinks, sink)
}

func (m *MultiSink) each(fn func(ports.EventSink)) {
	m.mu.RLock()
	sinks := append([]ports.EventSink(nil), m.sinks...)
	m.mu.RUnlock()

	for _, s := range sinks {
		fn(s)
	}
}

func (m *MultiSink) CollectionStarted() {
	m.each(func(s ports.EventSink) { s.CollectionStarted() })
}

func (m *MultiSink) CollectionStopped() {
	m.each(func(s ports.EventSink) { s.CollectionStopped() })
}

func (m *MultiSink) MetricsCollected() {
	m.each(func(s ports.EventSink) { s.MetricsCollected() })
}

func (m *MultiSink) AlertTriggered(metric string, level models.AlertLevel, value float64) {
	m.each(func(s ports.EventSink) { s.AlertTriggered(metric, level, value) })
}

// TextfileSink rewrites the scrape output after every tick.
type TextfileSink struct {
	NopSink
	endpoint *Endpoint
	writer   *export.TextfileWriter
	log      zerolog.Logger
}

func NewTextfileSink(endpoint *Endpoint, writer *export.TextfileWriter, log zerolog.Logger) *TextfileSink {
	return &TextfileSink{endpoint: endpoint, writer: writer, log: log}
}

func (s *TextfileSink) MetricsCollected() {
	content, err := s.endpoint.ExportScrape()
	if err != nil {
		s.log.Debug().Err(err).Msg("Skipping textfile export")
		return
	}
	if err := s.writer.Write(content); err != nil {
		s.log.Error().Err(err).Str("path", s.writer.Path()).Msg("Failed to write metrics textfile")
	}
}
