package alerts

import (
	"sync"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

// Evaluate derives the level of value against rule. A disabled rule is always ok.
func Evaluate(rule models.AlertRule, value float64) models.AlertLevel {
	switch {
	case !rule.Enabled:
		return models.AlertOK
	case value >= rule.Critical:
		return models.AlertCritical
	case value >= rule.Warning:
		return models.AlertWarning
	default:
		return models.AlertOK
	}
}

// Tracker remembers the last reported level per metric so that only level
// changes are emitted. Metrics start at ok.
type Tracker struct {
	mu   sync.Mutex
	last map[string]models.AlertLevel
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]models.AlertLevel)}
}

// Observe records level for metric and reports whether it differs from the
// previously reported level.
func (t *Tracker) Observe(metric string, level models.AlertLevel) bool {
	if level == models.AlertUnknown {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	prev, ok := t.last[metric]
	if !ok {
		prev = models.AlertOK
	}
	if prev == level {
		return false
	}
	t.last[metric] = level
	return true
}

// Reset drops remembered state for metric without emitting anything.
func (t *Tracker) Reset(metric string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, metric)
}

func (t *Tracker) Last(metric string) models.AlertLevel {
	t.mu.Lock()
	defer t.mu.Unlock()
	if level, ok := t.last[metric]; ok {
		return level
	}
	return models.AlertOK
}
