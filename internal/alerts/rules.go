package alerts

import (
	"fmt"
	"sort"
	"sync"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

// RuleSet holds at most one rule per metric name.
type RuleSet struct {
	mu    sync.RWMutex
	rules map[string]models.AlertRule
}

func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string]models.AlertRule)}
}

// Add inserts rule, replacing any existing rule for the same metric.
func (rs *RuleSet) Add(rule models.AlertRule) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.rules[rule.MetricName] = rule
}

func (rs *RuleSet) Remove(metricName string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.rules, metricName)
}

func (rs *RuleSet) SetEnabled(metricName string, enabled bool) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rule, ok := rs.rules[metricName]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownMetric, metricName)
	}
	rule.Enabled = enabled
	rs.rules[metricName] = rule
	return nil
}

func (rs *RuleSet) Get(metricName string) (models.AlertRule, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	rule, ok := rs.rules[metricName]
	return rule, ok
}

// List returns a copy of the rules ordered by metric name.
func (rs *RuleSet) List() []models.AlertRule {
	rs.mu.RLock()
	out := make([]models.AlertRule, 0, len(rs.rules))
	for _, rule := range rs.rules {
		out = append(out, rule)
	}
	rs.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].MetricName < out[j].MetricName
	})
	return out
}

func (rs *RuleSet) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.rules)
}
