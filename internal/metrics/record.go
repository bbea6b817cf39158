package metrics

import (
	"fmt"

	"github.com/genc-murat/crystalmetrics/internal/alerts"
	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/util"
)

func (e *Endpoint) RecordMemory(mb float64) error {
	if err := util.ValidateNonNegative(models.SeriesMemory, mb); err != nil {
		return err
	}
	e.appendAt(models.SeriesMemory, e.clock.NowMs(), mb)
	e.evaluate(models.SeriesMemory)
	return nil
}

// RecordCPU accepts values above 100 for multi-core hosts.
func (e *Endpoint) RecordCPU(pct float64) error {
	if err := util.ValidateNonNegative(models.SeriesCPU, pct); err != nil {
		return err
	}
	e.appendAt(models.SeriesCPU, e.clock.NowMs(), pct)
	e.evaluate(models.SeriesCPU)
	return nil
}

// RecordConnections stamps both connection series with the same timestamp.
func (e *Endpoint) RecordConnections(active, total int32) error {
	if active < 0 || total < 0 {
		return fmt.Errorf("%w: connection counts must not be negative, got %d/%d",
			models.ErrInvalidValue, active, total)
	}

	ts := e.clock.NowMs()
	e.appendAt(models.SeriesActiveConnections, ts, float64(active))
	e.appendAt(models.SeriesTotalConnections, ts, float64(total))
	e.evaluate(models.SeriesActiveConnections)
	e.evaluate(models.SeriesTotalConnections)
	return nil
}

func (e *Endpoint) RecordExtensionStatus(id, status string) {
	e.extMu.Lock()
	defer e.extMu.Unlock()
	e.extensions[id] = status
}

// RecordLatency feeds both the aggregate latency series and the endpoint's own
// sequence. The aggregate series receives the sample even when the endpoint's
// sequence has to drop its oldest entry.
func (e *Endpoint) RecordLatency(endpoint string, ms float64) error {
	if err := util.ValidateNonNegative(models.SeriesRequestLatency, ms); err != nil {
		return err
	}

	if dropped := e.latency.Record(endpoint, ms); dropped {
		e.log.Trace().Str("endpoint", endpoint).Msg("Latency cap reached, dropped oldest sample")
	}
	e.appendAt(models.SeriesRequestLatency, e.clock.NowMs(), ms)
	e.evaluate(models.SeriesRequestLatency)
	return nil
}

// RecordValue appends to a series registered with RegisterSeries. Built-in
// series only accept values through their dedicated recorders.
func (e *Endpoint) RecordValue(name string, value float64) error {
	if models.IsBuiltinSeries(name) {
		return fmt.Errorf("%w: series %s is built-in, use its recorder", models.ErrInvalidValue, name)
	}
	if err := util.ValidateFinite(name, value); err != nil {
		return err
	}
	if _, ok := e.Series(name); !ok {
		return fmt.Errorf("%w: no series %s", models.ErrUnknownMetric, name)
	}
	e.appendAt(name, e.clock.NowMs(), value)
	e.evaluate(name)
	return nil
}

func (e *Endpoint) appendAt(name string, ts int64, value float64) {
	if series, ok := e.Series(name); ok {
		series.AppendAt(ts, value)
	}
}

func (e *Endpoint) AddRule(rule models.AlertRule) {
	e.alertMu.Lock()
	defer e.alertMu.Unlock()

	e.rules.Add(rule)
	e.tracker.Reset(rule.MetricName)
	e.evaluateRuleLocked(rule)
}

func (e *Endpoint) RemoveRule(metricName string) {
	e.alertMu.Lock()
	defer e.alertMu.Unlock()

	e.rules.Remove(metricName)
	e.tracker.Reset(metricName)
}

func (e *Endpoint) SetRuleEnabled(metricName string, enabled bool) error {
	e.alertMu.Lock()
	defer e.alertMu.Unlock()

	if err := e.rules.SetEnabled(metricName, enabled); err != nil {
		return err
	}
	if rule, ok := e.rules.Get(metricName); ok {
		e.evaluateRuleLocked(rule)
	}
	return nil
}

func (e *Endpoint) Rules() []models.AlertRule {
	return e.rules.List()
}

// EvaluateAllAlerts re-checks every rule against its series' latest value.
func (e *Endpoint) EvaluateAllAlerts() {
	e.alertMu.Lock()
	defer e.alertMu.Unlock()

	for _, rule := range e.rules.List() {
		e.evaluateRuleLocked(rule)
	}
}

func (e *Endpoint) evaluate(metric string) {
	e.alertMu.Lock()
	defer e.alertMu.Unlock()

	if rule, ok := e.rules.Get(metric); ok {
		e.evaluateRuleLocked(rule)
	}
}

func (e *Endpoint) evaluateRuleLocked(rule models.AlertRule) {
	if !rule.Enabled {
		e.tracker.Reset(rule.MetricName)
		return
	}

	value, level := e.currentLevel(rule)
	if level == models.AlertUnknown {
		return
	}
	if e.tracker.Observe(rule.MetricName, level) {
		e.sink.AlertTriggered(rule.MetricName, level, value)
	}
}

func (e *Endpoint) currentLevel(rule models.AlertRule) (float64, models.AlertLevel) {
	series, ok := e.Series(rule.MetricName)
	if !ok {
		return 0, models.AlertUnknown
	}
	latest, err := series.Latest()
	if err != nil {
		return 0, models.AlertUnknown
	}
	return latest.Value, alerts.Evaluate(rule, latest.Value)
}
