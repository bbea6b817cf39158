package metrics

import (
	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/export"
)

// Snapshot exports every series (last lastN samples, or all when lastN is
// negative) together with endpoint percentiles, extension states and alerts.
func (e *Endpoint) Snapshot(lastN int) models.Snapshot {
	snap := models.Snapshot{
		InstanceID:  e.instanceID,
		GeneratedAt: e.clock.NowMs(),
		Collecting:  e.IsCollecting(),
		IntervalMs:  e.CollectionInterval().Milliseconds(),
		Series:      make(map[string]models.SeriesExport),
		Endpoints:   e.latency.Snapshot(),
		Extensions:  e.Extensions(),
		Alerts:      e.Alerts(),
	}
	snap.UptimeMs = snap.GeneratedAt - e.startMs

	for _, name := range e.SeriesNames() {
		if series, ok := e.Series(name); ok {
			snap.Series[name] = series.Export(lastN)
		}
	}
	return snap
}

// Summary reports latest values and whole-ring aggregates without sample
// detail, plus mean and max over the newest SummaryWindow samples.
func (e *Endpoint) Summary() models.Summary {
	now := e.clock.NowMs()
	sum := models.Summary{
		InstanceID:  e.instanceID,
		GeneratedAt: now,
		UptimeMs:    now - e.startMs,
		Collecting:  e.IsCollecting(),
		Series:      make(map[string]models.SeriesSummary),
		LastHour:    make(map[string]models.WindowStats),
		Endpoints:   e.latency.Snapshot(),
	}

	e.extMu.RLock()
	sum.Extensions = len(e.extensions)
	e.extMu.RUnlock()

	for _, name := range e.SeriesNames() {
		series, ok := e.Series(name)
		if !ok {
			continue
		}
		exp := series.Export(-1)
		sum.Series[name] = models.SeriesSummary{
			Unit:   exp.Unit,
			Latest: exp.Latest,
			Mean:   exp.Mean,
			Min:    exp.Min,
			Max:    exp.Max,
		}

		window := series.Export(models.SummaryWindow)
		sum.LastHour[name] = models.WindowStats{Mean: window.Mean, Max: window.Max}
	}

	for _, status := range e.Alerts() {
		if status.Level == models.AlertWarning || status.Level == models.AlertCritical {
			sum.ActiveAlerts++
		}
	}
	return sum
}

// Alerts reports each rule with its metric's latest value and derived level.
// Enabled rules over a series without data report unknown.
func (e *Endpoint) Alerts() []models.AlertStatus {
	rules := e.rules.List()
	out := make([]models.AlertStatus, 0, len(rules))

	for _, rule := range rules {
		status := models.AlertStatus{AlertRule: rule, Level: models.AlertUnknown}

		value, level := e.currentLevel(rule)
		if level != models.AlertUnknown {
			status.Value = &value
		}
		status.Level = level
		if !rule.Enabled {
			status.Level = models.AlertOK
		}
		out = append(out, status)
	}
	return out
}

func (e *Endpoint) Extensions() map[string]string {
	e.extMu.RLock()
	defer e.extMu.RUnlock()

	out := make(map[string]string, len(e.extensions))
	for id, status := range e.extensions {
		out[id] = status
	}
	return out
}

func (e *Endpoint) EndpointPercentiles(endpoint string) (models.Percentiles, error) {
	return e.latency.Percentiles(endpoint)
}

func (e *Endpoint) ExportJSON() ([]byte, error) {
	return export.JSON(e.Snapshot(-1))
}

func (e *Endpoint) ExportScrape() (string, error) {
	if !e.ScrapeFormatEnabled() {
		return "", models.ErrScrapeDisabled
	}
	return export.Scrape(e.Snapshot(-1)), nil
}

func (e *Endpoint) ExportCSV() ([]byte, error) {
	return export.CSV(e.Snapshot(-1))
}
