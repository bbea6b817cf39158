// Package export renders metric snapshots for dashboards (JSON), pull-based
// scrapers (text exposition) and spreadsheets (CSV).
package export

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

// SeriesNames orders the snapshot's series: built-ins first in their fixed
// order, then the rest by name.
func SeriesNames(snap models.Snapshot) []string {
	names := make([]string, 0, len(snap.Series))
	for _, b := range models.BuiltinSeries {
		if _, ok := snap.Series[b.Name]; ok {
			names = append(names, b.Name)
		}
	}

	custom := make([]string, 0, len(snap.Series))
	for name := range snap.Series {
		if !models.IsBuiltinSeries(name) {
			custom = append(custom, name)
		}
	}
	sort.Strings(custom)
	return append(names, custom...)
}

func JSON(snap models.Snapshot) ([]byte, error) {
	if snap.Series == nil {
		snap.Series = map[string]models.SeriesExport{}
	}
	if snap.Endpoints == nil {
		snap.Endpoints = map[string]models.Percentiles{}
	}
	if snap.Extensions == nil {
		snap.Extensions = map[string]string{}
	}
	if snap.Alerts == nil {
		snap.Alerts = []models.AlertStatus{}
	}
	for name, s := range snap.Series {
		if s.Samples == nil {
			s.Samples = []models.MetricSample{}
			snap.Series[name] = s
		}
	}
	return json.Marshal(snap)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
