package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

var percentileMetrics = []struct {
	name string
	help string
	unit string
	get  func(models.Percentiles) float64
}{
	{"endpoint_latency_p50_ms", "Median request latency per endpoint", "ms", func(p models.Percentiles) float64 { return p.P50 }},
	{"endpoint_latency_p95_ms", "95th percentile request latency per endpoint", "ms", func(p models.Percentiles) float64 { return p.P95 }},
	{"endpoint_latency_p99_ms", "99th percentile request latency per endpoint", "ms", func(p models.Percentiles) float64 { return p.P99 }},
	{"endpoint_latency_count", "Retained latency samples per endpoint", "count", func(p models.Percentiles) float64 { return float64(p.Count) }},
}

// Scrape renders the snapshot in the text exposition format. Each series
// contributes its latest sample; endpoint percentiles and extension states
// follow as labelled gauges.
func Scrape(snap models.Snapshot) string {
	var b strings.Builder

	for _, name := range SeriesNames(snap) {
		series := snap.Series[name]
		metric := SanitizeName(name)
		writeHeader(&b, metric, seriesHelp(name))
		if series.Latest == nil || len(series.Samples) == 0 {
			continue
		}
		last := series.Samples[len(series.Samples)-1]
		fmt.Fprintf(&b, "%s{unit=\"%s\"} %s %d\n",
			metric, escapeLabel(series.Unit), formatValue(last.Value), last.Timestamp)
	}

	endpoints := make([]string, 0, len(snap.Endpoints))
	for ep := range snap.Endpoints {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	for _, pm := range percentileMetrics {
		writeHeader(&b, pm.name, pm.help)
		for _, ep := range endpoints {
			fmt.Fprintf(&b, "%s{endpoint=\"%s\",unit=\"%s\"} %s\n",
				pm.name, escapeLabel(ep), pm.unit, formatValue(pm.get(snap.Endpoints[ep])))
		}
	}

	ids := make([]string, 0, len(snap.Extensions))
	for id := range snap.Extensions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	writeHeader(&b, "extension_status", "Last reported status per extension")
	for _, id := range ids {
		fmt.Fprintf(&b, "extension_status{extension=\"%s\",status=\"%s\"} 1\n",
			escapeLabel(id), escapeLabel(snap.Extensions[id]))
	}

	return b.String()
}

func writeHeader(b *strings.Builder, metric, help string) {
	fmt.Fprintf(b, "# HELP %s %s\n", metric, help)
	fmt.Fprintf(b, "# TYPE %s gauge\n", metric)
}

func seriesHelp(name string) string {
	for _, s := range models.BuiltinSeries {
		if s.Name == name {
			return s.Help
		}
	}
	return "Custom gauge " + strconv.Quote(name)
}

// SanitizeName maps name onto [A-Za-z_][A-Za-z0-9_]* by replacing every
// other character with an underscore.
func SanitizeName(name string) string {
	if name == "" {
		return "_"
	}

	out := []byte(name)
	for i, c := range out {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeLabel(v string) string {
	return labelEscaper.Replace(v)
}
