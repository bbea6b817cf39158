package util

import (
	"sort"
	"strconv"
	"strings"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

// FormatInfoResponse takes a map of info key-values and returns a formatted string
func FormatInfoResponse(info map[string]string) string {
	var builder strings.Builder
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		builder.WriteString(k)
		builder.WriteString(":")
		builder.WriteString(info[k])
		builder.WriteString("\r\n")
	}
	return builder.String()
}

// SummaryInfo flattens a summary into INFO keys. Series without samples only
// report their unit.
func SummaryInfo(sum models.Summary) map[string]string {
	info := map[string]string{
		"instance_id":   sum.InstanceID,
		"uptime_ms":     strconv.FormatInt(sum.UptimeMs, 10),
		"collecting":    boolFlag(sum.Collecting),
		"extensions":    strconv.Itoa(sum.Extensions),
		"active_alerts": strconv.Itoa(sum.ActiveAlerts),
	}

	for name, s := range sum.Series {
		info[name+"_unit"] = s.Unit
		setFloat(info, name+"_latest", s.Latest)
		setFloat(info, name+"_mean", s.Mean)
		setFloat(info, name+"_min", s.Min)
		setFloat(info, name+"_max", s.Max)
	}

	for name, w := range sum.LastHour {
		setFloat(info, name+"_last_hour_mean", w.Mean)
		setFloat(info, name+"_last_hour_max", w.Max)
	}

	for endpoint, p := range sum.Endpoints {
		prefix := "endpoint[" + endpoint + "]"
		info[prefix+"_count"] = strconv.Itoa(p.Count)
		info[prefix+"_p50"] = formatFloat(p.P50)
		info[prefix+"_p95"] = formatFloat(p.P95)
		info[prefix+"_p99"] = formatFloat(p.P99)
	}
	return info
}

func setFloat(info map[string]string, key string, v *float64) {
	if v != nil {
		info[key] = formatFloat(*v)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
