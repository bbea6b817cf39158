package alerts

import "github.com/genc-murat/crystalmetrics/internal/core/models"

// DefaultRules returns the stock thresholds for the built-in series.
func DefaultRules() []models.AlertRule {
	return []models.AlertRule{
		{MetricName: models.SeriesMemory, Warning: 1536, Critical: 2048, Enabled: true, Description: "Memory usage high"},
		{MetricName: models.SeriesCPU, Warning: 70, Critical: 90, Enabled: true, Description: "CPU usage high"},
		{MetricName: models.SeriesActiveConnections, Warning: 50, Critical: 100, Enabled: true, Description: "Too many active connections"},
		{MetricName: models.SeriesRequestLatency, Warning: 500, Critical: 1000, Enabled: true, Description: "Request latency high"},
	}
}
