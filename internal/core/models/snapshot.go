package models

type Percentiles struct {
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	P99   float64 `json:"p99"`
	Count int     `json:"count"`
}

// Snapshot is the composite view served to dashboards.
type Snapshot struct {
	InstanceID  string                  `json:"instance_id"`
	GeneratedAt int64                   `json:"generated_at"`
	UptimeMs    int64                   `json:"uptime_ms"`
	Collecting  bool                    `json:"is_collecting"`
	IntervalMs  int64                   `json:"collection_interval_ms"`
	Series      map[string]SeriesExport `json:"series"`
	Endpoints   map[string]Percentiles  `json:"endpoints"`
	Extensions  map[string]string       `json:"extensions"`
	Alerts      []AlertStatus           `json:"alerts"`
}

type SeriesSummary struct {
	Unit   string   `json:"unit"`
	Latest *float64 `json:"latest"`
	Mean   *float64 `json:"mean"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// SummaryWindow is the number of newest samples behind Summary.LastHour, one
// hour at the default one-minute interval.
const SummaryWindow = 60

// WindowStats reduces the newest SummaryWindow samples of a series. Both
// fields are nil when the series is empty.
type WindowStats struct {
	Mean *float64 `json:"mean"`
	Max  *float64 `json:"max"`
}

type Summary struct {
	InstanceID   string                   `json:"instance_id"`
	GeneratedAt  int64                    `json:"generated_at"`
	UptimeMs     int64                    `json:"uptime_ms"`
	Collecting   bool                     `json:"collecting"`
	Series       map[string]SeriesSummary `json:"series"`
	LastHour     map[string]WindowStats   `json:"last_hour"`
	Endpoints    map[string]Percentiles   `json:"endpoints"`
	Extensions   int                      `json:"extensions"`
	ActiveAlerts int                      `json:"active_alerts"`
}
