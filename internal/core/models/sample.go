package models

// MetricSample is one observation. The unit lives on the owning series.
type MetricSample struct {
	Timestamp int64   `json:"ts"`
	Value     float64 `json:"value"`
}

type ReduceKind int

const (
	ReduceMin ReduceKind = iota
	ReduceMax
	ReduceMean
)

func (k ReduceKind) String() string {
	switch k {
	case ReduceMin:
		return "min"
	case ReduceMax:
		return "max"
	case ReduceMean:
		return "mean"
	default:
		return "unknown"
	}
}

const (
	SeriesMemory            = "memory_mb"
	SeriesCPU               = "cpu_percent"
	SeriesActiveConnections = "active_connections"
	SeriesTotalConnections  = "total_connections"
	SeriesRequestLatency    = "request_latency_ms"
)

// BuiltinSeries lists the always-present series in export order.
var BuiltinSeries = []struct {
	Name string
	Unit string
	Help string
}{
	{SeriesMemory, "MB", "Resident memory of the host process"},
	{SeriesCPU, "%", "CPU usage of the host process"},
	{SeriesActiveConnections, "count", "Currently open connections"},
	{SeriesTotalConnections, "count", "Connections accepted since start"},
	{SeriesRequestLatency, "ms", "Request latency across all endpoints"},
}

func IsBuiltinSeries(name string) bool {
	for _, b := range BuiltinSeries {
		if b.Name == name {
			return true
		}
	}
	return false
}
