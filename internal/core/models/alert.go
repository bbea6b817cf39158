package models

// AlertLevel is the derived state of a rule against its metric's latest value.
type AlertLevel string

const (
	AlertOK       AlertLevel = "ok"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
	AlertUnknown  AlertLevel = "unknown"
)

// AlertRule thresholds are upper bounds. Critical below Warning is accepted
// as is; critical is checked first.
type AlertRule struct {
	MetricName  string  `json:"metric" yaml:"metric"`
	Warning     float64 `json:"warning" yaml:"warning"`
	Critical    float64 `json:"critical" yaml:"critical"`
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	Description string  `json:"description" yaml:"description"`
}

type AlertStatus struct {
	AlertRule
	Value *float64   `json:"value"`
	Level AlertLevel `json:"level"`
}
