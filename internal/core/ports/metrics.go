//go:generate mockgen -destination=mock_ports.go -package=ports github.com/genc-murat/crystalmetrics/internal/core/ports SystemProbe,Clock,EventSink

package ports

import "github.com/genc-murat/crystalmetrics/internal/core/models"

// SystemProbe reads host values for the sampler. Each reading may fail with
// models.ErrProbeUnavailable, in which case that series is skipped for the tick.
type SystemProbe interface {
	MemoryUsageMB() (float64, error)
	CPUPercent() (float64, error)
	ActiveConnections() (int32, error)
	TotalConnections() (int32, error)
}

type Clock interface {
	NowMs() int64
}

// EventSink receives lifecycle and alert signals. Lifecycle signals are sent
// with no endpoint lock held. MetricsCollected and AlertTriggered may run on
// the sampler goroutine, and AlertTriggered runs while alert evaluation is
// serialized. Callbacks must therefore not call StopCollection, Close,
// SetCollectionInterval or the rule mutators synchronously; start a goroutine
// for that.
type EventSink interface {
	CollectionStarted()
	CollectionStopped()
	MetricsCollected()
	AlertTriggered(metric string, level models.AlertLevel, value float64)
}
