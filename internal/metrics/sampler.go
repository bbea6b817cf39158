package metrics

import (
	"fmt"
	"time"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/util"
)

// StartCollection runs one collection immediately and then arms the periodic
// sampler. A non-positive interval reuses the configured one. Calling it while
// collecting disarms the running sampler first and rearms it with the new
// interval. Sink signals are sent after samplerMu is released.
func (e *Endpoint) StartCollection(interval time.Duration) {
	e.samplerMu.Lock()
	restarted := e.stopLocked()
	if interval > 0 {
		e.interval = interval
	}
	e.armLocked()
	current := e.interval
	e.samplerMu.Unlock()

	if restarted {
		e.sink.CollectionStopped()
	}
	e.CollectNow()

	e.log.Info().Dur("interval", current).Msg("Starting metrics collection")
	e.sink.CollectionStarted()
}

func (e *Endpoint) armLocked() {
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	e.collecting.Store(true)
	go e.run(e.interval, e.stop, e.done)
}

// StopCollection disarms the sampler and waits for an in-flight tick to
// finish. It is a no-op when idle.
func (e *Endpoint) StopCollection() {
	e.samplerMu.Lock()
	stopped := e.stopLocked()
	e.samplerMu.Unlock()

	if stopped {
		e.log.Info().Msg("Stopped metrics collection")
		e.sink.CollectionStopped()
	}
}

func (e *Endpoint) IsCollecting() bool {
	return e.collecting.Load()
}

// SetCollectionInterval changes the tick period. A running sampler is rearmed
// with the new period without an extra collection or lifecycle signals.
func (e *Endpoint) SetCollectionInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: collection interval must be positive, got %v", models.ErrInvalidValue, interval)
	}

	e.samplerMu.Lock()
	defer e.samplerMu.Unlock()

	e.interval = interval
	if e.stopLocked() {
		e.armLocked()
	}
	return nil
}

func (e *Endpoint) CollectionInterval() time.Duration {
	e.samplerMu.Lock()
	defer e.samplerMu.Unlock()
	return e.interval
}

func (e *Endpoint) stopLocked() bool {
	if e.stop == nil {
		return false
	}
	close(e.stop)
	<-e.done
	e.stop, e.done = nil, nil
	e.collecting.Store(false)
	return true
}

func (e *Endpoint) run(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.CollectNow()
		}
	}
}

// CollectNow runs one sampler tick: probe readings are appended with a shared
// timestamp, every rule is evaluated and MetricsCollected is signalled. A
// failing probe reading only skips its own series.
func (e *Endpoint) CollectNow() {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	if e.probe != nil {
		e.sampleProbe(e.clock.NowMs())
	}
	e.EvaluateAllAlerts()
	e.sink.MetricsCollected()
}

func (e *Endpoint) sampleProbe(ts int64) {
	if mb, err := e.probe.MemoryUsageMB(); err != nil {
		e.log.Warn().Err(err).Str("series", models.SeriesMemory).Msg("Probe reading skipped")
	} else if err := util.ValidateNonNegative(models.SeriesMemory, mb); err != nil {
		e.log.Warn().Err(err).Msg("Dropped memory sample")
	} else {
		e.appendAt(models.SeriesMemory, ts, mb)
	}

	if pct, err := e.probe.CPUPercent(); err != nil {
		e.log.Warn().Err(err).Str("series", models.SeriesCPU).Msg("Probe reading skipped")
	} else if err := util.ValidateNonNegative(models.SeriesCPU, pct); err != nil {
		e.log.Warn().Err(err).Msg("Dropped cpu sample")
	} else {
		e.appendAt(models.SeriesCPU, ts, pct)
	}

	if active, err := e.probe.ActiveConnections(); err != nil {
		e.log.Warn().Err(err).Str("series", models.SeriesActiveConnections).Msg("Probe reading skipped")
	} else {
		e.appendAt(models.SeriesActiveConnections, ts, float64(active))
	}

	if total, err := e.probe.TotalConnections(); err != nil {
		e.log.Warn().Err(err).Str("series", models.SeriesTotalConnections).Msg("Probe reading skipped")
	} else {
		e.appendAt(models.SeriesTotalConnections, ts, float64(total))
	}
}
