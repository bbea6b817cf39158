package metrics

import (
	"sync/atomic"
	"time"
)

type RealClock struct{}

func (RealClock) NowMs() int64 { return time.Now().UnixMilli() }

// ManualClock only moves when told to.
type ManualClock struct {
	now atomic.Int64
}

func NewManualClock(startMs int64) *ManualClock {
	c := &ManualClock{}
	c.now.Store(startMs)
	return c
}

func (c *ManualClock) NowMs() int64 { return c.now.Load() }

func (c *ManualClock) Set(ms int64) { c.now.Store(ms) }

func (c *ManualClock) Advance(d time.Duration) int64 {
	return c.now.Add(d.Milliseconds())
}
