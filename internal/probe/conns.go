package probe

import (
	"net"
	"net/http"
	"sync/atomic"
)

// ConnTracker counts connections through http.Server.ConnState.
type ConnTracker struct {
	active atomic.Int32
	total  atomic.Int32
}

func NewConnTracker() *ConnTracker {
	return &ConnTracker{}
}

func (c *ConnTracker) ConnState(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		c.active.Add(1)
		c.total.Add(1)
	case http.StateHijacked, http.StateClosed:
		c.active.Add(-1)
	}
}

func (c *ConnTracker) Active() int32 { return c.active.Load() }
func (c *ConnTracker) Total() int32  { return c.total.Load() }
