package probe

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/core/ports"
)

var _ ports.SystemProbe = (*Process)(nil)

func TestConnTracker(t *testing.T) {
	c := NewConnTracker()

	c.ConnState(nil, http.StateNew)
	c.ConnState(nil, http.StateNew)
	c.ConnState(nil, http.StateActive)
	c.ConnState(nil, http.StateIdle)
	c.ConnState(nil, http.StateClosed)
	c.ConnState(nil, http.StateNew)
	c.ConnState(nil, http.StateHijacked)

	assert.Equal(t, int32(1), c.Active())
	assert.Equal(t, int32(3), c.Total())
}

func TestProcessProbe(t *testing.T) {
	tracker := NewConnTracker()
	tracker.ConnState(nil, http.StateNew)

	p, err := NewProcess(tracker)
	require.NoError(t, err)

	mb, err := p.MemoryUsageMB()
	require.NoError(t, err)
	assert.Greater(t, mb, 0.0)

	pct, err := p.CPUPercent()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pct, 0.0)

	active, err := p.ActiveConnections()
	require.NoError(t, err)
	assert.Equal(t, int32(1), active)
	total, err := p.TotalConnections()
	require.NoError(t, err)
	assert.Equal(t, int32(1), total)
}

func TestProcessProbeWithoutConnections(t *testing.T) {
	p, err := NewProcess(nil)
	require.NoError(t, err)

	_, err = p.ActiveConnections()
	assert.ErrorIs(t, err, models.ErrProbeUnavailable)
	_, err = p.TotalConnections()
	assert.ErrorIs(t, err, models.ErrProbeUnavailable)
}
