package probe

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

const defaultProbeTimeout = 2 * time.Second

// ConnCounter supplies connection counts; ConnTracker is the HTTP implementation.
type ConnCounter interface {
	Active() int32
	Total() int32
}

// Process probes the resident memory and CPU usage of a single process.
type Process struct {
	proc    *process.Process
	conns   ConnCounter
	timeout time.Duration
}

// NewProcess probes the current process. conns may be nil, in which case the
// connection readings report models.ErrProbeUnavailable.
func NewProcess(conns ConnCounter) (*Process, error) {
	return NewProcessForPID(int32(os.Getpid()), conns)
}

func NewProcessForPID(pid int32, conns ConnCounter) (*Process, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrProbeUnavailable, err)
	}
	return &Process{proc: proc, conns: conns, timeout: defaultProbeTimeout}, nil
}

func (p *Process) MemoryUsageMB() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	info, err := p.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: memory: %w", models.ErrProbeUnavailable, err)
	}
	return float64(info.RSS) / (1024 * 1024), nil
}

// CPUPercent reports usage since the previous call (or since process start
// on the first call); values above 100 mean more than one core is busy.
func (p *Process) CPUPercent() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	pct, err := p.proc.PercentWithContext(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: cpu: %w", models.ErrProbeUnavailable, err)
	}
	return pct, nil
}

func (p *Process) ActiveConnections() (int32, error) {
	if p.conns == nil {
		return 0, fmt.Errorf("%w: no connection counter", models.ErrProbeUnavailable)
	}
	return p.conns.Active(), nil
}

func (p *Process) TotalConnections() (int32, error) {
	if p.conns == nil {
		return 0, fmt.Errorf("%w: no connection counter", models.ErrProbeUnavailable)
	}
	return p.conns.Total(), nil
}
