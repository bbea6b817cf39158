package latency

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

const DefaultCap = 1000

// Table keeps a bounded, insertion-ordered latency sequence per endpoint.
type Table struct {
	mu        sync.RWMutex
	cap       int
	endpoints map[string][]float64
}

func NewTable(capacity int) *Table {
	if capacity < 1 {
		capacity = DefaultCap
	}
	return &Table{
		cap:       capacity,
		endpoints: make(map[string][]float64),
	}
}

func (t *Table) Cap() int { return t.cap }

// Record appends ms to endpoint's sequence and reports whether the oldest
// entry was dropped to stay within the cap.
func (t *Table) Record(endpoint string, ms float64) (dropped bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seq := append(t.endpoints[endpoint], ms)
	if len(seq) > t.cap {
		copy(seq, seq[len(seq)-t.cap:])
		seq = seq[:t.cap]
		dropped = true
	}
	t.endpoints[endpoint] = seq
	return dropped
}

func (t *Table) Samples(endpoint string) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]float64(nil), t.endpoints[endpoint]...)
}

func (t *Table) Endpoints() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.endpoints))
	for name := range t.endpoints {
		names = append(names, name)
	}
	t.mu.RUnlock()

	sort.Strings(names)
	return names
}

func (t *Table) Percentiles(endpoint string) (models.Percentiles, error) {
	samples := t.Samples(endpoint)
	if len(samples) == 0 {
		return models.Percentiles{}, fmt.Errorf("%w: endpoint %s", models.ErrNoData, endpoint)
	}
	return Compute(samples), nil
}

// Snapshot computes percentiles for every endpoint with at least one sample.
func (t *Table) Snapshot() map[string]models.Percentiles {
	out := make(map[string]models.Percentiles)
	for _, name := range t.Endpoints() {
		if p, err := t.Percentiles(name); err == nil {
			out[name] = p
		}
	}
	return out
}

// Compute returns nearest-rank p50/p95/p99 over samples, which it sorts in place.
func Compute(samples []float64) models.Percentiles {
	sort.Float64s(samples)
	return models.Percentiles{
		P50:   NearestRank(samples, 50),
		P95:   NearestRank(samples, 95),
		P99:   NearestRank(samples, 99),
		Count: len(samples),
	}
}

// NearestRank returns the element at ceil(k/100 * n) - 1 of an ascending slice.
func NearestRank(sorted []float64, k float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(math.Ceil(k/100*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}
