package models

import (
	"sync"
	"time"
)

const DefaultSeriesCapacity = 1440

// TimeSeries is a bounded ring of samples. When full, the oldest sample is
// overwritten first.
type TimeSeries struct {
	mu   sync.Mutex
	name string
	unit string
	buf  []MetricSample
	head int
	size int
}

type SeriesExport struct {
	Name    string         `json:"name"`
	Unit    string         `json:"unit"`
	Length  int            `json:"length"`
	Samples []MetricSample `json:"samples"`
	Latest  *float64       `json:"latest"`
	Mean    *float64       `json:"mean"`
	Min     *float64       `json:"min"`
	Max     *float64       `json:"max"`
}

func NewTimeSeries(name, unit string, capacity int) *TimeSeries {
	if capacity < 1 {
		capacity = 1
	}
	return &TimeSeries{
		name: name,
		unit: unit,
		buf:  make([]MetricSample, capacity),
	}
}

func (ts *TimeSeries) Name() string { return ts.name }
func (ts *TimeSeries) Unit() string { return ts.unit }

func (ts *TimeSeries) Capacity() int { return len(ts.buf) }

func (ts *TimeSeries) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.size
}

// Append stores value stamped with the current wall-clock time.
func (ts *TimeSeries) Append(value float64) {
	ts.AppendAt(time.Now().UnixMilli(), value)
}

func (ts *TimeSeries) AppendAt(timestamp int64, value float64) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.buf[ts.head] = MetricSample{Timestamp: timestamp, Value: value}
	ts.head = (ts.head + 1) % len(ts.buf)
	if ts.size < len(ts.buf) {
		ts.size++
	}
}

func (ts *TimeSeries) Latest() (MetricSample, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.size == 0 {
		return MetricSample{}, ErrNoData
	}
	return ts.buf[(ts.head-1+len(ts.buf))%len(ts.buf)], nil
}

// Tail returns a copy of the last lastN samples in insertion order.
// A negative lastN selects every retained sample.
func (ts *TimeSeries) Tail(lastN int) []MetricSample {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.tailLocked(lastN)
}

func (ts *TimeSeries) tailLocked(lastN int) []MetricSample {
	n := ts.size
	if lastN >= 0 && lastN < n {
		n = lastN
	}

	out := make([]MetricSample, n)
	start := ts.head - n
	if start < 0 {
		start += len(ts.buf)
	}
	for i := 0; i < n; i++ {
		out[i] = ts.buf[(start+i)%len(ts.buf)]
	}
	return out
}

func (ts *TimeSeries) Reduce(kind ReduceKind, lastN int) (float64, error) {
	return reduce(ts.Tail(lastN), kind)
}

func (ts *TimeSeries) Export(lastN int) SeriesExport {
	ts.mu.Lock()
	samples := ts.tailLocked(lastN)
	length := ts.size
	ts.mu.Unlock()

	exp := SeriesExport{
		Name:    ts.name,
		Unit:    ts.unit,
		Length:  length,
		Samples: samples,
	}
	if len(samples) == 0 {
		return exp
	}

	latest := samples[len(samples)-1].Value
	exp.Latest = &latest
	for kind, dst := range map[ReduceKind]**float64{
		ReduceMin:  &exp.Min,
		ReduceMax:  &exp.Max,
		ReduceMean: &exp.Mean,
	} {
		v, _ := reduce(samples, kind)
		*dst = &v
	}
	return exp
}

func reduce(samples []MetricSample, kind ReduceKind) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoData
	}

	result := samples[0].Value
	switch kind {
	case ReduceMin:
		for _, s := range samples[1:] {
			if s.Value < result {
				result = s.Value
			}
		}
	case ReduceMax:
		for _, s := range samples[1:] {
			if s.Value > result {
				result = s.Value
			}
		}
	case ReduceMean:
		sum := 0.0
		for _, s := range samples {
			sum += s.Value
		}
		result = sum / float64(len(samples))
	}
	return result, nil
}
