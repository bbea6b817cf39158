package export

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

type csvRow struct {
	metric string
	unit   string
	sample models.MetricSample
}

// CSV writes one row per retained sample across every series, ordered by
// timestamp. Rows sharing a timestamp keep series order.
func CSV(snap models.Snapshot) ([]byte, error) {
	var rows []csvRow
	for _, name := range SeriesNames(snap) {
		series := snap.Series[name]
		for _, s := range series.Samples {
			rows = append(rows, csvRow{metric: name, unit: series.Unit, sample: s})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].sample.Timestamp < rows[j].sample.Timestamp
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"metric", "timestamp_ms", "value", "unit"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.metric,
			strconv.FormatInt(r.sample.Timestamp, 10),
			formatValue(r.sample.Value),
			r.unit,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
