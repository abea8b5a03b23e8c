package timeseries

import (
	"fmt"
	"sort"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Downsample buckets rows into fixed intervals and averages each column per
// bucket. The interval is a duration string such as "15m", "4h" or "1d"; the
// bucket timestamp is the interval start.
func (t *Table) Downsample(interval string) (*Table, error) {
	d, err := str2duration.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("parse interval %q: %w", interval, err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("interval %q is not positive", interval)
	}

	type bucket struct {
		sums  []float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for i, ts := range t.Time {
		key := ts.Truncate(d)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{sums: make([]float64, len(t.names))}
			buckets[key] = b
		}
		for j, name := range t.names {
			b.sums[j] += t.columns[name][i]
		}
		b.count++
	}

	keys := make([]time.Time, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := &Table{
		columns: make(map[string][]float64, len(t.names)),
		names:   t.names,
		log:     t.log,
	}
	for _, key := range keys {
		b := buckets[key]
		out.Time = append(out.Time, key)
		for j, name := range t.names {
			out.columns[name] = append(out.columns[name], b.sums[j]/float64(b.count))
		}
	}
	return out, nil
}
