// Package timeseries loads time-indexed tabular data and plots it with
// calendar-aware annotations.
package timeseries

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/plotkit/plotkit/core"
	"github.com/plotkit/plotkit/pkg/logger"
)

// Table is a time-indexed set of named float columns, the in-memory form of
// a loaded CSV file. Rows are ordered by their timestamps.
type Table struct {
	Time    []time.Time
	columns map[string][]float64
	names   []string
	log     logger.Logger
}

// LoadOption customizes LoadCSV.
type LoadOption func(*loadOptions)

type loadOptions struct {
	dateColumn string
	layouts    []string
	log        logger.Logger
}

// WithDateColumn names the timestamp column. Without it the first column is
// used.
func WithDateColumn(name string) LoadOption {
	return func(o *loadOptions) { o.dateColumn = name }
}

// WithDateLayouts sets the time layouts tried when parsing timestamps, in
// order.
func WithDateLayouts(layouts ...string) LoadOption {
	return func(o *loadOptions) { o.layouts = layouts }
}

// WithLogger routes load progress and skipped-row warnings to l.
func WithLogger(l logger.Logger) LoadOption {
	return func(o *loadOptions) { o.log = l }
}

var defaultLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// LoadCSV reads a headered CSV file into a Table. One column holds the
// timestamps; every other column must parse as float64. Rows whose timestamp
// does not parse are skipped with a warning.
func LoadCSV(path string, opts ...LoadOption) (*Table, error) {
	o := loadOptions{layouts: defaultLayouts, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	header := records[0]
	dateIdx := 0
	if o.dateColumn != "" {
		dateIdx = lo.IndexOf(header, o.dateColumn)
		if dateIdx < 0 {
			return nil, fmt.Errorf("%w: date column %q", core.ErrNotFound, o.dateColumn)
		}
	}

	t := &Table{columns: make(map[string][]float64), log: o.log}
	for i, name := range header {
		if i == dateIdx {
			continue
		}
		t.names = append(t.names, name)
	}

	skipped := 0
	for line, rec := range records[1:] {
		ts, ok := parseTime(rec[dateIdx], o.layouts)
		if !ok {
			o.log.Warnf("%s line %d: unparseable timestamp %q, row skipped",
				path, line+2, rec[dateIdx])
			skipped++
			continue
		}
		t.Time = append(t.Time, ts)
		for i, name := range header {
			if i == dateIdx {
				continue
			}
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d, column %q: %w", path, line+2, name, err)
			}
			t.columns[name] = append(t.columns[name], v)
		}
	}
	o.log.Infof("loaded %s: %d rows, %d columns, %d skipped",
		path, len(t.Time), len(t.names), skipped)
	if len(t.Time) == 0 {
		return nil, fmt.Errorf("%s: no usable rows", path)
	}
	return t, nil
}

func parseTime(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Names returns the value column names in file order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Time) }

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: column %q", core.ErrNotFound, name)
	}
	return col, nil
}

// Select returns a table restricted to the named columns, sharing the
// underlying data.
func (t *Table) Select(names ...string) (*Table, error) {
	out := &Table{
		Time:    t.Time,
		columns: make(map[string][]float64, len(names)),
		names:   names,
		log:     t.log,
	}
	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out.columns[name] = col
	}
	return out, nil
}

// Series converts the named column to a plottable series. The x values are
// Unix timestamps in seconds, matching what TimeAxis formats.
func (t *Table) Series(name string) (core.Series, error) {
	col, err := t.Column(name)
	if err != nil {
		return core.Series{}, err
	}
	s := core.NewSeries(unixSeconds(t.Time), col)
	s.Label = name
	return s, nil
}

func unixSeconds(times []time.Time) []float64 {
	return lo.Map(times, func(ts time.Time, _ int) float64 {
		return float64(ts.Unix())
	})
}
