package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/plotkit/plotkit/core"
)

// Aggregate reduces the named column down its rows to a single value. The
// recognized operations are "sum", "mean", "min" and "max".
func (t *Table) Aggregate(op, column string) (float64, error) {
	col, err := t.Column(column)
	if err != nil {
		return 0, err
	}
	if len(col) == 0 {
		return 0, core.ErrEmptySeries
	}
	return reduce(op, col)
}

// AggregateSeries reduces the named columns across each row, yielding one
// value per timestamp: a combined series ready to plot. With no columns named
// every column contributes. The operations match Aggregate and the result is
// labeled after the operation.
func (t *Table) AggregateSeries(op string, columns ...string) (core.Series, error) {
	if len(columns) == 0 {
		columns = t.names
	}
	cols := make([][]float64, len(columns))
	for i, name := range columns {
		col, err := t.Column(name)
		if err != nil {
			return core.Series{}, err
		}
		cols[i] = col
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return core.Series{}, core.ErrEmptySeries
	}

	y := make([]float64, len(cols[0]))
	row := make([]float64, len(cols))
	for i := range y {
		for j, col := range cols {
			row[j] = col[i]
		}
		v, err := reduce(op, row)
		if err != nil {
			return core.Series{}, err
		}
		y[i] = v
	}

	s := core.NewSeries(unixSeconds(t.Time), y)
	s.Label = op
	return s, nil
}

func reduce(op string, values []float64) (float64, error) {
	switch op {
	case "sum":
		return floats.Sum(values), nil
	case "mean":
		return stat.Mean(values, nil), nil
	case "min":
		return floats.Min(values), nil
	case "max":
		return floats.Max(values), nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownOperation, op)
	}
}
