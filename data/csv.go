package data

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gwenn/yacr"
	"gonum.org/v1/plot/plotter"
)

// Table is a column oriented numeric table read from CSV.
type Table struct {
	Headers []string
	Columns [][]float64
}

// ReadCSV reads a table with a header line from r. The separator is
// guessed from the header unless sep is not zero. Lines starting with '#'
// are comments. Empty cells and the cells "NaN" or "-" read as NaN.
func ReadCSV(r io.Reader, sep byte) (*Table, error) {
	var rd *yacr.Reader
	if sep == 0 {
		rd = yacr.NewReader(r, ',', true, true)
	} else {
		rd = yacr.NewReader(r, sep, true, false)
	}
	rd.Trim = true
	rd.Comment = '#'

	t := &Table{}
	for rd.Scan() {
		t.Headers = append(t.Headers, rd.Text())
		if rd.EndOfRecord() {
			break
		}
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("data: csv header: %w", err)
	}
	if len(t.Headers) == 0 {
		return nil, fmt.Errorf("data: csv: missing header line")
	}
	t.Columns = make([][]float64, len(t.Headers))

	row := make([]float64, 0, len(t.Headers))
	blank := true
	for rd.Scan() {
		cell := rd.Text()
		if cell != "" {
			blank = false
		}
		v, err := parseCell(cell)
		if err != nil {
			return nil, fmt.Errorf("data: csv line %d: %w", rd.LineNumber(), err)
		}
		row = append(row, v)
		if !rd.EndOfRecord() {
			continue
		}
		if !blank {
			if len(row) > len(t.Headers) {
				return nil, fmt.Errorf("data: csv line %d: %d fields, header has %d",
					rd.LineNumber(), len(row), len(t.Headers))
			}
			for c := range t.Columns {
				x := math.NaN()
				if c < len(row) {
					x = row[c]
				}
				t.Columns[c] = append(t.Columns[c], x)
			}
		}
		row, blank = row[:0], true
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("data: csv: %w", err)
	}
	return t, nil
}

func parseCell(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "", "-", "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Len returns the number of records.
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Column returns the column named name.
func (t *Table) Column(name string) (Values, error) {
	for i, h := range t.Headers {
		if h == name {
			return Values(t.Columns[i]), nil
		}
	}
	return nil, fmt.Errorf("data: no column %q", name)
}

// OHLC combines the four named columns into candlestick records.
func (t *Table) OHLC(open, high, low, close string) (OHLCs, error) {
	var cols [4]Values
	for i, name := range []string{open, high, low, close} {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	d := make(OHLCs, t.Len())
	for i := range d {
		d[i] = OHLC{Open: cols[0][i], High: cols[1][i], Low: cols[2][i], Close: cols[3][i]}
	}
	return d, nil
}

// XYs returns column y against the record index as gonum plotter data.
// NaN values are dropped, so positions in the result are not record
// indices.
func (t *Table) XYs(y string) (XYSeries, error) {
	c, err := t.Column(y)
	if err != nil {
		return XYSeries{}, err
	}
	xys := make(plotter.XYs, 0, len(c))
	for i, v := range c {
		if finite(v) {
			xys = append(xys, plotter.XY{X: float64(i), Y: v})
		}
	}
	return XYSeries{XYer: xys}, nil
}
