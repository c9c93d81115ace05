package weather

import (
	"fmt"
	"time"

	"github.com/vyong1/fast-weather/internal/wmo"
)

// timestampLayout renders row labels like "[Mon Jan 02] 03:04 PM".
const timestampLayout = "[Mon Jan 02] 03:04 PM"

// AlignmentError reports a response series whose length does not match
// the number of timesteps derived from the response's time range.
type AlignmentError struct {
	Field string
	Got   int
	Want  int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("field %s has %d values for %d timesteps", e.Field, e.Got, e.Want)
}

// Table is the fully formatted forecast, ready to render.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Assemble zips row timestamps with each column's formatted values.
// Row timestamps start at the forecast's start time and step by its
// interval up to, but excluding, its end time, localized to loc.
func Assemble(f *Forecast, cols []Column, codes *wmo.Table, loc *time.Location, colorize bool) (*Table, error) {
	if len(f.Series) != len(cols) {
		return nil, fmt.Errorf("forecast has %d series for %d columns", len(f.Series), len(cols))
	}

	labels := make([]string, 0, f.Steps())
	for ts := f.TimeStart; ts < f.TimeEnd; ts += f.IntervalSeconds {
		labels = append(labels, time.Unix(ts, 0).In(loc).Format(timestampLayout))
	}

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, TimeHeader(colorize))

	formatted := make([][]string, len(cols))
	for i, col := range cols {
		values := f.Series[i]
		if len(values) != len(labels) {
			return nil, &AlignmentError{Field: col.Field, Got: len(values), Want: len(labels)}
		}
		out, err := formatValues(col, values, codes)
		if err != nil {
			return nil, err
		}
		formatted[i] = out
		headers = append(headers, col.Header)
	}

	rows := make([][]string, len(labels))
	for r, label := range labels {
		row := make([]string, 0, len(cols)+1)
		row = append(row, label)
		for _, colValues := range formatted {
			row = append(row, colValues[r])
		}
		rows[r] = row
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
