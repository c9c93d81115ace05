package weather

import (
	"fmt"
	"strconv"

	"github.com/vyong1/fast-weather/internal/wmo"
)

// Format selects how a column's raw values are rendered. A closed set
// keeps formatting data-driven with no per-column function values.
type Format int

const (
	// FormatNone passes values through unchanged.
	FormatNone Format = iota
	// FormatRound2 renders values with exactly two decimal places.
	FormatRound2
	// FormatWeatherCode maps WMO codes to their descriptions.
	FormatWeatherCode
)

// Column ties an Open-Meteo hourly field to its display header and
// formatter. The declared order drives both the request field list and
// the left-to-right order of the rendered table.
type Column struct {
	Field  string
	Header string
	Format Format
}

// ANSI escapes for header colorization.
const (
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Columns returns the hourly columns in display order. "2m" fields are
// measured two meters above ground, where weather generally is.
func Columns(colorize bool) []Column {
	return []Column{
		{Field: "temperature_2m", Header: header("Temp (F)", colorize), Format: FormatRound2},
		{Field: "apparent_temperature", Header: header("Feels Like (F)", colorize), Format: FormatRound2},
		{Field: "weather_code", Header: header("Weather", colorize), Format: FormatWeatherCode},
		{Field: "precipitation_probability", Header: header("Precip (%)", colorize)},
		{Field: "precipitation", Header: header("Precip (in)", colorize)},
		{Field: "relative_humidity_2m", Header: header("Humidity (%)", colorize)},
		{Field: "dew_point_2m", Header: header("Dew Point", colorize), Format: FormatRound2},
		{Field: "uv_index", Header: header("UV Index", colorize)},
	}
}

// TimeHeader returns the header for the leading timestamp column,
// which is not a fetched field.
func TimeHeader(colorize bool) string {
	return header("Time", colorize)
}

func header(h string, colorize bool) string {
	if !colorize {
		return h
	}
	return colorCyan + h + colorReset
}

// FieldNames returns the API field list in column order.
func FieldNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Field
	}
	return names
}

// formatValues renders a raw series according to the column's format.
// Weather codes arrive as floats and are truncated before lookup.
func formatValues(col Column, values []float64, codes *wmo.Table) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		switch col.Format {
		case FormatRound2:
			// %.2f rounds to nearest over the exact binary value,
			// ties to even.
			out[i] = fmt.Sprintf("%.2f", v)
		case FormatWeatherCode:
			desc, err := codes.Describe(int(v))
			if err != nil {
				return nil, err
			}
			out[i] = desc
		default:
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return out, nil
}
