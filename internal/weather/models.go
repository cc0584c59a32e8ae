package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/constraints"
)

// Number is any numeric type the statistics and formatting helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// DailyRecord is one row of the dataset: a calendar date and the day's
// minimum and maximum temperature in Fahrenheit.
type DailyRecord struct {
	Date     string  `json:"date" validate:"required"`
	MinTempF float64 `json:"minTempF"`
	MaxTempF float64 `json:"maxTempF"`
}

// Dataset is the ordered sequence of daily records. Indexes returned by the
// statistics helpers refer to positions in this slice.
type Dataset []DailyRecord

// MinTemps returns the minimum-temperature column in dataset order.
func (d Dataset) MinTemps() []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.MinTempF
	}
	return out
}

// MaxTemps returns the maximum-temperature column in dataset order.
func (d Dataset) MaxTemps() []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.MaxTempF
	}
	return out
}

// Extreme is the result of a min/max search.
type Extreme[T constraints.Ordered] struct {
	Value T
	Index int
}

// Summary is the rendered output of one Service run.
type Summary struct {
	Records  int    `json:"records"`
	Overview string `json:"overview,omitempty"`
	Daily    string `json:"daily,omitempty"`
}

// ErrFieldCount is wrapped by ParseRecord when a row does not have exactly
// three fields.
var ErrFieldCount = errors.New("expected 3 fields (date, min, max)")

// ErrNotNumeric is wrapped by ParseRecord when a temperature is not a plain
// decimal number. NaN, infinities, hex floats and exponents are rejected.
var ErrNotNumeric = errors.New("not a decimal number")

var validate = validator.New()

// ParseError reports input that could not be turned into a typed value.
type ParseError struct {
	Kind  string // "date", "temperature" or "record"
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRecord converts a raw (date, min, max) row into a DailyRecord.
func ParseRecord(fields []string) (DailyRecord, error) {
	if len(fields) != 3 {
		return DailyRecord{}, &ParseError{
			Kind:  "record",
			Input: strings.Join(fields, ","),
			Err:   fmt.Errorf("%w, got %d", ErrFieldCount, len(fields)),
		}
	}

	rec := DailyRecord{Date: strings.TrimSpace(fields[0])}
	if err := validate.Struct(rec); err != nil {
		return DailyRecord{}, &ParseError{Kind: "record", Input: strings.Join(fields, ","), Err: err}
	}

	var err error
	if rec.MinTempF, err = parseTemperature(fields[1]); err != nil {
		return DailyRecord{}, err
	}
	if rec.MaxTempF, err = parseTemperature(fields[2]); err != nil {
		return DailyRecord{}, err
	}
	return rec, nil
}

func parseTemperature(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if err := validate.Var(trimmed, "required,numeric"); err != nil {
		return 0, &ParseError{Kind: "temperature", Input: s, Err: ErrNotNumeric}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Kind: "temperature", Input: s, Err: err}
	}
	return v, nil
}

// NewDataset parses in-memory rows into a Dataset, stopping at the first bad row.
func NewDataset(rows [][]string) (Dataset, error) {
	ds := make(Dataset, 0, len(rows))
	for i, row := range rows {
		rec, err := ParseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}
