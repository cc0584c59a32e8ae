package sources

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/i474232898/weather-report/internal/weather"
)

// CSVSource reads daily records from a comma-delimited file whose first row
// is a header.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSVSource for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.Path
}

func (s *CSVSource) Load(ctx context.Context) (weather.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses (date, min, max) rows from r. The header row is discarded;
// empty lines never reach the parser since encoding/csv skips them.
func ReadCSV(r io.Reader) (weather.Dataset, error) {
	cr := csv.NewReader(r)
	// Field count is checked per row by weather.ParseRecord.
	cr.FieldsPerRecord = -1

	var (
		ds         weather.Dataset
		headerSeen bool
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if !headerSeen {
			headerSeen = true
			continue
		}
		rec, err := weather.ParseRecord(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds = append(ds, rec)
	}

	return ds, nil
}
