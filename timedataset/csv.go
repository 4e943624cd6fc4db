package timedataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	ErrValueColumnMissing = errors.New("value column not found in header")
	ErrNoHeader           = errors.New("csv input has no header row")
)

// CSVOptions holds options for loading a series from CSV.
type CSVOptions struct {
	ValueColumn string // column name holding the sample values, defaults to "value"
	Delimiter   rune   // field delimiter, defaults to ','
	SkipRows    int    // number of rows to skip before the header
}

// NewDefaultCSVOptions returns the default CSV loading options.
func NewDefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from the value column of a CSV file.
func LoadCSV(path string, opts *CSVOptions) (*TimeSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from CSV data on an io.Reader. The
// first non-skipped row must be a header naming the value column.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*TimeSeries, error) {
	if opts == nil {
		opts = NewDefaultCSVOptions()
	}
	valueColumn := opts.ValueColumn
	if valueColumn == "" {
		valueColumn = "value"
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("unable to skip row %d, %w", i, err)
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read header, %w", err)
	}

	valueIdx := -1
	for i, name := range header {
		if name == valueColumn {
			valueIdx = i
			break
		}
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("no column named %q, %w", valueColumn, ErrValueColumnMissing)
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read row %d, %w", len(values)+1, err)
		}
		val, err := strconv.ParseFloat(record[valueIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse value at row %d, %w", len(values)+1, err)
		}
		values = append(values, val)
	}

	return New(values)
}

// SaveCSV writes the series to path with an "index,value" header.
func SaveCSV(path string, ts *TimeSeries) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, ts)
}

// WriteCSV writes the series as "index,value" rows to the given writer.
func WriteCSV(w io.Writer, ts *TimeSeries) error {
	if ts == nil || ts.Len() == 0 {
		return ErrNoData
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i := 0; i < ts.Len(); i++ {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(ts.At(i), 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
