package fitlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads the progression log at path and returns the repaired series.
// It fails with *NotFoundError, *EmptyDatasetError or *LoadError.
func Load(path string) (Series, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Stats{}, &NotFoundError{Path: path, Err: err}
		}
		return nil, Stats{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return parse(f, path)
}

// Parse runs the same pipeline as Load over an already opened source.
func Parse(r io.Reader) (Series, Stats, error) {
	return parse(r, "<input>")
}

func parse(r io.Reader, path string) (Series, Stats, error) {
	rows, err := readRows(r, path)
	if err != nil {
		return nil, Stats{}, err
	}
	series, st := clean(rows)
	if len(series) == 0 {
		return nil, st, &EmptyDatasetError{Path: path, Stats: st}
	}
	return series, st, nil
}

// readRows splits the log into data rows. A byte-order mark selects UTF-8
// or UTF-16 decoding; without one the bytes must already be UTF-8.
func readRows(r io.Reader, path string) ([]rawRow, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	// A stray quote stays literal text and fails coercion for its row only.
	reader.LazyQuotes = true

	var rows []rawRow
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &LoadError{Path: path, Line: pe.Line, Err: pe.Err}
			}
			return nil, &LoadError{Path: path, Err: err}
		}
		line, _ := reader.FieldPos(0)
		for _, field := range record {
			if !utf8.ValidString(field) {
				return nil, &LoadError{Path: path, Line: line, Err: errors.New("invalid UTF-8 text")}
			}
		}
		if header {
			header = false
			continue
		}
		if len(record) > columns {
			return nil, &LoadError{Path: path, Line: line,
				Err: fmt.Errorf("expected %d fields, found %d", columns, len(record))}
		}
		rows = append(rows, rawRow{fields: record})
	}
	return rows, nil
}
