package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNotFound is returned by Load when the file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrEmpty is returned by Load when the file has no header row.
	ErrEmpty = errors.New("file has no header row")
	// ErrNoRecords is returned by Save when there is nothing to write.
	ErrNoRecords = errors.New("no data to save")
)

const utf8BOM = "\ufeff"

// Load reads a comma-delimited file whose first row names the fields.
// Short rows are padded with empty values and extra cells are ignored.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ds.Path = path
	return ds, nil
}

// Read parses a header row followed by data rows from r.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	ds := &Dataset{Header: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(ds.Records)+1, err)
		}
		ds.Records = append(ds.Records, NewRecord(header, row))
	}
	return ds, nil
}

// Save writes recs to path as a header row taken from the first record's keys
// followed by one row per record. An existing file is truncated.
func Save(path string, recs []Record) error {
	if len(recs) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, recs); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Write encodes recs to w using the first record's keys as the header.
// Rows end in CRLF.
func Write(w io.Writer, recs []Record) error {
	if len(recs) == 0 {
		return ErrNoRecords
	}

	header := recs[0].Keys()
	data := [][]string{header}
	for _, rec := range recs {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = rec.Get(k)
		}
		data = append(data, row)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.WriteAll(data); err != nil {
		return fmt.Errorf("w.WriteAll: %w", err)
	}
	return nil
}
