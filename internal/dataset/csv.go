package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Header is the fixed first row of every dataset file.
var Header = []string{"ticker", "news", "change"}

// WriteCSV writes the header and one row per record. Fields containing a
// comma, quote or line break are quoted. Rows end in CRLF.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Ticker, r.News, r.Change}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to path atomically: rows go to a temporary file in
// the same directory, which is synced, closed and renamed over path. On
// failure the temporary file is removed and path is left untouched.
func WriteFile(path string, records []Record) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError("create", path, err)
	}
	tmpName := tmp.Name()

	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := WriteCSV(tmp, records); err != nil {
		return ioError("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return ioError("sync", path, err)
	}

	closed = true
	if err := tmp.Close(); err != nil {
		return ioError("close", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return ioError("chmod", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return ioError("rename", path, err)
	}
	return nil
}

// ReadCSV parses a dataset written by WriteCSV. The header must match Header
// exactly and every row must have three fields.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("unexpected header %v, want %v", header, Header)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Ticker: row[0], News: row[1], Change: row[2]})
	}
	return records, nil
}

// ReadFile opens and parses a dataset file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}
