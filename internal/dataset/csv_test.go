package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacquerai/pricenews/internal/catalog"
	"github.com/lacquerai/pricenews/internal/testhelper"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Record{
		{Ticker: "AAA", News: "AAA goes up.", Change: "Up."},
		{Ticker: "BBB", News: "BBB rises, again.", Change: "Up."},
		{Ticker: "CCC", News: `CCC "beats" estimates.`, Change: "Up."},
	})
	require.NoError(t, err)

	want := "ticker,news,change\r\n" +
		"AAA,AAA goes up.,Up.\r\n" +
		"BBB,\"BBB rises, again.\",Up.\r\n" +
		"CCC,\"CCC \"\"beats\"\" estimates.\",Up.\r\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "ticker,news,change\r\n", buf.String())
}

func TestWriteFileRoundTrip(t *testing.T) {
	g, err := New(catalog.Default(), NewRand(42))
	require.NoError(t, err)
	ds, err := g.Generate(1205)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, WriteFile(path, ds.Records))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o644), info.Mode().Perm())

	// A plain encoding/csv reader sees the header plus 1205 - 1205%12 rows.
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+1200)
	assert.Equal(t, []string{"ticker", "news", "change"}, rows[0])

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ds.Records, records)
}

func TestWriteFileIsDeterministic(t *testing.T) {
	dir := t.TempDir()

	write := func(name string) []byte {
		g, err := New(catalog.Default(), NewRand(42))
		require.NoError(t, err)
		ds, err := g.Generate(1200)
		require.NoError(t, err)

		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, ds.Records))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}

	assert.True(t, bytes.Equal(write("a.csv"), write("b.csv")))
}

func TestWriteFileOverwrites(t *testing.T) {
	path := testhelper.WriteFile(t, t.TempDir(), "out.csv", "stale contents\n")

	require.NoError(t, WriteFile(path, []Record{{Ticker: "AAA", News: "AAA goes up.", Change: "Up."}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ticker,news,change\r\nAAA,AAA goes up.,Up.\r\n", string(data))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := WriteFile(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "create", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
}

func TestWriteFileLeavesNoTempFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	// Renaming a file over a directory fails after the rows are written.
	target := filepath.Join(dir, "out.csv")
	require.NoError(t, os.Mkdir(target, 0o755))

	err := WriteFile(target, []Record{{Ticker: "AAA", News: "AAA goes up.", Change: "Up."}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "rename")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.csv", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "missing header row"},
		{"wrong header", "symbol,news,change\nAAA,a.,b.\n", "unexpected header"},
		{"short row", "ticker,news,change\nAAA,AAA goes up.\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
