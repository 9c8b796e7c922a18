// Package export writes a local CSV backup of a submitted record.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
)

// BOM is written first so spreadsheet tools detect UTF-8.
const BOM = "\ufeff"

// Rows returns the item/value table for r, header first. Record fields are
// written as entered.
func Rows(r record.Record, now time.Time, c labels.Catalog) [][2]string {
	var photoURL string
	if r.PhotoType == record.PhotoTypeURL {
		photoURL = r.PhotoURL
	}

	return [][2]string{
		c.CSVHeader,
		{c.CSVSubmittedAt, now.Format(c.TimestampLayout)},
		{c.CSVMapType, string(r.MapType)},
		{c.CSVArea, r.Area},
		{c.CSVPlaceName, r.PlaceName},
		{c.CSVLocation, r.LocationInfo},
		{c.CSVMemory, r.MemoryContent},
		{c.CSVPhotoURL, photoURL},
		{c.CSVSubmitter, c.DisplayName(r.Name)},
	}
}

// WriteCSV writes the BOM and every row of Rows with all cells quoted.
// Rows are separated by "\n" with no trailing newline.
func WriteCSV(w io.Writer, r record.Record, now time.Time, c labels.Catalog) error {
	var b strings.Builder
	b.WriteString(BOM)
	for i, row := range Rows(r, now, c) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(quote(row[0]))
		b.WriteByte(',')
		b.WriteString(quote(row[1]))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

// WriteFile writes the CSV for r into dir under FileName(now) and returns
// the path.
func WriteFile(dir string, r record.Record, now time.Time, c labels.Catalog) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("export: create file: %w", err)
	}
	if err := WriteCSV(f, r, now, c); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close file: %w", err)
	}
	return path, nil
}

// FileName returns the backup file name for t.
func FileName(t time.Time) string {
	return fmt.Sprintf("placemark_%d.csv", t.UnixMilli())
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
