// Package csvstore reads and writes the semicolon-delimited launch tables:
// the raw chronology rows produced by the scraper and the persisted table of
// normalized records.
package csvstore

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
)

const delimiter = ';'

// Header is the column row of the persisted table.
var Header = []string{"Year", "Site", "Country", "Vehicle", "Family", "Remarks", "Success"}

// Persisted column positions read back by ReadPersisted.
const (
	colYear    = 0
	colSite    = 1
	colVehicle = 3
	colRemarks = 5
)

// Raw column positions.
const (
	rawDate = iota
	rawVehicle
	rawSite
	rawRemarks
	rawColumns
)

var ErrShortRow = errors.New("too few columns")

var yearToken = regexp.MustCompile(`\b\d{4}\b`)

// Write persists records as a header row followed by one row per record.
// Every field is double-quoted.
func Write(w io.Writer, records []domain.LaunchRecord) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			r.Site,
			string(r.Country),
			r.Vehicle,
			string(r.Family),
			r.Remarks,
			strconv.FormatBool(r.Success),
		}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(delimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// ReadPersisted reads a persisted table back as raw rows. The year column is
// returned as the date so the rows can be re-normalized in exact mode.
func ReadPersisted(r io.Reader) ([]domain.RawLaunch, error) {
	rows, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read persisted launches: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make([]domain.RawLaunch, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) <= colRemarks {
			return nil, fmt.Errorf("persisted row %d: %w: got %d", i+2, ErrShortRow, len(row))
		}
		out = append(out, domain.RawLaunch{
			Date:    row[colYear],
			Vehicle: row[colVehicle],
			Site:    row[colSite],
			Remarks: row[colRemarks],
		})
	}
	return out, nil
}

// ReadRaw reads scraped chronology rows in date;vehicle;site;remarks order.
// A leading header row is detected by "date" in its first column. Undated
// rows are dropped, as are rows whose date names a year outside
// [domain.YearMinimum, domain.YearMaximum()]. Dates without a four-digit year
// are kept and left to the normalizer.
func ReadRaw(r io.Reader) ([]domain.RawLaunch, error) {
	rows, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read raw launches: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][rawDate]), "date") {
		rows = rows[1:]
	}

	out := make([]domain.RawLaunch, 0, len(rows))
	for i, row := range rows {
		if len(row) < rawColumns {
			return nil, fmt.Errorf("raw row %d: %w: got %d", i+1, ErrShortRow, len(row))
		}
		if domain.IsUndated(row[rawDate]) || outsideWindow(row[rawDate]) {
			continue
		}
		out = append(out, domain.RawLaunch{
			Date:    row[rawDate],
			Vehicle: row[rawVehicle],
			Site:    row[rawSite],
			Remarks: row[rawRemarks],
		})
	}
	return out, nil
}

// outsideWindow reports whether a scraped date carries a year that the
// chronology pages for [YearMinimum, YearMaximum] would not contain.
func outsideWindow(date string) bool {
	token := yearToken.FindString(date)
	if token == "" {
		return false
	}
	year, err := strconv.Atoi(token)
	if err != nil {
		return false
	}
	return year < domain.YearMinimum || year > domain.YearMaximum()
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}
