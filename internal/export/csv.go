package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes a single sheet as CSV: header line, then one record per row.
func WriteCSV(w io.Writer, s Sheet) error {
	cw := csv.NewWriter(w)
	// match what spreadsheet tools emit
	cw.UseCRLF = true

	cols := Columns(s)
	if err := cw.Write(cols); err != nil {
		return err
	}

	for i, r := range s.Rows {
		rec := make([]string, len(cols))
		for j, key := range cols {
			v, ok := r.Get(key)
			if !ok {
				continue
			}
			sv, err := scalar(v)
			if err != nil {
				return fmt.Errorf("export: sheet %q row %d column %q: %w", s.Name, i, key, err)
			}
			rec[j] = cleanCell(formatScalar(sv))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// cleanCell keeps each record on one line.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
