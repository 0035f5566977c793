package export

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Properties end up in the workbook's document properties.
type Properties struct {
	Title      string
	Creator    string
	Identifier string
	Created    time.Time
}

const (
	minColWidth = 10
	maxColWidth = 60
)

// WriteWorkbook writes an .xlsx workbook with one tab per sheet, in order.
// Each tab gets a bold header row followed by one line per input row.
func WriteWorkbook(w io.Writer, sheets []Sheet, props Properties) error {
	if err := checkSheets(sheets); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), s.Name)
		} else {
			_, err = f.NewSheet(s.Name)
		}
		if err != nil {
			return fmt.Errorf("export: sheet %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("export: sheet %q: %w", s.Name, err)
		}
	}
	f.SetActiveSheet(0)

	dp := &excelize.DocProperties{
		Title:      props.Title,
		Creator:    props.Creator,
		Identifier: props.Identifier,
	}
	if !props.Created.IsZero() {
		dp.Created = props.Created.UTC().Format(time.RFC3339)
	}
	if err := f.SetDocProps(dp); err != nil {
		return fmt.Errorf("export: doc props: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s Sheet, headerStyle int) error {
	cols := Columns(s)
	if len(cols) == 0 {
		return nil
	}

	widths := make([]int, len(cols))
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
		widths[i] = utf8.RuneCountInString(c)
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(s.Name, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, r := range s.Rows {
		vals := make([]any, len(cols))
		for j, key := range cols {
			v, ok := r.Get(key)
			if !ok {
				continue
			}
			sv, err := scalar(v)
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", i, key, err)
			}
			vals[j] = sv
			if n := utf8.RuneCountInString(formatScalar(sv)); n > widths[j] {
				widths[j] = n
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.Name, cell, &vals); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, col, col, float64(clamp(w+2, minColWidth, maxColWidth))); err != nil {
			return err
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
