// Package export turns enrollment data into spreadsheet files: flat rows,
// named sheets, multi-sheet workbooks, and the sinks that receive them.
package export

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoSheets = errors.New("export: no sheets to export")

// Cell is one key/value pair of a flat row. Values must be scalars.
type Cell struct {
	Key   string
	Value any
}

// Row is an ordered, flat key to scalar mapping.
type Row []Cell

func (r Row) Get(key string) (any, bool) {
	for _, c := range r {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

func (r Row) Keys() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Key
	}
	return out
}

// Sheet is one named tab of an export.
type Sheet struct {
	Name string
	Rows []Row
	// Headers, when set, fixes the leading column order.
	Headers []string
}

// Columns is the column order of a sheet: explicit headers first, then every
// other key in the order rows first mention it. Without headers this is the
// first row's keys followed by any keys later rows add.
func Columns(s Sheet) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, h := range s.Headers {
		add(h)
	}
	for _, r := range s.Rows {
		for _, c := range r {
			add(c.Key)
		}
	}
	return out
}

const maxSheetName = 31

// checkSheets rejects what a workbook cannot hold: no sheets, blank or
// over-long names, reserved characters, and names that collide ignoring case.
func checkSheets(sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}
	seen := make(map[string]bool, len(sheets))
	for i, s := range sheets {
		name := strings.TrimSpace(s.Name)
		switch {
		case name == "":
			return fmt.Errorf("export: sheet %d: empty name", i)
		case len([]rune(s.Name)) > maxSheetName:
			return fmt.Errorf("export: sheet %q: name longer than %d characters", s.Name, maxSheetName)
		case strings.ContainsAny(s.Name, `:\/?*[]`):
			return fmt.Errorf("export: sheet %q: name contains one of : \\ / ? * [ ]", s.Name)
		case strings.HasPrefix(s.Name, "'") || strings.HasSuffix(s.Name, "'"):
			return fmt.Errorf("export: sheet %q: name starts or ends with an apostrophe", s.Name)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return fmt.Errorf("export: duplicate sheet name %q", s.Name)
		}
		seen[key] = true
	}
	return nil
}
