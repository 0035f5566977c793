// Package table describes sortable tabular views: typed columns with an
// optional per-column render function, and rows of any record type.
package table

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Column describes one column over rows of type R.
type Column[R any] struct {
	Key      string
	Label    string
	Sortable bool

	// Render turns the row's value for this column into display text.
	Render func(row R) string
	// Compare orders two rows by this column. Required when Sortable.
	Compare func(a, b R) int
}

// Text builds a sortable string column. Sorting ignores case.
func Text[R any](key, label string, get func(R) string) Column[R] {
	return Column[R]{
		Key:      key,
		Label:    label,
		Sortable: true,
		Render:   get,
		Compare: func(a, b R) int {
			return cmp.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		},
	}
}

// Int builds a sortable numeric column.
func Int[R any](key, label string, get func(R) int) Column[R] {
	return Column[R]{
		Key:      key,
		Label:    label,
		Sortable: true,
		Render:   func(r R) string { return strconv.Itoa(get(r)) },
		Compare:  func(a, b R) int { return cmp.Compare(get(a), get(b)) },
	}
}

// WithRender returns a copy of c that displays values through render.
func (c Column[R]) WithRender(render func(R) string) Column[R] {
	c.Render = render
	return c
}

// Table is an ordered row list plus its column descriptors.
type Table[R any] struct {
	Title   string
	Columns []Column[R]
	Rows    []R
}

func (t Table[R]) column(key string) (Column[R], bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

func (t Table[R]) HasColumn(key string) bool {
	_, ok := t.column(key)
	return ok
}

// SortBy returns a copy of t with rows stably ordered by the given column.
func (t Table[R]) SortBy(key string, desc bool) (Table[R], error) {
	c, ok := t.column(key)
	if !ok {
		return t, fmt.Errorf("table %q: unknown column %q", t.Title, key)
	}
	if !c.Sortable || c.Compare == nil {
		return t, fmt.Errorf("table %q: column %q is not sortable", t.Title, key)
	}

	out := t
	out.Rows = slices.Clone(t.Rows)
	slices.SortStableFunc(out.Rows, func(a, b R) int {
		if desc {
			return c.Compare(b, a)
		}
		return c.Compare(a, b)
	})
	return out, nil
}

func (t Table[R]) Header() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Label
	}
	return out
}

// Cells renders one row, column by column.
func (t Table[R]) Cells(row R) []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		if c.Render != nil {
			out[i] = c.Render(row)
		}
	}
	return out
}

// Write prints the table as aligned plain text.
func (t Table[R]) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if t.Title != "" {
		if _, err := fmt.Fprintln(tw, t.Title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw, strings.Join(t.Header(), "\t")); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(t.Cells(r), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type columnJSON struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// MarshalJSON emits the column descriptors and every row rendered to cells.
func (t Table[R]) MarshalJSON() ([]byte, error) {
	cols := make([]columnJSON, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = columnJSON{Key: c.Key, Label: c.Label, Sortable: c.Sortable && c.Compare != nil}
	}
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = t.Cells(r)
	}
	return json.Marshal(struct {
		Title   string       `json:"title,omitempty"`
		Columns []columnJSON `json:"columns"`
		Rows    [][]string   `json:"rows"`
	}{t.Title, cols, rows})
}
