package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseName is used when an export is not given a base name.
const DefaultBaseName = "enrollment-report"

const timestampLayout = "2006-01-02T15-04-05"

// FileName builds "{base}-{YYYY-MM-DDTHH-MM-SS}.{ext}" from now in UTC.
func FileName(base string, now time.Time, ext string) string {
	return fmt.Sprintf("%s-%s.%s", base, now.UTC().Format(timestampLayout), ext)
}

// Sink receives a finished export file.
type Sink interface {
	Save(ctx context.Context, name string, r io.Reader) error
}

// DirSink saves files into a local directory. Existing files are never
// overwritten.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(ctx context.Context, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Error is returned when an export cannot be produced or saved. Callers are
// expected to show it to the user.
type Error struct {
	Op   string // "write" or "save"
	File string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export: %s %s: %v", e.Op, e.File, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Exporter writes sheets to files and hands them to a Sink.
type Exporter struct {
	Sink    Sink
	Creator string
	Log     *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Export writes sheets as one .xlsx workbook and returns the file name.
func (e *Exporter) Export(ctx context.Context, base string, sheets []Sheet) (string, error) {
	now := e.now()
	name := FileName(baseOrDefault(base), now, "xlsx")
	runID := uuid.NewString()

	var buf bytes.Buffer
	err := WriteWorkbook(&buf, sheets, Properties{
		Title:      baseOrDefault(base),
		Creator:    e.Creator,
		Identifier: runID,
		Created:    now,
	})
	if err != nil {
		return "", &Error{Op: "write", File: name, Err: err}
	}
	size := buf.Len()
	if err := e.Sink.Save(ctx, name, &buf); err != nil {
		return "", &Error{Op: "save", File: name, Err: err}
	}

	e.log().Info("workbook exported", "file", name, "sheets", len(sheets), "bytes", size, "run_id", runID)
	return name, nil
}

// ExportCSV writes one CSV file per sheet and returns their names in sheet
// order. It stops at the first failure; files saved before it stay saved.
func (e *Exporter) ExportCSV(ctx context.Context, base string, sheets []Sheet) ([]string, error) {
	if err := checkSheets(sheets); err != nil {
		return nil, &Error{Op: "write", File: baseOrDefault(base), Err: err}
	}
	now := e.now()
	runID := uuid.NewString()

	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		name := FileName(baseOrDefault(base)+"-"+slug(s.Name), now, "csv")
		var buf bytes.Buffer
		if err := WriteCSV(&buf, s); err != nil {
			return names, &Error{Op: "write", File: name, Err: err}
		}
		if err := e.Sink.Save(ctx, name, &buf); err != nil {
			return names, &Error{Op: "save", File: name, Err: err}
		}
		names = append(names, name)
	}

	e.log().Info("csv exported", "files", len(names), "run_id", runID)
	return names, nil
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Exporter) log() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}

func baseOrDefault(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return DefaultBaseName
	}
	return base
}

// slug turns a sheet name into a file name fragment ("Enrollment Levels" ->
// "enrollment-levels").
func slug(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
