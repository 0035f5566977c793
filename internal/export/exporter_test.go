package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 14, 5, 9, 0, time.FixedZone("NPT", 5*3600+45*60))

func testSheets() []Sheet {
	return []Sheet{
		{Name: "Enrollment Levels", Rows: []Row{{{Key: "Course Name", Value: "MBA"}, {Key: "Count", Value: 6}}}},
		{Name: "Enrollment Sources", Rows: []Row{{{Key: "Source Name", Value: "WALKIN"}}}},
	}
}

type failingSink struct{ err error }

func (s failingSink) Save(ctx context.Context, name string, r io.Reader) error { return s.err }

func TestFileName(t *testing.T) {
	assert.Equal(t, "student-enrollment-report-2026-10-19T08-20-09.xlsx", FileName("student-enrollment-report", fixedNow, "xlsx"))
	assert.Equal(t, "r-2026-01-02T03-04-05.csv", FileName("r", time.Date(2026, 1, 2, 3, 4, 5, 999, time.UTC), "csv"))
}

func TestExportToDir(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Sink: DirSink{Dir: filepath.Join(dir, "out")}, Now: func() time.Time { return fixedNow }}

	name, err := e.Export(context.Background(), "student-enrollment-report", testSheets())
	require.NoError(t, err)
	assert.Equal(t, "student-enrollment-report-2026-10-19T08-20-09.xlsx", name)

	b, err := os.ReadFile(filepath.Join(dir, "out", name))
	require.NoError(t, err)
	f := readBack(t, b)
	assert.Equal(t, []string{"Enrollment Levels", "Enrollment Sources"}, f.GetSheetList())

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.NotEmpty(t, props.Identifier)
	assert.Equal(t, "student-enrollment-report", props.Title)

	// same second, same name: the sink refuses to overwrite
	_, err = e.Export(context.Background(), "student-enrollment-report", testSheets())
	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "save", exportErr.Op)
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestExportDefaultBaseName(t *testing.T) {
	e := &Exporter{Sink: DirSink{Dir: t.TempDir()}, Now: func() time.Time { return fixedNow }}
	name, err := e.Export(context.Background(), "  ", testSheets())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, DefaultBaseName+"-"))
}

func TestExportSurfacesSinkFailure(t *testing.T) {
	sinkErr := errors.New("download blocked")
	e := &Exporter{Sink: failingSink{err: sinkErr}, Now: func() time.Time { return fixedNow }}

	_, err := e.Export(context.Background(), "report", testSheets())
	require.Error(t, err)

	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "save", exportErr.Op)
	assert.Equal(t, "report-2026-10-19T08-20-09.xlsx", exportErr.File)
	assert.ErrorIs(t, err, sinkErr)
}

func TestExportWriteFailure(t *testing.T) {
	e := &Exporter{Sink: DirSink{Dir: t.TempDir()}}

	_, err := e.Export(context.Background(), "report", nil)
	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "write", exportErr.Op)
	assert.ErrorIs(t, err, ErrNoSheets)
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Sink: DirSink{Dir: dir}, Now: func() time.Time { return fixedNow }}

	names, err := e.ExportCSV(context.Background(), "report", testSheets())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"report-enrollment-levels-2026-10-19T08-20-09.csv",
		"report-enrollment-sources-2026-10-19T08-20-09.csv",
	}, names)

	b, err := os.ReadFile(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	assert.Equal(t, "Course Name,Count\r\nMBA,6\r\n", string(b))
}

func TestDirSinkHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := DirSink{Dir: t.TempDir()}.Save(ctx, "x.xlsx", strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)
}
