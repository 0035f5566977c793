package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollment-dashboard/internal/domain"
)

func TestLoadBundle(t *testing.T) {
	ds, err := LoadBundle(filepath.Join("testdata", "bundle.json"))
	require.NoError(t, err)

	require.Len(t, ds.Levels, 5)
	assert.False(t, ds.Levels[0].Levels[0].Level.IsSpecified())
	assert.Equal(t, "l3", ds.Levels[2].Levels[1].Level.Tag())

	require.Len(t, ds.Sources, 3)
	assert.Equal(t, "GOOGLE_ADS", ds.Sources[2].SourceName)

	require.Len(t, ds.Telecaller, 3)
	require.Len(t, ds.Counsellor, 2)
	assert.Equal(t, domain.TypeMasters, ds.Counsellor[1].Type)
}

func TestLoadBundleBrotli(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "bundle.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "bundle.json.br")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	ds, err := LoadBundle(path)
	require.NoError(t, err)
	assert.Len(t, ds.Levels, 5)
	assert.Len(t, ds.Counsellor, 2)
}

func TestLoadFiles(t *testing.T) {
	ds, err := LoadFiles(Files{
		Levels:     filepath.Join("testdata", "levels.json"),
		Telecaller: filepath.Join("testdata", "telecaller.json"),
	})
	require.NoError(t, err)

	assert.Len(t, ds.Levels, 2)
	assert.Empty(t, ds.Sources)
	assert.Equal(t, []domain.StaffCourse{{CourseName: "X", Count: 5, Type: domain.TypeBachelors}}, ds.Telecaller)
	assert.Empty(t, ds.Counsellor)
}

func TestLoadFilesErrors(t *testing.T) {
	testCases := []struct {
		name   string
		files  Files
		errMsg string
	}{
		{"missing file", Files{Levels: filepath.Join("testdata", "nope.json")}, "no such file"},
		{"wrong type", Files{Levels: filepath.Join("testdata", "badcount.json")}, "json parse error"},
		{"negative count", Files{Counsellor: filepath.Join("testdata", "negative.json")}, "negative count"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFiles(tc.files)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
			assert.Contains(t, err.Error(), "source:")
		})
	}
}
