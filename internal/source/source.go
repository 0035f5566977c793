// Package source loads enrollment datasets from JSON files written by the
// enrollment API (or captured from it). Files ending in .br are brotli
// compressed.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"

	"enrollment-dashboard/internal/domain"
)

// Files names one input file per dataset. Any of them may be empty, which
// leaves that dataset empty.
type Files struct {
	Levels     string
	Sources    string
	Telecaller string
	Counsellor string
}

// Bundle is a single file holding all four API responses.
type Bundle struct {
	Levels     domain.Envelope[domain.CourseLevels]  `json:"levels"`
	Sources    domain.Envelope[domain.SourceCourses] `json:"sources"`
	Telecaller domain.Envelope[domain.StaffCourse]   `json:"telecaller"`
	Counsellor domain.Envelope[domain.StaffCourse]   `json:"counsellor"`
}

func (b Bundle) Dataset() domain.Dataset {
	return domain.Dataset{
		Levels:     b.Levels.Data,
		Sources:    b.Sources.Data,
		Telecaller: b.Telecaller.Data,
		Counsellor: b.Counsellor.Data,
	}
}

// LoadBundle reads and validates a bundle file.
func LoadBundle(path string) (domain.Dataset, error) {
	var b Bundle
	if err := decodeFile(path, &b); err != nil {
		return domain.Dataset{}, err
	}
	ds := b.Dataset()
	if err := ds.Validate(); err != nil {
		return domain.Dataset{}, fmt.Errorf("source: %s: %w", path, err)
	}
	return ds, nil
}

// LoadFiles reads one envelope per dataset and validates the result.
func LoadFiles(files Files) (domain.Dataset, error) {
	var ds domain.Dataset
	var err error

	if ds.Levels, err = loadEnvelope[domain.CourseLevels](files.Levels); err != nil {
		return domain.Dataset{}, err
	}
	if ds.Sources, err = loadEnvelope[domain.SourceCourses](files.Sources); err != nil {
		return domain.Dataset{}, err
	}
	if ds.Telecaller, err = loadEnvelope[domain.StaffCourse](files.Telecaller); err != nil {
		return domain.Dataset{}, err
	}
	if ds.Counsellor, err = loadEnvelope[domain.StaffCourse](files.Counsellor); err != nil {
		return domain.Dataset{}, err
	}

	if err := ds.Validate(); err != nil {
		return domain.Dataset{}, fmt.Errorf("source: %w", err)
	}
	return ds, nil
}

func loadEnvelope[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	var env domain.Envelope[T]
	if err := decodeFile(path, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func decodeFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	if err := Decode(f, strings.HasSuffix(path, ".br"), out); err != nil {
		return fmt.Errorf("source: %s: %w", path, err)
	}
	return nil
}

// Decode reads one JSON document from r, brotli-decompressing it first when
// compressed is set. Unknown fields are ignored; wrongly typed ones fail.
func Decode(r io.Reader, compressed bool, out any) error {
	if compressed {
		r = brotli.NewReader(r)
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("json parse error: %w", err)
	}
	return nil
}
