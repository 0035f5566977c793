package cli

import (
	"errors"

	"enrollment-dashboard/internal/domain"
	"enrollment-dashboard/internal/source"

	"github.com/spf13/cobra"
)

// inputFlags selects where datasets are read from.
type inputFlags struct {
	bundle string
	files  source.Files
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.bundle, "bundle", "", "File holding all four datasets (levels, sources, telecaller, counsellor)")
	fl.StringVar(&f.files.Levels, "levels", "", "Enrollment-by-level response file")
	fl.StringVar(&f.files.Sources, "sources", "", "Enrollment-by-source response file")
	fl.StringVar(&f.files.Telecaller, "telecaller", "", "Telecaller course totals response file")
	fl.StringVar(&f.files.Counsellor, "counsellor", "", "Counsellor course totals response file")
}

func (f *inputFlags) load() (domain.Dataset, error) {
	hasFiles := f.files != (source.Files{})
	switch {
	case f.bundle != "" && hasFiles:
		return domain.Dataset{}, errors.New("--bundle cannot be combined with --levels/--sources/--telecaller/--counsellor")
	case f.bundle != "":
		return source.LoadBundle(f.bundle)
	case hasFiles:
		return source.LoadFiles(f.files)
	}
	return domain.Dataset{}, errors.New("no input: pass --bundle or at least one of --levels, --sources, --telecaller, --counsellor")
}
