package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"enrollment-dashboard/internal/aggregate"
	"enrollment-dashboard/internal/dashboard"

	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		in      inputFlags
		asJSON  bool
		sortKey string
		desc    bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print dashboard stats and the enrollment tables",
		Long: `Load the datasets and print the headline stats, level and source shares
and the enrollment-by-level and enrollment-by-source tables.

--sort orders every table that has the named column (course, level, source
or count). --json prints the whole dashboard view instead.

Examples:
  dashboard summary --bundle enrollments.json
  dashboard summary --levels levels.json --sources sources.json --sort count --desc
  dashboard summary --bundle enrollments.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := in.load()
			if err != nil {
				return err
			}

			view := dashboard.Build(ds, a.cfg.Limits, aggregate.DefaultPalette())
			a.log.Debug("dashboard built",
				"courses", view.Stats.TotalCourses,
				"sources", view.Stats.TotalSources,
				"comparison_rows", len(view.Comparison))

			if sortKey != "" {
				if err := sortTables(&view, sortKey, desc); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			return printSummary(out, view)
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the dashboard view as JSON")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort tables by column key")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	return cmd
}

// sortTables sorts each table that has the column; at least one must.
func sortTables(v *dashboard.View, key string, desc bool) error {
	found := false
	if v.LevelTable.HasColumn(key) {
		t, err := v.LevelTable.SortBy(key, desc)
		if err != nil {
			return err
		}
		v.LevelTable, found = t, true
	}
	if v.SourceTable.HasColumn(key) {
		t, err := v.SourceTable.SortBy(key, desc)
		if err != nil {
			return err
		}
		v.SourceTable, found = t, true
	}
	if !found {
		return fmt.Errorf("unknown sort column %q", key)
	}
	return nil
}

func printSummary(w io.Writer, v dashboard.View) error {
	fmt.Fprintf(w, "Total enrollments: %d\n", v.Stats.TotalEnrollments)
	fmt.Fprintf(w, "Courses:           %d\n", v.Stats.TotalCourses)
	fmt.Fprintf(w, "Lead sources:      %d\n", v.Stats.TotalSources)
	fmt.Fprintf(w, "Levels:            %s\n", captions(v.LevelPie))
	fmt.Fprintf(w, "Sources:           %s\n\n", captions(v.SourcePie))

	if err := v.LevelTable.Write(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return v.SourceTable.Write(w)
}

func captions(shares []aggregate.Share) string {
	if len(shares) == 0 {
		return "-"
	}
	parts := make([]string, len(shares))
	for i, s := range shares {
		parts[i] = s.Caption()
	}
	return strings.Join(parts, ", ")
}
