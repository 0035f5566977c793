package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"enrollment-dashboard/internal/aggregate"
	"enrollment-dashboard/internal/config"
	"enrollment-dashboard/internal/dashboard"
	"enrollment-dashboard/internal/export"
	"enrollment-dashboard/internal/sftpclient"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		format string
		outDir string
		name   string
		toSFTP bool
		charts bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the enrollment report",
		Long: `Load the datasets and export the three report sheets (Enrollment Levels,
Enrollment Sources, Staff Performance) as one .xlsx workbook, or as one .csv
file per sheet with --format csv.

--charts adds the Course Breakdown and Top Course Sources chart series as
extra sheets.

Files are named {name}-{YYYY-MM-DDTHH-MM-SS}.xlsx (UTC) and written to --out,
or uploaded to the configured SFTP drop with --sftp. Existing local files are
never overwritten.

Examples:
  dashboard export --bundle enrollments.json --out reports/
  dashboard export --bundle enrollments.json --format csv
  dashboard export --bundle enrollments.json --charts
  dashboard export --bundle enrollments.json --sftp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "xlsx" && format != "csv" {
				return fmt.Errorf("unknown format %q (want xlsx or csv)", format)
			}

			ds, err := in.load()
			if err != nil {
				return err
			}
			sheets := export.DatasetSheets(ds)
			if charts {
				extra, err := dashboard.Build(ds, a.cfg.Limits, aggregate.DefaultPalette()).ChartSheets()
				if err != nil {
					return err
				}
				sheets = append(sheets, extra...)
			}

			dir := outDir
			if dir == "" {
				dir = a.cfg.OutDir
			}
			var sink export.Sink = export.DirSink{Dir: dir}
			describe := func(file string) string { return filepath.Join(dir, file) }
			if toSFTP {
				s := sftpclient.Sink{Config: sftpConfig(a.cfg)}
				sink, describe = s, s.Describe
			}

			base := name
			if base == "" {
				base = a.cfg.ReportName
			}
			ex := &export.Exporter{Sink: sink, Creator: a.cfg.Creator, Log: a.log}

			var files []string
			if format == "csv" {
				files, err = ex.ExportCSV(cmd.Context(), base, sheets)
			} else {
				var file string
				file, err = ex.Export(cmd.Context(), base, sheets)
				files = []string{file}
			}
			if err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), describe(f))
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx or csv")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "Report base file name (default from config)")
	cmd.Flags().BoolVar(&charts, "charts", false, "Add the course chart series as extra sheets")
	cmd.Flags().BoolVar(&toSFTP, "sftp", false, "Upload to the configured SFTP drop instead of writing locally")
	return cmd
}

func sftpConfig(cfg config.Config) sftpclient.Config {
	return sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		KnownHostsPath:        cfg.SFTPKnownHosts,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}
}
