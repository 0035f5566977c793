package cli

import (
	"context"
	"log/slog"

	"enrollment-dashboard/internal/config"
	"enrollment-dashboard/internal/logging"

	"github.com/spf13/cobra"
)

// app is what every subcommand shares once the root has loaded config.
type app struct {
	cfg config.Config
	log *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Enrollment dashboard views and spreadsheet exports",
		Long: `Turn enrollment statistics (by level, by lead source and by staff role)
into dashboard views and a multi-sheet report.

Input is the JSON the enrollment API returns, either one bundle file holding
all four datasets or one file per dataset. Files ending in .br are read as
brotli-compressed JSON.

Configuration comes from dashboard.yaml (or DASHBOARD_CONFIG), a .env file
and the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, logger
			return nil
		},
	}

	root.AddCommand(newSummaryCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
