// Command dashboard prints enrollment dashboard views and exports the
// enrollment report workbook.
//
// Usage:
//
//	dashboard summary --bundle enrollments.json
//	dashboard summary --levels levels.json --sources sources.json --sort count --desc
//	dashboard export --bundle enrollments.json.br --out reports/
//	dashboard export --bundle enrollments.json --format csv --sftp
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enrollment-dashboard/cmd/dashboard/cli"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
