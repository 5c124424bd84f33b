// report-export writes one report as an .xlsx workbook without going through the API.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	  go run ./cmd/report-export sales-report --from 2024-01-01 --to 2024-01-31 --out sales.xlsx
//
// Kinds: stock, sales-report, purchase-report, sales-summary, purchase-summary.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/models/reports"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "report-export",
		Usage: "export inventory reports to Excel",
	}
	for _, kind := range reports.ReportKinds {
		app.Commands = append(app.Commands, exportCommand(kind))
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func exportCommand(kind string) *cli.Command {
	return &cli.Command{
		Name:  kind,
		Usage: "export the " + kind + " report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "start date, YYYY-MM-DD (needs --to)"},
			&cli.StringFlag{Name: "to", Usage: "end date, YYYY-MM-DD (needs --from)"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file"},
		},
		Action: func(cCtx *cli.Context) error {
			dateRange, err := reports.ParseDateRange(cCtx.String("from"), cCtx.String("to"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			out := cCtx.String("out")
			if out == "" {
				out = defaultFilename(kind, time.Now())
			}

			conn, err := config.OpenDatabase(config.DatabaseDSN())
			if err != nil {
				return cli.Exit("failed to connect database: "+err.Error(), 1)
			}
			config.SetDB(conn)
			defer config.CloseDB()

			if err := reports.ExportReportFile(context.Background(), out, kind, dateRange); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
}

func defaultFilename(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", kind, now.Format("20060102"))
}
