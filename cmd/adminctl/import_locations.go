package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"autobid/internal/domain/entity"
	"autobid/internal/infra/loader"
	"autobid/internal/usecase"
	"autobid/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newImportLocationsCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-locations <file.csv>",
		Short: "Bulk-load region,province,city,barangay rows",
		Long: `Resolve every row of a region,province,city,barangay CSV onto the location
hierarchy, creating missing nodes. Failing rows are listed and do not stop the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			info, err := os.Stat(path)
			if err != nil {
				return errors.WithStack(err)
			}
			checksum, err := util.CalculateFileChecksum(path)
			if err != nil {
				return err
			}

			rows, err := loader.LoadLocationFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:     %s (%s)\n", path, util.FormatBytes(info.Size()))
			fmt.Fprintf(out, "SHA256:   %s\n", checksum)
			fmt.Fprintf(out, "Rows:     %d\n", len(rows))
			if len(rows) == 0 {
				return errors.New("no location rows found")
			}
			if dryRun {
				return nil
			}

			var locationUC usecase.LocationUsecase
			stop, err := startApp(cmd.Context(), &locationUC)
			if err != nil {
				return err
			}
			defer stop()

			start := time.Now()
			summary, err := locationUC.ImportLocations(cmd.Context(), rows)
			if err != nil {
				return err
			}
			printSummary(out, summary, time.Since(start))

			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report the file without writing")

	return cmd
}

func printSummary(out io.Writer, summary *entity.ImportSummary, elapsed time.Duration) {
	fmt.Fprintf(out, "Imported: %d\n", summary.SuccessCount)
	fmt.Fprintf(out, "Failed:   %d\n", len(summary.Errors))
	fmt.Fprintf(out, "Elapsed:  %s\n", util.FormatDuration(elapsed))
	for _, rowErr := range summary.Errors {
		fmt.Fprintf(out, "  - %s\n", rowErr)
	}
}
