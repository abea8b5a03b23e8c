package main

import (
	"fmt"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit"
	"github.com/plotkit/plotkit/timeseries"
)

// Preview command flags
var (
	previewColumn  string
	previewDateCol string
	previewBins    int
)

func buildPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview <file.csv>",
		Short: "Print a terminal histogram of a CSV column",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	previewCmd.Flags().StringVarP(&previewColumn, "column", "c", "", "Column to preview (default first value column)")
	previewCmd.Flags().StringVar(&previewDateCol, "date-column", "", "Timestamp column name")
	previewCmd.Flags().IntVarP(&previewBins, "bins", "b", 15, "Number of bins")

	return previewCmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	var opts []timeseries.LoadOption
	if previewDateCol != "" {
		opts = append(opts, timeseries.WithDateColumn(previewDateCol))
	}
	opts = append(opts, timeseries.WithLogger(plotkit.DefaultLog))

	table, err := timeseries.LoadCSV(args[0], opts...)
	if err != nil {
		return err
	}

	column := previewColumn
	if column == "" {
		names := table.Names()
		if len(names) == 0 {
			return fmt.Errorf("%s has no value columns", args[0])
		}
		column = names[0]
	}
	values, err := table.Column(column)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d rows\n", column, len(values))
	hist := histogram.Hist(previewBins, values)
	return histogram.Fprint(os.Stdout, hist, histogram.Linear(40))
}
