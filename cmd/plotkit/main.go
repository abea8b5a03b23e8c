package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "plotkit",
		Short:   "Chart rendering and plot configuration utilities",
		Version: "2.0.0",
	}

	rootCmd.AddCommand(buildGalleryCmd())
	rootCmd.AddCommand(buildConfigCmd())
	rootCmd.AddCommand(buildPreviewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
