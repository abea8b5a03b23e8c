package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/core"
	"github.com/plotkit/plotkit/storage"
)

// Config command flags
var (
	configPreset string
	configOut    string
)

func buildConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and scaffold plot configurations",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print a preset's settings",
		RunE:  runConfigShow,
	}
	showCmd.Flags().StringVarP(&configPreset, "preset", "p", "default", "Preset name")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preset to a YAML file as a starting point",
		RunE:  runConfigInit,
	}
	initCmd.Flags().StringVarP(&configPreset, "preset", "p", "default", "Preset name")
	initCmd.Flags().StringVarP(&configOut, "output", "o", "plotkit.yml", "Output file path")

	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(initCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := core.Preset(configPreset)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Setting", "Value"})
	table.Append([]string{"version", cfg.Version})
	table.Append([]string{"figure size", fmt.Sprintf("%g x %g in", cfg.FigWidth, cfg.FigHeight)})
	table.Append([]string{"dpi", fmt.Sprintf("%d", cfg.DPI)})
	table.Append([]string{"title size", fmt.Sprintf("%g", cfg.TitleSize)})
	table.Append([]string{"axis label size", fmt.Sprintf("%g", cfg.AxisLabelSize)})
	table.Append([]string{"tick label size", fmt.Sprintf("%g", cfg.TickLabelSize)})
	table.Append([]string{"grid", fmt.Sprintf("%v (alpha %g, %s)", cfg.ShowGrid, cfg.GridAlpha, cfg.GridStyle)})
	table.Append([]string{"legend", fmt.Sprintf("%v (%s)", cfg.ShowLegend, cfg.LegendLocation)})
	table.Append([]string{"x scale", string(cfg.XScale)})
	table.Append([]string{"y scale", string(cfg.YScale)})
	table.Render()
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := core.Preset(configPreset)
	if err != nil {
		return err
	}
	if err := storage.SaveYAML(configOut, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s preset to %s\n", configPreset, configOut)
	return nil
}
