package main

import (
	"os"

	"github.com/spf13/cobra"

	"langtour/internal/config"
	"langtour/internal/tour"
)

// runCmd executes selected sections, or the full tour when none are named.
var runCmd = &cobra.Command{
	Use:   "run [sections...]",
	Short: "Run tour sections",
	Long: `Runs the named sections in the order given, or every registered section
in tour order when none are named. Section names are listed by "langtour list".

Sections can also be selected via the config file or LANGTOUR_SECTIONS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTour(cmd, args)
	},
}

// runTour loads config, builds the default registry, and runs the requested
// sections against stdout.
func runTour(cmd *cobra.Command, sections []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		sections = cfg.Sections
	}

	reg := tour.DefaultRegistry(cfg)
	runner := tour.NewRunner(reg, logger,
		tour.WithHeader(sectionHeader(cfg.Output.Color)))

	return runner.Run(cmd.Context(), os.Stdout, sections...)
}
