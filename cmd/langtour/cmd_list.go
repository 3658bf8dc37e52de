package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"langtour/internal/config"
	"langtour/internal/tour"
)

// listCmd prints the registered sections grouped by topic.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tour sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		color := cfg.Output.Color && !noColor

		reg := tour.DefaultRegistry(cfg)
		for _, topic := range []tour.Topic{
			tour.TopicSyntax, tour.TopicData, tour.TopicBehavior, tour.TopicConcurrency,
		} {
			sections := reg.ByTopic(topic)
			if len(sections) == 0 {
				continue
			}

			heading := string(topic)
			if color {
				heading = topicStyle.Render(heading)
			}
			fmt.Fprintln(os.Stdout, heading)

			for _, s := range sections {
				// Pad before styling so ANSI codes don't skew alignment.
				name := fmt.Sprintf("%-14s", s.Name)
				title := s.Title
				if color {
					name = nameStyle.Render(name)
					title = mutedStyle.Render(title)
				}
				fmt.Fprintf(os.Stdout, "  %s %s\n", name, title)
			}
		}
		return nil
	},
}
