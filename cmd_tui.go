package main

import (
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [scenario.json]",
	Short: "Watch the search advance in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}

		path := scenarioArg(args)
		sc, err := loadScenarioOrDefault(path)
		if err != nil {
			return err
		}

		return RunTUI(sc, cfg.TUI, path)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
