package main

import (
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [scenario.json]",
	Short: "Open the grid window and watch the search advance",
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

		window, err := NewWindow(sc, cfg.Window)
		if err != nil {
			return err
		}

		if path != "" {
			watcher, err := NewScenarioWatcher(path, window.QueueScenario)
			if err != nil {
				return err
			}
			defer watcher.Close()
		}

		return window.Run()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
