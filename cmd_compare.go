package main

import (
	"github.com/spf13/cobra"
)

var (
	compareReportFlag string
	compareEpsFlag    float64
)

var compareCmd = &cobra.Command{
	Use:   "compare [scenario.json]",
	Short: "Solve the same scenario with Dijkstra and A* and compare",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}

		sc, err := loadScenarioOrDefault(scenarioArg(args))
		if err != nil {
			return err
		}

		epsilon := cfg.Solve.SimplifyEpsilon
		if compareEpsFlag >= 0 {
			epsilon = compareEpsFlag
		}

		report, err := RunCompare(sc, epsilon)
		if err != nil {
			return err
		}

		if compareReportFlag != "" {
			return SaveReport(report, compareReportFlag)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareReportFlag, "report", "", "write a JSON report to this file")
	compareCmd.Flags().Float64Var(&compareEpsFlag, "epsilon", -1, "waypoint simplification tolerance (config default when negative)")
	rootCmd.AddCommand(compareCmd)
}
