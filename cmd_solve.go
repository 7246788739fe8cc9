package main

import (
	"github.com/spf13/cobra"
)

var (
	solveModeFlag   string
	solveReportFlag string
	solvePNGFlag    string
	solveEpsFlag    float64
)

var solveCmd = &cobra.Command{
	Use:   "solve [scenario.json]",
	Short: "Run the search to termination and report the result",
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

		s, err := sc.NewSearch(solveModeFlag)
		if err != nil {
			return err
		}

		epsilon := cfg.Solve.SimplifyEpsilon
		if solveEpsFlag >= 0 {
			epsilon = solveEpsFlag
		}

		report := RunSolve(s, sc, epsilon)

		if solveReportFlag != "" {
			if err := SaveReport(report, solveReportFlag); err != nil {
				return err
			}
		}
		if solvePNGFlag != "" {
			if err := ExportPNG(s.Snapshot(), cfg.Window.CellSize, cfg.Window.Gap, solvePNGFlag); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveModeFlag, "mode", "", "override the scenario mode (dijkstra or astar)")
	solveCmd.Flags().StringVar(&solveReportFlag, "report", "", "write a JSON report to this file")
	solveCmd.Flags().StringVar(&solvePNGFlag, "png", "", "export the final state as a PNG")
	solveCmd.Flags().Float64Var(&solveEpsFlag, "epsilon", -1, "waypoint simplification tolerance (config default when negative)")
	rootCmd.AddCommand(solveCmd)
}
