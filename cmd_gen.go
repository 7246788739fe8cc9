package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	genWidthFlag  int
	genHeightFlag int
	genWallsFlag  int
	genSeedFlag   int64
	genModeFlag   string
	genOutFlag    string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random solvable scenario file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genWidthFlag <= 0 || genHeightFlag <= 0 {
			return fmt.Errorf("grid size must be positive, got %dx%d", genWidthFlag, genHeightFlag)
		}
		if genWallsFlag < 0 {
			return fmt.Errorf("wall count must not be negative, got %d", genWallsFlag)
		}

		seed := genSeedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		sc := GenerateScenario(genWidthFlag, genHeightFlag, genWallsFlag, seed)
		if genModeFlag != "" {
			if _, err := ParseMode(genModeFlag); err != nil {
				return err
			}
			sc.Mode = genModeFlag
		}

		return SaveScenario(sc, genOutFlag)
	},
}

func init() {
	genCmd.Flags().IntVar(&genWidthFlag, "width", DefaultGridWidth, "grid width in cells")
	genCmd.Flags().IntVar(&genHeightFlag, "height", DefaultGridHeight, "grid height in cells")
	genCmd.Flags().IntVar(&genWallsFlag, "walls", 3, "number of random walls")
	genCmd.Flags().Int64Var(&genSeedFlag, "seed", 0, "random seed (current time when 0)")
	genCmd.Flags().StringVar(&genModeFlag, "mode", "", "search mode to record (dijkstra or astar)")
	genCmd.Flags().StringVar(&genOutFlag, "out", "scenario.json", "output file")
	rootCmd.AddCommand(genCmd)
}
