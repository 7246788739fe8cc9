package main

import (
	"log"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dijkstra-visual",
	Short: "Watch Dijkstra and A* settle a grid one step at a time",
	Long: `dijkstra-visual runs an incremental shortest-path search over a
uniform-cost grid and pauses after every relaxation step, so the search
can be observed in a window, in the terminal, over HTTP, or headless
with a report at the end.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (defaults apply when empty)")
}

// loadScenarioOrDefault loads the scenario file, or falls back to the
// classic layout when no path is given
func loadScenarioOrDefault(path string) (*Scenario, error) {
	if path == "" {
		log.Println("ℹ️  No scenario file given, using the classic 20x20 layout")
		return DefaultScenario(), nil
	}
	return LoadScenario(path)
}

// scenarioArg returns the optional positional scenario path
func scenarioArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
