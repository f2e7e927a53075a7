// Package cmd implements the demo command for og CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/og/internal/export"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a small graph, export it, and print a summary",
	Long: `One-command demo: generates a 100-person technology company with a
fixed seed, writes graph.json, and prints the quality summary.

Examples:
  og demo                        # graph.json in the current directory
  og demo --clean --employees 200
  og demo --graphml              # also write graph.graphml`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

// Command-line flags
var (
	demoIndustry  string
	demoEmployees int
	demoSeed      int64
	demoOut       string
	demoGraphML   bool
	demoClean     bool
)

// cleanPatterns are the demo output files --clean removes.
var cleanPatterns = []string{"graph.json", "graph.graphml"}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoIndustry, "industry", "technology", "Industry profile (technology|financial|healthcare)")
	demoCmd.Flags().IntVar(&demoEmployees, "employees", 100, "Employee count the organization is scaled to")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 42, "Random seed")
	demoCmd.Flags().StringVar(&demoOut, "out", "graph.json", "Output file for the canonical JSON export")
	demoCmd.Flags().BoolVar(&demoGraphML, "graphml", false, "Also write a GraphML export next to the JSON")
	demoCmd.Flags().BoolVar(&demoClean, "clean", false, "Remove previous demo output files first")
}

// runDemo implements the demo command logic
func runDemo(cmd *cobra.Command, args []string) error {
	if demoClean {
		for _, name := range cleanPatterns {
			if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}

	run, err := runPipeline(demoIndustry, demoEmployees, demoSeed)
	if err != nil {
		return err
	}
	if err := export.WriteFile(run.engine, demoOut); err != nil {
		return err
	}
	if demoGraphML {
		if err := export.WriteGraphML(run.engine, graphmlName(demoOut)); err != nil {
			return err
		}
	}
	return printResult(generationOutput(run, demoEmployees, demoOut))
}

// graphmlName swaps a .json suffix for .graphml, or appends it.
func graphmlName(path string) string {
	const jsonExt = ".json"
	if len(path) > len(jsonExt) && path[len(path)-len(jsonExt):] == jsonExt {
		return path[:len(path)-len(jsonExt)] + ".graphml"
	}
	return path + ".graphml"
}
