// Package cmd implements the benchmark command for og CLI.
package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/output"
	"github.com/anthropics/og/internal/synth"
)

// benchmarkCmd represents the benchmark command
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run the generation pipeline at multiple scales",
	Long: `Benchmark drives the full synthetic pipeline at each requested
employee count and reports per-stage wall-clock timings: entity layers,
relationship weaver, quality assessment, and canonical export.

Runs always use the in-memory engine so the numbers measure the
pipeline, not a storage backend.

Examples:
  og benchmark
  og benchmark --sizes 100,1000
  og benchmark --industry healthcare --format json`,
	Args: cobra.NoArgs,
	RunE: runBenchmark,
}

// Command-line flags
var (
	benchSizes    string
	benchIndustry string
	benchSeed     int64
)

func init() {
	rootCmd.AddCommand(benchmarkCmd)

	benchmarkCmd.Flags().StringVar(&benchSizes, "sizes", "100,500,2000,14000", "Comma-separated employee counts")
	benchmarkCmd.Flags().StringVar(&benchIndustry, "industry", "technology", "Industry profile (technology|financial|healthcare)")
	benchmarkCmd.Flags().Int64Var(&benchSeed, "seed", 42, "Random seed")
}

// runBenchmark implements the benchmark command logic
func runBenchmark(cmd *cobra.Command, args []string) error {
	sizes, err := parseSizes(benchSizes)
	if err != nil {
		return err
	}
	industry, err := synth.ParseIndustry(benchIndustry)
	if err != nil {
		return err
	}

	runs := make([]output.BenchmarkRun, 0, len(sizes))
	for _, size := range sizes {
		profile, err := synth.ProfileFor(industry, size)
		if err != nil {
			return err
		}
		eng := graph.NewMemory(graph.Options{Logger: logger})

		start := time.Now()
		orch := synth.NewOrchestrator(eng, profile, benchSeed, logger)
		result, err := orch.Run()
		if err != nil {
			return err
		}

		exportStart := time.Now()
		if _, err := export.Marshal(eng); err != nil {
			return err
		}
		exportElapsed := time.Since(exportStart)
		total := time.Since(start)

		logger.Info("benchmark run complete",
			zap.Int("size", size),
			zap.Int("entities", result.TotalEntities()),
			zap.Duration("total", total))

		runs = append(runs, output.BenchmarkRun{
			Size:          size,
			Entities:      result.TotalEntities(),
			Relationships: result.Relationships,
			Generate:      benchDuration(result.Timings.Generate),
			Weave:         benchDuration(result.Timings.Weave),
			Assess:        benchDuration(result.Timings.Assess),
			Export:        benchDuration(exportElapsed),
			Total:         benchDuration(total),
			Quality:       result.Quality.OverallScore,
		})
	}
	return printResult(output.BenchmarkOutput{Runs: runs})
}

// parseSizes splits a comma-separated list of positive employee counts.
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, model.Validationf("invalid benchmark size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func benchDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
