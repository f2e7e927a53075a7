// Package cmd implements the export command for og CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/output"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [source]",
	Short: "Re-serialise a graph as canonical JSON, shards, or GraphML",
	Long: `Export loads a graph and writes it back out in another shape:
canonical JSON (default), a per-kind shard directory (--shards), or
GraphML for network analysis tools (--graphml).

Without a source argument it falls back to GRAPH_DEFAULT_PATH and then
the configured default path.

Examples:
  og export graph.json --out copy.json
  og export graph.json --out graph.graphml --graphml
  og export graph.json --out shards/ --shards`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

// Command-line flags
var (
	exportOut     string
	exportGraphML bool
	exportShards  bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file, or directory root with --shards")
	exportCmd.Flags().BoolVar(&exportGraphML, "graphml", false, "Write GraphML instead of canonical JSON")
	exportCmd.Flags().BoolVar(&exportShards, "shards", false, "Split into a per-kind shard directory")
	_ = exportCmd.MarkFlagRequired("out")
}

// runExport implements the export command logic
func runExport(cmd *cobra.Command, args []string) error {
	if exportGraphML && exportShards {
		return model.Validationf("choose one of --graphml, --shards")
	}

	svc := graphService()
	if len(args) > 0 {
		if _, err := svc.Load(args[0]); err != nil {
			return err
		}
	} else if err := autoLoad(svc); err != nil {
		return err
	}

	result := output.TransferOutput{
		Operation: "export",
		Format:    "canonical",
		Files:     []string{exportOut},
	}
	err := svc.Read(func(eng graph.Engine) error {
		stats, serr := eng.Statistics()
		if serr != nil {
			return serr
		}
		result.Entities = stats.TotalEntities
		result.Relationships = stats.TotalRelationships

		switch {
		case exportGraphML:
			result.Format = "graphml"
			return export.WriteGraphML(eng, exportOut)
		case exportShards:
			result.Operation = "split"
			result.Format = "shards"
			counts, serr := export.Split(eng, exportOut)
			if serr != nil {
				return serr
			}
			result.Entities = counts.Entities
			result.Relationships = counts.Relationships
			return nil
		default:
			return export.WriteFile(eng, exportOut)
		}
	})
	if err != nil {
		return err
	}
	return printResult(result)
}
