// Package cmd implements the import command for og CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/output"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <source>",
	Short: "Import graph data and write a canonical graph file",
	Long: `Import reads a canonical JSON file (or a shard directory with
--shards), validates every entity and relationship against the schema,
and writes the result as a canonical graph file.

Validation is atomic: one bad record rejects the whole import. Use
--merge to layer the source on top of an existing graph, and --dry-run
to validate without writing anything.

Examples:
  og import org-data.json
  og import org-data.json --out combined.json --merge existing.json
  og import shards/ --shards --out graph.json
  og import org-data.json --dry-run --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// Command-line flags
var (
	importOut    string
	importMerge  string
	importShards bool
	importDryRun bool
	importStrict bool
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importOut, "out", "graph.json", "Output file for the canonical JSON export")
	importCmd.Flags().StringVar(&importMerge, "merge", "", "Merge into an existing graph file")
	importCmd.Flags().BoolVar(&importShards, "shards", false, "Treat source as a shard directory")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate only, write no output")
	importCmd.Flags().BoolVar(&importStrict, "strict", false, "Reject unknown entity fields")
}

// runImport implements the import command logic
func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]
	strict := cfg.Graph.Strict || importStrict

	eng, err := graph.New(cfg.Graph.Backend, graph.Options{
		Strict: strict,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	result := output.TransferOutput{
		Operation: "import",
		Format:    "canonical",
		Files:     []string{source},
	}
	if importMerge != "" {
		if _, err := export.ImportFile(eng, importMerge, strict); err != nil {
			return err
		}
		result.Operation = "merge"
		result.Files = append(result.Files, importMerge)
	}

	var counts export.Counts
	if importShards {
		result.Format = "shards"
		counts, err = export.ImportShards(eng, source, strict)
	} else {
		counts, err = export.ImportFile(eng, source, strict)
	}
	if err != nil {
		return err
	}
	result.Entities = counts.Entities
	result.Relationships = counts.Relationships

	// Merged output carries both inputs, so report the combined totals.
	if importMerge != "" {
		stats, serr := eng.Statistics()
		if serr != nil {
			return serr
		}
		result.Entities = stats.TotalEntities
		result.Relationships = stats.TotalRelationships
	}

	if importDryRun {
		return printResult(result)
	}
	if err := export.WriteFile(eng, importOut); err != nil {
		return err
	}
	result.Files = append(result.Files, importOut)
	return printResult(result)
}
