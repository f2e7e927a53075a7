// Package cmd implements the inspect command for og CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/metrics"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/output"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Load a graph file and print its statistics",
	Long: `Inspect loads a canonical JSON graph and prints entity and
relationship counts, per-type breakdowns, density, and connectivity.

Without an argument it falls back to GRAPH_DEFAULT_PATH and then the
configured default path. When no graph can be found the command prints
an empty summary and exits zero.

Examples:
  og inspect graph.json
  og inspect                      # default graph, if any
  og inspect graph.json --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// runInspect implements the inspect command logic
func runInspect(cmd *cobra.Command, args []string) error {
	svc := graphService()
	if len(args) > 0 {
		if _, err := svc.Load(args[0]); err != nil {
			return err
		}
	} else if err := autoLoad(svc); err != nil {
		return err
	}

	var stats graph.Statistics
	var topo metrics.GraphStats
	err := svc.Read(func(eng graph.Engine) error {
		var serr error
		if stats, serr = eng.Statistics(); serr != nil {
			return serr
		}
		adj, serr := outgoingAdjacency(eng)
		if serr != nil {
			return serr
		}
		topo = metrics.ComputeGraphStats(adj)
		return nil
	})
	// A read against nothing is not a failure: report the empty graph.
	if err != nil && model.KindOf(err) != model.ErrNoGraphLoaded {
		return err
	}

	return printResult(output.StatsOutput{
		Path:                   svc.LoadedPath(),
		Backend:                cfg.Graph.Backend,
		TotalEntities:          stats.TotalEntities,
		TotalRelationships:     stats.TotalRelationships,
		EntityTypeCounts:       stats.EntityTypeCounts,
		RelationshipTypeCounts: stats.RelationshipTypeCounts,
		Density:                stats.Density,
		IsWeaklyConnected:      stats.IsWeaklyConnected,
		WeakComponents:         stats.WeakComponents,
		AvgInDegree:            topo.AvgInDegree,
		MaxInDegree:            topo.MaxInDegree,
		MaxOutDegree:           topo.MaxOutDegree,
		Roots:                  topo.RootCount,
		Leaves:                 topo.LeafCount,
	})
}

// outgoingAdjacency flattens the engine into the directed adjacency view
// the metrics package operates on. Parallel edges are kept.
func outgoingAdjacency(eng graph.Engine) (map[string][]string, error) {
	entities, err := eng.ListEntities(graph.ListFilter{})
	if err != nil {
		return nil, err
	}
	adj := make(map[string][]string, len(entities))
	for _, e := range entities {
		id := e.Common().ID
		rels, err := eng.Relationships(id, graph.DirectionOut, "")
		if err != nil {
			return nil, err
		}
		targets := make([]string, 0, len(rels))
		for _, rel := range rels {
			targets = append(targets, rel.TargetID)
		}
		adj[id] = targets
	}
	return adj, nil
}
