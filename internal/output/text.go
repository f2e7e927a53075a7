package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Text renders the generation summary as aligned key/value lines.
func (g *GenerationOutput) Text(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "seed:\t%d\n", g.Seed)
	fmt.Fprintf(tw, "target size:\t%d\n", g.TargetSize)
	fmt.Fprintf(tw, "entities:\t%d\n", g.Entities)
	fmt.Fprintf(tw, "relationships:\t%d\n", g.Relationships)
	fmt.Fprintf(tw, "quality:\t%.2f\n", g.Quality)
	fmt.Fprintf(tw, "elapsed:\t%s\n", g.Elapsed)
	if g.Path != "" {
		fmt.Fprintf(tw, "path:\t%s\n", g.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(g.Metrics) > 0 {
		fmt.Fprintln(w, "metrics:")
		mw := newTabWriter(w)
		for _, name := range sortedKeys(g.Metrics) {
			fmt.Fprintf(mw, "  %s:\t%.2f\n", name, g.Metrics[name])
		}
		if err := mw.Flush(); err != nil {
			return err
		}
	}
	if len(g.Warnings) > 0 {
		fmt.Fprintln(w, "warnings:")
		for _, warning := range g.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
	return nil
}

// Text renders statistics as counts plus per-type breakdowns, largest
// first.
func (s *StatsOutput) Text(w io.Writer) error {
	tw := newTabWriter(w)
	if s.Path != "" {
		fmt.Fprintf(tw, "path:\t%s\n", s.Path)
	}
	fmt.Fprintf(tw, "backend:\t%s\n", s.Backend)
	fmt.Fprintf(tw, "entities:\t%d\n", s.TotalEntities)
	fmt.Fprintf(tw, "relationships:\t%d\n", s.TotalRelationships)
	fmt.Fprintf(tw, "density:\t%.4f\n", s.Density)
	fmt.Fprintf(tw, "weakly connected:\t%v\n", s.IsWeaklyConnected)
	fmt.Fprintf(tw, "components:\t%d\n", s.WeakComponents)
	fmt.Fprintf(tw, "avg in-degree:\t%.2f\n", s.AvgInDegree)
	fmt.Fprintf(tw, "max in-degree:\t%d\n", s.MaxInDegree)
	fmt.Fprintf(tw, "max out-degree:\t%d\n", s.MaxOutDegree)
	fmt.Fprintf(tw, "roots:\t%d\n", s.Roots)
	fmt.Fprintf(tw, "leaves:\t%d\n", s.Leaves)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.EntityTypeCounts) > 0 {
		fmt.Fprintln(w, "entity types:")
		if err := writeCounts(w, s.EntityTypeCounts); err != nil {
			return err
		}
	}
	if len(s.RelationshipTypeCounts) > 0 {
		fmt.Fprintln(w, "relationship types:")
		if err := writeCounts(w, s.RelationshipTypeCounts); err != nil {
			return err
		}
	}
	return nil
}

// Text renders the transfer summary.
func (t *TransferOutput) Text(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "operation:\t%s\n", t.Operation)
	if t.Format != "" {
		fmt.Fprintf(tw, "format:\t%s\n", t.Format)
	}
	fmt.Fprintf(tw, "entities:\t%d\n", t.Entities)
	fmt.Fprintf(tw, "relationships:\t%d\n", t.Relationships)
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(t.Files) > 0 {
		fmt.Fprintln(w, "files:")
		for _, f := range t.Files {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	return nil
}

// Text renders the benchmark matrix as one row per size.
func (b *BenchmarkOutput) Text(w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "SIZE\tENTITIES\tRELATIONSHIPS\tGENERATE\tWEAVE\tASSESS\tEXPORT\tTOTAL\tQUALITY")
	for _, run := range b.Runs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			run.Size, run.Entities, run.Relationships,
			run.Generate, run.Weave, run.Assess, run.Export,
			run.Total, run.Quality)
	}
	return tw.Flush()
}

// writeCounts renders a name-to-count map sorted by count descending,
// name ascending on ties.
func writeCounts(w io.Writer, counts map[string]int) error {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	tw := newTabWriter(w)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s:\t%d\n", name, counts[name])
	}
	return tw.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
