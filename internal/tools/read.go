package tools

import (
	"math"
	"sort"
	"strconv"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/search"
)

func handleLoadGraph(d *Dispatcher, args Args) (any, error) {
	path, err := args.RequiredString("path")
	if err != nil {
		return nil, err
	}
	counts, err := d.state.Load(path)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"status":             "ok",
		"path":               path,
		"entity_count":       counts.Entities,
		"relationship_count": counts.Relationships,
	}, nil
}

func handleGetStatistics(d *Dispatcher, _ Args) (any, error) {
	var stats graph.Statistics
	err := d.state.Read(func(eng graph.Engine) error {
		var err error
		stats, err = eng.Statistics()
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// kindArg validates the optional entity_type argument.
func kindArg(args Args, key string) (model.EntityType, error) {
	s, err := args.String(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	kind := model.EntityType(s)
	if !kind.Valid() {
		return "", model.Validationf("unknown entity type %q", s)
	}
	return kind, nil
}

// relTypeArg validates the optional relationship_type argument.
func relTypeArg(args Args, key string) (model.RelationshipType, error) {
	s, err := args.String(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	rt := model.RelationshipType(s)
	if !rt.Valid() {
		return "", model.SchemaViolationf("unknown relationship type %q", s)
	}
	return rt, nil
}

func handleListEntities(d *Dispatcher, args Args) (any, error) {
	kind, err := kindArg(args, "entity_type")
	if err != nil {
		return nil, err
	}
	limit, err := args.Int("limit", 50)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		entities, err := eng.ListEntities(graph.ListFilter{Kind: kind, Limit: limit})
		if err != nil {
			return err
		}
		out, err = CompactList(entities)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleGetEntity(d *Dispatcher, args Args) (any, error) {
	id, err := args.RequiredString("entity_id")
	if err != nil {
		return nil, err
	}

	var out map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		e, err := eng.GetEntity(id)
		if err != nil {
			return err
		}
		out, err = Compact(e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleGetNeighbors(d *Dispatcher, args Args) (any, error) {
	id, err := args.RequiredString("entity_id")
	if err != nil {
		return nil, err
	}
	dirStr, err := args.String("direction")
	if err != nil {
		return nil, err
	}
	dir, err := graph.ParseDirection(dirStr)
	if err != nil {
		return nil, err
	}
	relType, err := relTypeArg(args, "relationship_type")
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		if _, err := eng.GetEntity(id); err != nil {
			return err
		}
		neighbors, err := eng.Neighbors(id, dir, graph.NeighborFilter{RelType: relType})
		if err != nil {
			return err
		}
		rels, err := eng.Relationships(id, dir, relType)
		if err != nil {
			return err
		}

		byOther := make(map[string][]map[string]any)
		for _, rel := range rels {
			other := rel.SourceID
			if rel.SourceID == id {
				other = rel.TargetID
			}
			c, err := CompactRelationship(rel)
			if err != nil {
				return err
			}
			byOther[other] = append(byOther[other], c)
		}

		out = make([]map[string]any, 0, len(neighbors))
		for _, nb := range neighbors {
			c, err := Compact(nb)
			if err != nil {
				return err
			}
			entry := map[string]any{
				"entity":        c,
				"relationships": byOther[nb.Common().ID],
			}
			out = append(out, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleFindShortestPath(d *Dispatcher, args Args) (any, error) {
	src, err := args.RequiredString("source_id")
	if err != nil {
		return nil, err
	}
	tgt, err := args.RequiredString("target_id")
	if err != nil {
		return nil, err
	}

	var out map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		ids, err := eng.ShortestPath(src, tgt)
		if err != nil {
			return err
		}
		path := make([]map[string]any, 0, len(ids))
		for _, id := range ids {
			e, err := eng.GetEntity(id)
			if err != nil {
				return err
			}
			c, err := Compact(e)
			if err != nil {
				return err
			}
			path = append(path, c)
		}
		out = map[string]any{
			"path_length": len(ids) - 1,
			"path":        path,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleGetBlastRadius(d *Dispatcher, args Args) (any, error) {
	id, err := args.RequiredString("entity_id")
	if err != nil {
		return nil, err
	}
	maxDepth, err := args.Int("max_depth", 3)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		layers, err := eng.BlastRadius(id, maxDepth)
		if err != nil {
			return err
		}
		depths := make([]int, 0, len(layers))
		for depth := range layers {
			if depth == 0 {
				continue
			}
			depths = append(depths, depth)
		}
		sort.Ints(depths)

		byDepth := make(map[string][]map[string]any, len(depths))
		total := 0
		for _, depth := range depths {
			compacted, err := CompactList(layers[depth])
			if err != nil {
				return err
			}
			byDepth[strconv.Itoa(depth)] = compacted
			total += len(compacted)
		}
		out = map[string]any{
			"entity_id":      id,
			"max_depth":      maxDepth,
			"total_affected": total,
			"by_depth":       byDepth,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleComputeCentrality(d *Dispatcher, args Args) (any, error) {
	metric, err := args.String("metric")
	if err != nil {
		return nil, err
	}
	if metric == "" {
		metric = "degree"
	}
	topN, err := args.Int("top_n", 20)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		var scores map[string]float64
		var err error
		switch metric {
		case "degree":
			scores, err = eng.DegreeCentrality()
		case "betweenness":
			scores, err = eng.BetweennessCentrality()
		case "pagerank":
			scores, err = eng.PageRank()
		default:
			return model.Validationf("unknown metric %q (expected degree, betweenness, or pagerank)", metric)
		}
		if err != nil {
			return err
		}

		entities, err := eng.ListEntities(graph.ListFilter{})
		if err != nil {
			return err
		}
		ranked := make([]model.Entity, len(entities))
		copy(ranked, entities)
		sort.SliceStable(ranked, func(i, j int) bool {
			return scores[ranked[i].Common().ID] > scores[ranked[j].Common().ID]
		})
		if topN > 0 && topN < len(ranked) {
			ranked = ranked[:topN]
		}

		out = make([]map[string]any, 0, len(ranked))
		for _, e := range ranked {
			id := e.Common().ID
			out = append(out, map[string]any{
				"id":          id,
				"name":        e.Common().Name,
				"entity_type": string(e.Kind()),
				"score":       math.Round(scores[id]*1e6) / 1e6,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleFindMostConnected(d *Dispatcher, args Args) (any, error) {
	topN, err := args.Int("top_n", 10)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		ranked, err := eng.MostConnected(topN)
		if err != nil {
			return err
		}
		out = make([]map[string]any, 0, len(ranked))
		for _, deg := range ranked {
			e, err := eng.GetEntity(deg.ID)
			if err != nil {
				return err
			}
			out = append(out, map[string]any{
				"id":          deg.ID,
				"name":        e.Common().Name,
				"entity_type": string(e.Kind()),
				"degree":      deg.Degree,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func handleSearchEntities(d *Dispatcher, args Args) (any, error) {
	query, err := args.RequiredString("query")
	if err != nil {
		return nil, err
	}
	kind, err := kindArg(args, "entity_type")
	if err != nil {
		return nil, err
	}
	limit, err := args.Int("limit", search.DefaultTopK)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	err = d.state.Read(func(eng graph.Engine) error {
		matches, err := search.ByName(eng, query, kind, limit)
		if err != nil {
			return err
		}
		out = make([]map[string]any, 0, len(matches))
		for _, m := range matches {
			c, err := Compact(m.Entity)
			if err != nil {
				return err
			}
			c["match_score"] = math.Round(m.Score*10) / 10
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
