package search

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

const (
	// MinScore is the cutoff below which fuzzy candidates are dropped.
	MinScore = 50.0
	// DefaultTopK bounds a ByName call when the caller passes no limit.
	DefaultTopK = 10
)

// Match pairs an entity with its fuzzy match score.
type Match struct {
	Entity model.Entity `json:"entity"`
	Score  float64      `json:"score"`
}

// ByName fuzzy-matches query against every entity name, optionally
// restricted to one kind. Results come back ordered by score descending,
// ties broken by insertion order, at most topK of them.
func ByName(eng graph.Engine, query string, kind model.EntityType, topK int) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, model.Validationf("search query must not be empty")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	entities, err := eng.ListEntities(graph.ListFilter{Kind: kind})
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, topK)
	for _, e := range entities {
		score := WRatio(query, e.Common().Name)
		if score < MinScore {
			continue
		}
		matches = append(matches, Match{Entity: e, Score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// ByAttribute returns the entities whose named field contains value as a
// case-insensitive substring. The field is looked up by JSON key on the
// serialized document, so any declared field works, mirror fields
// included.
func ByAttribute(eng graph.Engine, key, value string, kind model.EntityType) ([]model.Entity, error) {
	if key == "" {
		return nil, model.Validationf("attribute key must not be empty")
	}
	entities, err := eng.ListEntities(graph.ListFilter{Kind: kind})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(value)
	var out []model.Entity
	for _, e := range entities {
		doc, err := model.MarshalEntity(e)
		if err != nil {
			return nil, err
		}
		var fields map[string]any
		if err := json.Unmarshal(doc, &fields); err != nil {
			return nil, model.Persistencef("re-decode %s: %v", e.Kind(), err)
		}
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(v)), needle) {
			out = append(out, e)
		}
	}
	return out, nil
}
