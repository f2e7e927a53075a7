package tools

import (
	"encoding/json"

	"github.com/anthropics/og/internal/model"
)

// compactSkip lists the fields stripped from every tool response: the
// temporal bookkeeping, the version counter, and the metadata bag.
// Exports keep full fidelity; only the tool surface is compacted.
var compactSkip = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"valid_from":  true,
	"valid_until": true,
	"version":     true,
	"metadata":    true,
}

// Compact serialises an entity for a tool response, dropping the skip set
// plus every null, empty-string, empty-list, and empty-object field.
func Compact(e model.Entity) (map[string]any, error) {
	raw, err := model.MarshalEntity(e)
	if err != nil {
		return nil, err
	}
	return compactRaw(raw, e.Common().ID)
}

// CompactRelationship serialises a relationship the same way.
func CompactRelationship(rel *model.Relationship) (map[string]any, error) {
	raw, err := json.Marshal(rel)
	if err != nil {
		return nil, model.Internalf("encode relationship %q: %v", rel.ID, err)
	}
	return compactRaw(raw, rel.ID)
}

func compactRaw(raw []byte, id string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, model.Internalf("decode %q for compaction: %v", id, err)
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if compactSkip[k] || emptyValue(v) {
			continue
		}
		out[k] = v
	}
	return out, nil
}

func emptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

// CompactList applies Compact to a slice of entities.
func CompactList(entities []model.Entity) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(entities))
	for _, e := range entities {
		c, err := Compact(e)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
