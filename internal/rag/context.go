package rag

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// DefaultMaxTokens is the context budget, approximated as four characters
// per token.
const DefaultMaxTokens = 4000

// internalFields are bookkeeping attributes that add no meaning for a
// reader of the context.
var internalFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"valid_from":  true,
	"valid_until": true,
	"version":     true,
	"metadata":    true,
}

// BuildContext renders entities and relationships as structured text.
// Entities get at most two thirds of the character budget so the
// relationship section is never starved; anything over budget is truncated
// with a marker.
func BuildContext(eng graph.Engine, entities []model.Entity, relationships []*model.Relationship, maxTokens int) (string, error) {
	if len(entities) == 0 && len(relationships) == 0 {
		return "No relevant context found in the knowledge graph.", nil
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	maxChars := maxTokens * 4

	kindSet := make(map[string]bool)
	for _, e := range entities {
		kindSet[string(e.Common().EntityType)] = true
	}
	kinds := make([]string, 0, len(kindSet))
	for k := range kindSet {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	kindList := "none"
	if len(kinds) > 0 {
		kindList = strings.Join(kinds, ", ")
	}

	var sections []string
	header := fmt.Sprintf("=== Knowledge Graph Context ===\nEntities: %d | Types: %s | Relationships: %d",
		len(entities), kindList, len(relationships))
	sections = append(sections, header)

	sectionLen := func() int {
		n := 0
		for _, s := range sections {
			n += len(s)
		}
		return n
	}

	entityParts := []string{"\n--- Entities ---"}
	for i, e := range entities {
		block, err := formatEntity(e)
		if err != nil {
			return "", err
		}
		entityParts = append(entityParts, block)

		used := sectionLen()
		for _, p := range entityParts {
			used += len(p)
		}
		if used > maxChars*2/3 && i < len(entities)-1 {
			entityParts = append(entityParts, fmt.Sprintf("  ... (%d more entities truncated)", len(entities)-1-i))
			break
		}
	}
	sections = append(sections, strings.Join(entityParts, "\n"))

	if len(relationships) > 0 {
		names := make(map[string]string, len(entities))
		for _, e := range entities {
			names[e.Common().ID] = e.Common().Name
		}
		relParts := []string{"\n--- Relationships ---"}
		for _, rel := range relationships {
			src := names[rel.SourceID]
			if src == "" {
				src = resolveName(eng, rel.SourceID)
			}
			tgt := names[rel.TargetID]
			if tgt == "" {
				tgt = resolveName(eng, rel.TargetID)
			}
			label := strings.ReplaceAll(string(rel.RelationshipType), "_", " ")
			relParts = append(relParts, fmt.Sprintf("  %s %s %s", src, label, tgt))

			used := sectionLen()
			for _, p := range relParts {
				used += len(p)
			}
			if used > maxChars {
				relParts = append(relParts, "  ... (more relationships truncated)")
				break
			}
		}
		sections = append(sections, strings.Join(relParts, "\n"))
	}

	result := strings.Join(sections, "\n\n")
	if len(result) > maxChars {
		result = result[:maxChars-3] + "..."
	}
	return result, nil
}

// formatEntity renders one entity as an indented attribute block, skipping
// bookkeeping fields and empty values.
func formatEntity(e model.Entity) (string, error) {
	raw, err := model.MarshalEntity(e)
	if err != nil {
		return "", err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", model.Internalf("decode entity %q for context: %v", e.Common().ID, err)
	}

	common := e.Common()
	lines := []string{fmt.Sprintf("  [%s] %s", strings.ToUpper(string(common.EntityType)), common.Name)}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if internalFields[k] || k == "entity_type" || k == "name" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := fields[k]
		if emptyAttr(v) {
			continue
		}
		lines = append(lines, fmt.Sprintf("    %s: %s", k, renderValue(v)))
	}
	return strings.Join(lines, "\n"), nil
}

func emptyAttr(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

func renderValue(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

func resolveName(eng graph.Engine, id string) string {
	e, err := eng.GetEntity(id)
	if err != nil {
		return id
	}
	return e.Common().Name
}
