package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

const (
	entityShardDir       = "entities"
	relationshipShardDir = "relationships"
)

// Split writes the graph as one JSON array file per observed entity type
// and relationship type under root. Arrays are sorted by id so repeated
// splits of the same graph diff cleanly. Types with no instances produce
// no file.
func Split(eng graph.Engine, root string) (Counts, error) {
	entities, err := eng.ListEntities(graph.ListFilter{})
	if err != nil {
		return Counts{}, err
	}

	byKind := make(map[model.EntityType][]model.Entity)
	for _, e := range entities {
		byKind[e.Kind()] = append(byKind[e.Kind()], e)
	}

	byRelType := make(map[model.RelationshipType][]*model.Relationship)
	seen := make(map[string]bool)
	relCount := 0
	for _, e := range entities {
		rels, err := eng.Relationships(e.Common().ID, graph.DirectionBoth, "")
		if err != nil {
			return Counts{}, err
		}
		for _, rel := range rels {
			if seen[rel.ID] {
				continue
			}
			seen[rel.ID] = true
			byRelType[rel.RelationshipType] = append(byRelType[rel.RelationshipType], rel)
			relCount++
		}
	}

	if len(byKind) > 0 {
		if err := os.MkdirAll(filepath.Join(root, entityShardDir), 0755); err != nil {
			return Counts{}, model.Persistencef("create shard directory: %v", err)
		}
	}
	for kind, group := range byKind {
		sort.Slice(group, func(i, j int) bool { return group[i].Common().ID < group[j].Common().ID })
		raws := make([]json.RawMessage, 0, len(group))
		for _, e := range group {
			raw, err := model.MarshalEntity(e)
			if err != nil {
				return Counts{}, err
			}
			raws = append(raws, raw)
		}
		if err := writeShard(filepath.Join(root, entityShardDir, string(kind)+".json"), raws); err != nil {
			return Counts{}, err
		}
	}

	if len(byRelType) > 0 {
		if err := os.MkdirAll(filepath.Join(root, relationshipShardDir), 0755); err != nil {
			return Counts{}, model.Persistencef("create shard directory: %v", err)
		}
	}
	for rt, group := range byRelType {
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		raws := make([]json.RawMessage, 0, len(group))
		for _, rel := range group {
			raw, err := json.Marshal(rel)
			if err != nil {
				return Counts{}, model.Persistencef("marshal relationship %q: %v", rel.ID, err)
			}
			raws = append(raws, raw)
		}
		if err := writeShard(filepath.Join(root, relationshipShardDir, string(rt)+".json"), raws); err != nil {
			return Counts{}, err
		}
	}

	return Counts{Entities: len(entities), Relationships: relCount}, nil
}

func writeShard(path string, raws []json.RawMessage) error {
	data, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return model.Persistencef("marshal shard %s: %v", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return model.Persistencef("write shard %s: %v", filepath.Base(path), err)
	}
	return nil
}

// Build reads every shard file under root and concatenates their arrays
// into one document. File order is lexicographic, so the result is
// deterministic for a given tree. Cross-reference validation is the
// caller's job (Validate or Import).
func Build(root string, strict bool) (*Document, error) {
	doc := &Document{}
	var items []model.BatchItemError

	entityFiles, err := shardFiles(filepath.Join(root, entityShardDir))
	if err != nil {
		return nil, err
	}
	for _, path := range entityFiles {
		raws, err := readShard(path)
		if err != nil {
			return nil, err
		}
		for i, raw := range raws {
			e, err := model.UnmarshalEntity(raw, strict)
			if err == nil {
				err = model.ValidateEntity(e)
			}
			if err != nil {
				items = append(items, model.BatchItemError{
					Index:   i,
					Kind:    model.KindOf(err),
					Message: fmt.Sprintf("%s[%d]: %s", filepath.Base(path), i, model.AsError(err).Message),
				})
				continue
			}
			doc.Entities = append(doc.Entities, e)
		}
	}

	relFiles, err := shardFiles(filepath.Join(root, relationshipShardDir))
	if err != nil {
		return nil, err
	}
	for _, path := range relFiles {
		raws, err := readShard(path)
		if err != nil {
			return nil, err
		}
		for i, raw := range raws {
			rel := &model.Relationship{}
			err := json.Unmarshal(raw, rel)
			if err != nil {
				err = model.Validationf("malformed relationship document: %v", err)
			} else {
				err = model.ValidateRelationship(rel)
			}
			if err != nil {
				items = append(items, model.BatchItemError{
					Index:   i,
					Kind:    model.KindOf(err),
					Message: fmt.Sprintf("%s[%d]: %s", filepath.Base(path), i, model.AsError(err).Message),
				})
				continue
			}
			doc.Relationships = append(doc.Relationships, rel)
		}
	}

	if len(items) > 0 {
		return nil, model.BatchRejected(items)
	}
	return doc, nil
}

// ImportShards builds the shard tree under root and commits it into eng,
// with the same validate-everything-first contract as Import.
func ImportShards(eng graph.Engine, root string, strict bool) (Counts, error) {
	doc, err := Build(root, strict)
	if err != nil {
		return Counts{}, err
	}
	if err := Validate(doc, eng); err != nil {
		return Counts{}, err
	}
	if len(doc.Entities) > 0 {
		if err := eng.AddEntitiesBulk(doc.Entities); err != nil {
			return Counts{}, err
		}
	}
	if len(doc.Relationships) > 0 {
		if err := eng.AddRelationshipsBulk(doc.Relationships); err != nil {
			return Counts{}, err
		}
	}
	return Counts{Entities: len(doc.Entities), Relationships: len(doc.Relationships)}, nil
}

// shardFiles lists the .json files under dir in lexicographic order. A
// missing directory is an empty shard set, not an error.
func shardFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, model.Persistencef("read shard directory: %v", err)
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		out = append(out, filepath.Join(dir, entry.Name()))
	}
	return out, nil
}

func readShard(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.Persistencef("read shard %s: %v", filepath.Base(path), err)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, model.Validationf("shard %s is not a JSON array: %v", filepath.Base(path), err)
	}
	return raws, nil
}
