// Package export moves graphs between engines and files: canonical JSON
// for round-trip storage, per-type shards for diff-friendly sync repos,
// and GraphML for visualisation tooling.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// Document is a parsed graph file: every entity and relationship decoded
// and structurally valid, cross-references not yet checked.
type Document struct {
	Entities      []model.Entity
	Relationships []*model.Relationship
}

// Counts reports what an import brought into the engine.
type Counts struct {
	Entities      int `json:"entities"`
	Relationships int `json:"relationships"`
}

// fileDocument is the canonical on-disk shape. Statistics are written for
// human readers and recomputed on import, never trusted.
type fileDocument struct {
	Entities      []json.RawMessage `json:"entities"`
	Relationships []json.RawMessage `json:"relationships"`
	Statistics    *graph.Statistics `json:"statistics,omitempty"`
}

// Marshal renders the full graph as canonical JSON: entities and
// relationships in insertion order plus a statistics block.
func Marshal(eng graph.Engine) ([]byte, error) {
	doc := fileDocument{
		Entities:      []json.RawMessage{},
		Relationships: []json.RawMessage{},
	}

	entities, err := eng.ListEntities(graph.ListFilter{})
	if err != nil {
		return nil, err
	}
	for _, e := range entities {
		raw, err := model.MarshalEntity(e)
		if err != nil {
			return nil, err
		}
		doc.Entities = append(doc.Entities, raw)
	}

	seen := make(map[string]bool)
	for _, e := range entities {
		rels, err := eng.Relationships(e.Common().ID, graph.DirectionBoth, "")
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			if seen[rel.ID] {
				continue
			}
			seen[rel.ID] = true
			raw, err := json.Marshal(rel)
			if err != nil {
				return nil, model.Persistencef("marshal relationship %q: %v", rel.ID, err)
			}
			doc.Relationships = append(doc.Relationships, raw)
		}
	}

	stats, err := eng.Statistics()
	if err != nil {
		return nil, err
	}
	doc.Statistics = &stats

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, model.Persistencef("marshal graph document: %v", err)
	}
	return data, nil
}

// WriteFile writes the canonical JSON export to path, creating parent
// directories as needed.
func WriteFile(eng graph.Engine, path string) error {
	data, err := Marshal(eng)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return model.Persistencef("create export directory: %v", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return model.Persistencef("write graph file: %v", err)
	}
	return nil
}

// Parse decodes a canonical JSON document. Item decode failures are
// collected per index and reported together as a batch rejection; a
// malformed top-level document fails immediately.
func Parse(data []byte, strict bool) (*Document, error) {
	var file fileDocument
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, model.Validationf("malformed graph document: %v", err)
	}

	doc := &Document{}
	var items []model.BatchItemError
	for i, raw := range file.Entities {
		e, err := model.UnmarshalEntity(raw, strict)
		if err == nil {
			err = model.ValidateEntity(e)
		}
		if err != nil {
			items = append(items, model.BatchItemError{
				Index:   i,
				Kind:    model.KindOf(err),
				Message: fmt.Sprintf("entity %d: %s", i, model.AsError(err).Message),
			})
			continue
		}
		doc.Entities = append(doc.Entities, e)
	}
	for i, raw := range file.Relationships {
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
				Message: fmt.Sprintf("relationship %d: %s", i, model.AsError(err).Message),
			})
			continue
		}
		doc.Relationships = append(doc.Relationships, rel)
	}
	if len(items) > 0 {
		return nil, model.BatchRejected(items)
	}
	return doc, nil
}

// Validate runs the cross-reference checks a write tool would: unique ids
// not colliding with the engine, endpoints resolvable, and every edge
// inside its type's domain and range. Nothing is committed.
func Validate(doc *Document, eng graph.Engine) error {
	kinds := make(map[string]model.EntityType, len(doc.Entities))
	var items []model.BatchItemError
	for i, e := range doc.Entities {
		id := e.Common().ID
		if _, dup := kinds[id]; dup {
			items = append(items, model.BatchItemError{
				Index:   i,
				Kind:    model.ErrValidation,
				Message: fmt.Sprintf("entity %d: entity id %q already exists", i, id),
			})
			continue
		}
		if _, err := eng.GetEntity(id); err == nil {
			items = append(items, model.BatchItemError{
				Index:   i,
				Kind:    model.ErrValidation,
				Message: fmt.Sprintf("entity %d: entity id %q already exists", i, id),
			})
			continue
		}
		kinds[id] = e.Kind()
	}

	resolve := func(id string) (model.EntityType, bool) {
		if kind, ok := kinds[id]; ok {
			return kind, true
		}
		e, err := eng.GetEntity(id)
		if err != nil {
			return "", false
		}
		return e.Kind(), true
	}

	seenRels := make(map[string]bool, len(doc.Relationships))
	for i, rel := range doc.Relationships {
		var err error
		switch {
		case seenRels[rel.ID]:
			err = model.Validationf("relationship id %q already exists", rel.ID)
		default:
			if _, lookupErr := eng.GetRelationship(rel.ID); lookupErr == nil {
				err = model.Validationf("relationship id %q already exists", rel.ID)
			}
		}
		if err == nil {
			srcKind, ok := resolve(rel.SourceID)
			if !ok {
				err = model.NotFoundf("source entity %q not found in graph", rel.SourceID)
			} else {
				tgtKind, ok := resolve(rel.TargetID)
				if !ok {
					err = model.NotFoundf("target entity %q not found in graph", rel.TargetID)
				} else {
					err = model.ValidateEdgeKinds(rel.RelationshipType, srcKind, tgtKind)
				}
			}
		}
		if err != nil {
			items = append(items, model.BatchItemError{
				Index:   i,
				Kind:    model.KindOf(err),
				Message: fmt.Sprintf("relationship %d: %s", i, model.AsError(err).Message),
			})
			continue
		}
		seenRels[rel.ID] = true
	}

	if len(items) > 0 {
		return model.BatchRejected(items)
	}
	return nil
}

// Import parses, validates, and commits a canonical JSON document into
// eng. Validation runs completely before the first write; a failing
// document leaves the engine untouched.
func Import(eng graph.Engine, data []byte, strict bool) (Counts, error) {
	doc, err := Parse(data, strict)
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

// ImportFile reads path and imports its contents into eng.
func ImportFile(eng graph.Engine, path string, strict bool) (Counts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Counts{}, model.Persistencef("read graph file: %v", err)
	}
	return Import(eng, data, strict)
}
