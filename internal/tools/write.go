package tools

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

func handleAddRelationship(d *Dispatcher, args Args) (any, error) {
	relType, err := args.RequiredString("relationship_type")
	if err != nil {
		return nil, err
	}
	src, err := args.RequiredString("source_id")
	if err != nil {
		return nil, err
	}
	tgt, err := args.RequiredString("target_id")
	if err != nil {
		return nil, err
	}
	weight, err := args.Float("weight", 1.0)
	if err != nil {
		return nil, err
	}
	confidence, err := args.Float("confidence", 1.0)
	if err != nil {
		return nil, err
	}
	props, err := args.Properties("properties")
	if err != nil {
		return nil, err
	}

	rel := model.NewRelationship(model.RelationshipType(relType), src, tgt)
	rel.Weight = model.Round2(weight)
	rel.Confidence = model.Round2(confidence)
	rel.Properties = props

	err = d.state.Write(func(eng graph.Engine) error {
		return eng.AddRelationship(rel)
	})
	if err != nil {
		return nil, err
	}

	c, err := CompactRelationship(rel)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"status":          "ok",
		"relationship_id": rel.ID,
		"relationship":    c,
	}, nil
}

// batchItem is the wire shape of one add_relationships_batch element.
type batchItem struct {
	RelationshipType string           `json:"relationship_type"`
	SourceID         string           `json:"source_id"`
	TargetID         string           `json:"target_id"`
	Weight           *float64         `json:"weight"`
	Confidence       *float64         `json:"confidence"`
	Properties       model.Properties `json:"properties"`
}

func handleAddRelationshipsBatch(d *Dispatcher, args Args) (any, error) {
	list, err := args.List("relationships")
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, model.Validationf("argument \"relationships\" must be a non-empty array")
	}
	if len(list) > MaxBatchSize {
		return nil, model.Validationf("too many relationships (%d), maximum is %d per batch",
			len(list), MaxBatchSize)
	}

	rels := make([]*model.Relationship, 0, len(list))
	var items []model.BatchItemError
	for i, raw := range list {
		encoded, err := json.Marshal(raw)
		if err != nil {
			items = append(items, model.BatchItemError{
				Index: i, Kind: model.ErrValidation,
				Message: fmt.Sprintf("item %d is not encodable", i),
			})
			continue
		}
		var item batchItem
		if err := json.Unmarshal(encoded, &item); err != nil {
			items = append(items, model.BatchItemError{
				Index: i, Kind: model.ErrValidation,
				Message: fmt.Sprintf("item %d: malformed relationship object", i),
			})
			continue
		}

		rel := model.NewRelationship(model.RelationshipType(item.RelationshipType),
			item.SourceID, item.TargetID)
		if item.Weight != nil {
			rel.Weight = model.Round2(*item.Weight)
		}
		if item.Confidence != nil {
			rel.Confidence = model.Round2(*item.Confidence)
		}
		if item.Properties != nil {
			rel.Properties = item.Properties
		}
		rels = append(rels, rel)
	}
	if len(items) > 0 {
		return nil, model.BatchRejected(items)
	}

	err = d.state.Write(func(eng graph.Engine) error {
		return eng.AddRelationshipsBulk(rels)
	})
	if err != nil {
		return nil, err
	}

	created := make([]map[string]any, 0, len(rels))
	for _, rel := range rels {
		c, err := CompactRelationship(rel)
		if err != nil {
			return nil, err
		}
		created = append(created, map[string]any{
			"relationship_id": rel.ID,
			"relationship":    c,
		})
	}
	return map[string]any{
		"status":        "ok",
		"committed":     len(created),
		"relationships": created,
	}, nil
}

func handleRemoveRelationship(d *Dispatcher, args Args) (any, error) {
	id, err := args.RequiredString("relationship_id")
	if err != nil {
		return nil, err
	}

	var removed map[string]any
	err = d.state.Write(func(eng graph.Engine) error {
		rel, err := eng.GetRelationship(id)
		if err != nil {
			return err
		}
		removed, err = CompactRelationship(rel)
		if err != nil {
			return err
		}
		_, err = eng.RemoveRelationship(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"status":  "ok",
		"removed": removed,
	}, nil
}
