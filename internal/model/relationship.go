package model

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Relationship is a directed, typed edge between two entities. Multiple
// edges of different types may connect the same pair of entities.
type Relationship struct {
	ID               string            `json:"id"`
	RelationshipType RelationshipType  `json:"relationship_type"`
	SourceID         string            `json:"source_id"`
	TargetID         string            `json:"target_id"`
	Weight           float64           `json:"weight"`
	Confidence       float64           `json:"confidence"`
	Properties       Properties        `json:"properties"`
	CreatedAt        Time              `json:"created_at"`
	UpdatedAt        Time              `json:"updated_at"`
}

// NewRelationship builds an edge with a fresh id, unit weight and full
// confidence. Callers adjust weight, confidence and properties afterwards.
func NewRelationship(rt RelationshipType, sourceID, targetID string) *Relationship {
	now := Now()
	return &Relationship{
		ID:               uuid.NewString(),
		RelationshipType: rt,
		SourceID:         sourceID,
		TargetID:         targetID,
		Weight:           1.0,
		Confidence:       1.0,
		Properties:       Properties{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Touch refreshes the update timestamp.
func (r *Relationship) Touch() { r.UpdatedAt = Now() }

// Clone returns a deep copy of r.
func (r *Relationship) Clone() *Relationship {
	cp := *r
	cp.Properties = make(Properties, len(r.Properties))
	for k, v := range r.Properties {
		cp.Properties[k] = v
	}
	return &cp
}

// Properties is a string-valued bag of edge attributes. Incoming JSON
// scalars of other types are coerced to their string form; arrays and
// objects are kept as compact JSON text.
type Properties map[string]string

// UnmarshalJSON accepts any JSON object and coerces every value to a string.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Properties, len(raw))
	for k, v := range raw {
		s, ok := coerceString(v)
		if !ok {
			continue
		}
		out[k] = s
	}
	*p = out
	return nil
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

// DependencyType returns the depends_on flavour recorded on the edge, if any.
func (r *Relationship) DependencyType() string { return r.Properties["dependency_type"] }

// ExploitMaturity returns the exploit maturity recorded on threat edges.
func (r *Relationship) ExploitMaturity() string { return r.Properties["exploit_maturity"] }

// Enforcement returns the enforcement level recorded on governance edges.
func (r *Relationship) Enforcement() string { return r.Properties["enforcement"] }

// Round2 rounds v to two decimal places. Edge weights and confidences are
// stored at this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
