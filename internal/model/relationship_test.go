package model

import (
	"encoding/json"
	"testing"
)

func TestNewRelationship_Defaults(t *testing.T) {
	r := NewRelationship(RelStores, "sys-1", "da-1")

	if r.ID == "" {
		t.Error("expected generated id")
	}
	if r.Weight != 1.0 || r.Confidence != 1.0 {
		t.Errorf("expected unit weight and confidence, got %v / %v", r.Weight, r.Confidence)
	}
	if r.Properties == nil {
		t.Error("properties should be non-nil")
	}
	if r.CreatedAt != r.UpdatedAt {
		t.Error("fresh edge should have matching timestamps")
	}
}

func TestProperties_UnmarshalCoercion(t *testing.T) {
	doc := `{"dependency_type":"requires","port":5432,"ratio":0.75,"critical":true,` +
		`"hops":["a","b"],"nested":{"k":1},"empty":null}`

	var p Properties
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"dependency_type", "requires"},
		{"port", "5432"},
		{"ratio", "0.75"},
		{"critical", "true"},
		{"hops", `["a","b"]`},
		{"nested", `{"k":1}`},
	}
	for _, tt := range tests {
		if p[tt.key] != tt.want {
			t.Errorf("p[%q] = %q, want %q", tt.key, p[tt.key], tt.want)
		}
	}
	if _, ok := p["empty"]; ok {
		t.Error("null property should be dropped")
	}
}

func TestRelationship_TypedAccessors(t *testing.T) {
	r := NewRelationship(RelDependsOn, "sys-1", "sys-2")
	r.Properties["dependency_type"] = "requires"

	if r.DependencyType() != "requires" {
		t.Errorf("DependencyType() = %q", r.DependencyType())
	}
	if r.ExploitMaturity() != "" {
		t.Errorf("unset accessor should return empty, got %q", r.ExploitMaturity())
	}
}

func TestRelationship_Clone(t *testing.T) {
	r := NewRelationship(RelGoverns, "pol-1", "sys-1")
	r.Properties["enforcement"] = "mandatory"

	c := r.Clone()
	c.Properties["enforcement"] = "advisory"
	c.Weight = 0.5

	if r.Properties["enforcement"] != "mandatory" {
		t.Error("clone shares properties with original")
	}
	if r.Weight != 1.0 {
		t.Error("clone shares scalar fields with original")
	}
}

func TestRelationship_JSONRoundTrip(t *testing.T) {
	r := NewRelationship(RelExploits, "ta-1", "vuln-1")
	r.Weight = 0.8
	r.Confidence = 0.72
	r.Properties["exploit_maturity"] = "weaponized"

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Relationship
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != r.ID || got.RelationshipType != r.RelationshipType {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Weight != 0.8 || got.Confidence != 0.72 {
		t.Errorf("weight/confidence mismatch: %v / %v", got.Weight, got.Confidence)
	}
	if got.Properties["exploit_maturity"] != "weaponized" {
		t.Errorf("properties mismatch: %v", got.Properties)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.123, 0.12},
		{0.125, 0.13},
		{0.999, 1.0},
		{0.7, 0.7},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
