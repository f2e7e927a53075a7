package output

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestGetFormatterText tests that GetFormatter returns a text formatter
func TestGetFormatterText(t *testing.T) {
	formatter, err := GetFormatter(FormatText)
	if err != nil {
		t.Fatalf("GetFormatter(FormatText) failed: %v", err)
	}

	_, ok := formatter.(*TextFormatter)
	if !ok {
		t.Errorf("expected *TextFormatter, got %T", formatter)
	}
}

// TestGetFormatterJSON tests that GetFormatter returns a JSON formatter
func TestGetFormatterJSON(t *testing.T) {
	formatter, err := GetFormatter(FormatJSON)
	if err != nil {
		t.Fatalf("GetFormatter(FormatJSON) failed: %v", err)
	}

	_, ok := formatter.(*JSONFormatter)
	if !ok {
		t.Errorf("expected *JSONFormatter, got %T", formatter)
	}
}

// TestGetFormatterYAML tests that GetFormatter returns a YAML formatter
func TestGetFormatterYAML(t *testing.T) {
	formatter, err := GetFormatter(FormatYAML)
	if err != nil {
		t.Fatalf("GetFormatter(FormatYAML) failed: %v", err)
	}

	_, ok := formatter.(*YAMLFormatter)
	if !ok {
		t.Errorf("expected *YAMLFormatter, got %T", formatter)
	}
}

// TestGetFormatterInvalid tests that GetFormatter returns error for invalid format
func TestGetFormatterInvalid(t *testing.T) {
	_, err := GetFormatter(Format("invalid"))
	if err == nil {
		t.Error("GetFormatter should return error for invalid format")
	}
}

// TestFormatString tests the String() method
func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatText, "text"},
		{FormatJSON, "json"},
		{FormatYAML, "yaml"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format(%s).String() = %s, want %s", tt.format, got, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"YAML", FormatYAML, false},
		{"  text  ", FormatText, false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatText, true},
		{FormatJSON, true},
		{FormatYAML, true},
		{Format("csv"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		if got := ValidateFormat(tt.format); got != tt.valid {
			t.Errorf("ValidateFormat(%q) = %v, want %v", tt.format, got, tt.valid)
		}
	}
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	stats := &StatsOutput{
		Backend:            "memory",
		TotalEntities:      274,
		TotalRelationships: 655,
		EntityTypeCounts:   map[string]int{"person": 100, "system": 25},
		Density:            0.0087,
		WeakComponents:     1,
		IsWeaklyConnected:  true,
	}

	out, err := NewJSONFormatter().Format(stats)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded StatsOutput
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.TotalEntities != 274 {
		t.Errorf("total_entities = %d, want 274", decoded.TotalEntities)
	}
	if decoded.EntityTypeCounts["person"] != 100 {
		t.Errorf("entity_type_counts[person] = %d, want 100", decoded.EntityTypeCounts["person"])
	}
}

func TestYAMLFormatter_RoundTrip(t *testing.T) {
	gen := &GenerationOutput{
		Seed:          42,
		TargetSize:    100,
		Entities:      274,
		Relationships: 655,
		Quality:       0.97,
		Elapsed:       "148ms",
	}

	out, err := NewYAMLFormatter().Format(gen)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded GenerationOutput
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Seed != 42 {
		t.Errorf("seed = %d, want 42", decoded.Seed)
	}
	if decoded.Quality != 0.97 {
		t.Errorf("quality = %v, want 0.97", decoded.Quality)
	}
}

func TestTextFormatter_UsesTexter(t *testing.T) {
	gen := &GenerationOutput{
		Seed:          42,
		TargetSize:    100,
		Entities:      274,
		Relationships: 655,
		Quality:       0.97,
		Elapsed:       "148ms",
	}

	out, err := NewTextFormatter().Format(gen)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "entities:") || !strings.Contains(out, "274") {
		t.Errorf("text output missing entity count:\n%s", out)
	}
	if strings.Contains(out, "{") {
		t.Errorf("text output looks like JSON:\n%s", out)
	}
}

func TestTextFormatter_FallsBackToYAML(t *testing.T) {
	value := map[string]int{"alpha": 1}

	out, err := NewTextFormatter().Format(value)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "alpha: 1") {
		t.Errorf("fallback output = %q, want YAML rendering", out)
	}
}

func TestTextFormatter_PlainString(t *testing.T) {
	out, err := NewTextFormatter().Format("graph written to org.json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if out != "graph written to org.json\n" {
		t.Errorf("string output = %q", out)
	}
}
