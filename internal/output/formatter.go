package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formatter is the interface for rendering command results in different
// formats.
type Formatter interface {
	// Format renders a value as a string.
	Format(v any) (string, error)

	// FormatToWriter writes the rendered value directly to a writer.
	FormatToWriter(w io.Writer, v any) error
}

// Texter lets a result type provide its own human-readable rendering.
// The text formatter calls Text when a value implements it and falls back
// to YAML otherwise, which is already readable for ad-hoc values.
type Texter interface {
	Text(w io.Writer) error
}

// TextFormatter renders results for humans at a terminal.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format renders a value as text.
func (f *TextFormatter) Format(v any) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes the text rendering to a writer.
func (f *TextFormatter) FormatToWriter(w io.Writer, v any) error {
	switch val := v.(type) {
	case Texter:
		return val.Text(w)
	case string:
		_, err := fmt.Fprintln(w, val)
		return err
	default:
		return NewYAMLFormatter().FormatToWriter(w, v)
	}
}

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders a value as JSON.
func (f *JSONFormatter) Format(v any) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes JSON output to a writer.
func (f *JSONFormatter) FormatToWriter(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// YAMLFormatter renders results as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format renders a value as YAML.
func (f *YAMLFormatter) Format(v any) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes YAML output to a writer.
func (f *YAMLFormatter) FormatToWriter(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(v)
}

// GetFormatter returns a formatter for the specified format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
