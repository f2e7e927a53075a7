package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the default human-readable table output
	FormatText Format = "text"

	// FormatJSON is the JSON output format
	FormatJSON Format = "json"

	// FormatYAML is the YAML output format
	FormatYAML Format = "yaml"
)

// DefaultFormat is the output format when none is specified.
const DefaultFormat = FormatText

// ParseFormat parses a format string into a Format value.
// Accepts: "text", "json", "yaml" (case-insensitive)
// Returns an error for invalid format values.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected text, json, or yaml)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ValidateFormat checks if a format value is valid.
func ValidateFormat(f Format) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}
