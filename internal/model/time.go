package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the canonical wire format for timestamps: UTC with
// millisecond resolution.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Time wraps time.Time with the canonical JSON layout. All values are UTC
// and truncated to milliseconds so marshalled timestamps round-trip exactly.
type Time struct {
	time.Time
}

// Now returns the current instant as a canonical Time.
func Now() Time {
	return NewTime(time.Now())
}

// NewTime converts t to UTC at millisecond resolution.
func NewTime(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Millisecond)}
}

// MarshalJSON emits the canonical layout.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimeLayout))
}

// UnmarshalJSON accepts the canonical layout and, for imported data, any
// RFC 3339 timestamp; values are normalised to UTC milliseconds.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parsing timestamp: %w", err)
	}
	if s == "" {
		*t = Time{}
		return nil
	}
	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parsing timestamp %q: %w", s, err)
		}
	}
	*t = NewTime(parsed)
	return nil
}
