package model

import "github.com/google/uuid"

// Base carries the identity, temporal, and extension fields shared by every
// entity kind. Concrete kinds embed it; kind-specific fields live on the
// concrete struct.
//
// Extra holds unknown fields routed aside on import (non-strict mode). It is
// an explicit bag: unknown keys are never mixed back into the declared field
// set, and all values are string-coerced.
type Base struct {
	ID          string            `json:"id"`
	EntityType  EntityType        `json:"entity_type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	Metadata    map[string]any    `json:"metadata"`
	CreatedAt   Time              `json:"created_at"`
	UpdatedAt   Time              `json:"updated_at"`
	ValidFrom   *Time             `json:"valid_from,omitempty"`
	ValidUntil  *Time             `json:"valid_until,omitempty"`
	Version     int               `json:"version"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// Entity is the closed union over the 30 entity kinds. Only types in this
// package satisfy it; consumers switch on Kind or read shared fields through
// Common.
type Entity interface {
	Kind() EntityType
	Common() *Base
	isEntity()
}

// Common returns the shared field block.
func (b *Base) Common() *Base { return b }

func (b *Base) isEntity() {}

// NewBase initialises the shared fields for a freshly created entity of the
// given kind: a random id, version 1, matching create/update timestamps, and
// non-nil collections.
func NewBase(kind EntityType, name, description string, tags ...string) Base {
	now := Now()
	if tags == nil {
		tags = []string{}
	}
	return Base{
		ID:          uuid.NewString(),
		EntityType:  kind,
		Name:        name,
		Description: description,
		Tags:        tags,
		Metadata:    map[string]any{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
}

// Touch records an in-place update: bumps the version and refreshes
// updated_at. Called by the engine on every successful update.
func (b *Base) Touch() {
	b.Version++
	b.UpdatedAt = Now()
}

// normalize repairs nil collections after decoding so marshalled output is
// stable ([] and {} rather than null).
func (b *Base) normalize(kind EntityType) {
	b.EntityType = kind
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Metadata == nil {
		b.Metadata = map[string]any{}
	}
	if b.Version == 0 {
		b.Version = 1
	}
}
