package model

import (
	"regexp"
	"strings"
)

const (
	// MaxNameLength bounds entity names.
	MaxNameLength = 255
	// MaxDescriptionLength bounds entity descriptions.
	MaxDescriptionLength = 4096
	// MaxIDLength bounds caller-supplied identifiers.
	MaxIDLength = 128
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidID reports whether id is non-empty, at most MaxIDLength runes and
// restricted to letters, digits, underscore and hyphen. Generated UUIDs
// always satisfy this.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ValidateEntity checks the structural invariants common to every entity.
func ValidateEntity(e Entity) error {
	if e == nil {
		return Validationf("entity is nil")
	}
	b := e.Common()
	if !ValidID(b.ID) {
		return Validationf("invalid entity id %q", b.ID)
	}
	if !e.Kind().Valid() {
		return Validationf("unknown entity type %q", b.EntityType)
	}
	if b.EntityType != e.Kind() {
		return Validationf("entity_type %q does not match payload kind %q", b.EntityType, e.Kind())
	}
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return Validationf("entity name must not be empty")
	}
	if len(b.Name) > MaxNameLength {
		return Validationf("entity name exceeds %d characters", MaxNameLength)
	}
	if len(b.Description) > MaxDescriptionLength {
		return Validationf("entity description exceeds %d characters", MaxDescriptionLength)
	}
	if b.Version < 1 {
		return Validationf("entity version must be >= 1, got %d", b.Version)
	}
	if !b.CreatedAt.IsZero() && !b.UpdatedAt.IsZero() && b.UpdatedAt.Before(b.CreatedAt.Time) {
		return Validationf("updated_at precedes created_at")
	}
	if b.ValidFrom != nil && b.ValidUntil != nil && b.ValidUntil.Before(b.ValidFrom.Time) {
		return Validationf("valid_until precedes valid_from")
	}
	return nil
}

// ValidateRelationship checks the structural invariants of an edge without
// consulting the kind catalog. Endpoint existence is the store's concern.
func ValidateRelationship(r *Relationship) error {
	if r == nil {
		return Validationf("relationship is nil")
	}
	if !ValidID(r.ID) {
		return Validationf("invalid relationship id %q", r.ID)
	}
	if !r.RelationshipType.Valid() {
		return SchemaViolationf("unknown relationship type %q", r.RelationshipType)
	}
	if !ValidID(r.SourceID) {
		return Validationf("invalid source_id %q", r.SourceID)
	}
	if !ValidID(r.TargetID) {
		return Validationf("invalid target_id %q", r.TargetID)
	}
	if r.Weight < 0 || r.Weight > 1 {
		return Validationf("weight %v outside [0, 1]", r.Weight)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return Validationf("confidence %v outside [0, 1]", r.Confidence)
	}
	return nil
}

// ValidateEdgeKinds enforces the domain/range rule for rt against the
// resolved endpoint kinds.
func ValidateEdgeKinds(rt RelationshipType, sourceKind, targetKind EntityType) error {
	rule, ok := RuleFor(rt)
	if !ok {
		return SchemaViolationf("unknown relationship type %q", rt)
	}
	if !rule.AllowsSource(sourceKind) {
		return SchemaViolationf("%s: source type %q not allowed (want one of %s)",
			rt, sourceKind, joinKinds(rule.Sources))
	}
	if !rule.AllowsTarget(targetKind) {
		return SchemaViolationf("%s: target type %q not allowed (want one of %s)",
			rt, targetKind, joinKinds(rule.Targets))
	}
	return nil
}

func joinKinds(kinds []EntityType) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
