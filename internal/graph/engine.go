// Package graph defines the engine abstraction over the organizational
// graph and its built-in backends. Every other component (generator,
// weaver, analytics, tools, exporters) reads and writes the graph through
// the Engine interface; none of them touch a concrete backend type.
package graph

import (
	"go.uber.org/zap"

	"github.com/anthropics/og/internal/model"
)

// Direction selects which incident edges an operation considers.
type Direction string

const (
	DirectionOut  Direction = "out"
	DirectionIn   Direction = "in"
	DirectionBoth Direction = "both"
)

// ParseDirection validates a user-supplied direction string. The empty
// string defaults to both.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "":
		return DirectionBoth, nil
	case string(DirectionOut):
		return DirectionOut, nil
	case string(DirectionIn):
		return DirectionIn, nil
	case string(DirectionBoth):
		return DirectionBoth, nil
	}
	return "", model.Validationf("invalid direction %q (expected in, out, or both)", s)
}

// ListFilter narrows and pages a ListEntities call. A zero Kind matches
// every kind; a zero Limit means no limit.
type ListFilter struct {
	Kind   model.EntityType
	Offset int
	Limit  int
}

// NeighborFilter narrows a Neighbors call. Zero fields match everything.
type NeighborFilter struct {
	RelType model.RelationshipType
	Kind    model.EntityType
}

// Degree pairs an entity id with its total (in plus out) degree.
type Degree struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"`
}

// Statistics summarises the shape of the graph.
type Statistics struct {
	TotalEntities          int            `json:"total_entities"`
	TotalRelationships     int            `json:"total_relationships"`
	EntityTypeCounts       map[string]int `json:"entity_type_counts"`
	RelationshipTypeCounts map[string]int `json:"relationship_type_counts"`
	Density                float64        `json:"density"`
	IsWeaklyConnected      bool           `json:"is_weakly_connected"`
	WeakComponents         int            `json:"weakly_connected_components"`
}

// Options configures a backend constructed through the factory.
type Options struct {
	// Path is the storage location for file-backed backends. Ignored by
	// the memory backend.
	Path string
	// Strict rejects unknown entity fields when decoding stored documents.
	Strict bool
	// Logger receives backend warnings (non-convergence, slow scans).
	// Nil means no logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Engine is the single point of access to the graph. Implementations do
// not lock internally; callers own synchronisation.
//
// Mutating operations validate before writing and never leave the graph
// half-modified: bulk operations are all-or-nothing. Analytics a backend
// cannot provide return an unsupported error rather than a wrong answer.
type Engine interface {
	// Name reports the backend name as registered with the factory.
	Name() string

	// AddEntity validates e and inserts it. Fails with a validation
	// error on id collision.
	AddEntity(e model.Entity) error
	// AddEntitiesBulk inserts all entities or none. Ids may not collide
	// with the graph or with each other.
	AddEntitiesBulk(entities []model.Entity) error
	// GetEntity returns the entity with the given id.
	GetEntity(id string) (model.Entity, error)
	// UpdateEntity merges a sparse patch into the stored entity,
	// re-validates, bumps the version, and returns the updated entity.
	// The id and entity_type fields are immutable.
	UpdateEntity(id string, patch map[string]any) (model.Entity, error)
	// RemoveEntity deletes an entity and every edge touching it.
	// Reports whether the entity existed.
	RemoveEntity(id string) (bool, error)
	// ListEntities returns entities in insertion order, optionally
	// filtered by kind and paged.
	ListEntities(filter ListFilter) ([]model.Entity, error)

	// AddRelationship validates endpoint existence and the domain/range
	// rule for the relationship type, then inserts the edge.
	AddRelationship(rel *model.Relationship) error
	// AddRelationshipsBulk validates every edge before committing any.
	// A single failing item rejects the whole batch with per-item errors.
	AddRelationshipsBulk(rels []*model.Relationship) error
	// GetRelationship returns the edge with the given id.
	GetRelationship(id string) (*model.Relationship, error)
	// RemoveRelationship deletes an edge. Reports whether it existed.
	RemoveRelationship(id string) (bool, error)
	// Relationships returns the edges incident to an entity, filtered by
	// direction and optionally by type, in insertion order. An unknown
	// entity id yields an empty slice.
	Relationships(entityID string, dir Direction, relType model.RelationshipType) ([]*model.Relationship, error)

	// Neighbors returns the distinct entities adjacent to entityID in
	// the given direction, optionally restricted by relationship type
	// and neighbour kind.
	Neighbors(entityID string, dir Direction, filter NeighborFilter) ([]model.Entity, error)
	// ShortestPath returns the ids along one shortest undirected path
	// from source to target, both endpoints included. A path from an
	// entity to itself is the single-element path. Unknown endpoints and
	// unreachable targets fail with a not-found error.
	ShortestPath(sourceID, targetID string) ([]string, error)
	// BlastRadius walks outward from an entity ignoring edge direction
	// and returns entities grouped by depth. Depth zero holds the source
	// itself.
	BlastRadius(entityID string, maxDepth int) (map[int][]model.Entity, error)

	// DegreeCentrality returns deg(v)/(n-1) for every entity.
	DegreeCentrality() (map[string]float64, error)
	// BetweennessCentrality returns normalised betweenness on the
	// undirected projection. Lightweight backends may report unsupported.
	BetweennessCentrality() (map[string]float64, error)
	// PageRank returns PageRank scores with the standard damping of
	// 0.85. Lightweight backends may report unsupported.
	PageRank() (map[string]float64, error)
	// MostConnected returns the topN entities by total degree, ties
	// broken by insertion order.
	MostConnected(topN int) ([]Degree, error)

	// Statistics reports counts, density, and weak connectivity.
	Statistics() (Statistics, error)
	// Clear removes every entity and relationship.
	Clear() error
}
