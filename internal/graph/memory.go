package graph

import (
	"go.uber.org/zap"

	"github.com/anthropics/og/internal/metrics"
	"github.com/anthropics/og/internal/model"
)

// BackendMemory names the default in-process backend.
const BackendMemory = "memory"

// Memory is a directed multigraph held entirely in process memory.
// Entities and relationships keep insertion order; per-kind and
// per-relationship-type inverted indexes give O(1) id lookup and
// O(degree) neighbour enumeration.
type Memory struct {
	strict bool
	log    *zap.Logger

	entities map[string]model.Entity
	order    []string

	rels     map[string]*model.Relationship
	relOrder []string

	out map[string][]string // entity id → outgoing edge ids
	in  map[string][]string // entity id → incoming edge ids

	byKind    map[model.EntityType][]string
	byRelType map[model.RelationshipType][]string
}

// NewMemory returns an empty memory backend.
func NewMemory(opts Options) *Memory {
	m := &Memory{strict: opts.Strict, log: opts.logger()}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.entities = make(map[string]model.Entity)
	m.order = nil
	m.rels = make(map[string]*model.Relationship)
	m.relOrder = nil
	m.out = make(map[string][]string)
	m.in = make(map[string][]string)
	m.byKind = make(map[model.EntityType][]string)
	m.byRelType = make(map[model.RelationshipType][]string)
}

// Name reports the backend name.
func (m *Memory) Name() string { return BackendMemory }

// AddEntity validates e and inserts it.
func (m *Memory) AddEntity(e model.Entity) error {
	if err := model.ValidateEntity(e); err != nil {
		return err
	}
	id := e.Common().ID
	if _, exists := m.entities[id]; exists {
		return model.Validationf("entity id %q already exists", id)
	}
	m.insertEntity(e)
	return nil
}

// AddEntitiesBulk inserts all entities or none. Every entity is validated
// before the first insert; failures are reported per index.
func (m *Memory) AddEntitiesBulk(entities []model.Entity) error {
	seen := make(map[string]bool, len(entities))
	var items []model.BatchItemError
	for i, e := range entities {
		err := model.ValidateEntity(e)
		if err == nil {
			id := e.Common().ID
			if _, exists := m.entities[id]; exists || seen[id] {
				err = model.Validationf("entity id %q already exists", id)
			} else {
				seen[id] = true
			}
		}
		if err != nil {
			items = append(items, model.BatchItemError{
				Index:   i,
				Kind:    model.KindOf(err),
				Message: model.AsError(err).Message,
			})
		}
	}
	if len(items) > 0 {
		return model.BatchRejected(items)
	}
	for _, e := range entities {
		m.insertEntity(e)
	}
	return nil
}

func (m *Memory) insertEntity(e model.Entity) {
	id := e.Common().ID
	m.entities[id] = e
	m.order = append(m.order, id)
	kind := e.Kind()
	m.byKind[kind] = append(m.byKind[kind], id)
}

// GetEntity returns the entity with the given id.
func (m *Memory) GetEntity(id string) (model.Entity, error) {
	e, ok := m.entities[id]
	if !ok {
		return nil, model.NotFoundf("entity %q not found", id)
	}
	return e, nil
}

// UpdateEntity merges patch into a copy of the stored entity, validates
// the result, bumps the version, and writes it back. The stored entity is
// untouched when any step fails.
func (m *Memory) UpdateEntity(id string, patch map[string]any) (model.Entity, error) {
	current, ok := m.entities[id]
	if !ok {
		return nil, model.NotFoundf("entity %q not found", id)
	}
	updated, err := model.ApplyPatch(current, patch, m.strict)
	if err != nil {
		return nil, err
	}
	if err := model.ValidateEntity(updated); err != nil {
		return nil, err
	}
	updated.Common().Touch()
	m.entities[id] = updated
	return updated, nil
}

// RemoveEntity deletes an entity and cascades to every incident edge.
func (m *Memory) RemoveEntity(id string) (bool, error) {
	e, ok := m.entities[id]
	if !ok {
		return false, nil
	}
	incident := append(append([]string(nil), m.out[id]...), m.in[id]...)
	for _, relID := range incident {
		m.deleteRelationship(relID)
	}
	delete(m.entities, id)
	delete(m.out, id)
	delete(m.in, id)
	m.order = removeID(m.order, id)
	m.byKind[e.Kind()] = removeID(m.byKind[e.Kind()], id)
	return true, nil
}

// ListEntities returns entities in insertion order.
func (m *Memory) ListEntities(filter ListFilter) ([]model.Entity, error) {
	ids := m.order
	if filter.Kind != "" {
		ids = m.byKind[filter.Kind]
	}
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > len(ids) {
		start = len(ids)
	}
	end := len(ids)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	out := make([]model.Entity, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, m.entities[id])
	}
	return out, nil
}

// AddRelationship validates endpoint existence and the domain/range rule,
// then inserts the edge.
func (m *Memory) AddRelationship(rel *model.Relationship) error {
	if err := m.checkRelationship(rel); err != nil {
		return err
	}
	m.insertRelationship(rel)
	return nil
}

// AddRelationshipsBulk validates every edge before committing any.
func (m *Memory) AddRelationshipsBulk(rels []*model.Relationship) error {
	seen := make(map[string]bool, len(rels))
	var items []model.BatchItemError
	for i, rel := range rels {
		err := m.checkRelationship(rel)
		if err == nil {
			if seen[rel.ID] {
				err = model.Validationf("relationship id %q already exists", rel.ID)
			} else {
				seen[rel.ID] = true
			}
		}
		if err != nil {
			items = append(items, model.BatchItemError{
				Index:   i,
				Kind:    model.KindOf(err),
				Message: model.AsError(err).Message,
			})
		}
	}
	if len(items) > 0 {
		return model.BatchRejected(items)
	}
	for _, rel := range rels {
		m.insertRelationship(rel)
	}
	return nil
}

// checkRelationship runs structural validation, id collision, endpoint
// existence, and the domain/range rule, in that order.
func (m *Memory) checkRelationship(rel *model.Relationship) error {
	if err := model.ValidateRelationship(rel); err != nil {
		return err
	}
	if _, exists := m.rels[rel.ID]; exists {
		return model.Validationf("relationship id %q already exists", rel.ID)
	}
	src, ok := m.entities[rel.SourceID]
	if !ok {
		return model.NotFoundf("source entity %q not found in graph", rel.SourceID)
	}
	tgt, ok := m.entities[rel.TargetID]
	if !ok {
		return model.NotFoundf("target entity %q not found in graph", rel.TargetID)
	}
	return model.ValidateEdgeKinds(rel.RelationshipType, src.Kind(), tgt.Kind())
}

func (m *Memory) insertRelationship(rel *model.Relationship) {
	m.rels[rel.ID] = rel
	m.relOrder = append(m.relOrder, rel.ID)
	m.out[rel.SourceID] = append(m.out[rel.SourceID], rel.ID)
	m.in[rel.TargetID] = append(m.in[rel.TargetID], rel.ID)
	m.byRelType[rel.RelationshipType] = append(m.byRelType[rel.RelationshipType], rel.ID)
}

// GetRelationship returns the edge with the given id.
func (m *Memory) GetRelationship(id string) (*model.Relationship, error) {
	rel, ok := m.rels[id]
	if !ok {
		return nil, model.NotFoundf("relationship %q not found", id)
	}
	return rel, nil
}

// RemoveRelationship deletes an edge.
func (m *Memory) RemoveRelationship(id string) (bool, error) {
	if _, ok := m.rels[id]; !ok {
		return false, nil
	}
	m.deleteRelationship(id)
	return true, nil
}

func (m *Memory) deleteRelationship(id string) {
	rel, ok := m.rels[id]
	if !ok {
		return
	}
	delete(m.rels, id)
	m.relOrder = removeID(m.relOrder, id)
	m.out[rel.SourceID] = removeID(m.out[rel.SourceID], id)
	m.in[rel.TargetID] = removeID(m.in[rel.TargetID], id)
	m.byRelType[rel.RelationshipType] = removeID(m.byRelType[rel.RelationshipType], id)
}

// Relationships returns edges incident to entityID in insertion order.
func (m *Memory) Relationships(entityID string, dir Direction, relType model.RelationshipType) ([]*model.Relationship, error) {
	relIDs := m.incidentEdges(entityID, dir)
	out := make([]*model.Relationship, 0, len(relIDs))
	for _, id := range relIDs {
		rel := m.rels[id]
		if relType != "" && rel.RelationshipType != relType {
			continue
		}
		out = append(out, rel)
	}
	return out, nil
}

// incidentEdges returns edge ids touching entityID for the direction,
// outgoing first, each self-loop counted once.
func (m *Memory) incidentEdges(entityID string, dir Direction) []string {
	var ids []string
	if dir == DirectionOut || dir == DirectionBoth {
		ids = append(ids, m.out[entityID]...)
	}
	if dir == DirectionIn || dir == DirectionBoth {
		for _, id := range m.in[entityID] {
			if dir == DirectionBoth && m.rels[id].SourceID == entityID {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}

// Neighbors returns the distinct adjacent entities, in first-edge order.
func (m *Memory) Neighbors(entityID string, dir Direction, filter NeighborFilter) ([]model.Entity, error) {
	out := make([]model.Entity, 0, 8)
	seen := make(map[string]bool)
	for _, relID := range m.incidentEdges(entityID, dir) {
		rel := m.rels[relID]
		if filter.RelType != "" && rel.RelationshipType != filter.RelType {
			continue
		}
		otherID := rel.SourceID
		if rel.SourceID == entityID {
			otherID = rel.TargetID
		}
		if seen[otherID] {
			continue
		}
		other, ok := m.entities[otherID]
		if !ok {
			continue
		}
		if filter.Kind != "" && other.Kind() != filter.Kind {
			continue
		}
		seen[otherID] = true
		out = append(out, other)
	}
	return out, nil
}

// ShortestPath runs an undirected breadth-first search between two ids.
func (m *Memory) ShortestPath(sourceID, targetID string) ([]string, error) {
	if _, ok := m.entities[sourceID]; !ok {
		return nil, model.NotFoundf("entity %q not found", sourceID)
	}
	if _, ok := m.entities[targetID]; !ok {
		return nil, model.NotFoundf("entity %q not found", targetID)
	}
	path := bfsPath(m.adjacency(), sourceID, targetID)
	if path == nil {
		return nil, model.NotFoundf("no path found between the specified entities")
	}
	return path, nil
}

// BlastRadius walks outward from entityID ignoring edge direction.
func (m *Memory) BlastRadius(entityID string, maxDepth int) (map[int][]model.Entity, error) {
	if maxDepth < 0 {
		return nil, model.Validationf("max_depth must be >= 0, got %d", maxDepth)
	}
	if _, ok := m.entities[entityID]; !ok {
		return nil, model.NotFoundf("entity %q not found", entityID)
	}
	layers := bfsLayers(m.adjacency(), entityID, maxDepth)
	out := make(map[int][]model.Entity, len(layers))
	for depth, ids := range layers {
		ents := make([]model.Entity, 0, len(ids))
		for _, id := range ids {
			ents = append(ents, m.entities[id])
		}
		out[depth] = ents
	}
	return out, nil
}

// adjacency builds the undirected view used by traversals.
func (m *Memory) adjacency() adjacency {
	edges := make([][2]string, 0, len(m.relOrder))
	for _, id := range m.relOrder {
		rel := m.rels[id]
		edges = append(edges, [2]string{rel.SourceID, rel.TargetID})
	}
	return buildAdjacency(m.order, edges)
}

// DegreeCentrality returns deg(v)/(n-1) counting parallel edges.
func (m *Memory) DegreeCentrality() (map[string]float64, error) {
	n := len(m.order)
	scores := make(map[string]float64, n)
	for _, id := range m.order {
		scores[id] = 0
	}
	if n <= 1 {
		return scores, nil
	}
	denom := float64(n - 1)
	for _, id := range m.order {
		scores[id] = float64(len(m.out[id])+len(m.in[id])) / denom
	}
	return scores, nil
}

// BetweennessCentrality runs Brandes on the undirected projection with
// parallel edges collapsed.
func (m *Memory) BetweennessCentrality() (map[string]float64, error) {
	if n := len(m.order); n > 1000 {
		m.log.Warn("betweenness centrality is O(V*E); this may take a while",
			zap.Int("entities", n),
			zap.Int("relationships", len(m.relOrder)))
	}
	return metrics.ComputeBetweenness(m.undirectedSimple()), nil
}

// undirectedSimple collapses the multigraph into a simple undirected
// adjacency with every entity present as a key.
func (m *Memory) undirectedSimple() map[string][]string {
	adj := make(map[string][]string, len(m.order))
	seen := make(map[[2]string]bool, len(m.relOrder))
	for _, id := range m.order {
		adj[id] = nil
	}
	for _, relID := range m.relOrder {
		rel := m.rels[relID]
		a, b := rel.SourceID, rel.TargetID
		if a == b {
			continue
		}
		if !seen[[2]string{a, b}] {
			seen[[2]string{a, b}] = true
			adj[a] = append(adj[a], b)
		}
		if !seen[[2]string{b, a}] {
			seen[[2]string{b, a}] = true
			adj[b] = append(adj[b], a)
		}
	}
	return adj
}

// PageRank runs power iteration over the directed multigraph. Parallel
// edges contribute proportionally to their count.
func (m *Memory) PageRank() (map[string]float64, error) {
	directed := make(map[string][]string, len(m.order))
	for _, id := range m.order {
		directed[id] = nil
	}
	for _, relID := range m.relOrder {
		rel := m.rels[relID]
		directed[rel.SourceID] = append(directed[rel.SourceID], rel.TargetID)
	}
	result := metrics.ComputePageRankWithInfo(directed, metrics.DefaultPageRankConfig())
	if !result.Converged {
		m.log.Warn("pagerank did not converge; returning last iterate",
			zap.Int("iterations", result.Iterations),
			zap.Float64("final_delta", result.FinalDelta))
	}
	return result.Scores, nil
}

// MostConnected returns the topN entities by total degree, ties broken by
// insertion order.
func (m *Memory) MostConnected(topN int) ([]Degree, error) {
	if topN <= 0 {
		return []Degree{}, nil
	}
	degrees := make([]Degree, 0, len(m.order))
	for _, id := range m.order {
		degrees = append(degrees, Degree{ID: id, Degree: len(m.out[id]) + len(m.in[id])})
	}
	sortDegreesStable(degrees)
	if topN < len(degrees) {
		degrees = degrees[:topN]
	}
	return degrees, nil
}

// sortDegreesStable sorts by degree descending keeping the original order
// of equal elements.
func sortDegreesStable(degrees []Degree) {
	for i := 1; i < len(degrees); i++ {
		key := degrees[i]
		j := i - 1
		for j >= 0 && degrees[j].Degree < key.Degree {
			degrees[j+1] = degrees[j]
			j--
		}
		degrees[j+1] = key
	}
}

// Statistics reports counts, density, and weak connectivity.
func (m *Memory) Statistics() (Statistics, error) {
	stats := Statistics{
		TotalEntities:          len(m.order),
		TotalRelationships:     len(m.relOrder),
		EntityTypeCounts:       make(map[string]int, len(m.byKind)),
		RelationshipTypeCounts: make(map[string]int, len(m.byRelType)),
		Density:                graphDensity(len(m.order), len(m.relOrder)),
	}
	for kind, ids := range m.byKind {
		if len(ids) > 0 {
			stats.EntityTypeCounts[string(kind)] = len(ids)
		}
	}
	for rt, ids := range m.byRelType {
		if len(ids) > 0 {
			stats.RelationshipTypeCounts[string(rt)] = len(ids)
		}
	}
	stats.WeakComponents = weakComponents(m.adjacency(), m.order)
	stats.IsWeaklyConnected = stats.WeakComponents <= 1
	return stats, nil
}

// Clear removes every entity and relationship.
func (m *Memory) Clear() error {
	m.reset()
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
