package graph

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/dolthub/driver"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/anthropics/og/internal/model"
)

const (
	// BackendSQL names the SQLite-backed backend.
	BackendSQL = "sql"
	// BackendDolt names the Dolt-backed backend. Same engine, different
	// driver and DSN; Dolt adds commit history on top.
	BackendDolt = "dolt"
)

// SQL is a relational backend over database/sql. Documents round-trip
// through the model codec; traversals load the adjacency per call, so it
// suits durable storage more than heavy analytics. Betweenness and
// PageRank report unsupported.
type SQL struct {
	name    string
	strict  bool
	log     *zap.Logger
	db      *sql.DB
	dbPath  string
	nextSeq int64
}

// NewSQLite opens (or creates) a SQLite-backed engine at opts.Path. An
// empty path keeps the database in memory.
func NewSQLite(opts Options) (Engine, error) {
	path := opts.Path
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, model.Persistencef("open sqlite db: %v", err)
	}
	if path == ":memory:" {
		// Every pooled connection gets its own private in-memory database;
		// cap the pool so all statements share the one that holds the data.
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, model.Persistencef("set WAL mode: %v", err)
	}
	return finishOpen(db, BackendSQL, path, opts)
}

// NewDolt opens (or creates) a Dolt-backed engine. opts.Path is the Dolt
// repository directory.
func NewDolt(opts Options) (Engine, error) {
	if opts.Path == "" {
		return nil, model.Validationf("dolt backend requires a path")
	}
	if err := os.MkdirAll(opts.Path, 0755); err != nil {
		return nil, model.Persistencef("create dolt directory: %v", err)
	}
	dbPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, model.Persistencef("resolve dolt directory: %v", err)
	}

	// Connect without a database first so it can be created.
	initDSN := fmt.Sprintf("file://%s?commitname=og&commitemail=og@local", dbPath)
	initDB, err := sql.Open("dolt", initDSN)
	if err != nil {
		return nil, model.Persistencef("open dolt for init: %v", err)
	}
	if _, err := initDB.Exec("CREATE DATABASE IF NOT EXISTS og"); err != nil {
		initDB.Close()
		return nil, model.Persistencef("create database: %v", err)
	}
	initDB.Close()

	dsn := fmt.Sprintf("file://%s?commitname=og&commitemail=og@local&database=og", dbPath)
	db, err := sql.Open("dolt", dsn)
	if err != nil {
		return nil, model.Persistencef("open dolt db: %v", err)
	}
	return finishOpen(db, BackendDolt, dbPath, opts)
}

func finishOpen(db *sql.DB, name, path string, opts Options) (Engine, error) {
	s := &SQL{
		name:   name,
		strict: opts.Strict,
		log:    opts.logger(),
		db:     db,
		dbPath: path,
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, model.Persistencef("init schema: %v", err)
	}
	var maxEnt, maxRel sql.NullInt64
	if err := db.QueryRow("SELECT MAX(seq) FROM entities").Scan(&maxEnt); err != nil {
		db.Close()
		return nil, model.Persistencef("read entity sequence: %v", err)
	}
	if err := db.QueryRow("SELECT MAX(seq) FROM relationships").Scan(&maxRel); err != nil {
		db.Close()
		return nil, model.Persistencef("read relationship sequence: %v", err)
	}
	s.nextSeq = maxEnt.Int64
	if maxRel.Int64 > s.nextSeq {
		s.nextSeq = maxRel.Int64
	}
	s.nextSeq++
	return s, nil
}

// Name reports the backend name.
func (s *SQL) Name() string { return s.name }

// Close releases the database handle. Not part of the Engine contract;
// owners that constructed a SQL backend directly call it on shutdown.
func (s *SQL) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *SQL) Path() string { return s.dbPath }

func (s *SQL) seq() int64 {
	n := s.nextSeq
	s.nextSeq++
	return n
}

func (s *SQL) entityExists(id string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM entities WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, model.Persistencef("query entity: %v", err)
	}
	return true, nil
}

func (s *SQL) entityKind(id string) (model.EntityType, bool, error) {
	var kind string
	err := s.db.QueryRow("SELECT entity_type FROM entities WHERE id = ?", id).Scan(&kind)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, model.Persistencef("query entity: %v", err)
	}
	return model.EntityType(kind), true, nil
}

// AddEntity validates e and inserts its document.
func (s *SQL) AddEntity(e model.Entity) error {
	if err := model.ValidateEntity(e); err != nil {
		return err
	}
	b := e.Common()
	exists, err := s.entityExists(b.ID)
	if err != nil {
		return err
	}
	if exists {
		return model.Validationf("entity id %q already exists", b.ID)
	}
	doc, err := model.MarshalEntity(e)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		"INSERT INTO entities (id, entity_type, name, seq, doc) VALUES (?, ?, ?, ?, ?)",
		b.ID, string(e.Kind()), b.Name, s.seq(), string(doc))
	if err != nil {
		return model.Persistencef("insert entity: %v", err)
	}
	return nil
}

// AddEntitiesBulk inserts all entities in one transaction or none.
func (s *SQL) AddEntitiesBulk(entities []model.Entity) error {
	seen := make(map[string]bool, len(entities))
	var items []model.BatchItemError
	for i, e := range entities {
		err := model.ValidateEntity(e)
		if err == nil {
			id := e.Common().ID
			exists, qerr := s.entityExists(id)
			if qerr != nil {
				return qerr
			}
			if exists || seen[id] {
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

	tx, err := s.db.Begin()
	if err != nil {
		return model.Persistencef("begin transaction: %v", err)
	}
	for _, e := range entities {
		b := e.Common()
		doc, err := model.MarshalEntity(e)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.Exec(
			"INSERT INTO entities (id, entity_type, name, seq, doc) VALUES (?, ?, ?, ?, ?)",
			b.ID, string(e.Kind()), b.Name, s.seq(), string(doc)); err != nil {
			tx.Rollback()
			return model.Persistencef("insert entity: %v", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Persistencef("commit entities: %v", err)
	}
	return nil
}

// GetEntity loads and decodes the entity document.
func (s *SQL) GetEntity(id string) (model.Entity, error) {
	var doc string
	err := s.db.QueryRow("SELECT doc FROM entities WHERE id = ?", id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, model.NotFoundf("entity %q not found", id)
	}
	if err != nil {
		return nil, model.Persistencef("query entity: %v", err)
	}
	return model.UnmarshalEntity([]byte(doc), s.strict)
}

// UpdateEntity merges patch into the stored document and writes it back.
func (s *SQL) UpdateEntity(id string, patch map[string]any) (model.Entity, error) {
	current, err := s.GetEntity(id)
	if err != nil {
		return nil, err
	}
	updated, err := model.ApplyPatch(current, patch, s.strict)
	if err != nil {
		return nil, err
	}
	if err := model.ValidateEntity(updated); err != nil {
		return nil, err
	}
	updated.Common().Touch()
	doc, err := model.MarshalEntity(updated)
	if err != nil {
		return nil, err
	}
	if _, err := s.db.Exec("UPDATE entities SET name = ?, doc = ? WHERE id = ?",
		updated.Common().Name, string(doc), id); err != nil {
		return nil, model.Persistencef("update entity: %v", err)
	}
	return updated, nil
}

// RemoveEntity deletes an entity and cascades to incident edges.
func (s *SQL) RemoveEntity(id string) (bool, error) {
	exists, err := s.entityExists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return false, model.Persistencef("begin transaction: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM relationships WHERE source_id = ? OR target_id = ?", id, id); err != nil {
		tx.Rollback()
		return false, model.Persistencef("delete relationships: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM entities WHERE id = ?", id); err != nil {
		tx.Rollback()
		return false, model.Persistencef("delete entity: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return false, model.Persistencef("commit removal: %v", err)
	}
	return true, nil
}

// ListEntities returns entities ordered by insertion sequence.
func (s *SQL) ListEntities(filter ListFilter) ([]model.Entity, error) {
	query := "SELECT doc FROM entities ORDER BY seq"
	args := []any{}
	if filter.Kind != "" {
		query = "SELECT doc FROM entities WHERE entity_type = ? ORDER BY seq"
		args = append(args, string(filter.Kind))
	}
	all, err := s.scanEntities(query, args...)
	if err != nil {
		return nil, err
	}
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > len(all) {
		start = len(all)
	}
	end := len(all)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return all[start:end], nil
}

func (s *SQL) scanEntities(query string, args ...any) ([]model.Entity, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, model.Persistencef("query entities: %v", err)
	}
	defer rows.Close()
	var out []model.Entity
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, model.Persistencef("scan entity: %v", err)
		}
		e, err := model.UnmarshalEntity([]byte(doc), s.strict)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, model.Persistencef("iterate entities: %v", err)
	}
	if out == nil {
		out = []model.Entity{}
	}
	return out, nil
}

func (s *SQL) checkRelationship(rel *model.Relationship) error {
	if err := model.ValidateRelationship(rel); err != nil {
		return err
	}
	var one int
	err := s.db.QueryRow("SELECT 1 FROM relationships WHERE id = ?", rel.ID).Scan(&one)
	if err == nil {
		return model.Validationf("relationship id %q already exists", rel.ID)
	}
	if err != sql.ErrNoRows {
		return model.Persistencef("query relationship: %v", err)
	}
	srcKind, ok, err := s.entityKind(rel.SourceID)
	if err != nil {
		return err
	}
	if !ok {
		return model.NotFoundf("source entity %q not found in graph", rel.SourceID)
	}
	tgtKind, ok, err := s.entityKind(rel.TargetID)
	if err != nil {
		return err
	}
	if !ok {
		return model.NotFoundf("target entity %q not found in graph", rel.TargetID)
	}
	return model.ValidateEdgeKinds(rel.RelationshipType, srcKind, tgtKind)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *SQL) insertRelationship(exec execer, rel *model.Relationship) error {
	doc, err := json.Marshal(rel)
	if err != nil {
		return model.Validationf("encode relationship: %v", err)
	}
	_, err = exec.Exec(
		"INSERT INTO relationships (id, relationship_type, source_id, target_id, seq, doc) VALUES (?, ?, ?, ?, ?, ?)",
		rel.ID, string(rel.RelationshipType), rel.SourceID, rel.TargetID, s.seq(), string(doc))
	if err != nil {
		return model.Persistencef("insert relationship: %v", err)
	}
	return nil
}

// AddRelationship validates endpoints and the domain/range rule, then
// inserts the edge document.
func (s *SQL) AddRelationship(rel *model.Relationship) error {
	if err := s.checkRelationship(rel); err != nil {
		return err
	}
	return s.insertRelationship(s.db, rel)
}

// AddRelationshipsBulk validates every edge before committing any, then
// inserts them in one transaction.
func (s *SQL) AddRelationshipsBulk(rels []*model.Relationship) error {
	seen := make(map[string]bool, len(rels))
	var items []model.BatchItemError
	for i, rel := range rels {
		err := s.checkRelationship(rel)
		if err == nil {
			if seen[rel.ID] {
				err = model.Validationf("relationship id %q already exists", rel.ID)
			} else {
				seen[rel.ID] = true
			}
		}
		if err != nil {
			if model.KindOf(err) == model.ErrPersistence {
				return err
			}
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
	tx, err := s.db.Begin()
	if err != nil {
		return model.Persistencef("begin transaction: %v", err)
	}
	for _, rel := range rels {
		if err := s.insertRelationship(tx, rel); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Persistencef("commit relationships: %v", err)
	}
	return nil
}

// GetRelationship loads and decodes the edge document.
func (s *SQL) GetRelationship(id string) (*model.Relationship, error) {
	var doc string
	err := s.db.QueryRow("SELECT doc FROM relationships WHERE id = ?", id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, model.NotFoundf("relationship %q not found", id)
	}
	if err != nil {
		return nil, model.Persistencef("query relationship: %v", err)
	}
	var rel model.Relationship
	if err := json.Unmarshal([]byte(doc), &rel); err != nil {
		return nil, model.Persistencef("decode relationship %q: %v", id, err)
	}
	return &rel, nil
}

// RemoveRelationship deletes an edge.
func (s *SQL) RemoveRelationship(id string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM relationships WHERE id = ?", id)
	if err != nil {
		return false, model.Persistencef("delete relationship: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, model.Persistencef("delete relationship: %v", err)
	}
	return n > 0, nil
}

// Relationships returns edges incident to entityID ordered by insertion.
func (s *SQL) Relationships(entityID string, dir Direction, relType model.RelationshipType) ([]*model.Relationship, error) {
	var query string
	args := []any{entityID}
	switch dir {
	case DirectionOut:
		query = "SELECT doc FROM relationships WHERE source_id = ? ORDER BY seq"
	case DirectionIn:
		query = "SELECT doc FROM relationships WHERE target_id = ? ORDER BY seq"
	default:
		query = "SELECT doc FROM relationships WHERE source_id = ? OR target_id = ? ORDER BY seq"
		args = append(args, entityID)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, model.Persistencef("query relationships: %v", err)
	}
	defer rows.Close()
	out := []*model.Relationship{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, model.Persistencef("scan relationship: %v", err)
		}
		var rel model.Relationship
		if err := json.Unmarshal([]byte(doc), &rel); err != nil {
			return nil, model.Persistencef("decode relationship: %v", err)
		}
		if relType != "" && rel.RelationshipType != relType {
			continue
		}
		out = append(out, &rel)
	}
	if err := rows.Err(); err != nil {
		return nil, model.Persistencef("iterate relationships: %v", err)
	}
	return out, nil
}

// Neighbors resolves the distinct adjacent entities through the incident
// edge rows.
func (s *SQL) Neighbors(entityID string, dir Direction, filter NeighborFilter) ([]model.Entity, error) {
	rels, err := s.Relationships(entityID, dir, filter.RelType)
	if err != nil {
		return nil, err
	}
	out := make([]model.Entity, 0, len(rels))
	seen := make(map[string]bool)
	for _, rel := range rels {
		otherID := rel.SourceID
		if rel.SourceID == entityID {
			otherID = rel.TargetID
		}
		if seen[otherID] {
			continue
		}
		other, err := s.GetEntity(otherID)
		if err != nil {
			if model.KindOf(err) == model.ErrNotFound {
				continue
			}
			return nil, err
		}
		if filter.Kind != "" && other.Kind() != filter.Kind {
			continue
		}
		seen[otherID] = true
		out = append(out, other)
	}
	return out, nil
}

// loadTopology reads the full id and edge sets for traversal calls.
func (s *SQL) loadTopology() (ids []string, edges [][2]string, err error) {
	rows, err := s.db.Query("SELECT id FROM entities ORDER BY seq")
	if err != nil {
		return nil, nil, model.Persistencef("query entity ids: %v", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, nil, model.Persistencef("scan entity id: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, nil, model.Persistencef("iterate entity ids: %v", err)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT source_id, target_id FROM relationships ORDER BY seq")
	if err != nil {
		return nil, nil, model.Persistencef("query edges: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var src, tgt string
		if err := rows.Scan(&src, &tgt); err != nil {
			return nil, nil, model.Persistencef("scan edge: %v", err)
		}
		edges = append(edges, [2]string{src, tgt})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, model.Persistencef("iterate edges: %v", err)
	}
	return ids, edges, nil
}

// ShortestPath loads the adjacency and runs an undirected BFS.
func (s *SQL) ShortestPath(sourceID, targetID string) ([]string, error) {
	for _, id := range []string{sourceID, targetID} {
		exists, err := s.entityExists(id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.NotFoundf("entity %q not found", id)
		}
	}
	ids, edges, err := s.loadTopology()
	if err != nil {
		return nil, err
	}
	path := bfsPath(buildAdjacency(ids, edges), sourceID, targetID)
	if path == nil {
		return nil, model.NotFoundf("no path found between the specified entities")
	}
	return path, nil
}

// BlastRadius loads the adjacency and walks outward by layer.
func (s *SQL) BlastRadius(entityID string, maxDepth int) (map[int][]model.Entity, error) {
	if maxDepth < 0 {
		return nil, model.Validationf("max_depth must be >= 0, got %d", maxDepth)
	}
	exists, err := s.entityExists(entityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NotFoundf("entity %q not found", entityID)
	}
	ids, edges, err := s.loadTopology()
	if err != nil {
		return nil, err
	}
	layers := bfsLayers(buildAdjacency(ids, edges), entityID, maxDepth)
	out := make(map[int][]model.Entity, len(layers))
	for depth, layerIDs := range layers {
		ents := make([]model.Entity, 0, len(layerIDs))
		for _, id := range layerIDs {
			e, err := s.GetEntity(id)
			if err != nil {
				return nil, err
			}
			ents = append(ents, e)
		}
		out[depth] = ents
	}
	return out, nil
}

// DegreeCentrality counts incident edges per entity over one topology load.
func (s *SQL) DegreeCentrality() (map[string]float64, error) {
	ids, edges, err := s.loadTopology()
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(ids))
	for _, id := range ids {
		scores[id] = 0
	}
	if len(ids) <= 1 {
		return scores, nil
	}
	counts := make(map[string]int, len(ids))
	for _, e := range edges {
		counts[e[0]]++
		counts[e[1]]++
	}
	denom := float64(len(ids) - 1)
	for _, id := range ids {
		scores[id] = float64(counts[id]) / denom
	}
	return scores, nil
}

// BetweennessCentrality is not provided by the relational backends.
func (s *SQL) BetweennessCentrality() (map[string]float64, error) {
	return nil, model.Unsupportedf("betweenness centrality is not supported by the %s backend; use the memory backend", s.name)
}

// PageRank is not provided by the relational backends.
func (s *SQL) PageRank() (map[string]float64, error) {
	return nil, model.Unsupportedf("pagerank is not supported by the %s backend; use the memory backend", s.name)
}

// MostConnected returns the topN entities by total degree.
func (s *SQL) MostConnected(topN int) ([]Degree, error) {
	if topN <= 0 {
		return []Degree{}, nil
	}
	ids, edges, err := s.loadTopology()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(ids))
	for _, e := range edges {
		counts[e[0]]++
		counts[e[1]]++
	}
	degrees := make([]Degree, 0, len(ids))
	for _, id := range ids {
		degrees = append(degrees, Degree{ID: id, Degree: counts[id]})
	}
	sortDegreesStable(degrees)
	if topN < len(degrees) {
		degrees = degrees[:topN]
	}
	return degrees, nil
}

// Statistics reports counts, density, and weak connectivity.
func (s *SQL) Statistics() (Statistics, error) {
	stats := Statistics{
		EntityTypeCounts:       map[string]int{},
		RelationshipTypeCounts: map[string]int{},
	}
	rows, err := s.db.Query("SELECT entity_type, COUNT(*) FROM entities GROUP BY entity_type")
	if err != nil {
		return stats, model.Persistencef("count entities: %v", err)
	}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			rows.Close()
			return stats, model.Persistencef("scan entity count: %v", err)
		}
		stats.EntityTypeCounts[kind] = n
		stats.TotalEntities += n
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return stats, model.Persistencef("iterate entity counts: %v", err)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT relationship_type, COUNT(*) FROM relationships GROUP BY relationship_type")
	if err != nil {
		return stats, model.Persistencef("count relationships: %v", err)
	}
	for rows.Next() {
		var rt string
		var n int
		if err := rows.Scan(&rt, &n); err != nil {
			rows.Close()
			return stats, model.Persistencef("scan relationship count: %v", err)
		}
		stats.RelationshipTypeCounts[rt] = n
		stats.TotalRelationships += n
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return stats, model.Persistencef("iterate relationship counts: %v", err)
	}
	rows.Close()

	stats.Density = graphDensity(stats.TotalEntities, stats.TotalRelationships)
	ids, edges, err := s.loadTopology()
	if err != nil {
		return stats, err
	}
	stats.WeakComponents = weakComponents(buildAdjacency(ids, edges), ids)
	stats.IsWeaklyConnected = stats.WeakComponents <= 1
	return stats, nil
}

// Clear removes every entity and relationship.
func (s *SQL) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return model.Persistencef("begin transaction: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM relationships"); err != nil {
		tx.Rollback()
		return model.Persistencef("clear relationships: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM entities"); err != nil {
		tx.Rollback()
		return model.Persistencef("clear entities: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return model.Persistencef("commit clear: %v", err)
	}
	s.nextSeq = 1
	return nil
}
