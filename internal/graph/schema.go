package graph

// schemaSQL defines the relational schema shared by the sql and dolt
// backends. Entities and relationships are stored as JSON documents with
// the columns the backend queries on lifted out.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS entities (
    id TEXT PRIMARY KEY,
    entity_type TEXT NOT NULL,
    name TEXT NOT NULL,
    seq BIGINT NOT NULL,
    doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS relationships (
    id TEXT PRIMARY KEY,
    relationship_type TEXT NOT NULL,
    source_id TEXT NOT NULL,
    target_id TEXT NOT NULL,
    seq BIGINT NOT NULL,
    doc TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entities_type ON entities(entity_type);
CREATE INDEX IF NOT EXISTS idx_relationships_type ON relationships(relationship_type);
CREATE INDEX IF NOT EXISTS idx_relationships_source ON relationships(source_id);
CREATE INDEX IF NOT EXISTS idx_relationships_target ON relationships(target_id);
`

// initSchema creates the tables and indexes if they don't exist.
func (s *SQL) initSchema() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}
