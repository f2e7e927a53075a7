package output

// GenerationOutput summarises one synthetic pipeline run for
// og generate and og demo.
type GenerationOutput struct {
	// Seed is the RNG seed the run was generated from
	Seed int64 `yaml:"seed" json:"seed"`

	// TargetSize is the requested employee count
	TargetSize int `yaml:"target_size" json:"target_size"`

	// Entities is the number of entities actually generated
	Entities int `yaml:"entities" json:"entities"`

	// Relationships is the number of relationships actually generated
	Relationships int `yaml:"relationships" json:"relationships"`

	// Quality is the overall quality score in [0,1]
	Quality float64 `yaml:"quality" json:"quality"`

	// Metrics holds the per-metric quality scores
	Metrics map[string]float64 `yaml:"metrics,omitempty" json:"metrics,omitempty"`

	// Warnings lists quality warnings raised by the assessor
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`

	// Elapsed is the wall-clock duration of the whole pipeline
	Elapsed string `yaml:"elapsed" json:"elapsed"`

	// Path is the file the graph was written to, empty when not exported
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

// StatsOutput reports engine statistics with their provenance for
// og inspect.
type StatsOutput struct {
	// Path is the graph file the statistics describe
	Path string `yaml:"path,omitempty" json:"path,omitempty"`

	// Backend is the engine backend the graph was loaded into
	Backend string `yaml:"backend" json:"backend"`

	// TotalEntities is the entity count
	TotalEntities int `yaml:"total_entities" json:"total_entities"`

	// TotalRelationships is the relationship count
	TotalRelationships int `yaml:"total_relationships" json:"total_relationships"`

	// EntityTypeCounts maps entity kind to count
	EntityTypeCounts map[string]int `yaml:"entity_type_counts" json:"entity_type_counts"`

	// RelationshipTypeCounts maps relationship type to count
	RelationshipTypeCounts map[string]int `yaml:"relationship_type_counts" json:"relationship_type_counts"`

	// Density is edges over possible edges for a simple directed graph
	Density float64 `yaml:"density" json:"density"`

	// IsWeaklyConnected reports whether the undirected projection is connected
	IsWeaklyConnected bool `yaml:"is_weakly_connected" json:"is_weakly_connected"`

	// WeakComponents is the number of weakly connected components
	WeakComponents int `yaml:"weakly_connected_components" json:"weakly_connected_components"`

	// AvgInDegree is the mean in-degree across all entities
	AvgInDegree float64 `yaml:"avg_in_degree" json:"avg_in_degree"`

	// MaxInDegree is the largest in-degree of any entity
	MaxInDegree int `yaml:"max_in_degree" json:"max_in_degree"`

	// MaxOutDegree is the largest out-degree of any entity
	MaxOutDegree int `yaml:"max_out_degree" json:"max_out_degree"`

	// Roots counts entities with no incoming relationships
	Roots int `yaml:"roots" json:"roots"`

	// Leaves counts entities with no outgoing relationships
	Leaves int `yaml:"leaves" json:"leaves"`
}

// TransferOutput reports an import, export, shard split, or merge for
// og import and og export.
type TransferOutput struct {
	// Operation is what ran: import, export, split, or merge
	Operation string `yaml:"operation" json:"operation"`

	// Format is the file format involved: canonical, shards, or graphml
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Entities is the number of entities transferred
	Entities int `yaml:"entities" json:"entities"`

	// Relationships is the number of relationships transferred
	Relationships int `yaml:"relationships" json:"relationships"`

	// Files lists every file read or written
	Files []string `yaml:"files" json:"files"`
}

// BenchmarkRun is one scale point of the benchmark matrix.
type BenchmarkRun struct {
	// Size is the requested employee count
	Size int `yaml:"size" json:"size"`

	// Entities is the number of entities generated at this size
	Entities int `yaml:"entities" json:"entities"`

	// Relationships is the number of relationships generated at this size
	Relationships int `yaml:"relationships" json:"relationships"`

	// Generate is the duration of the entity layers
	Generate string `yaml:"generate" json:"generate"`

	// Weave is the duration of the relationship weaver
	Weave string `yaml:"weave" json:"weave"`

	// Assess is the duration of the quality assessment
	Assess string `yaml:"assess" json:"assess"`

	// Export is the duration of the canonical export
	Export string `yaml:"export" json:"export"`

	// Total is the end-to-end duration of the run
	Total string `yaml:"total" json:"total"`

	// Quality is the overall quality score of the run
	Quality float64 `yaml:"quality" json:"quality"`
}

// BenchmarkOutput is the full benchmark matrix for og benchmark.
type BenchmarkOutput struct {
	// Runs holds one entry per requested size, in request order
	Runs []BenchmarkRun `yaml:"runs" json:"runs"`
}
