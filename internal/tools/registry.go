// Package tools is the dispatcher behind every transport: a fixed
// registry of thirteen graph tools, ten reads and three writes, shared by
// the ATP stdio loop, the MCP server, and the REST adapter. Transports
// translate wire requests into Call invocations and render the result or
// the structured error; they never reach the engine directly.
package tools

import (
	"encoding/json"
	"math"

	"go.uber.org/zap"

	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/state"
)

// MaxBatchSize caps add_relationships_batch.
const MaxBatchSize = 500

// Args is the decoded argument object of one tool call. Values are the
// JSON-decoded forms: string, float64, bool, []any, map[string]any.
type Args map[string]any

// String returns the named string argument. Missing and null read as "".
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", model.Validationf("argument %q must be a string", key)
	}
	return s, nil
}

// RequiredString returns the named string argument, rejecting absence and
// the empty string.
func (a Args) RequiredString(key string) (string, error) {
	s, err := a.String(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", model.Validationf("argument %q is required", key)
	}
	return s, nil
}

// Int returns the named integer argument, or def when absent.
func (a Args) Int(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		return 0, model.Validationf("argument %q must be an integer", key)
	}
	return int(n), nil
}

// Float returns the named number argument, or def when absent.
func (a Args) Float(key string, def float64) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	n, ok := v.(float64)
	if !ok {
		return 0, model.Validationf("argument %q must be a number", key)
	}
	return n, nil
}

// List returns the named array argument. Missing and null read as nil.
func (a Args) List(key string) ([]any, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, model.Validationf("argument %q must be an array", key)
	}
	return list, nil
}

// Properties returns the named object argument coerced to the string map
// relationships carry. Non-string values are re-encoded as JSON text.
func (a Args) Properties(key string) (model.Properties, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return model.Properties{}, nil
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, model.Validationf("argument %q must be an object", key)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, model.Validationf("argument %q is not encodable", key)
	}
	var props model.Properties
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, model.Validationf("argument %q must be an object of scalar values", key)
	}
	return props, nil
}

// Param describes one argument for schema generation (MCP tool schemas,
// the OpenAI function-calling surface).
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Tool is one registry entry. Write tools mutate the graph and trigger a
// persist; read tools hold only the shared lock.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Write       bool
	handler     func(d *Dispatcher, args Args) (any, error)
}

// Dispatcher owns the registry and routes calls through the graph state
// service.
type Dispatcher struct {
	state  *state.Service
	logger *zap.Logger
	tools  []Tool
	byName map[string]*Tool
}

// NewDispatcher builds the registry around svc. A nil logger disables
// logging.
func NewDispatcher(svc *state.Service, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{state: svc, logger: logger}
	d.tools = registry()
	d.byName = make(map[string]*Tool, len(d.tools))
	for i := range d.tools {
		d.byName[d.tools[i].Name] = &d.tools[i]
	}
	return d
}

// Tools returns the registry in its fixed order.
func (d *Dispatcher) Tools() []Tool {
	return d.tools
}

// Call routes one tool invocation. Panics in handlers are caught here and
// surfaced as a generic internal error so transports never see a trace.
func (d *Dispatcher) Call(name string, args map[string]any) (result any, err error) {
	tool, ok := d.byName[name]
	if !ok {
		return nil, model.Validationf("unknown tool %q", name)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool handler panicked",
				zap.String("tool", name), zap.Any("panic", r))
			result = nil
			err = model.Internalf("internal error")
		}
	}()

	if args == nil {
		args = map[string]any{}
	}
	result, err = tool.handler(d, Args(args))
	if err != nil {
		d.logger.Debug("tool call failed",
			zap.String("tool", name),
			zap.String("kind", string(model.KindOf(err))))
		return nil, err
	}
	return result, nil
}

// registry returns the thirteen tools in their fixed order: reads first,
// writes last.
func registry() []Tool {
	return []Tool{
		{
			Name:        "load_graph",
			Description: "Load a canonical JSON graph file into the server, replacing any current graph.",
			Params: []Param{
				{Name: "path", Type: "string", Description: "Path to the JSON graph file.", Required: true},
			},
			handler: handleLoadGraph,
		},
		{
			Name:        "get_statistics",
			Description: "Entity and relationship counts by type, density, and weak-connectivity of the loaded graph.",
			handler:     handleGetStatistics,
		},
		{
			Name:        "list_entities",
			Description: "List entities, optionally filtered by type.",
			Params: []Param{
				{Name: "entity_type", Type: "string", Description: "Filter to one entity type, for example person or system."},
				{Name: "limit", Type: "integer", Description: "Maximum entities to return (default 50)."},
			},
			handler: handleListEntities,
		},
		{
			Name:        "get_entity",
			Description: "Fetch one entity by id.",
			Params: []Param{
				{Name: "entity_id", Type: "string", Description: "Id of the entity.", Required: true},
			},
			handler: handleGetEntity,
		},
		{
			Name:        "get_neighbors",
			Description: "Entities directly connected to an entity, with the connecting relationships.",
			Params: []Param{
				{Name: "entity_id", Type: "string", Description: "Id of the entity.", Required: true},
				{Name: "direction", Type: "string", Description: "in, out, or both (default both)."},
				{Name: "relationship_type", Type: "string", Description: "Restrict to one relationship type."},
			},
			handler: handleGetNeighbors,
		},
		{
			Name:        "find_shortest_path",
			Description: "Shortest undirected path between two entities.",
			Params: []Param{
				{Name: "source_id", Type: "string", Description: "Id of the starting entity.", Required: true},
				{Name: "target_id", Type: "string", Description: "Id of the destination entity.", Required: true},
			},
			handler: handleFindShortestPath,
		},
		{
			Name:        "get_blast_radius",
			Description: "Every entity reachable from a starting entity within a bounded number of hops, grouped by depth.",
			Params: []Param{
				{Name: "entity_id", Type: "string", Description: "Id of the starting entity.", Required: true},
				{Name: "max_depth", Type: "integer", Description: "Maximum hops to traverse (default 3)."},
			},
			handler: handleGetBlastRadius,
		},
		{
			Name:        "compute_centrality",
			Description: "Rank entities by degree, betweenness, or pagerank centrality.",
			Params: []Param{
				{Name: "metric", Type: "string", Description: "degree, betweenness, or pagerank (default degree)."},
				{Name: "top_n", Type: "integer", Description: "Number of entities to return (default 20)."},
			},
			handler: handleComputeCentrality,
		},
		{
			Name:        "find_most_connected",
			Description: "Entities with the highest raw connection count.",
			Params: []Param{
				{Name: "top_n", Type: "integer", Description: "Number of entities to return (default 10)."},
			},
			handler: handleFindMostConnected,
		},
		{
			Name:        "search_entities",
			Description: "Fuzzy search across entity names.",
			Params: []Param{
				{Name: "query", Type: "string", Description: "Search text.", Required: true},
				{Name: "entity_type", Type: "string", Description: "Restrict to one entity type."},
				{Name: "limit", Type: "integer", Description: "Maximum results (default 10)."},
			},
			handler: handleSearchEntities,
		},
		{
			Name:        "add_relationship_tool",
			Description: "Add one validated relationship between two existing entities and persist the graph.",
			Params: []Param{
				{Name: "relationship_type", Type: "string", Description: "Relationship type from the catalog.", Required: true},
				{Name: "source_id", Type: "string", Description: "Id of the source entity.", Required: true},
				{Name: "target_id", Type: "string", Description: "Id of the target entity.", Required: true},
				{Name: "weight", Type: "number", Description: "Edge weight in [0, 1] (default 1)."},
				{Name: "confidence", Type: "number", Description: "Confidence in [0, 1] (default 1)."},
				{Name: "properties", Type: "object", Description: "Additional string properties."},
			},
			Write:   true,
			handler: handleAddRelationship,
		},
		{
			Name:        "add_relationships_batch",
			Description: "Add up to 500 relationships in one all-or-nothing batch with a single persist.",
			Params: []Param{
				{Name: "relationships", Type: "array", Description: "Items with relationship_type, source_id, target_id, and optional weight, confidence, properties.", Required: true},
			},
			Write:   true,
			handler: handleAddRelationshipsBatch,
		},
		{
			Name:        "remove_relationship_tool",
			Description: "Remove one relationship by id and persist the graph.",
			Params: []Param{
				{Name: "relationship_id", Type: "string", Description: "Id of the relationship to remove.", Required: true},
			},
			Write:   true,
			handler: handleRemoveRelationship,
		},
	}
}
