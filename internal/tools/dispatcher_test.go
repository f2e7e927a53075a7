package tools

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/state"
)

func person(id, name string) *model.Person {
	p := &model.Person{Base: model.NewBase(model.KindPerson, name, "")}
	p.ID = id
	return p
}

func department(id, name string) *model.Department {
	d := &model.Department{
		Base:      model.NewBase(model.KindDepartment, name, ""),
		Code:      "PE",
		Headcount: 2,
	}
	d.ID = id
	return d
}

func system(id, name string) *model.System {
	s := &model.System{
		Base:        model.NewBase(model.KindSystem, name, ""),
		SystemType:  "application",
		Environment: "production",
		Criticality: "medium",
	}
	s.ID = id
	return s
}

func edge(id string, rt model.RelationshipType, src, tgt string) *model.Relationship {
	r := model.NewRelationship(rt, src, tgt)
	r.ID = id
	return r
}

// seedGraphFile writes a two-component org to a temp file:
//
//	p1 (Dana Hoffman) --works_in--> d1 (Platform Engineering)
//	p1 --manages--> d1
//	p2 (Miles Archer) --works_in--> d1
//	s1 (Billing API) --depends_on--> s2 (Ledger Service) --depends_on--> s3 (Postgres Cluster)
func seedGraphFile(t *testing.T) string {
	t.Helper()
	eng := graph.NewMemory(graph.Options{})
	entities := []model.Entity{
		person("p1", "Dana Hoffman"),
		person("p2", "Miles Archer"),
		department("d1", "Platform Engineering"),
		system("s1", "Billing API"),
		system("s2", "Ledger Service"),
		system("s3", "Postgres Cluster"),
	}
	rels := []*model.Relationship{
		edge("r-works-1", model.RelWorksIn, "p1", "d1"),
		edge("r-manages", model.RelManages, "p1", "d1"),
		edge("r-works-2", model.RelWorksIn, "p2", "d1"),
		edge("r-dep-1", model.RelDependsOn, "s1", "s2"),
		edge("r-dep-2", model.RelDependsOn, "s2", "s3"),
	}
	for _, e := range entities {
		if err := eng.AddEntity(e); err != nil {
			t.Fatalf("seed entity %q: %v", e.Common().ID, err)
		}
	}
	for _, r := range rels {
		if err := eng.AddRelationship(r); err != nil {
			t.Fatalf("seed relationship %q: %v", r.ID, err)
		}
	}
	path := filepath.Join(t.TempDir(), "org.json")
	if err := export.WriteFile(eng, path); err != nil {
		t.Fatalf("write graph file: %v", err)
	}
	return path
}

func newDispatcher(t *testing.T) (*Dispatcher, string) {
	t.Helper()
	path := seedGraphFile(t)
	svc := state.NewService(state.Options{})
	if _, err := svc.Load(path); err != nil {
		t.Fatalf("load graph: %v", err)
	}
	return NewDispatcher(svc, nil), path
}

func call(t *testing.T, d *Dispatcher, tool string, args map[string]any) any {
	t.Helper()
	result, err := d.Call(tool, args)
	if err != nil {
		t.Fatalf("%s: %v", tool, err)
	}
	return result
}

func callKind(t *testing.T, d *Dispatcher, tool string, args map[string]any, want model.ErrorKind) error {
	t.Helper()
	_, err := d.Call(tool, args)
	if err == nil {
		t.Fatalf("%s: want %s error, got nil", tool, want)
	}
	if got := model.KindOf(err); got != want {
		t.Fatalf("%s: error kind = %s (%v), want %s", tool, got, err, want)
	}
	return err
}

func fileRelationshipCount(t *testing.T, path string) int {
	t.Helper()
	eng := graph.NewMemory(graph.Options{})
	counts, err := export.ImportFile(eng, path, false)
	if err != nil {
		t.Fatalf("re-import %s: %v", path, err)
	}
	return counts.Relationships
}

func TestRegistry_FixedOrderAndWriteFlags(t *testing.T) {
	d, _ := newDispatcher(t)

	wantNames := []string{
		"load_graph", "get_statistics", "list_entities", "get_entity",
		"get_neighbors", "find_shortest_path", "get_blast_radius",
		"compute_centrality", "find_most_connected", "search_entities",
		"add_relationship_tool", "add_relationships_batch", "remove_relationship_tool",
	}
	tools := d.Tools()
	if len(tools) != len(wantNames) {
		t.Fatalf("registry has %d tools, want %d", len(tools), len(wantNames))
	}
	writeTools := map[string]bool{
		"add_relationship_tool":    true,
		"add_relationships_batch":  true,
		"remove_relationship_tool": true,
	}
	for i, tool := range tools {
		if tool.Name != wantNames[i] {
			t.Errorf("tools[%d] = %q, want %q", i, tool.Name, wantNames[i])
		}
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if tool.Write != writeTools[tool.Name] {
			t.Errorf("tool %s write flag = %v, want %v", tool.Name, tool.Write, writeTools[tool.Name])
		}
	}
}

func TestCall_UnknownTool(t *testing.T) {
	d, _ := newDispatcher(t)
	callKind(t, d, "warp_drive", nil, model.ErrValidation)
}

func TestCall_NoGraphLoaded(t *testing.T) {
	d := NewDispatcher(state.NewService(state.Options{}), nil)
	callKind(t, d, "get_statistics", nil, model.ErrNoGraphLoaded)
	callKind(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "works_in",
		"source_id":         "p1",
		"target_id":         "d1",
	}, model.ErrNoGraphLoaded)
}

func TestLoadGraph(t *testing.T) {
	path := seedGraphFile(t)
	d := NewDispatcher(state.NewService(state.Options{}), nil)

	res := call(t, d, "load_graph", map[string]any{"path": path})
	m := res.(map[string]any)
	if got, want := m["status"], "ok"; got != want {
		t.Errorf("status = %v, want %v", got, want)
	}
	if got, want := m["entity_count"], 6; got != want {
		t.Errorf("entity_count = %v, want %v", got, want)
	}
	if got, want := m["relationship_count"], 5; got != want {
		t.Errorf("relationship_count = %v, want %v", got, want)
	}

	callKind(t, d, "load_graph", nil, model.ErrValidation)
	callKind(t, d, "load_graph", map[string]any{"path": filepath.Join(t.TempDir(), "missing.json")}, model.ErrPersistence)
}

func TestGetStatistics(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "get_statistics", nil)
	stats, ok := res.(graph.Statistics)
	if !ok {
		t.Fatalf("result type = %T, want graph.Statistics", res)
	}
	if stats.TotalEntities != 6 || stats.TotalRelationships != 5 {
		t.Errorf("counts = %d/%d, want 6/5", stats.TotalEntities, stats.TotalRelationships)
	}
	if got, want := stats.EntityTypeCounts["system"], 3; got != want {
		t.Errorf("system count = %d, want %d", got, want)
	}
	if stats.IsWeaklyConnected {
		t.Error("graph reported connected, want two components")
	}
	if got, want := stats.WeakComponents, 2; got != want {
		t.Errorf("components = %d, want %d", got, want)
	}
}

func TestListEntities(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "list_entities", map[string]any{"entity_type": "person"})
	people := res.([]map[string]any)
	if len(people) != 2 {
		t.Fatalf("persons = %d, want 2", len(people))
	}
	names := map[any]bool{people[0]["name"]: true, people[1]["name"]: true}
	if !names["Dana Hoffman"] || !names["Miles Archer"] {
		t.Errorf("names = %v", names)
	}

	res = call(t, d, "list_entities", map[string]any{"limit": float64(1)})
	if got := len(res.([]map[string]any)); got != 1 {
		t.Errorf("limited list = %d entities, want 1", got)
	}

	callKind(t, d, "list_entities", map[string]any{"entity_type": "starship"}, model.ErrValidation)
	callKind(t, d, "list_entities", map[string]any{"limit": 1.5}, model.ErrValidation)
}

func TestGetEntity(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "get_entity", map[string]any{"entity_id": "p1"})
	m := res.(map[string]any)
	if got, want := m["name"], "Dana Hoffman"; got != want {
		t.Errorf("name = %v, want %v", got, want)
	}
	if _, ok := m["created_at"]; ok {
		t.Error("compact entity still carries created_at")
	}

	callKind(t, d, "get_entity", nil, model.ErrValidation)
	callKind(t, d, "get_entity", map[string]any{"entity_id": "ghost"}, model.ErrNotFound)
}

func TestGetNeighbors_GroupsParallelEdges(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "get_neighbors", map[string]any{"entity_id": "p1"})
	entries := res.([]map[string]any)
	if len(entries) != 1 {
		t.Fatalf("neighbors = %d entries, want 1", len(entries))
	}
	entity := entries[0]["entity"].(map[string]any)
	if got, want := entity["id"], "d1"; got != want {
		t.Errorf("neighbor id = %v, want %v", got, want)
	}
	rels := entries[0]["relationships"].([]map[string]any)
	if len(rels) != 2 {
		t.Errorf("relationships = %d, want 2 (works_in and manages)", len(rels))
	}
}

func TestGetNeighbors_DirectionAndTypeFilters(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "get_neighbors", map[string]any{"entity_id": "d1", "direction": "in"})
	if got := len(res.([]map[string]any)); got != 2 {
		t.Errorf("inbound neighbors = %d, want 2", got)
	}

	res = call(t, d, "get_neighbors", map[string]any{
		"entity_id":         "d1",
		"direction":         "in",
		"relationship_type": "manages",
	})
	entries := res.([]map[string]any)
	if len(entries) != 1 {
		t.Fatalf("manages neighbors = %d, want 1", len(entries))
	}
	if got := len(entries[0]["relationships"].([]map[string]any)); got != 1 {
		t.Errorf("manages relationships = %d, want 1", got)
	}

	res = call(t, d, "get_neighbors", map[string]any{"entity_id": "s3", "direction": "out"})
	if got := len(res.([]map[string]any)); got != 0 {
		t.Errorf("outbound neighbors of sink = %d, want 0", got)
	}

	callKind(t, d, "get_neighbors", map[string]any{"entity_id": "p1", "direction": "sideways"}, model.ErrValidation)
	callKind(t, d, "get_neighbors", map[string]any{"entity_id": "p1", "relationship_type": "knows"}, model.ErrSchemaViolation)
	callKind(t, d, "get_neighbors", map[string]any{"entity_id": "ghost"}, model.ErrNotFound)
}

func TestFindShortestPath(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "find_shortest_path", map[string]any{"source_id": "s1", "target_id": "s3"})
	m := res.(map[string]any)
	if got, want := m["path_length"], 2; got != want {
		t.Errorf("path_length = %v, want %v", got, want)
	}
	path := m["path"].([]map[string]any)
	wantIDs := []string{"s1", "s2", "s3"}
	if len(path) != len(wantIDs) {
		t.Fatalf("path has %d hops, want %d", len(path), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got := path[i]["id"]; got != want {
			t.Errorf("path[%d] = %v, want %v", i, got, want)
		}
	}

	// p1 and s1 live in different components.
	callKind(t, d, "find_shortest_path", map[string]any{"source_id": "p1", "target_id": "s1"}, model.ErrNotFound)
	callKind(t, d, "find_shortest_path", map[string]any{"source_id": "p1"}, model.ErrValidation)
}

func TestGetBlastRadius(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "get_blast_radius", map[string]any{"entity_id": "s1", "max_depth": float64(2)})
	m := res.(map[string]any)
	if got, want := m["total_affected"], 2; got != want {
		t.Errorf("total_affected = %v, want %v", got, want)
	}
	byDepth := m["by_depth"].(map[string][]map[string]any)
	if _, ok := byDepth["0"]; ok {
		t.Error("by_depth includes the starting entity at depth 0")
	}
	if got := len(byDepth["1"]); got != 1 {
		t.Fatalf("depth 1 = %d entities, want 1", got)
	}
	if got, want := byDepth["1"][0]["id"], "s2"; got != want {
		t.Errorf("depth 1 entity = %v, want %v", got, want)
	}
	if got, want := byDepth["2"][0]["id"], "s3"; got != want {
		t.Errorf("depth 2 entity = %v, want %v", got, want)
	}

	res = call(t, d, "get_blast_radius", map[string]any{"entity_id": "s1", "max_depth": float64(0)})
	m = res.(map[string]any)
	if got, want := m["total_affected"], 0; got != want {
		t.Errorf("depth-0 total_affected = %v, want %v", got, want)
	}
	if got := len(m["by_depth"].(map[string][]map[string]any)); got != 0 {
		t.Errorf("depth-0 by_depth has %d layers, want 0", got)
	}

	callKind(t, d, "get_blast_radius", map[string]any{"entity_id": "s1", "max_depth": float64(-1)}, model.ErrValidation)
	callKind(t, d, "get_blast_radius", map[string]any{"entity_id": "ghost"}, model.ErrNotFound)
}

func TestComputeCentrality(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "compute_centrality", map[string]any{"metric": "degree", "top_n": float64(2)})
	items := res.([]map[string]any)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if got, want := items[0]["id"], "d1"; got != want {
		t.Errorf("top entity = %v, want %v", got, want)
	}
	if got, want := items[0]["score"], 0.6; got != want {
		t.Errorf("top score = %v, want %v", got, want)
	}
	if got, want := items[1]["id"], "p1"; got != want {
		t.Errorf("second entity = %v, want %v", got, want)
	}

	for _, metric := range []string{"betweenness", "pagerank"} {
		res := call(t, d, "compute_centrality", map[string]any{"metric": metric, "top_n": float64(3)})
		items := res.([]map[string]any)
		if len(items) != 3 {
			t.Fatalf("%s items = %d, want 3", metric, len(items))
		}
		prev := items[0]["score"].(float64)
		for i := 1; i < len(items); i++ {
			score := items[i]["score"].(float64)
			if score > prev {
				t.Errorf("%s scores not descending at %d: %v then %v", metric, i, prev, score)
			}
			prev = score
		}
	}

	callKind(t, d, "compute_centrality", map[string]any{"metric": "eigenvector"}, model.ErrValidation)
}

func TestFindMostConnected(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "find_most_connected", map[string]any{"top_n": float64(1)})
	items := res.([]map[string]any)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if got, want := items[0]["id"], "d1"; got != want {
		t.Errorf("most connected = %v, want %v", got, want)
	}
	if got, want := items[0]["degree"], 3; got != want {
		t.Errorf("degree = %v, want %v", got, want)
	}
	if got, want := items[0]["entity_type"], "department"; got != want {
		t.Errorf("entity_type = %v, want %v", got, want)
	}
}

func TestSearchEntities(t *testing.T) {
	d, _ := newDispatcher(t)

	res := call(t, d, "search_entities", map[string]any{"query": "dana hoffman"})
	matches := res.([]map[string]any)
	if len(matches) == 0 {
		t.Fatal("no matches for exact name")
	}
	if got, want := matches[0]["id"], "p1"; got != want {
		t.Errorf("top match = %v, want %v", got, want)
	}
	if got, want := matches[0]["match_score"], 100.0; got != want {
		t.Errorf("match_score = %v, want %v", got, want)
	}

	res = call(t, d, "search_entities", map[string]any{"query": "billing", "entity_type": "system"})
	matches = res.([]map[string]any)
	if len(matches) == 0 || matches[0]["id"] != "s1" {
		t.Errorf("system search = %v, want s1 first", matches)
	}

	res = call(t, d, "search_entities", map[string]any{"query": "dana hoffman", "entity_type": "system"})
	if got := len(res.([]map[string]any)); got != 0 {
		t.Errorf("cross-kind search = %d matches, want 0", got)
	}

	callKind(t, d, "search_entities", nil, model.ErrValidation)
}

func TestAddRelationship(t *testing.T) {
	d, path := newDispatcher(t)

	res := call(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "manages",
		"source_id":         "p2",
		"target_id":         "d1",
		"weight":            0.4,
		"confidence":        0.9,
		"properties":        map[string]any{"channel": "board"},
	})
	m := res.(map[string]any)
	if got, want := m["status"], "ok"; got != want {
		t.Errorf("status = %v, want %v", got, want)
	}
	if id, ok := m["relationship_id"].(string); !ok || id == "" {
		t.Errorf("relationship_id = %v, want non-empty string", m["relationship_id"])
	}
	rel := m["relationship"].(map[string]any)
	if got, want := rel["weight"], 0.4; got != want {
		t.Errorf("weight = %v, want %v", got, want)
	}

	if got := fileRelationshipCount(t, path); got != 6 {
		t.Errorf("persisted relationships = %d, want 6", got)
	}
}

func TestAddRelationship_RoundsWeightAndConfidence(t *testing.T) {
	d, path := newDispatcher(t)

	res := call(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "manages",
		"source_id":         "p2",
		"target_id":         "d1",
		"weight":            0.123456,
		"confidence":        0.987654,
	})
	m := res.(map[string]any)
	rel := m["relationship"].(map[string]any)
	if got, want := rel["weight"], 0.12; got != want {
		t.Errorf("weight = %v, want %v", got, want)
	}
	if got, want := rel["confidence"], 0.99; got != want {
		t.Errorf("confidence = %v, want %v", got, want)
	}

	eng := graph.NewMemory(graph.Options{})
	if _, err := export.ImportFile(eng, path, false); err != nil {
		t.Fatalf("re-import %s: %v", path, err)
	}
	stored, err := eng.GetRelationship(m["relationship_id"].(string))
	if err != nil {
		t.Fatalf("GetRelationship: %v", err)
	}
	if stored.Weight != 0.12 {
		t.Errorf("persisted weight = %v, want 0.12", stored.Weight)
	}
	if stored.Confidence != 0.99 {
		t.Errorf("persisted confidence = %v, want 0.99", stored.Confidence)
	}
}

func TestAddRelationship_Rejections(t *testing.T) {
	d, path := newDispatcher(t)

	callKind(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "befriends", "source_id": "p1", "target_id": "p2",
	}, model.ErrSchemaViolation)
	callKind(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "works_in", "source_id": "s1", "target_id": "d1",
	}, model.ErrSchemaViolation)
	callKind(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "works_in", "source_id": "p1", "target_id": "d1", "weight": 1.5,
	}, model.ErrValidation)
	callKind(t, d, "add_relationship_tool", map[string]any{
		"relationship_type": "works_in", "source_id": "p1", "target_id": "ghost",
	}, model.ErrNotFound)

	if got := fileRelationshipCount(t, path); got != 5 {
		t.Errorf("failed writes changed the file: %d relationships, want 5", got)
	}
}

func TestAddRelationshipsBatch(t *testing.T) {
	d, path := newDispatcher(t)

	res := call(t, d, "add_relationships_batch", map[string]any{
		"relationships": []any{
			map[string]any{"relationship_type": "manages", "source_id": "p2", "target_id": "d1"},
			map[string]any{"relationship_type": "runs_on", "source_id": "s1", "target_id": "s3", "weight": 0.2},
			map[string]any{"relationship_type": "depends_on", "source_id": "s1", "target_id": "s3",
				"weight": 0.555555, "confidence": 0.444444},
		},
	})
	m := res.(map[string]any)
	if got, want := m["committed"], 3; got != want {
		t.Errorf("committed = %v, want %v", got, want)
	}
	created := m["relationships"].([]map[string]any)
	if len(created) != 3 {
		t.Fatalf("created = %d, want 3", len(created))
	}
	rounded := created[2]["relationship"].(map[string]any)
	if got, want := rounded["weight"], 0.56; got != want {
		t.Errorf("batch weight = %v, want %v", got, want)
	}
	if got, want := rounded["confidence"], 0.44; got != want {
		t.Errorf("batch confidence = %v, want %v", got, want)
	}
	if got := fileRelationshipCount(t, path); got != 8 {
		t.Errorf("persisted relationships = %d, want 8", got)
	}
}

func TestAddRelationshipsBatch_AllOrNothing(t *testing.T) {
	d, path := newDispatcher(t)

	_, err := d.Call("add_relationships_batch", map[string]any{
		"relationships": []any{
			map[string]any{"relationship_type": "manages", "source_id": "p2", "target_id": "d1"},
			map[string]any{"relationship_type": "works_in", "source_id": "s1", "target_id": "d1"},
		},
	})
	var batchErr *model.Error
	if !errors.As(err, &batchErr) || batchErr.Kind != model.ErrBatchRejected {
		t.Fatalf("err = %v, want batch_rejected", err)
	}
	if len(batchErr.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(batchErr.Items))
	}
	if got, want := batchErr.Items[0].Index, 1; got != want {
		t.Errorf("failing index = %d, want %d", got, want)
	}

	stats := call(t, d, "get_statistics", nil).(graph.Statistics)
	if got := stats.TotalRelationships; got != 5 {
		t.Errorf("relationships after rejected batch = %d, want 5", got)
	}
	if got := fileRelationshipCount(t, path); got != 5 {
		t.Errorf("file relationships after rejected batch = %d, want 5", got)
	}
}

func TestAddRelationshipsBatch_SizeLimits(t *testing.T) {
	d, _ := newDispatcher(t)

	callKind(t, d, "add_relationships_batch", map[string]any{"relationships": []any{}}, model.ErrValidation)
	callKind(t, d, "add_relationships_batch", nil, model.ErrValidation)

	oversized := make([]any, MaxBatchSize+1)
	for i := range oversized {
		oversized[i] = map[string]any{"relationship_type": "manages", "source_id": "p1", "target_id": "p2"}
	}
	callKind(t, d, "add_relationships_batch", map[string]any{"relationships": oversized}, model.ErrValidation)
}

func TestRemoveRelationship(t *testing.T) {
	d, path := newDispatcher(t)

	res := call(t, d, "remove_relationship_tool", map[string]any{"relationship_id": "r-manages"})
	m := res.(map[string]any)
	if got, want := m["status"], "ok"; got != want {
		t.Errorf("status = %v, want %v", got, want)
	}
	removed := m["removed"].(map[string]any)
	if got, want := removed["relationship_type"], "manages"; got != want {
		t.Errorf("removed type = %v, want %v", got, want)
	}

	if got := fileRelationshipCount(t, path); got != 4 {
		t.Errorf("persisted relationships = %d, want 4", got)
	}

	callKind(t, d, "remove_relationship_tool", map[string]any{"relationship_id": "r-manages"}, model.ErrNotFound)
}

func TestOpenAIToolDefs(t *testing.T) {
	d, _ := newDispatcher(t)

	defs := OpenAIToolDefs(d)
	if len(defs) != len(d.Tools()) {
		t.Fatalf("defs = %d, want %d", len(defs), len(d.Tools()))
	}
	if defs[0].Type != "function" || defs[0].Function.Name != "load_graph" {
		t.Errorf("defs[0] = %s %s, want function load_graph", defs[0].Type, defs[0].Function.Name)
	}
	if got := defs[0].Function.Parameters.Required; len(got) != 1 || got[0] != "path" {
		t.Errorf("load_graph required = %v, want [path]", got)
	}

	byName := make(map[string]FunctionDef, len(defs))
	for _, def := range defs {
		byName[def.Function.Name] = def
	}
	batch := byName["add_relationships_batch"]
	relsParam, ok := batch.Function.Parameters.Properties["relationships"]
	if !ok {
		t.Fatal("batch def missing relationships parameter")
	}
	if relsParam.Type != "array" || relsParam.Items == nil || relsParam.Items.Type != "object" {
		t.Errorf("relationships param = %+v, want array of objects", relsParam)
	}
	stats := byName["get_statistics"]
	if stats.Function.Parameters.Properties == nil || stats.Function.Parameters.Required == nil {
		t.Error("parameterless tools must still carry empty properties and required")
	}
}

func TestMCPToolSchemas(t *testing.T) {
	d, _ := newDispatcher(t)

	for _, tool := range d.Tools() {
		mt := mcpTool(tool)
		if mt.Name != tool.Name {
			t.Errorf("mcp tool name = %q, want %q", mt.Name, tool.Name)
		}
		if mt.Description == "" {
			t.Errorf("mcp tool %s has empty description", tool.Name)
		}
		for _, p := range tool.Params {
			if _, ok := mt.InputSchema.Properties[p.Name]; !ok {
				t.Errorf("mcp tool %s missing parameter %s", tool.Name, p.Name)
			}
		}
	}
}
