package graph

import (
	"path/filepath"
	"testing"

	"github.com/anthropics/og/internal/model"
)

func sqliteEngine(t *testing.T) Engine {
	t.Helper()
	eng, err := NewSQLite(Options{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { eng.(*SQL).Close() })
	return eng
}

func TestSQLite_Name(t *testing.T) {
	eng := sqliteEngine(t)
	if eng.Name() != BackendSQL {
		t.Errorf("Name() = %q, want %q", eng.Name(), BackendSQL)
	}
}

func TestSQLite_EntityRoundTrip(t *testing.T) {
	eng := sqliteEngine(t)
	p := newPerson("p1", "Ada")
	p.Title = "Engineer"
	p.Tags = []string{"staff"}
	if err := eng.AddEntity(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := eng.GetEntity("p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	stored, ok := got.(*model.Person)
	if !ok {
		t.Fatalf("decoded entity is %T, want *model.Person", got)
	}
	if stored.Name != "Ada" || stored.Title != "Engineer" {
		t.Errorf("round trip lost fields: name=%q title=%q", stored.Name, stored.Title)
	}
	if len(stored.Tags) != 1 || stored.Tags[0] != "staff" {
		t.Errorf("tags = %v, want [staff]", stored.Tags)
	}

	if err := eng.AddEntity(newPerson("p1", "Grace")); model.KindOf(err) != model.ErrValidation {
		t.Errorf("duplicate id: error kind = %s, want %s", model.KindOf(err), model.ErrValidation)
	}
}

func TestSQLite_UpdateEntity(t *testing.T) {
	eng := sqliteEngine(t)
	mustSeed(t, eng, []model.Entity{newPerson("p1", "Ada")}, nil)

	updated, err := eng.UpdateEntity("p1", map[string]any{"title": "Principal"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Common().Version != 2 {
		t.Errorf("version = %d, want 2", updated.Common().Version)
	}
	stored, _ := eng.GetEntity("p1")
	if stored.(*model.Person).Title != "Principal" {
		t.Error("update not persisted")
	}

	if _, err := eng.UpdateEntity("p1", map[string]any{"id": "other"}); model.KindOf(err) != model.ErrValidation {
		t.Errorf("immutable id: error kind = %s", model.KindOf(err))
	}
}

func TestSQLite_BulkAtomicity(t *testing.T) {
	eng := sqliteEngine(t)
	err := eng.AddEntitiesBulk([]model.Entity{
		newPerson("p1", "Ada"),
		newPerson("p2", ""),
	})
	if model.KindOf(err) != model.ErrBatchRejected {
		t.Fatalf("error kind = %s, want %s", model.KindOf(err), model.ErrBatchRejected)
	}
	stats, _ := eng.Statistics()
	if stats.TotalEntities != 0 {
		t.Errorf("rejected batch left %d entities", stats.TotalEntities)
	}

	mustSeed(t, eng, []model.Entity{
		newPerson("p1", "Ada"), newDept("d1", "Engineering"), newSystem("s1", "payments"),
	}, nil)
	err = eng.AddRelationshipsBulk([]*model.Relationship{
		edge("r1", model.RelWorksIn, "p1", "d1"),
		edge("r2", model.RelGoverns, "p1", "s1"),
	})
	if model.KindOf(err) != model.ErrBatchRejected {
		t.Fatalf("relationship batch: error kind = %s, want %s", model.KindOf(err), model.ErrBatchRejected)
	}
	items := model.AsError(err).Items
	if len(items) != 1 || items[0].Index != 1 || items[0].Kind != model.ErrSchemaViolation {
		t.Errorf("items = %+v, want schema_violation at index 1", items)
	}
	stats, _ = eng.Statistics()
	if stats.TotalRelationships != 0 {
		t.Errorf("rejected batch left %d relationships", stats.TotalRelationships)
	}
}

func TestSQLite_RemoveEntityCascades(t *testing.T) {
	eng := sqliteEngine(t)
	mustSeed(t, eng,
		[]model.Entity{newPerson("p1", "Ada"), newDept("d1", "Engineering")},
		[]*model.Relationship{edge("r1", model.RelWorksIn, "p1", "d1")})

	removed, err := eng.RemoveEntity("p1")
	if err != nil || !removed {
		t.Fatalf("remove = (%v, %v), want (true, nil)", removed, err)
	}
	if _, err := eng.GetRelationship("r1"); model.KindOf(err) != model.ErrNotFound {
		t.Error("edge should be cascaded away")
	}
}

func TestSQLite_TraversalsAndStatistics(t *testing.T) {
	eng := sqliteEngine(t)
	mustSeed(t, eng,
		[]model.Entity{newSystem("v", "web"), newSystem("w", "db"), newAsset("d", "orders")},
		[]*model.Relationship{
			edge("r1", model.RelDependsOn, "v", "w"),
			edge("r2", model.RelStores, "w", "d"),
		})

	path, err := eng.ShortestPath("v", "d")
	if err != nil {
		t.Fatalf("shortest path: %v", err)
	}
	if len(path) != 3 || path[0] != "v" || path[2] != "d" {
		t.Errorf("path = %v, want [v w d]", path)
	}

	layers, err := eng.BlastRadius("v", 2)
	if err != nil {
		t.Fatalf("blast radius: %v", err)
	}
	if len(layers[1]) != 1 || layers[1][0].Common().ID != "w" {
		t.Errorf("depth 1 = %v, want [w]", ids(layers[1]))
	}
	if len(layers[2]) != 1 || layers[2][0].Common().ID != "d" {
		t.Errorf("depth 2 = %v, want [d]", ids(layers[2]))
	}

	nbs, _ := eng.Neighbors("w", DirectionBoth, NeighborFilter{})
	if len(nbs) != 2 {
		t.Errorf("neighbors of w = %v, want 2", ids(nbs))
	}

	stats, err := eng.Statistics()
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalEntities != 3 || stats.TotalRelationships != 2 {
		t.Errorf("totals = %d/%d, want 3/2", stats.TotalEntities, stats.TotalRelationships)
	}
	if !stats.IsWeaklyConnected {
		t.Error("chain graph should be weakly connected")
	}

	top, _ := eng.MostConnected(1)
	if len(top) != 1 || top[0].ID != "w" || top[0].Degree != 2 {
		t.Errorf("most connected = %+v, want w with degree 2", top)
	}
}

func TestSQLite_AnalyticsUnsupported(t *testing.T) {
	eng := sqliteEngine(t)
	if _, err := eng.BetweennessCentrality(); model.KindOf(err) != model.ErrUnsupported {
		t.Errorf("betweenness error kind = %s, want %s", model.KindOf(err), model.ErrUnsupported)
	}
	if _, err := eng.PageRank(); model.KindOf(err) != model.ErrUnsupported {
		t.Errorf("pagerank error kind = %s, want %s", model.KindOf(err), model.ErrUnsupported)
	}
}

func TestSQLite_ListOrderSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")

	eng, err := NewSQLite(Options{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	mustSeed(t, eng, []model.Entity{
		newPerson("p1", "Ada"), newPerson("p2", "Grace"), newPerson("p3", "Edsger"),
	}, nil)
	if err := eng.(*SQL).Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLite(Options{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.(*SQL).Close()

	list, err := reopened.ListEntities(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := ids(list)
	want := []string{"p1", "p2", "p3"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("order after reopen = %v, want %v", got, want)
		}
	}

	// New inserts must continue the sequence, not collide with it.
	if err := reopened.AddEntity(newPerson("p4", "Barbara")); err != nil {
		t.Fatalf("insert after reopen: %v", err)
	}
	list, _ = reopened.ListEntities(ListFilter{})
	if len(list) != 4 || list[3].Common().ID != "p4" {
		t.Errorf("after insert = %v, want p4 last", ids(list))
	}
}

func TestSQLite_Clear(t *testing.T) {
	eng := sqliteEngine(t)
	mustSeed(t, eng,
		[]model.Entity{newPerson("p1", "Ada"), newDept("d1", "Engineering")},
		[]*model.Relationship{edge("r1", model.RelWorksIn, "p1", "d1")})

	if err := eng.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	stats, _ := eng.Statistics()
	if stats.TotalEntities != 0 || stats.TotalRelationships != 0 {
		t.Errorf("after clear: %d/%d", stats.TotalEntities, stats.TotalRelationships)
	}
	if err := eng.AddEntity(newPerson("p1", "Ada")); err != nil {
		t.Errorf("insert after clear: %v", err)
	}
}
