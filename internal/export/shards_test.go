package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

func TestSplitAndImportShards_RoundTrip(t *testing.T) {
	src := graph.NewMemory(graph.Options{})
	seed(t, src,
		[]model.Entity{newPerson("p2", "Grace"), newPerson("p1", "Ada"), newDept("d1", "Platform")},
		[]*model.Relationship{
			edge("r2", model.RelWorksIn, "p2", "d1"),
			edge("r1", model.RelWorksIn, "p1", "d1"),
		})

	root := t.TempDir()
	counts, err := Split(src, root)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if counts.Entities != 3 || counts.Relationships != 2 {
		t.Errorf("counts = %+v, want 3 entities and 2 relationships", counts)
	}

	for _, rel := range []string{
		"entities/person.json",
		"entities/department.json",
		"relationships/works_in.json",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected shard %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "entities", "system.json")); !os.IsNotExist(err) {
		t.Errorf("system.json should not exist for a graph with no systems")
	}

	dst := graph.NewMemory(graph.Options{})
	counts, err = ImportShards(dst, root, false)
	if err != nil {
		t.Fatalf("ImportShards: %v", err)
	}
	if counts.Entities != 3 || counts.Relationships != 2 {
		t.Errorf("import counts = %+v, want 3 entities and 2 relationships", counts)
	}

	neighbors, err := dst.Neighbors("d1", graph.DirectionIn, graph.NeighborFilter{})
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 2 {
		t.Errorf("len(neighbors of d1) = %d, want 2", len(neighbors))
	}
}

func TestSplit_SortsShardsByID(t *testing.T) {
	src := graph.NewMemory(graph.Options{})
	seed(t, src,
		[]model.Entity{newPerson("p3", "Carol"), newPerson("p1", "Ada"), newPerson("p2", "Bob")},
		nil)

	root := t.TempDir()
	if _, err := Split(src, root); err != nil {
		t.Fatalf("Split: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "entities", "person.json"))
	if err != nil {
		t.Fatalf("read shard: %v", err)
	}
	var raws []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &raws); err != nil {
		t.Fatalf("decode shard: %v", err)
	}
	want := []string{"p1", "p2", "p3"}
	if len(raws) != len(want) {
		t.Fatalf("len(shard) = %d, want %d", len(raws), len(want))
	}
	for i, w := range want {
		if raws[i].ID != w {
			t.Errorf("shard[%d].ID = %q, want %q", i, raws[i].ID, w)
		}
	}
}

func TestSplit_EmptyGraphWritesNothing(t *testing.T) {
	root := t.TempDir()
	counts, err := Split(graph.NewMemory(graph.Options{}), root)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if counts.Entities != 0 || counts.Relationships != 0 {
		t.Errorf("counts = %+v, want zeros", counts)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty graph produced %d directory entries, want 0", len(entries))
	}
}

func TestBuild_MissingRootIsEmpty(t *testing.T) {
	doc, err := Build(filepath.Join(t.TempDir(), "absent"), false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Entities) != 0 || len(doc.Relationships) != 0 {
		t.Errorf("doc = %+v, want empty", doc)
	}
}

func TestBuild_ReportsShardItemErrors(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "entities")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	shard := `[{"entity_type":"person","id":"p1","name":"Ada"},{"entity_type":"person","id":"p2"}]`
	if err := os.WriteFile(filepath.Join(dir, "person.json"), []byte(shard), 0644); err != nil {
		t.Fatalf("write shard: %v", err)
	}

	_, err := Build(root, false)
	if model.KindOf(err) != model.ErrBatchRejected {
		t.Fatalf("Build error kind = %v, want %v", model.KindOf(err), model.ErrBatchRejected)
	}
	items := model.AsError(err).Items
	if len(items) != 1 || items[0].Index != 1 {
		t.Fatalf("items = %+v, want one error at index 1", items)
	}
}

func TestBuild_RejectsNonArrayShard(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "relationships")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "works_in.json"), []byte(`{"oops":true}`), 0644); err != nil {
		t.Fatalf("write shard: %v", err)
	}

	_, err := Build(root, false)
	if model.KindOf(err) != model.ErrValidation {
		t.Errorf("Build error kind = %v, want %v", model.KindOf(err), model.ErrValidation)
	}
}
