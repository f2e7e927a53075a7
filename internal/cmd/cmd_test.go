package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/anthropics/og/internal/config"
	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// initTestRoot stands in for the root PersistentPreRunE, which does not
// run when command logic is called directly.
func initTestRoot(t *testing.T) {
	t.Helper()
	cfg = config.DefaultConfig()
	logger = zap.NewNop()
	outputFormat = "text"
	t.Setenv("GRAPH_DEFAULT_PATH", "")
}

func testPerson(id, name string) *model.Person {
	p := &model.Person{Base: model.NewBase(model.KindPerson, name, "")}
	p.ID = id
	return p
}

func testDepartment(id, name string) *model.Department {
	d := &model.Department{
		Base:      model.NewBase(model.KindDepartment, name, ""),
		Code:      "PE",
		Headcount: 2,
	}
	d.ID = id
	return d
}

// seedFile writes a three-entity graph to dir and returns its path.
func seedFile(t *testing.T, dir string) string {
	t.Helper()
	eng := graph.NewMemory(graph.Options{})
	entities := []model.Entity{
		testPerson("p1", "Dana Hoffman"),
		testPerson("p2", "Miles Archer"),
		testDepartment("d1", "Platform Engineering"),
	}
	for _, e := range entities {
		if err := eng.AddEntity(e); err != nil {
			t.Fatalf("seed entity %q: %v", e.Common().ID, err)
		}
	}
	rel := model.NewRelationship(model.RelWorksIn, "p1", "d1")
	rel.ID = "r-works-1"
	if err := eng.AddRelationship(rel); err != nil {
		t.Fatalf("seed relationship: %v", err)
	}
	path := filepath.Join(dir, "org.json")
	if err := export.WriteFile(eng, path); err != nil {
		t.Fatalf("write graph file: %v", err)
	}
	return path
}

func TestParseSizes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "single", input: "100", want: []int{100}},
		{name: "list with spaces", input: "100, 500, 2000", want: []int{100, 500, 2000}},
		{name: "zero rejected", input: "0", wantErr: true},
		{name: "negative rejected", input: "100,-5", wantErr: true},
		{name: "non-numeric rejected", input: "lots", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSizes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSizes(%q) = %v, want error", tt.input, got)
				}
				if model.KindOf(err) != model.ErrValidation {
					t.Errorf("error kind = %v, want %v", model.KindOf(err), model.ErrValidation)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSizes(%q): %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseSizes(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sizes[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGraphmlName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "graph.json", want: "graph.graphml"},
		{input: "out/acme.json", want: "out/acme.graphml"},
		{input: "graph", want: "graph.graphml"},
		{input: ".json", want: ".json.graphml"},
	}

	for _, tt := range tests {
		if got := graphmlName(tt.input); got != tt.want {
			t.Errorf("graphmlName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestImportCommand_RoundTrip(t *testing.T) {
	initTestRoot(t)
	dir := t.TempDir()
	src := seedFile(t, dir)

	importOut = filepath.Join(dir, "out.json")
	importMerge = ""
	importShards = false
	importDryRun = false
	importStrict = false

	if err := runImport(importCmd, []string{src}); err != nil {
		t.Fatalf("runImport: %v", err)
	}

	eng := graph.NewMemory(graph.Options{})
	counts, err := export.ImportFile(eng, importOut, false)
	if err != nil {
		t.Fatalf("re-import output: %v", err)
	}
	if counts.Entities != 3 || counts.Relationships != 1 {
		t.Errorf("round-trip counts = %d/%d, want 3/1", counts.Entities, counts.Relationships)
	}
}

func TestImportCommand_DryRunWritesNothing(t *testing.T) {
	initTestRoot(t)
	dir := t.TempDir()
	src := seedFile(t, dir)

	importOut = filepath.Join(dir, "out.json")
	importMerge = ""
	importShards = false
	importDryRun = true
	importStrict = false

	if err := runImport(importCmd, []string{src}); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if _, err := os.Stat(importOut); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %s", importOut)
	}
}

func TestExportCommand_GraphML(t *testing.T) {
	initTestRoot(t)
	dir := t.TempDir()
	src := seedFile(t, dir)

	exportOut = filepath.Join(dir, "org.graphml")
	exportGraphML = true
	exportShards = false

	if err := runExport(exportCmd, []string{src}); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	data, err := os.ReadFile(exportOut)
	if err != nil {
		t.Fatalf("read graphml: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "<graphml") {
		t.Error("output missing <graphml element")
	}
	if !strings.Contains(got, "p1") {
		t.Error("output missing entity id p1")
	}
}

func TestExportCommand_Shards(t *testing.T) {
	initTestRoot(t)
	dir := t.TempDir()
	src := seedFile(t, dir)

	exportOut = filepath.Join(dir, "shards")
	exportGraphML = false
	exportShards = true

	if err := runExport(exportCmd, []string{src}); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	eng := graph.NewMemory(graph.Options{})
	counts, err := export.ImportShards(eng, exportOut, false)
	if err != nil {
		t.Fatalf("import shards: %v", err)
	}
	if counts.Entities != 3 || counts.Relationships != 1 {
		t.Errorf("shard counts = %d/%d, want 3/1", counts.Entities, counts.Relationships)
	}
}

func TestExportCommand_RejectsModeCombination(t *testing.T) {
	initTestRoot(t)
	exportGraphML = true
	exportShards = true

	err := runExport(exportCmd, nil)
	if model.KindOf(err) != model.ErrValidation {
		t.Fatalf("error kind = %v, want %v", model.KindOf(err), model.ErrValidation)
	}
}

func TestInspectCommand_NoGraphExitsClean(t *testing.T) {
	initTestRoot(t)
	if err := runInspect(inspectCmd, nil); err != nil {
		t.Fatalf("runInspect with no graph: %v", err)
	}
}

func TestInspectCommand_MissingFileFails(t *testing.T) {
	initTestRoot(t)
	err := runInspect(inspectCmd, []string{filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("runInspect(missing file) = nil, want error")
	}
}

func TestBuildCommandInfo_CoversCommands(t *testing.T) {
	info := buildCommandInfo(rootCmd)
	names := make(map[string]bool, len(info.Subcommands))
	for _, sub := range info.Subcommands {
		names[sub.Name] = true
	}
	for _, want := range []string{"demo", "generate", "inspect", "import", "export", "serve", "benchmark"} {
		if !names[want] {
			t.Errorf("capability discovery missing command %q", want)
		}
	}
}

func TestGenerateOrgCommand_WritesGraph(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline run")
	}
	initTestRoot(t)
	dir := t.TempDir()

	generateIndustry = "technology"
	generateEmployees = 100
	generateSeed = 42
	generateOut = filepath.Join(dir, "graph.json")

	if err := runGenerateOrg(generateOrgCmd, nil); err != nil {
		t.Fatalf("runGenerateOrg: %v", err)
	}

	eng := graph.NewMemory(graph.Options{})
	counts, err := export.ImportFile(eng, generateOut, false)
	if err != nil {
		t.Fatalf("re-import generated graph: %v", err)
	}
	if counts.Entities < 250 || counts.Entities > 310 {
		t.Errorf("entities = %d, want 250..310", counts.Entities)
	}
	if counts.Relationships < 600 || counts.Relationships > 700 {
		t.Errorf("relationships = %d, want 600..700", counts.Relationships)
	}
}
