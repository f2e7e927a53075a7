package synth

import (
	"sort"
	"strings"
	"testing"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

func runOrchestrator(t *testing.T, industry Industry, employees int, seed int64) (graph.Engine, *Result) {
	t.Helper()
	profile, err := ProfileFor(industry, employees)
	if err != nil {
		t.Fatalf("ProfileFor: %v", err)
	}
	engine := graph.NewMemory(graph.Options{})
	orch := NewOrchestrator(engine, profile, seed, nil)
	result, err := orch.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return engine, result
}

func TestRun_TechnologyScale(t *testing.T) {
	engine, result := runOrchestrator(t, IndustryTechnology, 100, 42)

	total := result.TotalEntities()
	if total < 250 || total > 310 {
		t.Errorf("entity total = %d, want within [250, 310]; counts: %v", total, result.EntityCounts)
	}
	if result.Relationships < 600 || result.Relationships > 700 {
		t.Errorf("relationship total = %d, want within [600, 700]", result.Relationships)
	}
	if result.Quality.OverallScore < 0.95 {
		t.Errorf("quality = %v, want at least 0.95; warnings: %v",
			result.Quality.OverallScore, result.Quality.Warnings)
	}

	stats, err := engine.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalEntities != total {
		t.Errorf("engine holds %d entities, result reports %d", stats.TotalEntities, total)
	}
	if stats.TotalRelationships != result.Relationships {
		t.Errorf("engine holds %d relationships, result reports %d",
			stats.TotalRelationships, result.Relationships)
	}
}

func TestRun_EveryKindGenerated(t *testing.T) {
	_, result := runOrchestrator(t, IndustryTechnology, 100, 42)

	for _, layer := range generationOrder {
		for _, kind := range layer {
			if result.EntityCounts[string(kind)] == 0 {
				t.Errorf("kind %s produced no entities", kind)
			}
		}
	}
}

func collectIDs(t *testing.T, engine graph.Engine) (entityIDs, relIDs []string) {
	t.Helper()
	entities, err := engine.ListEntities(graph.ListFilter{})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	for _, e := range entities {
		entityIDs = append(entityIDs, e.Common().ID)
		rels, err := engine.Relationships(e.Common().ID, graph.DirectionOut, "")
		if err != nil {
			t.Fatalf("Relationships: %v", err)
		}
		for _, r := range rels {
			relIDs = append(relIDs, r.ID)
		}
	}
	sort.Strings(entityIDs)
	sort.Strings(relIDs)
	return entityIDs, relIDs
}

func TestRun_SameSeedSameIDs(t *testing.T) {
	engineA, resultA := runOrchestrator(t, IndustryTechnology, 100, 42)
	engineB, resultB := runOrchestrator(t, IndustryTechnology, 100, 42)

	if resultA.TotalEntities() != resultB.TotalEntities() {
		t.Fatalf("entity totals differ: %d vs %d", resultA.TotalEntities(), resultB.TotalEntities())
	}
	if resultA.Relationships != resultB.Relationships {
		t.Fatalf("relationship totals differ: %d vs %d", resultA.Relationships, resultB.Relationships)
	}

	entsA, relsA := collectIDs(t, engineA)
	entsB, relsB := collectIDs(t, engineB)

	for i := range entsA {
		if entsA[i] != entsB[i] {
			t.Fatalf("entity id %d differs: %s vs %s", i, entsA[i], entsB[i])
		}
	}
	for i := range relsA {
		if relsA[i] != relsB[i] {
			t.Fatalf("relationship id %d differs: %s vs %s", i, relsA[i], relsB[i])
		}
	}
}

func TestRun_DifferentSeedsDiffer(t *testing.T) {
	engineA, _ := runOrchestrator(t, IndustryTechnology, 100, 1)
	engineB, _ := runOrchestrator(t, IndustryTechnology, 100, 2)

	entsA, _ := collectIDs(t, engineA)
	entsB, _ := collectIDs(t, engineB)

	same := 0
	for _, id := range entsA {
		i := sort.SearchStrings(entsB, id)
		if i < len(entsB) && entsB[i] == id {
			same++
		}
	}
	if same != 0 {
		t.Errorf("%d entity ids shared between different seeds", same)
	}
}

func TestRun_DepartmentSubdivision(t *testing.T) {
	engine, result := runOrchestrator(t, IndustryTechnology, 14000, 42)

	if got := result.EntityCounts[string(model.KindPerson)]; got != maxPeople {
		t.Errorf("person count = %d, want cap %d", got, maxPeople)
	}

	depts, err := engine.ListEntities(graph.ListFilter{Kind: model.KindDepartment})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}

	var engineering *model.Department
	var subs []*model.Department
	for _, e := range depts {
		d := e.(*model.Department)
		if d.Name == "Engineering" && d.ParentDepartmentID == "" {
			engineering = d
		}
	}
	if engineering == nil {
		t.Fatal("no engineering root department")
	}
	for _, e := range depts {
		d := e.(*model.Department)
		if d.ParentDepartmentID == engineering.ID {
			subs = append(subs, d)
		}
	}
	if len(subs) < 5 {
		t.Fatalf("engineering sub-departments = %d, want at least 5", len(subs))
	}

	roles, err := engine.ListEntities(graph.ListFilter{Kind: model.KindRole})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	rolesByDept := make(map[string][]*model.Role)
	for _, e := range roles {
		r := e.(*model.Role)
		rolesByDept[r.DepartmentID] = append(rolesByDept[r.DepartmentID], r)
	}
	for _, sub := range subs {
		senior := false
		for _, r := range rolesByDept[sub.ID] {
			if strings.HasPrefix(r.Name, "Senior ") || strings.HasPrefix(r.Name, "Staff ") {
				senior = true
				break
			}
		}
		if !senior {
			t.Errorf("sub-department %q has no Senior or Staff role", sub.Name)
		}
	}

	// The parent keeps only a leadership headcount; roles attach to leaves.
	if engineering.Headcount >= subdivisionThreshold {
		t.Errorf("engineering root headcount = %d, want leadership remnant", engineering.Headcount)
	}
	if len(rolesByDept[engineering.ID]) != 0 {
		t.Errorf("engineering root has %d roles, want 0 (roles live on leaves)", len(rolesByDept[engineering.ID]))
	}
}

func TestRun_SmallOrgHasNoSubdivision(t *testing.T) {
	engine, _ := runOrchestrator(t, IndustryTechnology, 100, 42)

	depts, err := engine.ListEntities(graph.ListFilter{Kind: model.KindDepartment})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	for _, e := range depts {
		d := e.(*model.Department)
		if d.ParentDepartmentID != "" {
			t.Errorf("department %q has a parent; 100 employees never subdivide", d.Name)
		}
	}
}

func TestRun_IncidentThreatActorsResolve(t *testing.T) {
	engine, _ := runOrchestrator(t, IndustryTechnology, 100, 42)

	incidents, err := engine.ListEntities(graph.ListFilter{Kind: model.KindIncident})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	for _, e := range incidents {
		inc := e.(*model.Incident)
		if inc.ThreatActorID == "" {
			continue
		}
		actor, err := engine.GetEntity(inc.ThreatActorID)
		if err != nil {
			t.Fatalf("incident %s references unknown actor %s", inc.ID, inc.ThreatActorID)
		}
		if actor.Kind() != model.KindThreatActor {
			t.Errorf("incident actor reference resolves to %s, want threat_actor", actor.Kind())
		}
	}
}

func TestRun_ContractsReferenceVendors(t *testing.T) {
	engine, _ := runOrchestrator(t, IndustryTechnology, 100, 42)

	contracts, err := engine.ListEntities(graph.ListFilter{Kind: model.KindContract})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(contracts) == 0 {
		t.Fatal("no contracts generated")
	}
	for _, e := range contracts {
		ctr := e.(*model.Contract)
		if ctr.VendorID == "" {
			t.Errorf("contract %q carries no vendor", ctr.Name)
			continue
		}
		vendor, err := engine.GetEntity(ctr.VendorID)
		if err != nil {
			t.Fatalf("contract %s references unknown vendor %s", ctr.ID, ctr.VendorID)
		}
		if vendor.Kind() != model.KindVendor {
			t.Errorf("contract vendor reference resolves to %s, want vendor", vendor.Kind())
		}
	}
}
