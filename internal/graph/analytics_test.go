package graph

import (
	"testing"

	"github.com/anthropics/og/internal/model"
)

func newVuln(id, name, severity string) *model.Vulnerability {
	v := &model.Vulnerability{
		Base:     model.NewBase(model.KindVulnerability, name, ""),
		Severity: severity,
		Status:   "open",
	}
	v.ID = id
	return v
}

func TestAssessRisk(t *testing.T) {
	m := NewMemory(Options{})
	target := newSystem("s1", "payments")
	exposed := newSystem("s2", "edge-proxy")
	exposed.IsInternetFacing = true
	mustSeed(t, m,
		[]model.Entity{target, exposed, newVuln("v1", "CVE-2024-0001", "critical"), newVuln("v2", "CVE-2024-0002", "medium")},
		[]*model.Relationship{
			edge("r1", model.RelAffects, "v1", "s1"),
			edge("r2", model.RelAffects, "v2", "s1"),
			edge("r3", model.RelDependsOn, "s1", "s2"),
		})

	assessment, err := AssessRisk(m, "s1")
	if err != nil {
		t.Fatalf("assess risk: %v", err)
	}
	if assessment.EntityName != "payments" {
		t.Errorf("entity name = %q, want %q", assessment.EntityName, "payments")
	}
	f := assessment.Factors
	if f.Vulnerabilities != 2 || f.CriticalVulnerabilities != 1 {
		t.Errorf("vuln factors = %d/%d, want 2/1", f.Vulnerabilities, f.CriticalVulnerabilities)
	}
	if f.Degree != 3 {
		t.Errorf("degree = %d, want 3", f.Degree)
	}
	if f.InternetFacingConnections != 1 {
		t.Errorf("internet-facing = %d, want 1", f.InternetFacingConnections)
	}
	// 10*2 + 25*1 + 2*3 + 20*1
	if assessment.RiskScore != 71.0 {
		t.Errorf("risk score = %v, want 71.0", assessment.RiskScore)
	}
}

func TestAssessRisk_IsolatedEntityScoresZero(t *testing.T) {
	m := NewMemory(Options{})
	mustSeed(t, m, []model.Entity{newSystem("s1", "payments")}, nil)
	assessment, err := AssessRisk(m, "s1")
	if err != nil {
		t.Fatalf("assess risk: %v", err)
	}
	if assessment.RiskScore != 0 {
		t.Errorf("risk score = %v, want 0", assessment.RiskScore)
	}
}

func TestAssessRisk_UnknownEntity(t *testing.T) {
	m := NewMemory(Options{})
	if _, err := AssessRisk(m, "ghost"); model.KindOf(err) != model.ErrNotFound {
		t.Errorf("error kind = %s, want %s", model.KindOf(err), model.ErrNotFound)
	}
}

func TestAttackPath_DelegatesToShortestPath(t *testing.T) {
	m := NewMemory(Options{})
	mustSeed(t, m,
		[]model.Entity{newSystem("a", "edge"), newSystem("b", "core")},
		[]*model.Relationship{edge("r1", model.RelDependsOn, "a", "b")})

	path, err := AttackPath(m, "a", "b")
	if err != nil {
		t.Fatalf("attack path: %v", err)
	}
	if len(path) != 2 || path[0] != "a" || path[1] != "b" {
		t.Errorf("path = %v, want [a b]", path)
	}
}
