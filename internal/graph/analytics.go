package graph

import (
	"github.com/anthropics/og/internal/metrics"
	"github.com/anthropics/og/internal/model"
)

// RiskAssessment is the scored exposure of one entity.
type RiskAssessment struct {
	EntityID   string              `json:"entity_id"`
	EntityName string              `json:"entity_name"`
	RiskScore  float64             `json:"risk_score"`
	Factors    metrics.RiskFactors `json:"factors"`
}

// AssessRisk scores an entity from its connected vulnerabilities, its
// degree, and the internet-facing systems it touches.
func AssessRisk(eng Engine, entityID string) (*RiskAssessment, error) {
	e, err := eng.GetEntity(entityID)
	if err != nil {
		return nil, err
	}
	neighbors, err := eng.Neighbors(entityID, DirectionBoth, NeighborFilter{})
	if err != nil {
		return nil, err
	}
	rels, err := eng.Relationships(entityID, DirectionBoth, "")
	if err != nil {
		return nil, err
	}

	var factors metrics.RiskFactors
	factors.Degree = len(rels)
	for _, nb := range neighbors {
		switch n := nb.(type) {
		case *model.Vulnerability:
			factors.Vulnerabilities++
			if n.Severity == "critical" {
				factors.CriticalVulnerabilities++
			}
		case *model.System:
			if n.IsInternetFacing {
				factors.InternetFacingConnections++
			}
		}
	}
	return &RiskAssessment{
		EntityID:   entityID,
		EntityName: e.Common().Name,
		RiskScore:  metrics.ScoreRisk(factors),
		Factors:    factors,
	}, nil
}

// AttackPath is the shortest undirected path between two entities,
// exposed under the name the security tooling uses.
func AttackPath(eng Engine, sourceID, targetID string) ([]string, error) {
	return eng.ShortestPath(sourceID, targetID)
}
