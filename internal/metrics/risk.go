package metrics

import "math"

// Risk scoring weights. Connected vulnerabilities dominate, critical ones
// especially; degree and internet exposure add structural pressure.
const (
	riskWeightVulnerability  = 10.0
	riskWeightCriticalVuln   = 25.0
	riskWeightDegree         = 2.0
	riskWeightInternetFacing = 20.0
	riskScoreCeiling         = 100.0
)

// RiskFactors itemises the inputs to an entity risk score.
type RiskFactors struct {
	Vulnerabilities           int `json:"vulnerabilities"`
	CriticalVulnerabilities   int `json:"critical_vulnerabilities"`
	Degree                    int `json:"degree"`
	InternetFacingConnections int `json:"internet_facing_connections"`
}

// ScoreRisk combines the factors into a score clamped to [0, 100] and
// rounded to one decimal. Critical vulnerabilities count on top of the
// plain vulnerability weight.
func ScoreRisk(f RiskFactors) float64 {
	score := riskWeightVulnerability*float64(f.Vulnerabilities) +
		riskWeightCriticalVuln*float64(f.CriticalVulnerabilities) +
		riskWeightDegree*float64(f.Degree) +
		riskWeightInternetFacing*float64(f.InternetFacingConnections)
	if score > riskScoreCeiling {
		score = riskScoreCeiling
	}
	return math.Round(score*10) / 10
}
