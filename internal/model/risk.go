package model

// RiskLevel is a five point ordinal scale used for likelihood, impact and
// derived risk ratings.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

var riskLevels = []RiskLevel{RiskVeryLow, RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}

// Valid reports whether l is one of the five defined levels.
func (l RiskLevel) Valid() bool {
	for _, v := range riskLevels {
		if l == v {
			return true
		}
	}
	return false
}

// Index returns the ordinal position of l, 0 for very_low through 4 for
// very_high, and -1 for an unknown level.
func (l RiskLevel) Index() int {
	for i, v := range riskLevels {
		if l == v {
			return i
		}
	}
	return -1
}

// riskMatrix maps likelihood (row) and impact (column) to an inherent risk
// level. Rows and columns run very_low through very_high.
var riskMatrix = [5][5]RiskLevel{
	{RiskVeryLow, RiskVeryLow, RiskLow, RiskLow, RiskMedium},
	{RiskVeryLow, RiskLow, RiskLow, RiskMedium, RiskHigh},
	{RiskLow, RiskLow, RiskMedium, RiskHigh, RiskHigh},
	{RiskLow, RiskMedium, RiskHigh, RiskHigh, RiskVeryHigh},
	{RiskMedium, RiskHigh, RiskHigh, RiskVeryHigh, RiskVeryHigh},
}

// InherentRisk derives the inherent risk level from likelihood and impact.
// Unknown inputs map to medium.
func InherentRisk(likelihood, impact RiskLevel) RiskLevel {
	li, ii := likelihood.Index(), impact.Index()
	if li < 0 || ii < 0 {
		return RiskMedium
	}
	return riskMatrix[li][ii]
}

// ResidualRisk lowers the inherent level by delta steps, floored at very_low.
// A negative delta leaves the level unchanged.
func ResidualRisk(inherent RiskLevel, delta int) RiskLevel {
	idx := inherent.Index()
	if idx < 0 {
		return RiskMedium
	}
	if delta > 0 {
		idx -= delta
	}
	if idx < 0 {
		idx = 0
	}
	return riskLevels[idx]
}
