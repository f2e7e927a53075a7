package synth

import (
	"math/rand"

	"github.com/anthropics/og/internal/model"
)

// maxPeople caps person generation for very large organisations; department
// headcounts still derive from the full employee count.
const maxPeople = 3500

// ScalingCoefficients holds the employees-per-entity divisor for every
// non-derived kind. A coefficient of 40 means one entity per 40 employees
// before the size-tier multiplier is applied.
type ScalingCoefficients struct {
	Systems       int
	Vendors       int
	DataAssets    int
	Policies      int
	Regulations   int
	Controls      int
	Risks         int
	Threats       int
	ThreatActors  int
	Incidents     int
	Integrations  int
	DataDomains   int
	DataFlows     int
	OrgUnits      int
	Capabilities  int
	Sites         int
	Geographies   int
	Jurisdictions int
	Portfolios    int
	Products      int
	Segments      int
	Customers     int
	Contracts     int
	Initiatives   int
}

// CoefficientsFor returns the coefficient table for an industry. Unknown
// industries fall back to the technology table.
func CoefficientsFor(industry Industry) ScalingCoefficients {
	switch industry {
	case IndustryFinancial:
		return ScalingCoefficients{
			Systems: 12, Vendors: 35, DataAssets: 10, Policies: 40,
			Regulations: 200, Controls: 20, Risks: 30, Threats: 150,
			ThreatActors: 200, Incidents: 150, Integrations: 40,
			DataDomains: 300, DataFlows: 20, OrgUnits: 100,
			Capabilities: 80, Sites: 400, Geographies: 800,
			Jurisdictions: 600, Portfolios: 1500, Products: 150,
			Segments: 800, Customers: 50, Contracts: 40, Initiatives: 150,
		}
	case IndustryHealthcare:
		return ScalingCoefficients{
			Systems: 15, Vendors: 50, DataAssets: 5, Policies: 50,
			Regulations: 200, Controls: 25, Risks: 40, Threats: 200,
			ThreatActors: 300, Incidents: 100, Integrations: 35,
			DataDomains: 200, DataFlows: 15, OrgUnits: 120,
			Capabilities: 100, Sites: 300, Geographies: 800,
			Jurisdictions: 600, Portfolios: 2000, Products: 200,
			Segments: 1000, Customers: 80, Contracts: 50, Initiatives: 200,
		}
	default:
		return ScalingCoefficients{
			Systems: 8, Vendors: 40, DataAssets: 15, Policies: 100,
			Regulations: 400, Controls: 50, Risks: 80, Threats: 200,
			ThreatActors: 250, Incidents: 200, Integrations: 30,
			DataDomains: 400, DataFlows: 25, OrgUnits: 150,
			Capabilities: 100, Sites: 500, Geographies: 1000,
			Jurisdictions: 1000, Portfolios: 2000, Products: 200,
			Segments: 1000, Customers: 100, Contracts: 60, Initiatives: 200,
		}
	}
}

func (c ScalingCoefficients) coefficientFor(kind model.EntityType) int {
	switch kind {
	case model.KindSystem:
		return c.Systems
	case model.KindVendor:
		return c.Vendors
	case model.KindDataAsset:
		return c.DataAssets
	case model.KindPolicy:
		return c.Policies
	case model.KindRegulation:
		return c.Regulations
	case model.KindControl:
		return c.Controls
	case model.KindRisk:
		return c.Risks
	case model.KindThreat:
		return c.Threats
	case model.KindThreatActor:
		return c.ThreatActors
	case model.KindIncident:
		return c.Incidents
	case model.KindIntegration:
		return c.Integrations
	case model.KindDataDomain:
		return c.DataDomains
	case model.KindDataFlow:
		return c.DataFlows
	case model.KindOrganizationalUnit:
		return c.OrgUnits
	case model.KindBusinessCapability:
		return c.Capabilities
	case model.KindSite:
		return c.Sites
	case model.KindGeography:
		return c.Geographies
	case model.KindJurisdiction:
		return c.Jurisdictions
	case model.KindProductPortfolio:
		return c.Portfolios
	case model.KindProduct:
		return c.Products
	case model.KindMarketSegment:
		return c.Segments
	case model.KindCustomer:
		return c.Customers
	case model.KindContract:
		return c.Contracts
	case model.KindInitiative:
		return c.Initiatives
	default:
		return 0
	}
}

// scaleTier returns the size multiplier for an organisation. Larger
// organisations carry proportionally more of every kind.
func scaleTier(employees int) float64 {
	switch {
	case employees < 250:
		return 0.7
	case employees < 2000:
		return 1.0
	case employees < 10000:
		return 1.2
	default:
		return 1.4
	}
}

// Scaler resolves the generated count per entity kind: an employee-scaled
// draw clamped to the profile range for most kinds, and fixed derivations
// for location, department, network, role, person, and vulnerability. Each
// kind is drawn at most once; repeated calls return the cached draw, which
// lets the vulnerability count (a fraction of the system count) resolve
// before the system generator itself runs.
type Scaler struct {
	profile *OrgProfile
	coeffs  ScalingCoefficients
	rng     *rand.Rand
	draws   map[model.EntityType]int
}

// NewScaler builds a scaler over the profile using the shared seeded RNG.
func NewScaler(profile *OrgProfile, rng *rand.Rand) *Scaler {
	return &Scaler{
		profile: profile,
		coeffs:  CoefficientsFor(profile.Industry),
		rng:     rng,
		draws:   make(map[model.EntityType]int),
	}
}

// Count returns the number of entities to generate for kind.
func (s *Scaler) Count(kind model.EntityType) int {
	if n, ok := s.draws[kind]; ok {
		return n
	}
	n := s.resolve(kind)
	s.draws[kind] = n
	return n
}

func (s *Scaler) resolve(kind model.EntityType) int {
	p := s.profile
	switch kind {
	case model.KindLocation:
		n := p.EmployeeCount/p.LocationDivisor + 1
		if n > p.LocationCeiling {
			n = p.LocationCeiling
		}
		if n < 1 {
			n = 1
		}
		return n
	case model.KindDepartment:
		return len(p.Departments)
	case model.KindNetwork:
		return len(p.Networks)
	case model.KindRole:
		// The role generator derives its own count from departments.
		return 0
	case model.KindPerson:
		if p.EmployeeCount > maxPeople {
			return maxPeople
		}
		return p.EmployeeCount
	case model.KindVulnerability:
		n := int(float64(s.Count(model.KindSystem)) * p.VulnerabilityProbability)
		if n < 1 {
			n = 1
		}
		return n
	}

	r, ok := p.rangeFor(kind)
	if !ok {
		return 0
	}
	if v, ok := p.Overrides[kind]; ok {
		return clampInt(v, r.Low, r.High)
	}
	low, high := scaledRange(p.EmployeeCount, s.coeffs.coefficientFor(kind), r.Low, r.High)
	return low + s.rng.Intn(high-low+1)
}

// scaledRange converts an employee count into a (low, high) draw window.
// The window tracks employees/coefficient adjusted by the size tier, with
// 20% spread on either side, clamped so low < high always holds inside
// [floor, ceiling].
func scaledRange(employees, coefficient, floor, ceiling int) (int, int) {
	if coefficient <= 0 {
		return floor, ceiling
	}
	base := int(float64(employees) / float64(coefficient) * scaleTier(employees))
	if base < floor {
		base = floor
	}
	low := int(float64(base) * 0.8)
	if low < floor {
		low = floor
	}
	if low > ceiling-1 {
		low = ceiling - 1
	}
	high := int(float64(base) * 1.2)
	if high < low+1 {
		high = low + 1
	}
	if high > ceiling {
		high = ceiling
	}
	return low, high
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
