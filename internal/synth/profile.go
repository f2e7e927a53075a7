package synth

import (
	"strings"

	"github.com/anthropics/og/internal/model"
)

// Industry selects a coefficient table and an organisation template.
type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryFinancial  Industry = "financial_services"
	IndustryHealthcare Industry = "healthcare"
)

// ParseIndustry accepts the canonical industry names and common short forms.
func ParseIndustry(s string) (Industry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tech", "technology":
		return IndustryTechnology, nil
	case "financial", "finance", "financial_services", "fintech":
		return IndustryFinancial, nil
	case "healthcare", "health":
		return IndustryHealthcare, nil
	default:
		return "", model.Validationf("unknown industry %q", s)
	}
}

// Range bounds a generated entity count, both ends inclusive.
type Range struct {
	Low  int
	High int
}

// DepartmentSpec describes one root department of the organisation.
// HeadcountFraction is the share of total employees the department holds.
type DepartmentSpec struct {
	Name              string
	HeadcountFraction float64
	Sensitivity       string
}

// NetworkSpec describes one network segment of the organisation.
type NetworkSpec struct {
	Name string
	CIDR string
	Zone string
}

// OrgProfile is the complete recipe for one synthetic organisation: its
// department and network layout, per-kind count ranges, and the behavioural
// fractions that shape generation. Count ranges act as floor/ceiling clamps
// for the employee-scaled draw in the Scaler.
type OrgProfile struct {
	Name          string
	Industry      Industry
	EmployeeCount int

	Departments []DepartmentSpec
	Networks    []NetworkSpec

	// LocationCeiling and LocationDivisor drive the dynamic location
	// formula max(1, min(ceiling, employees/divisor+1)).
	LocationCeiling int
	LocationDivisor int

	Systems       Range
	Vendors       Range
	DataAssets    Range
	Policies      Range
	Regulations   Range
	Controls      Range
	Risks         Range
	Threats       Range
	ThreatActors  Range
	Incidents     Range
	Integrations  Range
	DataDomains   Range
	DataFlows     Range
	OrgUnits      Range
	Capabilities  Range
	Sites         Range
	Geographies   Range
	Jurisdictions Range
	Portfolios    Range
	Products      Range
	Segments      Range
	Customers     Range
	Contracts     Range
	Initiatives   Range

	// VulnerabilityProbability is the expected vulnerabilities per system.
	VulnerabilityProbability float64
	ContractorFraction       float64
	RemoteFraction           float64

	// Overrides pins exact counts for non-derived kinds. Values are
	// clamped to the kind's floor and ceiling. Derived kinds (department,
	// role, network, vulnerability, person) ignore overrides.
	Overrides map[model.EntityType]int
}

// rangeFor maps an entity kind to its count range. Derived kinds have no
// range and report false.
func (p *OrgProfile) rangeFor(kind model.EntityType) (Range, bool) {
	switch kind {
	case model.KindSystem:
		return p.Systems, true
	case model.KindVendor:
		return p.Vendors, true
	case model.KindDataAsset:
		return p.DataAssets, true
	case model.KindPolicy:
		return p.Policies, true
	case model.KindRegulation:
		return p.Regulations, true
	case model.KindControl:
		return p.Controls, true
	case model.KindRisk:
		return p.Risks, true
	case model.KindThreat:
		return p.Threats, true
	case model.KindThreatActor:
		return p.ThreatActors, true
	case model.KindIncident:
		return p.Incidents, true
	case model.KindIntegration:
		return p.Integrations, true
	case model.KindDataDomain:
		return p.DataDomains, true
	case model.KindDataFlow:
		return p.DataFlows, true
	case model.KindOrganizationalUnit:
		return p.OrgUnits, true
	case model.KindBusinessCapability:
		return p.Capabilities, true
	case model.KindSite:
		return p.Sites, true
	case model.KindGeography:
		return p.Geographies, true
	case model.KindJurisdiction:
		return p.Jurisdictions, true
	case model.KindProductPortfolio:
		return p.Portfolios, true
	case model.KindProduct:
		return p.Products, true
	case model.KindMarketSegment:
		return p.Segments, true
	case model.KindCustomer:
		return p.Customers, true
	case model.KindContract:
		return p.Contracts, true
	case model.KindInitiative:
		return p.Initiatives, true
	default:
		return Range{}, false
	}
}

// ProfileFor returns the built-in organisation template for an industry.
func ProfileFor(industry Industry, employees int) (*OrgProfile, error) {
	if employees <= 0 {
		return nil, model.Validationf("employee count must be positive, got %d", employees)
	}
	switch industry {
	case IndustryTechnology:
		return technologyProfile(employees), nil
	case IndustryFinancial:
		return financialProfile(employees), nil
	case IndustryHealthcare:
		return healthcareProfile(employees), nil
	default:
		return nil, model.Validationf("unknown industry %q", string(industry))
	}
}

func technologyProfile(employees int) *OrgProfile {
	return &OrgProfile{
		Name:          "Acme Technologies",
		Industry:      IndustryTechnology,
		EmployeeCount: employees,
		Departments: []DepartmentSpec{
			{"Engineering", 0.35, "high"},
			{"Product", 0.10, "medium"},
			{"Sales", 0.15, "medium"},
			{"Marketing", 0.08, "medium"},
			{"HR", 0.05, "critical"},
			{"Finance", 0.05, "critical"},
			{"Legal", 0.03, "high"},
			{"IT Operations", 0.10, "high"},
			{"Security", 0.05, "critical"},
			{"Executive", 0.04, "critical"},
		},
		Networks: []NetworkSpec{
			{"Corporate", "10.0.0.0/16", "internal"},
			{"DMZ", "172.16.0.0/24", "dmz"},
			{"Dev/Staging", "10.1.0.0/16", "internal"},
			{"Guest WiFi", "192.168.0.0/24", "guest"},
		},
		LocationCeiling: 10,
		LocationDivisor: 400,

		Systems:       Range{25, 120},
		Vendors:       Range{10, 40},
		DataAssets:    Range{12, 60},
		Policies:      Range{7, 25},
		Regulations:   Range{3, 8},
		Controls:      Range{7, 25},
		Risks:         Range{4, 12},
		Threats:       Range{3, 8},
		ThreatActors:  Range{3, 10},
		Incidents:     Range{1, 8},
		Integrations:  Range{4, 20},
		DataDomains:   Range{3, 8},
		DataFlows:     Range{5, 18},
		OrgUnits:      Range{4, 12},
		Capabilities:  Range{5, 18},
		Sites:         Range{2, 6},
		Geographies:   Range{2, 5},
		Jurisdictions: Range{2, 5},
		Portfolios:    Range{1, 3},
		Products:      Range{4, 15},
		Segments:      Range{2, 6},
		Customers:     Range{6, 30},
		Contracts:     Range{5, 30},
		Initiatives:   Range{4, 12},

		VulnerabilityProbability: 0.20,
		ContractorFraction:       0.10,
		RemoteFraction:           0.30,
	}
}

func financialProfile(employees int) *OrgProfile {
	return &OrgProfile{
		Name:          "Atlas Financial Group",
		Industry:      IndustryFinancial,
		EmployeeCount: employees,
		Departments: []DepartmentSpec{
			{"Trading", 0.15, "critical"},
			{"Risk Management", 0.10, "critical"},
			{"Technology", 0.20, "high"},
			{"Compliance & Legal", 0.08, "critical"},
			{"Operations", 0.12, "high"},
			{"Client Services", 0.10, "high"},
			{"Finance & Accounting", 0.06, "critical"},
			{"HR", 0.04, "high"},
			{"Information Security", 0.08, "critical"},
			{"Executive", 0.03, "critical"},
			{"Internal Audit", 0.04, "critical"},
		},
		Networks: []NetworkSpec{
			{"Trading Floor", "10.0.0.0/24", "restricted"},
			{"Corporate", "10.1.0.0/16", "internal"},
			{"DMZ", "172.16.0.0/24", "dmz"},
			{"DR Site", "10.2.0.0/16", "internal"},
			{"Guest", "192.168.0.0/24", "guest"},
		},
		LocationCeiling: 12,
		LocationDivisor: 300,

		Systems:       Range{60, 200},
		Vendors:       Range{15, 50},
		DataAssets:    Range{25, 80},
		Policies:      Range{20, 50},
		Regulations:   Range{6, 18},
		Controls:      Range{12, 40},
		Risks:         Range{6, 20},
		Threats:       Range{4, 12},
		ThreatActors:  Range{5, 15},
		Incidents:     Range{1, 12},
		Integrations:  Range{6, 22},
		DataDomains:   Range{4, 10},
		DataFlows:     Range{6, 22},
		OrgUnits:      Range{5, 15},
		Capabilities:  Range{8, 22},
		Sites:         Range{3, 8},
		Geographies:   Range{3, 8},
		Jurisdictions: Range{4, 10},
		Portfolios:    Range{2, 6},
		Products:      Range{6, 25},
		Segments:      Range{3, 8},
		Customers:     Range{15, 50},
		Contracts:     Range{12, 40},
		Initiatives:   Range{5, 15},

		VulnerabilityProbability: 0.12,
		ContractorFraction:       0.20,
		RemoteFraction:           0.25,
	}
}

func healthcareProfile(employees int) *OrgProfile {
	return &OrgProfile{
		Name:          "MedCare Health Systems",
		Industry:      IndustryHealthcare,
		EmployeeCount: employees,
		Departments: []DepartmentSpec{
			{"Clinical Operations", 0.40, "critical"},
			{"Nursing", 0.15, "critical"},
			{"Administration", 0.08, "medium"},
			{"IT", 0.06, "high"},
			{"Finance & Billing", 0.07, "critical"},
			{"Pharmacy", 0.05, "critical"},
			{"Research", 0.06, "high"},
			{"Compliance", 0.04, "critical"},
			{"HR", 0.04, "high"},
			{"Facilities", 0.05, "medium"},
		},
		Networks: []NetworkSpec{
			{"Clinical Network", "10.0.0.0/16", "restricted"},
			{"Administrative", "10.1.0.0/16", "internal"},
			{"Medical Devices", "10.2.0.0/24", "restricted"},
			{"Guest WiFi", "192.168.0.0/24", "guest"},
			{"DMZ", "172.16.0.0/24", "dmz"},
		},
		LocationCeiling: 15,
		LocationDivisor: 200,

		Systems:       Range{80, 250},
		Vendors:       Range{20, 60},
		DataAssets:    Range{30, 100},
		Policies:      Range{15, 40},
		Regulations:   Range{3, 10},
		Controls:      Range{5, 20},
		Risks:         Range{3, 12},
		Threats:       Range{2, 8},
		ThreatActors:  Range{3, 12},
		Incidents:     Range{2, 15},
		Integrations:  Range{3, 15},
		DataDomains:   Range{3, 8},
		DataFlows:     Range{4, 15},
		OrgUnits:      Range{3, 10},
		Capabilities:  Range{5, 15},
		Sites:         Range{2, 8},
		Geographies:   Range{2, 6},
		Jurisdictions: Range{2, 6},
		Portfolios:    Range{1, 4},
		Products:      Range{3, 12},
		Segments:      Range{2, 6},
		Customers:     Range{5, 20},
		Contracts:     Range{5, 20},
		Initiatives:   Range{3, 10},

		VulnerabilityProbability: 0.18,
		ContractorFraction:       0.15,
		RemoteFraction:           0.10,
	}
}
