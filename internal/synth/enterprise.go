package synth

import (
	"fmt"
	"strings"

	"github.com/anthropics/og/internal/model"
)

// Generators for the capability, facility, product, market, vendor and
// initiative layers.

var capabilityNames = []string{
	"Customer Relationship Management", "Financial Planning & Analysis",
	"Human Capital Management", "Product Development", "Supply Chain Management",
	"Risk Management", "Compliance Management", "IT Service Management",
	"Data Analytics", "Digital Marketing", "Order Management", "Procurement",
	"Quality Assurance", "Strategic Planning", "Cybersecurity Operations",
	"Business Intelligence", "Enterprise Architecture", "Innovation Management",
}

var maturityLevels = []string{"Initial", "Developing", "Defined", "Managed", "Optimized"}

var functionalDomains = []string{
	"Sales & Marketing", "Finance", "Operations", "Technology",
	"HR", "Risk & Compliance", "Customer Service",
}

var criticalityLevels = []string{"Critical", "High", "Medium", "Low"}

func genCapabilities(c *Context, count int) []model.Entity {
	n := count
	if n > len(capabilityNames) {
		n = len(capabilityNames)
	}
	selected := sampleN(c, capabilityNames, n)

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var name string
		if i < len(selected) {
			name = selected[i]
		} else {
			name = titleWords(c.buzzPhrase()) + " Capability"
		}
		out = append(out, &model.BusinessCapability{
			Base:                c.base(model.KindBusinessCapability, name, "Enterprise capability: "+name, "capability"),
			CapabilityID:        seqID("BC-", i),
			CapabilityLevel:     c.IntBetween(0, 3),
			MaturityLevel:       pick(c, maturityLevels),
			StrategicImportance: pick(c, []string{"Differentiating", "Essential", "Commodity"}),
			BusinessCriticality: pick(c, criticalityLevels),
			InvestmentPriority:  pick(c, []string{"Invest", "Maintain", "Divest", "Tolerate"}),
			FunctionalDomain:    pick(c, functionalDomains),
		})
	}
	return out
}

var siteTypes = []string{
	"Headquarters", "Regional Office", "Data Center",
	"Branch Office", "Operations Center", "R&D Facility",
}

var siteStatuses = []string{"Active", "Under Construction", "Planned", "Decommissioned"}

var ownershipTypes = []string{"Owned", "Leased", "Co-located", "Shared"}

// genSites always puts data centers on the restricted security tier; other
// site types draw a tier at random.
func genSites(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		siteType := pick(c, siteTypes)
		city := c.city()
		securityTier := pick(c, []string{"Standard", "Enhanced", "Restricted"})
		if siteType == "Data Center" {
			securityTier = "Restricted"
		}
		out = append(out, &model.Site{
			Base:                   c.base(model.KindSite, city+" "+siteType, siteType+" facility", slugify(siteType)),
			SiteID:                 seqID("SITE-", i),
			SiteType:               siteType,
			SiteStatus:             pick(c, siteStatuses),
			OwnershipType:          pick(c, ownershipTypes),
			City:                   city,
			StateProvince:          pick(c, stateAbbrs),
			CountryCode:            pick(c, countryCodes),
			Headcount:              c.IntBetween(20, 4000),
			PhysicalSecurityTier:   securityTier,
			BusinessContinuityTier: fmt.Sprintf("Tier %d", c.IntBetween(1, 4)),
		})
	}
	return out
}

type geographySpec struct {
	name    string
	geoType string
}

var geographyCatalog = []geographySpec{
	{"North America", "Region"},
	{"EMEA", "Region"},
	{"APAC", "Region"},
	{"Latin America", "Region"},
	{"United States", "Country"},
	{"United Kingdom", "Country"},
	{"Germany", "Country"},
	{"Japan", "Country"},
	{"Australia", "Country"},
	{"India", "Country"},
}

func genGeographies(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var spec geographySpec
		if i < len(geographyCatalog) {
			spec = geographyCatalog[i]
		} else {
			spec = geographySpec{pick(c, countryNames), "Country"}
		}
		out = append(out, &model.Geography{
			Base:          c.base(model.KindGeography, spec.name, spec.geoType+": "+spec.name, strings.ToLower(spec.geoType)),
			GeographyID:   seqID("GEO-", i),
			GeographyType: spec.geoType,
		})
	}
	return out
}

type jurisdictionSpec struct {
	name    string
	jurType string
	code    string
}

var jurisdictionCatalog = []jurisdictionSpec{
	{"US Federal", "Federal", "US"},
	{"EU General", "Supranational", "EU"},
	{"UK", "National", "GB"},
	{"California", "State/Province", "US-CA"},
	{"New York", "State/Province", "US-NY"},
	{"Germany", "National", "DE"},
	{"Singapore", "National", "SG"},
	{"Australia", "National", "AU"},
}

func genJurisdictions(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var spec jurisdictionSpec
		if i < len(jurisdictionCatalog) {
			spec = jurisdictionCatalog[i]
		} else {
			spec = jurisdictionSpec{pick(c, countryNames), "National", pick(c, countryCodes)}
		}
		tag := strings.ReplaceAll(strings.ToLower(spec.jurType), "/", "-")
		out = append(out, &model.Jurisdiction{
			Base: c.base(model.KindJurisdiction, spec.name+" Jurisdiction",
				fmt.Sprintf("%s jurisdiction: %s", spec.jurType, spec.name), tag),
			JurisdictionID:   seqID("JUR-", i),
			JurisdictionType: spec.jurType,
			JurisdictionCode: spec.code,
		})
	}
	return out
}

var portfolioNames = []string{
	"Enterprise Solutions", "Consumer Products", "Digital Services",
	"Platform Services", "Professional Services", "Data Products",
}

func genPortfolios(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var name string
		if i < len(portfolioNames) {
			name = portfolioNames[i]
		} else {
			name = titleWords(c.buzzPhrase()) + " Portfolio"
		}
		out = append(out, &model.ProductPortfolio{
			Base:           c.base(model.KindProductPortfolio, name, "Product portfolio: "+name, "portfolio"),
			PortfolioID:    seqID("PF-", i),
			PortfolioType:  pick(c, []string{"Product", "Service", "Platform", "Hybrid"}),
			LifecycleStage: pick(c, []string{"Growth", "Mature", "Harvest", "Emerging"}),
			StrategicRole:  pick(c, []string{"Core", "Adjacent", "Transformational"}),
			PortfolioOwner: c.personName(),
			ProductCount:   c.IntBetween(2, 20),
		})
	}
	return out
}

var productNames = []string{
	"Enterprise Platform", "Analytics Suite", "Mobile App", "Customer Portal",
	"Risk Dashboard", "Compliance Manager", "Trading Platform", "Claims Processor",
	"EHR System", "Payment Gateway", "API Marketplace", "Data Lake Platform",
	"Security Operations Center", "Cloud Infrastructure", "Identity Management",
	"Document Management",
}

var productLifecycles = []string{"Development", "Launch", "Growth", "Mature", "Decline", "Retired"}

func genProducts(c *Context, count int) []model.Entity {
	n := count
	if n > len(productNames) {
		n = len(productNames)
	}
	selected := sampleN(c, productNames, n)

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var name string
		if i < len(selected) {
			name = selected[i]
		} else {
			name = titleWords(pick(c, singleWords)) + " Product"
		}
		out = append(out, &model.Product{
			Base:                c.base(model.KindProduct, name, "Enterprise product: "+name, "product"),
			ProductID:           seqID("PRD-", i),
			ProductType:         pick(c, []string{"Software", "Service", "Platform", "Hardware", "SaaS"}),
			LifecycleStage:      pick(c, productLifecycles),
			ProductOwner:        c.personName(),
			ProductManager:      c.personName(),
			BusinessCriticality: pick(c, criticalityLevels),
		})
	}
	return out
}

var segmentNames = []string{
	"Enterprise", "Mid-Market", "SMB", "Government",
	"Healthcare", "Financial Services", "Technology", "Education",
}

func genSegments(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var name string
		if i < len(segmentNames) {
			name = segmentNames[i]
		} else {
			name = titleWords(c.buzzPhrase()) + " Segment"
		}
		out = append(out, &model.MarketSegment{
			Base:              c.base(model.KindMarketSegment, name, "Market segment: "+name, "market-segment"),
			SegmentID:         seqID("SEG-", i),
			SegmentType:       pick(c, []string{"Industry Vertical", "Company Size", "Geography", "Use Case"}),
			SegmentOwner:      c.personName(),
			StrategicPriority: pick(c, []string{"Primary", "Secondary", "Emerging", "Declining"}),
		})
	}
	return out
}

var customerIndustries = []string{
	"Technology", "Healthcare", "Financial Services", "Manufacturing", "Retail",
}

func genCustomers(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, &model.Customer{
			Base:                  c.base(model.KindCustomer, c.companyName(), "Enterprise customer", "customer"),
			CustomerID:            seqID("CUST-", i),
			CustomerType:          pick(c, []string{"Enterprise", "Mid-Market", "SMB", "Government", "Non-Profit"}),
			RelationshipStatus:    pick(c, []string{"Active", "Prospect", "Churned", "Dormant"}),
			AccountTier:           pick(c, []string{"Strategic", "Key", "Standard", "Growth"}),
			Industry:              pick(c, customerIndustries),
			AccountManager:        c.personName(),
			RelationshipStartDate: c.dateWithin(10),
		})
	}
	return out
}

type vendorProfile struct {
	vendorType    string
	suffixes      []string
	riskTiers     []string
	dataAccessPct float64
	certPool      []string
}

var vendorProfiles = []vendorProfile{
	{"saas",
		[]string{"Cloud", "Online", "Platform", "Hub", "Suite"},
		[]string{"medium", "high"}, 0.7,
		[]string{"SOC2", "ISO27001", "CSA-STAR"}},
	{"iaas",
		[]string{"Cloud Services", "Infrastructure", "Hosting", "Data Centers"},
		[]string{"high", "critical"}, 0.9,
		[]string{"SOC2", "ISO27001", "FedRAMP", "CSA-STAR"}},
	{"consulting",
		[]string{"Consulting", "Advisory", "Partners", "Group"},
		[]string{"low", "medium"}, 0.3,
		[]string{"ISO27001"}},
	{"hardware",
		[]string{"Technologies", "Systems", "Hardware", "Electronics"},
		[]string{"low", "medium"}, 0.1,
		[]string{"ISO27001"}},
	{"managed_service",
		[]string{"Managed Services", "MSP", "IT Solutions", "Operations"},
		[]string{"high", "critical"}, 0.8,
		[]string{"SOC2", "ISO27001", "HIPAA"}},
	{"software_license",
		[]string{"Software", "Labs", "Digital", "Tech"},
		[]string{"low", "medium"}, 0.2,
		[]string{"SOC2", "ISO27001"}},
}

var vendorPrefixes = []string{
	"Apex", "Summit", "Crest", "Vertex", "Pinnacle", "Horizon", "Nexus",
	"Vanguard", "Catalyst", "Meridian", "Prism", "Atlas", "Aegis", "Forge",
	"Onyx", "Nova", "Zenith", "Stratos", "Citadel", "Quantum",
}

var dataClassifications = []string{"public", "internal", "confidential", "restricted"}

// genVendors correlates attributes per vendor type. A high or critical risk
// vendor holding data access never ships without at least one certification.
func genVendors(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		vp := pick(c, vendorProfiles)
		name := pick(c, vendorPrefixes) + " " + pick(c, vp.suffixes)

		hasData := c.Chance(vp.dataAccessPct)
		riskTier := pick(c, vp.riskTiers)
		certs := sampleN(c, vp.certPool, c.IntBetween(0, 2))
		if certs == nil {
			certs = []string{}
		}
		if hasData && (riskTier == "high" || riskTier == "critical") && len(certs) == 0 {
			certs = []string{pick(c, vp.certPool)}
		}
		classAccess := []string{}
		if hasData {
			classAccess = sampleN(c, dataClassifications, c.IntBetween(1, 2))
		}

		desc := fmt.Sprintf("%s provider - %s", titleWords(vp.vendorType), name)
		out = append(out, &model.Vendor{
			Base:                     c.base(model.KindVendor, name, desc, vp.vendorType),
			VendorType:               vp.vendorType,
			ContractValue:            model.Round2(c.Uniform(5000, 2000000)),
			RiskTier:                 riskTier,
			HasDataAccess:            hasData,
			DataClassificationAccess: classAccess,
			ComplianceCertifications: certs,
			ContractExpiry:           c.dateAhead(3),
			PrimaryContact:           c.personName(),
			SLAUptime:                model.Round2(c.Uniform(99.0, 99.99)),
		})
	}
	return out
}

var contractTypes = []string{
	"Master Services Agreement", "Statement of Work", "License Agreement",
	"Support Agreement", "NDA", "Data Processing Agreement",
}

func genContracts(c *Context, count int) []model.Entity {
	vendors := entitiesAs[*model.Vendor](c, model.KindVendor)

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		vendorID, vendorName := "", c.companyName()
		if len(vendors) > 0 {
			v := pick(c, vendors)
			vendorID, vendorName = v.ID, v.Name
		}
		out = append(out, &model.Contract{
			Base:           c.base(model.KindContract, "Contract - "+vendorName, "Master agreement", "contract"),
			ContractID:     seqID("CTR-", i),
			ContractType:   pick(c, contractTypes),
			ContractStatus: pick(c, []string{"Active", "Expired", "Under Negotiation", "Terminated"}),
			VendorID:       vendorID,
			VendorName:     vendorName,
			TotalValue:     model.Round2(c.Uniform(50000, 10000000)),
			Currency:       "USD",
			StartDate:      c.dateWithin(3),
			EndDate:        c.dateAhead(3),
			AutoRenewal:    c.Chance(0.5),
			PaymentTerms:   pick(c, []string{"Net 30", "Net 45", "Net 60", "Net 90"}),
		})
	}
	return out
}

var initiativeTypes = []string{
	"Digital Transformation", "Technology Migration / Modernization",
	"Process Improvement", "Regulatory Compliance", "Security Remediation",
	"AI / ML Initiative", "Cost Optimization", "Customer Experience",
	"Data Governance", "Infrastructure",
}

var initiativeStatuses = []string{
	"Proposed", "Approved", "Planning", "In Progress", "On Hold", "At Risk", "Completed",
}

var initiativePhases = []string{
	"Initiation", "Planning", "Execution", "Monitoring & Control", "Closing",
}

func genInitiatives(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		initType := pick(c, initiativeTypes)
		name := fmt.Sprintf("%s - %s", initType, titleWords(c.buzzPhrase()))
		tag := strings.ReplaceAll(slugify(initType), "/", "-")
		out = append(out, &model.Initiative{
			Base:              c.base(model.KindInitiative, name, "Strategic initiative: "+initType, tag),
			InitiativeID:      seqID("SI-", i),
			InitiativeTier:    pick(c, []string{"Portfolio", "Program", "Project", "Workstream"}),
			InitiativeType:    initType,
			Category:          pick(c, []string{"Strategic", "Operational", "Regulatory", "Remediation"}),
			StrategicPriority: pick(c, []string{"Must Do", "Should Do", "Could Do"}),
			Status:            pick(c, initiativeStatuses),
			Phase:             pick(c, initiativePhases),
			PlannedStartDate:  c.dateWithin(1),
			PlannedEndDate:    c.dateAhead(2),
			ApprovedBudget:    model.Round2(c.Uniform(100000, 20000000)),
			ExecutiveSponsor:  c.personName(),
			InitiativeLead:    c.personName(),
			OverallRisk:       pick(c, criticalityLevels),
		})
	}
	return out
}
