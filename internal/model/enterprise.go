package model

// BusinessCapability is a level-1 or level-2 capability in the capability map.
type BusinessCapability struct {
	Base
	CapabilityID        string `json:"capability_id"`
	CapabilityLevel     int    `json:"capability_level"`
	MaturityLevel       string `json:"maturity_level"`
	StrategicImportance string `json:"strategic_importance"`
	BusinessCriticality string `json:"business_criticality"`
	InvestmentPriority  string `json:"investment_priority"`
	FunctionalDomain    string `json:"functional_domain"`
}

func (*BusinessCapability) Kind() EntityType { return KindBusinessCapability }

// Site is a physical facility, coarser-grained than Location.
type Site struct {
	Base
	SiteID                 string `json:"site_id"`
	SiteType               string `json:"site_type"`
	SiteStatus             string `json:"site_status"`
	OwnershipType          string `json:"ownership_type"`
	City                   string `json:"city"`
	StateProvince          string `json:"state_province,omitempty"`
	CountryCode            string `json:"country_code"`
	Headcount              int    `json:"headcount"`
	PhysicalSecurityTier   string `json:"physical_security_tier"`
	BusinessContinuityTier string `json:"business_continuity_tier"`
}

func (*Site) Kind() EntityType { return KindSite }

// Geography is a market or operating region.
type Geography struct {
	Base
	GeographyID   string `json:"geography_id"`
	GeographyType string `json:"geography_type"`
}

func (*Geography) Kind() EntityType { return KindGeography }

// Jurisdiction is a legal authority boundary.
type Jurisdiction struct {
	Base
	JurisdictionID   string `json:"jurisdiction_id"`
	JurisdictionType string `json:"jurisdiction_type"`
	JurisdictionCode string `json:"jurisdiction_code"`
}

func (*Jurisdiction) Kind() EntityType { return KindJurisdiction }

// ProductPortfolio groups products under one strategic owner.
type ProductPortfolio struct {
	Base
	PortfolioID    string `json:"portfolio_id"`
	PortfolioType  string `json:"portfolio_type"`
	LifecycleStage string `json:"lifecycle_stage"`
	StrategicRole  string `json:"strategic_role"`
	PortfolioOwner string `json:"portfolio_owner,omitempty"`
	ProductCount   int    `json:"product_count"`
}

func (*ProductPortfolio) Kind() EntityType { return KindProductPortfolio }

// Product is a sellable offering inside a portfolio.
type Product struct {
	Base
	ProductID           string `json:"product_id"`
	ProductType         string `json:"product_type"`
	LifecycleStage      string `json:"lifecycle_stage"`
	ProductOwner        string `json:"product_owner,omitempty"`
	ProductManager      string `json:"product_manager,omitempty"`
	BusinessCriticality string `json:"business_criticality"`
}

func (*Product) Kind() EntityType { return KindProduct }

// MarketSegment is a customer grouping targeted by products.
type MarketSegment struct {
	Base
	SegmentID         string `json:"segment_id"`
	SegmentType       string `json:"segment_type"`
	SegmentOwner      string `json:"segment_owner,omitempty"`
	StrategicPriority string `json:"strategic_priority"`
}

func (*MarketSegment) Kind() EntityType { return KindMarketSegment }

// Customer is an account belonging to a market segment.
type Customer struct {
	Base
	CustomerID            string `json:"customer_id"`
	CustomerType          string `json:"customer_type"`
	RelationshipStatus    string `json:"relationship_status"`
	AccountTier           string `json:"account_tier"`
	Industry              string `json:"industry"`
	AccountManager        string `json:"account_manager,omitempty"`
	RelationshipStartDate string `json:"relationship_start_date,omitempty"`
}

func (*Customer) Kind() EntityType { return KindCustomer }

// Vendor is a third party supplying systems or services.
type Vendor struct {
	Base
	VendorType               string   `json:"vendor_type"`
	ContractValue            float64  `json:"contract_value"`
	RiskTier                 string   `json:"risk_tier"`
	HasDataAccess            bool     `json:"has_data_access"`
	DataClassificationAccess []string `json:"data_classification_access"`
	ComplianceCertifications []string `json:"compliance_certifications"`
	ContractExpiry           string   `json:"contract_expiry,omitempty"`
	PrimaryContact           string   `json:"primary_contact,omitempty"`
	SLAUptime                float64  `json:"sla_uptime"`
}

func (*Vendor) Kind() EntityType { return KindVendor }

// Contract is a commercial agreement, usually with a vendor.
type Contract struct {
	Base
	ContractID     string  `json:"contract_id"`
	ContractType   string  `json:"contract_type"`
	ContractStatus string  `json:"contract_status"`
	VendorID       string  `json:"vendor_id,omitempty"`
	VendorName     string  `json:"vendor_name,omitempty"`
	TotalValue     float64 `json:"total_value"`
	Currency       string  `json:"currency"`
	StartDate      string  `json:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty"`
	AutoRenewal    bool    `json:"auto_renewal"`
	PaymentTerms   string  `json:"payment_terms,omitempty"`
}

func (*Contract) Kind() EntityType { return KindContract }

// Initiative is a strategic program of work.
type Initiative struct {
	Base
	InitiativeID      string  `json:"initiative_id"`
	InitiativeTier    string  `json:"initiative_tier"`
	InitiativeType    string  `json:"initiative_type"`
	Category          string  `json:"category"`
	StrategicPriority string  `json:"strategic_priority"`
	Status            string  `json:"status"`
	Phase             string  `json:"phase"`
	PlannedStartDate  string  `json:"planned_start_date,omitempty"`
	PlannedEndDate    string  `json:"planned_end_date,omitempty"`
	ApprovedBudget    float64 `json:"approved_budget"`
	ExecutiveSponsor  string  `json:"executive_sponsor,omitempty"`
	InitiativeLead    string  `json:"initiative_lead,omitempty"`
	OverallRisk       string  `json:"overall_risk,omitempty"`
}

func (*Initiative) Kind() EntityType { return KindInitiative }
