package model

// EntityType discriminates the closed set of entity kinds.
type EntityType string

const (
	KindLocation           EntityType = "location"
	KindPolicy             EntityType = "policy"
	KindRegulation         EntityType = "regulation"
	KindControl            EntityType = "control"
	KindRisk               EntityType = "risk"
	KindThreat             EntityType = "threat"
	KindVulnerability      EntityType = "vulnerability"
	KindThreatActor        EntityType = "threat_actor"
	KindIncident           EntityType = "incident"
	KindNetwork            EntityType = "network"
	KindSystem             EntityType = "system"
	KindIntegration        EntityType = "integration"
	KindDataAsset          EntityType = "data_asset"
	KindDataDomain         EntityType = "data_domain"
	KindDataFlow           EntityType = "data_flow"
	KindDepartment         EntityType = "department"
	KindOrganizationalUnit EntityType = "organizational_unit"
	KindPerson             EntityType = "person"
	KindRole               EntityType = "role"
	KindBusinessCapability EntityType = "business_capability"
	KindSite               EntityType = "site"
	KindGeography          EntityType = "geography"
	KindJurisdiction       EntityType = "jurisdiction"
	KindProductPortfolio   EntityType = "product_portfolio"
	KindProduct            EntityType = "product"
	KindMarketSegment      EntityType = "market_segment"
	KindCustomer           EntityType = "customer"
	KindVendor             EntityType = "vendor"
	KindContract           EntityType = "contract"
	KindInitiative         EntityType = "initiative"
)

// AllEntityTypes returns every entity kind in generation-layer order.
func AllEntityTypes() []EntityType {
	return []EntityType{
		KindLocation,
		KindPolicy, KindRegulation, KindControl, KindRisk, KindThreat,
		KindVulnerability, KindThreatActor, KindIncident,
		KindNetwork, KindSystem, KindIntegration,
		KindDataAsset, KindDataDomain, KindDataFlow,
		KindDepartment, KindOrganizationalUnit,
		KindPerson, KindRole,
		KindBusinessCapability,
		KindSite, KindGeography, KindJurisdiction,
		KindProductPortfolio, KindProduct,
		KindMarketSegment, KindCustomer,
		KindVendor, KindContract,
		KindInitiative,
	}
}

// Valid reports whether t names a known entity kind.
func (t EntityType) Valid() bool {
	_, ok := entityFactories[t]
	return ok
}

// ParseEntityType validates a user-supplied kind string.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if !t.Valid() {
		return "", Validationf("unknown entity type %q", s)
	}
	return t, nil
}

// RelationshipType discriminates the closed set of relationship kinds.
type RelationshipType string

const (
	RelWorksIn          RelationshipType = "works_in"
	RelManages          RelationshipType = "manages"
	RelReportsTo        RelationshipType = "reports_to"
	RelHasRole          RelationshipType = "has_role"
	RelMemberOf         RelationshipType = "member_of"
	RelHosts            RelationshipType = "hosts"
	RelConnectsTo       RelationshipType = "connects_to"
	RelDependsOn        RelationshipType = "depends_on"
	RelStores           RelationshipType = "stores"
	RelRunsOn           RelationshipType = "runs_on"
	RelGoverns          RelationshipType = "governs"
	RelExploits         RelationshipType = "exploits"
	RelTargets          RelationshipType = "targets"
	RelMitigates        RelationshipType = "mitigates"
	RelAffects          RelationshipType = "affects"
	RelProvidesService  RelationshipType = "provides_service"
	RelLocatedAt        RelationshipType = "located_at"
	RelSuppliedBy       RelationshipType = "supplied_by"
	RelResponsibleFor   RelationshipType = "responsible_for"
	RelLocatedIn        RelationshipType = "located_in"
	RelIsolatedFrom     RelationshipType = "isolated_from"
	RelAcquiredFrom     RelationshipType = "acquired_from"
	RelSupports         RelationshipType = "supports"
	RelBelongsTo        RelationshipType = "belongs_to"
	RelStaffedBy        RelationshipType = "staffed_by"
	RelHostedOn         RelationshipType = "hosted_on"
	RelProcesses        RelationshipType = "processes"
	RelDelivers         RelationshipType = "delivers"
	RelServes           RelationshipType = "serves"
	RelManagedBy        RelationshipType = "managed_by"
	RelGovernedBy       RelationshipType = "governed_by"
	RelImpactedBy       RelationshipType = "impacted_by"
	RelRegulates        RelationshipType = "regulates"
	RelImplements       RelationshipType = "implements"
	RelEnforces         RelationshipType = "enforces"
	RelCreatesRisk      RelationshipType = "creates_risk"
	RelAddresses        RelationshipType = "addresses"
	RelAuditedBy        RelationshipType = "audited_by"
	RelSubjectTo        RelationshipType = "subject_to"
	RelIntegratesWith   RelationshipType = "integrates_with"
	RelAuthenticatesVia RelationshipType = "authenticates_via"
	RelFeedsDataTo      RelationshipType = "feeds_data_to"
	RelContains         RelationshipType = "contains"
	RelFlowsTo          RelationshipType = "flows_to"
	RelOriginatesFrom   RelationshipType = "originates_from"
	RelClassifiedAs     RelationshipType = "classified_as"
	RelAppliesTo        RelationshipType = "applies_to"
	RelEnables          RelationshipType = "enables"
	RelRealizedBy       RelationshipType = "realized_by"
	RelBuys             RelationshipType = "buys"
	RelContractsWith    RelationshipType = "contracts_with"
	RelHolds            RelationshipType = "holds"
	RelProvides         RelationshipType = "provides"
	RelSupplies         RelationshipType = "supplies"
	RelImpacts          RelationshipType = "impacts"
	RelDrives           RelationshipType = "drives"
	RelFundedBy         RelationshipType = "funded_by"
)

// Valid reports whether t is declared in the relationship catalog.
func (t RelationshipType) Valid() bool {
	_, ok := catalog[t]
	return ok
}

// ParseRelationshipType validates a user-supplied relationship type string.
func ParseRelationshipType(s string) (RelationshipType, error) {
	t := RelationshipType(s)
	if !t.Valid() {
		return "", SchemaViolationf("unknown relationship type %q", s)
	}
	return t, nil
}
