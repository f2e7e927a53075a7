package model

// RelationshipRule constrains which entity kinds may appear at either end
// of a relationship type.
type RelationshipRule struct {
	Sources []EntityType
	Targets []EntityType
}

// AllowsSource reports whether kind may be the source of this rule.
func (r RelationshipRule) AllowsSource(kind EntityType) bool {
	for _, k := range r.Sources {
		if k == kind {
			return true
		}
	}
	return false
}

// AllowsTarget reports whether kind may be the target of this rule.
func (r RelationshipRule) AllowsTarget(kind EntityType) bool {
	for _, k := range r.Targets {
		if k == kind {
			return true
		}
	}
	return false
}

// RuleFor returns the domain/range rule for a relationship type.
func RuleFor(rt RelationshipType) (RelationshipRule, bool) {
	rule, ok := catalog[rt]
	return rule, ok
}

// catalog declares the valid (source kind, relationship type, target kind)
// triples. Every relationship type has exactly one entry.
var catalog = map[RelationshipType]RelationshipRule{
	// Organizational
	RelWorksIn: {
		Sources: []EntityType{KindPerson},
		Targets: []EntityType{KindDepartment},
	},
	RelManages: {
		Sources: []EntityType{KindPerson},
		Targets: []EntityType{KindPerson, KindDepartment},
	},
	RelReportsTo: {
		Sources: []EntityType{KindPerson},
		Targets: []EntityType{KindPerson},
	},
	RelHasRole: {
		Sources: []EntityType{KindPerson},
		Targets: []EntityType{KindRole},
	},
	RelMemberOf: {
		Sources: []EntityType{KindPerson},
		Targets: []EntityType{KindDepartment, KindOrganizationalUnit},
	},

	// Technical
	RelHosts: {
		Sources: []EntityType{KindSystem, KindNetwork},
		Targets: []EntityType{KindSystem, KindDataAsset},
	},
	RelConnectsTo: {
		Sources: []EntityType{KindSystem},
		Targets: []EntityType{KindNetwork},
	},
	RelDependsOn: {
		Sources: []EntityType{KindSystem, KindBusinessCapability, KindIntegration, KindRole},
		Targets: []EntityType{KindSystem, KindIntegration, KindBusinessCapability},
	},
	RelStores: {
		Sources: []EntityType{KindSystem},
		Targets: []EntityType{KindDataAsset},
	},
	RelRunsOn: {
		Sources: []EntityType{KindSystem},
		Targets: []EntityType{KindSystem},
	},

	// Security
	RelGoverns: {
		Sources: []EntityType{KindPolicy},
		Targets: []EntityType{KindSystem, KindDataAsset, KindDepartment},
	},
	RelExploits: {
		Sources: []EntityType{KindThreatActor},
		Targets: []EntityType{KindVulnerability},
	},
	RelTargets: {
		Sources: []EntityType{KindThreatActor, KindThreat},
		Targets: []EntityType{KindSystem, KindPerson, KindDataAsset},
	},
	RelMitigates: {
		Sources: []EntityType{KindControl},
		Targets: []EntityType{KindRisk, KindVulnerability, KindThreat},
	},
	RelAffects: {
		Sources: []EntityType{KindVulnerability, KindIncident},
		Targets: []EntityType{KindSystem, KindDataAsset},
	},

	// Operational
	RelProvidesService: {
		Sources: []EntityType{KindSystem, KindVendor},
		Targets: []EntityType{KindDepartment, KindOrganizationalUnit},
	},
	RelLocatedAt: {
		Sources: []EntityType{KindPerson, KindSystem, KindDepartment, KindSite},
		Targets: []EntityType{KindLocation, KindSite, KindGeography},
	},
	RelSuppliedBy: {
		Sources: []EntityType{KindSystem},
		Targets: []EntityType{KindVendor},
	},
	RelResponsibleFor: {
		Sources: []EntityType{KindDepartment, KindPerson},
		Targets: []EntityType{KindSystem, KindDataAsset},
	},

	// Geography
	RelLocatedIn: {
		Sources: []EntityType{KindGeography, KindSite, KindLocation, KindNetwork},
		Targets: []EntityType{KindGeography},
	},
	RelIsolatedFrom: {
		Sources: []EntityType{KindGeography},
		Targets: []EntityType{KindGeography},
	},
	RelAcquiredFrom: {
		Sources: []EntityType{KindGeography, KindSite},
		Targets: []EntityType{KindGeography},
	},

	// Cross-layer
	RelSupports: {
		Sources: []EntityType{KindSystem, KindBusinessCapability, KindDepartment, KindIntegration},
		Targets: []EntityType{KindBusinessCapability, KindProduct, KindInitiative, KindProductPortfolio},
	},
	RelBelongsTo: {
		Sources: []EntityType{KindDataFlow, KindProduct, KindSystem},
		Targets: []EntityType{KindDataDomain, KindProductPortfolio, KindOrganizationalUnit},
	},
	RelStaffedBy: {
		Sources: []EntityType{KindDepartment, KindOrganizationalUnit},
		Targets: []EntityType{KindPerson},
	},
	RelHostedOn: {
		Sources: []EntityType{KindSystem, KindDataAsset, KindNetwork},
		Targets: []EntityType{KindSystem, KindSite},
	},
	RelProcesses: {
		Sources: []EntityType{KindSystem},
		Targets: []EntityType{KindDataAsset, KindDataFlow},
	},
	RelDelivers: {
		Sources: []EntityType{KindSystem, KindVendor},
		Targets: []EntityType{KindProduct, KindDataAsset},
	},
	RelServes: {
		Sources: []EntityType{KindProduct, KindSystem, KindDepartment, KindOrganizationalUnit},
		Targets: []EntityType{KindCustomer, KindMarketSegment},
	},
	RelManagedBy: {
		Sources: []EntityType{
			KindSystem, KindProduct, KindContract, KindIntegration,
			KindDataAsset, KindNetwork, KindDataDomain,
		},
		Targets: []EntityType{KindPerson, KindDepartment},
	},
	RelGovernedBy: {
		Sources: []EntityType{KindSystem, KindDataAsset, KindProduct, KindNetwork, KindIntegration},
		Targets: []EntityType{KindPolicy, KindRegulation, KindControl},
	},
	RelImpactedBy: {
		Sources: []EntityType{KindSystem, KindProduct, KindBusinessCapability},
		Targets: []EntityType{KindIncident, KindRisk, KindThreat},
	},

	// Compliance and governance
	RelRegulates: {
		Sources: []EntityType{KindRegulation, KindJurisdiction},
		Targets: []EntityType{KindSystem, KindDataAsset, KindProduct, KindVendor, KindGeography},
	},
	RelImplements: {
		Sources: []EntityType{KindControl, KindPolicy},
		Targets: []EntityType{KindRegulation, KindPolicy},
	},
	RelEnforces: {
		Sources: []EntityType{KindControl, KindPolicy},
		Targets: []EntityType{KindRegulation, KindRisk, KindPolicy},
	},
	RelCreatesRisk: {
		Sources: []EntityType{KindThreat, KindVulnerability, KindVendor},
		Targets: []EntityType{KindRisk},
	},
	RelAddresses: {
		Sources: []EntityType{KindControl, KindInitiative},
		Targets: []EntityType{KindRisk, KindThreat},
	},
	RelAuditedBy: {
		Sources: []EntityType{KindSystem, KindVendor, KindControl},
		Targets: []EntityType{KindPerson, KindDepartment},
	},
	RelSubjectTo: {
		Sources: []EntityType{
			KindSystem, KindVendor, KindDataAsset, KindProduct, KindJurisdiction,
			KindSite, KindRegulation, KindPolicy, KindNetwork, KindIntegration,
			KindDataDomain, KindCustomer, KindDepartment,
		},
		Targets: []EntityType{KindRegulation, KindJurisdiction, KindPolicy, KindControl},
	},

	// Technology and systems
	RelIntegratesWith: {
		Sources: []EntityType{KindSystem, KindIntegration},
		Targets: []EntityType{KindSystem},
	},
	RelAuthenticatesVia: {
		Sources: []EntityType{KindSystem, KindPerson},
		Targets: []EntityType{KindSystem, KindIntegration},
	},
	RelFeedsDataTo: {
		Sources: []EntityType{KindSystem, KindDataAsset},
		Targets: []EntityType{KindSystem, KindDataAsset},
	},

	// Data assets
	RelContains: {
		Sources: []EntityType{KindDataDomain, KindSystem, KindMarketSegment, KindProductPortfolio},
		Targets: []EntityType{KindDataAsset, KindDataFlow, KindCustomer, KindProduct},
	},
	RelFlowsTo: {
		Sources: []EntityType{KindDataFlow, KindDataAsset},
		Targets: []EntityType{KindSystem, KindDataAsset},
	},
	RelOriginatesFrom: {
		Sources: []EntityType{KindDataFlow, KindDataAsset},
		Targets: []EntityType{KindSystem, KindVendor},
	},
	RelClassifiedAs: {
		Sources: []EntityType{KindDataAsset},
		Targets: []EntityType{KindDataDomain},
	},

	// Governance applicability
	RelAppliesTo: {
		Sources: []EntityType{KindControl, KindPolicy, KindRegulation},
		Targets: []EntityType{KindSystem, KindDataAsset, KindDepartment, KindVendor},
	},

	// Business capabilities
	RelEnables: {
		Sources: []EntityType{KindSystem, KindProduct},
		Targets: []EntityType{KindBusinessCapability},
	},
	RelRealizedBy: {
		Sources: []EntityType{KindBusinessCapability},
		Targets: []EntityType{KindSystem, KindProduct, KindPerson},
	},

	// Commercial
	RelBuys: {
		Sources: []EntityType{KindCustomer},
		Targets: []EntityType{KindProduct, KindProductPortfolio},
	},
	RelContractsWith: {
		Sources: []EntityType{KindContract},
		Targets: []EntityType{KindVendor},
	},
	RelHolds: {
		Sources: []EntityType{KindCustomer, KindVendor},
		Targets: []EntityType{KindContract},
	},
	RelProvides: {
		Sources: []EntityType{KindVendor},
		Targets: []EntityType{KindSystem, KindProduct, KindDataAsset},
	},
	RelSupplies: {
		Sources: []EntityType{KindVendor},
		Targets: []EntityType{KindSystem, KindProduct},
	},

	// Strategic initiatives
	RelImpacts: {
		Sources: []EntityType{KindInitiative},
		Targets: []EntityType{KindSystem, KindProduct, KindBusinessCapability, KindRisk},
	},
	RelDrives: {
		Sources: []EntityType{KindInitiative},
		Targets: []EntityType{KindProduct, KindBusinessCapability, KindControl},
	},
	RelFundedBy: {
		Sources: []EntityType{KindInitiative},
		Targets: []EntityType{KindDepartment, KindOrganizationalUnit},
	},
}

// Map iteration order is unstable, so enumeration uses this declaration list.
var allRelationshipTypes = []RelationshipType{
	RelWorksIn, RelManages, RelReportsTo, RelHasRole, RelMemberOf,
	RelHosts, RelConnectsTo, RelDependsOn, RelStores, RelRunsOn,
	RelGoverns, RelExploits, RelTargets, RelMitigates, RelAffects,
	RelProvidesService, RelLocatedAt, RelSuppliedBy, RelResponsibleFor,
	RelLocatedIn, RelIsolatedFrom, RelAcquiredFrom,
	RelSupports, RelBelongsTo, RelStaffedBy, RelHostedOn, RelProcesses,
	RelDelivers, RelServes, RelManagedBy, RelGovernedBy, RelImpactedBy,
	RelRegulates, RelImplements, RelEnforces, RelCreatesRisk, RelAddresses,
	RelAuditedBy, RelSubjectTo,
	RelIntegratesWith, RelAuthenticatesVia, RelFeedsDataTo,
	RelContains, RelFlowsTo, RelOriginatesFrom, RelClassifiedAs,
	RelAppliesTo,
	RelEnables, RelRealizedBy,
	RelBuys, RelContractsWith, RelHolds, RelProvides, RelSupplies,
	RelImpacts, RelDrives, RelFundedBy,
}

// AllRelationshipTypes returns every relationship type in declaration order.
func AllRelationshipTypes() []RelationshipType {
	out := make([]RelationshipType, len(allRelationshipTypes))
	copy(out, allRelationshipTypes)
	return out
}
