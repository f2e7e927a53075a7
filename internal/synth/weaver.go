package synth

import (
	"sort"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// severityWeights maps finding severity to edge weight.
var severityWeights = map[string]float64{
	"low":      0.3,
	"medium":   0.5,
	"high":     0.8,
	"critical": 1.0,
}

// edgeClass selects the confidence band for an edge. Organisational facts
// come from authoritative registries, dependency links are inferred from
// configuration, and threat attribution is the least certain.
type edgeClass int

const (
	orgFact edgeClass = iota
	dependency
	attribution
)

// weaver connects the generated entities. Assignments that later become
// mirror fields are recorded as they are drawn so the sweep does not have
// to re-derive them from edges.
type weaver struct {
	c    *Context
	rels []*model.Relationship

	personDept  map[string]string
	personRoles map[string][]string
	personLoc   map[string]string
	deptMembers map[string][]string
	roleFilled  map[string][]string
	deptHead    map[string]string
	deptLoc     map[string]string
	systemNet   map[string]string
	systemDept  map[string]string
	assetSystem map[string]string
	vulnSystems map[string][]string
	incSystems  map[string][]string
	incAssets   map[string][]string
}

func newWeaver(c *Context) *weaver {
	return &weaver{
		c:           c,
		personDept:  map[string]string{},
		personRoles: map[string][]string{},
		personLoc:   map[string]string{},
		deptMembers: map[string][]string{},
		roleFilled:  map[string][]string{},
		deptHead:    map[string]string{},
		deptLoc:     map[string]string{},
		systemNet:   map[string]string{},
		systemDept:  map[string]string{},
		assetSystem: map[string]string{},
		vulnSystems: map[string][]string{},
		incSystems:  map[string][]string{},
		incAssets:   map[string][]string{},
	}
}

// add appends one enriched edge. A severity, when given, fixes the weight
// from the severity table; organisational facts keep weight 1.0; everything
// else draws from the variance band. Properties must carry at least one key.
func (w *weaver) add(rt model.RelationshipType, sourceID, targetID string, class edgeClass, severity string, props model.Properties) {
	rel := model.NewRelationship(rt, sourceID, targetID)
	rel.ID = w.c.NewID()

	if sw, ok := severityWeights[severity]; ok {
		rel.Weight = sw
	} else if class == orgFact {
		rel.Weight = 1.0
	} else {
		rel.Weight = model.Round2(w.c.Uniform(0.5, 1.0))
	}

	var lo, hi float64
	switch class {
	case orgFact:
		lo, hi = 0.90, 0.95
	case dependency:
		lo, hi = 0.80, 0.90
	default:
		lo, hi = 0.70, 0.75
	}
	rel.Confidence = model.Round2(w.c.Uniform(lo, hi))

	for k, v := range props {
		rel.Properties[k] = v
	}
	w.rels = append(w.rels, rel)
}

// weaveAll runs every weave in a fixed order and returns the flat edge list.
// It must only run once all generator layers have completed.
func (w *weaver) weaveAll() []*model.Relationship {
	w.weavePeopleDepartments()
	w.weaveManagementChains()
	w.weavePeopleRoles()
	w.weavePeopleOrgUnits()
	w.weaveSystemNetworks()
	w.weaveSystemDependencies()
	w.weaveSystemDepartments()
	w.weaveDataAssetStorage()
	w.weaveDataClassification()
	w.weavePolicyGovernance()
	w.weaveVulnerabilityImpacts()
	w.weaveActorExploits()
	w.weaveThreatTargets()
	w.weaveIncidentImpacts()
	w.weaveRiskSources()
	w.weaveControlImplementations()
	w.weaveControlMitigations()
	w.weaveRegulatoryApplicability()
	w.weaveVendorSupply()
	w.weaveSaaSProviders()
	w.weaveContractVendors()
	w.weaveDepartmentLocations()
	w.weavePersonLocations()
	w.weaveNetworkPlacement()
	w.weaveSiteGeographies()
	w.weaveJurisdictionScopes()
	w.weaveIntegrationLinks()
	w.weaveFlowDomains()
	w.weaveCapabilitySupport()
	w.weaveProductPortfolios()
	w.weaveProductMarkets()
	w.weaveCustomerPurchases()
	w.weaveInitiativeImpacts()
	w.weaveInitiativeFunding()
	return w.rels
}

// leafDepartments returns departments without children, in generation order.
func (w *weaver) leafDepartments() []*model.Department {
	depts := entitiesAs[*model.Department](w.c, model.KindDepartment)
	hasChildren := make(map[string]bool)
	for _, d := range depts {
		if d.ParentDepartmentID != "" {
			hasChildren[d.ParentDepartmentID] = true
		}
	}
	leaves := make([]*model.Department, 0, len(depts))
	for _, d := range depts {
		if !hasChildren[d.ID] {
			leaves = append(leaves, d)
		}
	}
	return leaves
}

// weavePeopleDepartments assigns every person to a leaf department in
// proportion to department headcount, using largest-remainder rounding so
// the shares sum exactly to the population.
func (w *weaver) weavePeopleDepartments() {
	people := entitiesAs[*model.Person](w.c, model.KindPerson)
	leaves := w.leafDepartments()
	if len(people) == 0 || len(leaves) == 0 {
		return
	}

	total := 0
	for _, d := range leaves {
		total += d.Headcount
	}

	counts := make([]int, len(leaves))
	if total == 0 {
		for i := range people {
			counts[i%len(leaves)]++
		}
	} else {
		type share struct {
			idx  int
			frac float64
		}
		shares := make([]share, len(leaves))
		assigned := 0
		for i, d := range leaves {
			exact := float64(len(people)) * float64(d.Headcount) / float64(total)
			counts[i] = int(exact)
			shares[i] = share{i, exact - float64(counts[i])}
			assigned += counts[i]
		}
		sort.SliceStable(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
		for r := 0; r < len(people)-assigned; r++ {
			counts[shares[r].idx]++
		}
	}

	idx := 0
	for i, dept := range leaves {
		for k := 0; k < counts[i] && idx < len(people); k++ {
			p := people[idx]
			idx++
			w.personDept[p.ID] = dept.ID
			w.deptMembers[dept.ID] = append(w.deptMembers[dept.ID], p.ID)
			w.add(model.RelWorksIn, p.ID, dept.ID, orgFact, "",
				model.Properties{"assignment": "primary"})
		}
	}
}

// weaveManagementChains makes the first member of each staffed department
// its head and reports everyone else to them.
func (w *weaver) weaveManagementChains() {
	for _, dept := range w.leafDepartments() {
		members := w.deptMembers[dept.ID]
		if len(members) < 2 {
			continue
		}
		manager := members[0]
		w.deptHead[dept.ID] = manager
		w.add(model.RelManages, manager, dept.ID, orgFact, "",
			model.Properties{"scope": "department"})
		for _, report := range members[1:] {
			w.add(model.RelReportsTo, report, manager, orgFact, "",
				model.Properties{"line": "direct"})
		}
	}
}

func (w *weaver) weavePeopleRoles() {
	people := entitiesAs[*model.Person](w.c, model.KindPerson)
	roles := entitiesAs[*model.Role](w.c, model.KindRole)
	if len(people) == 0 || len(roles) == 0 {
		return
	}

	deptRoles := make(map[string][]*model.Role)
	for _, r := range roles {
		deptRoles[r.DepartmentID] = append(deptRoles[r.DepartmentID], r)
	}

	for _, p := range people {
		available := deptRoles[w.personDept[p.ID]]
		if len(available) == 0 {
			continue
		}
		role := pick(w.c, available)
		w.personRoles[p.ID] = append(w.personRoles[p.ID], role.ID)
		w.roleFilled[role.ID] = append(w.roleFilled[role.ID], p.ID)
		w.add(model.RelHasRole, p.ID, role.ID, orgFact, "",
			model.Properties{"allocation": "full_time"})
	}
}

// weavePeopleOrgUnits places a sample of people into organizational units
// alongside their department membership.
func (w *weaver) weavePeopleOrgUnits() {
	people := entitiesAs[*model.Person](w.c, model.KindPerson)
	units := w.c.Entities(model.KindOrganizationalUnit)
	if len(people) == 0 || len(units) == 0 {
		return
	}
	for _, p := range people {
		if !w.c.Chance(0.2) {
			continue
		}
		unit := pick(w.c, units)
		w.add(model.RelMemberOf, p.ID, unit.Common().ID, orgFact, "",
			model.Properties{"membership": pick(w.c, []string{"primary", "matrix"})})
	}
}

func (w *weaver) weaveSystemNetworks() {
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	networks := entitiesAs[*model.Network](w.c, model.KindNetwork)
	if len(systems) == 0 || len(networks) == 0 {
		return
	}
	for _, s := range systems {
		n := pick(w.c, networks)
		w.systemNet[s.ID] = n.ID
		w.add(model.RelConnectsTo, s.ID, n.ID, orgFact, "",
			model.Properties{"zone": n.Zone})
	}
}

var dependencyTypes = []string{"runtime", "build", "data", "auth", "monitoring"}

// weaveSystemDependencies adds inter-system depends_on edges, capped so
// large graphs don't densify into a clique.
func (w *weaver) weaveSystemDependencies() {
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	if len(systems) < 2 {
		return
	}
	n := len(systems) / 3
	if n > 20 {
		n = 20
	}
	for i := 0; i < n; i++ {
		pair := sampleN(w.c, systems, 2)
		w.add(model.RelDependsOn, pair[0].ID, pair[1].ID, dependency, "",
			model.Properties{"dependency_type": pick(w.c, dependencyTypes)})
	}
}

func (w *weaver) weaveSystemDepartments() {
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	depts := entitiesAs[*model.Department](w.c, model.KindDepartment)
	if len(systems) == 0 || len(depts) == 0 {
		return
	}
	for _, s := range systems {
		dept := pick(w.c, depts)
		w.systemDept[s.ID] = dept.ID
		w.add(model.RelResponsibleFor, dept.ID, s.ID, orgFact, "",
			model.Properties{"ownership": "operational"})
	}
}

func (w *weaver) weaveDataAssetStorage() {
	assets := entitiesAs[*model.DataAsset](w.c, model.KindDataAsset)
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	if len(assets) == 0 || len(systems) == 0 {
		return
	}
	for _, a := range assets {
		s := pick(w.c, systems)
		w.assetSystem[a.ID] = s.ID
		w.add(model.RelStores, s.ID, a.ID, dependency, "",
			model.Properties{"role": "system_of_record"})
	}
}

func (w *weaver) weaveDataClassification() {
	assets := entitiesAs[*model.DataAsset](w.c, model.KindDataAsset)
	domains := w.c.Entities(model.KindDataDomain)
	if len(assets) == 0 || len(domains) == 0 {
		return
	}
	for _, a := range assets {
		d := pick(w.c, domains)
		w.add(model.RelClassifiedAs, a.ID, d.Common().ID, dependency, "",
			model.Properties{"basis": pick(w.c, []string{"content_scan", "owner_declared"})})
	}
}

// weavePolicyGovernance points each policy at two to six governed systems,
// data assets or departments.
func (w *weaver) weavePolicyGovernance() {
	policies := w.c.Entities(model.KindPolicy)
	var targets []string
	for _, e := range w.c.Entities(model.KindSystem) {
		targets = append(targets, e.Common().ID)
	}
	for _, e := range w.c.Entities(model.KindDataAsset) {
		targets = append(targets, e.Common().ID)
	}
	for _, e := range w.c.Entities(model.KindDepartment) {
		targets = append(targets, e.Common().ID)
	}
	if len(policies) == 0 || len(targets) == 0 {
		return
	}
	for _, p := range policies {
		enforcement := "recommended"
		if p.(*model.Policy).IsEnforced {
			enforcement = "mandatory"
		}
		governed := sampleN(w.c, targets, w.c.IntBetween(2, 3))
		for _, id := range governed {
			w.add(model.RelGoverns, p.Common().ID, id, dependency, "",
				model.Properties{"enforcement": enforcement})
		}
	}
}

// weaveVulnerabilityImpacts attaches each vulnerability to one to three
// systems, weighted by its severity.
func (w *weaver) weaveVulnerabilityImpacts() {
	vulns := entitiesAs[*model.Vulnerability](w.c, model.KindVulnerability)
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	if len(vulns) == 0 || len(systems) == 0 {
		return
	}
	for _, v := range vulns {
		affected := sampleN(w.c, systems, w.c.IntBetween(1, 2))
		for _, s := range affected {
			w.vulnSystems[v.ID] = append(w.vulnSystems[v.ID], s.ID)
			w.add(model.RelAffects, v.ID, s.ID, dependency, v.Severity,
				model.Properties{"exposure": pick(w.c, []string{"direct", "transitive"})})
		}
	}
}

// weaveActorExploits links threat actors to the vulnerabilities they
// exploit. Maturity stays consistent with the vulnerability's
// exploit_available flag.
func (w *weaver) weaveActorExploits() {
	actors := entitiesAs[*model.ThreatActor](w.c, model.KindThreatActor)
	vulns := entitiesAs[*model.Vulnerability](w.c, model.KindVulnerability)
	if len(actors) == 0 || len(vulns) == 0 {
		return
	}
	for _, a := range actors {
		targeted := sampleN(w.c, vulns, w.c.IntBetween(1, 3))
		for _, v := range targeted {
			maturity := "theoretical"
			if v.ExploitAvailable {
				maturity = pick(w.c, []string{"weaponized", "poc"})
			}
			w.add(model.RelExploits, a.ID, v.ID, attribution, v.Severity,
				model.Properties{"exploit_maturity": maturity})
		}
	}
}

var attackVectors = []string{"phishing", "credential_theft", "supply_chain", "physical_access"}

func (w *weaver) weaveThreatTargets() {
	threats := w.c.Entities(model.KindThreat)
	var targets []string
	for _, e := range w.c.Entities(model.KindSystem) {
		targets = append(targets, e.Common().ID)
	}
	for _, e := range w.c.Entities(model.KindDataAsset) {
		targets = append(targets, e.Common().ID)
	}
	if len(threats) == 0 || len(targets) == 0 {
		return
	}
	for _, t := range threats {
		for _, id := range sampleN(w.c, targets, w.c.IntBetween(1, 2)) {
			w.add(model.RelTargets, t.Common().ID, id, attribution, "",
				model.Properties{"vector": pick(w.c, attackVectors)})
		}
	}
}

// weaveIncidentImpacts attaches incidents to the systems and data assets
// they touched, weighted by incident severity.
func (w *weaver) weaveIncidentImpacts() {
	incidents := entitiesAs[*model.Incident](w.c, model.KindIncident)
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	assets := entitiesAs[*model.DataAsset](w.c, model.KindDataAsset)
	if len(incidents) == 0 || len(systems) == 0 {
		return
	}
	for _, inc := range incidents {
		for _, s := range sampleN(w.c, systems, w.c.IntBetween(1, 3)) {
			w.incSystems[inc.ID] = append(w.incSystems[inc.ID], s.ID)
			w.add(model.RelAffects, inc.ID, s.ID, dependency, inc.Severity,
				model.Properties{"impact": pick(w.c, []string{"availability", "confidentiality", "integrity"})})
		}
		if len(assets) == 0 {
			continue
		}
		for _, a := range sampleN(w.c, assets, w.c.IntBetween(0, 2)) {
			w.incAssets[inc.ID] = append(w.incAssets[inc.ID], a.ID)
			w.add(model.RelAffects, inc.ID, a.ID, dependency, inc.Severity,
				model.Properties{"impact": "confidentiality"})
		}
	}
}

// weaveRiskSources traces each risk back to a threat or vulnerability.
func (w *weaver) weaveRiskSources() {
	risks := w.c.Entities(model.KindRisk)
	threats := w.c.Entities(model.KindThreat)
	vulns := w.c.Entities(model.KindVulnerability)
	if len(risks) == 0 || (len(threats) == 0 && len(vulns) == 0) {
		return
	}
	for _, r := range risks {
		var src model.Entity
		if len(threats) > 0 && (len(vulns) == 0 || w.c.Chance(0.5)) {
			src = pick(w.c, threats)
		} else {
			src = pick(w.c, vulns)
		}
		w.add(model.RelCreatesRisk, src.Common().ID, r.Common().ID, dependency, "",
			model.Properties{"origin": string(src.Kind())})
	}
}

func (w *weaver) weaveControlImplementations() {
	controls := w.c.Entities(model.KindControl)
	regs := w.c.Entities(model.KindRegulation)
	if len(controls) == 0 || len(regs) == 0 {
		return
	}
	for _, ctl := range controls {
		reg := pick(w.c, regs)
		w.add(model.RelImplements, ctl.Common().ID, reg.Common().ID, dependency, "",
			model.Properties{"coverage": pick(w.c, []string{"full", "partial"})})
	}
}

func (w *weaver) weaveControlMitigations() {
	controls := w.c.Entities(model.KindControl)
	risks := w.c.Entities(model.KindRisk)
	if len(controls) == 0 || len(risks) == 0 {
		return
	}
	for _, r := range risks {
		mitigating := sampleN(w.c, controls, w.c.IntBetween(1, 2))
		for _, ctl := range mitigating {
			w.add(model.RelMitigates, ctl.Common().ID, r.Common().ID, dependency, "",
				model.Properties{"effectiveness": pick(w.c, []string{"high", "medium", "low"})})
		}
	}
}

// weaveRegulatoryApplicability binds data assets to the regulation entities
// named in their regulations list, when those regulations were generated.
func (w *weaver) weaveRegulatoryApplicability() {
	assets := entitiesAs[*model.DataAsset](w.c, model.KindDataAsset)
	regs := entitiesAs[*model.Regulation](w.c, model.KindRegulation)
	if len(assets) == 0 || len(regs) == 0 {
		return
	}
	byShortName := make(map[string]*model.Regulation, len(regs))
	for _, r := range regs {
		byShortName[r.ShortName] = r
	}
	for _, a := range assets {
		for _, name := range a.Regulations {
			reg, ok := byShortName[name]
			if !ok {
				continue
			}
			w.add(model.RelSubjectTo, a.ID, reg.ID, dependency, "",
				model.Properties{"mandate": reg.ShortName})
		}
	}
}

func (w *weaver) weaveVendorSupply() {
	vendors := entitiesAs[*model.Vendor](w.c, model.KindVendor)
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	if len(vendors) == 0 || len(systems) == 0 {
		return
	}
	for _, v := range vendors {
		supplied := sampleN(w.c, systems, w.c.IntBetween(1, 2))
		for _, s := range supplied {
			w.add(model.RelSuppliedBy, s.ID, v.ID, dependency, "",
				model.Properties{"vendor_type": v.VendorType})
		}
	}
}

// weaveSaaSProviders gives every SaaS system a providing vendor.
func (w *weaver) weaveSaaSProviders() {
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	vendors := entitiesAs[*model.Vendor](w.c, model.KindVendor)
	if len(systems) == 0 || len(vendors) == 0 {
		return
	}
	for _, s := range systems {
		if s.SystemType != "saas" {
			continue
		}
		v := pick(w.c, vendors)
		w.add(model.RelProvides, v.ID, s.ID, dependency, "",
			model.Properties{"delivery": "saas"})
	}
}

// weaveContractVendors links each contract to the vendor recorded on it at
// generation time.
func (w *weaver) weaveContractVendors() {
	contracts := entitiesAs[*model.Contract](w.c, model.KindContract)
	for _, ctr := range contracts {
		if ctr.VendorID == "" {
			continue
		}
		w.add(model.RelContractsWith, ctr.ID, ctr.VendorID, orgFact, "",
			model.Properties{"contract_type": ctr.ContractType})
	}
}

func (w *weaver) weaveDepartmentLocations() {
	depts := entitiesAs[*model.Department](w.c, model.KindDepartment)
	locations := w.c.Entities(model.KindLocation)
	if len(depts) == 0 || len(locations) == 0 {
		return
	}
	for _, d := range depts {
		loc := pick(w.c, locations)
		w.deptLoc[d.ID] = loc.Common().ID
		w.add(model.RelLocatedAt, d.ID, loc.Common().ID, orgFact, "",
			model.Properties{"occupancy": "primary"})
	}
}

// weavePersonLocations places on-site staff at their department's location.
// The profile's remote fraction decides who has no fixed desk.
func (w *weaver) weavePersonLocations() {
	people := entitiesAs[*model.Person](w.c, model.KindPerson)
	for _, p := range people {
		locID := w.deptLoc[w.personDept[p.ID]]
		if locID == "" {
			continue
		}
		if w.c.Chance(w.c.Profile.RemoteFraction) {
			continue
		}
		w.personLoc[p.ID] = locID
		w.add(model.RelLocatedAt, p.ID, locID, orgFact, "",
			model.Properties{"work_mode": "onsite"})
	}
}

// weaveNetworkPlacement anchors each network segment to a site and a
// geography.
func (w *weaver) weaveNetworkPlacement() {
	networks := entitiesAs[*model.Network](w.c, model.KindNetwork)
	sites := w.c.Entities(model.KindSite)
	geos := w.c.Entities(model.KindGeography)
	for _, n := range networks {
		if len(sites) > 0 {
			w.add(model.RelHostedOn, n.ID, pick(w.c, sites).Common().ID, orgFact, "",
				model.Properties{"placement": "on_premise"})
		}
		if len(geos) > 0 {
			w.add(model.RelLocatedIn, n.ID, pick(w.c, geos).Common().ID, orgFact, "",
				model.Properties{"scope": "regional"})
		}
	}
}

func (w *weaver) weaveSiteGeographies() {
	sites := w.c.Entities(model.KindSite)
	geos := w.c.Entities(model.KindGeography)
	if len(sites) == 0 || len(geos) == 0 {
		return
	}
	for _, s := range sites {
		w.add(model.RelLocatedAt, s.Common().ID, pick(w.c, geos).Common().ID, orgFact, "",
			model.Properties{"presence": "operational"})
	}
}

func (w *weaver) weaveJurisdictionScopes() {
	jurs := entitiesAs[*model.Jurisdiction](w.c, model.KindJurisdiction)
	geos := w.c.Entities(model.KindGeography)
	if len(jurs) == 0 || len(geos) == 0 {
		return
	}
	for _, j := range jurs {
		w.add(model.RelRegulates, j.ID, pick(w.c, geos).Common().ID, orgFact, "",
			model.Properties{"authority": j.JurisdictionType})
	}
}

func (w *weaver) weaveIntegrationLinks() {
	integrations := entitiesAs[*model.Integration](w.c, model.KindIntegration)
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	if len(integrations) == 0 || len(systems) == 0 {
		return
	}
	for _, in := range integrations {
		s := pick(w.c, systems)
		w.add(model.RelIntegratesWith, in.ID, s.ID, dependency, "",
			model.Properties{"protocol": in.Protocol})
	}
}

func (w *weaver) weaveFlowDomains() {
	flows := w.c.Entities(model.KindDataFlow)
	domains := w.c.Entities(model.KindDataDomain)
	if len(flows) == 0 || len(domains) == 0 {
		return
	}
	for _, f := range flows {
		d := pick(w.c, domains)
		w.add(model.RelBelongsTo, f.Common().ID, d.Common().ID, orgFact, "",
			model.Properties{"membership": "declared"})
	}
}

func (w *weaver) weaveCapabilitySupport() {
	caps := w.c.Entities(model.KindBusinessCapability)
	systems := entitiesAs[*model.System](w.c, model.KindSystem)
	if len(caps) == 0 || len(systems) == 0 {
		return
	}
	for _, bc := range caps {
		supporting := sampleN(w.c, systems, w.c.IntBetween(1, 2))
		for _, s := range supporting {
			w.add(model.RelSupports, s.ID, bc.Common().ID, dependency, "",
				model.Properties{"support_level": pick(w.c, []string{"primary", "secondary"})})
		}
	}
}

func (w *weaver) weaveProductPortfolios() {
	products := w.c.Entities(model.KindProduct)
	portfolios := w.c.Entities(model.KindProductPortfolio)
	if len(products) == 0 || len(portfolios) == 0 {
		return
	}
	for _, p := range products {
		pf := pick(w.c, portfolios)
		w.add(model.RelBelongsTo, p.Common().ID, pf.Common().ID, orgFact, "",
			model.Properties{"membership": "primary"})
	}
}

func (w *weaver) weaveProductMarkets() {
	products := w.c.Entities(model.KindProduct)
	segments := w.c.Entities(model.KindMarketSegment)
	if len(products) == 0 || len(segments) == 0 {
		return
	}
	for _, p := range products {
		for _, seg := range sampleN(w.c, segments, w.c.IntBetween(1, 2)) {
			w.add(model.RelServes, p.Common().ID, seg.Common().ID, dependency, "",
				model.Properties{"position": pick(w.c, []string{"core", "adjacent"})})
		}
	}
}

func (w *weaver) weaveCustomerPurchases() {
	customers := w.c.Entities(model.KindCustomer)
	products := w.c.Entities(model.KindProduct)
	if len(customers) == 0 || len(products) == 0 {
		return
	}
	for _, cust := range customers {
		bought := sampleN(w.c, products, w.c.IntBetween(1, 2))
		for _, p := range bought {
			w.add(model.RelBuys, cust.Common().ID, p.Common().ID, dependency, "",
				model.Properties{"channel": pick(w.c, []string{"direct", "partner"})})
		}
	}
}

var initiativeImpactTypes = []string{"Implements New", "Migrates", "Upgrades", "Decommissions"}

func (w *weaver) weaveInitiativeImpacts() {
	initiatives := w.c.Entities(model.KindInitiative)
	systems := w.c.Entities(model.KindSystem)
	caps := w.c.Entities(model.KindBusinessCapability)
	if len(initiatives) == 0 {
		return
	}
	for _, in := range initiatives {
		if len(systems) > 0 {
			w.add(model.RelImpacts, in.Common().ID, pick(w.c, systems).Common().ID, dependency, "",
				model.Properties{"impact_type": pick(w.c, initiativeImpactTypes)})
		}
		if len(caps) > 0 {
			w.add(model.RelImpacts, in.Common().ID, pick(w.c, caps).Common().ID, dependency, "",
				model.Properties{"impact_type": pick(w.c, initiativeImpactTypes)})
		}
	}
}

var fundingSources = []string{"Operating Budget", "Capital Budget", "Innovation Fund"}

func (w *weaver) weaveInitiativeFunding() {
	initiatives := w.c.Entities(model.KindInitiative)
	depts := w.c.Entities(model.KindDepartment)
	if len(initiatives) == 0 || len(depts) == 0 {
		return
	}
	for _, in := range initiatives {
		d := pick(w.c, depts)
		w.add(model.RelFundedBy, in.Common().ID, d.Common().ID, orgFact, "",
			model.Properties{"funding_source": pick(w.c, fundingSources)})
	}
}

// populateMirrorFields writes the denormalised assignments recorded during
// weaving back onto the stored entities. The field set is closed: person
// department/roles/location, role fill state, department head/location,
// system network/department, data asset system, vulnerability and incident
// affected ids.
func (w *weaver) populateMirrorFields(engine graph.Engine) error {
	patches := make(map[string]map[string]any)
	patch := func(id, key string, value any) {
		p, ok := patches[id]
		if !ok {
			p = make(map[string]any)
			patches[id] = p
		}
		p[key] = value
	}

	for id, deptID := range w.personDept {
		patch(id, "department_id", deptID)
	}
	for id, roleIDs := range w.personRoles {
		patch(id, "holds_roles", roleIDs)
	}
	for id, locID := range w.personLoc {
		patch(id, "located_at", locID)
	}
	for id, personIDs := range w.roleFilled {
		patch(id, "filled_by_persons", personIDs)
		patch(id, "headcount_filled", len(personIDs))
	}
	for id, headID := range w.deptHead {
		patch(id, "head_id", headID)
	}
	for id, locID := range w.deptLoc {
		patch(id, "location_id", locID)
	}
	for id, netID := range w.systemNet {
		patch(id, "network_id", netID)
	}
	for id, deptID := range w.systemDept {
		patch(id, "department_id", deptID)
	}
	for id, sysID := range w.assetSystem {
		patch(id, "system_id", sysID)
	}
	for id, sysIDs := range w.vulnSystems {
		patch(id, "affected_system_ids", sysIDs)
	}
	for id, sysIDs := range w.incSystems {
		patch(id, "affected_system_ids", sysIDs)
	}
	for id, assetIDs := range w.incAssets {
		patch(id, "affected_data_asset_ids", assetIDs)
	}

	for id, p := range patches {
		if _, err := engine.UpdateEntity(id, p); err != nil {
			return err
		}
	}
	return nil
}
