package synth

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// generationOrder lists entity kinds in dependency layers. A kind may read
// anything an earlier layer stored in the context; the weaver runs only
// after the last layer. The security layer sits early because incidents
// need threat actors and nothing else, while people and roles need the
// department tree.
var generationOrder = [][]model.EntityType{
	{model.KindLocation},
	{model.KindPolicy, model.KindRegulation, model.KindControl, model.KindRisk,
		model.KindThreat, model.KindVulnerability, model.KindThreatActor, model.KindIncident},
	{model.KindNetwork, model.KindSystem, model.KindIntegration},
	{model.KindDataAsset, model.KindDataDomain, model.KindDataFlow},
	{model.KindDepartment, model.KindOrganizationalUnit},
	{model.KindPerson, model.KindRole},
	{model.KindBusinessCapability},
	{model.KindSite, model.KindGeography, model.KindJurisdiction},
	{model.KindProductPortfolio, model.KindProduct},
	{model.KindMarketSegment, model.KindCustomer},
	{model.KindVendor, model.KindContract},
	{model.KindInitiative},
}

// generators maps each kind to its generator. Every kind in
// generationOrder has an entry.
var generators = map[model.EntityType]func(*Context, int) []model.Entity{
	model.KindLocation:           genLocations,
	model.KindPolicy:             genPolicies,
	model.KindRegulation:         genRegulations,
	model.KindControl:            genControls,
	model.KindRisk:               genRisks,
	model.KindThreat:             genThreats,
	model.KindVulnerability:      genVulnerabilities,
	model.KindThreatActor:        genThreatActors,
	model.KindIncident:           genIncidents,
	model.KindNetwork:            genNetworks,
	model.KindSystem:             genSystems,
	model.KindIntegration:        genIntegrations,
	model.KindDataAsset:          genDataAssets,
	model.KindDataDomain:         genDataDomains,
	model.KindDataFlow:           genDataFlows,
	model.KindDepartment:         genDepartments,
	model.KindOrganizationalUnit: genOrgUnits,
	model.KindPerson:             genPeople,
	model.KindRole:               genRoles,
	model.KindBusinessCapability: genCapabilities,
	model.KindSite:               genSites,
	model.KindGeography:          genGeographies,
	model.KindJurisdiction:       genJurisdictions,
	model.KindProductPortfolio:   genPortfolios,
	model.KindProduct:            genProducts,
	model.KindMarketSegment:      genSegments,
	model.KindCustomer:           genCustomers,
	model.KindVendor:             genVendors,
	model.KindContract:           genContracts,
	model.KindInitiative:         genInitiatives,
}

// Timings records wall-clock durations of the pipeline stages.
type Timings struct {
	Generate time.Duration `json:"generate"`
	Weave    time.Duration `json:"weave"`
	Assess   time.Duration `json:"assess"`
}

// Result reports what a generation run produced.
type Result struct {
	EntityCounts  map[string]int `json:"entity_counts"`
	Relationships int            `json:"relationships"`
	Quality       *QualityReport `json:"quality"`
	Timings       Timings        `json:"timings"`
}

// TotalEntities sums the per-kind counts.
func (r *Result) TotalEntities() int {
	total := 0
	for _, n := range r.EntityCounts {
		total += n
	}
	return total
}

// Orchestrator drives the full pipeline: entity layers in order, the
// relationship weaver, the mirror-field sweep, and the quality assessment.
//
// Usage:
//
//	profile, _ := ProfileFor(IndustryTechnology, 500)
//	engine := graph.NewMemory(graph.Options{})
//	orch := NewOrchestrator(engine, profile, 42, logger)
//	result, err := orch.Run()
type Orchestrator struct {
	engine graph.Engine
	ctx    *Context
	logger *zap.Logger
}

// NewOrchestrator builds an orchestrator over an engine. A nil logger
// disables logging.
func NewOrchestrator(engine graph.Engine, profile *OrgProfile, seed int64, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		engine: engine,
		ctx:    NewContext(profile, seed),
		logger: logger,
	}
}

// Context exposes the generation context, mainly for assessment and tests.
func (o *Orchestrator) Context() *Context { return o.ctx }

// Run executes the pipeline and returns per-kind counts, the relationship
// total, and the quality report. Quality below 0.70 logs a warning but
// does not fail the run.
func (o *Orchestrator) Run() (*Result, error) {
	counts := make(map[string]int)
	var timings Timings

	stageStart := time.Now()
	for _, layer := range generationOrder {
		for _, kind := range layer {
			gen, ok := generators[kind]
			if !ok {
				return nil, fmt.Errorf("no generator registered for %s", kind)
			}
			count := o.ctx.Scaler.Count(kind)
			// The role generator derives its count from the department
			// tree, so a zero draw still runs it.
			if count <= 0 && kind != model.KindRole {
				continue
			}
			entities := gen(o.ctx, count)
			if len(entities) == 0 {
				continue
			}
			if err := o.engine.AddEntitiesBulk(entities); err != nil {
				return nil, fmt.Errorf("add %s entities: %w", kind, err)
			}
			o.ctx.Store(kind, entities)
			counts[string(kind)] = len(entities)
			o.logger.Debug("layer generated",
				zap.String("kind", string(kind)),
				zap.Int("count", len(entities)))
		}
	}

	timings.Generate = time.Since(stageStart)

	stageStart = time.Now()
	w := newWeaver(o.ctx)
	rels := w.weaveAll()
	if err := o.engine.AddRelationshipsBulk(rels); err != nil {
		return nil, fmt.Errorf("add relationships: %w", err)
	}
	if err := w.populateMirrorFields(o.engine); err != nil {
		return nil, fmt.Errorf("populate mirror fields: %w", err)
	}
	timings.Weave = time.Since(stageStart)

	stageStart = time.Now()
	quality := Assess(o.ctx)
	timings.Assess = time.Since(stageStart)
	if quality.OverallScore < 0.70 {
		o.logger.Warn("generated graph quality below threshold",
			zap.Float64("overall", quality.OverallScore),
			zap.Int("warnings", len(quality.Warnings)))
	}

	o.logger.Info("generation complete",
		zap.Int("entities", o.ctx.Total()),
		zap.Int("relationships", len(rels)),
		zap.Float64("quality", quality.OverallScore))

	return &Result{
		EntityCounts:  counts,
		Relationships: len(rels),
		Quality:       quality,
		Timings:       timings,
	}, nil
}
