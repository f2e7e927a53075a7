package synth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anthropics/og/internal/model"
)

// loremPatterns flag filler prose: literal lorem-ipsum tokens and the
// eight-word generated-sentence shape.
var loremPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(lorem|ipsum|dolor|sit amet|consectetur)\b`),
	regexp.MustCompile(`^[A-Z][a-z]+ [a-z]+ [a-z]+ [a-z]+ [a-z]+ [a-z]+ [a-z]+ [a-z]+\.$`),
}

func isLorem(text string) bool {
	for _, p := range loremPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// webFrameworks never belong on a network appliance.
var webFrameworks = []string{"django", "rails", "react", "express", "spring", "flask"}

// descriptionKinds are the kinds whose descriptions get scanned for filler.
var descriptionKinds = []model.EntityType{
	model.KindPerson, model.KindSystem, model.KindDataAsset,
	model.KindVendor, model.KindIncident, model.KindVulnerability,
	model.KindRisk, model.KindThreat, model.KindControl,
	model.KindIntegration, model.KindDataFlow, model.KindCustomer,
	model.KindContract, model.KindInitiative, model.KindPolicy,
}

// QualityReport scores a generated graph on five structural checks, each
// in [0, 1]. The overall score is their arithmetic mean.
type QualityReport struct {
	OverallScore          float64  `json:"overall_score"`
	RiskMathConsistency   float64  `json:"risk_math_consistency"`
	DescriptionQuality    float64  `json:"description_quality"`
	TechStackCoherence    float64  `json:"tech_stack_coherence"`
	FieldCorrelation      float64  `json:"field_correlation_score"`
	EncryptionConsistency float64  `json:"encryption_classification_consistency"`
	Warnings              []string `json:"warnings,omitempty"`
}

// Summary renders the report for terminal output, listing at most five
// warnings.
func (r *QualityReport) Summary() string {
	lines := []string{
		fmt.Sprintf("Overall Score: %.2f", r.OverallScore),
		fmt.Sprintf("  Risk Math Consistency:     %.2f", r.RiskMathConsistency),
		fmt.Sprintf("  Description Quality:       %.2f", r.DescriptionQuality),
		fmt.Sprintf("  Tech Stack Coherence:      %.2f", r.TechStackCoherence),
		fmt.Sprintf("  Field Correlation:         %.2f", r.FieldCorrelation),
		fmt.Sprintf("  Encryption/Classification: %.2f", r.EncryptionConsistency),
	}
	if len(r.Warnings) > 0 {
		lines = append(lines, fmt.Sprintf("  Warnings: %d", len(r.Warnings)))
		for i, w := range r.Warnings {
			if i == 5 {
				break
			}
			lines = append(lines, "    - "+w)
		}
	}
	return strings.Join(lines, "\n")
}

// Assess runs all quality checks against the generated entities.
func Assess(c *Context) *QualityReport {
	r := &QualityReport{}
	r.RiskMathConsistency = checkRiskMath(c, r)
	r.DescriptionQuality = checkDescriptions(c, r)
	r.TechStackCoherence = checkTechStacks(c, r)
	r.FieldCorrelation = checkFieldCorrelations(c, r)
	r.EncryptionConsistency = checkEncryption(c, r)
	r.OverallScore = (r.RiskMathConsistency + r.DescriptionQuality +
		r.TechStackCoherence + r.FieldCorrelation + r.EncryptionConsistency) / 5
	return r
}

// checkRiskMath verifies that every risk's inherent level matches the
// matrix for its likelihood and impact. Missing fields are not a math
// error.
func checkRiskMath(c *Context, r *QualityReport) float64 {
	risks := entitiesAs[*model.Risk](c, model.KindRisk)
	if len(risks) == 0 {
		return 1.0
	}
	correct := 0
	for _, risk := range risks {
		if !risk.Likelihood.Valid() || !risk.Impact.Valid() || !risk.InherentRiskLevel.Valid() {
			correct++
			continue
		}
		expected := model.InherentRisk(risk.Likelihood, risk.Impact)
		if expected == risk.InherentRiskLevel {
			correct++
		} else {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"risk %q: inherent %s, matrix gives %s for %s/%s",
				risk.Name, risk.InherentRiskLevel, expected, risk.Likelihood, risk.Impact))
		}
	}
	return float64(correct) / float64(len(risks))
}

func checkDescriptions(c *Context, r *QualityReport) float64 {
	total, good := 0, 0
	for _, kind := range descriptionKinds {
		for _, e := range c.Entities(kind) {
			desc := e.Common().Description
			if desc == "" {
				continue
			}
			total++
			if isLorem(desc) {
				r.Warnings = append(r.Warnings, fmt.Sprintf(
					"%s %q: lorem ipsum description", kind, e.Common().Name))
			} else {
				good++
			}
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(good) / float64(total)
}

// checkTechStacks rejects appliances carrying a web framework.
func checkTechStacks(c *Context, r *QualityReport) float64 {
	systems := entitiesAs[*model.System](c, model.KindSystem)
	if len(systems) == 0 {
		return 1.0
	}
	coherent := 0
	for _, s := range systems {
		offending := ""
		if s.SystemType == "appliance" {
			for _, tech := range s.Technologies {
				for _, fw := range webFrameworks {
					if tech == fw {
						offending = fw
					}
				}
			}
		}
		if offending == "" {
			coherent++
		} else {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"system %q: appliance carries web framework %q", s.Name, offending))
		}
	}
	return float64(coherent) / float64(len(systems))
}

// checkFieldCorrelations covers residual-vs-inherent risk ordering, the
// vulnerability patch/status relation, and data centre security tiers.
// Patched findings still marked open earn half credit rather than failing
// outright.
func checkFieldCorrelations(c *Context, r *QualityReport) float64 {
	checks := 0
	passes := 0.0

	for _, risk := range entitiesAs[*model.Risk](c, model.KindRisk) {
		if !risk.InherentRiskLevel.Valid() || !risk.ResidualRiskLevel.Valid() {
			continue
		}
		checks++
		if risk.ResidualRiskLevel.Index() <= risk.InherentRiskLevel.Index() {
			passes++
		} else {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"risk %q: residual (%s) above inherent (%s)",
				risk.Name, risk.ResidualRiskLevel, risk.InherentRiskLevel))
		}
	}

	for _, v := range entitiesAs[*model.Vulnerability](c, model.KindVulnerability) {
		if v.Status == "" {
			continue
		}
		checks++
		patchedAndHandled := v.PatchAvailable && (v.Status == "mitigated" || v.Status == "resolved")
		unpatchedAndWaiting := !v.PatchAvailable && (v.Status == "open" || v.Status == "accepted")
		if patchedAndHandled || unpatchedAndWaiting {
			passes++
		} else {
			passes += 0.5
		}
	}

	for _, s := range entitiesAs[*model.Site](c, model.KindSite) {
		if s.SiteType != "Data Center" {
			continue
		}
		checks++
		if s.PhysicalSecurityTier == "Restricted" {
			passes++
		} else {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"site %q: data center on %s security tier", s.Name, s.PhysicalSecurityTier))
		}
	}

	if checks == 0 {
		return 1.0
	}
	return passes / float64(checks)
}

func checkEncryption(c *Context, r *QualityReport) float64 {
	flows := entitiesAs[*model.DataFlow](c, model.KindDataFlow)
	total, encrypted := 0, 0
	for _, f := range flows {
		if f.Classification != "Restricted" && f.Classification != "Confidential" {
			continue
		}
		total++
		if f.EncryptionInTransit {
			encrypted++
		} else {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"data_flow %q: %s data not encrypted in transit", f.Name, f.Classification))
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(encrypted) / float64(total)
}
