package model

// Policy is an internal governance document tied to a control framework.
type Policy struct {
	Base
	PolicyType          string   `json:"policy_type"`
	Framework           string   `json:"framework"`
	ControlID           string   `json:"control_id"`
	Severity            string   `json:"severity"`
	IsEnforced          bool     `json:"is_enforced"`
	ReviewFrequencyDays int      `json:"review_frequency_days"`
	OwnerID             string   `json:"owner_id,omitempty"`
	ApplicableSystems   []string `json:"applicable_systems"`
}

func (*Policy) Kind() EntityType { return KindPolicy }

// Regulation is an external legal or industry requirement.
type Regulation struct {
	Base
	RegulationID        string `json:"regulation_id"`
	ShortName           string `json:"short_name"`
	Jurisdiction        string `json:"jurisdiction"`
	RegulatoryDomain    string `json:"regulatory_domain"`
	ApplicabilityStatus string `json:"applicability_status"`
	EffectiveDate       string `json:"effective_date,omitempty"`
}

func (*Regulation) Kind() EntityType { return KindRegulation }

// Control is a safeguard implementing policy or regulatory requirements.
type Control struct {
	Base
	ControlID            string `json:"control_id"`
	ControlType          string `json:"control_type"`
	ControlDomain        string `json:"control_domain"`
	Framework            string `json:"framework"`
	ControlObjective     string `json:"control_objective"`
	ImplementationStatus string `json:"implementation_status"`
	AutomationLevel      string `json:"automation_level"`
	ControlOwner         string `json:"control_owner,omitempty"`
}

func (*Control) Kind() EntityType { return KindControl }

// Risk is an assessed exposure. InherentRiskLevel is always the RISK_MATRIX
// derivation of likelihood and impact; ResidualRiskLevel never exceeds it.
type Risk struct {
	Base
	RiskID             string    `json:"risk_id"`
	Category           string    `json:"category"`
	Likelihood         RiskLevel `json:"likelihood"`
	Impact             RiskLevel `json:"impact"`
	InherentRiskLevel  RiskLevel `json:"inherent_risk_level"`
	ResidualRiskLevel  RiskLevel `json:"residual_risk_level"`
	MitigationStatus   string    `json:"mitigation_status"`
	RiskOwner          string    `json:"risk_owner,omitempty"`
	ResponseStrategy   string    `json:"response_strategy,omitempty"`
	LastAssessmentDate string    `json:"last_assessment_date,omitempty"`
}

func (*Risk) Kind() EntityType { return KindRisk }

// Threat is a potential harm source, distinct from a named ThreatActor.
type Threat struct {
	Base
	ThreatID       string `json:"threat_id"`
	ThreatCategory string `json:"threat_category"`
	ThreatType     string `json:"threat_type"`
	Likelihood     string `json:"likelihood"`
	ThreatSource   string `json:"threat_source"`
	ThreatStatus   string `json:"threat_status"`
}

func (*Threat) Kind() EntityType { return KindThreat }

// Vulnerability is a weakness in a system or component.
type Vulnerability struct {
	Base
	CVEID             string  `json:"cve_id"`
	CVSSScore         float64 `json:"cvss_score"`
	Severity          string  `json:"severity"`
	Status            string  `json:"status"`
	ExploitAvailable  bool    `json:"exploit_available"`
	PatchAvailable    bool    `json:"patch_available"`
	AffectedComponent string  `json:"affected_component"`
	DiscoveryDate     string  `json:"discovery_date,omitempty"`

	// Mirror field, populated from affects edges.
	AffectedSystemIDs []string `json:"affected_system_ids,omitempty"`
}

func (*Vulnerability) Kind() EntityType { return KindVulnerability }

// ThreatActor is a named adversary with attribution metadata.
type ThreatActor struct {
	Base
	ActorType        string   `json:"actor_type"`
	Sophistication   string   `json:"sophistication"`
	Motivation       string   `json:"motivation"`
	OriginCountry    string   `json:"origin_country"`
	FirstSeen        string   `json:"first_seen,omitempty"`
	LastSeen         string   `json:"last_seen,omitempty"`
	Aliases          []string `json:"aliases"`
	TTPs             []string `json:"ttps"`
	TargetIndustries []string `json:"target_industries"`
	IOCs             []string `json:"iocs,omitempty"`
}

func (*ThreatActor) Kind() EntityType { return KindThreatActor }

// Incident is a realised security event.
type Incident struct {
	Base
	IncidentType      string `json:"incident_type"`
	Severity          string `json:"severity"`
	Status            string `json:"status"`
	DetectionMethod   string `json:"detection_method"`
	OccurredAt        string `json:"occurred_at,omitempty"`
	DetectedAt        string `json:"detected_at,omitempty"`
	ResolvedAt        string `json:"resolved_at,omitempty"`
	ImpactDescription string `json:"impact_description"`
	RootCause         string `json:"root_cause"`
	ThreatActorID     string `json:"threat_actor_id,omitempty"`
	LessonsLearned    string `json:"lessons_learned,omitempty"`

	// Mirror field, populated from affects edges.
	AffectedSystemIDs    []string `json:"affected_system_ids,omitempty"`
	AffectedDataAssetIDs []string `json:"affected_data_asset_ids,omitempty"`
	ResponderIDs         []string `json:"responder_ids,omitempty"`
}

func (*Incident) Kind() EntityType { return KindIncident }
