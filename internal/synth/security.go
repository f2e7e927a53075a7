package synth

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/anthropics/og/internal/model"
)

// Governance and security generators. Catalog tables stay fixed between
// releases so a seed keeps landing on the same rows.

type policyTemplate struct {
	name       string
	policyType string
	framework  string
	controlID  string
	desc       string
}

var policyTemplates = []policyTemplate{
	{"Access Control Policy", "access_control", "NIST", "AC-1",
		"Defines access control requirements for systems and data"},
	{"Data Classification Policy", "data_protection", "ISO27001", "A.8.2",
		"Establishes data classification levels and handling requirements"},
	{"Incident Response Plan", "incident_response", "NIST", "IR-1",
		"Outlines procedures for detecting, responding to, and recovering from incidents"},
	{"Acceptable Use Policy", "acceptable_use", "CIS", "CIS-1.1",
		"Defines acceptable use of organizational IT resources"},
	{"Password Policy", "authentication", "NIST", "IA-5",
		"Sets password complexity, rotation, and management requirements"},
	{"Network Security Policy", "network_security", "ISO27001", "A.13.1",
		"Governs network segmentation, monitoring, and access controls"},
	{"Encryption Policy", "encryption", "PCI-DSS", "3.4",
		"Mandates encryption standards for data at rest and in transit"},
	{"Remote Access Policy", "remote_access", "NIST", "AC-17",
		"Controls remote access methods and authentication requirements"},
	{"Change Management Policy", "change_management", "ITIL", "CHG-1",
		"Establishes change approval workflows and rollback procedures"},
	{"Backup and Recovery Policy", "backup", "ISO27001", "A.12.3",
		"Defines backup frequency, retention, and recovery testing"},
	{"Third-Party Risk Policy", "vendor_management", "SOC2", "CC9.2",
		"Governs vendor assessment, onboarding, and ongoing risk monitoring"},
	{"Data Retention Policy", "data_retention", "GDPR", "Art-5",
		"Specifies data retention periods and secure disposal requirements"},
	{"Physical Security Policy", "physical_security", "ISO27001", "A.11.1",
		"Controls physical access to facilities and secure areas"},
	{"Security Awareness Training", "training", "NIST", "AT-2",
		"Mandates security awareness training frequency and content"},
	{"Vulnerability Management Policy", "vulnerability_management", "NIST", "RA-5",
		"Defines vulnerability scanning, prioritization, and remediation SLAs"},
	{"Business Continuity Plan", "business_continuity", "ISO22301", "BC-1",
		"Outlines business continuity and disaster recovery procedures"},
	{"Privacy Policy", "privacy", "GDPR", "Art-13",
		"Governs personal data collection, processing, and subject rights"},
	{"Mobile Device Policy", "mobile_security", "CIS", "CIS-5.1",
		"Controls mobile device enrollment, configuration, and remote wipe"},
	{"Cloud Security Policy", "cloud_security", "CSA", "CCM-1",
		"Establishes security requirements for cloud service adoption"},
	{"Logging and Monitoring Policy", "monitoring", "NIST", "AU-2",
		"Defines logging requirements and security monitoring standards"},
}

var overflowPolicyTemplates = []policyTemplate{
	{"API Security Policy", "api_security", "OWASP", "API-1",
		"Governs API authentication, rate limiting, and input validation"},
	{"Patch Management Policy", "patch_management", "CIS", "CIS-3.4",
		"Defines patching timelines based on vulnerability severity"},
	{"Identity Lifecycle Policy", "identity_management", "NIST", "IA-4",
		"Controls account provisioning, review, and deprovisioning"},
	{"Secure Development Policy", "sdlc", "OWASP", "SDLC-1",
		"Mandates secure coding practices and code review requirements"},
	{"Asset Management Policy", "asset_management", "ISO27001", "A.8.1",
		"Establishes asset inventory, ownership, and lifecycle tracking"},
	{"Wireless Security Policy", "wireless_security", "CIS", "CIS-15.1",
		"Controls wireless network configuration and access"},
	{"Email Security Policy", "email_security", "NIST", "SC-7",
		"Defines email filtering, authentication, and anti-phishing controls"},
	{"Database Security Policy", "database_security", "CIS", "CIS-6.1",
		"Governs database access, encryption, and audit logging"},
	{"Endpoint Protection Policy", "endpoint_security", "CIS", "CIS-10.1",
		"Mandates endpoint detection, response, and hardening standards"},
	{"Supply Chain Security Policy", "supply_chain", "NIST", "SR-1",
		"Controls software supply chain integrity and provenance verification"},
}

var severityPool = []string{"low", "medium", "high", "critical"}

var policyReviewDays = []int{90, 180, 365}

func genPolicies(c *Context, count int) []model.Entity {
	catalog := make([]policyTemplate, 0, len(policyTemplates)+len(overflowPolicyTemplates))
	catalog = append(catalog, policyTemplates...)
	catalog = append(catalog, overflowPolicyTemplates...)

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		t := catalog[i%len(catalog)]
		name, controlID := t.name, t.controlID
		// Past one full cycle the catalog repeats as revisions.
		if rev := i/len(catalog) + 1; rev > 1 {
			name = fmt.Sprintf("%s v%d", name, rev)
			controlID = fmt.Sprintf("%s-r%d", controlID, rev)
		}
		out = append(out, &model.Policy{
			Base:                c.base(model.KindPolicy, name, t.desc, strings.ToLower(t.framework)),
			PolicyType:          t.policyType,
			Framework:           t.framework,
			ControlID:           controlID,
			Severity:            pick(c, severityPool),
			IsEnforced:          c.Chance(0.85),
			ReviewFrequencyDays: pick(c, policyReviewDays),
			ApplicableSystems:   []string{},
		})
	}
	return out
}

type regulationSpec struct {
	short        string
	fullName     string
	jurisdiction string
	domain       string
}

var regulationCatalog = []regulationSpec{
	{"GDPR", "General Data Protection Regulation", "EU", "Data Privacy"},
	{"CCPA", "California Consumer Privacy Act", "US-CA", "Data Privacy"},
	{"HIPAA", "Health Insurance Portability and Accountability Act", "US", "Healthcare"},
	{"SOX", "Sarbanes-Oxley Act", "US", "Financial Reporting"},
	{"PCI-DSS", "Payment Card Industry Data Security Standard", "Global", "Payment Security"},
	{"DORA", "Digital Operational Resilience Act", "EU", "Financial Services"},
	{"NIS2", "Network and Information Security Directive 2", "EU", "Cybersecurity"},
	{"SOC2", "Service Organization Control Type 2", "US", "Trust Services"},
	{"ISO27001", "Information Security Management System", "Global", "Information Security"},
	{"GLBA", "Gramm-Leach-Bliley Act", "US", "Financial Privacy"},
	{"FERPA", "Family Educational Rights and Privacy Act", "US", "Education"},
	{"NIST-CSF", "NIST Cybersecurity Framework", "US", "Cybersecurity"},
	{"Basel III", "Basel III Capital Adequacy", "Global", "Banking"},
	{"MiFID II", "Markets in Financial Instruments Directive II", "EU", "Financial Markets"},
	{"FISMA", "Federal Information Security Modernization Act", "US", "Government IT"},
}

var overflowJurisdictions = []string{"US", "EU", "Global", "UK", "APAC"}

var overflowRegDomains = []string{"Data Privacy", "Financial", "Cybersecurity", "Operational"}

func genRegulations(c *Context, count int) []model.Entity {
	n := count
	if n > len(regulationCatalog) {
		n = len(regulationCatalog)
	}
	selected := sampleN(c, regulationCatalog, n)

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var spec regulationSpec
		if i < len(selected) {
			spec = selected[i]
		} else {
			spec = regulationSpec{
				short:        fmt.Sprintf("REG-%s%s", c.lexifyUpper(2), padInt(c.IntBetween(100, 999), 3)),
				fullName:     titleWords(c.buzzPhrase()) + " Regulation",
				jurisdiction: pick(c, overflowJurisdictions),
				domain:       pick(c, overflowRegDomains),
			}
		}
		desc := fmt.Sprintf("%s - %s regulation in %s", spec.short, spec.domain, spec.jurisdiction)
		out = append(out, &model.Regulation{
			Base:                c.base(model.KindRegulation, spec.fullName, desc, slugify(spec.domain), strings.ToLower(spec.jurisdiction)),
			RegulationID:        seqID("REG-", i),
			ShortName:           spec.short,
			Jurisdiction:        spec.jurisdiction,
			RegulatoryDomain:    spec.domain,
			ApplicabilityStatus: "Applicable",
			EffectiveDate:       c.dateWithin(5),
		})
	}
	return out
}

var controlFrameworks = []string{"NIST 800-53", "ISO 27001", "CIS Controls", "COBIT", "SOC2 TSC"}

var controlTypes = []string{"Preventive", "Detective", "Corrective", "Compensating"}

var controlDomains = []string{
	"Access Control", "Asset Management", "Audit & Accountability",
	"Configuration Management", "Incident Response", "Media Protection",
	"Physical Security", "Risk Assessment", "System & Communications Protection",
	"Vulnerability Management", "Change Management", "Data Protection",
}

var implementationStatuses = []string{"Implemented", "Partially Implemented", "Planned"}

var automationLevels = []string{"Fully Automated", "Semi-Automated", "Manual"}

func genControls(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		framework := pick(c, controlFrameworks)
		domain := pick(c, controlDomains)
		ctype := pick(c, controlTypes)
		name := fmt.Sprintf("%s Control - %s", domain, framework)
		desc := fmt.Sprintf("%s control for %s", ctype, strings.ToLower(domain))
		out = append(out, &model.Control{
			Base:                 c.base(model.KindControl, name, desc, slugify(framework), slugify(domain)),
			ControlID:            seqID("CTL-", i),
			ControlType:          ctype,
			ControlDomain:        domain,
			Framework:            framework,
			ControlObjective:     fmt.Sprintf("Ensure %s requirements are met", strings.ToLower(domain)),
			ImplementationStatus: pick(c, implementationStatuses),
			AutomationLevel:      pick(c, automationLevels),
			ControlOwner:         c.personName(),
		})
	}
	return out
}

var riskCategories = []string{
	"Operational", "Cybersecurity", "Compliance", "Financial",
	"Strategic", "Reputational", "Third-Party", "Technology",
}

var riskLevelPool = []model.RiskLevel{
	model.RiskVeryLow, model.RiskLow, model.RiskMedium, model.RiskHigh, model.RiskVeryHigh,
}

var mitigationStatuses = []string{"Open", "Mitigated", "Accepted", "Transferred"}

var responseStrategies = []string{"Mitigate", "Accept", "Transfer", "Avoid"}

// genRisks draws likelihood and impact, then derives the inherent level from
// the risk matrix and lowers it by up to two steps for the residual. Ratings
// are never drawn independently of each other.
func genRisks(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		category := pick(c, riskCategories)
		likelihood := pick(c, riskLevelPool)
		impact := pick(c, riskLevelPool)
		inherent := model.InherentRisk(likelihood, impact)
		residual := model.ResidualRisk(inherent, c.IntBetween(0, 2))
		name := fmt.Sprintf("%s Risk - %s", category, titleWords(c.buzzPhrase()))
		desc := fmt.Sprintf("Risk in %s domain", strings.ToLower(category))
		out = append(out, &model.Risk{
			Base:               c.base(model.KindRisk, name, desc, slugify(category)),
			RiskID:             seqID("RSK-", i),
			Category:           category,
			Likelihood:         likelihood,
			Impact:             impact,
			InherentRiskLevel:  inherent,
			ResidualRiskLevel:  residual,
			MitigationStatus:   pick(c, mitigationStatuses),
			RiskOwner:          c.personName(),
			ResponseStrategy:   pick(c, responseStrategies),
			LastAssessmentDate: c.dateAgoBetween(0, 182),
		})
	}
	return out
}

var threatCategories = []string{
	"Cyber", "Physical", "Insider", "Supply Chain",
	"Natural Disaster", "Geopolitical", "Regulatory Change",
}

var threatLikelihoods = []string{"Very High", "High", "Medium", "Low", "Very Low"}

var threatTypes = []string{"Targeted", "Opportunistic", "Environmental", "Systemic"}

var threatSources = []string{"External", "Internal", "Environmental", "Partner"}

var threatStatuses = []string{"Active", "Emerging", "Historical", "Mitigated"}

func genThreats(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		category := pick(c, threatCategories)
		name := fmt.Sprintf("%s Threat - %s", category, titleWords(c.buzzPhrase()))
		desc := fmt.Sprintf("Threat in %s domain", strings.ToLower(category))
		out = append(out, &model.Threat{
			Base:           c.base(model.KindThreat, name, desc, slugify(category)),
			ThreatID:       seqID("THR-", i),
			ThreatCategory: category,
			ThreatType:     pick(c, threatTypes),
			Likelihood:     pick(c, threatLikelihoods),
			ThreatSource:   pick(c, threatSources),
			ThreatStatus:   pick(c, threatStatuses),
		})
	}
	return out
}

type vulnTemplate struct {
	name         string
	descriptions []string
	components   []string
}

var vulnTemplates = []vulnTemplate{
	{"SQL Injection",
		[]string{
			"SQL injection vulnerability in user input handling",
			"Unsanitized query parameters allow SQL injection",
			"Database query construction vulnerable to injection via form fields",
		},
		[]string{"login form", "search API", "user profile endpoint", "reporting module", "admin dashboard query"}},
	{"Cross-Site Scripting",
		[]string{
			"Reflected XSS in URL parameter processing",
			"Stored XSS vulnerability in user-generated content",
			"DOM-based XSS through unescaped template rendering",
		},
		[]string{"comment system", "user profile page", "search results", "notification display", "message rendering"}},
	{"Buffer Overflow",
		[]string{
			"Heap buffer overflow in input parsing routine",
			"Stack-based buffer overflow in network protocol handler",
			"Integer overflow leading to buffer overwrite",
		},
		[]string{"packet parser", "file upload handler", "image processing library", "protocol decoder", "memory allocator"}},
	{"Remote Code Execution",
		[]string{
			"Remote code execution via deserialization of untrusted data",
			"Command injection enabling arbitrary code execution",
			"Template injection allowing server-side code execution",
		},
		[]string{"API endpoint", "file processing service", "template engine", "deserialization handler", "webhook processor"}},
	{"Privilege Escalation",
		[]string{
			"Local privilege escalation through SUID binary exploitation",
			"Vertical privilege escalation via insecure role check",
			"Privilege escalation through misconfigured sudo rules",
		},
		[]string{"authentication module", "role-based access control", "sudo configuration", "service account handler"}},
	{"Authentication Bypass",
		[]string{
			"Authentication bypass through token manipulation",
			"Session fixation allowing authentication bypass",
			"Missing authentication check on administrative endpoint",
		},
		[]string{"SSO integration", "API authentication middleware", "session management", "JWT validation"}},
	{"Information Disclosure",
		[]string{
			"Sensitive information disclosed in error messages",
			"Debug endpoint exposing internal system details",
			"Directory listing enabled on web server",
		},
		[]string{"error handler", "debug endpoint", "HTTP headers", "API response serializer", "log output"}},
	{"Denial of Service",
		[]string{
			"Resource exhaustion through malformed request flood",
			"Algorithmic complexity DoS in parsing function",
			"Memory leak triggered by specific input pattern",
		},
		[]string{"request parser", "rate limiter", "connection handler", "XML parser", "regex engine"}},
	{"Path Traversal",
		[]string{
			"Path traversal allowing access to files outside web root",
			"Directory traversal in file download functionality",
			"Zip slip vulnerability in archive extraction",
		},
		[]string{"file download endpoint", "archive extractor", "static file server", "document viewer"}},
	{"Insecure Deserialization",
		[]string{
			"Insecure deserialization of user-controlled data",
			"Object injection through untrusted deserialization",
			"Unsafe unmarshaling of serialized objects",
		},
		[]string{"session handler", "message queue consumer", "cache layer", "RPC framework"}},
	{"SSRF",
		[]string{
			"Server-side request forgery via URL parameter manipulation",
			"SSRF enabling access to internal metadata services",
			"Blind SSRF through webhook URL processing",
		},
		[]string{"webhook handler", "URL preview feature", "PDF generator", "image fetcher"}},
	{"Broken Access Control",
		[]string{
			"Horizontal access control bypass via IDOR",
			"Missing function-level access control on admin API",
			"Insecure direct object reference in resource endpoint",
		},
		[]string{"REST API endpoint", "file access handler", "user management interface", "resource controller"}},
}

type cvssRange struct{ lo, hi float64 }

var cvssRanges = map[string]cvssRange{
	"low":      {0.1, 3.9},
	"medium":   {4.0, 6.9},
	"high":     {7.0, 8.9},
	"critical": {9.0, 10.0},
}

var patchedVulnStatuses = []string{"mitigated", "resolved", "open"}

// genVulnerabilities keeps status consistent with patch availability: a
// finding is never mitigated or resolved while no patch exists.
func genVulnerabilities(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		severity := pick(c, severityPool)
		r := cvssRanges[severity]
		t := pick(c, vulnTemplates)

		patched := c.Chance(0.6)
		status := "open"
		if patched {
			status = pick(c, patchedVulnStatuses)
		} else if c.Chance(1.0 / 3) {
			status = "accepted"
		}

		out = append(out, &model.Vulnerability{
			Base:              c.base(model.KindVulnerability, t.name, pick(c, t.descriptions), severity),
			CVEID:             fmt.Sprintf("CVE-%d-%d", c.IntBetween(2020, 2025), c.IntBetween(10000, 99999)),
			CVSSScore:         math.Round(c.Uniform(r.lo, r.hi)*10) / 10,
			Severity:          severity,
			Status:            status,
			ExploitAvailable:  c.Chance(0.3),
			PatchAvailable:    patched,
			AffectedComponent: pick(c, t.components),
			DiscoveryDate:     c.dateWithin(2),
		})
	}
	return out
}

type aptProfile struct {
	name           string
	origin         string
	actorType      string
	motivation     string
	sophistication string
	targets        []string
}

// Named adversaries carry fixed attribution; the order matters because the
// first count actors are taken from the top of the list.
var aptProfiles = []aptProfile{
	{"Midnight Blizzard", "RU", "nation_state", "espionage", "advanced", []string{"technology", "government", "defense"}},
	{"Cozy Bear", "RU", "apt", "espionage", "advanced", []string{"government", "defense", "healthcare"}},
	{"Fancy Bear", "RU", "nation_state", "espionage", "advanced", []string{"government", "defense", "energy"}},
	{"Lazarus Group", "KP", "nation_state", "financial", "advanced", []string{"finance", "technology", "defense"}},
	{"Equation Group", "US", "nation_state", "espionage", "advanced", []string{"government", "technology", "energy"}},
	{"Shadow Brokers", "Unknown", "hacktivist", "disruption", "high", []string{"government", "technology"}},
	{"DarkSide", "RU", "cybercriminal", "financial", "high", []string{"energy", "healthcare", "finance"}},
	{"REvil", "RU", "cybercriminal", "financial", "high", []string{"technology", "healthcare", "finance"}},
	{"Sandworm", "RU", "nation_state", "disruption", "advanced", []string{"energy", "government", "technology"}},
	{"Turla", "RU", "apt", "espionage", "advanced", []string{"government", "defense"}},
	{"Kimsuky", "KP", "nation_state", "espionage", "high", []string{"government", "defense", "technology"}},
	{"Charming Kitten", "IR", "nation_state", "espionage", "high", []string{"government", "defense", "technology"}},
}

var attackTTPs = []string{
	"T1566-Phishing",
	"T1059-Command Scripting",
	"T1078-Valid Accounts",
	"T1021-Remote Services",
	"T1071-Application Layer Protocol",
	"T1486-Data Encrypted for Impact",
	"T1053-Scheduled Task",
	"T1027-Obfuscated Files",
	"T1105-Ingress Tool Transfer",
	"T1070-Indicator Removal",
	"T1218-System Binary Proxy Execution",
}

var overflowActorTypes = []string{"cybercriminal", "hacktivist", "insider"}

var overflowMotivations = []string{"financial", "disruption", "ideological", "retaliation"}

var overflowOrigins = []string{"Unknown", "RU", "CN", "IR", "KP"}

var actorTargetIndustries = []string{"technology", "healthcare", "finance", "government", "energy", "defense"}

func genThreatActors(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var p aptProfile
		var desc string
		if i < len(aptProfiles) {
			p = aptProfiles[i]
			desc = fmt.Sprintf("%s threat actor attributed to %s, motivated by %s",
				titleWords(p.actorType), p.origin, p.motivation)
		} else {
			p = aptProfile{
				name:           "APT-" + c.lexifyUpper(4),
				origin:         pick(c, overflowOrigins),
				actorType:      pick(c, overflowActorTypes),
				motivation:     pick(c, overflowMotivations),
				sophistication: pick(c, []string{"low", "medium", "high"}),
				targets:        sampleN(c, actorTargetIndustries, c.IntBetween(1, 3)),
			}
			desc = fmt.Sprintf("%s group with %s sophistication", titleWords(p.actorType), p.sophistication)
		}

		aliases := make([]string, c.IntBetween(1, 3))
		for j := range aliases {
			aliases[j] = fmt.Sprintf("%s-%s", c.lexifyUpper(3), padInt(c.IntBetween(0, 9999), 4))
		}

		out = append(out, &model.ThreatActor{
			Base:             c.base(model.KindThreatActor, p.name, desc, p.actorType),
			ActorType:        p.actorType,
			Sophistication:   p.sophistication,
			Motivation:       p.motivation,
			OriginCountry:    p.origin,
			FirstSeen:        c.dateAgoBetween(365, 5*365),
			LastSeen:         c.dateAgoBetween(0, 365),
			Aliases:          aliases,
			TTPs:             sampleN(c, attackTTPs, c.IntBetween(2, 5)),
			TargetIndustries: p.targets,
		})
	}
	return out
}

type incidentTemplate struct {
	incidentType string
	descriptions []string
	impacts      []string
	rootCauses   []string
	detections   []string
}

var incidentTemplates = []incidentTemplate{
	{"data_breach",
		[]string{
			"Unauthorized access to sensitive data detected in production environment",
			"Exfiltration of customer PII from database via compromised credentials",
			"Data exposure through misconfigured cloud storage bucket",
		},
		[]string{
			"Potential exposure of customer PII affecting regulatory compliance",
			"Data loss impacting customer trust and triggering breach notification",
			"Regulatory liability and potential fines under data protection laws",
		},
		[]string{
			"Compromised service account with excessive permissions",
			"Misconfigured access controls on cloud storage",
			"Stolen credentials via phishing campaign",
		},
		[]string{"siem", "audit", "threat_intel"}},
	{"malware",
		[]string{
			"Malware infection detected on multiple endpoints via EDR alert",
			"Trojan horse identified communicating with known C2 infrastructure",
			"Worm propagation across internal network segment",
		},
		[]string{
			"System availability degraded across affected endpoints",
			"Potential lateral movement and data exfiltration risk",
			"Operational disruption requiring endpoint isolation",
		},
		[]string{
			"Drive-by download from compromised website",
			"Malicious email attachment opened by user",
			"Infected USB device connected to corporate endpoint",
		},
		[]string{"edr", "ids", "siem"}},
	{"phishing",
		[]string{
			"Targeted phishing campaign impersonating executive leadership",
			"Credential harvesting via spoofed SSO login page",
			"Spear phishing emails delivering malicious payloads to finance team",
		},
		[]string{
			"Multiple accounts compromised requiring password resets",
			"Potential unauthorized access to financial systems",
			"Employee credential exposure and downstream access risk",
		},
		[]string{
			"Sophisticated social engineering bypassing email filters",
			"Lookalike domain not caught by email gateway",
			"Lack of MFA on targeted accounts",
		},
		[]string{"user_report", "siem", "threat_intel"}},
	{"dos",
		[]string{
			"Distributed denial of service attack targeting public-facing services",
			"Application-layer DDoS overwhelming API endpoints",
			"Volumetric attack exceeding CDN capacity thresholds",
		},
		[]string{
			"Customer-facing services unavailable for extended period",
			"Revenue loss from service disruption during peak hours",
			"SLA violations affecting customer contracts",
		},
		[]string{
			"Botnet targeting public IP ranges with UDP flood",
			"Application vulnerability enabling amplification attack",
			"Insufficient DDoS mitigation capacity at edge",
		},
		[]string{"ids", "siem", "soar"}},
	{"insider_threat",
		[]string{
			"Anomalous data access pattern detected for privileged user",
			"Unauthorized bulk data download by departing employee",
			"Privileged account used to access restricted systems outside business hours",
		},
		[]string{
			"Potential intellectual property theft and competitive harm",
			"Confidential data at risk of unauthorized disclosure",
			"Trust boundary violation requiring investigation",
		},
		[]string{
			"Disgruntled employee with elevated access privileges",
			"Inadequate access revocation during offboarding",
			"Excessive standing privileges for user role",
		},
		[]string{"siem", "audit", "user_report"}},
	{"ransomware",
		[]string{
			"Ransomware encryption detected on file servers and network shares",
			"Critical systems encrypted with ransom demand for cryptocurrency",
			"Ransomware deployment following lateral movement from initial foothold",
		},
		[]string{
			"Critical business operations halted pending recovery",
			"Data availability compromised across multiple departments",
			"Potential permanent data loss for unprotected systems",
		},
		[]string{
			"Initial access via exploited VPN vulnerability",
			"Ransomware-as-a-Service deployed through phishing vector",
			"Unpatched critical vulnerability exploited for initial access",
		},
		[]string{"edr", "siem", "user_report"}},
	{"account_compromise",
		[]string{
			"Privileged account compromise detected via impossible travel alert",
			"Service account credentials used from unauthorized location",
			"Admin account showing signs of unauthorized access and privilege use",
		},
		[]string{
			"Attacker gained access to administrative controls",
			"Potential for lateral movement and privilege escalation",
			"Sensitive system configurations potentially modified",
		},
		[]string{
			"Credential stuffing attack using leaked credentials",
			"Brute force attack on exposed authentication endpoint",
			"Session hijacking through XSS vulnerability",
		},
		[]string{"siem", "ids", "soar"}},
	{"supply_chain",
		[]string{
			"Compromised third-party library detected in production dependencies",
			"Vendor software update containing embedded backdoor",
			"Supply chain compromise via trojanized development tool",
		},
		[]string{
			"Production systems potentially compromised via trusted channel",
			"Widespread exposure through trusted vendor relationship",
			"Integrity of build pipeline and deployed artifacts uncertain",
		},
		[]string{
			"Compromised vendor build pipeline injecting malicious code",
			"Typosquatted package installed via dependency confusion",
			"Vendor credentials compromised enabling software tampering",
		},
		[]string{"threat_intel", "siem", "audit"}},
	{"misconfiguration",
		[]string{
			"Security misconfiguration exposing internal services to internet",
			"Cloud resource misconfiguration allowing unauthorized public access",
			"Firewall rule change inadvertently opening restricted network segment",
		},
		[]string{
			"Internal services exposed to unauthorized access",
			"Data potentially accessible to external parties",
			"Compliance violation requiring immediate remediation",
		},
		[]string{
			"Infrastructure-as-code change deployed without security review",
			"Manual configuration change bypassing change management",
			"Default credentials left on newly provisioned resource",
		},
		[]string{"audit", "siem", "ids"}},
}

var incidentStatuses = []string{"open", "investigating", "contained", "resolved", "closed"}

// genIncidents coordinates description, impact, root cause and detection
// method per incident type. System and data asset references arrive later
// through the weaver; the threat actor pool already exists at this point.
func genIncidents(c *Context, count int) []model.Entity {
	actors := c.Entities(model.KindThreatActor)

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		t := pick(c, incidentTemplates)
		occurred := c.timeWithin(365 * 24 * time.Hour)
		gap := time.Since(occurred)
		detected := occurred.Add(time.Duration(c.rng.Int63n(int64(gap) + 1)))

		status := pick(c, incidentStatuses)
		resolvedAt := ""
		if status == "resolved" || status == "closed" {
			resolvedAt = detected.Add(time.Duration(c.IntBetween(1, 336)) * time.Hour).Format(time.RFC3339)
		}

		actorID := ""
		if len(actors) > 0 && c.Chance(0.5) {
			actorID = pick(c, actors).Common().ID
		}

		name := fmt.Sprintf("%s - %s", titleWords(t.incidentType), occurred.Format("2006-01-02"))
		out = append(out, &model.Incident{
			Base:              c.base(model.KindIncident, name, pick(c, t.descriptions), t.incidentType),
			IncidentType:      t.incidentType,
			Severity:          pick(c, severityPool),
			Status:            status,
			DetectionMethod:   pick(c, t.detections),
			OccurredAt:        occurred.Format(time.RFC3339),
			DetectedAt:        detected.Format(time.RFC3339),
			ResolvedAt:        resolvedAt,
			ImpactDescription: pick(c, t.impacts),
			RootCause:         pick(c, t.rootCauses),
			ThreatActorID:     actorID,
		})
	}
	return out
}
