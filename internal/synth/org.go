package synth

import (
	"fmt"
	"strings"

	"github.com/anthropics/og/internal/model"
)

// subdivisionThreshold is the headcount above which a root department is
// split into sub-departments.
const subdivisionThreshold = 500

// subDepartmentTemplates lists child department names per root department,
// covering all department names across the three industry profiles.
var subDepartmentTemplates = map[string][]string{
	"Engineering": {
		"Platform Engineering", "Product Engineering", "Infrastructure",
		"Data Engineering", "Mobile Engineering", "Frontend Engineering",
		"Backend Engineering", "QA & Testing", "SRE & Reliability",
		"Security Engineering",
	},
	"Product": {
		"Product Management", "UX & Design", "Product Analytics",
		"Technical Writing",
	},
	"Sales": {
		"Enterprise Sales", "Mid-Market Sales", "Inside Sales",
		"Solutions Engineering", "Sales Operations",
	},
	"Marketing": {
		"Digital Marketing", "Brand & Communications", "Product Marketing",
		"Events & Field Marketing", "Demand Generation",
	},
	"IT Operations": {
		"Cloud Infrastructure", "Service Desk", "Network Operations",
		"Database Administration",
	},
	"Security": {
		"Security Operations", "GRC", "Threat Intelligence",
		"Application Security", "Identity & Access Management",
	},
	"HR": {
		"Talent Acquisition", "Compensation & Benefits",
		"Learning & Development", "Employee Relations",
	},
	"Finance": {
		"Financial Planning & Analysis", "Treasury", "Tax",
		"Accounts Payable & Receivable",
	},
	"Legal": {
		"Corporate Legal", "Intellectual Property", "Employment Law",
	},
	"Trading": {
		"Equities Trading", "Fixed Income", "Derivatives", "FX Trading",
		"Commodities",
	},
	"Technology": {
		"Platform Engineering", "Application Development",
		"Infrastructure & Cloud", "Data Engineering", "DevOps & SRE",
		"QA & Testing",
	},
	"Risk Management": {
		"Market Risk", "Credit Risk", "Operational Risk", "Model Risk",
	},
	"Compliance & Legal": {
		"Regulatory Compliance", "Legal Affairs",
		"Privacy & Data Protection", "Anti-Money Laundering",
	},
	"Operations": {
		"Settlement & Clearing", "Reconciliation", "Client Onboarding",
		"Middle Office",
	},
	"Client Services": {
		"Private Banking", "Institutional Services", "Retail Banking",
		"Wealth Management",
	},
	"Finance & Accounting": {
		"Financial Planning & Analysis", "Treasury Operations",
		"Tax & Compliance", "Accounts & Reporting",
	},
	"Information Security": {
		"Security Operations Center", "GRC", "Threat Intelligence",
		"Application Security", "Identity & Access Management",
	},
	"Internal Audit": {
		"IT Audit", "Financial Audit", "Operational Audit",
	},
	"Clinical Operations": {
		"Emergency Medicine", "Surgical Services", "Outpatient Services",
		"Inpatient Care", "Diagnostics & Imaging", "Rehabilitation",
		"Pediatrics", "Cardiology",
	},
	"Nursing": {
		"Medical-Surgical Nursing", "ICU & Critical Care",
		"Emergency Nursing", "Pediatric Nursing", "Obstetrics & Gynecology",
	},
	"Administration": {
		"Hospital Administration", "Patient Access",
		"Health Information Management", "Quality Improvement",
	},
	"IT": {
		"Clinical Systems", "Infrastructure", "Service Desk",
		"Data & Analytics", "Cybersecurity",
	},
	"Finance & Billing": {
		"Revenue Cycle Management", "Claims Processing", "Patient Accounts",
		"Financial Planning",
	},
	"Pharmacy": {
		"Inpatient Pharmacy", "Outpatient Pharmacy", "Clinical Pharmacy",
	},
	"Research": {
		"Clinical Trials", "Basic Research", "Translational Research",
		"Biostatistics",
	},
	"Compliance": {
		"Regulatory Compliance", "Privacy (HIPAA)", "Accreditation",
	},
	"Facilities": {
		"Maintenance & Engineering", "Environmental Services",
		"Safety & Security",
	},
}

// genDepartments builds the root departments from the profile specs and
// subdivides any department whose headcount exceeds the threshold. The
// count argument is ignored; the profile fully determines the layout.
func genDepartments(c *Context, _ int) []model.Entity {
	p := c.Profile
	out := make([]model.Entity, 0, len(p.Departments))
	for _, spec := range p.Departments {
		headcount := int(float64(p.EmployeeCount) * spec.HeadcountFraction)
		dept := &model.Department{
			Base: c.base(model.KindDepartment, spec.Name,
				fmt.Sprintf("%s department at %s", spec.Name, p.Name),
				spec.Sensitivity),
			Code:      departmentCode(spec.Name),
			Headcount: headcount,
			Budget:    model.Round2(float64(headcount) * c.Uniform(80000, 150000)),
		}
		dept.Metadata["data_sensitivity"] = spec.Sensitivity

		templates, ok := subDepartmentTemplates[spec.Name]
		if headcount > subdivisionThreshold && ok {
			out = append(out, subdivide(c, dept, templates)...)
		} else {
			out = append(out, dept)
		}
	}
	return out
}

// subdivide splits a large department: the parent keeps a small leadership
// headcount and the remainder is spread evenly across the children.
func subdivide(c *Context, parent *model.Department, templates []string) []model.Entity {
	nSubs := parent.Headcount / 300
	if nSubs < 2 {
		nSubs = 2
	}
	if nSubs > len(templates) {
		nSubs = len(templates)
	}

	leadership := int(float64(parent.Headcount) * 0.03)
	if leadership < 3 {
		leadership = 3
	}
	remaining := parent.Headcount - leadership
	parent.Headcount = leadership

	out := []model.Entity{parent}
	perSub := remaining / nSubs
	leftover := remaining - perSub*nSubs
	for i, subName := range templates[:nSubs] {
		headcount := perSub
		if i < leftover {
			headcount++
		}
		sub := &model.Department{
			Base: c.base(model.KindDepartment,
				parent.Name+" - "+subName,
				fmt.Sprintf("%s division within %s at %s", subName, parent.Name, c.Profile.Name),
				parent.Tags...),
			Code:               fmt.Sprintf("%s_%02d", parent.Code, i+1),
			Headcount:          headcount,
			Budget:             model.Round2(float64(headcount) * c.Uniform(80000, 150000)),
			ParentDepartmentID: parent.ID,
		}
		for k, v := range parent.Metadata {
			sub.Metadata[k] = v
		}
		out = append(out, sub)
	}
	return out
}

func departmentCode(name string) string {
	code := strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	if len(code) > 8 {
		code = code[:8]
	}
	return code
}

var ouNamePrefixes = []string{
	"Global", "Regional", "Corporate", "Enterprise", "Central", "Digital",
}

var ouTypes = []string{
	"Business Unit", "Division", "Department", "Team",
	"Shared Service Center", "Center of Excellence",
}

func genOrgUnits(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		unitType := pick(c, ouTypes)
		unit := &model.OrganizationalUnit{
			Base: c.base(model.KindOrganizationalUnit,
				pick(c, ouNamePrefixes)+" "+unitType,
				unitType+" organizational unit",
				slugify(unitType)),
			UnitID:            seqID("OU-", i),
			UnitType:          unitType,
			OperationalStatus: pick(c, []string{"Active", "Planned", "Under Restructuring", "Dissolved"}),
			GeographicScope:   pick(c, []string{"Global", "Regional", "National", "Local"}),
			FunctionalDomain: pick(c, []string{
				"Technology", "Finance", "Operations", "Sales",
				"Marketing", "HR", "Legal", "Compliance",
			}),
			UnitLeader:          c.personName(),
			UnitLeaderTitle:     pick(c, []string{"VP", "SVP", "Director", "Managing Director", "Head"}),
			BusinessCriticality: pick(c, []string{"Critical", "High", "Medium", "Low"}),
		}
		out = append(out, unit)
	}
	return out
}

var clearanceLevels = []string{"none", "basic", "elevated", "privileged", "admin"}

// genPeople generates employees and contractors. The trailing
// ContractorFraction of the population is marked contractor.
func genPeople(c *Context, count int) []model.Entity {
	p := c.Profile
	domain := strings.ReplaceAll(strings.ToLower(p.Name), " ", "") + ".com"
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		first, last := c.firstName(), c.lastName()
		contractor := float64(i)/float64(count) > 1-p.ContractorFraction
		tag := "employee"
		if contractor {
			tag = "contractor"
		}
		title := pick(c, jobTitles)
		person := &model.Person{
			Base: c.base(model.KindPerson, first+" "+last,
				fmt.Sprintf("%s at %s", title, p.Name), tag),
			FirstName:      first,
			LastName:       last,
			Email:          strings.ToLower(fmt.Sprintf("%s.%s@%s", first, last, domain)),
			Title:          title,
			EmployeeID:     c.employeeID(),
			ClearanceLevel: pick(c, clearanceLevels),
			IsActive:       c.Chance(0.95),
			HireDate:       c.dateWithin(10),
			Phone:          c.phoneNumber(),
		}
		out = append(out, person)
	}
	return out
}

// roleTemplates lists base role names per root department name.
var roleTemplates = map[string][]string{
	"Engineering": {"Software Engineer", "Senior Engineer", "Tech Lead", "DevOps Engineer", "QA Engineer"},
	"Product":     {"Product Manager", "Product Analyst", "UX Designer"},
	"Sales":       {"Account Executive", "Sales Manager", "SDR"},
	"Marketing":   {"Marketing Manager", "Content Strategist", "Growth Analyst"},
	"HR":          {"HR Generalist", "Recruiter", "HR Manager"},
	"Finance":     {"Financial Analyst", "Controller", "Accountant"},
	"Finance & Billing":    {"Financial Analyst", "Billing Specialist", "Revenue Analyst"},
	"Finance & Accounting": {"Financial Analyst", "Controller", "Senior Accountant"},
	"Legal":                {"Legal Counsel", "Paralegal", "Compliance Analyst"},
	"Compliance & Legal":   {"Compliance Officer", "Legal Counsel", "Regulatory Analyst"},
	"IT Operations":        {"System Administrator", "Network Engineer", "Help Desk Analyst", "DBA"},
	"IT":                   {"System Administrator", "Network Engineer", "Help Desk Analyst", "DBA", "Cloud Engineer"},
	"Technology":           {"Software Engineer", "DevOps Engineer", "Cloud Architect", "Data Engineer"},
	"Security":             {"Security Analyst", "Security Engineer", "SOC Analyst", "CISO"},
	"Information Security": {"Security Analyst", "Security Engineer", "SOC Analyst", "Threat Hunter", "CISO"},
	"Executive":            {"CEO", "CTO", "CFO", "COO"},
	"Clinical Operations":  {"Clinical Director", "Care Coordinator", "Medical Officer"},
	"Nursing":              {"Charge Nurse", "Nurse Manager", "Clinical Nurse Specialist"},
	"Administration":       {"Office Manager", "Administrative Director"},
	"Pharmacy":             {"Pharmacist", "Pharmacy Manager"},
	"Research":             {"Research Scientist", "Principal Investigator"},
	"Compliance":           {"Compliance Officer", "Privacy Officer", "Regulatory Analyst"},
	"Facilities":           {"Facilities Manager", "Safety Officer"},
	"Trading":              {"Trader", "Trading Desk Manager", "Quantitative Analyst"},
	"Risk Management":      {"Risk Analyst", "Risk Manager", "Credit Risk Officer"},
	"Operations":           {"Operations Analyst", "Operations Manager"},
	"Client Services":      {"Client Manager", "Relationship Manager"},
	"Internal Audit":       {"Internal Auditor", "Audit Manager"},
}

var defaultRoleTemplates = []string{"Analyst", "Manager", "Director"}

// rolePermissions maps role names to correlated permission grants.
var rolePermissions = map[string][]string{
	"Software Engineer":    {"read:internal", "write:internal", "deploy:production", "access:vpn"},
	"Senior Engineer":      {"read:internal", "write:internal", "deploy:production", "access:vpn"},
	"Tech Lead":            {"read:internal", "write:internal", "deploy:production", "approve:changes"},
	"DevOps Engineer":      {"admin:systems", "deploy:production", "read:internal", "write:internal"},
	"QA Engineer":          {"read:internal", "write:internal", "access:vpn"},
	"Cloud Engineer":       {"admin:systems", "deploy:production", "read:internal"},
	"Cloud Architect":      {"admin:systems", "deploy:production", "approve:changes"},
	"Data Engineer":        {"read:internal", "read:confidential", "write:internal"},
	"Security Analyst":     {"read:internal", "read:confidential", "access:vpn"},
	"Security Engineer":    {"admin:systems", "read:confidential", "read:internal"},
	"SOC Analyst":          {"read:internal", "read:confidential", "access:vpn"},
	"Threat Hunter":        {"read:confidential", "read:internal", "access:vpn"},
	"Penetration Tester":   {"admin:systems", "read:confidential", "access:vpn"},
	"CISO":                 {"admin:systems", "admin:users", "read:confidential", "write:confidential", "approve:changes", "manage:budgets"},
	"CEO":                  {"admin:users", "manage:budgets", "approve:changes", "read:confidential"},
	"CTO":                  {"admin:systems", "admin:users", "deploy:production", "approve:changes"},
	"CFO":                  {"manage:budgets", "read:confidential", "write:confidential", "approve:changes"},
	"COO":                  {"manage:budgets", "approve:changes", "read:confidential"},
	"CIO":                  {"admin:systems", "manage:budgets", "approve:changes"},
	"HR Manager":           {"admin:users", "read:confidential", "write:confidential"},
	"Sales Manager":        {"read:internal", "manage:budgets"},
	"Marketing Manager":    {"read:internal", "write:internal"},
	"System Administrator": {"admin:systems", "read:internal", "deploy:production"},
	"Network Engineer":     {"admin:systems", "read:internal"},
	"DBA":                  {"admin:systems", "read:confidential", "write:confidential"},
	"Help Desk Analyst":    {"read:internal", "admin:users"},
}

var defaultPermissions = []string{"read:internal", "access:vpn"}

// seniorityExempt lists title keywords that block Junior/Senior/Staff
// expansion.
var seniorityExempt = []string{
	"manager", "director", "vp", "chief", "ceo", "cto", "cfo", "coo",
	"cio", "ciso", "lead", "head", "principal", "senior", "junior",
	"staff", "recruiter", "paralegal", "officer",
}

var privilegedKeywords = []string{
	"admin", "lead", "manager", "director", "ciso", "cto", "ceo", "cfo",
	"coo", "cio", "staff", "senior",
}

func containsAnyKeyword(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

type roleVariant struct {
	name string
	base string // original name for permission lookup, empty for the base role
}

// seniorityVariants expands a role into Junior/Senior/Staff variants based
// on department headcount. Management titles are exempt.
func seniorityVariants(name string, headcount int) []roleVariant {
	if containsAnyKeyword(name, seniorityExempt) {
		return []roleVariant{{name: name}}
	}
	variants := []roleVariant{{name: name}}
	if headcount >= 100 {
		variants = append(variants, roleVariant{name: "Senior " + name, base: name})
	}
	if headcount >= 300 {
		variants = append([]roleVariant{{name: "Junior " + name, base: name}}, variants...)
	}
	if headcount >= 500 {
		variants = append(variants, roleVariant{name: "Staff " + name, base: name})
	}
	return variants
}

// rootDepartmentName strips the sub-department suffix so template lookups
// work for children ("Engineering - Infrastructure" uses "Engineering").
func rootDepartmentName(name string) string {
	root, _, found := strings.Cut(name, " - ")
	if found {
		return root
	}
	return name
}

// genRoles derives roles from leaf departments; the scaled count is unused.
// Each leaf department gets the template roles for its root department name,
// expanded with seniority variants sized to its headcount.
func genRoles(c *Context, _ int) []model.Entity {
	departments := entitiesAs[*model.Department](c, model.KindDepartment)
	hasChildren := make(map[string]bool)
	for _, d := range departments {
		if d.ParentDepartmentID != "" {
			hasChildren[d.ParentDepartmentID] = true
		}
	}

	var out []model.Entity
	for _, dept := range departments {
		if hasChildren[dept.ID] {
			continue
		}
		templates, ok := roleTemplates[rootDepartmentName(dept.Name)]
		if !ok {
			templates = defaultRoleTemplates
		}
		for _, roleName := range templates {
			for _, variant := range seniorityVariants(roleName, dept.Headcount) {
				privileged := containsAnyKeyword(variant.name, privilegedKeywords)
				access := "privileged"
				if !privileged {
					access = pick(c, []string{"standard", "elevated"})
				}
				permissions := rolePermissions[variant.name]
				if permissions == nil && variant.base != "" {
					permissions = rolePermissions[variant.base]
				}
				if permissions == nil {
					permissions = defaultPermissions
				}
				role := &model.Role{
					Base: c.base(model.KindRole, variant.name,
						fmt.Sprintf("%s role in %s", variant.name, dept.Name),
						slugify(dept.Name)),
					DepartmentID: dept.ID,
					AccessLevel:  access,
					IsPrivileged: privileged,
					Permissions:  append([]string(nil), permissions...),
				}
				out = append(out, role)
			}
		}
	}
	return out
}
