package synth

import (
	"fmt"
	"strings"

	"github.com/anthropics/og/internal/model"
)

var locationTypes = []string{"headquarters", "office", "data_center", "warehouse", "remote_hub"}

// locationProfiles coordinates security level and capacity with the
// facility type.
var locationProfiles = map[string]struct {
	security         []string
	capLow, capHigh  int
	physicalSecurity bool
}{
	"headquarters": {[]string{"enhanced", "restricted"}, 200, 5000, true},
	"office":       {[]string{"standard", "enhanced"}, 50, 1500, true},
	"data_center":  {[]string{"restricted"}, 20, 200, true},
	"warehouse":    {[]string{"standard", "enhanced"}, 30, 500, true},
	"remote_hub":   {[]string{"standard"}, 10, 100, false},
}

// genLocations emits one facility per count. The first location is the
// primary headquarters; later ones walk the type list before going random.
func genLocations(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var locType string
		if i < len(locationTypes) {
			locType = locationTypes[i]
		} else {
			locType = pick(c, locationTypes)
		}
		profile := locationProfiles[locType]
		city := c.city()
		title := titleWords(locType)
		loc := &model.Location{
			Base: c.base(model.KindLocation,
				city+" "+title,
				fmt.Sprintf("%s facility in %s", title, city),
				locType),
			Address:             c.streetAddress(),
			City:                city,
			State:               pick(c, stateAbbrs),
			Country:             pick(c, countryNames),
			ZipCode:             c.zipCode(),
			LocationType:        locType,
			Capacity:            c.IntBetween(profile.capLow, profile.capHigh),
			IsPrimary:           i == 0,
			SecurityLevel:       pick(c, profile.security),
			HasPhysicalSecurity: profile.physicalSecurity,
		}
		out = append(out, loc)
	}
	return out
}

func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// genNetworks materialises the profile's network specs; the scaled count is
// unused since the layout is fixed per profile.
func genNetworks(c *Context, _ int) []model.Entity {
	out := make([]model.Entity, 0, len(c.Profile.Networks))
	for _, spec := range c.Profile.Networks {
		network := &model.Network{
			Base: c.base(model.KindNetwork, spec.Name,
				fmt.Sprintf("%s network (%s zone)", spec.Name, spec.Zone),
				spec.Zone),
			CIDR:        spec.CIDR,
			Zone:        spec.Zone,
			VLANID:      c.IntBetween(10, 4094),
			Gateway:     gatewayFor(spec.CIDR),
			DNSServers:  []string{c.privateIPv4(), c.privateIPv4()},
			IsMonitored: spec.Zone != "guest",
		}
		out = append(out, network)
	}
	return out
}

// systemTemplate bundles the correlated fields of one well-known system so
// a single pick keeps name, OS, stack, ports, and criticality coherent.
type systemTemplate struct {
	name        string
	systemType  string
	oses        []string
	stacks      [][]string
	ports       []int
	criticality string
}

var systemTemplates = []systemTemplate{
	{"ERP System", "application", []string{"Linux", "Windows Server 2022"},
		[][]string{{"java", "spring", "oracle"}, {"java", "spring", "postgresql"}},
		[]int{443, 8080}, "critical"},
	{"CRM Platform", "saas", []string{"Linux"},
		[][]string{{"python", "django", "postgresql"}, {"java", "spring", "mysql"}},
		[]int{443}, "high"},
	{"HR Portal", "application", []string{"Linux", "Windows Server 2022"},
		[][]string{{".net", "sql-server", "iis"}, {"python", "django", "postgresql"}},
		[]int{443, 8443}, "high"},
	{"Email Server", "server", []string{"Windows Server 2022", "Linux"},
		[][]string{{"exchange", "active-directory"}, {"postfix", "dovecot", "linux"}},
		[]int{25, 443, 993}, "critical"},
	{"File Server", "server", []string{"Windows Server 2022", "Linux"},
		[][]string{{"smb", "ntfs", "windows"}, {"nfs", "zfs", "linux"}},
		[]int{445, 139}, "medium"},
	{"Database Server", "database", []string{"Linux", "RHEL 9"},
		[][]string{{"postgresql", "pgbouncer"}, {"mysql", "percona"}, {"oracle", "asm"}},
		[]int{5432, 3306}, "critical"},
	{"Web Application", "application", []string{"Linux", "Ubuntu 22.04"},
		[][]string{{"node", "react", "mongodb"}, {"python", "django", "postgresql"}},
		[]int{80, 443}, "high"},
	{"API Gateway", "appliance", []string{"Linux"},
		[][]string{{"kong", "nginx", "lua"}, {"envoy", "grpc", "go"}},
		[]int{443, 8443}, "critical"},
	{"Load Balancer", "appliance", []string{"Linux"},
		[][]string{{"haproxy", "keepalived"}, {"nginx", "lua"}},
		[]int{80, 443}, "critical"},
	{"DNS Server", "server", []string{"Linux", "RHEL 9"},
		[][]string{{"bind9", "dnssec"}, {"unbound", "nsd"}},
		[]int{53}, "critical"},
	{"LDAP/AD Server", "server", []string{"Windows Server 2022"},
		[][]string{{"active-directory", "kerberos", "ldap"}},
		[]int{389, 636, 88}, "critical"},
	{"Monitoring System", "application", []string{"Linux", "Ubuntu 22.04"},
		[][]string{{"prometheus", "grafana", "alertmanager"}, {"datadog", "agent"}},
		[]int{9090, 3000}, "high"},
	{"Log Aggregator", "application", []string{"Linux"},
		[][]string{{"elasticsearch", "kibana", "logstash"}, {"splunk", "forwarder"}},
		[]int{9200, 5601}, "high"},
	{"CI/CD Pipeline", "application", []string{"Linux"},
		[][]string{{"jenkins", "groovy", "docker"}, {"gitlab-ci", "docker", "kubernetes"}},
		[]int{8080, 443}, "high"},
	{"Code Repository", "saas", []string{"Linux"},
		[][]string{{"git", "gitlab", "ruby"}, {"git", "github", "go"}},
		[]int{443, 22}, "high"},
	{"Wiki/Docs", "saas", []string{"Linux"},
		[][]string{{"confluence", "java"}, {"notion", "node"}},
		[]int{443}, "low"},
	{"Chat Platform", "saas", []string{"Linux"},
		[][]string{{"slack", "electron"}, {"teams", "azure"}},
		[]int{443}, "medium"},
	{"VPN Gateway", "appliance", []string{"Linux"},
		[][]string{{"openvpn", "pki"}, {"wireguard", "ipsec"}},
		[]int{443, 1194}, "critical"},
	{"Firewall", "appliance", []string{"Linux"},
		[][]string{{"palo-alto", "pan-os"}, {"fortinet", "fortigate"}},
		[]int{443}, "critical"},
	{"IDS/IPS", "appliance", []string{"Linux"},
		[][]string{{"suricata", "zeek"}, {"snort", "barnyard"}},
		[]int{443}, "high"},
	{"SIEM", "application", []string{"Linux", "RHEL 9"},
		[][]string{{"splunk", "enterprise-security"}, {"elastic", "security", "kibana"}},
		[]int{8089, 443}, "critical"},
	{"Backup Server", "server", []string{"Linux", "Windows Server 2022"},
		[][]string{{"veeam", "sql-server"}, {"bacula", "postgresql"}},
		[]int{9392, 443}, "high"},
	{"Data Warehouse", "database", []string{"Linux"},
		[][]string{{"snowflake", "sql"}, {"redshift", "postgresql"}, {"bigquery", "sql"}},
		[]int{443, 5439}, "high"},
	{"Analytics Platform", "application", []string{"Linux"},
		[][]string{{"tableau", "python"}, {"powerbi", "azure"}, {"looker", "sql"}},
		[]int{443, 8088}, "medium"},
	{"SSO Provider", "saas", []string{"Linux"},
		[][]string{{"okta", "saml", "oidc"}, {"azure-ad", "oauth2"}},
		[]int{443}, "critical"},
}

var systemTypes = []string{"server", "application", "database", "saas", "workstation", "appliance", "vm"}

var environments = []string{"production", "staging", "development", "test", "dr"}

// overflowSystemNames provides name pools once the templates are exhausted.
var overflowSystemNames = map[string][]string{
	"server": {
		"File Archive Server", "Print Server", "FTP Server", "NTP Server",
		"Build Server", "License Server", "Proxy Server",
	},
	"application": {
		"Inventory Management", "Workflow Engine", "Notification Service",
		"Reporting Engine", "Scheduling System", "Document Management",
		"Asset Tracker", "Audit Platform",
	},
	"database": {
		"Reporting Database", "Analytics DB", "Archive Database",
		"Staging Database", "Replica Database",
	},
	"saas": {
		"Project Management SaaS", "Design Tool", "Survey Platform",
		"Expense Management", "Travel Booking", "E-Signature Platform",
	},
	"workstation": {
		"Developer Workstation", "Admin Workstation", "Kiosk Terminal",
		"Lab Workstation", "Trading Terminal",
	},
	"appliance": {
		"WAF Appliance", "DDoS Mitigation", "Email Gateway", "Web Proxy",
		"Network TAP",
	},
	"vm": {
		"Test VM", "Dev VM", "Sandbox VM", "Build VM", "Staging VM",
	},
}

// overflowStacks are generic application stacks for overflow systems.
// Network gear gets its own pool so appliances never carry web frameworks.
var overflowStacks = [][]string{
	{"python", "flask", "postgresql"},
	{"java", "spring", "mysql"},
	{"node", "express", "mongodb"},
	{"go", "grpc", "redis"},
	{".net", "sql-server", "iis"},
}

var applianceStacks = [][]string{
	{"go", "grpc", "redis"},
	{"nginx", "lua"},
	{"haproxy", "keepalived"},
	{"suricata", "zeek"},
	{"openvpn", "pki"},
}

var overflowPorts = []int{22, 80, 443, 3306, 5432, 8080, 8443}

// genSystems walks the coordinated template table first, then draws
// overflow systems with type-coherent OS and stack.
func genSystems(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var (
			name, sysType, osChoice, criticality string
			stack                                []string
			ports                                []int
		)
		if i < len(systemTemplates) {
			tmpl := systemTemplates[i]
			name = tmpl.name
			sysType = tmpl.systemType
			osChoice = pick(c, tmpl.oses)
			stack = pick(c, tmpl.stacks)
			ports = tmpl.ports
			criticality = tmpl.criticality
		} else {
			sysType = pick(c, systemTypes)
			name = pick(c, overflowSystemNames[sysType])
			switch sysType {
			case "appliance", "vm":
				osChoice = pick(c, []string{"Linux", "Ubuntu 22.04", "RHEL 9"})
				stack = pick(c, applianceStacks)
			case "workstation":
				osChoice = pick(c, []string{"Windows 11", "macOS"})
				stack = pick(c, overflowStacks)
			case "saas":
				osChoice = "Linux"
				stack = pick(c, overflowStacks)
			default:
				osChoice = pick(c, []string{"Linux", "Ubuntu 22.04", "RHEL 9", "Windows Server 2022"})
				stack = pick(c, overflowStacks)
			}
			ports = sampleN(c, overflowPorts, c.IntBetween(1, 3))
			criticality = pick(c, []string{"low", "medium", "high", "critical"})
		}

		system := &model.System{
			Base: c.base(model.KindSystem, name,
				fmt.Sprintf("%s - %s running %s", name, sysType, osChoice),
				sysType),
			SystemType:      sysType,
			Hostname:        hostnameFor(name, i),
			IPAddress:       c.privateIPv4(),
			OS:              osChoice,
			SoftwareVersion: fmt.Sprintf("%d.%d.%d", c.IntBetween(1, 12), c.IntBetween(0, 9), c.IntBetween(0, 20)),
			Environment:     pick(c, environments),
			Criticality:     criticality,
			IsInternetFacing: c.Chance(0.2),
			Ports:            append([]int(nil), ports...),
			Technologies:     append([]string(nil), stack...),
		}
		out = append(out, system)
	}
	return out
}

func hostnameFor(name string, i int) string {
	h := strings.ToLower(name)
	h = strings.ReplaceAll(h, " ", "-")
	h = strings.ReplaceAll(h, "/", "-")
	if len(h) > 20 {
		h = h[:20]
	}
	return fmt.Sprintf("%s-%03d", h, i)
}

var integrationTypes = []string{
	"API", "ETL", "File Transfer", "Message Queue", "Database Link",
	"Webhook", "CDC", "ESB",
}

var integrationProtocols = []string{"REST", "SOAP", "gRPC", "SFTP", "Kafka", "AMQP", "JDBC"}

func genIntegrations(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		intType := pick(c, integrationTypes)
		protocol := pick(c, integrationProtocols)
		integration := &model.Integration{
			Base: c.base(model.KindIntegration,
				fmt.Sprintf("%s Integration - %s", intType, protocol),
				fmt.Sprintf("%s integration using %s", intType, protocol),
				slugify(intType)),
			IntegrationID:   seqID("INT-", i),
			IntegrationType: intType,
			Protocol:        protocol,
			DataFormat:      pick(c, []string{"JSON", "XML", "CSV", "Avro", "Parquet", "Binary"}),
			Frequency:       pick(c, []string{"Real-time", "Near Real-time", "Hourly", "Daily", "Weekly"}),
			Direction:       pick(c, []string{"Unidirectional", "Bidirectional"}),
			Status:          pick(c, []string{"Active", "Inactive", "Deprecated", "Under Development"}),
			Criticality:     pick(c, []string{"Critical", "High", "Medium", "Low"}),
		}
		out = append(out, integration)
	}
	return out
}
