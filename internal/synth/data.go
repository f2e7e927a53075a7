package synth

import (
	"fmt"

	"github.com/anthropics/og/internal/model"
)

// assetTemplate bundles the correlated fields of one well-known data asset.
type assetTemplate struct {
	name           string
	dataType       string
	classification string
	format         string
	desc           string
}

var assetTemplates = []assetTemplate{
	{"Customer Database", "pii", "confidential", "sql",
		"Primary customer records including contact details and account history"},
	{"Employee Records", "pii", "restricted", "sql",
		"HR employee records with personal data, compensation, and benefits"},
	{"Financial Ledger", "financial", "restricted", "sql",
		"General ledger with transaction records and account balances"},
	{"Product Catalog", "operational", "internal", "sql",
		"Product and service catalog with pricing and availability"},
	{"Audit Logs", "operational", "confidential", "data_lake",
		"System audit logs for security monitoring and compliance"},
	{"Email Archive", "pii", "confidential", "file",
		"Corporate email archive for legal hold and compliance"},
	{"Source Code Repository", "intellectual_property", "restricted", "file",
		"Application source code and build artifacts"},
	{"Marketing Analytics", "operational", "internal", "data_lake",
		"Campaign performance metrics and customer engagement data"},
	{"Sales Pipeline Data", "financial", "confidential", "sql",
		"CRM pipeline data with deal values and sales forecasts"},
	{"Support Tickets", "operational", "internal", "nosql",
		"Customer support tickets with resolution tracking"},
	{"Compliance Reports", "operational", "confidential", "file",
		"Regulatory compliance reports and audit findings"},
	{"Network Logs", "operational", "internal", "stream",
		"Network traffic logs for security monitoring and forensics"},
	{"Backup Archives", "operational", "confidential", "file",
		"System backup archives for disaster recovery"},
	{"Research Data", "intellectual_property", "restricted", "data_lake",
		"R&D research data including experimental results and analyses"},
	{"Client Contracts", "financial", "restricted", "file",
		"Signed client contracts and service agreements"},
	{"Vendor Records", "financial", "confidential", "sql",
		"Third-party vendor information and risk assessments"},
	{"Payroll Data", "pii", "restricted", "sql",
		"Employee payroll records including salary and tax information"},
	{"Health Records", "phi", "restricted", "sql",
		"Protected health information subject to HIPAA requirements"},
	{"Transaction History", "financial", "confidential", "data_lake",
		"Historical transaction records for reporting and analytics"},
	{"User Activity Logs", "operational", "internal", "stream",
		"Application user activity logs for behavior analytics"},
	{"API Keys Vault", "operational", "restricted", "nosql",
		"Secrets management vault storing API keys and credentials"},
	{"Configuration Store", "operational", "internal", "nosql",
		"Centralized configuration management for infrastructure and applications"},
}

var overflowAssetNames = map[string][]string{
	"pii":                   {"Contact Directory", "User Profiles", "Identity Store", "Benefits Records"},
	"phi":                   {"Lab Results Store", "Imaging Archive", "Patient Demographics"},
	"financial":             {"Budget Tracker", "Invoice Archive", "Revenue Reports", "Tax Records"},
	"intellectual_property": {"Patent Filings", "Trade Secrets Vault", "Design Documents"},
	"operational":           {"Metrics Store", "Event Queue", "Cache Layer", "Job Scheduler Data"},
}

var regulationNames = []string{"GDPR", "HIPAA", "PCI-DSS", "SOX", "CCPA", "FERPA"}

var retentionChoices = []int{30, 90, 365, 730, 2555}

// genDataAssets walks the coordinated template table first, then draws
// overflow assets whose classification stays coherent with the data type.
// Restricted and confidential assets are always encrypted and carry one to
// three applicable regulations.
func genDataAssets(c *Context, count int) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var name, dataType, classification, format, desc string
		if i < len(assetTemplates) {
			tmpl := assetTemplates[i]
			name, dataType = tmpl.name, tmpl.dataType
			classification, format, desc = tmpl.classification, tmpl.format, tmpl.desc
		} else {
			dataType = pick(c, []string{"pii", "phi", "financial", "intellectual_property", "operational"})
			name = pick(c, overflowAssetNames[dataType])
			switch dataType {
			case "pii", "phi", "intellectual_property", "financial":
				classification = pick(c, []string{"restricted", "confidential"})
			default:
				classification = pick(c, []string{"internal", "confidential"})
			}
			format = pick(c, []string{"sql", "nosql", "file", "data_lake", "stream"})
			desc = fmt.Sprintf("%s data store: %s", titleWords(dataType), name)
		}

		sensitive := classification == "restricted" || classification == "confidential"
		var regulations []string
		if sensitive {
			regulations = sampleN(c, regulationNames, c.IntBetween(1, 3))
		}
		asset := &model.DataAsset{
			Base:           c.base(model.KindDataAsset, name, desc, classification, dataType),
			DataType:       dataType,
			Classification: classification,
			Format:         format,
			RetentionDays:  pick(c, retentionChoices),
			IsEncrypted:    sensitive || c.Chance(0.3),
			RecordCount:    int64(c.IntBetween(1000, 10000000)),
			Regulations:    regulations,
		}
		if asset.Regulations == nil {
			asset.Regulations = []string{}
		}
		out = append(out, asset)
	}
	return out
}

var dataDomainNames = []string{
	"Customer Data", "Product Data", "Financial Data", "Employee Data",
	"Operational Data", "Marketing Data", "Compliance Data", "Vendor Data",
	"Research Data", "Clinical Data", "Transaction Data", "Reference Data",
}

func genDataDomains(c *Context, count int) []model.Entity {
	selected := sampleN(c, dataDomainNames, count)
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		var name string
		if i < len(selected) {
			name = selected[i]
		} else {
			name = pick(c, singleWords) + " Data Domain"
		}
		domain := &model.DataDomain{
			Base: c.base(model.KindDataDomain, name,
				"Enterprise data domain: "+name, "data-domain"),
			DomainID:            seqID("DD-", i),
			DomainOwner:         c.personName(),
			DataSteward:         c.personName(),
			ClassificationLevel: pick(c, []string{"Public", "Internal", "Confidential", "Restricted"}),
			GovernanceStatus:    pick(c, []string{"Governed", "Partially Governed", "Ungoverned"}),
		}
		out = append(out, domain)
	}
	return out
}

// genDataFlows names each flow after a random source and target system.
// Confidential and restricted flows are always encrypted in transit.
func genDataFlows(c *Context, count int) []model.Entity {
	systems := entitiesAs[*model.System](c, model.KindSystem)
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		src, tgt := "External Source", "External Target"
		if len(systems) > 0 {
			src = pick(c, systems).Name
			tgt = pick(c, systems).Name
		}
		classification := pick(c, []string{"Public", "Internal", "Confidential", "Restricted"})
		sensitive := classification == "Confidential" || classification == "Restricted"
		flow := &model.DataFlow{
			Base: c.base(model.KindDataFlow,
				fmt.Sprintf("Flow: %s -> %s", src, tgt),
				fmt.Sprintf("Data flow from %s to %s", src, tgt),
				"data-flow"),
			FlowID:              seqID("DF-", i),
			Classification:      classification,
			TransferMethod:      pick(c, []string{"API", "ETL", "File Transfer", "Streaming", "Replication"}),
			Frequency:           pick(c, []string{"Real-time", "Hourly", "Daily", "Weekly", "On Demand"}),
			EncryptionInTransit: sensitive || c.Chance(0.5),
			Status:              pick(c, []string{"Active", "Inactive", "Under Review"}),
		}
		out = append(out, flow)
	}
	return out
}
