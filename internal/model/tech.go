package model

// System is a technical asset: server, application, database, SaaS product,
// workstation, appliance, or VM. SoftwareVersion is the deployed release;
// the base Version field remains the update counter.
type System struct {
	Base
	SystemType       string   `json:"system_type"`
	Hostname         string   `json:"hostname"`
	IPAddress        string   `json:"ip_address,omitempty"`
	OS               string   `json:"os"`
	SoftwareVersion  string   `json:"software_version,omitempty"`
	VendorID         string   `json:"vendor_id,omitempty"`
	Environment      string   `json:"environment"`
	Criticality      string   `json:"criticality"`
	IsInternetFacing bool     `json:"is_internet_facing"`
	OwnerID          string   `json:"owner_id,omitempty"`
	DepartmentID     string   `json:"department_id,omitempty"`
	NetworkID        string   `json:"network_id,omitempty"`
	Ports            []int    `json:"ports"`
	Technologies     []string `json:"technologies"`
}

func (*System) Kind() EntityType { return KindSystem }

// Network is a network segment with a zone classification.
type Network struct {
	Base
	CIDR        string   `json:"cidr"`
	Zone        string   `json:"zone"`
	VLANID      int      `json:"vlan_id,omitempty"`
	Gateway     string   `json:"gateway"`
	DNSServers  []string `json:"dns_servers"`
	IsMonitored bool     `json:"is_monitored"`
	LocationID  string   `json:"location_id,omitempty"`
}

func (*Network) Kind() EntityType { return KindNetwork }

// Integration is a point-to-point data exchange between systems.
type Integration struct {
	Base
	IntegrationID   string `json:"integration_id"`
	IntegrationType string `json:"integration_type"`
	Protocol        string `json:"protocol"`
	DataFormat      string `json:"data_format"`
	Frequency       string `json:"frequency"`
	Direction       string `json:"direction"`
	Status          string `json:"status"`
	Criticality     string `json:"criticality"`
}

func (*Integration) Kind() EntityType { return KindIntegration }

// DataAsset is a store of data with a classification level.
type DataAsset struct {
	Base
	DataType       string   `json:"data_type"`
	Classification string   `json:"classification"`
	Format         string   `json:"format"`
	RetentionDays  int      `json:"retention_days,omitempty"`
	IsEncrypted    bool     `json:"is_encrypted"`
	OwnerID        string   `json:"owner_id,omitempty"`
	SystemID       string   `json:"system_id,omitempty"`
	RecordCount    int64    `json:"record_count,omitempty"`
	Regulations    []string `json:"regulations"`
}

func (*DataAsset) Kind() EntityType { return KindDataAsset }

// DataDomain groups data assets under one governance owner.
type DataDomain struct {
	Base
	DomainID            string `json:"domain_id"`
	DomainOwner         string `json:"domain_owner"`
	DataSteward         string `json:"data_steward"`
	ClassificationLevel string `json:"classification_level"`
	GovernanceStatus    string `json:"governance_status"`
}

func (*DataDomain) Kind() EntityType { return KindDataDomain }

// DataFlow is a movement of data between systems. Restricted and
// confidential flows must be encrypted in transit.
type DataFlow struct {
	Base
	FlowID              string `json:"flow_id"`
	Classification      string `json:"classification"`
	TransferMethod      string `json:"transfer_method"`
	Frequency           string `json:"frequency"`
	EncryptionInTransit bool   `json:"encryption_in_transit"`
	Status              string `json:"status"`
}

func (*DataFlow) Kind() EntityType { return KindDataFlow }
