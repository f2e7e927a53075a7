package model

// Person is an employee or contractor.
type Person struct {
	Base
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Title          string `json:"title"`
	EmployeeID     string `json:"employee_id"`
	ClearanceLevel string `json:"clearance_level"`
	IsActive       bool   `json:"is_active"`
	HireDate       string `json:"hire_date,omitempty"`
	Phone          string `json:"phone,omitempty"`

	// Mirror fields, populated from works_in / has_role / located_at edges.
	DepartmentID string   `json:"department_id,omitempty"`
	HoldsRoles   []string `json:"holds_roles,omitempty"`
	LocatedAt    string   `json:"located_at,omitempty"`
}

func (*Person) Kind() EntityType { return KindPerson }

// Role is a job function within a department, carrying access metadata.
type Role struct {
	Base
	DepartmentID string   `json:"department_id,omitempty"`
	AccessLevel  string   `json:"access_level"`
	IsPrivileged bool     `json:"is_privileged"`
	Permissions  []string `json:"permissions"`
	MaxHeadcount int      `json:"max_headcount,omitempty"`

	// Mirror fields, populated from has_role edges.
	FilledByPersons []string `json:"filled_by_persons,omitempty"`
	HeadcountFilled int      `json:"headcount_filled,omitempty"`
}

func (*Role) Kind() EntityType { return KindRole }

// Department is an organisational division. Subdivided departments point at
// their parent via ParentDepartmentID.
type Department struct {
	Base
	Code               string  `json:"code"`
	HeadID             string  `json:"head_id,omitempty"`
	ParentDepartmentID string  `json:"parent_department_id,omitempty"`
	Budget             float64 `json:"budget,omitempty"`
	Headcount          int     `json:"headcount"`
	LocationID         string  `json:"location_id,omitempty"`
}

func (*Department) Kind() EntityType { return KindDepartment }

// OrganizationalUnit is a structural unit above or beside departments
// (business unit, division, shared service center).
type OrganizationalUnit struct {
	Base
	UnitID              string `json:"unit_id"`
	UnitType            string `json:"unit_type"`
	OperationalStatus   string `json:"operational_status"`
	GeographicScope     string `json:"geographic_scope"`
	FunctionalDomain    string `json:"functional_domain"`
	UnitLeader          string `json:"unit_leader"`
	UnitLeaderTitle     string `json:"unit_leader_title"`
	BusinessCriticality string `json:"business_criticality"`
}

func (*OrganizationalUnit) Kind() EntityType { return KindOrganizationalUnit }

// Location is a physical facility (office, data center, warehouse).
type Location struct {
	Base
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	Country             string `json:"country"`
	ZipCode             string `json:"zip_code"`
	LocationType        string `json:"location_type"`
	Capacity            int    `json:"capacity,omitempty"`
	IsPrimary           bool   `json:"is_primary"`
	SecurityLevel       string `json:"security_level"`
	HasPhysicalSecurity bool   `json:"has_physical_security"`
}

func (*Location) Kind() EntityType { return KindLocation }
