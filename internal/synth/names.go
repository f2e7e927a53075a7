package synth

import (
	"fmt"
	"strings"
)

// Hand-authored pools standing in for a faker library. Pools are small on
// purpose; realism comes from coordinated templates, not name variety.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Christopher",
	"Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Margaret",
	"Mark", "Sandra", "Donald", "Ashley", "Steven", "Kimberly", "Paul",
	"Emily", "Andrew", "Donna", "Joshua", "Michelle", "Kenneth", "Carol",
	"Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa", "Priya",
	"Wei", "Yuki", "Carlos", "Fatima", "Lars", "Ingrid", "Mateo",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Chen", "Patel", "Kim", "Singh", "Kowalski", "Müller",
}

var cities = []string{
	"Austin", "Seattle", "Denver", "Boston", "Chicago", "Atlanta",
	"Portland", "Nashville", "Raleigh", "Phoenix", "San Diego", "Dallas",
	"Minneapolis", "Columbus", "Charlotte", "Pittsburgh", "Salt Lake City",
	"Madison", "Richmond", "Tampa", "Dublin", "London", "Berlin",
	"Singapore", "Sydney", "Toronto", "Amsterdam", "Tokyo",
}

var stateAbbrs = []string{
	"TX", "WA", "CO", "MA", "IL", "GA", "OR", "TN", "NC", "AZ", "CA",
	"MN", "OH", "PA", "UT", "WI", "VA", "FL", "NY", "NJ",
}

var countryCodes = []string{
	"US", "US", "US", "GB", "DE", "SG", "AU", "CA", "NL", "JP", "IE", "IN",
}

var countryNames = []string{
	"USA", "USA", "United Kingdom", "Germany", "Singapore", "Australia",
	"Canada", "Netherlands", "Japan", "Ireland",
}

var streetNames = []string{
	"Main", "Oak", "Cedar", "Elm", "Market", "Park", "Washington", "Lake",
	"Hill", "Maple", "Pine", "River", "Spring", "Union", "Franklin",
	"Highland", "Jackson", "Jefferson", "Madison", "Commerce",
}

var streetSuffixes = []string{"Street", "Avenue", "Boulevard", "Drive", "Road", "Way", "Lane"}

var jobTitles = []string{
	"Software Engineer", "Systems Analyst", "Account Manager",
	"Operations Coordinator", "Financial Analyst", "Project Manager",
	"Data Analyst", "Customer Success Manager", "Technical Writer",
	"Business Analyst", "Product Designer", "Infrastructure Engineer",
	"Compliance Specialist", "Procurement Specialist", "Support Engineer",
	"Marketing Specialist", "Research Associate", "Sales Representative",
	"HR Coordinator", "Network Administrator", "Database Administrator",
	"Quality Analyst", "Security Specialist", "Solutions Architect",
	"Program Coordinator", "Administrative Assistant", "Budget Analyst",
	"Trainer", "Auditor", "Clinical Coordinator", "Billing Specialist",
	"Facilities Coordinator", "Executive Assistant", "Legal Assistant",
}

var companySuffixes = []string{
	"Group", "Holdings", "Partners", "Industries", "Corp", "Inc", "LLC",
	"Enterprises", "International", "Solutions",
}

var buzzVerbs = []string{
	"Streamline", "Modernize", "Unify", "Accelerate", "Consolidate",
	"Harden", "Automate", "Rationalize", "Integrate", "Optimize",
	"Standardize", "Transform",
}

var buzzNouns = []string{
	"Platforms", "Workflows", "Pipelines", "Architectures", "Channels",
	"Interfaces", "Operations", "Services", "Infrastructure", "Analytics",
	"Portfolios", "Capabilities", "Ecosystems", "Foundations",
}

var singleWords = []string{
	"Aurora", "Cascade", "Comet", "Delta", "Ember", "Fathom", "Granite",
	"Harbor", "Ivory", "Juniper", "Keystone", "Lumen", "Mesa", "Nimbus",
	"Orbit", "Pioneer", "Quartz", "Ridge", "Summit", "Tundra",
}

func (c *Context) firstName() string { return pick(c, firstNames) }
func (c *Context) lastName() string  { return pick(c, lastNames) }

// personName returns a full name for owner and contact fields.
func (c *Context) personName() string {
	return c.firstName() + " " + c.lastName()
}

func (c *Context) city() string { return pick(c, cities) }

func (c *Context) streetAddress() string {
	return fmt.Sprintf("%d %s %s", c.IntBetween(100, 9999), pick(c, streetNames), pick(c, streetSuffixes))
}

func (c *Context) zipCode() string { return padInt(c.IntBetween(10000, 99999), 5) }

func (c *Context) phoneNumber() string {
	return fmt.Sprintf("+1-555-%03d-%04d", c.IntBetween(100, 999), c.IntBetween(1000, 9999))
}

// buzzPhrase returns a short title-cased phrase for initiative and risk names.
func (c *Context) buzzPhrase() string {
	return pick(c, buzzVerbs) + " " + pick(c, buzzNouns)
}

func (c *Context) companyName() string {
	return pick(c, vendorPrefixes) + " " + pick(c, companySuffixes)
}

// privateIPv4 returns an address inside 10.0.0.0/8.
func (c *Context) privateIPv4() string {
	return fmt.Sprintf("10.%d.%d.%d", c.Intn(256), c.Intn(256), c.IntBetween(2, 254))
}

// gatewayFor derives a .1 gateway address from a CIDR base.
func gatewayFor(cidr string) string {
	base, _, ok := strings.Cut(cidr, "/")
	if !ok {
		base = cidr
	}
	octets := strings.Split(base, ".")
	if len(octets) != 4 {
		return base
	}
	octets[3] = "1"
	return strings.Join(octets, ".")
}

// lexifyUpper returns n random uppercase letters.
func (c *Context) lexifyUpper(n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[c.Intn(len(letters))]
	}
	return string(b)
}

func padInt(v, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}

// seqID formats the five digit sequential identifiers used by the
// enterprise generators (REG-00001, CTL-00002, ...).
func seqID(prefix string, i int) string {
	return fmt.Sprintf("%s%05d", prefix, i+1)
}

// slugify lowercases a name and replaces spaces for use in tags.
func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
