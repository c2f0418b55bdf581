package contract

// RiskTolerance captures how much schedule/compliance exposure the operator
// will accept. Higher tolerance trades exposure for a cheaper, faster path.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

type ChecklistStatus string

const (
	ChecklistTodo       ChecklistStatus = "todo"
	ChecklistInProgress ChecklistStatus = "in_progress"
	ChecklistBlocked    ChecklistStatus = "blocked"
	ChecklistDone       ChecklistStatus = "done"
)

type MilestoneStatus string

const (
	MilestonePlanned MilestoneStatus = "planned"
	MilestoneActive  MilestoneStatus = "active"
	MilestoneWaiting MilestoneStatus = "waiting"
	MilestoneDone    MilestoneStatus = "done"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// BusinessProfile is the structured description of the operator's business.
// Fields are filled incrementally by the slot extractor and the location
// lookup, and replaced wholesale when an authoritative pack carries its own
// profile snapshot. CurrencyCode, when set, is an uppercase ISO-style code.
type BusinessProfile struct {
	BusinessName  string        `json:"businessName,omitempty"`
	City          string        `json:"city,omitempty"`
	State         string        `json:"state,omitempty"`
	Country       string        `json:"country,omitempty"`
	CurrencyCode  string        `json:"currencyCode,omitempty"`
	BusinessType  string        `json:"businessType,omitempty"`
	EntityType    string        `json:"entityType,omitempty"`
	Headcount     int           `json:"headcount,omitempty"`
	Budget        float64       `json:"budget,omitempty"`
	LaunchWindow  string        `json:"launchWindow,omitempty"`
	RiskTolerance RiskTolerance `json:"riskTolerance,omitempty"`
}

type CostItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

type Risk struct {
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

type Document struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Notes    string `json:"notes,omitempty"`
}

type Office struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Hours   string `json:"hours,omitempty"`
}

type ChecklistItem struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Agency  string          `json:"agency"`
	DueDate string          `json:"dueDate"`
	Cost    int             `json:"cost"`
	Status  ChecklistStatus `json:"status"`
}

type Milestone struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	TargetDate string          `json:"targetDate"`
	Owner      string          `json:"owner"`
	Status     MilestoneStatus `json:"status"`
}

type Action struct {
	ID       string   `json:"id"`
	Task     string   `json:"task"`
	Owner    string   `json:"owner"`
	Priority Severity `json:"priority"`
	ETA      string   `json:"eta"`
}

// PermitTemplate is a static catalog entry keyed by the normalized
// "city|region|businessType" composite. Template data is immutable at
// runtime; costs are expressed in the USD baseline.
type PermitTemplate struct {
	Key              string
	Summary          string
	KeyPermits       []string
	Agencies         []string
	BaseTimelineDays int
	BaseCost         float64
	CostItems        []CostItem
	Risks            []Risk
	Documents        []Document
	Offices          []Office
	Checklist        []ChecklistItem
	Timeline         []Milestone
	Actions          []Action
}

// PermitPack is the fully derived, currency-localized compliance plan.
// Every monetary figure is expressed in CurrencyCode and TimelineDays is
// never below 14. Packs are replaced, never mutated in place.
type PermitPack struct {
	City            string           `json:"city,omitempty"`
	State           string           `json:"state,omitempty"`
	Country         string           `json:"country,omitempty"`
	BusinessType    string           `json:"businessType,omitempty"`
	CurrencyCode    string           `json:"currencyCode,omitempty"`
	CurrencyLocale  string           `json:"currencyLocale,omitempty"`
	Profile         *BusinessProfile `json:"profile,omitempty"`
	Summary         string           `json:"summary"`
	KeyPermits      []string         `json:"keyPermits"`
	Agencies        []string         `json:"agencies"`
	TimelineDays    int              `json:"timelineDays"`
	EstimatedCost   int              `json:"estimatedCost"`
	PermitChecklist []ChecklistItem  `json:"permitChecklist"`
	Timeline        []Milestone      `json:"timeline"`
	Actions         []Action         `json:"actions"`
	CostItems       []CostItem       `json:"costItems"`
	Risks           []Risk           `json:"risks"`
	Documents       []Document       `json:"documents"`
	Offices         []Office         `json:"offices"`
}

// PackSource records which producer the current pack came from.
type PackSource string

const (
	SourceOptimistic    PackSource = "optimistic"
	SourceAuthoritative PackSource = "authoritative"
)

// Location is the normalized result of the external geocoding lookup.
// Absent fields stay empty; callers keep their existing profile values.
type Location struct {
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	StateCode      string `json:"stateCode,omitempty"`
	Country        string `json:"country,omitempty"`
	CountryCode    string `json:"countryCode,omitempty"`
	CurrencyCode   string `json:"currencyCode,omitempty"`
	CurrencyName   string `json:"currencyName,omitempty"`
	CurrencySymbol string `json:"currencySymbol,omitempty"`
}
