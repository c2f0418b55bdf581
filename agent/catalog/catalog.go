package catalog

import (
	"fmt"
	"strings"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// Catalog is a keyed library of compliance templates. It is read-only after
// construction; the only generated template (the synthetic fallback) is
// rebuilt on every call, never cached.
type Catalog struct {
	templates []contractx.PermitTemplate
}

// New builds a catalog over an injected template slice. The slice is used
// as-is; callers pass alternate tables in tests.
func New(templates []contractx.PermitTemplate) *Catalog {
	return &Catalog{templates: templates}
}

// Default returns the production catalog.
func Default() *Catalog {
	return New(defaultTemplates())
}

var (
	restaurantKeywords = []string{"restaurant", "brick", "dine", "cafe"}
	foodTruckKeywords  = []string{"food truck", "foodtruck", "mobile"}
)

// Find resolves a template for the normalized city/region/business-type
// triple. Lookup order: exact composite key, restaurant-keyword prefix,
// food-truck-keyword prefix, bare city|region prefix, synthetic generic
// template. Never fails, even on all-empty inputs.
func (c *Catalog) Find(city, region, businessType string) contractx.PermitTemplate {
	composite := strings.ToLower(city + "|" + region + "|" + businessType)
	cityRegion := strings.ToLower(city + "|" + region)
	loweredType := strings.ToLower(businessType)

	if tpl, ok := c.byKey(composite); ok {
		return tpl
	}
	if containsAny(loweredType, restaurantKeywords) {
		if tpl, ok := c.byPrefix(cityRegion + "|restaurant"); ok {
			return tpl
		}
	}
	if containsAny(loweredType, foodTruckKeywords) {
		if tpl, ok := c.byPrefix(cityRegion + "|food truck"); ok {
			return tpl
		}
	}
	if tpl, ok := c.byPrefix(cityRegion); ok {
		return tpl
	}
	return genericTemplate(city, region, businessType)
}

func (c *Catalog) byKey(key string) (contractx.PermitTemplate, bool) {
	for _, tpl := range c.templates {
		if tpl.Key == key {
			return tpl, true
		}
	}
	return contractx.PermitTemplate{}, false
}

func (c *Catalog) byPrefix(prefix string) (contractx.PermitTemplate, bool) {
	for _, tpl := range c.templates {
		if strings.HasPrefix(tpl.Key, prefix) {
			return tpl, true
		}
	}
	return contractx.PermitTemplate{}, false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// genericTemplate synthesizes a deterministic fallback plan for locations and
// business types the catalog does not know. Empty inputs get neutral
// placeholders so synthesis is total.
func genericTemplate(city, region, businessType string) contractx.PermitTemplate {
	safeCity := city
	if safeCity == "" {
		safeCity = "your city"
	}
	safeRegion := region
	if safeRegion == "" {
		safeRegion = "your region"
	}
	safeType := businessType
	if safeType == "" {
		safeType = "business"
	}

	return contractx.PermitTemplate{
		Key: strings.ToLower(safeCity + "|" + safeRegion + "|" + safeType),
		Summary: fmt.Sprintf(
			"%s launches in %s, %s require local health, safety, and municipal approvals before opening.",
			safeType, safeCity, safeRegion,
		),
		KeyPermits: []string{
			"Food Safety License",
			"Local Trade License",
			"Fire Safety Clearance",
			"Tax Registration",
		},
		Agencies: []string{
			safeCity + " Municipal Corporation",
			safeRegion + " Fire Department",
			safeRegion + " Tax Authority",
		},
		BaseTimelineDays: 35,
		BaseCost:         4500,
		CostItems: []contractx.CostItem{
			{Label: "Health / Food Safety License", Amount: 500},
			{Label: "Municipal Trade License", Amount: 350},
			{Label: "Fire Safety Clearance", Amount: 250},
			{Label: "Vehicle / Facility Compliance", Amount: 2200},
			{Label: "Insurance + Misc Fees", Amount: 1200},
		},
		Risks: []contractx.Risk{
			{
				Title:       "Local Permit Lead Times",
				Severity:    contractx.SeverityMedium,
				Description: "Processing time varies by municipality. Start applications early.",
			},
			{
				Title:       "Site / Route Approval",
				Severity:    contractx.SeverityLow,
				Description: "Some cities restrict vending zones or require special permission.",
			},
		},
		Documents: []contractx.Document{
			{Name: "Identity + Address Proof", Required: true},
			{Name: "Menu + Food Safety Plan", Required: true},
			{Name: "Vehicle Registration / Lease", Required: true},
			{Name: "Waste Disposal Plan", Required: false},
		},
		Offices: []contractx.Office{
			{Name: safeCity + " Municipal Corporation", Address: "Municipal office (address TBD)"},
			{Name: safeRegion + " Fire Department", Address: "Fire department office (address TBD)"},
			{Name: safeRegion + " Tax Authority", Address: "Tax office (address TBD)"},
		},
		Checklist: []contractx.ChecklistItem{
			{
				ID:      "GEN-01",
				Title:   "Food Safety License",
				Agency:  safeRegion + " Food Safety Dept",
				DueDate: "Week 2",
				Cost:    500,
				Status:  contractx.ChecklistInProgress,
			},
			{
				ID:      "GEN-02",
				Title:   "Local Trade License",
				Agency:  safeCity + " Municipal Corporation",
				DueDate: "Week 3",
				Cost:    350,
				Status:  contractx.ChecklistTodo,
			},
			{
				ID:      "GEN-03",
				Title:   "Fire Safety Clearance",
				Agency:  safeRegion + " Fire Department",
				DueDate: "Week 4",
				Cost:    250,
				Status:  contractx.ChecklistTodo,
			},
		},
		Timeline: []contractx.Milestone{
			{ID: "M1", Title: "Submit license applications", TargetDate: "Week 1", Owner: "Founder", Status: contractx.MilestoneActive},
			{ID: "M2", Title: "Facility / vehicle inspection", TargetDate: "Week 3", Owner: safeRegion + " Fire Dept", Status: contractx.MilestonePlanned},
			{ID: "M3", Title: "Final approval + launch", TargetDate: "Week 5", Owner: "Municipality", Status: contractx.MilestoneWaiting},
		},
		Actions: []contractx.Action{
			{ID: "A1", Task: "Confirm vending zones and rules", Owner: "Founder", Priority: contractx.SeverityHigh, ETA: "This week"},
			{ID: "A2", Task: "Prepare food safety documents", Owner: "Operations", Priority: contractx.SeverityMedium, ETA: "1 week"},
			{ID: "A3", Task: "Schedule inspection slot", Owner: "Compliance", Priority: contractx.SeverityMedium, ETA: "2 weeks"},
		},
	}
}
