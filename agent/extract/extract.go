// Package extract is a best-effort regex slot filler over operator text.
// Each rule is an independent pure function; rules run in declared order over
// the same lowercased input and later rules overwrite earlier ones when they
// target the same field. A missed rule is not an error, just no update.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

const (
	// Labels assigned by the business-type rules.
	FoodTruckLabel  = "Food Truck"
	RestaurantLabel = "Restaurant"
)

// Updates collects the optional profile-field updates one operator turn
// produced. Nil pointers mean "no update for this field".
type Updates struct {
	City          *string
	BusinessType  *string
	LaunchWindow  *string
	Budget        *float64
	RiskTolerance *contractx.RiskTolerance
}

// IsEmpty reports whether no rule matched.
func (u Updates) IsEmpty() bool {
	return u.City == nil && u.BusinessType == nil && u.LaunchWindow == nil &&
		u.Budget == nil && u.RiskTolerance == nil
}

// Apply merges the updates onto a profile copy.
func (u Updates) Apply(profile contractx.BusinessProfile) contractx.BusinessProfile {
	if u.City != nil {
		profile.City = *u.City
	}
	if u.BusinessType != nil {
		profile.BusinessType = *u.BusinessType
	}
	if u.LaunchWindow != nil {
		profile.LaunchWindow = *u.LaunchWindow
	}
	if u.Budget != nil {
		profile.Budget = *u.Budget
	}
	if u.RiskTolerance != nil {
		profile.RiskTolerance = *u.RiskTolerance
	}
	return profile
}

var (
	cityPattern     = regexp.MustCompile(`\bin\s+([a-z\s]+?)(?:,|\.|with|under|for|$)`)
	digitPattern    = regexp.MustCompile(`\d`)
	durationPattern = regexp.MustCompile(`(\d+)\s*(day|days|week|weeks|month|months)`)
	budgetPattern   = regexp.MustCompile(`(under|below|budget|<=)\s*\$?\s*([\d,.]+)\s*(k)?`)
	queryPattern    = regexp.MustCompile(`\b(?:in|at|near)\s+([a-z\s,.'-]+?)(?:\s+with|\s+under|\s+for|\.|,|$)`)
)

type rule func(lower string, current contractx.BusinessProfile, out *Updates)

// Declared order is the precedence order: the restaurant rule runs after the
// food-truck rule so it wins when a message mentions both.
var rules = []rule{
	cityRule,
	urgencyRule,
	foodTruckRule,
	restaurantRule,
	launchWindowRule,
	budgetRule,
}

// FromText runs every rule over the operator text and merges the results.
func FromText(text string, current contractx.BusinessProfile) Updates {
	lower := strings.ToLower(text)
	var out Updates
	for _, apply := range rules {
		apply(lower, current, &out)
	}
	return out
}

// cityRule lifts "in <words>" into a title-cased city, stopping at
// punctuation or connector words and rejecting candidates with digits.
func cityRule(lower string, _ contractx.BusinessProfile, out *Updates) {
	m := cityPattern.FindStringSubmatch(lower)
	if m == nil {
		return
	}
	candidate := strings.TrimSpace(m[1])
	if candidate == "" || digitPattern.MatchString(candidate) {
		return
	}
	city := titleCase(candidate)
	if city == "" {
		return
	}
	out.City = &city
}

func urgencyRule(lower string, _ contractx.BusinessProfile, out *Updates) {
	if strings.Contains(lower, "fastest") || strings.Contains(lower, "expedite") {
		tolerance := contractx.RiskHigh
		out.RiskTolerance = &tolerance
	}
}

func foodTruckRule(lower string, _ contractx.BusinessProfile, out *Updates) {
	if strings.Contains(lower, "food truck") {
		label := FoodTruckLabel
		out.BusinessType = &label
	}
}

func restaurantRule(lower string, _ contractx.BusinessProfile, out *Updates) {
	if strings.Contains(lower, "brick") || strings.Contains(lower, "restaurant") {
		label := RestaurantLabel
		out.BusinessType = &label
	}
}

func launchWindowRule(lower string, _ contractx.BusinessProfile, out *Updates) {
	m := durationPattern.FindStringSubmatch(lower)
	if m == nil {
		return
	}
	unit := "days"
	switch {
	case strings.HasPrefix(m[2], "week"):
		unit = "weeks"
	case strings.HasPrefix(m[2], "month"):
		unit = "months"
	}
	window := m[1] + " " + unit
	out.LaunchWindow = &window
}

func budgetRule(lower string, current contractx.BusinessProfile, out *Updates) {
	m := budgetPattern.FindStringSubmatch(lower)
	if m == nil {
		return
	}
	raw, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return
	}
	if m[3] != "" {
		raw *= 1000
	}
	if current.CurrencyCode != "" && raw < 0 {
		raw = 0
	}
	out.Budget = &raw
}

// LocationQuery pulls a free-text location phrase for the external lookup.
// Deliberately looser than the city rule: it tolerates commas, periods,
// apostrophes, and hyphens inside the phrase, because the geocoder handles
// messy input better than direct assignment does.
func LocationQuery(text string) (string, bool) {
	m := queryPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", false
	}
	query := strings.TrimSpace(m[1])
	if query == "" {
		return "", false
	}
	return query, true
}

func titleCase(candidate string) string {
	words := strings.Fields(candidate)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
