package pack

import (
	"fmt"
	"math"
	"strings"

	catalogx "github.com/permitpilot/permitpilot/agent/catalog"
	contractx "github.com/permitpilot/permitpilot/agent/contract"
	currencyx "github.com/permitpilot/permitpilot/agent/currency"
)

const minTimelineDays = 14

// Synthesizer derives permit packs from business profiles using an injected
// catalog and currency resolver. Both collaborators are immutable, so
// Synthesize is pure: identical profiles always yield identical packs.
type Synthesizer struct {
	catalog  *catalogx.Catalog
	currency *currencyx.Resolver
}

func NewSynthesizer(catalog *catalogx.Catalog, resolver *currencyx.Resolver) *Synthesizer {
	return &Synthesizer{catalog: catalog, currency: resolver}
}

var _ contractx.Synthesizer = (*Synthesizer)(nil)

// Synthesize builds the optimistic pack for a profile. It fails with
// ErrIncompleteProfile until the profile carries at least a city and a
// business type.
func (s *Synthesizer) Synthesize(profile contractx.BusinessProfile) (*contractx.PermitPack, error) {
	if profile.City == "" || profile.BusinessType == "" {
		return nil, contractx.ErrIncompleteProfile
	}

	region := profile.State
	if region == "" {
		region = profile.Country
	}
	if region == "" {
		region = "Region"
	}

	located := s.currency.Resolve(profile.Country, region, profile.City)
	// A non-baseline resolved currency always wins over an explicit profile
	// currency; the explicit code only applies when resolution fell back to
	// USD. Asymmetric on purpose, inherited behavior.
	currencyCode := located.Code
	if located.Code == "USD" && profile.CurrencyCode != "" {
		currencyCode = strings.ToUpper(profile.CurrencyCode)
	}

	tolerance := profile.RiskTolerance
	if tolerance == "" {
		tolerance = contractx.RiskMedium
	}
	multiplier, timelineShift := riskAdjustment(tolerance)

	template := s.catalog.Find(profile.City, region, profile.BusinessType)

	baseCost := s.currency.ConvertFromUSD(template.BaseCost, currencyCode)
	estimatedCost := int(math.Round(float64(baseCost) * multiplier))
	costRatio := 1.0
	if baseCost > 0 {
		costRatio = float64(estimatedCost) / float64(baseCost)
	}
	timelineDays := template.BaseTimelineDays + timelineShift
	if timelineDays < minTimelineDays {
		timelineDays = minTimelineDays
	}

	costItems := make([]contractx.CostItem, len(template.CostItems))
	for i, item := range template.CostItems {
		item.Amount = s.scaledAmount(float64(item.Amount), currencyCode, costRatio)
		costItems[i] = item
	}
	checklist := make([]contractx.ChecklistItem, len(template.Checklist))
	for i, item := range template.Checklist {
		item.Cost = s.scaledAmount(float64(item.Cost), currencyCode, costRatio)
		checklist[i] = item
	}

	risks := append([]contractx.Risk(nil), template.Risks...)
	if profile.Budget > 0 && profile.Budget < float64(estimatedCost) {
		risks = append(risks, contractx.Risk{
			Title:    "Budget Gap",
			Severity: contractx.SeverityHigh,
			Description: "Current budget is below expected compliance costs. " +
				"Adjust scope or secure more funding.",
		})
	}

	snapshot := profile
	snapshot.State = region
	snapshot.CurrencyCode = currencyCode

	return &contractx.PermitPack{
		City:           profile.City,
		State:          region,
		Country:        profile.Country,
		BusinessType:   profile.BusinessType,
		CurrencyCode:   currencyCode,
		CurrencyLocale: located.Locale,
		Profile:        &snapshot,
		Summary: fmt.Sprintf(
			"%s launch in %s, %s requires %d core permits with an estimated %d-day timeline.",
			profile.BusinessType, profile.City, region, len(template.KeyPermits), timelineDays,
		),
		KeyPermits:      template.KeyPermits,
		Agencies:        template.Agencies,
		TimelineDays:    timelineDays,
		EstimatedCost:   estimatedCost,
		PermitChecklist: checklist,
		Timeline:        template.Timeline,
		Actions:         template.Actions,
		CostItems:       costItems,
		Risks:           risks,
		Documents:       template.Documents,
		Offices:         template.Offices,
	}, nil
}

func (s *Synthesizer) scaledAmount(usd float64, currencyCode string, ratio float64) int {
	scaled := int(math.Round(float64(s.currency.ConvertFromUSD(usd, currencyCode)) * ratio))
	if scaled < 0 {
		return 0
	}
	return scaled
}

// riskAdjustment inverts cost against tolerance: operators who accept more
// exposure get the cheaper, faster path.
func riskAdjustment(tolerance contractx.RiskTolerance) (multiplier float64, timelineShift int) {
	switch tolerance {
	case contractx.RiskHigh:
		return 0.9, -7
	case contractx.RiskLow:
		return 1.15, 7
	default:
		return 1.0, 0
	}
}
