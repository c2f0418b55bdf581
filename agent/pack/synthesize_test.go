package pack

import (
	"reflect"
	"testing"

	catalogx "github.com/permitpilot/permitpilot/agent/catalog"
	contractx "github.com/permitpilot/permitpilot/agent/contract"
	currencyx "github.com/permitpilot/permitpilot/agent/currency"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(catalogx.Default(), currencyx.NewResolver(currencyx.DefaultTable()))
}

func austinProfile() contractx.BusinessProfile {
	return contractx.BusinessProfile{
		City:          "Austin",
		State:         "TX",
		BusinessType:  "Food Truck",
		RiskTolerance: contractx.RiskMedium,
		Budget:        5000,
	}
}

func TestSynthesizeRequiresCityAndBusinessType(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	for _, profile := range []contractx.BusinessProfile{
		{},
		{City: "Austin"},
		{BusinessType: "Food Truck"},
	} {
		if _, err := s.Synthesize(profile); err != contractx.ErrIncompleteProfile {
			t.Fatalf("Synthesize(%+v) err = %v, want ErrIncompleteProfile", profile, err)
		}
	}
}

func TestSynthesizeAustinFoodTruckMedium(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	pk, err := s.Synthesize(austinProfile())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if pk.EstimatedCost != 4200 {
		t.Fatalf("estimatedCost = %d, want 4200", pk.EstimatedCost)
	}
	if pk.TimelineDays != 32 {
		t.Fatalf("timelineDays = %d, want 32", pk.TimelineDays)
	}
	if pk.CurrencyCode != "USD" || pk.CurrencyLocale != "en-US" {
		t.Fatalf("currency = %s/%s, want USD/en-US", pk.CurrencyCode, pk.CurrencyLocale)
	}
	for _, risk := range pk.Risks {
		if risk.Title == "Budget Gap" {
			t.Fatal("budget 5000 covers the 4200 estimate; no Budget Gap risk expected")
		}
	}
	if pk.Profile == nil || pk.Profile.CurrencyCode != "USD" || pk.Profile.State != "TX" {
		t.Fatalf("profile snapshot = %+v, want normalized state and currency", pk.Profile)
	}
}

func TestSynthesizeBudgetGapRisk(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	profile := austinProfile()
	profile.Budget = 1000

	pk, err := s.Synthesize(profile)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	var gap *contractx.Risk
	for i := range pk.Risks {
		if pk.Risks[i].Title == "Budget Gap" {
			gap = &pk.Risks[i]
		}
	}
	if gap == nil {
		t.Fatal("expected a Budget Gap risk for budget 1000 < estimate 4200")
	}
	if gap.Severity != contractx.SeverityHigh {
		t.Fatalf("Budget Gap severity = %s, want high", gap.Severity)
	}
}

func TestSynthesizeZeroBudgetNeverFlagsGap(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	profile := austinProfile()
	profile.Budget = 0

	pk, err := s.Synthesize(profile)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	for _, risk := range pk.Risks {
		if risk.Title == "Budget Gap" {
			t.Fatal("unknown budget (0) must not synthesize a Budget Gap risk")
		}
	}
}

func TestSynthesizeRiskToleranceMonotonicity(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	costs := map[contractx.RiskTolerance]int{}
	days := map[contractx.RiskTolerance]int{}
	for _, tol := range []contractx.RiskTolerance{contractx.RiskLow, contractx.RiskMedium, contractx.RiskHigh} {
		profile := austinProfile()
		profile.RiskTolerance = tol
		pk, err := s.Synthesize(profile)
		if err != nil {
			t.Fatalf("Synthesize(%s) error = %v", tol, err)
		}
		costs[tol] = pk.EstimatedCost
		days[tol] = pk.TimelineDays
	}

	if !(costs[contractx.RiskLow] > costs[contractx.RiskMedium] && costs[contractx.RiskMedium] > costs[contractx.RiskHigh]) {
		t.Fatalf("estimatedCost must strictly decrease low>medium>high, got %v", costs)
	}
	if days[contractx.RiskLow] < days[contractx.RiskMedium] || days[contractx.RiskMedium] < days[contractx.RiskHigh] {
		t.Fatalf("timelineDays must not increase with tolerance, got %v", days)
	}
}

func TestSynthesizeTimelineFloor(t *testing.T) {
	t.Parallel()

	tpl := contractx.PermitTemplate{
		Key:              "tiny|zz|kiosk",
		KeyPermits:       []string{"Kiosk Permit"},
		BaseTimelineDays: 15,
		BaseCost:         100,
	}
	s := NewSynthesizer(catalogx.New([]contractx.PermitTemplate{tpl}), currencyx.NewResolver(currencyx.DefaultTable()))

	pk, err := s.Synthesize(contractx.BusinessProfile{
		City:          "Tiny",
		State:         "ZZ",
		BusinessType:  "Kiosk",
		RiskTolerance: contractx.RiskHigh,
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if pk.TimelineDays != 14 {
		t.Fatalf("timelineDays = %d, want floor of 14", pk.TimelineDays)
	}
}

func TestSynthesizeCostsNeverNegative(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	for _, tol := range []contractx.RiskTolerance{contractx.RiskLow, contractx.RiskMedium, contractx.RiskHigh} {
		profile := austinProfile()
		profile.RiskTolerance = tol
		pk, err := s.Synthesize(profile)
		if err != nil {
			t.Fatalf("Synthesize(%s) error = %v", tol, err)
		}
		if pk.EstimatedCost < 0 {
			t.Fatalf("estimatedCost = %d, want >= 0", pk.EstimatedCost)
		}
		for _, item := range pk.CostItems {
			if item.Amount < 0 {
				t.Fatalf("cost item %q = %d, want >= 0", item.Label, item.Amount)
			}
		}
		for _, item := range pk.PermitChecklist {
			if item.Cost < 0 {
				t.Fatalf("checklist item %q = %d, want >= 0", item.Title, item.Cost)
			}
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	first, err := s.Synthesize(austinProfile())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	second, err := s.Synthesize(austinProfile())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical profiles must yield identical packs")
	}
}

func TestSynthesizeLocationCurrencyBeatsExplicitCode(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()

	// Resolved non-USD currency wins over the explicit profile code.
	profile := contractx.BusinessProfile{
		City:         "Mumbai",
		Country:      "India",
		BusinessType: "Food Truck",
		CurrencyCode: "USD",
	}
	pk, err := s.Synthesize(profile)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if pk.CurrencyCode != "INR" {
		t.Fatalf("currencyCode = %s, want resolved INR over explicit USD", pk.CurrencyCode)
	}

	// When resolution falls back to USD, the explicit code applies.
	profile = austinProfile()
	profile.CurrencyCode = "cad"
	pk, err = s.Synthesize(profile)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if pk.CurrencyCode != "CAD" {
		t.Fatalf("currencyCode = %s, want explicit CAD when resolution is baseline", pk.CurrencyCode)
	}
}

func TestSynthesizeRegionFallsBackToCountry(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	pk, err := s.Synthesize(contractx.BusinessProfile{
		City:         "Lisbon",
		Country:      "Portugal",
		BusinessType: "Cafe",
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if pk.State != "Portugal" {
		t.Fatalf("region = %q, want country fallback Portugal", pk.State)
	}

	pk, err = s.Synthesize(contractx.BusinessProfile{City: "Lisbon", BusinessType: "Cafe"})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if pk.State != "Region" {
		t.Fatalf("region = %q, want neutral placeholder", pk.State)
	}
}

func TestSynthesizeConvertsAndScalesCosts(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	profile := contractx.BusinessProfile{
		City:          "Mumbai",
		State:         "MH",
		Country:       "India",
		BusinessType:  "Food Truck",
		RiskTolerance: contractx.RiskMedium,
	}
	pk, err := s.Synthesize(profile)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	// Generic template baseline 4500 USD at the 83 INR rate, multiplier 1.
	if pk.EstimatedCost != 4500*83 {
		t.Fatalf("estimatedCost = %d, want %d", pk.EstimatedCost, 4500*83)
	}
	if pk.CostItems[0].Amount != 500*83 {
		t.Fatalf("first cost item = %d, want %d", pk.CostItems[0].Amount, 500*83)
	}
}
