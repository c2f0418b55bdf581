package extract

import (
	"testing"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

func TestFromTextFoodTruckInAustin(t *testing.T) {
	t.Parallel()

	got := FromText("Open a food truck in Austin with 2 employees.", contractx.BusinessProfile{})

	if got.City == nil || *got.City != "Austin" {
		t.Fatalf("city = %v, want Austin", got.City)
	}
	if got.BusinessType == nil || *got.BusinessType != FoodTruckLabel {
		t.Fatalf("businessType = %v, want %s", got.BusinessType, FoodTruckLabel)
	}
	if got.Budget != nil {
		t.Fatalf("budget = %v, want no update", *got.Budget)
	}
	if got.RiskTolerance != nil {
		t.Fatalf("riskTolerance = %v, want no update", *got.RiskTolerance)
	}
	if got.LaunchWindow != nil {
		t.Fatalf("launchWindow = %v, want no update", *got.LaunchWindow)
	}
}

func TestFromTextBudgetWithKSuffix(t *testing.T) {
	t.Parallel()

	got := FromText("keep costs under $5k", contractx.BusinessProfile{})
	if got.Budget == nil || *got.Budget != 5000 {
		t.Fatalf("budget = %v, want 5000", got.Budget)
	}
	if got.City != nil {
		t.Fatalf("city = %v, want no update", *got.City)
	}
}

func TestFromTextBudgetThousandsSeparators(t *testing.T) {
	t.Parallel()

	got := FromText("keep it below 12,500 total", contractx.BusinessProfile{})
	if got.Budget == nil || *got.Budget != 12500 {
		t.Fatalf("budget = %v, want 12500", got.Budget)
	}
}

func TestFromTextRestaurantWinsOverFoodTruck(t *testing.T) {
	t.Parallel()

	got := FromText("switch the food truck to a brick-and-mortar spot", contractx.BusinessProfile{})
	if got.BusinessType == nil || *got.BusinessType != RestaurantLabel {
		t.Fatalf("businessType = %v, want %s (later rule wins)", got.BusinessType, RestaurantLabel)
	}
}

func TestFromTextUrgencySetsHighTolerance(t *testing.T) {
	t.Parallel()

	got := FromText("show me the fastest path to launch", contractx.BusinessProfile{})
	if got.RiskTolerance == nil || *got.RiskTolerance != contractx.RiskHigh {
		t.Fatalf("riskTolerance = %v, want high", got.RiskTolerance)
	}
}

func TestFromTextLaunchWindowNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"launch in about 45 days", "45 days"},
		{"give me 6 weeks", "6 weeks"},
		{"a 3 month runway", "3 months"},
		{"1 day turnaround", "1 days"},
	}
	for _, tc := range cases {
		got := FromText(tc.text, contractx.BusinessProfile{})
		if got.LaunchWindow == nil || *got.LaunchWindow != tc.want {
			t.Fatalf("FromText(%q).LaunchWindow = %v, want %q", tc.text, got.LaunchWindow, tc.want)
		}
	}
}

func TestFromTextCityRejectsDigits(t *testing.T) {
	t.Parallel()

	got := FromText("open in 90210 please", contractx.BusinessProfile{})
	if got.City != nil {
		t.Fatalf("city = %v, want rejection of digit candidates", *got.City)
	}
}

func TestFromTextCityStopsAtConnectors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"start in san francisco, next month", "San Francisco"},
		{"set up in austin under a tight budget", "Austin"},
		{"launch in new delhi for the festival", "New Delhi"},
	}
	for _, tc := range cases {
		got := FromText(tc.text, contractx.BusinessProfile{})
		if got.City == nil || *got.City != tc.want {
			t.Fatalf("FromText(%q).City = %v, want %q", tc.text, got.City, tc.want)
		}
	}
}

func TestFromTextNoMatchesIsEmpty(t *testing.T) {
	t.Parallel()

	got := FromText("thanks, looks good!", contractx.BusinessProfile{})
	if !got.IsEmpty() {
		t.Fatalf("updates = %+v, want empty", got)
	}
}

func TestApplyMergesOntoProfile(t *testing.T) {
	t.Parallel()

	profile := contractx.BusinessProfile{
		City:         "Austin",
		BusinessType: FoodTruckLabel,
		Budget:       5000,
	}
	got := FromText("make it a restaurant and keep costs under $9k", profile).Apply(profile)
	if got.BusinessType != RestaurantLabel {
		t.Fatalf("businessType = %q, want %s", got.BusinessType, RestaurantLabel)
	}
	if got.Budget != 9000 {
		t.Fatalf("budget = %v, want 9000", got.Budget)
	}
	if got.City != "Austin" {
		t.Fatalf("city = %q, must keep prior value", got.City)
	}
}

func TestLocationQuery(t *testing.T) {
	t.Parallel()

	query, ok := LocationQuery("We want to launch at lake o'hara for the season")
	if !ok {
		t.Fatal("expected a location query")
	}
	if query != "lake o'hara" {
		t.Fatalf("query = %q, want %q", query, "lake o'hara")
	}

	if _, ok := LocationQuery("no location here"); ok {
		t.Fatal("expected no query")
	}
}
