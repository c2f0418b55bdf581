package geoapify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

func TestClientResolve(t *testing.T) {
	t.Parallel()

	countries := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/IN" {
			t.Errorf("countries path = %q, want /IN", r.URL.Path)
		}
		fmt.Fprint(w, `[{"currencies":{"INR":{"name":"Indian rupee","symbol":"₹"}}}]`)
	}))
	t.Cleanup(countries.Close)

	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("text"); got != "Mumbai" {
			t.Errorf("text = %q, want %q", got, "Mumbai")
		}
		if got := r.URL.Query().Get("apiKey"); got != "key-1" {
			t.Errorf("apiKey = %q, want %q", got, "key-1")
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("limit = %q, want %q", got, "3")
		}
		fmt.Fprint(w, `{"results":[{"city":"Mumbai","state":"Maharashtra","state_code":"MH","country":"India","country_code":"in"}]}`)
	}))
	t.Cleanup(geocode.Close)

	client, err := NewClient(Config{
		APIKey:       "key-1",
		BaseURL:      geocode.URL,
		CountriesURL: countries.URL,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	loc, err := client.Resolve(context.Background(), "Mumbai")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := &contractx.Location{
		City:           "Mumbai",
		State:          "MH",
		StateCode:      "MH",
		Country:        "India",
		CountryCode:    "IN",
		CurrencyCode:   "INR",
		CurrencyName:   "Indian rupee",
		CurrencySymbol: "₹",
	}
	if *loc != *want {
		t.Fatalf("Resolve() = %+v, want %+v", loc, want)
	}
}

func TestClientResolveCityFallback(t *testing.T) {
	t.Parallel()

	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"village":"Smallville","state":"Kansas","country":"United States","country_code":"us"}]}`)
	}))
	t.Cleanup(geocode.Close)

	countries := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"currencies":{"USD":{"name":"United States dollar","symbol":"$"}}}]`)
	}))
	t.Cleanup(countries.Close)

	client, err := NewClient(Config{APIKey: "k", BaseURL: geocode.URL, CountriesURL: countries.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	loc, err := client.Resolve(context.Background(), "somewhere in kansas")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if loc.City != "Smallville" {
		t.Fatalf("City = %q, want Smallville", loc.City)
	}
	if loc.State != "Kansas" {
		t.Fatalf("State = %q, want Kansas", loc.State)
	}
}

func TestClientResolveCurrencyLookupDegrades(t *testing.T) {
	t.Parallel()

	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"city":"Lisbon","state":"Lisboa","country":"Portugal","country_code":"pt"}]}`)
	}))
	t.Cleanup(geocode.Close)

	countries := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(countries.Close)

	client, err := NewClient(Config{APIKey: "k", BaseURL: geocode.URL, CountriesURL: countries.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	loc, err := client.Resolve(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if loc.City != "Lisbon" || loc.CountryCode != "PT" {
		t.Fatalf("Resolve() = %+v", loc)
	}
	if loc.CurrencyCode != "" {
		t.Fatalf("CurrencyCode = %q, want empty when lookup fails", loc.CurrencyCode)
	}
}

func TestClientResolveNoMatch(t *testing.T) {
	t.Parallel()

	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	t.Cleanup(geocode.Close)

	client, err := NewClient(Config{APIKey: "k", BaseURL: geocode.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Resolve(context.Background(), "nowhere at all")
	if !errors.Is(err, contractx.ErrLookupFailed) {
		t.Fatalf("Resolve() error = %v, want ErrLookupFailed", err)
	}
}

func TestClientResolveEmptyQuery(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Resolve(context.Background(), "   ")
	if !errors.Is(err, contractx.ErrLookupFailed) {
		t.Fatalf("Resolve() error = %v, want ErrLookupFailed", err)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("NewClient() with empty api key succeeded, want error")
	}
}
