package geoapify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

const (
	defaultBaseURL      = "https://api.geoapify.com/v1/geocode/search"
	defaultCountriesURL = "https://restcountries.com/v3.1/alpha"
	maxResponseSize     = 1 << 20
)

type Config struct {
	APIKey       string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	BaseURL      string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.geoapify.com/v1/geocode/search"`
	CountriesURL string        `envconfig:"COUNTRIES_URL" split_words:"true" default:"https://restcountries.com/v3.1/alpha"`
	Timeout      time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// ClientOption customizes Client.
type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// Client resolves a free-text place query to a normalized location via the
// Geoapify forward geocoder, then attaches the country's currency from the
// REST Countries API. The currency lookup degrades gracefully: a failure
// there still returns the geocoded location.
type Client struct {
	apiKey       string
	baseURL      string
	countriesURL string
	httpClient   *http.Client
}

var _ contractx.Locator = (*Client)(nil)

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("geoapify api key is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid geoapify base url: %w", err)
	}

	countriesURL := strings.TrimRight(strings.TrimSpace(cfg.CountriesURL), "/")
	if countriesURL == "" {
		countriesURL = defaultCountriesURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		apiKey:       apiKey,
		baseURL:      baseURL,
		countriesURL: countriesURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

func MustNew(cfg Config, opts ...ClientOption) *Client {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

type geocodeResult struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	State        string `json:"state"`
	StateCode    string `json:"state_code"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type countryRecord struct {
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
}

// Resolve geocodes the query and returns the best match. A query with no
// match yields ErrLookupFailed so callers can keep their current profile.
func (c *Client) Resolve(ctx context.Context, query string) (*contractx.Location, error) {
	text := strings.TrimSpace(query)
	if text == "" {
		return nil, fmt.Errorf("%w: empty location query", contractx.ErrLookupFailed)
	}

	params := url.Values{}
	params.Set("text", text)
	params.Set("format", "json")
	params.Set("limit", "3")
	params.Set("apiKey", c.apiKey)

	var decoded geocodeResponse
	if err := c.getJSON(ctx, c.baseURL+"?"+params.Encode(), &decoded); err != nil {
		return nil, fmt.Errorf("%w: geocode %q: %v", contractx.ErrLookupFailed, text, err)
	}
	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("%w: no match for %q", contractx.ErrLookupFailed, text)
	}

	best := decoded.Results[0]
	loc := &contractx.Location{
		City:        firstNonEmpty(best.City, best.Town, best.Village, best.Municipality, best.County),
		State:       firstNonEmpty(best.StateCode, best.State, best.County),
		StateCode:   best.StateCode,
		Country:     best.Country,
		CountryCode: strings.ToUpper(best.CountryCode),
	}

	if loc.CountryCode != "" {
		c.attachCurrency(ctx, loc)
	}
	return loc, nil
}

func (c *Client) attachCurrency(ctx context.Context, loc *contractx.Location) {
	endpoint := fmt.Sprintf("%s/%s?fields=currencies,cca2,cca3", c.countriesURL, url.PathEscape(loc.CountryCode))

	var records []countryRecord
	if err := c.getJSON(ctx, endpoint, &records); err != nil {
		return
	}
	if len(records) == 0 || len(records[0].Currencies) == 0 {
		return
	}

	for code, meta := range records[0].Currencies {
		loc.CurrencyCode = code
		loc.CurrencyName = meta.Name
		loc.CurrencySymbol = meta.Symbol
		break
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("http status=%d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
