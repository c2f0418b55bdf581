package currency

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Info pairs a currency code with the locale used to format amounts in it.
type Info struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
}

// Table holds the exchange rates and the region/city sets used to classify a
// location into a currency region. Tables are read-only after construction
// and safe to share across sessions.
type Table struct {
	// RatesFromUSD maps a currency code to its fixed per-USD rate.
	RatesFromUSD map[string]float64
	IndiaRegions map[string]struct{}
	IndiaCities  map[string]struct{}
}

// DefaultTable returns the production rate table. Rates are illustrative
// snapshots, not live quotes.
func DefaultTable() Table {
	return Table{
		RatesFromUSD: map[string]float64{
			"INR": 83,
			"GBP": 0.79,
			"EUR": 0.92,
			"JPY": 155,
		},
		IndiaRegions: toSet(
			"ap", "ar", "as", "br", "cg", "ch", "dh", "dl", "ga", "gj",
			"hp", "hr", "jh", "jk", "ka", "kl", "la", "ld", "mh", "ml",
			"mn", "mp", "mz", "nl", "od", "pb", "py", "rj", "sk", "tg",
			"tn", "tr", "ts", "uk", "up", "wb",
		),
		IndiaCities: toSet(
			"hyderabad", "bengaluru", "bangalore", "mumbai", "delhi",
			"chennai", "pune", "kolkata", "ahmedabad", "jaipur", "surat",
		),
	}
}

func toSet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Resolver classifies locations into currency regions and converts baseline
// amounts using an injected table.
type Resolver struct {
	table Table
}

func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve maps a (country, region, city) triple to a currency and locale.
// The region/city set checks run together with the "india" substring check
// before the generic country-name checks: a region code such as "uk"
// (Uttarakhand) must win over the "uk" country substring.
func (r *Resolver) Resolve(country, region, city string) Info {
	normCountry := normalize(country)
	normRegion := normalize(region)
	normCity := normalize(city)

	if strings.Contains(normCountry, "india") ||
		contains(r.table.IndiaRegions, normRegion) ||
		contains(r.table.IndiaCities, normCity) {
		return Info{Code: "INR", Locale: "en-IN"}
	}
	if strings.Contains(normCountry, "uk") || strings.Contains(normCountry, "united kingdom") {
		return Info{Code: "GBP", Locale: "en-GB"}
	}
	if strings.Contains(normCountry, "japan") {
		return Info{Code: "JPY", Locale: "ja-JP"}
	}
	if strings.Contains(normCountry, "euro") || strings.Contains(normCountry, "europe") {
		return Info{Code: "EUR", Locale: "en-IE"}
	}
	return Info{Code: "USD", Locale: "en-US"}
}

// ConvertFromUSD converts a USD baseline amount into the given currency,
// rounded to whole units. Unknown codes convert 1:1.
func (r *Resolver) ConvertFromUSD(amount float64, code string) int {
	rate, ok := r.table.RatesFromUSD[code]
	if !ok {
		rate = 1
	}
	return int(math.Round(amount * rate))
}

// Format renders an amount with its currency symbol and locale-appropriate
// grouping, zero fraction digits. When the code or locale is not recognized
// it falls back to a fixed symbol plus a comma-grouped numeral; it never
// fails.
func Format(amount int, code, locale string) string {
	unit, uerr := currency.ParseISO(code)
	tag, terr := language.Parse(locale)
	if uerr == nil && terr == nil {
		p := message.NewPrinter(tag)
		return p.Sprintf("%v%v", currency.Symbol(unit), number.Decimal(amount))
	}

	symbol := "$"
	if strings.EqualFold(code, "INR") {
		symbol = "₹"
	}
	return symbol + groupDigits(amount)
}

func groupDigits(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
