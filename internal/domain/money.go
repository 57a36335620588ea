// Package domain contains the core business entities and rules for the
// offer normalization engine. These entities are provider-agnostic and form
// the foundation upon which all other components are built.
package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when no preferred currency is configured.
const DefaultCurrency = "USD"

// DefaultLocale is used when no display locale is configured or the
// configured one cannot be parsed.
const DefaultLocale = "en-US"

// Money represents an amount in a specific currency.
// Amounts are kept in decimal currency units (not minor units); rounding to
// two decimal places happens only at format time so that repeated
// conversions never compound rounding error.
type Money struct {
	// Amount is the numeric value in major currency units
	Amount decimal.Decimal `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD", "EUR")
	Currency string `json:"currency"`
}

// priceStringPattern matches strings like "444.94 USD" or "1,250.00 EUR".
var priceStringPattern = regexp.MustCompile(`^([\d,]+\.?\d*)\s+([A-Z]{3})$`)

// currencySymbols maps supported currency codes to their display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"CNY": "¥",
	"ILS": "₪",
}

// exchangeRates is the fixed direct-conversion rate table.
// Only pairs present here can be converted; everything else falls back to
// the original currency unchanged.
var exchangeRates = map[string]map[string]string{
	"USD": {"EUR": "0.92", "GBP": "0.79", "JPY": "150.0", "CAD": "1.35", "AUD": "1.52", "CHF": "0.88", "CNY": "7.23", "ILS": "3.65"},
	"EUR": {"USD": "1.09", "GBP": "0.86", "JPY": "163.0", "CAD": "1.47", "AUD": "1.65", "CHF": "0.96", "CNY": "7.86", "ILS": "3.97"},
	"GBP": {"USD": "1.27", "EUR": "1.16", "JPY": "190.0", "CAD": "1.71", "AUD": "1.92", "CHF": "1.11", "CNY": "9.15", "ILS": "4.62"},
	"JPY": {"USD": "0.0067", "EUR": "0.0061", "GBP": "0.0053", "CAD": "0.009", "AUD": "0.0101", "CHF": "0.0059", "CNY": "0.0482", "ILS": "0.0243"},
	"CAD": {"USD": "0.74", "EUR": "0.68", "GBP": "0.58", "JPY": "111.0", "AUD": "1.13", "CHF": "0.65", "CNY": "5.36", "ILS": "2.7"},
	"AUD": {"USD": "0.66", "EUR": "0.61", "GBP": "0.52", "JPY": "98.7", "CAD": "0.88", "CHF": "0.58", "CNY": "4.76", "ILS": "2.4"},
	"CHF": {"USD": "1.14", "EUR": "1.04", "GBP": "0.9", "JPY": "170.0", "CAD": "1.53", "AUD": "1.73", "CNY": "8.22", "ILS": "4.15"},
	"CNY": {"USD": "0.14", "EUR": "0.13", "GBP": "0.11", "JPY": "20.7", "CAD": "0.19", "AUD": "0.21", "CHF": "0.12", "ILS": "0.5"},
	"ILS": {"USD": "0.27", "EUR": "0.25", "GBP": "0.22", "JPY": "41.1", "CAD": "0.37", "AUD": "0.42", "CHF": "0.24", "CNY": "1.98"},
}

// NewMoney creates a Money value from an amount string (e.g., "444.94")
// and a currency code. Empty or malformed amounts yield ErrUnparseablePrice.
func NewMoney(amount, currency string) (Money, error) {
	amount = strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	if amount == "" || currency == "" {
		return Money{}, ErrUnparseablePrice
	}
	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return Money{}, ErrUnparseablePrice
	}
	return Money{Amount: d, Currency: strings.ToUpper(currency)}, nil
}

// MustMoney is a test helper that panics on malformed input.
func MustMoney(amount, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic("domain: invalid money literal " + amount + " " + currency)
	}
	return m
}

// ParsePrice parses a combined price string of the form
// "<decimal, optional thousands separators> <ISO currency code>",
// e.g. "444.94 USD". Any other shape yields ErrUnparseablePrice; callers
// render that as "Price TBD" rather than treating it as a fault.
func ParsePrice(input string) (Money, error) {
	match := priceStringPattern.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return Money{}, ErrUnparseablePrice
	}
	return NewMoney(match[1], match[2])
}

// Convert converts the amount to the target currency using the fixed rate
// table. Identity conversions return the value unchanged. When no direct
// rate exists, the original currency and amount are returned unchanged;
// the currency tag always reflects what actually happened, so a missing
// rate is never silently displayed as a converted number.
func (m Money) Convert(target string) Money {
	target = strings.ToUpper(target)
	if m.Currency == target {
		return m
	}
	rates, ok := exchangeRates[m.Currency]
	if !ok {
		return m
	}
	rate, ok := rates[target]
	if !ok {
		return m
	}
	return Money{
		Amount:   m.Amount.Mul(decimal.RequireFromString(rate)),
		Currency: target,
	}
}

// ConversionSupported reports whether a direct rate exists between the two
// currencies (identity conversions are always supported).
func ConversionSupported(from, to string) bool {
	if from == to {
		return true
	}
	rates, ok := exchangeRates[from]
	if !ok {
		return false
	}
	_, ok = rates[to]
	return ok
}

// CurrencySymbol returns the display symbol for a currency code, falling
// back to the code itself when unknown.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// Format renders the amount with locale-correct digit grouping and the
// currency's symbol. Unknown currencies render as "<CODE> <amount>";
// unparseable locales fall back to en-US. Rounding to two decimals happens
// here and only here.
func (m Money) Format(locale string) string {
	sym, known := currencySymbols[m.Currency]
	if !known {
		return m.Currency + " " + m.Amount.StringFixed(2)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}

	amount, _ := m.Amount.Round(2).Float64()
	p := message.NewPrinter(tag)
	return sym + p.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Equal reports whether two Money values have the same currency and
// numerically equal amounts.
func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

// String renders the amount in plain "444.94 USD" form.
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}
