// market/instruments.go
package market

import "sort"

// InstrumentMeta describes one tradeable symbol in the journal's
// enumerated instrument set.
type InstrumentMeta struct {
	Symbol        string
	BaseCurrency  string
	QuoteCurrency string
}

// Instruments is the fixed set of symbols a trade may reference.
var Instruments = map[string]InstrumentMeta{
	"EUR/USD": {Symbol: "EUR/USD", BaseCurrency: "EUR", QuoteCurrency: "USD"},
	"GBP/USD": {Symbol: "GBP/USD", BaseCurrency: "GBP", QuoteCurrency: "USD"},
	"USD/JPY": {Symbol: "USD/JPY", BaseCurrency: "USD", QuoteCurrency: "JPY"},
	"USD/CHF": {Symbol: "USD/CHF", BaseCurrency: "USD", QuoteCurrency: "CHF"},
	"AUD/USD": {Symbol: "AUD/USD", BaseCurrency: "AUD", QuoteCurrency: "USD"},
	"USD/CAD": {Symbol: "USD/CAD", BaseCurrency: "USD", QuoteCurrency: "CAD"},
	"NZD/USD": {Symbol: "NZD/USD", BaseCurrency: "NZD", QuoteCurrency: "USD"},
	"EUR/GBP": {Symbol: "EUR/GBP", BaseCurrency: "EUR", QuoteCurrency: "GBP"},
	"EUR/JPY": {Symbol: "EUR/JPY", BaseCurrency: "EUR", QuoteCurrency: "JPY"},
	"GBP/JPY": {Symbol: "GBP/JPY", BaseCurrency: "GBP", QuoteCurrency: "JPY"},
	"CHF/JPY": {Symbol: "CHF/JPY", BaseCurrency: "CHF", QuoteCurrency: "JPY"},
	"EUR/CHF": {Symbol: "EUR/CHF", BaseCurrency: "EUR", QuoteCurrency: "CHF"},
	"AUD/JPY": {Symbol: "AUD/JPY", BaseCurrency: "AUD", QuoteCurrency: "JPY"},
	"GBP/CHF": {Symbol: "GBP/CHF", BaseCurrency: "GBP", QuoteCurrency: "CHF"},
	"CAD/JPY": {Symbol: "CAD/JPY", BaseCurrency: "CAD", QuoteCurrency: "JPY"},
	"NZD/JPY": {Symbol: "NZD/JPY", BaseCurrency: "NZD", QuoteCurrency: "JPY"},
	"AUD/CHF": {Symbol: "AUD/CHF", BaseCurrency: "AUD", QuoteCurrency: "CHF"},
	"AUD/CAD": {Symbol: "AUD/CAD", BaseCurrency: "AUD", QuoteCurrency: "CAD"},
	"XAU/USD": {Symbol: "XAU/USD", BaseCurrency: "XAU", QuoteCurrency: "USD"},
}

// Valid reports whether symbol is part of the instrument set.
func Valid(symbol string) bool {
	_, ok := Instruments[symbol]
	return ok
}

// Symbols returns the instrument symbols in lexical order.
func Symbols() []string {
	out := make([]string, 0, len(Instruments))
	for sym := range Instruments {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
