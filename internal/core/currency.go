package core

// Currency is an immutable display-currency value. Code is unique within
// the catalog. Changing the active currency affects rendering only; it
// never rewrites the code stored on past records.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DefaultCurrency is the hard-coded fallback applied when no persisted
// settings exist.
var DefaultCurrency = Currency{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"}

// Currencies is the fixed catalog of selectable display currencies.
// Symbols and names come from locale-aware currency formatting, resolved
// once and inlined as data.
var Currencies = []Currency{
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{Code: "GHS", Symbol: "GH₵", Name: "Ghanaian Cedi"},
	{Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
}

// FindCurrency looks a currency up by catalog code.
func FindCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
