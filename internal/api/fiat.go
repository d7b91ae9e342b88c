package api

// fiatSymbols maps currency codes to their display glyph.
var fiatSymbols = map[string]string{
	"KRW": "₩",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CNY": "￥",
	"YEN": "￥",
	"INR": "₹",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
	"RUB": "₽",
	"ILS": "₪",
	"IDR": "Rp",
	"MXN": "Mex$",
	"ZAR": "R",
	"TRY": "₺",
}

// FiatSymbol returns the display symbol for a currency code. Unknown codes
// are returned unchanged. Pure lookup, no network call.
func FiatSymbol(currency string) string {
	if symbol, ok := fiatSymbols[currency]; ok {
		return symbol
	}
	return currency
}
