package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps ISO 4217 codes to display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"NZD": "NZ$",
	"BRL": "R$",
	"MXN": "MX$",
	"KRW": "₩",
	"RUB": "₽",
	"TRY": "₺",
	"NGN": "₦",
	"ZAR": "R",
	"PHP": "₱",
	"ILS": "₪",
	"VND": "₫",
	"THB": "฿",
	"KES": "KSh",
}

// Currencies lists the codes with a registered symbol.
func Currencies() []string {
	codes := make([]string, 0, len(currencySymbols))
	for code := range currencySymbols {
		codes = append(codes, code)
	}
	return codes
}

// Symbol returns the display symbol for a currency code,
// or the code itself when no symbol is registered.
func Symbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return code
}

// FormatNumber formats v for the given language with at least two and at
// most three fraction digits.
func FormatNumber(v float64, lang string) string {
	p := message.NewPrinter(Match(lang))
	return p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(3)))
}

// FormatAmount formats an amount with the currency symbol as prefix.
func FormatAmount(v float64, currency, lang string) string {
	return Symbol(currency) + FormatNumber(v, lang)
}

// EmptyDate is displayed for unset dates.
const EmptyDate = "--"

var dateLayouts = map[language.Tag]string{
	language.English:    "01/02/2006",
	language.Spanish:    "02/01/2006",
	language.French:     "02/01/2006",
	language.German:     "02.01.2006",
	language.Portuguese: "02/01/2006",
}

// FormatDate formats a calendar date for the given language.
func FormatDate(t time.Time, lang string) string {
	if t.IsZero() {
		return EmptyDate
	}
	return t.Format(dateLayouts[Match(lang)])
}
