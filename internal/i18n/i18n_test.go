package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "€", Symbol("EUR"))
	assert.Equal(t, "₹", Symbol("inr"))
	assert.Equal(t, "XYZ", Symbol("XYZ"), "unregistered code is shown verbatim")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$310.00", FormatAmount(310, "USD", "en"))
	assert.Equal(t, "€1,234.50", FormatAmount(1234.5, "EUR", "en"))
	assert.Equal(t, "$0.00", FormatAmount(0, "USD", ""))

	got := FormatAmount(12, "XYZ", "en")
	assert.True(t, strings.HasPrefix(got, "XYZ"), "got %q", got)
}

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		lang string
		key  Key
		want string
	}{
		{"en", KeyTotal, "Total"},
		{"es", KeyTotal, "Total"},
		{"es", KeySubtotal, "Subtotal"},
		{"es", KeyTax, "Impuesto"},
		{"es-MX", KeyDiscount, "Descuento"},
		{"de", KeyTotal, "Gesamt"},
		{"", KeyTax, "Tax"},
		{"klingon", KeyTax, "Tax"},
		{"zz", KeyBillTo, "Bill To"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, LabelsFor(tt.lang).Get(tt.key))
		})
	}
}

func TestLabelsUnknownKey(t *testing.T) {
	assert.Equal(t, "mystery", LabelsFor("fr").Get(Key("mystery")))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match(""))
	assert.Equal(t, language.Spanish, Match("es"))
	assert.Equal(t, language.English, Match("not a tag"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/31/2026", FormatDate(d, "en"))
	assert.Equal(t, "31/01/2026", FormatDate(d, "es"))
	assert.Equal(t, "31.01.2026", FormatDate(d, "de"))
	assert.Equal(t, EmptyDate, FormatDate(time.Time{}, "en"))
}

func TestEveryTableHasEveryKey(t *testing.T) {
	for tag, table := range tables {
		for key := range tables[language.English] {
			if _, ok := table[key]; !ok {
				t.Errorf("%s table is missing %q", tag, key)
			}
		}
	}
}
