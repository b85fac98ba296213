package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	inv := NewInvoice(now)

	assert.Equal(t, "1001", inv.InvoiceNumber)
	assert.Equal(t, []LineItem{{Quantity: 1}}, inv.LineItems)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), inv.IssueDate)
	assert.Equal(t, inv.IssueDate, inv.DueDate)
	assert.Equal(t, DefaultThankYouMessage, inv.ThankYouMessage)
	assert.Nil(t, inv.Signature)
}

func TestApplyDoesNotMutateOriginal(t *testing.T) {
	orig := NewInvoice(time.Now())

	next, err := orig.Apply(
		UpdateLineItem(0, LineItem{Description: "Design", Quantity: 2, Rate: 150}),
		AddLineItem(),
		SetTaxRate(10),
	)
	require.NoError(t, err)

	assert.Len(t, orig.LineItems, 1)
	assert.Equal(t, "", orig.LineItems[0].Description)
	assert.Zero(t, orig.TaxRate)

	assert.Len(t, next.LineItems, 2)
	assert.Equal(t, "Design", next.LineItems[0].Description)
	assert.Equal(t, 10.0, next.TaxRate)
}

func TestApplyFailedEditReturnsOriginal(t *testing.T) {
	orig := NewInvoice(time.Now())

	got, err := orig.Apply(SetTaxRate(5), UpdateLineItem(3, LineItem{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLineItemIndex))
	assert.Zero(t, got.TaxRate)
}

func TestRemoveLineItem(t *testing.T) {
	tests := []struct {
		name    string
		items   []LineItem
		index   int
		want    []LineItem
		wantErr error
	}{
		{
			name:  "removing the only item is a no-op",
			items: []LineItem{{Description: "Only"}},
			index: 0,
			want:  []LineItem{{Description: "Only"}},
		},
		{
			name:  "removes the addressed item",
			items: []LineItem{{Description: "A"}, {Description: "B"}, {Description: "C"}},
			index: 1,
			want:  []LineItem{{Description: "A"}, {Description: "C"}},
		},
		{
			name:    "out of range",
			items:   []LineItem{{Description: "A"}, {Description: "B"}},
			index:   2,
			want:    []LineItem{{Description: "A"}, {Description: "B"}},
			wantErr: ErrLineItemIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Invoice{LineItems: tt.items}
			got, err := inv.Apply(RemoveLineItem(tt.index))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got.LineItems)
			assert.GreaterOrEqual(t, len(got.LineItems), 1)
		})
	}
}

func TestNormalize(t *testing.T) {
	inv := Invoice{
		LineItems: nil,
		TaxRate:   -3,
		Discount:  -1,
	}
	got := inv.Normalize()
	assert.Len(t, got.LineItems, 1)
	assert.Zero(t, got.TaxRate)
	assert.Zero(t, got.Discount)

	inv = Invoice{LineItems: []LineItem{{Quantity: -2, Rate: 4}}}
	got = inv.Normalize()
	assert.Zero(t, got.LineItems[0].Quantity)
	assert.Equal(t, 4.0, got.LineItems[0].Rate)
	assert.Equal(t, -2.0, inv.LineItems[0].Quantity, "normalize must copy")
}

func TestCodesDefault(t *testing.T) {
	assert.Equal(t, "USD", Invoice{}.CurrencyCode())
	assert.Equal(t, "EUR", Invoice{Currency: "eur"}.CurrencyCode())
	assert.Equal(t, "en", Invoice{}.LanguageCode())
	assert.Equal(t, "es", Invoice{Language: "es"}.LanguageCode())
}

func TestParseOrZero(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"12", 12},
		{"12.5kg", 12.5},
		{" 3.25 ", 3.25},
		{"-4", 0},
		{"NaN", 0},
		{"Inf", 0},
		{".5", 0.5},
		{"1e2", 100},
		{"2e", 2},
		{"0x10", 0},
		{"0X1p4", 0},
		{"-0x10", 0},
		{"+0b101", 0},
		{"0o17", 0},
		{"1_000", 1},
		{"+7", 7},
		{strings.Repeat("9", 65), 0},
		{strings.Repeat("9", 20) + strings.Repeat("x", 50), 0},
	}
	for _, tt := range tests {
		name := tt.in
		if len(name) > 16 {
			name = name[:16] + "..."
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrZero(tt.in))
		})
	}
}

func TestSignatureConstructors(t *testing.T) {
	assert.Nil(t, NewTypedSignature("   "))
	assert.Equal(t, TypedSignature{Text: "Jane Doe"}, NewTypedSignature("Jane Doe"))

	long := NewTypedSignature("abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz")
	require.NotNil(t, long)
	assert.Len(t, long.(TypedSignature).Text, 48)

	assert.Nil(t, NewImageSignature(""))
	sig := NewImageSignature(ImageRef("data:image/png;base64,AAAA"))
	require.NotNil(t, sig)
	assert.Equal(t, SignatureImage, sig.Kind())
}
