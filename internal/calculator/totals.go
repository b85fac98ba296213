// Package calculator derives the monetary totals of an invoice.
// All functions are pure; callers normalize input (see models.ParseOrZero).
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/invoicemaker/internal/models"
)

// Totals holds the derived amounts of an invoice.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// ComputeLineAmount returns quantity × rate at full precision.
func ComputeLineAmount(item models.LineItem) float64 {
	return item.Quantity * item.Rate
}

// ComputeTotals derives subtotal, tax and total from the line items,
// tax rate and discount of inv.
//
//	subtotal = Σ quantity × rate
//	tax      = round2(subtotal × taxRate / 100)
//	total    = max(0, subtotal + tax − discount)
//
// Only the tax amount is rounded; subtotal and total keep full precision
// until display.
func ComputeTotals(inv models.Invoice) Totals {
	var subtotal float64
	for _, item := range inv.LineItems {
		subtotal += ComputeLineAmount(item)
	}

	tax := round2(subtotal * inv.TaxRate / 100)

	total := subtotal + tax - inv.Discount
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     total,
	}
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
