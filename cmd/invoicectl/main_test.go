package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/invoicemaker/internal/models"
)

const sampleInvoice = `number: "2042"
issue_date: 2026-03-01
due_date: none
currency: eur
language: es
from:
  name: Acme
  logo: logo.svg
to:
  name: Globex
items:
  - description: Design
    quantity: 2
    rate: 12.5
  - description: Hosting
    quantity: 3
    rate: 25
  - description: Broken
    quantity: -4
    rate: abc
tax_rate: 10
discount: 5
signature:
  text: Jane Roe
`

const sampleLogo = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.svg"), []byte(sampleLogo), 0o600))
	path := filepath.Join(dir, "invoice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInvoice), 0o600))
	return path
}

func TestLoadInvoice(t *testing.T) {
	now := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)
	inv, err := loadInvoice(writeSample(t), now)
	require.NoError(t, err)

	assert.Equal(t, "2042", inv.InvoiceNumber)
	assert.Equal(t, "EUR", inv.CurrencyCode())
	assert.Equal(t, "es", inv.LanguageCode())
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), inv.IssueDate)
	assert.True(t, inv.DueDate.IsZero())
	assert.Equal(t, models.DefaultThankYouMessage, inv.ThankYouMessage)

	require.Len(t, inv.LineItems, 3)
	assert.Equal(t, models.LineItem{Description: "Design", Quantity: 2, Rate: 12.5}, inv.LineItems[0])
	assert.Equal(t, models.LineItem{Description: "Broken"}, inv.LineItems[2])
	assert.Equal(t, 10.0, inv.TaxRate)
	assert.Equal(t, 5.0, inv.Discount)

	assert.True(t, inv.From.Logo.IsSVG())
	assert.Equal(t, models.TypedSignature{Text: "Jane Roe"}, inv.Signature)
}

func TestLoadInvoiceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	now := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)
	inv, err := loadInvoice(path, now)
	require.NoError(t, err)
	assert.Equal(t, models.NewInvoice(now), inv)
}

func TestLoadInvoiceErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "items: [\n"},
		{"bad date", "issue_date: 01/03/2026\n"},
		{"missing logo", "from:\n  logo: nope.png\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			_, err := loadInvoice(path, time.Now())
			assert.Error(t, err)
		})
	}

	_, err := loadInvoice(filepath.Join(dir, "absent.yaml"), time.Now())
	assert.Error(t, err)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"invoicectl", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestTotalsCommand(t *testing.T) {
	out, err := run(t, "totals", "-f", writeSample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "€25,00")
	assert.Contains(t, out, "Impuesto (10%)")
	// 100 + 10 tax - 5 discount
	assert.Contains(t, out, "€105,00")
}

func TestTotalsCommandJSON(t *testing.T) {
	out, err := run(t, "totals", "-f", writeSample(t), "--json")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"currency": "EUR",
		"line_amounts": [25, 75, 0],
		"subtotal": 100,
		"tax_rate": 10,
		"tax_amount": 10,
		"discount": 5,
		"total": 105
	}`, out)
}

func TestExportCommand(t *testing.T) {
	sample := writeSample(t)
	dir := t.TempDir()

	out, err := run(t, "export", "-f", sample, "--format", "svg", "-o", filepath.Join(dir, "march"))
	require.NoError(t, err)
	path := filepath.Join(dir, "march.svg")
	assert.Equal(t, path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// The SVG logo is the first vector graphic on the page and is exported as is.
	assert.Equal(t, sampleLogo, string(data))

	_, err = run(t, "export", "-f", sample, "--scale", "1", "-o", filepath.Join(dir, "march.pdf"))
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "march.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExportCommandUnknownFormat(t *testing.T) {
	_, err := run(t, "export", "-f", writeSample(t), "--format", "docx")
	assert.Error(t, err)
}
