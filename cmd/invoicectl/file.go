package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/invoicemaker/internal/models"
)

// invoiceFile is the YAML layout read by the CLI. Numeric fields are strings
// so they go through the same parse-or-zero normalization as form input.
type invoiceFile struct {
	Number    string `yaml:"number"`
	PONumber  string `yaml:"po_number"`
	IssueDate string `yaml:"issue_date"`
	DueDate   string `yaml:"due_date"`

	From partyFile `yaml:"from"`
	To   partyFile `yaml:"to"`

	Items []itemFile `yaml:"items"`

	TaxRate  string `yaml:"tax_rate"`
	Discount string `yaml:"discount"`
	Currency string `yaml:"currency"`
	Language string `yaml:"language"`

	Signature *signatureFile `yaml:"signature"`

	PaymentMethods string `yaml:"payment_methods"`
	PaymentDue     string `yaml:"payment_due"`
	LatePenalty    string `yaml:"late_penalty"`
	OnlinePayment  string `yaml:"online_payment"`
	Notes          string `yaml:"notes"`
	ThankYou       string `yaml:"thank_you"`
	Slogan         string `yaml:"slogan"`
	Copyright      string `yaml:"copyright"`
}

type partyFile struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	// Logo is a path relative to the invoice file.
	Logo string `yaml:"logo"`
}

type itemFile struct {
	Description string `yaml:"description"`
	Quantity    string `yaml:"quantity"`
	Rate        string `yaml:"rate"`
}

type signatureFile struct {
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

// loadInvoice reads an invoice file. Fields left out keep the defaults of a
// fresh invoice dated now.
func loadInvoice(path string, now time.Time) (models.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to read invoice file: %w", err)
	}
	var f invoiceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.Invoice{}, fmt.Errorf("failed to parse invoice file: %w", err)
	}
	return f.toModel(filepath.Dir(path), now)
}

func (f invoiceFile) toModel(dir string, now time.Time) (models.Invoice, error) {
	inv := models.NewInvoice(now)

	setString(&inv.InvoiceNumber, f.Number)
	inv.PONumber = f.PONumber
	setString(&inv.Currency, f.Currency)
	setString(&inv.Language, f.Language)
	setString(&inv.ThankYouMessage, f.ThankYou)

	var err error
	if inv.IssueDate, err = parseDate(f.IssueDate, inv.IssueDate); err != nil {
		return models.Invoice{}, fmt.Errorf("issue_date: %w", err)
	}
	if inv.DueDate, err = parseDate(f.DueDate, inv.DueDate); err != nil {
		return models.Invoice{}, fmt.Errorf("due_date: %w", err)
	}

	if inv.From, err = f.From.toModel(dir); err != nil {
		return models.Invoice{}, fmt.Errorf("from: %w", err)
	}
	if inv.To, err = f.To.toModel(dir); err != nil {
		return models.Invoice{}, fmt.Errorf("to: %w", err)
	}

	if len(f.Items) > 0 {
		inv.LineItems = make([]models.LineItem, 0, len(f.Items))
		for _, it := range f.Items {
			inv.LineItems = append(inv.LineItems, models.LineItem{
				Description: it.Description,
				Quantity:    models.ParseOrZero(it.Quantity),
				Rate:        models.ParseOrZero(it.Rate),
			})
		}
	}

	inv.TaxRate = models.ParseOrZero(f.TaxRate)
	inv.Discount = models.ParseOrZero(f.Discount)

	if sig := f.Signature; sig != nil {
		switch {
		case sig.Image != "":
			ref, err := readImage(dir, sig.Image)
			if err != nil {
				return models.Invoice{}, fmt.Errorf("signature: %w", err)
			}
			inv.Signature = models.NewImageSignature(ref)
		default:
			inv.Signature = models.NewTypedSignature(sig.Text)
		}
	}

	inv.PaymentMethods = f.PaymentMethods
	inv.PaymentDue = f.PaymentDue
	inv.LatePenalty = f.LatePenalty
	inv.OnlinePayment = f.OnlinePayment
	inv.Notes = f.Notes
	inv.CompanySlogan = f.Slogan
	inv.Copyright = f.Copyright

	return inv.Normalize(), nil
}

func (p partyFile) toModel(dir string) (models.Party, error) {
	party := models.Party{
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
	}
	if p.Logo != "" {
		ref, err := readImage(dir, p.Logo)
		if err != nil {
			return models.Party{}, fmt.Errorf("logo: %w", err)
		}
		party.Logo = ref
	}
	return party, nil
}

func readImage(dir, name string) (models.ImageRef, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return models.ImageFromUpload(data, 0)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// parseDate reads YYYY-MM-DD. "none" clears the date; empty keeps def.
func parseDate(s string, def time.Time) (time.Time, error) {
	switch s = strings.TrimSpace(s); s {
	case "":
		return def, nil
	case "none":
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}
