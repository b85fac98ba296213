package preview

import (
	"fmt"
	"strconv"

	"github.com/mmynk/invoicemaker/internal/calculator"
	"github.com/mmynk/invoicemaker/internal/i18n"
	"github.com/mmynk/invoicemaker/internal/models"
)

// view is the display-ready form of an invoice shared by the HTML template
// and the raster layout.
type view struct {
	Lang string

	Title     string
	Number    string
	PO        string
	IssueLine string
	DueLine   string
	Logo      models.ImageRef
	NoLogo    string

	FromLabel   string
	From        partyView
	BillToLabel string
	To          partyView

	HeadDescription string
	HeadQuantity    string
	HeadRate        string
	HeadAmount      string
	Rows            []rowView
	NoItems         string
	Totals          []totalView

	PaymentDueLabel     string
	PaymentDue          string
	PaymentMethodsLabel string
	PaymentMethods      string
	LatePenaltyLabel    string
	LatePenalty         string
	PayOnlineLabel      string
	OnlinePayment       string

	NotesLabel string
	Notes      string

	SignatureLabel string
	SignatureText  string
	SignatureImage models.ImageRef

	ThankYou  string
	Slogan    string
	Copyright string
}

type partyView struct {
	Name  string
	Lines []string
}

type rowView struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

type totalView struct {
	Label    string
	Value    string
	Emphasis bool
}

const placeholder = "--"

func newView(inv models.Invoice, totals calculator.Totals) view {
	lang := inv.LanguageCode()
	cur := inv.CurrencyCode()
	labels := i18n.LabelsFor(lang)
	money := func(v float64) string { return i18n.FormatAmount(v, cur, lang) }

	number := inv.InvoiceNumber
	if number == "" {
		number = "0001"
	}

	v := view{
		Lang:      labels.Language().String(),
		Title:     labels.Get(i18n.KeyInvoice),
		Number:    "#" + number,
		IssueLine: labels.Get(i18n.KeyIssueDate) + ": " + i18n.FormatDate(inv.IssueDate, lang),
		DueLine:   labels.Get(i18n.KeyDueDate) + ": " + i18n.FormatDate(inv.DueDate, lang),
		Logo:      inv.From.Logo,
		NoLogo:    labels.Get(i18n.KeyNoLogo),

		FromLabel:   labels.Get(i18n.KeyFrom),
		From:        newPartyView(inv.From),
		BillToLabel: labels.Get(i18n.KeyBillTo),
		To:          newPartyView(inv.To),

		HeadDescription: labels.Get(i18n.KeyDescription),
		HeadQuantity:    labels.Get(i18n.KeyQuantity),
		HeadRate:        labels.Get(i18n.KeyRate),
		HeadAmount:      labels.Get(i18n.KeyAmount),
		NoItems:         labels.Get(i18n.KeyNoItems),

		PaymentDueLabel:     labels.Get(i18n.KeyPaymentDue),
		PaymentDue:          inv.PaymentDue,
		PaymentMethodsLabel: labels.Get(i18n.KeyPaymentMethods),
		PaymentMethods:      inv.PaymentMethods,
		LatePenaltyLabel:    labels.Get(i18n.KeyLatePenalty),
		LatePenalty:         inv.LatePenalty,
		PayOnlineLabel:      labels.Get(i18n.KeyPayOnline),
		OnlinePayment:       inv.OnlinePayment,

		NotesLabel: labels.Get(i18n.KeyNotes),
		Notes:      inv.Notes,

		SignatureLabel: labels.Get(i18n.KeySignature),

		ThankYou:  inv.ThankYouMessage,
		Slogan:    inv.CompanySlogan,
		Copyright: inv.Copyright,
	}
	if inv.PONumber != "" {
		v.PO = labels.Get(i18n.KeyPONumber) + ": " + inv.PONumber
	}

	for _, item := range inv.LineItems {
		v.Rows = append(v.Rows, rowView{
			Description: item.Description,
			Quantity:    strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			Rate:        money(item.Rate),
			Amount:      money(calculator.ComputeLineAmount(item)),
		})
	}

	v.Totals = []totalView{
		{Label: labels.Get(i18n.KeySubtotal), Value: money(totals.Subtotal)},
		{Label: fmt.Sprintf("%s (%s%%)", labels.Get(i18n.KeyTax), strconv.FormatFloat(inv.TaxRate, 'f', -1, 64)), Value: money(totals.TaxAmount)},
		{Label: labels.Get(i18n.KeyDiscount), Value: "-" + money(inv.Discount)},
		{Label: labels.Get(i18n.KeyTotal), Value: money(totals.Total), Emphasis: true},
	}

	switch sig := inv.Signature.(type) {
	case models.TypedSignature:
		v.SignatureText = sig.Text
	case models.ImageSignature:
		v.SignatureImage = sig.Data
	}

	return v
}

func newPartyView(p models.Party) partyView {
	pv := partyView{Name: p.Name}
	if pv.Name == "" {
		pv.Name = placeholder
	}
	for _, line := range []string{p.Address, p.Phone, p.Email} {
		if line != "" {
			pv.Lines = append(pv.Lines, line)
		}
	}
	return pv
}

// HasSignature reports whether the invoice carries a signature.
func (v view) HasSignature() bool {
	return v.SignatureText != "" || !v.SignatureImage.IsZero()
}
