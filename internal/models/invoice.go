package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultCurrency is used when an invoice has no currency set.
	DefaultCurrency = "USD"

	// DefaultLanguage is used when an invoice has no language set.
	DefaultLanguage = "en"

	// DefaultThankYouMessage is the footer text of a fresh invoice.
	DefaultThankYouMessage = "Thank you for your business!"

	defaultInvoiceNumber = "1001"
)

// ErrLineItemIndex is returned when an edit addresses a line item that does not exist.
var ErrLineItemIndex = errors.New("line item index out of range")

// Invoice is the canonical invoice document.
// It is replaced wholesale on every edit, see Apply.
type Invoice struct {
	InvoiceNumber string
	PONumber      string

	// IssueDate and DueDate are optional; the zero time means unset.
	// No ordering between them is enforced.
	IssueDate time.Time
	DueDate   time.Time

	From Party
	To   Party

	// LineItems is never empty.
	LineItems []LineItem

	// TaxRate is a percentage.
	TaxRate float64

	// Discount is an absolute amount in the invoice currency.
	Discount float64

	Currency string
	Language string

	// Signature is nil when the invoice is unsigned.
	Signature Signature

	PaymentMethods  string
	PaymentDue      string
	LatePenalty     string
	OnlinePayment   string
	Notes           string
	ThankYouMessage string
	CompanySlogan   string
	Copyright       string
}

// Party is either side of an invoice.
type Party struct {
	// Name is the company name for the issuer and the client name for the recipient.
	Name    string
	Address string
	Phone   string
	Email   string

	// Logo is only rendered for the issuing party.
	Logo ImageRef
}

// LineItem is one billable row.
type LineItem struct {
	Description string
	Quantity    float64
	Rate        float64
}

// NewLineItem returns the row appended by AddLineItem.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// NewInvoice returns the skeleton a session starts with: one empty line item,
// both dates set to today and empty parties.
func NewInvoice(now time.Time) Invoice {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Invoice{
		InvoiceNumber:   defaultInvoiceNumber,
		IssueDate:       today,
		DueDate:         today,
		LineItems:       []LineItem{NewLineItem()},
		Currency:        DefaultCurrency,
		Language:        DefaultLanguage,
		ThankYouMessage: DefaultThankYouMessage,
	}
}

// CurrencyCode returns the invoice currency, defaulting to USD.
func (inv Invoice) CurrencyCode() string {
	if c := strings.TrimSpace(inv.Currency); c != "" {
		return strings.ToUpper(c)
	}
	return DefaultCurrency
}

// LanguageCode returns the invoice language, defaulting to "en".
func (inv Invoice) LanguageCode() string {
	if l := strings.TrimSpace(inv.Language); l != "" {
		return l
	}
	return DefaultLanguage
}

// Clone returns a deep copy of the invoice.
func (inv Invoice) Clone() Invoice {
	inv.LineItems = slices.Clone(inv.LineItems)
	return inv
}

// Normalize returns a copy that satisfies the document invariants:
// at least one line item, and no negative or non-finite amounts.
func (inv Invoice) Normalize() Invoice {
	out := inv.Clone()
	if len(out.LineItems) == 0 {
		out.LineItems = []LineItem{NewLineItem()}
	}
	for i := range out.LineItems {
		out.LineItems[i].Quantity = NonNegative(out.LineItems[i].Quantity)
		out.LineItems[i].Rate = NonNegative(out.LineItems[i].Rate)
	}
	out.TaxRate = NonNegative(out.TaxRate)
	out.Discount = NonNegative(out.Discount)
	return out
}

// Edit changes a working copy of an invoice. Edits only ever see a copy.
type Edit func(*Invoice) error

// Apply runs the edits on a deep copy of inv and returns the copy.
// If any edit fails, inv is returned unchanged together with the error.
func (inv Invoice) Apply(edits ...Edit) (Invoice, error) {
	next := inv.Clone()
	for _, edit := range edits {
		if err := edit(&next); err != nil {
			return inv, err
		}
	}
	return next, nil
}

// AddLineItem appends an empty row.
func AddLineItem() Edit {
	return func(inv *Invoice) error {
		inv.LineItems = append(inv.LineItems, NewLineItem())
		return nil
	}
}

// UpdateLineItem replaces the row at index.
func UpdateLineItem(index int, item LineItem) Edit {
	return func(inv *Invoice) error {
		if index < 0 || index >= len(inv.LineItems) {
			return fmt.Errorf("update item %d of %d: %w", index, len(inv.LineItems), ErrLineItemIndex)
		}
		item.Quantity = NonNegative(item.Quantity)
		item.Rate = NonNegative(item.Rate)
		inv.LineItems[index] = item
		return nil
	}
}

// RemoveLineItem deletes the row at index. Removing the only row is a no-op.
func RemoveLineItem(index int) Edit {
	return func(inv *Invoice) error {
		if index < 0 || index >= len(inv.LineItems) {
			return fmt.Errorf("remove item %d of %d: %w", index, len(inv.LineItems), ErrLineItemIndex)
		}
		if len(inv.LineItems) == 1 {
			return nil
		}
		inv.LineItems = slices.Delete(inv.LineItems, index, index+1)
		return nil
	}
}

// SetTaxRate sets the tax percentage, clamping negatives to zero.
func SetTaxRate(rate float64) Edit {
	return func(inv *Invoice) error {
		inv.TaxRate = NonNegative(rate)
		return nil
	}
}

// SetDiscount sets the absolute discount, clamping negatives to zero.
func SetDiscount(amount float64) Edit {
	return func(inv *Invoice) error {
		inv.Discount = NonNegative(amount)
		return nil
	}
}

// SetLogo sets or clears (empty ref) the issuer logo.
func SetLogo(logo ImageRef) Edit {
	return func(inv *Invoice) error {
		inv.From.Logo = logo
		return nil
	}
}

// SetSignature sets the signature; nil removes it.
func SetSignature(sig Signature) Edit {
	return func(inv *Invoice) error {
		inv.Signature = sig
		return nil
	}
}

// Replace swaps the whole document for doc, normalized.
func Replace(doc Invoice) Edit {
	return func(inv *Invoice) error {
		*inv = doc.Normalize()
		return nil
	}
}
