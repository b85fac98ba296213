// Package i18n holds the display tables of the invoice preview: label
// translations, currency symbols and locale-aware amount and date formatting.
package i18n

import (
	"golang.org/x/text/language"
)

// Key identifies a translatable caption.
type Key string

// Label keys.
const (
	KeyInvoice        Key = "invoice"
	KeyInvoiceNumber  Key = "invoiceNumber"
	KeyPONumber       Key = "poNumber"
	KeyIssueDate      Key = "issueDate"
	KeyDueDate        Key = "dueDate"
	KeyFrom           Key = "from"
	KeyBillTo         Key = "billTo"
	KeyDescription    Key = "description"
	KeyQuantity       Key = "quantity"
	KeyRate           Key = "rate"
	KeyAmount         Key = "amount"
	KeyNoItems        Key = "noItems"
	KeySubtotal       Key = "subtotal"
	KeyTax            Key = "tax"
	KeyDiscount       Key = "discount"
	KeyTotal          Key = "total"
	KeyPaymentDue     Key = "paymentDue"
	KeyPaymentMethods Key = "paymentMethods"
	KeyLatePenalty    Key = "latePenalty"
	KeyPayOnline      Key = "payOnline"
	KeyNotes          Key = "notes"
	KeySignature      Key = "signature"
	KeyNoLogo         Key = "noLogo"
)

// Supported languages. English must stay first: it is the matcher's fallback.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Portuguese,
}

var matcher = language.NewMatcher(supported)

var tables = map[language.Tag]map[Key]string{
	language.English: {
		KeyInvoice:        "Invoice",
		KeyInvoiceNumber:  "Invoice #",
		KeyPONumber:       "PO",
		KeyIssueDate:      "Issue",
		KeyDueDate:        "Due",
		KeyFrom:           "From",
		KeyBillTo:         "Bill To",
		KeyDescription:    "Description",
		KeyQuantity:       "Qty",
		KeyRate:           "Rate",
		KeyAmount:         "Amount",
		KeyNoItems:        "No items",
		KeySubtotal:       "Subtotal",
		KeyTax:            "Tax",
		KeyDiscount:       "Discount",
		KeyTotal:          "Total",
		KeyPaymentDue:     "Payment Due",
		KeyPaymentMethods: "Payment Methods",
		KeyLatePenalty:    "Late Penalty",
		KeyPayOnline:      "Pay online",
		KeyNotes:          "Notes",
		KeySignature:      "Signature",
		KeyNoLogo:         "No Logo",
	},
	language.Spanish: {
		KeyInvoice:        "Factura",
		KeyInvoiceNumber:  "Factura n.º",
		KeyPONumber:       "OC",
		KeyIssueDate:      "Emisión",
		KeyDueDate:        "Vencimiento",
		KeyFrom:           "De",
		KeyBillTo:         "Facturar a",
		KeyDescription:    "Descripción",
		KeyQuantity:       "Cant.",
		KeyRate:           "Precio",
		KeyAmount:         "Importe",
		KeyNoItems:        "Sin conceptos",
		KeySubtotal:       "Subtotal",
		KeyTax:            "Impuesto",
		KeyDiscount:       "Descuento",
		KeyTotal:          "Total",
		KeyPaymentDue:     "Vencimiento del pago",
		KeyPaymentMethods: "Formas de pago",
		KeyLatePenalty:    "Recargo por demora",
		KeyPayOnline:      "Pagar en línea",
		KeyNotes:          "Notas",
		KeySignature:      "Firma",
		KeyNoLogo:         "Sin logo",
	},
	language.French: {
		KeyInvoice:        "Facture",
		KeyInvoiceNumber:  "Facture n°",
		KeyPONumber:       "BC",
		KeyIssueDate:      "Émission",
		KeyDueDate:        "Échéance",
		KeyFrom:           "De",
		KeyBillTo:         "Facturer à",
		KeyDescription:    "Description",
		KeyQuantity:       "Qté",
		KeyRate:           "Prix",
		KeyAmount:         "Montant",
		KeyNoItems:        "Aucun article",
		KeySubtotal:       "Sous-total",
		KeyTax:            "Taxe",
		KeyDiscount:       "Remise",
		KeyTotal:          "Total",
		KeyPaymentDue:     "Échéance de paiement",
		KeyPaymentMethods: "Moyens de paiement",
		KeyLatePenalty:    "Pénalité de retard",
		KeyPayOnline:      "Payer en ligne",
		KeyNotes:          "Notes",
		KeySignature:      "Signature",
		KeyNoLogo:         "Pas de logo",
	},
	language.German: {
		KeyInvoice:        "Rechnung",
		KeyInvoiceNumber:  "Rechnung Nr.",
		KeyPONumber:       "Bestellnr.",
		KeyIssueDate:      "Datum",
		KeyDueDate:        "Fällig",
		KeyFrom:           "Von",
		KeyBillTo:         "Rechnung an",
		KeyDescription:    "Beschreibung",
		KeyQuantity:       "Menge",
		KeyRate:           "Preis",
		KeyAmount:         "Betrag",
		KeyNoItems:        "Keine Positionen",
		KeySubtotal:       "Zwischensumme",
		KeyTax:            "Steuer",
		KeyDiscount:       "Rabatt",
		KeyTotal:          "Gesamt",
		KeyPaymentDue:     "Zahlungsziel",
		KeyPaymentMethods: "Zahlungsarten",
		KeyLatePenalty:    "Verzugszuschlag",
		KeyPayOnline:      "Online bezahlen",
		KeyNotes:          "Hinweise",
		KeySignature:      "Unterschrift",
		KeyNoLogo:         "Kein Logo",
	},
	language.Portuguese: {
		KeyInvoice:        "Fatura",
		KeyInvoiceNumber:  "Fatura n.º",
		KeyPONumber:       "PC",
		KeyIssueDate:      "Emissão",
		KeyDueDate:        "Vencimento",
		KeyFrom:           "De",
		KeyBillTo:         "Faturar para",
		KeyDescription:    "Descrição",
		KeyQuantity:       "Qtd.",
		KeyRate:           "Preço",
		KeyAmount:         "Valor",
		KeyNoItems:        "Sem itens",
		KeySubtotal:       "Subtotal",
		KeyTax:            "Imposto",
		KeyDiscount:       "Desconto",
		KeyTotal:          "Total",
		KeyPaymentDue:     "Prazo de pagamento",
		KeyPaymentMethods: "Formas de pagamento",
		KeyLatePenalty:    "Multa por atraso",
		KeyPayOnline:      "Pagar online",
		KeyNotes:          "Observações",
		KeySignature:      "Assinatura",
		KeyNoLogo:         "Sem logótipo",
	},
}

// Match returns the supported language closest to code.
// Unset or unrecognized codes match English.
func Match(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// Labels is a translation table for one language.
type Labels struct {
	tag   language.Tag
	table map[Key]string
}

// LabelsFor returns the table for code, falling back to English.
func LabelsFor(code string) Labels {
	tag := Match(code)
	return Labels{tag: tag, table: tables[tag]}
}

// Language returns the matched language.
func (l Labels) Language() language.Tag {
	return l.tag
}

// Get returns the caption for key. Keys missing from a translation use the
// English caption; unknown keys are returned as-is.
func (l Labels) Get(key Key) string {
	if s, ok := l.table[key]; ok {
		return s
	}
	if s, ok := tables[language.English][key]; ok {
		return s
	}
	return string(key)
}
