package service

import (
	"fmt"
	"time"

	"github.com/mmynk/invoicemaker/internal/calculator"
	"github.com/mmynk/invoicemaker/internal/models"
	pb "github.com/mmynk/invoicemaker/pkg/proto"
)

const dateLayout = time.DateOnly

// invoiceFromProto converts a wire invoice. Missing fields take their zero
// value; the result is not normalized.
func invoiceFromProto(msg *pb.Invoice, maxUpload int64) (models.Invoice, error) {
	if msg == nil {
		return models.Invoice{}, nil
	}
	issue, err := parseDate(msg.IssueDate)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("issue date: %w", err)
	}
	due, err := parseDate(msg.DueDate)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("due date: %w", err)
	}
	sig, err := signatureFromProto(msg.Signature, maxUpload)
	if err != nil {
		return models.Invoice{}, err
	}

	inv := models.Invoice{
		InvoiceNumber:   msg.InvoiceNumber,
		PONumber:        msg.PoNumber,
		IssueDate:       issue,
		DueDate:         due,
		From:            partyFromProto(msg.From),
		To:              partyFromProto(msg.To),
		TaxRate:         msg.TaxRate,
		Discount:        msg.Discount,
		Currency:        msg.Currency,
		Language:        msg.Language,
		Signature:       sig,
		PaymentMethods:  msg.PaymentMethods,
		PaymentDue:      msg.PaymentDue,
		LatePenalty:     msg.LatePenalty,
		OnlinePayment:   msg.OnlinePayment,
		Notes:           msg.Notes,
		ThankYouMessage: msg.ThankYouMessage,
		CompanySlogan:   msg.CompanySlogan,
		Copyright:       msg.Copyright,
	}
	for _, item := range msg.LineItems {
		if item == nil {
			continue
		}
		inv.LineItems = append(inv.LineItems, models.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
	return inv, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", errInvalidDate, err)
	}
	return t, nil
}

func partyFromProto(msg *pb.Party) models.Party {
	if msg == nil {
		return models.Party{}
	}
	return models.Party{
		Name:    msg.Name,
		Address: msg.Address,
		Phone:   msg.Phone,
		Email:   msg.Email,
		Logo:    models.ImageRef(msg.Logo),
	}
}

func signatureFromProto(msg *pb.Signature, maxUpload int64) (models.Signature, error) {
	if msg == nil {
		return nil, nil
	}
	switch msg.Kind {
	case models.SignatureTyped:
		return models.NewTypedSignature(msg.Text), nil
	case models.SignatureImage:
		if len(msg.ImageData) > 0 {
			ref, err := models.ImageFromUpload(msg.ImageData, maxUpload)
			if err != nil {
				return nil, fmt.Errorf("signature image: %w", err)
			}
			return models.NewImageSignature(ref), nil
		}
		return models.NewImageSignature(models.ImageRef(msg.Image)), nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("%q: %w", msg.Kind, errSignatureKind)
	}
}

func invoiceToProto(inv models.Invoice) *pb.Invoice {
	msg := &pb.Invoice{
		InvoiceNumber:   inv.InvoiceNumber,
		PoNumber:        inv.PONumber,
		IssueDate:       formatDate(inv.IssueDate),
		DueDate:         formatDate(inv.DueDate),
		From:            partyToProto(inv.From),
		To:              partyToProto(inv.To),
		LineItems:       make([]*pb.LineItem, len(inv.LineItems)),
		TaxRate:         inv.TaxRate,
		Discount:        inv.Discount,
		Currency:        inv.CurrencyCode(),
		Language:        inv.LanguageCode(),
		Signature:       signatureToProto(inv.Signature),
		PaymentMethods:  inv.PaymentMethods,
		PaymentDue:      inv.PaymentDue,
		LatePenalty:     inv.LatePenalty,
		OnlinePayment:   inv.OnlinePayment,
		Notes:           inv.Notes,
		ThankYouMessage: inv.ThankYouMessage,
		CompanySlogan:   inv.CompanySlogan,
		Copyright:       inv.Copyright,
	}
	for i, item := range inv.LineItems {
		msg.LineItems[i] = &pb.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      calculator.ComputeLineAmount(item),
		}
	}
	return msg
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func partyToProto(p models.Party) *pb.Party {
	return &pb.Party{
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
		Logo:    p.Logo.String(),
	}
}

func signatureToProto(sig models.Signature) *pb.Signature {
	switch s := sig.(type) {
	case models.TypedSignature:
		return &pb.Signature{Kind: models.SignatureTyped, Text: s.Text}
	case models.ImageSignature:
		return &pb.Signature{Kind: models.SignatureImage, Image: s.Data.String()}
	default:
		return nil
	}
}

func totalsToProto(t calculator.Totals) *pb.Totals {
	return &pb.Totals{
		Subtotal:  t.Subtotal,
		TaxAmount: t.TaxAmount,
		Total:     t.Total,
	}
}

func invoiceResponse(sessionID string, inv models.Invoice) *pb.InvoiceResponse {
	return &pb.InvoiceResponse{
		SessionId: sessionID,
		Invoice:   invoiceToProto(inv),
		Totals:    totalsToProto(calculator.ComputeTotals(inv)),
	}
}
