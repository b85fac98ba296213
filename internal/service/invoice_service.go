package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/invoicemaker/internal/address"
	"github.com/mmynk/invoicemaker/internal/calculator"
	"github.com/mmynk/invoicemaker/internal/models"
	"github.com/mmynk/invoicemaker/internal/preview"
	"github.com/mmynk/invoicemaker/internal/storage"
	pb "github.com/mmynk/invoicemaker/pkg/proto"
	"github.com/mmynk/invoicemaker/pkg/proto/protoconnect"
)

// DefaultMaxUploadBytes limits logo and signature uploads.
const DefaultMaxUploadBytes = 2 << 20

// InvoiceService implements the Connect InvoiceService
type InvoiceService struct {
	protoconnect.UnimplementedInvoiceServiceHandler
	store     storage.Store
	addresses *address.Capability
	maxUpload int64
	now       func() time.Time
}

// NewInvoiceService creates a new InvoiceService. addresses may be nil, in
// which case no suggestions are ever returned.
func NewInvoiceService(store storage.Store, addresses *address.Capability, maxUpload int64) *InvoiceService {
	if addresses == nil {
		addresses = address.NewCapability()
	}
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	return &InvoiceService{store: store, addresses: addresses, maxUpload: maxUpload, now: time.Now}
}

// CreateInvoice starts a session from the given document or the defaults.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *connect.Request[pb.CreateInvoiceRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	inv := models.NewInvoice(s.now())
	if req.Msg.Invoice != nil {
		seed, err := invoiceFromProto(req.Msg.Invoice, s.maxUpload)
		if err != nil {
			return nil, toConnectError(err)
		}
		inv = seed.Normalize()
	}

	sess, err := s.store.CreateSession(ctx, inv)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to create session: %w", err))
	}

	slog.Info("Invoice session created", "session_id", sess.ID, "items", len(sess.Invoice.LineItems))
	return connect.NewResponse(invoiceResponse(sess.ID, sess.Invoice)), nil
}

// GetInvoice returns the current document of a session.
func (s *InvoiceService) GetInvoice(ctx context.Context, req *connect.Request[pb.GetInvoiceRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	sess, err := s.store.GetSession(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(invoiceResponse(sess.ID, sess.Invoice)), nil
}

// ReplaceInvoice swaps the whole document of a session.
func (s *InvoiceService) ReplaceInvoice(ctx context.Context, req *connect.Request[pb.ReplaceInvoiceRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	if req.Msg.Invoice == nil {
		return nil, toConnectError(fmt.Errorf("invoice: %w", errMissingField))
	}
	doc, err := invoiceFromProto(req.Msg.Invoice, s.maxUpload)
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.edit(ctx, req.Msg.SessionId, models.Replace(doc))
}

// AddLineItem appends an empty row.
func (s *InvoiceService) AddLineItem(ctx context.Context, req *connect.Request[pb.AddLineItemRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	return s.edit(ctx, req.Msg.SessionId, models.AddLineItem())
}

// UpdateLineItem replaces a row from the raw field text.
func (s *InvoiceService) UpdateLineItem(ctx context.Context, req *connect.Request[pb.UpdateLineItemRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	item := models.LineItem{
		Description: req.Msg.Description,
		Quantity:    models.ParseOrZero(req.Msg.Quantity),
		Rate:        models.ParseOrZero(req.Msg.Rate),
	}
	slog.Debug("Updating line item",
		"session_id", req.Msg.SessionId,
		"index", req.Msg.Index,
		"quantity", item.Quantity,
		"rate", item.Rate,
	)
	return s.edit(ctx, req.Msg.SessionId, models.UpdateLineItem(int(req.Msg.Index), item))
}

// RemoveLineItem deletes a row. The last remaining row is kept.
func (s *InvoiceService) RemoveLineItem(ctx context.Context, req *connect.Request[pb.RemoveLineItemRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	return s.edit(ctx, req.Msg.SessionId, models.RemoveLineItem(int(req.Msg.Index)))
}

// SetSignature sets or clears the signature.
func (s *InvoiceService) SetSignature(ctx context.Context, req *connect.Request[pb.SetSignatureRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	sig, err := signatureFromProto(req.Msg.Signature, s.maxUpload)
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.edit(ctx, req.Msg.SessionId, models.SetSignature(sig))
}

// SetLogo stores an uploaded logo, or clears it when no data is sent.
func (s *InvoiceService) SetLogo(ctx context.Context, req *connect.Request[pb.SetLogoRequest]) (*connect.Response[pb.InvoiceResponse], error) {
	var logo models.ImageRef
	if len(req.Msg.Data) > 0 {
		ref, err := models.ImageFromUpload(req.Msg.Data, s.maxUpload)
		if err != nil {
			slog.Warn("Rejected logo upload", "session_id", req.Msg.SessionId, "bytes", len(req.Msg.Data), "error", err)
			return nil, toConnectError(fmt.Errorf("logo: %w", err))
		}
		logo = ref
	}
	return s.edit(ctx, req.Msg.SessionId, models.SetLogo(logo))
}

// ComputeTotals derives the totals of a document without touching any session.
func (s *InvoiceService) ComputeTotals(ctx context.Context, req *connect.Request[pb.ComputeTotalsRequest]) (*connect.Response[pb.ComputeTotalsResponse], error) {
	inv, err := invoiceFromProto(req.Msg.Invoice, s.maxUpload)
	if err != nil {
		return nil, toConnectError(err)
	}

	totals := calculator.ComputeTotals(inv)
	amounts := make([]float64, len(inv.LineItems))
	for i, item := range inv.LineItems {
		amounts[i] = calculator.ComputeLineAmount(item)
	}

	slog.Debug("Computed totals",
		"items", len(inv.LineItems),
		"subtotal", totals.Subtotal,
		"tax", totals.TaxAmount,
		"total", totals.Total,
	)
	return connect.NewResponse(&pb.ComputeTotalsResponse{
		Totals:      totalsToProto(totals),
		LineAmounts: amounts,
	}), nil
}

// RenderPreview renders the session's document and marks the preview as
// mounted, which makes it available to exports.
func (s *InvoiceService) RenderPreview(ctx context.Context, req *connect.Request[pb.RenderPreviewRequest]) (*connect.Response[pb.RenderPreviewResponse], error) {
	sess, err := s.store.GetSession(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, toConnectError(err)
	}
	surface, err := preview.Render(sess.Invoice)
	if err != nil {
		slog.Error("Failed to render preview", "session_id", sess.ID, "error", err)
		return nil, toConnectError(err)
	}

	_, err = s.store.UpdateSession(ctx, sess.ID, func(sess *storage.Session) error {
		sess.PreviewMounted = true
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	w, h := surface.Size()
	return connect.NewResponse(&pb.RenderPreviewResponse{
		TargetId: preview.TargetID,
		Markup:   surface.Markup(),
		Width:    int32(w),
		Height:   int32(h),
		Totals:   totalsToProto(surface.Totals()),
	}), nil
}

// SuggestAddresses returns address completions once the address service is ready.
func (s *InvoiceService) SuggestAddresses(ctx context.Context, req *connect.Request[pb.SuggestAddressesRequest]) (*connect.Response[pb.SuggestAddressesResponse], error) {
	suggestions := slices.Collect(s.addresses.Suggest(ctx, req.Msg.Input))
	if suggestions == nil {
		suggestions = []string{}
	}
	return connect.NewResponse(&pb.SuggestAddressesResponse{
		Ready:       s.addresses.IsReady(),
		Suggestions: suggestions,
	}), nil
}

// EndSession discards a session and everything exported from it.
func (s *InvoiceService) EndSession(ctx context.Context, req *connect.Request[pb.EndSessionRequest]) (*connect.Response[pb.EndSessionResponse], error) {
	if _, err := s.store.GetSession(ctx, req.Msg.SessionId); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.DeleteSession(ctx, req.Msg.SessionId); err != nil {
		slog.Error("Failed to end session", "session_id", req.Msg.SessionId, "error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to end session: %w", err))
	}
	slog.Info("Invoice session ended", "session_id", req.Msg.SessionId)
	return connect.NewResponse(&pb.EndSessionResponse{}), nil
}

// edit applies edits to the session's document as a single write.
func (s *InvoiceService) edit(ctx context.Context, sessionID string, edits ...models.Edit) (*connect.Response[pb.InvoiceResponse], error) {
	sess, err := s.store.UpdateSession(ctx, sessionID, func(sess *storage.Session) error {
		next, err := sess.Invoice.Apply(edits...)
		if err != nil {
			return err
		}
		sess.Invoice = next
		return nil
	})
	if err != nil {
		slog.Warn("Invoice edit rejected", "session_id", sessionID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(invoiceResponse(sess.ID, sess.Invoice)), nil
}
