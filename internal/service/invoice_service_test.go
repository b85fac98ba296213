package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/invoicemaker/internal/address"
	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/middleware"
	"github.com/mmynk/invoicemaker/internal/models"
	"github.com/mmynk/invoicemaker/internal/storage/memory"
	pb "github.com/mmynk/invoicemaker/pkg/proto"
	"github.com/mmynk/invoicemaker/pkg/proto/protoconnect"
)

type testClients struct {
	invoices  protoconnect.InvoiceServiceClient
	exports   protoconnect.ExportServiceClient
	addresses *address.Capability
}

// setupTestServer creates a test server backed by an in-memory store.
func setupTestServer(t *testing.T) (testClients, func()) {
	t.Helper()

	store := memory.New()
	addresses := address.NewCapability()
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor())

	invoiceSvc := NewInvoiceService(store, addresses, 0)
	invoiceSvc.now = func() time.Time { return time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC) }
	invoicePath, invoiceHandler := protoconnect.NewInvoiceServiceHandler(invoiceSvc, interceptors)

	exportSvc := NewExportService(store, export.NewPipeline(export.WithScale(1)))
	exportPath, exportHandler := protoconnect.NewExportServiceHandler(exportSvc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(invoicePath, invoiceHandler)
	mux.Handle(exportPath, exportHandler)

	server := httptest.NewServer(mux)

	clients := testClients{
		invoices:  protoconnect.NewInvoiceServiceClient(http.DefaultClient, server.URL),
		exports:   protoconnect.NewExportServiceClient(http.DefaultClient, server.URL),
		addresses: addresses,
	}

	cleanup := func() {
		server.Close()
		store.Close()
	}
	return clients, cleanup
}

func createSession(t *testing.T, c testClients, inv *pb.Invoice) *pb.InvoiceResponse {
	t.Helper()
	resp, err := c.invoices.CreateInvoice(context.Background(), connect.NewRequest(&pb.CreateInvoiceRequest{Invoice: inv}))
	if err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}
	return resp.Msg
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCreateInvoice_Defaults(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	msg := createSession(t, c, nil)

	if msg.SessionId == "" {
		t.Error("expected session ID")
	}
	if len(msg.Invoice.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(msg.Invoice.LineItems))
	}
	if msg.Invoice.LineItems[0].Quantity != 1 || msg.Invoice.LineItems[0].Rate != 0 {
		t.Errorf("unexpected default item %+v", msg.Invoice.LineItems[0])
	}
	if msg.Invoice.Currency != "USD" || msg.Invoice.Language != "en" {
		t.Errorf("unexpected defaults currency=%q language=%q", msg.Invoice.Currency, msg.Invoice.Language)
	}
	if msg.Invoice.IssueDate != "2026-04-02" {
		t.Errorf("expected issue date 2026-04-02, got %q", msg.Invoice.IssueDate)
	}
	if msg.Totals.Total != 0 {
		t.Errorf("expected zero total, got %f", msg.Totals.Total)
	}
}

func TestCreateInvoice_Seeded(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	msg := createSession(t, c, &pb.Invoice{
		LineItems: []*pb.LineItem{
			{Description: "A", Quantity: 2, Rate: 100},
			{Description: "B", Quantity: 1, Rate: 100},
		},
		TaxRate:  10,
		Discount: 20,
	})

	if msg.Totals.Subtotal != 300 || msg.Totals.TaxAmount != 30 || msg.Totals.Total != 310 {
		t.Errorf("unexpected totals %+v", msg.Totals)
	}
	if msg.Invoice.LineItems[0].Amount != 200 {
		t.Errorf("expected line amount 200, got %f", msg.Invoice.LineItems[0].Amount)
	}
}

func TestCreateInvoice_BadDate(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := c.invoices.CreateInvoice(context.Background(), connect.NewRequest(&pb.CreateInvoiceRequest{
		Invoice: &pb.Invoice{IssueDate: "02/04/2026"},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGetInvoice_NotFound(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := c.invoices.GetInvoice(context.Background(), connect.NewRequest(&pb.GetInvoiceRequest{SessionId: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestLineItemEditing(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId

	if _, err := c.invoices.AddLineItem(ctx, connect.NewRequest(&pb.AddLineItemRequest{SessionId: id})); err != nil {
		t.Fatalf("AddLineItem failed: %v", err)
	}

	resp, err := c.invoices.UpdateLineItem(ctx, connect.NewRequest(&pb.UpdateLineItemRequest{
		SessionId:   id,
		Index:       1,
		Description: "Consulting",
		Quantity:    "3",
		Rate:        "50.5",
	}))
	if err != nil {
		t.Fatalf("UpdateLineItem failed: %v", err)
	}
	if got := resp.Msg.Invoice.LineItems[1]; got.Quantity != 3 || got.Rate != 50.5 || got.Amount != 151.5 {
		t.Errorf("unexpected item %+v", got)
	}
	if resp.Msg.Totals.Subtotal != 151.5 {
		t.Errorf("expected subtotal 151.5, got %f", resp.Msg.Totals.Subtotal)
	}

	resp, err = c.invoices.RemoveLineItem(ctx, connect.NewRequest(&pb.RemoveLineItemRequest{SessionId: id, Index: 0}))
	if err != nil {
		t.Fatalf("RemoveLineItem failed: %v", err)
	}
	if len(resp.Msg.Invoice.LineItems) != 1 || resp.Msg.Invoice.LineItems[0].Description != "Consulting" {
		t.Errorf("unexpected items after remove: %+v", resp.Msg.Invoice.LineItems)
	}

	// The last row cannot be removed.
	resp, err = c.invoices.RemoveLineItem(ctx, connect.NewRequest(&pb.RemoveLineItemRequest{SessionId: id, Index: 0}))
	if err != nil {
		t.Fatalf("RemoveLineItem failed: %v", err)
	}
	if len(resp.Msg.Invoice.LineItems) != 1 {
		t.Errorf("expected 1 item to remain, got %d", len(resp.Msg.Invoice.LineItems))
	}
}

func TestUpdateLineItem_ParseOrZero(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name     string
		quantity string
		rate     string
		wantQty  float64
		wantRate float64
	}{
		{"plain numbers", "2", "10", 2, 10},
		{"garbage", "abc", "", 0, 0},
		{"negative clamps", "-4", "-1.5", 0, 0},
		{"numeric prefix", "2x", "12.5 USD", 2, 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := createSession(t, c, nil).SessionId
			resp, err := c.invoices.UpdateLineItem(context.Background(), connect.NewRequest(&pb.UpdateLineItemRequest{
				SessionId: id,
				Quantity:  tt.quantity,
				Rate:      tt.rate,
			}))
			if err != nil {
				t.Fatalf("UpdateLineItem failed: %v", err)
			}
			item := resp.Msg.Invoice.LineItems[0]
			if item.Quantity != tt.wantQty || item.Rate != tt.wantRate {
				t.Errorf("got quantity=%v rate=%v, want %v %v", item.Quantity, item.Rate, tt.wantQty, tt.wantRate)
			}
		})
	}
}

func TestUpdateLineItem_BadIndex(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	id := createSession(t, c, nil).SessionId
	_, err := c.invoices.UpdateLineItem(context.Background(), connect.NewRequest(&pb.UpdateLineItemRequest{SessionId: id, Index: 5}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestReplaceInvoice(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId
	resp, err := c.invoices.ReplaceInvoice(ctx, connect.NewRequest(&pb.ReplaceInvoiceRequest{
		SessionId: id,
		Invoice: &pb.Invoice{
			InvoiceNumber: "2042",
			TaxRate:       -5,
			Discount:      500,
			LineItems:     []*pb.LineItem{{Description: "Hosting", Quantity: 1, Rate: 100}},
		},
	}))
	if err != nil {
		t.Fatalf("ReplaceInvoice failed: %v", err)
	}
	if resp.Msg.Invoice.InvoiceNumber != "2042" || resp.Msg.Invoice.TaxRate != 0 {
		t.Errorf("unexpected invoice %+v", resp.Msg.Invoice)
	}
	if resp.Msg.Totals.Total != 0 {
		t.Errorf("expected total clamped to 0, got %f", resp.Msg.Totals.Total)
	}

	got, err := c.invoices.GetInvoice(ctx, connect.NewRequest(&pb.GetInvoiceRequest{SessionId: id}))
	if err != nil {
		t.Fatalf("GetInvoice failed: %v", err)
	}
	if got.Msg.Invoice.InvoiceNumber != "2042" {
		t.Errorf("replacement was not stored")
	}

	_, err = c.invoices.ReplaceInvoice(ctx, connect.NewRequest(&pb.ReplaceInvoiceRequest{SessionId: id}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestSetLogo(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId

	resp, err := c.invoices.SetLogo(ctx, connect.NewRequest(&pb.SetLogoRequest{SessionId: id, Data: pngBytes(t)}))
	if err != nil {
		t.Fatalf("SetLogo failed: %v", err)
	}
	if !strings.HasPrefix(resp.Msg.Invoice.From.Logo, "data:image/png;base64,") {
		t.Errorf("unexpected logo %q", resp.Msg.Invoice.From.Logo)
	}

	_, err = c.invoices.SetLogo(ctx, connect.NewRequest(&pb.SetLogoRequest{SessionId: id, Data: []byte("plain text, not an image")}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err = c.invoices.SetLogo(ctx, connect.NewRequest(&pb.SetLogoRequest{SessionId: id}))
	if err != nil {
		t.Fatalf("clearing logo failed: %v", err)
	}
	if resp.Msg.Invoice.From.Logo != "" {
		t.Errorf("expected logo to be cleared")
	}
}

func TestSetSignature(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId

	resp, err := c.invoices.SetSignature(ctx, connect.NewRequest(&pb.SetSignatureRequest{
		SessionId: id,
		Signature: &pb.Signature{Kind: models.SignatureTyped, Text: "Jane Doe"},
	}))
	if err != nil {
		t.Fatalf("SetSignature failed: %v", err)
	}
	if sig := resp.Msg.Invoice.Signature; sig == nil || sig.Kind != "typed" || sig.Text != "Jane Doe" {
		t.Errorf("unexpected signature %+v", sig)
	}

	resp, err = c.invoices.SetSignature(ctx, connect.NewRequest(&pb.SetSignatureRequest{
		SessionId: id,
		Signature: &pb.Signature{Kind: models.SignatureImage, ImageData: pngBytes(t)},
	}))
	if err != nil {
		t.Fatalf("SetSignature image failed: %v", err)
	}
	if sig := resp.Msg.Invoice.Signature; sig == nil || sig.Kind != "image" || !strings.HasPrefix(sig.Image, "data:image/png") {
		t.Errorf("unexpected signature %+v", sig)
	}

	resp, err = c.invoices.SetSignature(ctx, connect.NewRequest(&pb.SetSignatureRequest{SessionId: id}))
	if err != nil {
		t.Fatalf("clearing signature failed: %v", err)
	}
	if resp.Msg.Invoice.Signature != nil {
		t.Errorf("expected signature to be cleared")
	}

	_, err = c.invoices.SetSignature(ctx, connect.NewRequest(&pb.SetSignatureRequest{
		SessionId: id,
		Signature: &pb.Signature{Kind: "drawn"},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestComputeTotals(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := c.invoices.ComputeTotals(context.Background(), connect.NewRequest(&pb.ComputeTotalsRequest{
		Invoice: &pb.Invoice{
			LineItems: []*pb.LineItem{{Quantity: 2, Rate: 12.5}, {Quantity: 3, Rate: 25}},
			TaxRate:   8.25,
		},
	}))
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}
	if got := resp.Msg.Totals; got.Subtotal != 100 || got.TaxAmount != 8.25 || got.Total != 108.25 {
		t.Errorf("unexpected totals %+v", got)
	}
	if len(resp.Msg.LineAmounts) != 2 || resp.Msg.LineAmounts[0] != 25 {
		t.Errorf("unexpected line amounts %v", resp.Msg.LineAmounts)
	}
}

func TestRenderPreview(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	id := createSession(t, c, &pb.Invoice{
		From:      &pb.Party{Name: "Acme Studio"},
		LineItems: []*pb.LineItem{{Description: "Design", Quantity: 2, Rate: 150}},
	}).SessionId

	resp, err := c.invoices.RenderPreview(context.Background(), connect.NewRequest(&pb.RenderPreviewRequest{SessionId: id}))
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if resp.Msg.TargetId != "invoice-preview" {
		t.Errorf("unexpected target %q", resp.Msg.TargetId)
	}
	if resp.Msg.Width != 512 || resp.Msg.Height <= 0 {
		t.Errorf("unexpected size %dx%d", resp.Msg.Width, resp.Msg.Height)
	}
	for _, want := range []string{"Acme Studio", "Design", "$300.00"} {
		if !strings.Contains(resp.Msg.Markup, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestRenderPreview_MountsForExport(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId
	if _, err := c.invoices.RenderPreview(ctx, connect.NewRequest(&pb.RenderPreviewRequest{SessionId: id})); err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}

	resp, err := c.exports.Export(ctx, connect.NewRequest(&pb.ExportRequest{SessionId: id, Format: "svg"}))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !resp.Msg.Exported {
		t.Error("expected the rendered preview to be exportable")
	}

	_, err = c.invoices.RenderPreview(ctx, connect.NewRequest(&pb.RenderPreviewRequest{SessionId: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestRenderPreview_SVGLogoNotInlined(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId
	logo := `<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"><script>alert(document.cookie)</script></svg>`
	if _, err := c.invoices.SetLogo(ctx, connect.NewRequest(&pb.SetLogoRequest{SessionId: id, Data: []byte(logo)})); err != nil {
		t.Fatalf("SetLogo failed: %v", err)
	}

	resp, err := c.invoices.RenderPreview(ctx, connect.NewRequest(&pb.RenderPreviewRequest{SessionId: id}))
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	for _, bad := range []string{"<script", "onload"} {
		if strings.Contains(resp.Msg.Markup, bad) {
			t.Errorf("markup contains %q", bad)
		}
	}
	if !strings.Contains(resp.Msg.Markup, `<img src="data:image/svg+xml;base64,`) {
		t.Error("expected the logo to be referenced as an image")
	}
}

func TestEndSession(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	id := createSession(t, c, nil).SessionId
	if _, err := c.invoices.EndSession(ctx, connect.NewRequest(&pb.EndSessionRequest{SessionId: id})); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	_, err := c.invoices.GetInvoice(ctx, connect.NewRequest(&pb.GetInvoiceRequest{SessionId: id}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.invoices.EndSession(ctx, connect.NewRequest(&pb.EndSessionRequest{SessionId: id}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestSuggestAddresses(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := c.invoices.SuggestAddresses(ctx, connect.NewRequest(&pb.SuggestAddressesRequest{Input: "baker"}))
	if err != nil {
		t.Fatalf("SuggestAddresses failed: %v", err)
	}
	if resp.Msg.Ready || len(resp.Msg.Suggestions) != 0 {
		t.Errorf("expected no suggestions before ready, got %+v", resp.Msg)
	}

	c.addresses.Provide(address.NewStaticProvider([]string{
		"221B Baker Street, London",
		"10 Downing Street, London",
	}, 0))

	resp, err = c.invoices.SuggestAddresses(ctx, connect.NewRequest(&pb.SuggestAddressesRequest{Input: "baker"}))
	if err != nil {
		t.Fatalf("SuggestAddresses failed: %v", err)
	}
	if !resp.Msg.Ready || len(resp.Msg.Suggestions) != 1 || resp.Msg.Suggestions[0] != "221B Baker Street, London" {
		t.Errorf("unexpected suggestions %+v", resp.Msg)
	}

	resp, err = c.invoices.SuggestAddresses(ctx, connect.NewRequest(&pb.SuggestAddressesRequest{Input: "   "}))
	if err != nil {
		t.Fatalf("SuggestAddresses failed: %v", err)
	}
	if len(resp.Msg.Suggestions) != 0 {
		t.Errorf("expected no suggestions for blank input, got %v", resp.Msg.Suggestions)
	}
}

func TestToConnectError(t *testing.T) {
	var cerr *connect.Error
	err := toConnectError(connect.NewError(connect.CodeAborted, errors.New("aborted")))
	if !errors.As(err, &cerr) || cerr.Code() != connect.CodeAborted {
		t.Errorf("connect errors should pass through, got %v", err)
	}
	if got := connect.CodeOf(toConnectError(errors.New("boom"))); got != connect.CodeInternal {
		t.Errorf("expected internal, got %v", got)
	}
}
