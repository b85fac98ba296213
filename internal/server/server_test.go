package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/invoicemaker/internal/address"
	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/metrics"
	"github.com/mmynk/invoicemaker/internal/storage/memory"
	pb "github.com/mmynk/invoicemaker/pkg/proto"
	"github.com/mmynk/invoicemaker/pkg/proto/protoconnect"
)

type testEnv struct {
	server    *httptest.Server
	invoices  protoconnect.InvoiceServiceClient
	exports   protoconnect.ExportServiceClient
	downloads string
}

func setup(t *testing.T) testEnv {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	dir := t.TempDir()

	srv := httptest.NewServer(New(Deps{
		Store:     memory.New(),
		Pipeline:  export.NewPipeline(export.WithScale(1), export.WithMetrics(m), export.WithSinks(export.DirSink{Root: dir})),
		Addresses: address.NewCapability(),
		Metrics:   m,
		Gatherer:  reg,
	}))
	t.Cleanup(srv.Close)

	return testEnv{
		server:    srv,
		invoices:  protoconnect.NewInvoiceServiceClient(srv.Client(), srv.URL),
		exports:   protoconnect.NewExportServiceClient(srv.Client(), srv.URL),
		downloads: dir,
	}
}

func (e testEnv) createRendered(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	created, err := e.invoices.CreateInvoice(ctx, connect.NewRequest(&pb.CreateInvoiceRequest{
		Invoice: &pb.Invoice{LineItems: []*pb.LineItem{{Description: "Support", Quantity: 4, Rate: 25}}},
	}))
	require.NoError(t, err)
	_, err = e.invoices.RenderPreview(ctx, connect.NewRequest(&pb.RenderPreviewRequest{SessionId: created.Msg.SessionId}))
	require.NoError(t, err)
	return created.Msg.SessionId
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestConnectJSON(t *testing.T) {
	e := setup(t)

	body := `{"invoice": {"lineItems": [{"description": "Design", "quantity": 2, "rate": 12.5}], "taxRate": 10}}`
	resp, err := http.Post(e.server.URL+protoconnect.InvoiceServiceComputeTotalsProcedure, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totals": {"subtotal": 25, "taxAmount": 2.5, "total": 27.5}, "lineAmounts": [25]}`, string(data))
}

func TestDownloadPDF(t *testing.T) {
	e := setup(t)
	id := e.createRendered(t)

	resp := get(t, e.server.URL+"/download/"+id+"/pdf?filename=april")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename=april.pdf`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestDownloadSVG(t *testing.T) {
	e := setup(t)
	id := e.createRendered(t)

	resp := get(t, e.server.URL+"/download/"+id+"/svg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml;charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<svg"))
	assert.Contains(t, string(body), "Support")
}

func TestDownloadErrors(t *testing.T) {
	e := setup(t)

	created, err := e.invoices.CreateInvoice(context.Background(), connect.NewRequest(&pb.CreateInvoiceRequest{}))
	require.NoError(t, err)
	unrendered := created.Msg.SessionId

	tests := []struct {
		name string
		path string
		want int
	}{
		{"unknown session", "/download/missing/pdf", http.StatusNotFound},
		{"unknown format", "/download/" + unrendered + "/png", http.StatusBadRequest},
		{"preview not rendered", "/download/" + unrendered + "/pdf", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, e.server.URL+tt.path)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestExportPublishesToSink(t *testing.T) {
	e := setup(t)
	id := e.createRendered(t)

	resp, err := e.exports.Export(context.Background(), connect.NewRequest(&pb.ExportRequest{SessionId: id, Format: string(export.FormatSVG)}))
	require.NoError(t, err)
	require.True(t, resp.Msg.Exported)

	data, err := os.ReadFile(filepath.Join(e.downloads, id, "invoice.svg"))
	require.NoError(t, err)
	assert.Equal(t, resp.Msg.Data, data)
}

func TestMetricsEndpoint(t *testing.T) {
	e := setup(t)
	id := e.createRendered(t)

	get(t, e.server.URL+"/download/"+id+"/svg")

	resp := get(t, e.server.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `invoicemaker_exports_total{format="svg",outcome="ok"} 1`)
	assert.Contains(t, out, `invoicemaker_rpc_requests_total{code="ok",procedure="/invoicemaker.v1.InvoiceService/RenderPreview"} 1`)
}

func TestHealthz(t *testing.T) {
	e := setup(t)
	resp := get(t, e.server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
