package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/invoicemaker/pkg/proto"
)

func TestSessionID(t *testing.T) {
	tests := []struct {
		name string
		req  connect.AnyRequest
		want string
	}{
		{"session scoped", connect.NewRequest(&pb.ExportRequest{SessionId: "abc"}), "abc"},
		{"stateless", connect.NewRequest(&pb.ComputeTotalsRequest{}), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sessionID(tt.req); got != tt.want {
				t.Errorf("sessionID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/invoicemaker.v1.InvoiceService/GetInvoice", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if called {
		t.Error("preflight should not reach the handler")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}
