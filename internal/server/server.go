// Package server assembles the HTTP surface: the Connect services, file
// downloads and the metrics endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"connectrpc.com/connect"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/invoicemaker/internal/address"
	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/metrics"
	"github.com/mmynk/invoicemaker/internal/middleware"
	"github.com/mmynk/invoicemaker/internal/preview"
	"github.com/mmynk/invoicemaker/internal/service"
	"github.com/mmynk/invoicemaker/internal/storage"
	"github.com/mmynk/invoicemaker/pkg/proto/protoconnect"
)

// Deps are the components the server is built from.
type Deps struct {
	Store          storage.Store
	Pipeline       *export.Pipeline
	Addresses      *address.Capability
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	MaxUploadBytes int64
}

type downloads struct {
	store    storage.Store
	pipeline *export.Pipeline
}

// New returns the router serving every route, wrapped in the logging and
// CORS middleware.
func New(d Deps) http.Handler {
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		d.Metrics.Interceptor(),
	)

	r := mux.NewRouter()

	invoicePath, invoiceHandler := protoconnect.NewInvoiceServiceHandler(
		service.NewInvoiceService(d.Store, d.Addresses, d.MaxUploadBytes),
		interceptors,
	)
	r.PathPrefix(invoicePath).Handler(invoiceHandler)

	exportPath, exportHandler := protoconnect.NewExportServiceHandler(
		service.NewExportService(d.Store, d.Pipeline),
		interceptors,
	)
	r.PathPrefix(exportPath).Handler(exportHandler)

	dl := &downloads{store: d.Store, pipeline: d.Pipeline}
	r.HandleFunc("/download/{session}/{format}", dl.serve).Methods(http.MethodGet)

	if d.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(d.Gatherer)).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)

	return middleware.Logging(middleware.CORS(r))
}

// serve exports the session's mounted preview and sends it as an attachment.
func (d *downloads) serve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["session"]

	format, err := export.ParseFormat(vars["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := d.store.UpdateSession(r.Context(), sessionID, func(sess *storage.Session) error {
		sess.Menu = sess.Menu.Select(format)
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("Failed to load session for download", "session_id", sessionID, "error", err)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	a, err := d.pipeline.Export(r.Context(), service.SessionLocator(sess), format, preview.TargetID, r.URL.Query().Get("filename"))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Error("Download export failed", "session_id", sessionID, "format", format, "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "preview not rendered", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename}))
	w.Header().Set("Content-Length", fmt.Sprint(len(a.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(a.Data); err != nil {
		slog.Debug("Download interrupted", "session_id", sessionID, "error", err)
	}
}
