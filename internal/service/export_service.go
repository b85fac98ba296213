package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"connectrpc.com/connect"

	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/preview"
	"github.com/mmynk/invoicemaker/internal/storage"
	pb "github.com/mmynk/invoicemaker/pkg/proto"
	"github.com/mmynk/invoicemaker/pkg/proto/protoconnect"
)

// ExportService implements the Connect ExportService
type ExportService struct {
	protoconnect.UnimplementedExportServiceHandler
	store    storage.Store
	pipeline *export.Pipeline
}

// NewExportService creates a new ExportService.
func NewExportService(store storage.Store, pipeline *export.Pipeline) *ExportService {
	return &ExportService{store: store, pipeline: pipeline}
}

// ToggleMenu opens or closes the download menu.
func (s *ExportService) ToggleMenu(ctx context.Context, req *connect.Request[pb.ToggleMenuRequest]) (*connect.Response[pb.MenuResponse], error) {
	return s.menu(ctx, req.Msg.SessionId, export.Menu.Toggle)
}

// DismissMenu closes the download menu.
func (s *ExportService) DismissMenu(ctx context.Context, req *connect.Request[pb.DismissMenuRequest]) (*connect.Response[pb.MenuResponse], error) {
	return s.menu(ctx, req.Msg.SessionId, export.Menu.Dismiss)
}

func (s *ExportService) menu(ctx context.Context, sessionID string, transition func(export.Menu) export.Menu) (*connect.Response[pb.MenuResponse], error) {
	sess, err := s.store.UpdateSession(ctx, sessionID, func(sess *storage.Session) error {
		sess.Menu = transition(sess.Menu)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.MenuResponse{Open: sess.Menu.Open()}), nil
}

// Export selects a format, closing the menu, and exports the mounted
// preview. Nothing is produced when the preview has not been rendered yet.
func (s *ExportService) Export(ctx context.Context, req *connect.Request[pb.ExportRequest]) (*connect.Response[pb.ExportResponse], error) {
	format, err := export.ParseFormat(req.Msg.Format)
	if err != nil {
		return nil, toConnectError(err)
	}

	sess, err := s.store.UpdateSession(ctx, req.Msg.SessionId, func(sess *storage.Session) error {
		sess.Menu = sess.Menu.Select(format)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	artifact, err := s.pipeline.Export(ctx, SessionLocator(sess), format, preview.TargetID, req.Msg.Filename)
	if err != nil {
		slog.Error("Export failed", "session_id", sess.ID, "format", format, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.ExportResponse{MenuOpen: sess.Menu.Open()}
	if artifact == nil {
		return connect.NewResponse(resp), nil
	}

	if err := s.pipeline.Publish(ctx, sess.ID, artifact); err != nil {
		slog.Error("Failed to publish export", "session_id", sess.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp.Exported = true
	resp.Filename = artifact.Filename
	resp.ContentType = artifact.ContentType
	resp.Data = artifact.Data
	resp.DownloadUrl = DownloadPath(sess.ID, format)
	return connect.NewResponse(resp), nil
}

// DownloadPath is the HTTP path that serves a fresh export of a session.
func DownloadPath(sessionID string, format export.Format) string {
	return fmt.Sprintf("/download/%s/%s", url.PathEscape(sessionID), format)
}

// SessionLocator finds the preview of a session. The preview target exists
// only once it has been mounted by RenderPreview.
func SessionLocator(sess storage.Session) export.Locator {
	return export.LocatorFunc(func(targetID string) (export.Surface, bool) {
		if targetID != preview.TargetID || !sess.PreviewMounted {
			return nil, false
		}
		surface, err := preview.Render(sess.Invoice)
		if err != nil {
			slog.Error("Failed to render preview for export", "session_id", sess.ID, "error", err)
			return nil, false
		}
		return surface, true
	})
}
