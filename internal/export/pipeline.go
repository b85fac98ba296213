package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mmynk/invoicemaker/internal/metrics"
)

// CaptureScale is the default oversampling factor for bitmap captures.
const CaptureScale = 2

// Pipeline produces export artifacts from located surfaces.
type Pipeline struct {
	scale   float64
	sinks   []Sink
	metrics *metrics.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithScale sets the capture oversampling factor.
func WithScale(scale float64) Option {
	return func(p *Pipeline) {
		if scale > 0 {
			p.scale = scale
		}
	}
}

// WithSinks adds destinations that receive a copy of published artifacts.
func WithSinks(sinks ...Sink) Option {
	return func(p *Pipeline) {
		p.sinks = append(p.sinks, sinks...)
	}
}

// WithMetrics records export outcomes in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// NewPipeline returns a pipeline capturing at CaptureScale unless overridden.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{scale: CaptureScale}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Scale returns the capture oversampling factor.
func (p *Pipeline) Scale() float64 {
	return p.scale
}

// Export produces an artifact in format f. A nil artifact with a nil error
// means the target was not found and nothing was exported.
func (p *Pipeline) Export(ctx context.Context, loc Locator, f Format, targetID, filename string) (*Artifact, error) {
	start := time.Now()

	var (
		a   *Artifact
		err error
	)
	switch f {
	case FormatPDF:
		a, err = p.ExportPaged(ctx, loc, targetID, filename)
	case FormatSVG:
		a, err = p.ExportVector(ctx, loc, targetID, filename)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case a == nil:
		outcome = metrics.OutcomeSkipped
	}
	p.metrics.ObserveExport(string(f), outcome, time.Since(start))

	if err != nil {
		return nil, err
	}
	if a != nil {
		slog.Info("Exported invoice", "format", f, "filename", a.Filename, "bytes", len(a.Data))
	}
	return a, nil
}

// ExportPaged captures the surface and embeds the bitmap into a single A4
// portrait page. Content taller than the page is not split.
func (p *Pipeline) ExportPaged(ctx context.Context, loc Locator, targetID, filename string) (*Artifact, error) {
	s, ok := loc.Locate(targetID)
	if !ok {
		slog.Debug("Export target not mounted, skipping", "target", targetID, "format", FormatPDF)
		return nil, nil
	}

	img, err := s.Capture(ctx, p.scale)
	if err != nil {
		return nil, fmt.Errorf("failed to capture %s: %w", targetID, err)
	}

	data, err := renderPDF(img)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename:    FormatPDF.Filename(filename),
		ContentType: FormatPDF.ContentType(),
		Data:        data,
	}, nil
}

const captureImage = "capture"

func renderPDF(img image.Image) ([]byte, error) {
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, opaque(img)); err != nil {
		return nil, fmt.Errorf("failed to encode capture: %w", err)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	b := img.Bounds()
	place := FitToPage(float64(b.Dx()), float64(b.Dy()), pageW, pageH)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(captureImage, opts, &encoded)
	pdf.ImageOptions(captureImage, place.X, place.Y, place.W, place.H, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return out.Bytes(), nil
}

// opaque flattens img onto a white background.
func opaque(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

const foreignObjectSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">` +
	`<foreignObject width="100%%" height="100%%">` +
	`<div xmlns="http://www.w3.org/1999/xhtml">%s</div>` +
	`</foreignObject></svg>`

// ExportVector saves the first SVG inside the surface verbatim. A surface
// without one is wrapped whole in an SVG foreignObject of its pixel size.
func (p *Pipeline) ExportVector(ctx context.Context, loc Locator, targetID, filename string) (*Artifact, error) {
	s, ok := loc.Locate(targetID)
	if !ok {
		slog.Debug("Export target not mounted, skipping", "target", targetID, "format", FormatSVG)
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markup, ok := s.VectorGraphic()
	if !ok {
		w, h := s.Size()
		markup = fmt.Sprintf(foreignObjectSVG, w, h, s.Markup())
	}

	return &Artifact{
		Filename:    FormatSVG.Filename(filename),
		ContentType: FormatSVG.ContentType(),
		Data:        []byte(markup),
	}, nil
}

// Publish copies a to every configured sink under key.
func (p *Pipeline) Publish(ctx context.Context, key string, a *Artifact) error {
	if a == nil {
		return nil
	}
	var errs []error
	for _, sink := range p.sinks {
		if err := sink.Put(ctx, key, a); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to publish %s: %w", a.Filename, err)
	}
	return nil
}
