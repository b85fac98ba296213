package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/invoicemaker/internal/metrics"
)

type fakeSurface struct {
	markup     string
	w, h       int
	vector     string
	captureErr error
	scales     []float64
}

func (s *fakeSurface) Markup() string                { return s.markup }
func (s *fakeSurface) Size() (int, int)              { return s.w, s.h }
func (s *fakeSurface) VectorGraphic() (string, bool) { return s.vector, s.vector != "" }

func (s *fakeSurface) Capture(_ context.Context, scale float64) (image.Image, error) {
	s.scales = append(s.scales, scale)
	if s.captureErr != nil {
		return nil, s.captureErr
	}
	img := image.NewRGBA(image.Rect(0, 0, int(float64(s.w)*scale), int(float64(s.h)*scale)))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.Black)
	return img, nil
}

func locatorFor(s Surface) Locator {
	return LocatorFunc(func(id string) (Surface, bool) {
		if id != "invoice-preview" || s == nil {
			return nil, false
		}
		return s, true
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{" SVG ", FormatSVG, false},
		{"png", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error %v is not ErrUnknownFormat", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		format Format
		in     string
		want   string
	}{
		{FormatPDF, "", "invoice.pdf"},
		{FormatPDF, "march", "march.pdf"},
		{FormatPDF, "march.PDF", "march.PDF"},
		{FormatSVG, "invoice", "invoice.svg"},
		{FormatSVG, "logo.svg", "logo.svg"},
	}
	for _, tt := range tests {
		if got := tt.format.Filename(tt.in); got != tt.want {
			t.Errorf("%s.Filename(%q) = %q, want %q", tt.format, tt.in, got, tt.want)
		}
	}
}

func TestMenu(t *testing.T) {
	var m Menu
	assert.False(t, m.Open())

	m = m.Toggle()
	assert.True(t, m.Open())
	assert.False(t, m.Toggle().Open())
	assert.False(t, m.Select(FormatPDF).Open())
	assert.False(t, m.Dismiss().Open())

	// Closing actions on a closed menu keep it closed.
	assert.False(t, Menu{}.Dismiss().Open())
	assert.False(t, Menu{}.Select(FormatSVG).Open())
}

func TestFitToPage(t *testing.T) {
	const pageW, pageH = 595.28, 841.89

	tests := []struct {
		name       string
		imgW, imgH float64
		want       Placement
	}{
		{
			name: "short image is centered",
			imgW: 1024, imgH: 1024,
			want: Placement{X: 0, Y: (pageH - pageW) / 2, W: pageW, H: pageW},
		},
		{
			name: "tall image overflows from the top",
			imgW: 1000, imgH: 3000,
			want: Placement{X: 0, Y: 0, W: pageW, H: 3 * pageW},
		},
		{
			name: "exact height is not centered",
			imgW: pageW, imgH: pageH,
			want: Placement{X: 0, Y: 0, W: pageW, H: pageH},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitToPage(tt.imgW, tt.imgH, pageW, pageH)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.W, got.W, 1e-9)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
		})
	}
}

func TestExportPaged(t *testing.T) {
	s := &fakeSurface{w: 512, h: 700}
	p := NewPipeline()

	a, err := p.ExportPaged(context.Background(), locatorFor(s), "invoice-preview", "")
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, "invoice.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF-")))
	assert.Equal(t, []float64{CaptureScale}, s.scales)
}

func TestExportPagedOverflow(t *testing.T) {
	s := &fakeSurface{w: 512, h: 4000}
	a, err := NewPipeline(WithScale(1)).ExportPaged(context.Background(), locatorFor(s), "invoice-preview", "long")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "long.pdf", a.Filename)
	pages := bytes.Count(a.Data, []byte("/Type /Page")) - bytes.Count(a.Data, []byte("/Type /Pages"))
	assert.Equal(t, 1, pages)
}

func TestExportPagedCaptureError(t *testing.T) {
	boom := errors.New("boom")
	s := &fakeSurface{w: 10, h: 10, captureErr: boom}

	a, err := NewPipeline().ExportPaged(context.Background(), locatorFor(s), "invoice-preview", "")
	assert.Nil(t, a)
	assert.ErrorIs(t, err, boom)
}

func TestExportVectorVerbatim(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="4" height="4"/></svg>`
	s := &fakeSurface{w: 512, h: 600, markup: "<div>ignored</div>", vector: svg}

	a, err := NewPipeline().ExportVector(context.Background(), locatorFor(s), "invoice-preview", "logo")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "logo.svg", a.Filename)
	assert.Equal(t, svg, string(a.Data))
	assert.Empty(t, s.scales)
}

func TestExportVectorFallback(t *testing.T) {
	s := &fakeSurface{w: 512, h: 640, markup: `<div id="invoice-preview">Invoice</div>`}

	a, err := NewPipeline().ExportVector(context.Background(), locatorFor(s), "invoice-preview", "")
	require.NoError(t, err)
	require.NotNil(t, a)

	out := string(a.Data)
	assert.Equal(t, "invoice.svg", a.Filename)
	assert.Equal(t, "image/svg+xml;charset=utf-8", a.ContentType)
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="512" height="640">`))
	assert.Contains(t, out, `<foreignObject width="100%" height="100%">`)
	assert.Contains(t, out, `<div id="invoice-preview">Invoice</div>`)
	assert.True(t, strings.HasSuffix(out, "</foreignObject></svg>"))
}

func TestExportMissingTarget(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	p := NewPipeline(WithMetrics(m))
	loc := locatorFor(nil)

	for _, f := range []Format{FormatPDF, FormatSVG} {
		a, err := p.Export(context.Background(), loc, f, "invoice-preview", "")
		assert.NoError(t, err)
		assert.Nil(t, a)
	}

	expected := `
# HELP invoicemaker_exports_total Invoice exports by format and outcome.
# TYPE invoicemaker_exports_total counter
invoicemaker_exports_total{format="pdf",outcome="skipped"} 1
invoicemaker_exports_total{format="svg",outcome="skipped"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "invoicemaker_exports_total"))
}

func TestExportWrongTarget(t *testing.T) {
	s := &fakeSurface{w: 10, h: 10}
	a, err := NewPipeline().Export(context.Background(), locatorFor(s), FormatSVG, "elsewhere", "")
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := NewPipeline().Export(context.Background(), locatorFor(&fakeSurface{}), Format("png"), "invoice-preview", "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

type failingSink struct{ err error }

func (s failingSink) Put(context.Context, string, *Artifact) error { return s.err }

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	p := NewPipeline(WithSinks(DirSink{Root: dir}))
	a := &Artifact{Filename: "invoice.svg", ContentType: FormatSVG.ContentType(), Data: []byte("<svg/>")}

	require.NoError(t, p.Publish(context.Background(), "session-1", a))

	data, err := os.ReadFile(filepath.Join(dir, "session-1", "invoice.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	assert.NoError(t, p.Publish(context.Background(), "session-1", nil))
}

func TestPublishError(t *testing.T) {
	boom := errors.New("bucket unavailable")
	p := NewPipeline(WithSinks(failingSink{err: boom}))
	err := p.Publish(context.Background(), "k", &Artifact{Filename: "invoice.pdf"})
	assert.ErrorIs(t, err, boom)
}
