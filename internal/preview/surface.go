// Package preview renders an invoice into the visual surface that mirrors the
// editing form: HTML markup for display, and a laid-out raster for export.
package preview

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/xml"
	"errors"
	"fmt"
	"html/template"
	"image"
	"io"
	"log/slog"
	"math"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/mmynk/invoicemaker/internal/calculator"
	"github.com/mmynk/invoicemaker/internal/models"
)

// TargetID identifies the preview region for export.
const TargetID = "invoice-preview"

//go:embed templates/preview.html
var previewHTML string

var previewTemplate = template.Must(template.New("preview").Funcs(template.FuncMap{
	// Image refs are data URLs produced from uploads, which html/template
	// would otherwise replace with #ZgotmplZ.
	"src": func(ref models.ImageRef) template.URL { return template.URL(ref.String()) },
}).Parse(previewHTML))

// Surface is a rendered preview of one invoice value.
type Surface struct {
	invoice models.Invoice
	totals  calculator.Totals
	markup  string
	vector  string
	layout  layout
}

type templateData struct {
	view
	TargetID string
	Width    int
}

// Render lays out inv and produces its HTML markup.
func Render(inv models.Invoice) (*Surface, error) {
	totals := calculator.ComputeTotals(inv)
	v := newView(inv, totals)

	vector, err := vectorLogo(inv.From.Logo)
	if err != nil {
		slog.Debug("SVG logo not exportable as vector", "error", err)
	}

	var buf bytes.Buffer
	err = previewTemplate.Execute(&buf, templateData{
		view:     v,
		TargetID: TargetID,
		Width:    Width,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render preview markup: %w", err)
	}

	f, err := newFaces(1)
	if err != nil {
		return nil, err
	}
	defer f.close()

	imgs := images{
		logo:      decodeRaster(inv.From.Logo),
		signature: decodeRaster(v.SignatureImage),
	}

	return &Surface{
		invoice: inv,
		totals:  totals,
		markup:  buf.String(),
		vector:  vector,
		layout:  buildLayout(v, imgs, f),
	}, nil
}

// Invoice returns the document this surface was rendered from.
func (s *Surface) Invoice() models.Invoice {
	return s.invoice
}

// Totals returns the totals shown on the surface.
func (s *Surface) Totals() calculator.Totals {
	return s.totals
}

// Markup returns the HTML of the preview.
func (s *Surface) Markup() string {
	return s.markup
}

// Size returns the pixel dimensions of the preview.
func (s *Surface) Size() (width, height int) {
	return int(math.Ceil(s.layout.Width)), int(math.Ceil(s.layout.Height))
}

// VectorGraphic returns the markup of an SVG embedded in the preview.
func (s *Surface) VectorGraphic() (string, bool) {
	return s.vector, s.vector != ""
}

// Capture draws the preview into a bitmap scaled by scale.
func (s *Surface) Capture(ctx context.Context, scale float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid capture scale %v", scale)
	}
	f, err := newFaces(scale)
	if err != nil {
		return nil, err
	}
	defer f.close()
	img, err := paint(s.layout, f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func decodeRaster(ref models.ImageRef) image.Image {
	if ref.IsZero() || ref.IsSVG() {
		return nil
	}
	data, err := ref.Bytes()
	if err != nil {
		slog.Debug("Image is not inline data, skipping raster", "error", err)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Debug("Failed to decode image", "mime", ref.MIMEType(), "error", err)
		return nil
	}
	return img
}

var errNotSVG = errors.New("document root is not <svg>")

// vectorLogo returns the SVG source of logo for vector export. The source is
// never placed into the preview markup, which references the logo as an image.
func vectorLogo(logo models.ImageRef) (string, error) {
	if !logo.IsSVG() {
		return "", nil
	}
	data, err := logo.Bytes()
	if err != nil {
		return "", err
	}
	if err := checkSVG(data); err != nil {
		return "", err
	}
	return stripProlog(string(data)), nil
}

// checkSVG requires a well-formed XML document whose root element is svg.
func checkSVG(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	root := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("invalid SVG: %w", err)
		}
		if el, ok := tok.(xml.StartElement); ok && !root {
			if el.Name.Local != "svg" {
				return errNotSVG
			}
			root = true
		}
	}
	if !root {
		return errNotSVG
	}
	return nil
}

var prologPattern = regexp.MustCompile(`(?s)^\s*(<\?xml.*?\?>\s*)?(<!DOCTYPE[^>]*>\s*)?`)

// stripProlog removes the XML declaration and doctype so the SVG can be
// embedded into other SVG documents.
func stripProlog(svg string) string {
	return strings.TrimSpace(prologPattern.ReplaceAllString(svg, ""))
}
