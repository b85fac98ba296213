// Package export turns a rendered preview surface into a downloadable
// artifact: a single-page A4 PDF built from a bitmap capture, or an SVG.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrUnknownFormat is returned for a format other than pdf or svg.
var ErrUnknownFormat = errors.New("unknown export format")

// Surface is a rendered region that can be captured or serialized.
type Surface interface {
	// Markup returns the serialized markup of the region.
	Markup() string
	// Size returns the rendered pixel dimensions.
	Size() (width, height int)
	// Capture draws the region into a bitmap at scale times its size.
	Capture(ctx context.Context, scale float64) (image.Image, error)
	// VectorGraphic returns the markup of the first SVG inside the region.
	VectorGraphic() (string, bool)
}

// Locator finds a rendered surface by target id.
type Locator interface {
	Locate(targetID string) (Surface, bool)
}

// LocatorFunc adapts a function to a Locator.
type LocatorFunc func(targetID string) (Surface, bool)

func (f LocatorFunc) Locate(targetID string) (Surface, bool) {
	return f(targetID)
}

// Format is an export file format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the media type of artifacts in this format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatSVG:
		return "image/svg+xml;charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// DefaultFilename is used when no filename is given.
const DefaultFilename = "invoice"

// Filename returns name with the extension of f appended when missing.
func (f Format) Filename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultFilename
	}
	if !strings.HasSuffix(strings.ToLower(name), f.Extension()) {
		name += f.Extension()
	}
	return name
}

// Artifact is a produced export file.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}
