package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrUnsupportedImage is returned for uploads that are not a supported image type.
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrImageTooLarge is returned for uploads above the configured limit.
	ErrImageTooLarge = errors.New("image too large")

	// ErrNotDataURL is returned when an ImageRef does not carry inline base64 data.
	ErrNotDataURL = errors.New("image reference is not a base64 data URL")
)

// MIMESVG is the media type of vector images.
const MIMESVG = "image/svg+xml"

var supportedImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	MIMESVG,
}

// ImageRef references image data, normally as a data URL
// ("data:image/png;base64,..."). The empty ImageRef means no image.
type ImageRef string

// ImageFromUpload sniffs the content type of an uploaded file and wraps it
// in a data URL. maxBytes <= 0 disables the size check.
func ImageFromUpload(data []byte, maxBytes int64) (ImageRef, error) {
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%d bytes exceeds limit of %d: %w", len(data), maxBytes, ErrImageTooLarge)
	}
	mtype := mimetype.Detect(data)
	for _, t := range supportedImageTypes {
		if mtype.Is(t) {
			return ImageRef("data:" + t + ";base64," + base64.StdEncoding.EncodeToString(data)), nil
		}
	}
	return "", fmt.Errorf("%s: %w", mtype.String(), ErrUnsupportedImage)
}

// IsZero reports whether the reference is empty.
func (r ImageRef) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}

// String returns the reference as usable in an HTML src attribute.
func (r ImageRef) String() string {
	return string(r)
}

// MIMEType returns the media type of a data URL, or "" for other references.
func (r ImageRef) MIMEType() string {
	header, _, ok := r.split()
	if !ok {
		return ""
	}
	mt, _, _ := strings.Cut(header, ";")
	return strings.ToLower(mt)
}

// IsSVG reports whether the reference holds a vector image.
func (r ImageRef) IsSVG() bool {
	return r.MIMEType() == MIMESVG
}

// Bytes decodes the inline payload of a base64 data URL.
func (r ImageRef) Bytes() ([]byte, error) {
	header, payload, ok := r.split()
	if !ok || !strings.HasSuffix(strings.ToLower(header), ";base64") {
		return nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return data, nil
}

func (r ImageRef) split() (header, payload string, ok bool) {
	rest, found := strings.CutPrefix(string(r), "data:")
	if !found {
		return "", "", false
	}
	return strings.Cut(rest, ",")
}
