package preview

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
)

var parseFonts = sync.OnceValues(func() (map[fontStyle]*opentype.Font, error) {
	sources := map[fontStyle][]byte{
		styleRegular: goregular.TTF,
		styleBold:    gobold.TTF,
		styleItalic:  goitalic.TTF,
	}
	out := make(map[fontStyle]*opentype.Font, len(sources))
	for style, ttf := range sources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		out[style] = f
	}
	return out, nil
})

type faceKey struct {
	style fontStyle
	size  float64
}

// faces caches font faces at one scale. Faces are not safe for concurrent
// use, so every layout pass and every capture owns its own set.
type faces struct {
	scale float64
	fonts map[fontStyle]*opentype.Font
	cache map[faceKey]font.Face
}

func newFaces(scale float64) (*faces, error) {
	fonts, err := parseFonts()
	if err != nil {
		return nil, err
	}
	return &faces{scale: scale, fonts: fonts, cache: make(map[faceKey]font.Face)}, nil
}

func (f *faces) face(style fontStyle, size float64) (font.Face, error) {
	key := faceKey{style: style, size: size}
	if face, ok := f.cache[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.fonts[style], &opentype.FaceOptions{
		Size:    size * f.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	f.cache[key] = face
	return face, nil
}

// measure returns the advance width of s in unscaled pixels.
func (f *faces) measure(style fontStyle, size float64, s string) float64 {
	face, err := f.face(style, size)
	if err != nil {
		return 0
	}
	return fromFixed(font.MeasureString(face, s)) / f.scale
}

func (f *faces) close() {
	for _, face := range f.cache {
		face.Close()
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
