package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// paint rasterizes l at the scale of f onto an opaque white canvas.
func paint(l layout, f *faces) (*image.RGBA, error) {
	scale := f.scale
	canvas := image.NewRGBA(image.Rect(0, 0,
		int(math.Ceil(l.Width*scale)),
		int(math.Ceil(l.Height*scale)),
	))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, b := range l.Boxes {
		draw.Draw(canvas, scaledRect(b.X, b.Y, b.W, b.H, scale), image.NewUniform(b.Fill), image.Point{}, draw.Over)
	}

	for _, img := range l.Images {
		xdraw.CatmullRom.Scale(canvas, scaledRect(img.X, img.Y, img.W, img.H, scale), img.Img, img.Img.Bounds(), xdraw.Over, nil)
	}

	for _, t := range l.Texts {
		face, err := f.face(t.Style, t.Size)
		if err != nil {
			return nil, err
		}
		width := fromFixed(font.MeasureString(face, t.Text))
		x := t.X * scale
		switch t.Align {
		case alignRight:
			x -= width
		case alignCenter:
			x -= width / 2
		}
		d := font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(t.Color),
			Face: face,
			Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(t.Y * scale)},
		}
		d.DrawString(t.Text)
	}

	return canvas, nil
}

func scaledRect(x, y, w, h, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x*scale)),
		int(math.Round(y*scale)),
		int(math.Round((x+w)*scale)),
		int(math.Round((y+h)*scale)),
	)
}
