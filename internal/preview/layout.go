package preview

import (
	"image"
	"image/color"
	"strings"
)

// Width is the fixed pixel width of the preview, matching a max-w-lg card.
const Width = 512

const (
	padding     = 32.0
	logoHeight  = 48.0
	logoMaxW    = 160.0
	noLogoWidth = 112.0

	colQtyRight    = 300.0
	colRateRight   = 380.0
	colAmountRight = Width - padding - 12
	descMaxWidth   = 200.0
)

var (
	colorText   = color.RGBA{0x0f, 0x17, 0x2a, 0xff}
	colorMuted  = color.RGBA{0x64, 0x74, 0x8b, 0xff}
	colorRule   = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	colorHeadBg = color.RGBA{0xf1, 0xf5, 0xf9, 0xff}
	colorLogoBg = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
	colorSign   = color.RGBA{0x5b, 0x4b, 0x19, 0xff}
	colorLink   = color.RGBA{0x1d, 0x4e, 0xd8, 0xff}
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
	alignCenter
)

// textRun is one line of text. X is the left edge, right edge or centre
// depending on Align; Y is the baseline.
type textRun struct {
	Text  string
	X, Y  float64
	Size  float64
	Style fontStyle
	Align alignment
	Color color.Color
}

type box struct {
	X, Y, W, H float64
	Fill       color.Color
}

type imageBox struct {
	X, Y, W, H float64
	Img        image.Image
}

// layout is the positioned content of a preview in unscaled pixels.
type layout struct {
	Width, Height float64
	Texts         []textRun
	Boxes         []box
	Images        []imageBox
}

type layoutBuilder struct {
	faces *faces
	out   layout
	y     float64
}

func (b *layoutBuilder) text(s string, x, y, size float64, style fontStyle, align alignment, c color.Color) {
	if s == "" {
		return
	}
	b.out.Texts = append(b.out.Texts, textRun{Text: s, X: x, Y: y, Size: size, Style: style, Align: align, Color: c})
}

func (b *layoutBuilder) rule(y float64) {
	b.out.Boxes = append(b.out.Boxes, box{X: padding, Y: y, W: Width - 2*padding, H: 1, Fill: colorRule})
}

// fit shortens s with an ellipsis until it is at most maxW wide.
func (b *layoutBuilder) fit(s string, size float64, style fontStyle, maxW float64) string {
	if b.faces.measure(style, size, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		candidate := strings.TrimRight(string(r), " ") + "…"
		if b.faces.measure(style, size, candidate) <= maxW {
			return candidate
		}
	}
	return ""
}

// wrap breaks s into lines at most maxW wide, on word boundaries.
func (b *layoutBuilder) wrap(s string, size float64, style fontStyle, maxW float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if b.faces.measure(style, size, line+" "+w) > maxW {
				lines = append(lines, b.fit(line, size, style, maxW))
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, b.fit(line, size, style, maxW))
	}
	return lines
}

// images holds the decoded rasters referenced by the view.
type images struct {
	logo      image.Image
	signature image.Image
}

func buildLayout(v view, imgs images, f *faces) layout {
	b := &layoutBuilder{faces: f, out: layout{Width: Width}, y: padding}

	b.header(v, imgs)
	b.parties(v)
	b.table(v)
	b.payment(v)
	b.notes(v)
	b.signature(v, imgs)
	b.footer(v)

	b.out.Height = b.y + padding
	return b.out
}

func (b *layoutBuilder) header(v view, imgs images) {
	top := b.y
	b.text(v.Title, padding, top+22, 24, styleBold, alignLeft, colorText)

	meta := v.Number
	if v.PO != "" {
		meta += "    " + v.PO
	}
	b.text(meta, padding, top+42, 11, styleRegular, alignLeft, colorMuted)
	b.text(v.IssueLine+"   "+v.DueLine, padding, top+58, 11, styleRegular, alignLeft, colorMuted)

	right := Width - padding
	switch {
	case imgs.logo != nil:
		bounds := imgs.logo.Bounds()
		w := logoHeight * float64(bounds.Dx()) / float64(max(bounds.Dy(), 1))
		w = min(w, logoMaxW)
		b.out.Images = append(b.out.Images, imageBox{X: right - w, Y: top, W: w, H: logoHeight, Img: imgs.logo})
	case v.Logo.IsZero():
		b.out.Boxes = append(b.out.Boxes, box{X: right - noLogoWidth, Y: top, W: noLogoWidth, H: logoHeight, Fill: colorLogoBg})
		b.text(v.NoLogo, right-noLogoWidth/2, top+logoHeight/2+4, 10, styleBold, alignCenter, colorMuted)
	default:
		// Vector or remote logos have no raster; keep the space.
		b.out.Boxes = append(b.out.Boxes, box{X: right - noLogoWidth, Y: top, W: noLogoWidth, H: logoHeight, Fill: colorLogoBg})
	}

	b.y = max(top+64, top+logoHeight) + 24
	b.rule(b.y)
	b.y += 16
}

func (b *layoutBuilder) parties(v view) {
	top := b.y
	column := func(x float64, label string, p partyView) float64 {
		y := top + 12
		b.text(strings.ToUpper(label), x, y, 11, styleBold, alignLeft, colorMuted)
		y += 16
		b.text(b.fit(p.Name, 11, styleBold, Width/2-padding-8), x, y, 11, styleBold, alignLeft, colorText)
		for _, line := range p.Lines {
			y += 15
			b.text(b.fit(line, 11, styleRegular, Width/2-padding-8), x, y, 11, styleRegular, alignLeft, colorText)
		}
		return y
	}
	left := column(padding, v.FromLabel, v.From)
	right := column(Width/2+8, v.BillToLabel, v.To)
	b.y = max(left, right) + 8
}

func (b *layoutBuilder) table(v view) {
	b.y += 24
	b.out.Boxes = append(b.out.Boxes, box{X: padding, Y: b.y, W: Width - 2*padding, H: 28, Fill: colorHeadBg})
	base := b.y + 19
	b.text(v.HeadDescription, padding+12, base, 13, styleBold, alignLeft, colorText)
	b.text(v.HeadQuantity, colQtyRight, base, 13, styleBold, alignRight, colorText)
	b.text(v.HeadRate, colRateRight, base, 13, styleBold, alignRight, colorText)
	b.text(v.HeadAmount, colAmountRight, base, 13, styleBold, alignRight, colorText)
	b.y += 28

	if len(v.Rows) == 0 {
		b.y += 32
		b.text(v.NoItems, Width/2, b.y-12, 13, styleItalic, alignCenter, colorMuted)
	}
	for _, row := range v.Rows {
		b.y += 28
		rowBase := b.y - 9
		b.text(b.fit(row.Description, 13, styleRegular, descMaxWidth), padding+12, rowBase, 13, styleRegular, alignLeft, colorText)
		b.text(row.Quantity, colQtyRight, rowBase, 13, styleRegular, alignRight, colorText)
		b.text(row.Rate, colRateRight, rowBase, 13, styleRegular, alignRight, colorText)
		b.text(row.Amount, colAmountRight, rowBase, 13, styleRegular, alignRight, colorText)
	}
	b.y += 4
	b.rule(b.y)

	for _, t := range v.Totals {
		size, style := 13.0, styleRegular
		if t.Emphasis {
			size, style = 15, styleBold
		}
		b.y += 28
		b.text(t.Label, colRateRight, b.y-9, 13, style, alignRight, colorText)
		b.text(t.Value, colAmountRight, b.y-9, size, style, alignRight, colorText)
	}
}

func (b *layoutBuilder) labeled(label, value string, size float64) {
	b.y += size + 8
	prefix := label + ": "
	b.text(prefix, padding, b.y, size, styleBold, alignLeft, colorText)
	x := padding + b.faces.measure(styleBold, size, prefix)
	b.text(b.fit(value, size, styleRegular, Width-padding-x), x, b.y, size, styleRegular, alignLeft, colorText)
}

func (b *layoutBuilder) payment(v view) {
	b.y += 16
	b.labeled(v.PaymentDueLabel, v.PaymentDue, 12)
	b.labeled(v.PaymentMethodsLabel, v.PaymentMethods, 12)
	if v.LatePenalty != "" {
		b.labeled(v.LatePenaltyLabel, v.LatePenalty, 11)
	}
	if v.OnlinePayment != "" {
		b.y += 24
		b.text(v.PayOnlineLabel+" →", padding, b.y, 12, styleBold, alignLeft, colorLink)
	}
}

func (b *layoutBuilder) notes(v view) {
	if v.Notes == "" {
		return
	}
	b.y += 12
	b.rule(b.y)
	b.y += 20
	b.text(v.NotesLabel+":", padding, b.y, 12, styleBold, alignLeft, colorText)
	for _, line := range b.wrap(v.Notes, 12, styleRegular, Width-2*padding) {
		b.y += 16
		b.text(line, padding, b.y, 12, styleRegular, alignLeft, colorMuted)
	}
}

func (b *layoutBuilder) signature(v view, imgs images) {
	if !v.HasSignature() {
		return
	}
	b.y += 24
	b.text(v.SignatureLabel, padding, b.y, 11, styleRegular, alignLeft, colorMuted)
	switch {
	case v.SignatureText != "":
		b.y += 34
		b.text(b.fit(v.SignatureText, 28, styleItalic, Width-2*padding), padding, b.y, 28, styleItalic, alignLeft, colorSign)
	case imgs.signature != nil:
		bounds := imgs.signature.Bounds()
		w := logoHeight * float64(bounds.Dx()) / float64(max(bounds.Dy(), 1))
		w = min(w, Width-2*padding)
		b.out.Images = append(b.out.Images, imageBox{X: padding, Y: b.y + 6, W: w, H: logoHeight, Img: imgs.signature})
		b.y += 6 + logoHeight
	}
}

func (b *layoutBuilder) footer(v view) {
	b.y += 24
	b.rule(b.y)
	b.y += 8
	lines := []struct {
		text  string
		size  float64
		style fontStyle
	}{
		{v.ThankYou, 12, styleRegular},
		{v.Slogan, 11, styleItalic},
		{v.Copyright, 10, styleRegular},
	}
	for _, l := range lines {
		if l.text == "" {
			continue
		}
		b.y += l.size + 6
		b.text(b.fit(l.text, l.size, l.style, Width-2*padding), Width/2, b.y, l.size, l.style, alignCenter, colorMuted)
	}
}
