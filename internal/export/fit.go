package export

// Placement is where an image goes on a page, in page units.
type Placement struct {
	X, Y, W, H float64
}

// FitToPage scales an image of imgW x imgH to the page width, keeping its
// aspect ratio. An image shorter than the page is centered vertically. A
// taller one is placed at the top and runs off the bottom edge.
func FitToPage(imgW, imgH, pageW, pageH float64) Placement {
	if imgW <= 0 || imgH <= 0 {
		return Placement{W: pageW}
	}
	h := imgH * pageW / imgW
	p := Placement{W: pageW, H: h}
	if h < pageH {
		p.Y = (pageH - h) / 2
	}
	return p
}
