package preprocess

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Normalized is an image whose channel values were scaled from [0,255] to
// [0,1]. Its concrete type is either *NormalizedGray or *NormalizedColor.
type Normalized interface {
	Mode() Mode
	Width() int
	Height() int
}

// NormalizedGray holds one luminance value per pixel, row-major.
type NormalizedGray struct {
	W, H int
	Pix  []float64
}

func (n *NormalizedGray) Mode() Mode  { return ModeGray }
func (n *NormalizedGray) Width() int  { return n.W }
func (n *NormalizedGray) Height() int { return n.H }

// At returns the value at (x, y), relative to the top-left corner.
func (n *NormalizedGray) At(x, y int) float64 {
	return n.Pix[y*n.W+x]
}

// NormalizedColor holds an RGB triple per pixel, row-major.
type NormalizedColor struct {
	W, H int
	Pix  [][3]float64
}

func (n *NormalizedColor) Mode() Mode  { return ModeColor }
func (n *NormalizedColor) Width() int  { return n.W }
func (n *NormalizedColor) Height() int { return n.H }

// At returns the R, G and B values at (x, y), relative to the top-left corner.
func (n *NormalizedColor) At(x, y int) [3]float64 {
	return n.Pix[y*n.W+x]
}

// Normalize divides every channel value of img by 255.
//
// Gray images produce a *NormalizedGray with a scalar per pixel and color
// images a *NormalizedColor with an RGB triple per pixel. Dimensions are
// preserved. Fully transparent color pixels normalize to black.
func Normalize(img image.Image) Normalized {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch ModeOf(img) {
	case ModeGray:
		gray := asGray(img)
		out := &NormalizedGray{W: w, H: h, Pix: make([]float64, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Pix[y*w+x] = float64(gray.GrayAt(x, y).Y) / 255.0
			}
		}
		return out
	default:
		out := &NormalizedColor{W: w, H: h, Pix: make([][3]float64, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				// MakeColor reports false only for alpha 0; the zero color is kept.
				c, _ := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y))
				out.Pix[y*w+x] = [3]float64{c.R, c.G, c.B}
			}
		}
		return out
	}
}
