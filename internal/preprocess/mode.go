package preprocess

import (
	"image"
	"image/draw"
)

// Mode is the pixel representation of an image.
type Mode int

const (
	// ModeColor images carry several channels per pixel.
	ModeColor Mode = iota
	// ModeGray images carry a single luminance channel.
	ModeGray
)

func (m Mode) String() string {
	switch m {
	case ModeGray:
		return "gray"
	case ModeColor:
		return "color"
	default:
		return "unknown"
	}
}

// ModeOf reports the pixel mode of img.
func ModeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	default:
		return ModeColor
	}
}

// asGray redraws img into a zero-origin *image.Gray.
func asGray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// keepMode converts out back to a gray image when the source was gray.
// imaging returns *image.NRGBA for every operation.
func keepMode(src, out image.Image) image.Image {
	if ModeOf(src) == ModeGray {
		return asGray(out)
	}
	return out
}
