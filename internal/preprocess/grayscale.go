package preprocess

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// ToGrayscale converts img to a single-channel luminance image.
// A gray input is copied unchanged, so applying it twice equals applying it
// once.
func ToGrayscale(img image.Image) *image.Gray {
	if ModeOf(img) == ModeGray {
		return asGray(img)
	}
	// bild returns a gray-valued RGBA; collapse it to a single channel.
	return asGray(effect.Grayscale(img))
}
