package preprocess

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	apperrors "imageprep-api/internal/errors"
)

// DefaultFlipProbability is the chance the pipeline mirrors an image.
const DefaultFlipProbability = 0.5

// RandomFlip mirrors img horizontally with probability p.
//
// Exactly one r.Float64() draw is taken. A draw of at least 1-p flips;
// anything lower returns img itself, not a copy.
func RandomFlip(r Random, img image.Image, p float64) (image.Image, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: flip probability %v outside [0,1]", apperrors.ErrInvalidInput, p)
	}
	if r.Float64() >= 1-p {
		return Mirror(img), nil
	}
	return img, nil
}

// Mirror returns a horizontally flipped copy of img.
func Mirror(img image.Image) image.Image {
	return keepMode(img, imaging.FlipH(img))
}
