package preprocess

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	apperrors "imageprep-api/internal/errors"
)

// DefaultBlurRadius is the Gaussian sigma used by the pipeline.
const DefaultBlurRadius = 2.0

// Blur applies a Gaussian blur with the given radius as sigma. The output
// has the same dimensions as img. A radius of zero returns a plain copy.
func Blur(img image.Image, radius float64) (image.Image, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: negative blur radius %v", apperrors.ErrInvalidInput, radius)
	}
	return keepMode(img, imaging.Blur(img, radius)), nil
}
