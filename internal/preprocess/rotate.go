package preprocess

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	apperrors "imageprep-api/internal/errors"
)

// DefaultMaxDegrees bounds the rotation angle used by the pipeline.
const DefaultMaxDegrees = 15.0

// RotateBackground fills the parts of a rotated canvas the image no longer
// covers.
var RotateBackground color.Color = color.Black

// RandomRotate rotates img counter-clockwise by an angle drawn uniformly
// from [-maxDegrees, maxDegrees]. The canvas grows to fit the rotated image,
// so the output may be larger than the input.
func RandomRotate(r Random, img image.Image, maxDegrees float64) (image.Image, error) {
	if maxDegrees < 0 {
		return nil, fmt.Errorf("%w: negative rotation bound %v", apperrors.ErrInvalidInput, maxDegrees)
	}
	angle := -maxDegrees + 2*maxDegrees*r.Float64()
	return Rotate(img, angle), nil
}

// Rotate rotates img counter-clockwise by angle degrees onto an expanded
// canvas filled with RotateBackground.
func Rotate(img image.Image, angle float64) image.Image {
	return keepMode(img, imaging.Rotate(img, angle, RotateBackground))
}
