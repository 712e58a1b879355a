package preprocess

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	apperrors "imageprep-api/internal/errors"
)

// Bounds for the side of a randomly sized square, both inclusive.
const (
	MinRandomSide = 28
	MaxRandomSide = 224
)

// Limits on image size, applied to decoded inputs and to resize targets.
const (
	MaxDimension = 8192
	MaxPixels    = 50_000_000
)

// checkSize rejects dimensions beyond MaxDimension or MaxPixels.
func checkSize(width, height int) error {
	if width > MaxDimension || height > MaxDimension || width*height > MaxPixels {
		return fmt.Errorf("%w: %dx%d exceeds the %d pixel side or %d pixel area limit",
			apperrors.ErrInvalidInput, width, height, MaxDimension, MaxPixels)
	}
	return nil
}

// Resize returns a Lanczos-resampled copy of img.
//
// A zero width or height means "not given". With both omitted, a single side
// is drawn uniformly from [MinRandomSide, MaxRandomSide] and used for both,
// yielding a square. Giving only one of the two, a negative value, or a size
// beyond MaxDimension or MaxPixels is ErrInvalidInput.
func Resize(r Random, img image.Image, width, height int) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", apperrors.ErrInvalidInput)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", apperrors.ErrInvalidInput, width, height)
	}
	if (width == 0) != (height == 0) {
		return nil, fmt.Errorf("%w: width and height must be given together", apperrors.ErrInvalidInput)
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	if width == 0 {
		side := RandomSide(r)
		width, height = side, side
	}

	return keepMode(img, imaging.Resize(img, width, height, imaging.Lanczos)), nil
}

// ResizeFile loads the image at path and resizes it with Resize.
func ResizeFile(r Random, path string, width, height int) (image.Image, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Resize(r, img, width, height)
}

// RandomSide draws a side length in [MinRandomSide, MaxRandomSide].
func RandomSide(r Random) int {
	return MinRandomSide + r.IntN(MaxRandomSide-MinRandomSide+1)
}
