package preprocess

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF format decoder
	"image/jpeg"
	_ "image/png" // Register PNG format decoder
	"io"
	"log"
	"os"

	"github.com/adrium/goheif"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	apperrors "imageprep-api/internal/errors"
)

// DefaultJPEGQuality matches the quality most image libraries use when none
// is given.
const DefaultJPEGQuality = 75

// heifBrands are the ISO-BMFF major brands that identify HEIC/HEIF files.
var heifBrands = []string{"heic", "heix", "hevc", "hevx", "heim", "heis", "mif1", "msf1"}

// IsHeifLike reports whether data starts with an HEIC/HEIF "ftyp" box.
func IsHeifLike(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	brand := string(data[8:12])
	for _, b := range heifBrands {
		if brand == b {
			return true
		}
	}
	return false
}

// Load reads and decodes the image file at path.
// A missing or unreadable file is reported as ErrInvalidInput.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image: %v", apperrors.ErrInvalidInput, err)
	}
	return Decode(data)
}

// Decode decodes JPEG, PNG, GIF and HEIC/HEIF data and applies the EXIF
// orientation when one is present. The header is checked against
// MaxDimension and MaxPixels before any pixels are allocated.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image data", apperrors.ErrInvalidInput)
	}

	heif := IsHeifLike(data)

	var (
		cfg image.Config
		err error
	)
	if heif {
		cfg, err = goheif.DecodeConfig(bytes.NewReader(data))
	} else {
		cfg, _, err = image.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read image header: %v", apperrors.ErrInvalidInput, err)
	}
	if err := checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	var img image.Image
	if heif {
		img, err = goheif.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode HEIC: %v", apperrors.ErrInvalidInput, err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode image: %v", apperrors.ErrInvalidInput, err)
		}
	}

	return applyOrientation(img, data), nil
}

// Reads EXIF orientation and applies correct transformations to the image.
// Images without EXIF data are returned unchanged.
func applyOrientation(img image.Image, data []byte) image.Image {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return img
	}

	orientTag, err := x.Get(exif.Orientation)
	if err != nil {
		return img
	}

	orient, err := orientTag.Int(0)
	if err != nil {
		log.Printf("[Decode] Failed to read orientation value: %v", err)
		return img
	}

	return orientImage(img, orient)
}

// orientImage maps an EXIF orientation value to the transform that undoes it.
// EXIF orientation values: 1=normal, 2=flip-h, 3=180, 4=flip-v, 5=transpose, 6=270, 7=transverse, 8=90
func orientImage(img image.Image, orient int) image.Image {
	switch orient {
	case 1:
		return img
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		log.Printf("[Decode] Unknown orientation value: %d", orient)
		return img
	}
}

// EncodeJPEG writes img to w as JPEG. A quality outside 1..100 falls back to
// DefaultJPEGQuality.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("%w: failed to encode JPEG: %v", apperrors.ErrIOFailure, err)
	}
	return nil
}

// SaveJPEG encodes img as JPEG into the file at path.
func SaveJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", apperrors.ErrIOFailure, path, err)
	}
	if err := EncodeJPEG(f, img, quality); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", apperrors.ErrIOFailure, path, err)
	}
	return nil
}
