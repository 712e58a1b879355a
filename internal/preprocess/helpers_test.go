package preprocess

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// stubRandom returns fixed values and counts how often it was asked.
type stubRandom struct {
	intVal     int
	floatVal   float64
	intCalls   int
	floatCalls int
}

func (s *stubRandom) IntN(n int) int {
	s.intCalls++
	if s.intVal >= n {
		return n - 1
	}
	return s.intVal
}

func (s *stubRandom) Float64() float64 {
	s.floatCalls++
	return s.floatVal
}

// createInMemoryImage creates a solid-color NRGBA image.
func createInMemoryImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createSplitImage creates an image whose left half is left and right half is right.
func createSplitImage(width, height int, left, right color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}
	return img
}

// createTestJPEG writes a solid-color JPEG into a temp dir and returns its path.
func createTestJPEG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.jpg")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, createInMemoryImage(width, height, c), nil); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func assertSize(t *testing.T, img image.Image, width, height int) {
	t.Helper()
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}
}
