package preprocess

import (
	"errors"
	"image/color"
	"testing"

	apperrors "imageprep-api/internal/errors"
)

func TestResize_ExplicitDimensions(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	out, err := Resize(DefaultRandom(), img, 50, 60)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	assertSize(t, out, 50, 60)
}

func TestResize_RandomDimensions(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)
	r := &stubRandom{intVal: 72}

	out, err := Resize(r, img, 0, 0)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	assertSize(t, out, 100, 100)
	if r.intCalls != 1 {
		t.Errorf("IntN calls: got %d, want 1", r.intCalls)
	}
}

func TestResize_RandomSquareWithinBounds(t *testing.T) {
	img := createInMemoryImage(40, 30, color.White)
	r := NewSeededRandom(42)

	for i := 0; i < 20; i++ {
		out, err := Resize(r, img, 0, 0)
		if err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		b := out.Bounds()
		if b.Dx() != b.Dy() {
			t.Fatalf("not square: %dx%d", b.Dx(), b.Dy())
		}
		if b.Dx() < MinRandomSide || b.Dx() > MaxRandomSide {
			t.Fatalf("side %d outside [%d,%d]", b.Dx(), MinRandomSide, MaxRandomSide)
		}
	}
}

func TestRandomSide_Extremes(t *testing.T) {
	if got := RandomSide(&stubRandom{intVal: 0}); got != MinRandomSide {
		t.Errorf("low draw: got %d, want %d", got, MinRandomSide)
	}
	if got := RandomSide(&stubRandom{intVal: 1 << 20}); got != MaxRandomSide {
		t.Errorf("high draw: got %d, want %d", got, MaxRandomSide)
	}
}

func TestResize_InvalidDimensions(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	tests := []struct {
		name          string
		width, height int
	}{
		{"width only", 50, 0},
		{"height only", 0, 50},
		{"negative width", -1, 10},
		{"negative height", 10, -1},
		{"too wide", MaxDimension + 1, 10},
		{"too tall", 10, MaxDimension + 1},
		{"too many pixels", 60000, 60000},
		{"area over limit", MaxDimension, MaxDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resize(DefaultRandom(), img, tt.width, tt.height)
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestResize_KeepsGrayMode(t *testing.T) {
	gray := ToGrayscale(createInMemoryImage(20, 20, color.White))

	out, err := Resize(DefaultRandom(), gray, 10, 10)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if ModeOf(out) != ModeGray {
		t.Errorf("mode: got %s, want gray", ModeOf(out))
	}
}

func TestResizeFile(t *testing.T) {
	path := createTestJPEG(t, 100, 100, color.White)

	out, err := ResizeFile(DefaultRandom(), path, 50, 60)
	if err != nil {
		t.Fatalf("ResizeFile failed: %v", err)
	}
	assertSize(t, out, 50, 60)
}

func TestResizeFile_Missing(t *testing.T) {
	_, err := ResizeFile(DefaultRandom(), "/nonexistent/image.jpg", 10, 10)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestResize_AtDimensionLimit(t *testing.T) {
	img := createInMemoryImage(4, 4, color.White)

	out, err := Resize(DefaultRandom(), img, MaxDimension, 1)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	assertSize(t, out, MaxDimension, 1)
}
