package preprocess

import (
	"errors"
	"image"
	"image/color"
	"testing"

	apperrors "imageprep-api/internal/errors"
)

func TestRandomRotate(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)
	r := &stubRandom{floatVal: 0.9} // 12 degrees

	out, err := RandomRotate(r, img, DefaultMaxDegrees)
	if err != nil {
		t.Fatalf("RandomRotate failed: %v", err)
	}
	if r.floatCalls != 1 {
		t.Errorf("Float64 calls: got %d, want 1", r.floatCalls)
	}
	b := out.Bounds()
	if b.Dx() <= 100 || b.Dy() <= 100 {
		t.Errorf("canvas not expanded: got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRandomRotate_ZeroAngleKeepsSize(t *testing.T) {
	img := createInMemoryImage(40, 30, color.White)

	out, err := RandomRotate(&stubRandom{floatVal: 0.5}, img, DefaultMaxDegrees)
	if err != nil {
		t.Fatalf("RandomRotate failed: %v", err)
	}
	assertSize(t, out, 40, 30)
}

func TestRandomRotate_KeepsGrayMode(t *testing.T) {
	gray := ToGrayscale(createInMemoryImage(20, 20, color.White))

	out, err := RandomRotate(&stubRandom{floatVal: 0.1}, gray, DefaultMaxDegrees)
	if err != nil {
		t.Fatalf("RandomRotate failed: %v", err)
	}
	if ModeOf(out) != ModeGray {
		t.Errorf("mode: got %s, want gray", ModeOf(out))
	}
}

func TestRandomRotate_NegativeBound(t *testing.T) {
	_, err := RandomRotate(DefaultRandom(), createInMemoryImage(4, 4, color.White), -1)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestRandomFlip_Flips(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	img := createSplitImage(10, 10, red, blue)
	r := &stubRandom{floatVal: 0.9}

	out, err := RandomFlip(r, img, DefaultFlipProbability)
	if err != nil {
		t.Fatalf("RandomFlip failed: %v", err)
	}
	if r.floatCalls != 1 {
		t.Errorf("Float64 calls: got %d, want 1", r.floatCalls)
	}

	gr, _, gb, _ := out.At(0, 0).RGBA()
	if gr != 0 || gb != 0xffff {
		t.Errorf("left pixel after flip: got r=%d b=%d, want blue", gr>>8, gb>>8)
	}
}

func TestRandomFlip_NoFlip(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	out, err := RandomFlip(&stubRandom{floatVal: 0.1}, img, DefaultFlipProbability)
	if err != nil {
		t.Fatalf("RandomFlip failed: %v", err)
	}
	if out != image.Image(img) {
		t.Error("expected the input image to be returned unchanged")
	}
}

func TestRandomFlip_ProbabilityBounds(t *testing.T) {
	img := createInMemoryImage(4, 4, color.White)

	always, _ := RandomFlip(&stubRandom{floatVal: 0}, img, 1)
	if always == image.Image(img) {
		t.Error("p=1 should always flip")
	}
	never, _ := RandomFlip(&stubRandom{floatVal: 0.999}, img, 0)
	if never != image.Image(img) {
		t.Error("p=0 should never flip")
	}

	for _, p := range []float64{-0.1, 1.1} {
		if _, err := RandomFlip(DefaultRandom(), img, p); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("p=%v: got %v, want ErrInvalidInput", p, err)
		}
	}
}

func TestBlur(t *testing.T) {
	img := createSplitImage(20, 20, color.Black, color.White)

	out, err := Blur(img, DefaultBlurRadius)
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}
	assertSize(t, out, 20, 20)

	r, _, _, _ := out.At(9, 10).RGBA()
	if r == 0 {
		t.Error("pixel next to the edge was not smoothed")
	}
}

func TestBlur_KeepsGrayMode(t *testing.T) {
	gray := ToGrayscale(createInMemoryImage(12, 12, color.White))

	out, err := Blur(gray, 1)
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}
	if ModeOf(out) != ModeGray {
		t.Errorf("mode: got %s, want gray", ModeOf(out))
	}
	assertSize(t, out, 12, 12)
}

func TestBlur_NegativeRadius(t *testing.T) {
	_, err := Blur(createInMemoryImage(4, 4, color.White), -2)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}
