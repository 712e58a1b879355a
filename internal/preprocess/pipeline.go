package preprocess

import (
	"fmt"
	"image"
)

// StageFunc is a single pipeline step.
type StageFunc func(image.Image) (image.Image, error)

// Preprocessor runs the fixed resize, grayscale, rotate, flip, blur
// sequence. Each field may be replaced, but the order never changes.
type Preprocessor struct {
	Resize    StageFunc
	Grayscale StageFunc
	Rotate    StageFunc
	Flip      StageFunc
	Blur      StageFunc
}

// Options tunes the default stages built by NewPreprocessor.
type Options struct {
	MaxDegrees      float64
	FlipProbability float64
	BlurRadius      float64
}

// DefaultOptions returns the stage parameters used by the pipeline when
// nothing else is configured.
func DefaultOptions() Options {
	return Options{
		MaxDegrees:      DefaultMaxDegrees,
		FlipProbability: DefaultFlipProbability,
		BlurRadius:      DefaultBlurRadius,
	}
}

// NewPreprocessor wires the package operations as pipeline stages, all
// drawing from r.
func NewPreprocessor(r Random, opts Options) *Preprocessor {
	return &Preprocessor{
		Resize: func(img image.Image) (image.Image, error) {
			return Resize(r, img, 0, 0)
		},
		Grayscale: func(img image.Image) (image.Image, error) {
			return ToGrayscale(img), nil
		},
		Rotate: func(img image.Image) (image.Image, error) {
			return RandomRotate(r, img, opts.MaxDegrees)
		},
		Flip: func(img image.Image) (image.Image, error) {
			return RandomFlip(r, img, opts.FlipProbability)
		},
		Blur: func(img image.Image) (image.Image, error) {
			return Blur(img, opts.BlurRadius)
		},
	}
}

// Preprocess runs every stage once, in order, and returns the final image.
// The first failing stage stops the run.
func (p *Preprocessor) Preprocess(img image.Image) (image.Image, error) {
	stages := []struct {
		name string
		fn   StageFunc
	}{
		{"resize", p.Resize},
		{"grayscale", p.Grayscale},
		{"rotate", p.Rotate},
		{"flip", p.Flip},
		{"blur", p.Blur},
	}

	out := img
	for _, s := range stages {
		if s.fn == nil {
			return nil, fmt.Errorf("%s stage is not configured", s.name)
		}
		next, err := s.fn(out)
		if err != nil {
			return nil, fmt.Errorf("%s stage failed: %w", s.name, err)
		}
		out = next
	}
	return out, nil
}

// PreprocessFile loads the image at path and runs Preprocess on it.
func (p *Preprocessor) PreprocessFile(path string) (image.Image, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return p.Preprocess(img)
}

// Preprocess runs the default pipeline with DefaultOptions.
func Preprocess(r Random, img image.Image) (image.Image, error) {
	return NewPreprocessor(r, DefaultOptions()).Preprocess(img)
}
