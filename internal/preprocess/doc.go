// Package preprocess provides the image operations behind the prediction and
// resize endpoints.
//
// Every operation takes an image.Image and returns a new value; inputs are
// never modified. Operations that draw random numbers take a Random so
// callers can force specific branches. DefaultRandom is safe for concurrent
// use.
//
// # Pixel Modes
//
// Images are classified as either single-channel (ModeGray) or multi-channel
// (ModeColor). Grayscale conversion always yields *image.Gray, and the
// geometric operations (rotate, flip, blur) keep a gray input gray.
//
// # Pipeline
//
// Preprocessor.Preprocess applies, in order: random square resize, grayscale,
// random rotation, random horizontal flip and Gaussian blur. The first
// failing stage aborts the run.
//
// # Errors
//
// Malformed input is reported as errors.ErrInvalidInput and filesystem or
// encoding problems as errors.ErrIOFailure, both from internal/errors.
package preprocess
