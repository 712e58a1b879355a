package preprocess

import (
	"fmt"

	apperrors "imageprep-api/internal/errors"
)

// Predict returns one of labels chosen uniformly at random. It stands in for
// a real classifier; callers pass four class names.
func Predict(r Random, labels []string) (string, error) {
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: no labels to choose from", apperrors.ErrInvalidInput)
	}
	return labels[r.IntN(len(labels))], nil
}
