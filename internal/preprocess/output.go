package preprocess

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "imageprep-api/internal/errors"
)

// OutputDirName is the directory created under the base path.
const OutputDirName = "output"

// EnsureOutputDir creates base/output if it does not exist and returns its
// path. Calling it again on an existing directory succeeds without changes.
func EnsureOutputDir(base string) (string, error) {
	if base == "" {
		base = "."
	}
	dir := filepath.Join(base, OutputDirName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create output directory: %v", apperrors.ErrIOFailure, err)
	}
	return dir, nil
}
