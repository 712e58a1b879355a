package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	apperrors "imageprep-api/internal/errors"
	"imageprep-api/internal/models"
	"imageprep-api/internal/preprocess"
)

type ImageService struct {
	random    preprocess.Random
	outputDir string
	quality   int
	options   preprocess.Options
}

func NewImageService(random preprocess.Random, outputBaseDir string, quality int, options preprocess.Options) *ImageService {
	if random == nil {
		random = preprocess.DefaultRandom()
	}
	return &ImageService{
		random:    random,
		outputDir: outputBaseDir,
		quality:   quality,
		options:   options,
	}
}

// Predict picks one of the requested classes. Blank class names are rejected.
func (s *ImageService) Predict(ctx context.Context, req models.PredictRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for i, c := range req.Classes {
		if strings.TrimSpace(c) == "" {
			return "", fmt.Errorf("%w: class%d is empty", apperrors.ErrInvalidInput, i+1)
		}
	}
	return preprocess.Predict(s.random, req.Classes)
}

// Resize decodes the upload, stages it as a JPEG in the output directory and
// returns a resized JPEG. The staged file is removed before returning.
func (s *ImageService) Resize(ctx context.Context, req models.ResizeRequest) (*models.ImageResult, error) {
	img, err := preprocess.Decode(req.Data)
	if err != nil {
		return nil, err
	}

	path, cleanup, err := s.stage(img)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resized, err := preprocess.ResizeFile(s.random, path, req.Width, req.Height)
	if err != nil {
		return nil, err
	}

	log.Printf("[Resize] %s: %dx%d -> %dx%d", req.FileName,
		img.Bounds().Dx(), img.Bounds().Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())

	return s.encode(resized, "resized.jpg")
}

// Preprocess runs the full preprocessing pipeline on an uploaded image.
func (s *ImageService) Preprocess(ctx context.Context, data []byte) (*models.ImageResult, error) {
	img, err := preprocess.Decode(data)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := preprocess.NewPreprocessor(s.random, s.options).Preprocess(img)
	if err != nil {
		return nil, err
	}

	return s.encode(out, "preprocessed.jpg")
}

// stage writes img to a temporary JPEG inside the output directory.
func (s *ImageService) stage(img image.Image) (string, func(), error) {
	dir, err := preprocess.EnsureOutputDir(s.outputDir)
	if err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp(dir, "upload-*.jpg")
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to create temp file: %v", apperrors.ErrIOFailure, err)
	}
	path := f.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[Resize] Failed to remove temp file %s: %v", path, err)
		}
	}

	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: failed to close temp file: %v", apperrors.ErrIOFailure, err)
	}
	if err := preprocess.SaveJPEG(path, img, s.quality); err != nil {
		cleanup()
		return "", nil, err
	}

	return path, cleanup, nil
}

func (s *ImageService) encode(img image.Image, fileName string) (*models.ImageResult, error) {
	var buf bytes.Buffer
	if err := preprocess.EncodeJPEG(&buf, img, s.quality); err != nil {
		return nil, err
	}

	return &models.ImageResult{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		FileName:    fileName,
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
	}, nil
}
