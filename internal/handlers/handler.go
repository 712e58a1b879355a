package handlers

import "imageprep-api/internal/services"

type Handler struct {
	imageService   *services.ImageService
	maxUploadBytes int64
	maxDimension   int
}

func New(imageService *services.ImageService, maxUploadBytes int64, maxDimension int) *Handler {
	return &Handler{
		imageService:   imageService,
		maxUploadBytes: maxUploadBytes,
		maxDimension:   maxDimension,
	}
}
