package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"imageprep-api/internal/models"
)

// uploadField is the multipart field carrying the image.
const uploadField = "file"

// HandleResize resizes an uploaded image to a random square or to the
// requested width and height.
//
//	@Summary		Resize an image
//	@Description	Upload an image and download a resized JPEG. Without width and height the output is a random square between 28 and 224 pixels.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		image/jpeg
//	@Param			file	formData	file	true	"Image to resize (JPEG, PNG, GIF or HEIC)"
//	@Param			width	formData	int		false	"Target width, requires height"
//	@Param			height	formData	int		false	"Target height, requires width"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/resize [post]
func (h *Handler) HandleResize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	width, err := optionalInt(r, "width", h.maxDimension)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not process image: "+err.Error())
		return
	}
	height, err := optionalInt(r, "height", h.maxDimension)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not process image: "+err.Error())
		return
	}

	res, err := h.imageService.Resize(r.Context(), models.ResizeRequest{
		FileName: name,
		Data:     data,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		writeServiceError(w, "Resize", "Could not process image", err)
		return
	}

	log.Printf("[Resize] Served %s as %dx%d (%d bytes) in %v", name, res.Width, res.Height, len(res.Data), time.Since(start))

	writeImage(w, res)
}

// HandlePreprocess runs the preprocessing pipeline on an uploaded image.
//
//	@Summary		Preprocess an image
//	@Description	Upload an image and download it after random resize, grayscale, random rotation, random flip and blur.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		image/jpeg
//	@Param			file	formData	file	true	"Image to preprocess"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/preprocess [post]
func (h *Handler) HandlePreprocess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res, err := h.imageService.Preprocess(r.Context(), data)
	if err != nil {
		writeServiceError(w, "Preprocess", "Could not process image", err)
		return
	}

	log.Printf("[Preprocess] Served %s as %dx%d in %v", name, res.Width, res.Height, time.Since(start))

	writeImage(w, res)
}

// readUpload enforces POST and returns the uploaded file's name and bytes.
// On failure the error response is already written.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return "", nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Could not process image: expected a multipart upload")
		return "", nil, false
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Could not process image: no file provided in %q", uploadField))
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[Upload] Failed to read %s: %v", header.Filename, err)
		writeError(w, http.StatusBadRequest, "Could not process image: failed to read upload")
		return "", nil, false
	}

	log.Printf("[Upload] Received %s (%d bytes)", header.Filename, len(data))
	return header.Filename, data, true
}

// optionalInt parses a form field in [1, limit]; absent means 0.
func optionalInt(r *http.Request, field string, limit int) (int, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", field)
	}
	if v > limit {
		return 0, fmt.Errorf("%s must not exceed %d", field, limit)
	}
	return v, nil
}
