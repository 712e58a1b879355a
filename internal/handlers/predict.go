package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"imageprep-api/internal/models"
)

// classFields are the form fields /predict reads, in order.
var classFields = []string{"class1", "class2", "class3", "class4"}

// HandlePredict returns one of four submitted classes at random.
//
//	@Summary		Predict a class
//	@Description	Pick one of the four submitted class names
//	@Tags			predict
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			class1	formData	string	true	"First class"
//	@Param			class2	formData	string	true	"Second class"
//	@Param			class3	formData	string	true	"Third class"
//	@Param			class4	formData	string	true	"Fourth class"
//	@Success		200		{object}	models.PredictResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/predict [post]
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "Prediction failed: invalid form")
			return
		}
	} else if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Prediction failed: invalid form")
		return
	}

	classes := make([]string, 0, len(classFields))
	for _, field := range classFields {
		value := strings.TrimSpace(r.PostFormValue(field))
		if value == "" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Prediction failed: %s is required", field))
			return
		}
		classes = append(classes, value)
	}

	predicted, err := h.imageService.Predict(r.Context(), models.PredictRequest{Classes: classes})
	if err != nil {
		writeServiceError(w, "Predict", "Prediction failed", err)
		return
	}

	log.Printf("[Predict] %v -> %s in %v", classes, predicted, time.Since(start))

	writeJSON(w, http.StatusOK, models.PredictResponse{PredictedClass: predicted})
}
