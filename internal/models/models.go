package models

// PredictRequest carries the four candidate classes of a /predict call.
type PredictRequest struct {
	Classes []string
}

type PredictResponse struct {
	PredictedClass string `json:"predicted_class"`
}

// ResizeRequest describes an uploaded image and the requested size.
// Zero Width and Height ask for a random square.
type ResizeRequest struct {
	FileName string
	Data     []byte
	Width    int
	Height   int
}

// ImageResult is an encoded image ready to be streamed back to the caller.
type ImageResult struct {
	Data        []byte
	ContentType string
	FileName    string
	Width       int
	Height      int
}

type ErrorResponse struct {
	Error string `json:"error"`
}
