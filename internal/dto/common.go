package dto

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse carries the hosted URL of an uploaded image.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
