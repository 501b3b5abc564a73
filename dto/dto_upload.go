package dto

// UploadResponse is returned by PUT /post-image. FilePath is relative;
// clients prefix their base URL.
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}
