package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// OCRStatus describes the Tesseract engine as seen at runtime.
type OCRStatus struct {
	Available      bool     `json:"available"`
	Version        string   `json:"version,omitempty"`
	TessdataPrefix string   `json:"tessdata_prefix,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string    `json:"status"`
	Service string    `json:"service"`
	OCR     OCRStatus `json:"ocr"`
}
