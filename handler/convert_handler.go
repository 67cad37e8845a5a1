package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okushnir/ocr2pdf/client"
	"github.com/okushnir/ocr2pdf/dto"
)

// Converter turns an uploaded image or raw text into a PDF file and returns
// its path. The handler owns the returned file.
type Converter interface {
	ImageToPDF(ctx context.Context, imagePath string) (string, error)
	TextToPDF(ctx context.Context, text string) (string, error)
}

// EngineProber reports OCR engine availability for health and debug output.
type EngineProber interface {
	Status() client.EngineStatus
}

type ConvertHandler struct {
	converter Converter
	engine    EngineProber
	maxUpload int64
	log       zerolog.Logger
}

func NewConvertHandler(converter Converter, engine EngineProber, maxUpload int64, log zerolog.Logger) *ConvertHandler {
	return &ConvertHandler{
		converter: converter,
		engine:    engine,
		maxUpload: maxUpload,
		log:       log,
	}
}

// Index serves a minimal upload page.
func (h *ConvertHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// Health reports service and OCR engine status.
func (h *ConvertHandler) Health(c *gin.Context) {
	engine := h.engine.Status()

	status := "healthy"
	if !engine.Available {
		status = "degraded"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  status,
		Service: "ocr2pdf",
		OCR: dto.OCRStatus{
			Available:      engine.Available,
			Version:        engine.Version,
			TessdataPrefix: engine.TessdataPrefix,
			Error:          engine.Error,
		},
	})
}

// DebugTesseract dumps the OCR engine version, tessdata path and installed
// languages.
func (h *ConvertHandler) DebugTesseract(c *gin.Context) {
	engine := h.engine.Status()
	c.JSON(http.StatusOK, dto.OCRStatus{
		Available:      engine.Available,
		Version:        engine.Version,
		TessdataPrefix: engine.TessdataPrefix,
		Languages:      engine.Languages,
		Error:          engine.Error,
	})
}

// ConvertImage handles the multipart image upload and responds with the
// generated PDF.
func (h *ConvertHandler) ConvertImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		h.sendError(c, http.StatusBadRequest,
			fmt.Sprintf("Unsupported content type %q, expected an image", contentType), nil)
		return
	}

	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		h.sendError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds %d bytes", h.maxUpload), nil)
		return
	}

	imagePath, err := saveUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to store upload", err)
		return
	}
	defer os.Remove(imagePath)

	pdfPath, err := h.converter.ImageToPDF(c.Request.Context(), imagePath)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to convert image", err)
		return
	}
	defer os.Remove(pdfPath)

	c.FileAttachment(pdfPath, "ocr_result.pdf")
}

// ConvertText handles the text form field and responds with the generated
// PDF.
func (h *ConvertHandler) ConvertText(c *gin.Context) {
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		h.sendError(c, http.StatusBadRequest, "Text is required", nil)
		return
	}

	pdfPath, err := h.converter.TextToPDF(c.Request.Context(), text)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to convert text", err)
		return
	}
	defer os.Remove(pdfPath)

	c.FileAttachment(pdfPath, "text_to_pdf.pdf")
}

// saveUpload copies the uploaded file into a private temp file, keeping the
// original extension so the OCR engine can sniff the format.
func saveUpload(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, file); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return tempFile.Name(), nil
}

// sendError sends a structured error response
func (h *ConvertHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
		h.log.Error().Err(err).Msg(message)
	}

	kind := "INVALID_INPUT"
	if statusCode >= http.StatusInternalServerError {
		kind = "CONVERSION_FAILED"
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   kind,
		Message: errorMsg,
		Code:    statusCode,
	})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>ocr2pdf</title></head>
<body>
<h1>ocr2pdf</h1>
<form action="/convert/image" method="post" enctype="multipart/form-data">
  <p><input type="file" name="file" accept="image/*"></p>
  <p><button type="submit">Image to PDF</button></p>
</form>
<form action="/convert/text" method="post">
  <p><textarea name="text" rows="8" cols="60"></textarea></p>
  <p><button type="submit">Text to PDF</button></p>
</form>
</body>
</html>
`
