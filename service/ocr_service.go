package service

import (
	"fmt"

	"github.com/rs/zerolog"
)

// NoTextPlaceholder is returned in place of OCR output when every recognition
// attempt yields nothing and the image carries no QR payload either.
const NoTextPlaceholder = "No text could be recognized in the image."

// TextRecognizer runs the OCR attempt ladder against an image file.
type TextRecognizer interface {
	ExtractText(imagePath string) (string, error)
}

// QRDecoder extracts a QR code payload from an image file.
type QRDecoder interface {
	DecodeFile(path string) (string, error)
}

// OCRService extracts best-effort text from an image. It never fails: OCR
// engine errors are embedded in the returned text and an empty result becomes
// a fixed placeholder.
type OCRService struct {
	recognizer TextRecognizer
	qr         QRDecoder
	log        zerolog.Logger
}

func NewOCRService(recognizer TextRecognizer, qr QRDecoder, log zerolog.Logger) *OCRService {
	return &OCRService{recognizer: recognizer, qr: qr, log: log}
}

// ExtractText returns the recognized text for the image at imagePath. A QR
// code payload, when present, is appended to the OCR output; when OCR finds
// nothing it stands in for it.
func (s *OCRService) ExtractText(imagePath string) string {
	text, err := s.recognizer.ExtractText(imagePath)
	if err != nil {
		s.log.Error().Err(err).Msg("OCR engine failed")
		text = fmt.Sprintf("OCR error: %v", err)
	}

	qrText, qrErr := s.qr.DecodeFile(imagePath)
	if qrErr != nil {
		s.log.Debug().Err(qrErr).Msg("no QR payload in image")
		qrText = ""
	}

	switch {
	case text != "" && qrText != "":
		return text + "\n\n" + qrText
	case text != "":
		return text
	case qrText != "":
		return qrText
	default:
		return NoTextPlaceholder
	}
}
