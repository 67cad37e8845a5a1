package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/okushnir/ocr2pdf/render"
)

// TextSource is the OCR step seen from the conversion pipeline.
type TextSource interface {
	ExtractText(imagePath string) string
}

// ConvertService glues the OCR step to the PDF render chain. Both operations
// return the path of a temp PDF owned by the caller.
type ConvertService struct {
	ocr   TextSource
	chain *render.Chain
	log   zerolog.Logger
}

func NewConvertService(ocr TextSource, chain *render.Chain, log zerolog.Logger) *ConvertService {
	return &ConvertService{ocr: ocr, chain: chain, log: log}
}

// ImageToPDF recognizes text in the image at imagePath and renders it to PDF.
func (s *ConvertService) ImageToPDF(ctx context.Context, imagePath string) (string, error) {
	text := s.ocr.ExtractText(imagePath)
	s.log.Info().Int("chars", len(text)).Msg("text extracted from image")
	return s.chain.Render(ctx, text)
}

// TextToPDF renders caller-supplied text to PDF.
func (s *ConvertService) TextToPDF(ctx context.Context, text string) (string, error) {
	return s.chain.Render(ctx, text)
}
