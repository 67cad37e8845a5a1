package service

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFInspector checks and reads back generated PDF files.
type PDFInspector interface {
	Validate(path string) error
	ExtractText(path string) (string, error)
}

type pdfInspector struct {
	conf *model.Configuration
}

func NewPDFInspector() PDFInspector {
	return &pdfInspector{conf: model.NewDefaultConfiguration()}
}

// Validate runs a pdfcpu structural validation. The render chain uses this to
// reject corrupt output from a renderer before falling through to the next.
func (p *pdfInspector) Validate(path string) error {
	if err := api.ValidateFile(path, p.conf); err != nil {
		return fmt.Errorf("pdf validation failed: %w", err)
	}
	return nil
}

// ExtractText pulls the embedded text back out of a generated PDF.
func (p *pdfInspector) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var textBuilder bytes.Buffer
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}
