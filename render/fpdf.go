package render

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

// CustomFontRenderer is the second direct PDF library in the chain. It embeds
// the cached TTF through go-pdf/fpdf, which handles some fonts the older
// gofpdf chokes on.
type CustomFontRenderer struct {
	Fonts *FontCache
}

func NewCustomFontRenderer(fonts *FontCache) *CustomFontRenderer {
	return &CustomFontRenderer{Fonts: fonts}
}

func (r *CustomFontRenderer) Name() string { return "fpdf-custom-font" }

func (r *CustomFontRenderer) Render(_ context.Context, text, outPath string) error {
	fontPath, err := r.Fonts.Path()
	if err != nil {
		return fmt.Errorf("custom font unavailable: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font("DejaVu", "", fontPath)
	pdf.SetFont("DejaVu", "", 12)
	pdf.AddPage()

	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("fpdf output failed: %w", err)
	}
	return nil
}
