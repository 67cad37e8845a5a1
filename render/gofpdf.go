package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/okushnir/ocr2pdf/utils"
)

// UnicodeFontRenderer draws text with gofpdf and a downloaded TTF registered
// as a UTF-8 font, so Cyrillic survives intact.
type UnicodeFontRenderer struct {
	Fonts *FontCache
}

func NewUnicodeFontRenderer(fonts *FontCache) *UnicodeFontRenderer {
	return &UnicodeFontRenderer{Fonts: fonts}
}

func (r *UnicodeFontRenderer) Name() string { return "gofpdf-unicode" }

func (r *UnicodeFontRenderer) Render(_ context.Context, text, outPath string) error {
	fontPath, err := r.Fonts.Path()
	if err != nil {
		return fmt.Errorf("unicode font unavailable: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font("DejaVu", "", fontPath)
	pdf.SetFont("DejaVu", "", 12)
	pdf.AddPage()

	writeLines(pdf, text)

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("gofpdf output failed: %w", err)
	}
	return nil
}

// LatinFontRenderer uses gofpdf's built-in core font. Core fonts only cover
// Latin-1, so non-Latin runes are dropped before drawing.
type LatinFontRenderer struct{}

func NewLatinFontRenderer() *LatinFontRenderer { return &LatinFontRenderer{} }

func (r *LatinFontRenderer) Name() string { return "gofpdf-latin" }

func (r *LatinFontRenderer) Render(_ context.Context, text, outPath string) error {
	return renderLatin(utils.ToLatin1(text), outPath)
}

// TranslitRenderer is the last resort: Cyrillic is transliterated to Latin
// through the fixed table, then drawn with the built-in core font.
type TranslitRenderer struct{}

func NewTranslitRenderer() *TranslitRenderer { return &TranslitRenderer{} }

func (r *TranslitRenderer) Name() string { return "gofpdf-translit" }

func (r *TranslitRenderer) Render(_ context.Context, text, outPath string) error {
	return renderLatin(utils.ToLatin1(utils.Transliterate(text)), outPath)
}

func renderLatin(text, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	// Core fonts expect CP1252 strings, not UTF-8; without this translation
	// accented Latin-1 characters come out as two mojibake glyphs.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("gofpdf output failed: %w", err)
	}
	return nil
}

func writeLines(pdf *gofpdf.Fpdf, text string) {
	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
}
