package render

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures the default renderer chain.
type Options struct {
	Fonts          *FontCache
	ChromePath     string
	ChromeDisabled bool
	Timeout        time.Duration
}

// DefaultChain wires the fixed fallback order: headless Chrome, gofpdf with
// the downloaded Unicode font, gofpdf with a built-in Latin font, go-pdf/fpdf
// with the custom font, and finally transliteration.
func DefaultChain(opts Options, validate ValidateFunc, log zerolog.Logger) *Chain {
	var renderers []Renderer
	if !opts.ChromeDisabled {
		renderers = append(renderers, NewChromeRenderer(opts.ChromePath, opts.Timeout))
	}
	renderers = append(renderers,
		NewUnicodeFontRenderer(opts.Fonts),
		NewLatinFontRenderer(),
		NewCustomFontRenderer(opts.Fonts),
		NewTranslitRenderer(),
	)
	return NewChain(renderers, validate, log)
}
