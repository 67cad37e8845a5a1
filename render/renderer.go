// Package render turns extracted text into PDF files through an ordered
// fallback chain of renderers. Unicode-capable methods come first; the last
// resort transliterates Cyrillic to Latin and renders with a built-in font.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Renderer writes text as a PDF document to outPath.
type Renderer interface {
	Name() string
	Render(ctx context.Context, text, outPath string) error
}

// ValidateFunc checks a produced PDF file; a non-nil error makes the chain
// discard the candidate and move to the next renderer.
type ValidateFunc func(path string) error

// Chain tries each renderer in order and returns the first validated result.
type Chain struct {
	renderers []Renderer
	validate  ValidateFunc
	log       zerolog.Logger
}

func NewChain(renderers []Renderer, validate ValidateFunc, log zerolog.Logger) *Chain {
	return &Chain{renderers: renderers, validate: validate, log: log}
}

// Render produces a PDF file for text and returns its path. The caller owns
// the file and is responsible for removing it. An error is returned only if
// every renderer in the chain failed.
func (c *Chain) Render(ctx context.Context, text string) (string, error) {
	if len(c.renderers) == 0 {
		return "", errors.New("no renderers configured")
	}

	var lastErr error

	for _, r := range c.renderers {
		tmp, err := os.CreateTemp("", "ocr2pdf-*.pdf")
		if err != nil {
			return "", fmt.Errorf("failed to create temp file: %w", err)
		}
		outPath := tmp.Name()
		tmp.Close()

		err = r.Render(ctx, text, outPath)
		if err == nil && c.validate != nil {
			if verr := c.validate(outPath); verr != nil {
				err = fmt.Errorf("produced invalid PDF: %w", verr)
			}
		}
		if err == nil {
			c.log.Info().Str("renderer", r.Name()).Str("path", outPath).Msg("PDF rendered")
			return outPath, nil
		}

		os.Remove(outPath)
		c.log.Warn().Err(err).Str("renderer", r.Name()).Msg("renderer failed, trying next")
		lastErr = fmt.Errorf("%s: %w", r.Name(), err)
	}

	return "", fmt.Errorf("every PDF renderer failed, last error: %w", lastErr)
}
