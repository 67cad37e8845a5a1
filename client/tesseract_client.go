package client

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog"

	"github.com/okushnir/ocr2pdf/utils"
)

// OCRAttempt is one rung of the recognition ladder: a Tesseract language set
// plus a page segmentation mode.
type OCRAttempt struct {
	Languages   []string
	PageSegMode gosseract.PageSegMode
}

func (a OCRAttempt) String() string {
	return fmt.Sprintf("%s/psm-%d", strings.Join(a.Languages, "+"), a.PageSegMode)
}

// DefaultAttempts returns the fixed recognition ladder. The primary language
// set is configurable; the fallback rungs add a single-block pass, a wider
// language set and finally English only, so a missing ukr traineddata still
// yields something.
func DefaultAttempts(primary string) []OCRAttempt {
	langs := strings.Split(primary, "+")
	return []OCRAttempt{
		{Languages: langs, PageSegMode: gosseract.PSM_AUTO},
		{Languages: langs, PageSegMode: gosseract.PSM_SINGLE_BLOCK},
		{Languages: []string{"ukr", "eng", "rus"}, PageSegMode: gosseract.PSM_AUTO},
		{Languages: []string{"eng"}, PageSegMode: gosseract.PSM_SINGLE_BLOCK},
	}
}

// TesseractClient wraps gosseract with a fixed ladder of language and page
// segmentation mode attempts.
type TesseractClient struct {
	tessdataPrefix string
	attempts       []OCRAttempt
	log            zerolog.Logger

	// run executes a single OCR attempt; replaceable in tests.
	run func(imagePath string, attempt OCRAttempt) (string, error)
}

func NewTesseractClient(tessdataPrefix, primaryLanguages string, log zerolog.Logger) *TesseractClient {
	tc := &TesseractClient{
		tessdataPrefix: tessdataPrefix,
		attempts:       DefaultAttempts(primaryLanguages),
		log:            log,
	}
	tc.run = tc.recognize
	return tc
}

// ExtractText runs the attempt ladder against the image at imagePath and
// returns the first non-empty result. An empty string with a nil error means
// every attempt completed but found no text. An error is returned only when
// every attempt failed to run at all.
func (tc *TesseractClient) ExtractText(imagePath string) (string, error) {
	var lastErr error
	failed := 0

	for _, attempt := range tc.attempts {
		text, err := tc.run(imagePath, attempt)
		if err != nil {
			tc.log.Warn().Err(err).Stringer("attempt", attempt).Msg("OCR attempt failed")
			lastErr = err
			failed++
			continue
		}

		text = utils.NormalizeText(text)
		if text != "" {
			tc.log.Info().Stringer("attempt", attempt).Int("chars", len(text)).Msg("OCR attempt succeeded")
			return text, nil
		}
		tc.log.Debug().Stringer("attempt", attempt).Msg("OCR attempt yielded no text")
	}

	if failed == len(tc.attempts) && lastErr != nil {
		return "", fmt.Errorf("all OCR attempts failed: %w", lastErr)
	}
	return "", nil
}

func (tc *TesseractClient) recognize(imagePath string, attempt OCRAttempt) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.tessdataPrefix != "" {
		if err := client.SetTessdataPrefix(tc.tessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}

	if err := client.SetLanguage(attempt.Languages...); err != nil {
		return "", fmt.Errorf("failed to set languages %v: %w", attempt.Languages, err)
	}

	if err := client.SetPageSegMode(attempt.PageSegMode); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

// EngineStatus describes the installed Tesseract engine, for the health and
// debug endpoints.
type EngineStatus struct {
	Available      bool
	Version        string
	TessdataPrefix string
	Languages      []string
	Error          string
}

func (tc *TesseractClient) Status() EngineStatus {
	status := EngineStatus{TessdataPrefix: tc.tessdataPrefix}

	client := gosseract.NewClient()
	defer client.Close()
	status.Version = client.Version()

	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	status.Available = true
	status.Languages = langs
	return status
}
