package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultFontURL is where the Unicode-capable fallback font is fetched from
// when it is not already present in the font cache directory.
const DefaultFontURL = "https://github.com/dejavu-fonts/dejavu-fonts/raw/master/ttf/DejaVuSans.ttf"

type Config struct {
	ServerPort     string
	TessdataPrefix string
	OCRLanguages   string
	FontCacheDir   string
	FontURL        string
	ChromePath     string
	ChromeDisabled bool
	RenderTimeout  time.Duration
	MaxFileSize    int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tessdataPrefix := os.Getenv("TESSDATA_PREFIX")
	if tessdataPrefix == "" {
		tessdataPrefix = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	// Primary language set for the OCR ladder; the fallback rungs are fixed.
	ocrLanguages := os.Getenv("OCR_LANGUAGES")
	if ocrLanguages == "" {
		ocrLanguages = "ukr+eng"
	}

	fontCacheDir := os.Getenv("FONT_CACHE_DIR")
	if fontCacheDir == "" {
		fontCacheDir = filepath.Join(os.TempDir(), "ocr2pdf-fonts")
	}

	fontURL := os.Getenv("FONT_URL")
	if fontURL == "" {
		fontURL = DefaultFontURL
	}

	renderTimeout := 30 * time.Second
	if v := os.Getenv("RENDER_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			renderTimeout = time.Duration(secs) * time.Second
		}
	}

	maxFileSize := int64(10 * 1024 * 1024) // 10 MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxFileSize = n
		}
	}

	return &Config{
		ServerPort:     serverPort,
		TessdataPrefix: tessdataPrefix,
		OCRLanguages:   ocrLanguages,
		FontCacheDir:   fontCacheDir,
		FontURL:        fontURL,
		ChromePath:     os.Getenv("CHROME_PATH"),
		ChromeDisabled: os.Getenv("CHROME_DISABLED") == "true",
		RenderTimeout:  renderTimeout,
		MaxFileSize:    maxFileSize,
	}
}
