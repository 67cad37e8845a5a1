package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TESSDATA_PREFIX", "")
	t.Setenv("OCR_LANGUAGES", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("RENDER_TIMEOUT_SECS", "")
	t.Setenv("FONT_URL", "")
	t.Setenv("FONT_CACHE_DIR", "")
	t.Setenv("CHROME_DISABLED", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "/usr/share/tesseract-ocr/5/tessdata/", cfg.TessdataPrefix)
	assert.Equal(t, "ukr+eng", cfg.OCRLanguages)
	assert.Equal(t, DefaultFontURL, cfg.FontURL)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.False(t, cfg.ChromeDisabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("OCR_LANGUAGES", "ukr+eng+rus")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("RENDER_TIMEOUT_SECS", "5")
	t.Setenv("CHROME_DISABLED", "true")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "ukr+eng+rus", cfg.OCRLanguages)
	assert.Equal(t, int64(1024), cfg.MaxFileSize)
	assert.Equal(t, 5*time.Second, cfg.RenderTimeout)
	assert.True(t, cfg.ChromeDisabled)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
}

func TestLoadConfigIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("RENDER_TIMEOUT_SECS", "-3")

	cfg := LoadConfig()

	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
}
