package render

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fontFileName = "DejaVuSans.ttf"

// FontCache downloads a Unicode-capable TTF once and serves its on-disk path
// to the renderers that embed it. The file persists across requests; only the
// first caller pays for the download.
type FontCache struct {
	dir string
	url string

	mu   sync.Mutex
	path string
}

func NewFontCache(dir, url string) *FontCache {
	return &FontCache{dir: dir, url: url}
}

// Path returns the local path of the cached font, downloading it first if
// needed.
func (fc *FontCache) Path() (string, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.path != "" {
		return fc.path, nil
	}

	target := filepath.Join(fc.dir, fontFileName)
	if info, err := os.Stat(target); err == nil && info.Size() > 0 {
		fc.path = target
		return target, nil
	}

	if err := os.MkdirAll(fc.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create font cache dir: %w", err)
	}
	if err := fc.download(target); err != nil {
		return "", err
	}

	fc.path = target
	return target, nil
}

func (fc *FontCache) download(target string) error {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Get(fc.url)
	if err != nil {
		return fmt.Errorf("failed to download font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download font: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(fc.dir, "font-*.ttf")
	if err != nil {
		return fmt.Errorf("failed to create font file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write font file: %w", err)
	}
	tmp.Close()

	// Rename so concurrent requests never observe a half-written font.
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move font into cache: %w", err)
	}
	return nil
}
