package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToTemp(t *testing.T, r Renderer, text string) []byte {
	t.Helper()
	outPath := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, r.Render(context.Background(), text, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	return data
}

func TestLatinFontRendererProducesPDF(t *testing.T) {
	data := renderToTemp(t, NewLatinFontRenderer(), "Hello, world!\nSecond line")
	assert.True(t, len(data) > 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestLatinFontRendererHandlesCyrillicInput(t *testing.T) {
	// Core fonts cannot draw Cyrillic; the renderer must still produce a
	// valid document with the non-Latin runes dropped.
	data := renderToTemp(t, NewLatinFontRenderer(), "Привіт, світ!")
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestLatinFontRendererHandlesEmptyText(t *testing.T) {
	data := renderToTemp(t, NewLatinFontRenderer(), "")
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTranslitRendererProducesPDF(t *testing.T) {
	data := renderToTemp(t, NewTranslitRenderer(), "Привіт, світ!")
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFontCacheReusesExistingFile(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, fontFileName)
	require.NoError(t, os.WriteFile(fontPath, []byte("fake ttf bytes"), 0o644))

	// URL is unreachable on purpose; the cached file must win.
	fc := NewFontCache(dir, "http://127.0.0.1:0/never")
	got, err := fc.Path()
	require.NoError(t, err)
	assert.Equal(t, fontPath, got)

	// Second call takes the memoized path.
	got, err = fc.Path()
	require.NoError(t, err)
	assert.Equal(t, fontPath, got)
}

func TestFontCacheDownloadsOnce(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("ttf bytes"))
	}))
	defer srv.Close()

	fc := NewFontCache(t.TempDir(), srv.URL)

	got, err := fc.Path()
	require.NoError(t, err)
	assert.Equal(t, fontFileName, filepath.Base(got))

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "ttf bytes", string(data))

	_, err = fc.Path()
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestFontCacheDownloadFailure(t *testing.T) {
	fc := NewFontCache(t.TempDir(), "http://127.0.0.1:0/never")
	_, err := fc.Path()
	assert.Error(t, err)
}

func TestDefaultChainOrder(t *testing.T) {
	fonts := NewFontCache(t.TempDir(), "http://127.0.0.1:0/never")

	chain := DefaultChain(Options{Fonts: fonts, ChromeDisabled: true}, nil, zerolog.Nop())
	require.Len(t, chain.renderers, 4)
	assert.Equal(t, "gofpdf-unicode", chain.renderers[0].Name())
	assert.Equal(t, "gofpdf-latin", chain.renderers[1].Name())
	assert.Equal(t, "fpdf-custom-font", chain.renderers[2].Name())
	assert.Equal(t, "gofpdf-translit", chain.renderers[3].Name())

	withChrome := DefaultChain(Options{Fonts: fonts}, nil, zerolog.Nop())
	require.Len(t, withChrome.renderers, 5)
	assert.Equal(t, "chrome-html", withChrome.renderers[0].Name())
}
