package render

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeRenderer prints text to PDF through headless Chrome. It is the first
// stage of the chain because Chrome ships fonts covering non-Latin scripts.
type ChromeRenderer struct {
	ExecPath string
	Timeout  time.Duration
}

func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{ExecPath: execPath, Timeout: timeout}
}

func (r *ChromeRenderer) Name() string { return "chrome-html" }

func (r *ChromeRenderer) Render(ctx context.Context, text, outPath string) error {
	tmpDir, err := os.MkdirTemp("", "chromedata-*")
	if err != nil {
		return fmt.Errorf("cannot create temp profile dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	allocatorOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserDataDir(tmpDir),
		// Software rendering; minimal containers have no GPU.
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.ExecPath != "" {
		allocatorOptions = append(allocatorOptions, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions...)
	defer allocCancel()
	chromeCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	chromeCtx, timeoutCancel := context.WithTimeout(chromeCtx, r.Timeout)
	defer timeoutCancel()

	doc := textToHTML(text)

	var pdfBuf []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frame, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frame.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(false).
				WithPaperWidth(8.27).  // A4 inches
				WithPaperHeight(11.69).
				WithMarginTop(0.6).
				WithMarginBottom(0.6).
				WithMarginLeft(0.6).
				WithMarginRight(0.6).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("chrome rendering failed: %w", err)
	}

	if err := os.WriteFile(outPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func textToHTML(text string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>`)
	b.WriteString(`body{font-family:"DejaVu Sans","Noto Sans",sans-serif;font-size:12pt;white-space:pre-wrap;word-wrap:break-word;}`)
	b.WriteString(`</style></head><body>`)
	b.WriteString(html.EscapeString(text))
	b.WriteString(`</body></html>`)
	return b.String()
}
