package export

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/render"
)

// cssPixelsPerInch converts surface sizes to PDF paper sizes
const cssPixelsPerInch = 96.0

// waitForAssets resolves once web fonts are ready and every image has
// either loaded or failed. Images that hang are given up on after 5s.
const waitForAssets = `(async () => {
  if (document.fonts && document.fonts.ready) {
    await document.fonts.ready;
  }
  await Promise.all(Array.from(document.images).map((img) => {
    if (img.complete) {
      return Promise.resolve();
    }
    return new Promise((resolve) => {
      img.addEventListener('load', resolve, { once: true });
      img.addEventListener('error', resolve, { once: true });
      setTimeout(resolve, 5000);
    });
  }));
  return true;
})()`

var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
}

// DetectChromePath checks CHROME_PATH first, then the usual install
// locations. It returns "" when nothing is found.
func DetectChromePath() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	for _, p := range chromeCandidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// Chrome exports through a headless browser. Each stage starts its own
// browser process so concurrent exports never share page state.
type Chrome struct {
	execPath string
	timeout  time.Duration
}

var _ Exporter = (*Chrome)(nil)

// NewChrome returns a chrome backend using the binary at execPath
func NewChrome(execPath string, timeout time.Duration) *Chrome {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Chrome{execPath: execPath, timeout: timeout}
}

// Name returns "chrome"
func (c *Chrome) Name() string {
	return BackendChrome
}

// Prepare starts a browser, loads the surface into a blank page sized to the
// card and waits for fonts and images. The stage, including every capture,
// runs under the backend timeout counted from here.
func (c *Chrome) Prepare(ctx context.Context, surface *render.Surface) (Stage, error) {
	if err := validateSurface(surface); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(c.execPath),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	stage := &chromeStage{
		ctx:     ctx,
		tabCtx:  tabCtx,
		surface: surface,
		cancel: func() {
			tabCancel()
			allocCancel()
			cancel()
		},
	}

	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(surface.Width), int64(surface.Height)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, surface.HTML).Do(ctx)
		}),
		chromedp.WaitVisible(surface.Selector, chromedp.ByQuery),
		chromedp.Evaluate(waitForAssets, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		err = wrapExportError(ctx, err, BackendChrome)
		stage.cancel()
		return nil, err
	}

	return stage, nil
}

type chromeStage struct {
	ctx     context.Context
	tabCtx  context.Context
	surface *render.Surface
	cancel  func()
}

// Capture screenshots the card element at quality times its CSS size, or
// prints a single page PDF the size of the card. PDF output is vector so
// quality does not change it.
func (s *chromeStage) Capture(ctx context.Context, format Format, quality int) ([]byte, error) {
	if err := ValidateCapture(format, quality); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "chrome capture not started")
	}

	var data []byte
	var action chromedp.Action
	switch format {
	case FormatPDF:
		action = chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(float64(s.surface.Width) / cssPixelsPerInch).
				WithPaperHeight(float64(s.surface.Height) / cssPixelsPerInch).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPageRanges("1").
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		})
	default:
		action = chromedp.ScreenshotScale(s.surface.Selector, float64(quality), &data, chromedp.ByQuery)
	}

	if err := chromedp.Run(s.tabCtx, action); err != nil {
		return nil, wrapExportError(s.ctx, err, BackendChrome)
	}
	if len(data) == 0 {
		return nil, errors.Unavailable("chrome export produced no data")
	}

	return data, nil
}

// Close stops the browser
func (s *chromeStage) Close() error {
	s.cancel()
	return nil
}
