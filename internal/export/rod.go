package export

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// A4 at 96 CSS DPI.
const (
	viewportWidth  = 794
	viewportHeight = 1123
	deviceScale    = 2
)

// ChromeRasterizer drives one headless Chrome tab, reused sequentially
// for every page of an export. Not safe for concurrent use.
type ChromeRasterizer struct {
	browser *rod.Browser
	page    *rod.Page
}

// NewChromeRasterizer launches a headless browser and prepares a single
// blank tab sized as an A4 sheet. Returns ErrRenderingUnavailable when
// no browser can be started.
func NewChromeRasterizer() (*ChromeRasterizer, error) {
	url, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderingUnavailable, err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderingUnavailable, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("%w: %v", ErrRenderingUnavailable, err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: deviceScale,
	})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("%w: %v", ErrRenderingUnavailable, err)
	}

	return &ChromeRasterizer{browser: browser, page: page}, nil
}

// Rasterize loads the document into the shared tab and captures it as
// a PNG covering exactly the A4 viewport.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	page := r.page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}
	// Embedded data-URL images decode asynchronously; give layout a
	// moment to settle.
	if err := page.WaitStable(300 * time.Millisecond); err != nil {
		return nil, fmt.Errorf("wait stable: %w", err)
	}

	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			X:      0,
			Y:      0,
			Width:  viewportWidth,
			Height: viewportHeight,
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return png, nil
}

// Close shuts the browser down.
func (r *ChromeRasterizer) Close() error {
	return r.browser.Close()
}
