// Package export turns rendered pages into an A4 PDF: each page
// document is rasterized by a headless browser and placed full-bleed on
// its own PDF page.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/signintech/gopdf"

	"github.com/smartcriacao/atividade/internal/activity"
	"github.com/smartcriacao/atividade/internal/render"
)

// A4 in PDF points.
const (
	pageWidthPt  = 595.28
	pageHeightPt = 841.89
)

// ErrRenderingUnavailable indicates no browser could be started, so no
// PDF can be produced at all.
var ErrRenderingUnavailable = errors.New("export: rendering browser unavailable")

// PageCaptureError reports a page that failed to rasterize. The export
// run produces no output when any page fails.
type PageCaptureError struct {
	Page int
	Err  error
}

func (e *PageCaptureError) Error() string {
	return fmt.Sprintf("capture page %d: %v", e.Page, e.Err)
}

func (e *PageCaptureError) Unwrap() error { return e.Err }

// Rasterizer captures a standalone HTML document as a PNG sized for one
// A4 page at device scale 2 or better.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

// Exporter assembles the PDF.
type Exporter struct {
	renderer   *render.Renderer
	rasterizer Rasterizer
}

// New creates an Exporter on top of a rasterizer.
func New(renderer *render.Renderer, rasterizer Rasterizer) *Exporter {
	return &Exporter{renderer: renderer, rasterizer: rasterizer}
}

// Export writes one PDF with len(pages) A4 pages, in input order. Any
// page failure aborts the export before anything is written to w.
func (e *Exporter) Export(ctx context.Context, pages []activity.GeneratedPage, w io.Writer) error {
	if len(pages) == 0 {
		return fmt.Errorf("export: no pages to export")
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	for _, page := range pages {
		doc, err := e.renderer.RenderDocument(page, len(pages))
		if err != nil {
			return &PageCaptureError{Page: page.PageNumber, Err: err}
		}

		png, err := e.rasterizer.Rasterize(ctx, doc)
		if err != nil {
			return &PageCaptureError{Page: page.PageNumber, Err: err}
		}

		holder, err := gopdf.ImageHolderByBytes(png)
		if err != nil {
			return &PageCaptureError{Page: page.PageNumber, Err: err}
		}

		pdf.AddPage()
		// The raster already carries the 10mm padding; it fills the
		// PDF page edge to edge.
		if err := pdf.ImageByHolder(holder, 0, 0, &gopdf.Rect{W: pageWidthPt, H: pageHeightPt}); err != nil {
			return &PageCaptureError{Page: page.PageNumber, Err: err}
		}
	}

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
