package frame

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
)

// PNGSink rasterizes scenes with fogleman/gg.
type PNGSink struct{}

func (PNGSink) Ext() string { return FormatPNG }

func (PNGSink) Render(w io.Writer, s *Scene) error { return RenderPNG(w, s) }

// RenderPNG draws s onto a new raster and encodes it as PNG.
func RenderPNG(w io.Writer, s *Scene) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", s.Width, s.Height)
	}
	dc := gg.NewContext(s.Width, s.Height)
	dc.SetColor(s.Background.Opaque().NRGBA())
	dc.Clear()

	dc.SetLineWidth(1)
	for _, l := range s.Lines {
		dc.SetColor(l.Color.NRGBA())
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
		dc.Stroke()
	}

	for _, d := range s.Discs {
		dc.DrawCircle(d.Center.X, d.Center.Y, d.Diameter/2)
		dc.SetColor(d.Fill.NRGBA())
		dc.FillPreserve()
		dc.SetColor(d.Stroke.NRGBA())
		dc.Stroke()
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
