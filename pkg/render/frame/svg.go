package frame

import (
	"bufio"
	"fmt"
	"io"
)

// SVGSink writes scenes as standalone SVG documents.
type SVGSink struct{}

func (SVGSink) Ext() string { return FormatSVG }

func (SVGSink) Render(w io.Writer, s *Scene) error { return RenderSVG(w, s) }

// RenderSVG writes s as SVG. Colours are emitted as rgba() strings.
func RenderSVG(w io.Writer, s *Scene) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(bw, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background.Opaque())

	for _, l := range s.Lines {
		fmt.Fprintf(bw, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
			l.From.X, l.From.Y, l.To.X, l.To.Y, l.Color)
	}
	for _, d := range s.Discs {
		fmt.Fprintf(bw, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			d.Center.X, d.Center.Y, d.Diameter/2, d.Fill, d.Stroke)
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
