package frame

import (
	"fmt"
	"io"
	"strings"
)

// Sink writes a scene in one image format.
type Sink interface {
	// Ext is the file extension without the dot.
	Ext() string
	Render(w io.Writer, s *Scene) error
}

// Supported formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Formats lists the names accepted by [SinkFor].
var Formats = []string{FormatPNG, FormatSVG}

// SinkFor returns the sink for a format name.
func SinkFor(format string) (Sink, error) {
	switch strings.ToLower(format) {
	case "", FormatPNG:
		return PNGSink{}, nil
	case FormatSVG:
		return SVGSink{}, nil
	}
	return nil, fmt.Errorf("unsupported frame format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// FrameName returns the file name of frame i: "<prefix>-NNN.<ext>".
func FrameName(prefix string, i int, ext string) string {
	return fmt.Sprintf("%s-%03d.%s", prefix, i, ext)
}

// FramePattern returns the printf-style pattern matching [FrameName], as
// understood by ffmpeg's image2 demuxer.
func FramePattern(prefix, ext string) string {
	return prefix + "-%03d." + ext
}
