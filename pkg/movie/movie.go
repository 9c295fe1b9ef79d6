// Package movie stitches numbered frame images into a video with ffmpeg.
//
// ffmpeg is run as an external process. It must be on PATH or configured
// through [Encoder.Binary]:
//
//	macOS:  brew install ffmpeg
//	Linux:  apt install ffmpeg
package movie

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/graphspin/pkg/errors"
)

// Defaults for [Encoder].
const (
	DefaultBinary  = "ffmpeg"
	DefaultFPS     = 60
	DefaultQuality = 2
	Ext            = ".mp4"
)

// Encoder runs ffmpeg over an image sequence. The zero value uses the
// defaults.
type Encoder struct {
	Binary  string // executable name or path (default "ffmpeg")
	FPS     int    // input frame rate (default 60)
	Quality int    // -qscale value, lower is better (default 2)
}

func (e Encoder) binary() string {
	if e.Binary == "" {
		return DefaultBinary
	}
	return e.Binary
}

// Args returns the ffmpeg arguments for encoding frames matching pattern
// (a printf-style pattern like "frame-%03d.png") into output.
func (e Encoder) Args(pattern, output string) []string {
	fps, q := e.FPS, e.Quality
	if fps <= 0 {
		fps = DefaultFPS
	}
	if q <= 0 {
		q = DefaultQuality
	}
	return []string{
		"-y",
		"-r", strconv.Itoa(fps),
		"-qscale", strconv.Itoa(q),
		"-i", pattern,
		MovieName(output),
	}
}

// Encode writes the movie and returns its file name. The returned error has
// code ENCODE_FAILED and includes ffmpeg's stderr.
func (e Encoder) Encode(ctx context.Context, pattern, output string) (string, error) {
	bin := e.binary()
	if _, err := exec.LookPath(bin); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncodeFailed, err,
			"movie export requires ffmpeg. Install with:\n  macOS:  brew install ffmpeg\n  Linux:  apt install ffmpeg")
	}

	name := MovieName(output)
	cmd := exec.CommandContext(ctx, bin, e.Args(pattern, output)...)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncodeFailed, err, "%s: %s", bin, lastLines(errBuf.String(), 5))
	}
	return name, nil
}

// MovieName appends ".mp4" to output unless it already ends with it.
func MovieName(output string) string {
	if strings.HasSuffix(output, Ext) {
		return output
	}
	return output + Ext
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
