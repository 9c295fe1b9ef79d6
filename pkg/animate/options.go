// Package animate runs the rotate → colour → render → encode loop that turns
// a graph into a spinning animation.
//
// # Usage
//
//	runner := animate.NewRunner(cache, nil, logger)
//	res, err := runner.Run(ctx, g, nil, animate.Options{
//	    Prefix: "out/frame",
//	    Height: 800,
//	    Movie:  true,
//	    Output: "anim",
//	})
//
// A nil layout makes the runner compute a force-directed layout, served from
// the cache when the same graph was laid out before with the same
// parameters.
//
// Encoding is best effort: when ffmpeg is missing or fails, Run still
// succeeds and reports the failure in [Result.MovieErr].
package animate

import (
	"io"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/layout"
	"github.com/matzehuels/graphspin/pkg/movie"
	"github.com/matzehuels/graphspin/pkg/render/frame"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultPrefix = "frame"
	DefaultHeight = 800
	DefaultOutput = "anim"
)

// Options configures one animation run.
type Options struct {
	// Frame output
	Prefix string `json:"prefix,omitempty"` // frame files are <Prefix>-NNN.<ext>
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"` // png or svg

	// Rotation
	Frames int     `json:"frames,omitempty"`
	Plane  string  `json:"plane,omitempty"` // two axes, e.g. "xz"
	Pivot  *r3.Vec `json:"pivot,omitempty"`

	// Layout, used when no layout is passed to Run
	Seed       uint64 `json:"seed,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"` // recompute even if cached

	// Movie
	Movie   bool   `json:"movie,omitempty"`
	Output  string `json:"output,omitempty"`
	FPS     int    `json:"fps,omitempty"`
	Quality int    `json:"quality,omitempty"`

	Logger *log.Logger `json:"-"`

	plane layout.Plane
}

// ValidateAndSetDefaults fills in unset fields and checks the result.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Format == "" {
		o.Format = frame.FormatPNG
	}
	if o.Frames == 0 {
		o.Frames = layout.DefaultFrames
	}
	if o.Plane == "" {
		o.Plane = layout.PlaneXZ.String()
	}
	if o.Pivot == nil {
		p := layout.DefaultPivot
		o.Pivot = &p
	}
	if o.Seed == 0 {
		o.Seed = layout.DefaultSeed
	}
	if o.Iterations == 0 {
		o.Iterations = layout.DefaultIterations
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.FPS == 0 {
		o.FPS = movie.DefaultFPS
	}
	if o.Quality == 0 {
		o.Quality = movie.DefaultQuality
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Validate()
}

// Validate checks the options and resolves the rotation plane.
func (o *Options) Validate() error {
	if err := errors.ValidatePrefix(o.Prefix); err != nil {
		return err
	}
	for _, v := range []struct {
		name string
		n    int
	}{
		{"height", o.Height},
		{"frames", o.Frames},
		{"iterations", o.Iterations},
		{"fps", o.FPS},
		{"quality", o.Quality},
	} {
		if err := errors.ValidatePositive(v.name, v.n); err != nil {
			return err
		}
	}
	if _, err := frame.SinkFor(o.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid frame format")
	}
	if o.Movie && o.Format != frame.FormatPNG {
		return errors.New(errors.ErrCodeUnsupported, "movies can only be encoded from png frames, not %s", o.Format)
	}
	p, err := layout.ParsePlane(o.Plane)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid rotation plane")
	}
	o.plane = p
	return nil
}

// LayoutOptions returns the force-directed layout options implied by o.
func (o *Options) LayoutOptions() []layout.Option {
	return []layout.Option{layout.WithSeed(o.Seed), layout.WithIterations(o.Iterations)}
}
