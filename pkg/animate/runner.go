package animate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/graphspin/pkg/cache"
	"github.com/matzehuels/graphspin/pkg/depth"
	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/graph"
	"github.com/matzehuels/graphspin/pkg/layout"
	"github.com/matzehuels/graphspin/pkg/movie"
	"github.com/matzehuels/graphspin/pkg/observability"
	"github.com/matzehuels/graphspin/pkg/render/frame"
)

// Encoder turns a numbered image sequence into a movie file.
// [movie.Encoder] is the production implementation.
type Encoder interface {
	Encode(ctx context.Context, pattern, output string) (string, error)
}

// Result describes the files produced by a run.
type Result struct {
	RunID  string
	Frames []string
	Width  int
	Height int

	// Movie is the movie file name, empty when no movie was written.
	Movie string
	// MovieErr is set when encoding was requested but failed.
	MovieErr error

	// Bytes is the total size of all written files.
	Bytes int64

	Stats     Stats
	LayoutHit bool
	Defaults  graph.Defaults
}

// Stats contains timing information for a run.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
	EncodeTime time.Duration
}

// Runner executes animation runs. It holds no per-run state, so one Runner
// can serve several runs.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Encoder Encoder
	Logger  *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil cache disables caching, a nil keyer uses the default keyer, and a
// nil logger discards output. The encoder is ffmpeg with default
// settings; replace Runner.Encoder to change it.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Cache: c, Keyer: keyer, Encoder: movie.Encoder{}, Logger: logger}
}

// Run renders one frame per rotation step of g and, if requested, encodes
// them into a movie. l may be nil, in which case a layout is computed.
// Neither g nor l is modified.
func (r *Runner) Run(ctx context.Context, g *graph.Graph, l *layout.Layout, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", res.RunID[:8])

	work := g.Clone()
	res.Defaults = work.ApplyDefaults()
	if res.Defaults.Size || res.Defaults.Color {
		logger.Debug("applied attribute defaults", "size", res.Defaults.Size, "color", res.Defaults.Color)
	}

	start := time.Now()
	if l == nil {
		var err error
		l, res.LayoutHit, err = r.LayoutWithCacheInfo(ctx, work, opts)
		if err != nil {
			return nil, err
		}
	} else if err := l.Validate(work.RealCount()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "layout does not fit graph")
	}
	res.Stats.LayoutTime = time.Since(start)

	centred := l.Clone()
	centred.Center()

	framed := graph.Frame(work)

	start = time.Now()
	if err := r.renderFrames(ctx, framed, centred, opts, res, logger); err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(start)

	logger.Info("rendered frames",
		"frames", len(res.Frames),
		"vertices", work.VertexCount(),
		"size", fmt.Sprintf("%dx%d", res.Width, res.Height),
		"duration", res.Stats.RenderTime)

	if opts.Movie {
		r.encode(ctx, opts, res, logger)
	}
	return res, nil
}

func (r *Runner) renderFrames(ctx context.Context, g *graph.Graph, l *layout.Layout, opts Options, res *Result, logger *log.Logger) error {
	sink, err := frame.SinkFor(opts.Format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "frame sink")
	}
	if dir := filepath.Dir(opts.Prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "create output directory")
		}
	}

	anchors := frame.Anchors(l, opts.plane)
	res.Width, res.Height = frame.Size(l, opts.Height)
	hooks := observability.Animation()

	rot := layout.NewRotator(l, opts.Frames, opts.plane, *opts.Pivot)
	res.Frames = make([]string, 0, rot.Frames())
	for rot.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		i := rot.Index()
		scene, err := composeScene(g, rot.Layout(), anchors, res.Width, res.Height)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "frame %d", i)
		}

		name := frame.FrameName(opts.Prefix, i, sink.Ext())
		n, err := writeFrame(name, sink, scene)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", name)
		}
		res.Frames = append(res.Frames, name)
		res.Bytes += n

		logger.Debug("frame", "index", i, "angle", rot.Angle(), "file", name)
		hooks.OnFrameRendered(ctx, i, rot.Frames(), name)
	}

	if n := removeStaleFrames(opts.Prefix, sink.Ext(), rot.Frames()); n > 0 {
		logger.Info("removed frames left by an earlier run", "count", n, "prefix", opts.Prefix)
	}
	return nil
}

// removeStaleFrames deletes <prefix>-NNN.<ext> files numbered from start
// upwards until the first gap. ffmpeg reads a numbered sequence up to its
// first gap, so anything left there would end up in the movie.
func removeStaleFrames(prefix, ext string, start int) int {
	n := 0
	for i := start; ; i++ {
		if err := os.Remove(frame.FrameName(prefix, i, ext)); err != nil {
			return n
		}
		n++
	}
}

func composeScene(g *graph.Graph, l *layout.Layout, anchors [graph.FrameVertices]r2.Vec, w, h int) (*frame.Scene, error) {
	z, err := depth.Depths(g, l, layout.Z)
	if err != nil {
		return nil, err
	}
	colors, err := depth.Colorize(g, depth.Normalize(z))
	if err != nil {
		return nil, err
	}
	pts, err := frame.Project(g, l, anchors)
	if err != nil {
		return nil, err
	}
	return frame.NewScene(g, pts, colors, frame.NewViewport(pts, w, h, frame.Margin))
}

func writeFrame(name string, sink frame.Sink, scene *frame.Scene) (int64, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	if err := sink.Render(cw, scene); err != nil {
		f.Close()
		return cw.n, err
	}
	return cw.n, f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (r *Runner) encode(ctx context.Context, opts Options, res *Result, logger *log.Logger) {
	hooks := observability.Animation()
	output := movie.MovieName(opts.Output)
	enc := r.Encoder
	if me, ok := enc.(movie.Encoder); ok {
		if me.FPS == 0 {
			me.FPS = opts.FPS
		}
		if me.Quality == 0 {
			me.Quality = opts.Quality
		}
		enc = me
	}

	hooks.OnEncodeStart(ctx, output)
	start := time.Now()
	name, err := enc.Encode(ctx, frame.FramePattern(opts.Prefix, frame.FormatPNG), opts.Output)
	res.Stats.EncodeTime = time.Since(start)
	hooks.OnEncodeComplete(ctx, output, res.Stats.EncodeTime, err)

	if err != nil {
		res.MovieErr = err
		logger.Error("could not render movie with ffmpeg", "err", errors.UserMessage(err))
		return
	}
	res.Movie = name
	if info, err := os.Stat(name); err == nil {
		res.Bytes += info.Size()
	}
	logger.Info("encoded movie", "file", name, "duration", res.Stats.EncodeTime)
}
