package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/graphspin/pkg/animate"
	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/graph"
	"github.com/matzehuels/graphspin/pkg/layout"
	"github.com/matzehuels/graphspin/pkg/movie"
	"github.com/matzehuels/graphspin/pkg/render/frame"
)

// animateOpts holds the command-line flags for the animate command.
type animateOpts struct {
	layoutFile string
	noCache    bool
	ffmpeg     string
	pivot      []float64
	opts       animate.Options
}

// animateCommand creates the animate command, which renders one frame per
// degree of rotation and optionally stitches them into a movie.
func (c *CLI) animateCommand() *cobra.Command {
	o := animateOpts{
		opts: animate.Options{
			Prefix:     animate.DefaultPrefix,
			Height:     animate.DefaultHeight,
			Format:     frame.FormatPNG,
			Frames:     layout.DefaultFrames,
			Plane:      layout.PlaneXZ.String(),
			Seed:       layout.DefaultSeed,
			Iterations: layout.DefaultIterations,
			Movie:      true,
			Output:     animate.DefaultOutput,
			FPS:        movie.DefaultFPS,
			Quality:    movie.DefaultQuality,
		},
		ffmpeg: movie.DefaultBinary,
		pivot:  []float64{layout.DefaultPivot.X, layout.DefaultPivot.Y, layout.DefaultPivot.Z},
	}

	cmd := &cobra.Command{
		Use:   "animate [graph.json]",
		Short: "Render a rotating 3D animation of a graph",
		Long: `Render a rotating 3D animation of a graph.

The graph is laid out in three dimensions (or the layout is read from
--layout), spun one degree per frame about a pivot behind the scene, and
each frame is written as <prefix>-NNN.png. With --movie the frames are
encoded into <output>.mp4 using ffmpeg; a missing or failing ffmpeg is
reported but does not fail the command.`,
		Example: `  graphspin animate graph.json
  graphspin animate graph.json -p out/frame --height 1080 -o spin
  graphspin animate graph.json --layout layout.json --movie=false`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.applyConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pivot, err := parsePivot(o.pivot)
			if err != nil {
				return err
			}
			o.opts.Pivot = &pivot
			return c.runAnimate(cmd.Context(), args[0], &o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.layoutFile, "layout", "", "precomputed layout JSON (skips the force-directed layout)")
	f.StringVarP(&o.opts.Prefix, "prefix", "p", o.opts.Prefix, "frame file prefix, may include a directory")
	f.IntVar(&o.opts.Height, "height", o.opts.Height, "frame height in pixels (width follows the layout's aspect ratio)")
	f.StringVar(&o.opts.Format, "format", o.opts.Format, "frame format: png, svg")
	f.IntVar(&o.opts.Frames, "frames", o.opts.Frames, "number of frames per revolution")
	f.StringVar(&o.opts.Plane, "plane", o.opts.Plane, "rotation plane: xy, xz, yz")
	f.Float64SliceVar(&o.pivot, "pivot", o.pivot, "rotation pivot x,y,z")
	f.Uint64Var(&o.opts.Seed, "seed", o.opts.Seed, "random seed for the force-directed layout")
	f.IntVar(&o.opts.Iterations, "iterations", o.opts.Iterations, "force-directed layout iterations")
	f.BoolVar(&o.opts.Refresh, "refresh", false, "recompute the layout even if it is cached")
	f.BoolVar(&o.noCache, "no-cache", false, "disable the layout cache")
	f.BoolVar(&o.opts.Movie, "movie", o.opts.Movie, "encode the frames into a movie with ffmpeg")
	f.StringVarP(&o.opts.Output, "output", "o", o.opts.Output, "movie file name without extension")
	f.IntVar(&o.opts.FPS, "fps", o.opts.FPS, "movie frame rate")
	f.IntVar(&o.opts.Quality, "quality", o.opts.Quality, "ffmpeg -qscale value (lower is better)")
	f.StringVar(&o.ffmpeg, "ffmpeg", o.ffmpeg, "ffmpeg binary")

	registerCompletions(cmd, animateCompletions)
	return cmd
}

func (c *CLI) runAnimate(ctx context.Context, input string, o *animateOpts) error {
	g, err := readGraph(input)
	if err != nil {
		return err
	}

	var l *layout.Layout
	if o.layoutFile != "" {
		if l, err = readLayout(o.layoutFile); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(o.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()
	runner.Encoder = movie.Encoder{Binary: o.ffmpeg, FPS: o.opts.FPS, Quality: o.opts.Quality}

	logger := commandLogger(c.Logger, "animate", input)
	o.opts.Logger = logger
	var res *animate.Result
	err = withProgress(ctx, fmt.Sprintf("Animating %s...", input), func() error {
		var runErr error
		res, runErr = runner.Run(ctx, g, l, o.opts)
		return runErr
	})
	if err != nil {
		return err
	}

	logRunSummary(logger, res)
	printAnimateResult(g, res)
	return nil
}

func printAnimateResult(g *graph.Graph, res *animate.Result) {
	printSuccess("Rendered %d frames at %dx%d", len(res.Frames), res.Width, res.Height)
	printFileRange(res.Frames)
	switch {
	case res.Movie != "":
		printFile(res.Movie)
	case res.MovieErr != nil:
		printWarning("could not render movie with ffmpeg")
		printDetail("%s", errors.UserMessage(res.MovieErr))
	}
	printStats(g.VertexCount(), g.EdgeCount(), res.LayoutHit, res.Bytes)
	if res.Defaults.Size || res.Defaults.Color {
		printDetail("graph had no size or color attributes; used defaults (size %v, color %v)", res.Defaults.Size, res.Defaults.Color)
	}
}

// parsePivot converts the --pivot flag into a vector.
func parsePivot(v []float64) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, errors.New(errors.ErrCodeInvalidInput, "pivot needs three coordinates x,y,z, got %d", len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
