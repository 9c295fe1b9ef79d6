package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/render/preview"
)

const (
	previewSVG  = "svg"
	previewHTML = "html"
	previewDOT  = "dot"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output   string
	format   string
	detailed bool
}

// previewCommand creates the preview command, a quick 2D look at a graph
// before spending time on the animation.
func (c *CLI) previewCommand() *cobra.Command {
	var o previewOpts

	cmd := &cobra.Command{
		Use:   "preview [graph.json]",
		Short: "Render a 2D preview of a graph",
		Long: `Render a 2D preview of a graph.

svg renders a static picture with Graphviz, html writes an interactive
force-directed page, and dot writes the Graphviz source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], o)
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVarP(&o.format, "format", "f", previewSVG, "output format: svg, html, dot")
	cmd.Flags().BoolVar(&o.detailed, "detailed", false, "label vertices with size and degree")

	registerCompletions(cmd, map[string][]string{"format": {previewSVG, previewHTML, previewDOT}})
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, o previewOpts) error {
	format := strings.ToLower(o.format)
	switch format {
	case previewSVG, previewHTML, previewDOT:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid preview format %q (must be svg, html, or dot)", o.format)
	}

	g, err := readGraph(input)
	if err != nil {
		return err
	}
	g.ApplyDefaults()

	out := o.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	popts := preview.Options{Detailed: o.detailed, Title: filepath.Base(input)}
	var data []byte
	switch format {
	case previewDOT:
		data = []byte(preview.ToDOT(g, popts))
	case previewSVG:
		if data, err = preview.RenderSVG(ctx, preview.ToDOT(g, popts)); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "render preview")
		}
	case previewHTML:
		var sb strings.Builder
		if err := preview.RenderHTML(&sb, g, popts); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "render preview")
		}
		data = []byte(sb.String())
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", out)
	}
	commandLogger(c.Logger, "preview", input).Debug("wrote preview", "file", out, "format", format, "bytes", len(data))

	printSuccess("Preview of %d vertices", g.RealCount())
	printFile(out)
	if format == previewHTML {
		printNextStep("Open it", fmt.Sprintf("open %s", out))
	}
	return nil
}
