package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphspin/pkg/animate"
	"github.com/matzehuels/graphspin/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output     string
	seed       uint64
	iterations int
	refresh    bool
	noCache    bool
}

// layoutCommand creates the layout command, which computes a 3D
// force-directed layout once so that several animations can share it.
func (c *CLI) layoutCommand() *cobra.Command {
	o := layoutOpts{
		output:     "layout.json",
		seed:       layout.DefaultSeed,
		iterations: layout.DefaultIterations,
	}

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a 3D force-directed layout",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.applyConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], o)
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", o.output, "layout JSON file")
	cmd.Flags().Uint64Var(&o.seed, "seed", o.seed, "random seed")
	cmd.Flags().IntVar(&o.iterations, "iterations", o.iterations, "number of iterations")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the layout cache")

	registerCompletions(cmd, nil)
	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input string, o layoutOpts) error {
	g, err := readGraph(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(o.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	logger := commandLogger(c.Logger, "layout", input)
	prog := newProgress(logger)
	var (
		l   *layout.Layout
		hit bool
	)
	err = withProgress(ctx, fmt.Sprintf("Laying out %s...", input), func() error {
		var runErr error
		l, hit, runErr = runner.LayoutWithCacheInfo(ctx, g, animate.Options{
			Seed:       o.seed,
			Iterations: o.iterations,
			Refresh:    o.refresh,
			Logger:     logger,
		})
		return runErr
	})
	if err != nil {
		return err
	}
	if err := layout.WriteFile(l, o.output); err != nil {
		return err
	}
	prog.done("Wrote layout")

	printSuccess("Layout of %d vertices", l.Len())
	printFile(o.output)
	printStats(g.VertexCount(), g.EdgeCount(), hit, 0)
	printNewline()
	printNextStep("Animate it", fmt.Sprintf("graphspin animate %s --layout %s", input, o.output))
	return nil
}
