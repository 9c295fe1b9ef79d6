// Package cli implements the graphspin command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphspin/pkg/animate"
	"github.com/matzehuels/graphspin/pkg/buildinfo"
	"github.com/matzehuels/graphspin/pkg/cache"
	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/graph"
	"github.com/matzehuels/graphspin/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphspin"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "graphspin renders rotating 3D graph layouts",
		Long: `graphspin lays a graph out in three dimensions, spins the layout through a full
revolution, and writes one image per degree. Vertices fade with depth so the
rotation reads as 3D. The frames can be stitched into a movie with ffmpeg.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/graphspin/config.toml)")

	root.AddCommand(c.animateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates an animation runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*animate.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return animate.NewRunner(cc, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphspin/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configFile returns the default config file path (~/.config/graphspin/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// ErrorMessage formats err for the terminal, without internal error codes.
func ErrorMessage(err error) string {
	msg := styleIconError.Render(iconError) + " " + errors.UserMessage(err)
	if errors.GetCode(err) == errors.ErrCodeFileNotFound {
		msg += "\n" + StyleDim.Render("  create a sample graph with: "+appName+" demo")
	}
	return msg
}

// =============================================================================
// Input Files
// =============================================================================

// readGraph reads a graph file. A missing file is reported as FILE_NOT_FOUND.
func readGraph(path string) (*graph.Graph, error) {
	g, err := graph.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFile(errors.ErrCodeInvalidGraph, err, path)
	}
	return g, nil
}

// readLayout reads a precomputed layout file.
func readLayout(path string) (*layout.Layout, error) {
	l, err := layout.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFile(errors.ErrCodeInvalidLayout, err, path)
	}
	return l, nil
}
