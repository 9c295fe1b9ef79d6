package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Config is the optional TOML configuration file. Values act as flag
// defaults: a flag given on the command line always wins.
//
//	[animate]
//	height = 1080
//	fps = 30
//	pivot = [0.0, 0.0, -20.0]
//
//	[layout]
//	seed = 7
//	iterations = 1000
type Config struct {
	Animate AnimateConfig `toml:"animate"`
	Layout  LayoutConfig  `toml:"layout"`
}

// AnimateConfig holds defaults for the animate command.
type AnimateConfig struct {
	Prefix  string    `toml:"prefix"`
	Height  int       `toml:"height"`
	Format  string    `toml:"format"`
	Frames  int       `toml:"frames"`
	Plane   string    `toml:"plane"`
	Pivot   []float64 `toml:"pivot"`
	Movie   *bool     `toml:"movie"`
	Output  string    `toml:"output"`
	FPS     int       `toml:"fps"`
	Quality int       `toml:"quality"`
	FFmpeg  string    `toml:"ffmpeg"`
}

// LayoutConfig holds defaults for the force-directed layout, shared by the
// animate and layout commands.
type LayoutConfig struct {
	Seed       uint64 `toml:"seed"`
	Iterations int    `toml:"iterations"`
}

// loadConfig reads the config file at path. An empty path means the
// default location, which may be absent; an explicit path must exist.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String(), "file", path)
	}
	logger.Debug("loaded config", "file", path)
	return &cfg, nil
}

// flagValues maps flag names to config values rendered as flag strings.
// Zero values are left out.
func (c *Config) flagValues() map[string]string {
	a, l := c.Animate, c.Layout
	vals := map[string]string{}
	setStr := func(name, v string) {
		if v != "" {
			vals[name] = v
		}
	}
	setInt := func(name string, v int) {
		if v != 0 {
			vals[name] = strconv.Itoa(v)
		}
	}

	setStr("prefix", a.Prefix)
	setInt("height", a.Height)
	setStr("format", a.Format)
	setInt("frames", a.Frames)
	setStr("plane", a.Plane)
	setStr("output", a.Output)
	setInt("fps", a.FPS)
	setInt("quality", a.Quality)
	setStr("ffmpeg", a.FFmpeg)
	if a.Movie != nil {
		vals["movie"] = strconv.FormatBool(*a.Movie)
	}
	if len(a.Pivot) > 0 {
		parts := make([]string, len(a.Pivot))
		for i, v := range a.Pivot {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		vals["pivot"] = strings.Join(parts, ",")
	}
	if l.Seed != 0 {
		vals["seed"] = strconv.FormatUint(l.Seed, 10)
	}
	setInt("iterations", l.Iterations)
	return vals
}

// apply sets every flag of cmd that the config covers and the user did
// not set explicitly.
func (c *Config) apply(cmd *cobra.Command) error {
	vals := c.flagValues()
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		v, ok := vals[f.Name]
		if !ok || f.Changed || err != nil {
			return
		}
		if setErr := cmd.Flags().Set(f.Name, v); setErr != nil {
			err = fmt.Errorf("config value for %q: %w", f.Name, setErr)
		}
	})
	return err
}

// applyConfig loads the config file and applies it to cmd's flags.
func (c *CLI) applyConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath, c.Logger)
	if err != nil {
		return err
	}
	return cfg.apply(cmd)
}
