package cli

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/graphspin/pkg/animate"
)

// newLogger creates the CLI logger. Timestamps are "HH:MM:SS.ms" and the
// run and graph fields are highlighted so interleaved runs stay readable.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	styles := log.DefaultStyles()
	styles.Keys["run"] = lipgloss.NewStyle().Foreground(colorCyan)
	styles.Keys["graph"] = lipgloss.NewStyle().Foreground(colorBlue)
	styles.Values["graph"] = lipgloss.NewStyle().Bold(true)
	logger.SetStyles(styles)
	return logger
}

// commandLogger scopes l to one subcommand working on one input file.
func commandLogger(l *log.Logger, cmd, input string) *log.Logger {
	return l.With("cmd", cmd, "graph", filepath.Base(input))
}

// logRunSummary writes the timings of an animation run at debug level.
func logRunSummary(l *log.Logger, res *animate.Result) {
	l.Debug("run summary",
		"run", res.RunID,
		"frames", len(res.Frames),
		"layout", res.Stats.LayoutTime.Round(time.Millisecond),
		"layout_cached", res.LayoutHit,
		"render", res.Stats.RenderTime.Round(time.Millisecond),
		"encode", res.Stats.EncodeTime.Round(time.Millisecond),
		"written", humanize.Bytes(uint64(res.Bytes)))
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// e.g. "Wrote layout (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
