package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/layout"
)

const triangle = `{
  "nodes": [
    {"id": "a", "size": 20, "color": "#ff0000"},
    {"id": "b", "size": 10, "color": [0, 255, 0]},
    {"id": "c"}
  ],
  "edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "c"}, {"from": "c", "to": "a"}]
}`

// testEnv isolates cache and config directories and returns a graph file.
func testEnv(t *testing.T) (dir, graphFile string) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir = t.TempDir()
	graphFile = filepath.Join(dir, "g.json")
	if err := os.WriteFile(graphFile, []byte(triangle), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, graphFile
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()
	want := []string{"animate", "layout", "preview", "demo", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing persistent --config flag")
	}
}

func TestAnimateCommand(t *testing.T) {
	dir, graphFile := testEnv(t)
	prefix := filepath.Join(dir, "out", "f")

	_, err := execute(t, "animate", graphFile,
		"-p", prefix, "--height", "40", "--frames", "4", "--iterations", "20", "--movie=false")
	if err != nil {
		t.Fatalf("animate: %v", err)
	}

	for i := range 4 {
		name := filepath.Join(dir, "out", fmt.Sprintf("f-%03d.png", i))
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing frame %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "f-004.png")); err == nil {
		t.Error("rendered more frames than requested")
	}
}

func TestAnimateCommandMissingEncoder(t *testing.T) {
	dir, graphFile := testEnv(t)

	logs, err := execute(t, "animate", graphFile,
		"-p", filepath.Join(dir, "f"), "--height", "40", "--frames", "2", "--iterations", "10",
		"-o", filepath.Join(dir, "anim"), "--ffmpeg", filepath.Join(dir, "no-such-ffmpeg"))
	if err != nil {
		t.Fatalf("missing ffmpeg should not fail the command: %v", err)
	}
	if !strings.Contains(logs, "could not render movie with ffmpeg") {
		t.Errorf("expected encoder failure in logs, got %q", logs)
	}
	if _, err := os.Stat(filepath.Join(dir, "f-001.png")); err != nil {
		t.Errorf("frames should still be written: %v", err)
	}
}

func TestAnimateCommandErrors(t *testing.T) {
	dir, graphFile := testEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing graph", []string{"animate", filepath.Join(dir, "missing.json")}},
		{"bad pivot", []string{"animate", graphFile, "--pivot", "1,2"}},
		{"bad plane", []string{"animate", graphFile, "--plane", "xx", "--movie=false"}},
		{"svg movie", []string{"animate", graphFile, "--format", "svg"}},
		{"no args", []string{"animate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestAnimateCommandConfig(t *testing.T) {
	dir, graphFile := testEnv(t)
	cfg := filepath.Join(dir, "config.toml")
	body := "[animate]\nframes = 3\nmovie = false\nheight = 30\n\n[layout]\niterations = 5\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	prefix := filepath.Join(dir, "c")
	if _, err := execute(t, "--config", cfg, "animate", graphFile, "-p", prefix); err != nil {
		t.Fatalf("animate: %v", err)
	}
	matches, _ := filepath.Glob(prefix + "-*.png")
	if len(matches) != 3 {
		t.Errorf("got %d frames, want 3 from config", len(matches))
	}
}

func TestLayoutThenAnimate(t *testing.T) {
	dir, graphFile := testEnv(t)
	layoutFile := filepath.Join(dir, "layout.json")

	if _, err := execute(t, "layout", graphFile, "-o", layoutFile, "--iterations", "10"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := layout.ReadFile(layoutFile)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if l.Len() != 3 {
		t.Errorf("layout has %d coords, want 3", l.Len())
	}

	prefix := filepath.Join(dir, "l")
	if _, err := execute(t, "animate", graphFile, "--layout", layoutFile,
		"-p", prefix, "--height", "30", "--frames", "2", "--movie=false", "--format", "svg"); err != nil {
		t.Fatalf("animate with layout: %v", err)
	}
	if _, err := os.Stat(prefix + "-000.svg"); err != nil {
		t.Errorf("missing svg frame: %v", err)
	}
}

func TestPreviewCommand(t *testing.T) {
	dir, graphFile := testEnv(t)

	out := filepath.Join(dir, "g.dot")
	if _, err := execute(t, "preview", graphFile, "-f", "dot", "-o", out); err != nil {
		t.Fatalf("preview: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "graph G {") {
		t.Errorf("unexpected DOT output: %q", data)
	}

	if _, err := execute(t, "preview", graphFile, "-f", "pdf"); err == nil {
		t.Error("expected error for unsupported preview format")
	}
}

func TestDemoCommand(t *testing.T) {
	dir, _ := testEnv(t)
	out := filepath.Join(dir, "demo.json")

	if _, err := execute(t, "demo", "-n", "30", "-o", out); err != nil {
		t.Fatalf("demo: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("demo graph not written: %v", err)
	}
}

func TestParsePivot(t *testing.T) {
	p, err := parsePivot([]float64{1, 2, 3})
	if err != nil || p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Errorf("parsePivot = %v, %v", p, err)
	}
	if _, err := parsePivot([]float64{1}); err == nil {
		t.Error("expected error for short pivot")
	}
}

func TestMissingInputFiles(t *testing.T) {
	dir, graphFile := testEnv(t)
	missing := filepath.Join(dir, "missing.json")

	tests := []struct {
		name string
		args []string
	}{
		{"animate graph", []string{"animate", missing, "--movie=false"}},
		{"animate layout", []string{"animate", graphFile, "--layout", missing, "--movie=false"}},
		{"layout graph", []string{"layout", missing}},
		{"preview graph", []string{"preview", missing}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, errors.ErrCodeFileNotFound) {
				t.Fatalf("err = %v, want FILE_NOT_FOUND", err)
			}
			msg := ErrorMessage(err)
			if !strings.Contains(msg, missing) || !strings.Contains(msg, "graphspin demo") {
				t.Errorf("ErrorMessage = %q, want path and demo hint", msg)
			}
		})
	}
}

func TestMalformedGraphFile(t *testing.T) {
	dir, _ := testEnv(t)
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"nodes": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "layout", bad)
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("err = %v, want INVALID_GRAPH", err)
	}
	if strings.Contains(ErrorMessage(err), "graphspin demo") {
		t.Error("demo hint belongs to missing files only")
	}
}
