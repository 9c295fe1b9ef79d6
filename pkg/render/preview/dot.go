package preview

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphspin/pkg/colors"
	"github.com/matzehuels/graphspin/pkg/graph"
)

// Options configures previews.
type Options struct {
	// Detailed includes size and metadata in node labels.
	// When false, only the vertex ID is shown.
	Detailed bool

	// Title is shown in the HTML page title.
	Title string
}

// ToDOT converts g to an undirected Graphviz graph. Vertex colours become
// fill colours; vertices without a colour are white.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"black\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fontcolor=black, color=white];\n")
	buf.WriteString("  edge [color=\"#888888\"];\n")
	buf.WriteString("\n")

	for i, v := range g.Vertices() {
		if v.Dummy {
			continue
		}
		fill := colors.White
		if v.Color != nil {
			fill = *v.Color
		}
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(g, i, opts.Detailed)),
			fmt.Sprintf("fillcolor=%q", fill.Hex()),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		src, dst := g.Vertex(e.Source), g.Vertex(e.Target)
		if src.Dummy || dst.Dummy {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", src.ID, dst.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *graph.Graph, i int, detailed bool) string {
	v := g.Vertex(i)
	if !detailed {
		return v.ID
	}

	parts := []string{
		fmt.Sprintf("size: %g", g.SizeOf(i)),
		fmt.Sprintf("degree: %d", g.Degree(i)),
	}
	for _, k := range slices.Sorted(maps.Keys(v.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, v.Meta[k]))
	}
	return v.ID + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one sized
// in user units, so browsers scale the preview to its viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
