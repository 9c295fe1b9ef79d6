package preview

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/graphspin/pkg/graph"
)

const (
	minSymbolSize = 4.0
	maxSymbolSize = 40.0
)

// RenderHTML writes an interactive force-directed view of g as a
// standalone HTML page.
func RenderHTML(w io.Writer, g *graph.Graph, o Options) error {
	nodes, links := echartsData(g)

	title := o.Title
	if title == "" {
		title = "graphspin preview"
	}

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	chart.AddSeries("graph", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:    "force",
			Draggable: opts.Bool(true),
			Roam:      opts.Bool(true),
			Force:     &opts.GraphForce{Repulsion: 200, EdgeLength: 30},
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(o.Detailed), Position: "top"}),
	)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(chart)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// echartsData converts g to echarts nodes and links. Symbol sizes are the
// vertex sizes rescaled into [minSymbolSize, maxSymbolSize].
func echartsData(g *graph.Graph) ([]opts.GraphNode, []opts.GraphLink) {
	var hi float64
	for i, v := range g.Vertices() {
		if !v.Dummy {
			hi = math.Max(hi, g.SizeOf(i))
		}
	}

	nodes := make([]opts.GraphNode, 0, g.VertexCount())
	for i, v := range g.Vertices() {
		if v.Dummy {
			continue
		}
		size := minSymbolSize
		if hi > 0 {
			size += (maxSymbolSize - minSymbolSize) * math.Max(g.SizeOf(i), 0) / hi
		}
		n := opts.GraphNode{
			Name:       v.ID,
			Value:      float32(g.Degree(i)),
			SymbolSize: size,
		}
		if v.Color != nil {
			n.ItemStyle = &opts.ItemStyle{Color: v.Color.Hex()}
		}
		nodes = append(nodes, n)
	}

	links := make([]opts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		src, dst := g.Vertex(e.Source), g.Vertex(e.Target)
		if src.Dummy || dst.Dummy {
			continue
		}
		links = append(links, opts.GraphLink{Source: src.ID, Target: dst.ID})
	}
	return nodes, links
}
