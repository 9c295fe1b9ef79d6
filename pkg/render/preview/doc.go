// Package preview renders static views of a graph so it can be checked
// before animating it.
//
// Two renderers are provided:
//
//   - [ToDOT] and [RenderSVG] produce an undirected node-link diagram laid
//     out by Graphviz (via go-graphviz, no system install needed).
//   - [RenderHTML] writes an interactive force-directed page built with
//     go-echarts, with vertex colours and sizes taken from the graph.
//
// Frame anchors added by graph.Frame are never shown.
package preview
