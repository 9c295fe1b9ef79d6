package graph

import (
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/graphspin/pkg/colors"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the ID is empty.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertexID is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists.
	ErrDuplicateVertexID = errors.New("duplicate vertex ID")

	// ErrUnknownSourceVertex is returned by [Graph.AddEdge] when the source
	// vertex does not exist.
	ErrUnknownSourceVertex = errors.New("unknown source vertex")

	// ErrUnknownTargetVertex is returned by [Graph.AddEdge] when the target
	// vertex does not exist.
	ErrUnknownTargetVertex = errors.New("unknown target vertex")
)

// Metadata stores arbitrary key-value pairs attached to a vertex.
type Metadata map[string]any

// Vertex is a graph vertex. Size and Color are optional; nil means unset.
type Vertex struct {
	ID    string
	Size  *float64
	Color *colors.RGB
	Meta  Metadata

	// Dummy marks the synthetic frame anchors added by [Frame].
	Dummy bool
}

// Edge connects two vertices by index. Source is the vertex an edge
// inherits its colour from.
type Edge struct {
	Source int
	Target int
}

// Graph is an ordered, undirected multigraph with vertex attributes.
// The zero value is not usable; create graphs with [New].
// Graph is not safe for concurrent use.
type Graph struct {
	vertices []*Vertex
	index    map[string]int
	edges    []Edge
	degree   []int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddVertex appends v and returns its index.
func (g *Graph) AddVertex(v Vertex) (int, error) {
	if v.ID == "" {
		return -1, ErrInvalidVertexID
	}
	if _, exists := g.index[v.ID]; exists {
		return -1, ErrDuplicateVertexID
	}
	if v.Meta == nil {
		v.Meta = Metadata{}
	}
	i := len(g.vertices)
	g.vertices = append(g.vertices, &v)
	g.index[v.ID] = i
	g.degree = append(g.degree, 0)
	return i, nil
}

// AddEdge adds an edge between the vertices with the given IDs.
// Parallel edges and self-loops are allowed; a self-loop adds two to the
// vertex degree.
func (g *Graph) AddEdge(from, to string) error {
	src, ok := g.index[from]
	if !ok {
		return ErrUnknownSourceVertex
	}
	dst, ok := g.index[to]
	if !ok {
		return ErrUnknownTargetVertex
	}
	return g.AddEdgeIndex(src, dst)
}

// AddEdgeIndex adds an edge between the vertices at indices src and dst.
// It is the only way to reach the anchors added by [Frame].
func (g *Graph) AddEdgeIndex(src, dst int) error {
	if src < 0 || src >= len(g.vertices) {
		return ErrUnknownSourceVertex
	}
	if dst < 0 || dst >= len(g.vertices) {
		return ErrUnknownTargetVertex
	}
	g.edges = append(g.edges, Edge{Source: src, Target: dst})
	g.degree[src]++
	g.degree[dst]++
	return nil
}

// Vertex returns the vertex at index i. It panics if i is out of range.
func (g *Graph) Vertex(i int) *Vertex { return g.vertices[i] }

// Lookup returns the vertex with the given ID and its index.
func (g *Graph) Lookup(id string) (*Vertex, int, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, -1, false
	}
	return g.vertices[i], i, true
}

// Vertices returns the vertices in insertion order. The pointers refer to
// the graph's own vertices.
func (g *Graph) Vertices() []*Vertex { return slices.Clone(g.vertices) }

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// VertexCount returns the number of vertices, dummies included.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RealCount returns the number of non-dummy vertices.
func (g *Graph) RealCount() int {
	n := 0
	for _, v := range g.vertices {
		if !v.Dummy {
			n++
		}
	}
	return n
}

// Degree returns the degree of the vertex at index i.
func (g *Graph) Degree(i int) int { return g.degree[i] }

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	if len(g.degree) == 0 {
		return 0
	}
	return slices.Max(g.degree)
}

// HasSize reports whether any vertex has an explicit size.
func (g *Graph) HasSize() bool {
	return slices.ContainsFunc(g.vertices, func(v *Vertex) bool { return v.Size != nil })
}

// HasColor reports whether any vertex has an explicit colour.
func (g *Graph) HasColor() bool {
	return slices.ContainsFunc(g.vertices, func(v *Vertex) bool { return v.Color != nil })
}

// Defaults reports which attribute defaults [Graph.ApplyDefaults] filled in.
type Defaults struct {
	Size  bool
	Color bool
}

// ApplyDefaults fills in missing attributes. If no vertex has a size, every
// vertex gets its degree as size. If no vertex has a colour, every vertex is
// white. Graphs that already carry an attribute on any vertex are left
// untouched for that attribute.
func (g *Graph) ApplyDefaults() Defaults {
	var d Defaults
	if !g.HasSize() {
		for i, v := range g.vertices {
			size := float64(g.degree[i])
			v.Size = &size
		}
		d.Size = true
	}
	if !g.HasColor() {
		for _, v := range g.vertices {
			c := colors.White
			v.Color = &c
		}
		d.Color = true
	}
	return d
}

// SizeOf returns the size of vertex i, falling back to its degree when the
// vertex has no size of its own.
func (g *Graph) SizeOf(i int) float64 {
	if s := g.vertices[i].Size; s != nil {
		return *s
	}
	return float64(g.degree[i])
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: make([]*Vertex, len(g.vertices)),
		index:    maps.Clone(g.index),
		edges:    slices.Clone(g.edges),
		degree:   slices.Clone(g.degree),
	}
	for i, v := range g.vertices {
		c.vertices[i] = v.clone()
	}
	return c
}

func (v *Vertex) clone() *Vertex {
	out := *v
	if v.Size != nil {
		s := *v.Size
		out.Size = &s
	}
	if v.Color != nil {
		col := *v.Color
		out.Color = &col
	}
	out.Meta = maps.Clone(v.Meta)
	return &out
}
