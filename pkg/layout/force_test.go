package layout

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/graphspin/pkg/graph"
)

func ring(n int) *graph.Graph {
	g := graph.New()
	ids := make([]string, n)
	for i := range n {
		ids[i] = string(rune('a' + i))
		g.AddVertex(graph.Vertex{ID: ids[i]})
	}
	for i := range n {
		g.AddEdge(ids[i], ids[(i+1)%n])
	}
	return g
}

func TestForceDirectedDeterministic(t *testing.T) {
	g := ring(6)
	a := ForceDirected(g, WithSeed(3), WithIterations(50))
	b := ForceDirected(g, WithSeed(3), WithIterations(50))
	for i := range a.Coords {
		if a.Coords[i] != b.Coords[i] {
			t.Fatalf("coord %d differs: %v vs %v", i, a.Coords[i], b.Coords[i])
		}
	}

	c := ForceDirected(g, WithSeed(4), WithIterations(50))
	if a.Coords[0] == c.Coords[0] {
		t.Error("different seeds produced the same layout")
	}
}

func TestForceDirectedSkipsDummies(t *testing.T) {
	framed := graph.Frame(ring(5))
	l := ForceDirected(framed, WithIterations(10))
	if err := l.Validate(5); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestForceDirectedPullsNeighboursTogether(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddVertex(graph.Vertex{ID: id})
	}
	g.AddEdge("a", "b")
	g.AddEdge("c", "d")

	l := ForceDirected(g)
	if err := l.Validate(4); err != nil {
		t.Fatal(err)
	}
	near := r3.Norm(r3.Sub(l.Coords[0], l.Coords[1]))
	far := r3.Norm(r3.Sub(l.Coords[0], l.Coords[2]))
	if near >= far {
		t.Errorf("adjacent distance %v >= non-adjacent %v", near, far)
	}
}

func TestForceDirectedTiny(t *testing.T) {
	for _, n := range []int{0, 1} {
		g := graph.New()
		for i := range n {
			g.AddVertex(graph.Vertex{ID: string(rune('a' + i))})
		}
		l := ForceDirected(g)
		if l.Len() != n {
			t.Errorf("n=%d: Len = %d", n, l.Len())
		}
		for _, c := range l.Coords {
			if math.IsNaN(c.X) {
				t.Errorf("n=%d: NaN coordinate", n)
			}
		}
	}
}
