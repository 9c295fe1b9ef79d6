package layout

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/graphspin/pkg/graph"
)

// Defaults for [ForceDirected].
const (
	DefaultIterations = 500
	DefaultSeed       = 42
)

type forceConfig struct {
	iterations int
	seed       uint64
	startTemp  float64
}

// Option configures [ForceDirected].
type Option func(*forceConfig)

// WithIterations sets the number of simulation steps.
func WithIterations(n int) Option {
	return func(c *forceConfig) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// WithSeed sets the seed for the initial random placement.
func WithSeed(seed uint64) Option {
	return func(c *forceConfig) { c.seed = seed }
}

// WithStartTemp overrides the initial maximum displacement per step.
// The default is sqrt(n)/10.
func WithStartTemp(t float64) Option {
	return func(c *forceConfig) {
		if t > 0 {
			c.startTemp = t
		}
	}
}

// ForceDirected computes a 3D Fruchterman–Reingold layout of the real
// vertices of g. Dummy vertices and edges touching them are ignored.
//
// Vertices start at random positions in a cube of side sqrt(n). Each step
// applies pairwise repulsion d/|d|² and attraction d·|d| along edges, then
// moves every vertex by at most the current temperature, which cools
// linearly to zero.
func ForceDirected(g *graph.Graph, opts ...Option) *Layout {
	idx := make([]int, g.VertexCount())
	n := 0
	for i, v := range g.Vertices() {
		if v.Dummy {
			idx[i] = -1
			continue
		}
		idx[i] = n
		n++
	}

	cfg := forceConfig{
		iterations: DefaultIterations,
		seed:       DefaultSeed,
		startTemp:  math.Sqrt(float64(n)) / 10,
	}
	for _, o := range opts {
		o(&cfg)
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	pos := make([]r3.Vec, n)
	side := math.Sqrt(float64(n))
	for i := range pos {
		pos[i] = r3.Vec{
			X: (rng.Float64() - 0.5) * side,
			Y: (rng.Float64() - 0.5) * side,
			Z: (rng.Float64() - 0.5) * side,
		}
	}
	if n < 2 {
		return &Layout{Coords: pos}
	}

	var edges [][2]int
	for _, e := range g.Edges() {
		s, t := idx[e.Source], idx[e.Target]
		if s < 0 || t < 0 || s == t {
			continue
		}
		edges = append(edges, [2]int{s, t})
	}

	disp := make([]r3.Vec, n)
	temp := cfg.startTemp
	cool := cfg.startTemp / float64(cfg.iterations)
	for range cfg.iterations {
		clear(disp)

		for i := range n {
			for j := i + 1; j < n; j++ {
				d := r3.Sub(pos[i], pos[j])
				dlen2 := r3.Norm2(d)
				for dlen2 == 0 {
					d = r3.Vec{X: rng.Float64() * 1e-9, Y: rng.Float64() * 1e-9, Z: rng.Float64() * 1e-9}
					dlen2 = r3.Norm2(d)
				}
				f := r3.Scale(1/dlen2, d)
				disp[i] = r3.Add(disp[i], f)
				disp[j] = r3.Sub(disp[j], f)
			}
		}

		for _, e := range edges {
			d := r3.Sub(pos[e[0]], pos[e[1]])
			f := r3.Scale(r3.Norm(d), d)
			disp[e[0]] = r3.Sub(disp[e[0]], f)
			disp[e[1]] = r3.Add(disp[e[1]], f)
		}

		for i := range pos {
			l := r3.Norm(disp[i])
			if l > temp {
				disp[i] = r3.Scale(temp/l, disp[i])
			}
			pos[i] = r3.Add(pos[i], disp[i])
		}
		temp -= cool
	}

	return &Layout{Coords: pos}
}
