package graph

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphspin/pkg/colors"
)

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    string      `json:"id"`
	Size  *float64    `json:"size,omitempty"`
	Color *colors.RGB `json:"color,omitempty"`
	Meta  Metadata    `json:"meta,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Read decodes a JSON graph from r. Dummy vertices are never part of the
// file format.
func Read(r io.Reader) (*Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := New()
	for _, n := range doc.Nodes {
		v := Vertex{ID: n.ID, Size: n.Size, Color: n.Color, Meta: n.Meta}
		if _, err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("add node %q: %w", n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ReadFile reads a JSON graph from path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes g as indented JSON. Dummy vertices are skipped.
func Write(g *Graph, w io.Writer) error {
	doc := document{Nodes: []node{}, Edges: []edge{}}
	for _, v := range g.vertices {
		if v.Dummy {
			continue
		}
		n := node{ID: v.ID, Size: v.Size, Color: v.Color}
		if len(v.Meta) > 0 {
			n.Meta = v.Meta
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.edges {
		src, dst := g.vertices[e.Source], g.vertices[e.Target]
		if src.Dummy || dst.Dummy {
			continue
		}
		doc.Edges = append(doc.Edges, edge{From: src.ID, To: dst.ID})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes g as JSON to path.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Marshal returns the JSON encoding of g.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Hash returns the hex SHA-256 of the structural part of g: vertex IDs in
// order and edges. Attributes do not affect the layout, so they are left out.
func Hash(g *Graph) string {
	h := sha256.New()
	for _, v := range g.vertices {
		if v.Dummy {
			continue
		}
		fmt.Fprintf(h, "v:%s\n", v.ID)
	}
	for _, e := range g.edges {
		fmt.Fprintf(h, "e:%d:%d\n", e.Source, e.Target)
	}
	return hex.EncodeToString(h.Sum(nil))
}
