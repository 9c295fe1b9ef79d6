package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

type document struct {
	Coords [][3]float64 `json:"coords"`
}

// Marshal returns the JSON encoding of l: {"coords":[[x,y,z],...]}.
func Marshal(l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a layout from its JSON encoding.
func Unmarshal(data []byte) (*Layout, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes l as JSON to w.
func Write(l *Layout, w io.Writer) error {
	doc := document{Coords: make([][3]float64, len(l.Coords))}
	for i, c := range l.Coords {
		doc.Coords[i] = [3]float64{c.X, c.Y, c.Z}
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// Read decodes a JSON layout from r. Non-finite coordinates are rejected.
func Read(r io.Reader) (*Layout, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	l := &Layout{Coords: make([]r3.Vec, len(doc.Coords))}
	for i, c := range doc.Coords {
		l.Coords[i] = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	}
	if err := l.Validate(len(l.Coords)); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadFile reads a JSON layout from path.
func ReadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes l as JSON to path.
func WriteFile(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
