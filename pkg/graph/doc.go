// Package graph provides the vertex/edge model animated by graphspin, the
// frame augmentation step, and the node-link JSON format used on disk.
//
// # Model
//
// A [Graph] keeps its vertices in insertion order. Order matters: the i-th
// entry of a 3D layout belongs to the i-th real vertex. Edges are undirected
// for degree purposes but keep their source so that edge colours can be
// inherited from the source vertex.
//
// Vertices carry two optional attributes, Size and Color. Defaults are
// applied per attribute, not per vertex (see [Graph.ApplyDefaults]): a graph
// in which no vertex has a size gets degree-based sizes, and a graph in which
// no vertex has a colour is painted white.
//
// # Framing
//
// [Frame] returns a copy of a graph with four dummy vertices appended. The
// renderer pins them to the corners of a fixed quadrilateral, which keeps the
// viewport stable while the layout rotates.
//
// # JSON Format
//
//	{
//	  "nodes": [
//	    {"id": "a", "size": 4, "color": [255, 0, 0]},
//	    {"id": "b", "color": "#00ff00"}
//	  ],
//	  "edges": [
//	    {"from": "a", "to": "b"}
//	  ]
//	}
//
// Use [ReadFile] / [WriteFile] for files, [Read] / [Write] for streams and
// [Marshal] / [Hash] for in-memory use and cache keys.
package graph
