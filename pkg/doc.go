// Package pkg holds the graphspin libraries.
//
// # Overview
//
// graphspin turns a graph into a rotating 3D animation. The packages follow
// the data through one run:
//
//	graph JSON
//	     ↓
//	[graph]          vertices, edges, attribute defaults, frame anchors
//	     ↓
//	[layout]         3D force-directed coordinates, rotation
//	     ↓
//	[depth]          depth-faded stroke, fill, and edge colours
//	     ↓
//	[render/frame]   projection, viewport, PNG/SVG frames
//	     ↓
//	[movie]          ffmpeg encoding
//
// [animate] drives the whole loop. [cache] keeps computed layouts between
// runs, [render/preview] draws quick 2D previews, and [observability]
// carries progress events to the CLI.
package pkg
