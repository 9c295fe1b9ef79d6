// Package render groups the graphspin renderers.
//
// [frame] draws the animation frames: one image per rotation step, with
// vertices projected onto the screen plane and faded by depth.
//
// [preview] draws a static 2D picture of a graph with Graphviz, or an
// interactive HTML page, to check a graph before animating it.
package render
