// Package frame turns one rotation step of a layout into an image.
//
// Rendering a frame has three parts:
//
//   - Projection: [Project] drops the depth axis and places the four frame
//     anchors at positions computed once by [Anchors].
//   - Fitting: [NewViewport] scales the projected points into the image with
//     a fixed margin. Because the anchors never move, neither does the
//     viewport.
//   - Drawing: a [Sink] writes a [Scene] as PNG (rasterized with fogleman/gg)
//     or SVG.
//
// Frames are named with [FrameName], which produces the zero-padded sequence
// ffmpeg expects.
package frame
