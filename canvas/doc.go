// Package canvas implements a terminal drawing surface with two
// vertically stacked "pixels" per cell, drawn with Unicode half-block
// glyphs. A terminal of C columns and R rows exposes a C x 2R pixel
// canvas.
//
// Drawing happens into a hidden buffer; Render diffs it against what
// is currently displayed and writes only the changed cells, tracking
// the active colors and attributes to keep escape output minimal.
// Anti-aliased line and circle rasterizers blend stroke colors into
// whatever the affected pixels already show.
package canvas
