// Package uimesh batches screen-space rectangles, arcs, and arbitrary
// polygons into a single dynamic vertex/index buffer per frame, matching
// the original engine's UIMesh: one draw call for an entire frame's worth
// of UI geometry rather than one draw call per shape.
package uimesh
