// Package font bakes a signed-distance-field atlas for a TrueType/OpenType
// font: one CPU-side pass per LoadFont call that either loads a
// previously-baked atlas image from disk or renders and packs one glyph per
// atlas channel (R, G, B, A), generating the distance field for each
// in-process. Glyph metrics and kerning come from
// github.com/go-text/typesetting; the resulting atlas image is an
// ordinary 2D texture the hal backend uploads like any other.
package font
