// Package text turns a string plus a baked font.Font into per-glyph quad
// placements: walking runes left to right, advancing by each glyph's
// advance width, and applying the kerning adjustment HarfBuzz reported for
// each adjacent pair. The hal backend turns the
// resulting quads into vertex data using the font's atlas texture.
package text
