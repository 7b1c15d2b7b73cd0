package core

// VertexAttribute is a bitmask describing which fields a vertex stream
// carries. Shaders declare the set of attributes they consume; VertexBufferData
// derives its per-vertex stride from the same bitmask.
type VertexAttribute uint32

// Recognized vertex attributes, matching the closed set a Shader may declare.
const (
	AttribPosition VertexAttribute = 1 << iota
	AttribPosition2
	AttribPosition4
	AttribVelocity
	AttribUV
	AttribColor32
	AttribColor128
	AttribTangent
	AttribNormal
	AttribExtraVec4
	AttribExtraInt
)

// attributeOrder is the canonical field order used to lay out a vertex: the
// order in which Stride and CopyInto walk the bitmask. Keeping this as a
// single ordered slice means Stride and CopyInto can never disagree on
// layout.
var attributeOrder = []struct {
	bit   VertexAttribute
	words int // float32 words contributed per vertex (int attributes also counted in words)
}{
	{AttribPosition, 3},
	{AttribPosition2, 2},
	{AttribPosition4, 4},
	{AttribVelocity, 3},
	{AttribUV, 2},
	{AttribColor32, 1}, // packed RGBA8 into one float-sized word
	{AttribColor128, 4},
	{AttribTangent, 3},
	{AttribNormal, 3},
	{AttribExtraVec4, 4},
	{AttribExtraInt, 1},
}

// Stride returns the number of float32 words a single vertex occupies when it
// carries exactly the given attributes.
func Stride(attribs VertexAttribute) int {
	words := 0
	for _, a := range attributeOrder {
		if attribs&a.bit != 0 {
			words += a.words
		}
	}
	return words
}

// attributeWords returns the word count contributed by a single attribute.
func attributeWords(bit VertexAttribute) int {
	for _, a := range attributeOrder {
		if a.bit == bit {
			return a.words
		}
	}
	return 0
}

// Has reports whether attribs declares bit.
func (attribs VertexAttribute) Has(bit VertexAttribute) bool {
	return attribs&bit != 0
}
