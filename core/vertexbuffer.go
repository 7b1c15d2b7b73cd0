package core

import "math"

// defaultColor32 is opaque white packed as a single float-sized word (RGBA8,
// little-endian 0xFFFFFFFF interpreted as a float32 bit pattern via the same
// rules the shader unpacks it with). Stored here as the raw bits.
const defaultColor32 uint32 = 0xFFFFFFFF

// VertexBufferData is a type-erased, interleaved float vertex stream. Its
// per-vertex stride is derived from the attribute bitmask it was created
// with; CopyInto can project a (possibly different) subset of attributes out
// of it, filling any attribute the destination wants but the source lacks
// with the attribute's documented default.
type VertexBufferData struct {
	Attributes VertexAttribute
	Data       []float32
	VertexCount int

	dynamic  bool
	maxCount int
}

// Initialize creates a static vertex buffer from caller-supplied interleaved
// data. data must already be laid out per Stride(attribs).
func (v *VertexBufferData) Initialize(attribs VertexAttribute, data []float32, vertexCount int) {
	v.Attributes = attribs
	v.Data = data
	v.VertexCount = vertexCount
	v.dynamic = false
	v.maxCount = vertexCount
}

// InitializeDynamic pre-allocates backing storage for up to maxCount vertices
// but starts out logically empty. Used for physics-debug lines, UI mesh and
// text streams that are rewritten every frame.
func (v *VertexBufferData) InitializeDynamic(attribs VertexAttribute, maxCount int) {
	v.Attributes = attribs
	v.Data = make([]float32, maxCount*Stride(attribs))
	v.VertexCount = 0
	v.dynamic = true
	v.maxCount = maxCount
}

// UpdateData rewrites the buffer's contents in place, growing the backing
// array if vertexCount exceeds the previously allocated capacity. Attributes
// are unchanged; data must be laid out per Stride(v.Attributes).
func (v *VertexBufferData) UpdateData(data []float32, vertexCount int) {
	stride := Stride(v.Attributes)
	needed := vertexCount * stride
	if needed > len(v.Data) {
		v.Data = make([]float32, needed)
		v.maxCount = vertexCount
	}
	copy(v.Data, data[:needed])
	v.VertexCount = vertexCount
}

// IsDynamic reports whether this buffer was created via InitializeDynamic.
func (v *VertexBufferData) IsDynamic() bool { return v.dynamic }

// defaultWords returns the default contribution for an attribute absent from
// the source buffer: POSITION family -> 0, UV -> 0, COLOR -> white,
// NORMAL -> +Y, TANGENT -> +X, everything else -> 0.
func defaultWords(bit VertexAttribute) []float32 {
	switch bit {
	case AttribNormal:
		return []float32{0, 1, 0}
	case AttribTangent:
		return []float32{1, 0, 0}
	case AttribColor32:
		return []float32{math.Float32frombits(defaultColor32)}
	case AttribColor128:
		return []float32{1, 1, 1, 1}
	default:
		n := attributeWords(bit)
		return make([]float32, n)
	}
}

// CopyInto writes exactly dst.VertexCount == v.VertexCount vertices, each
// carrying usingAttributes, into dst. Attributes present in usingAttributes
// but absent from v are filled with their per-attribute default. v is left
// untouched. dst's own Attributes field is set to usingAttributes.
func (v *VertexBufferData) CopyInto(dst *VertexBufferData, usingAttributes VertexAttribute) {
	dstStride := Stride(usingAttributes)
	out := make([]float32, v.VertexCount*dstStride)

	srcOffsets := attributeOffsets(v.Attributes)
	srcStride := Stride(v.Attributes)

	dstCursor := 0
	for vert := 0; vert < v.VertexCount; vert++ {
		for _, a := range attributeOrder {
			if usingAttributes&a.bit == 0 {
				continue
			}
			if off, ok := srcOffsets[a.bit]; ok {
				copy(out[dstCursor:dstCursor+a.words], v.Data[vert*srcStride+off:vert*srcStride+off+a.words])
			} else {
				copy(out[dstCursor:dstCursor+a.words], defaultWords(a.bit))
			}
			dstCursor += a.words
		}
	}

	dst.Attributes = usingAttributes
	dst.Data = out
	dst.VertexCount = v.VertexCount
	dst.dynamic = false
	dst.maxCount = v.VertexCount
}

// attributeOffsets returns, for each attribute present in attribs, its word
// offset within one vertex of a buffer laid out with that attribute set.
func attributeOffsets(attribs VertexAttribute) map[VertexAttribute]int {
	offsets := make(map[VertexAttribute]int, len(attributeOrder))
	cursor := 0
	for _, a := range attributeOrder {
		if attribs&a.bit != 0 {
			offsets[a.bit] = cursor
			cursor += a.words
		}
	}
	return offsets
}
