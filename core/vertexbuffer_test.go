package core

import "testing"

func TestVertexBufferData_CopyInto_ExactByteCount(t *testing.T) {
	var src VertexBufferData
	// 2 vertices, POSITION+UV only.
	src.Initialize(AttribPosition|AttribUV, []float32{
		0, 0, 0, 0.1, 0.2,
		1, 1, 1, 0.3, 0.4,
	}, 2)

	srcCopy := append([]float32(nil), src.Data...)

	var dst VertexBufferData
	src.CopyInto(&dst, AttribPosition|AttribUV|AttribNormal)

	wantWords := dst.VertexCount * Stride(AttribPosition|AttribUV|AttribNormal)
	if len(dst.Data) != wantWords {
		t.Fatalf("expected %d words, got %d", wantWords, len(dst.Data))
	}

	for i, v := range src.Data {
		if v != srcCopy[i] {
			t.Fatalf("CopyInto mutated the source buffer at index %d", i)
		}
	}
}

func TestVertexBufferData_CopyInto_FillsDefaults(t *testing.T) {
	var src VertexBufferData
	src.Initialize(AttribPosition, []float32{1, 2, 3}, 1)

	var dst VertexBufferData
	src.CopyInto(&dst, AttribPosition|AttribNormal|AttribTangent)

	// layout: POSITION(3) TANGENT(3) NORMAL(3)
	tangent := dst.Data[3:6]
	normal := dst.Data[6:9]

	if normal[0] != 0 || normal[1] != 1 || normal[2] != 0 {
		t.Fatalf("expected default normal +Y, got %v", normal)
	}
	if tangent[0] != 1 || tangent[1] != 0 || tangent[2] != 0 {
		t.Fatalf("expected default tangent +X, got %v", tangent)
	}
}

func TestVertexBufferData_RoundTrip(t *testing.T) {
	attribs := AttribPosition | AttribUV | AttribColor128
	data := []float32{
		0, 0, 0, 0, 0, 1, 1, 1, 1,
		1, 0, 0, 1, 0, 1, 1, 1, 1,
		0, 1, 0, 0, 1, 1, 1, 1, 1,
	}

	var src VertexBufferData
	src.Initialize(attribs, data, 3)

	var dst VertexBufferData
	src.CopyInto(&dst, attribs)

	if len(dst.Data) != len(data) {
		t.Fatalf("round trip changed length: got %d want %d", len(dst.Data), len(data))
	}
	for i := range data {
		if dst.Data[i] != data[i] {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, dst.Data[i], data[i])
		}
	}
}

func TestVertexBufferData_UpdateDataGrows(t *testing.T) {
	var buf VertexBufferData
	buf.InitializeDynamic(AttribPosition, 2)

	buf.UpdateData([]float32{1, 1, 1, 2, 2, 2, 3, 3, 3}, 3)
	if buf.VertexCount != 3 {
		t.Fatalf("expected vertex count 3, got %d", buf.VertexCount)
	}
	if len(buf.Data) < 9 {
		t.Fatalf("expected buffer to grow to at least 9 words, got %d", len(buf.Data))
	}
}
