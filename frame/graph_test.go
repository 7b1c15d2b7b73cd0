package frame

import (
	"testing"

	"github.com/flexengine/renderer/core"
)

func newTestShaders() *core.ShaderTable {
	st := core.NewShaderTable()
	st.SetShaderCount(2)
	st.RegisterShader(0, &core.Shader{Name: "opaque", Deferred: true})
	st.RegisterShader(1, &core.Shader{Name: "glass", Deferred: false, Translucent: true})
	return st
}

func TestGraph_PlanGroupsByBucketThenMaterial(t *testing.T) {
	shaders := newTestShaders()
	materials := core.NewMaterialTable()
	opaqueID, glassID := core.MaterialID(0), core.MaterialID(1)
	materials.Insert(opaqueID, &core.Material{Name: "opaque-mat", ShaderID: 0})
	materials.Insert(glassID, &core.Material{Name: "glass-mat", ShaderID: 1})

	objects := core.NewRenderObjectTable()
	objects.Insert(&core.RenderObject{ID: core.InvalidRenderID, MaterialID: opaqueID, Visible: true})
	objects.Insert(&core.RenderObject{ID: core.InvalidRenderID, MaterialID: glassID, Visible: true})
	objects.Insert(&core.RenderObject{ID: core.InvalidRenderID, MaterialID: opaqueID, Visible: false})

	g := NewGraph(objects, materials, shaders, nil, nil)
	plan := g.Plan(0)

	if len(plan.Batches) != 2 {
		t.Fatalf("expected 2 batches (invisible object excluded), got %d", len(plan.Batches))
	}
	if plan.Batches[0].Bucket != BucketDeferred || plan.Batches[0].MaterialID != opaqueID {
		t.Fatalf("expected deferred bucket first, got %+v", plan.Batches[0])
	}
	if plan.Batches[1].Bucket != BucketForward || plan.Batches[1].MaterialID != glassID {
		t.Fatalf("expected forward bucket second, got %+v", plan.Batches[1])
	}
}

func TestGraph_PlanReusesCacheUntilDirty(t *testing.T) {
	materials := core.NewMaterialTable()
	materials.Insert(0, &core.Material{Name: "m", ShaderID: 0})
	shaders := newTestShaders()
	objects := core.NewRenderObjectTable()
	objects.Insert(&core.RenderObject{ID: core.InvalidRenderID, MaterialID: 0, Visible: true})

	g := NewGraph(objects, materials, shaders, nil, nil)
	first := g.Plan(0).Batches
	if objects.Dirty {
		t.Fatal("Plan should clear Dirty after rebuilding")
	}

	second := g.Plan(0).Batches
	if len(first) != len(second) {
		t.Fatalf("expected cached batches to be reused, got different lengths %d vs %d", len(first), len(second))
	}
}

func TestGridFadeAlpha(t *testing.T) {
	cases := []struct {
		dist float32
		want float32
	}{
		{0, 1},
		{GridFadeDistance, 0},
		{GridFadeDistance * 2, 0},
		{GridFadeDistance / 2, 0.5},
	}
	for _, c := range cases {
		if got := gridFadeAlpha(c.dist); got != c.want {
			t.Errorf("gridFadeAlpha(%v) = %v, want %v", c.dist, got, c.want)
		}
	}
}
