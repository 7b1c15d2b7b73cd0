package opengl

import (
	"testing"

	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/hal"
)

func newTestDevice(t *testing.T) *device {
	t.Helper()
	dev, err := newDevice(&hal.DeviceConfig{})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	return dev.(*device)
}

func TestDevice_BindMaterialSkipsRedundantShaderSwitch(t *testing.T) {
	d := newTestDevice(t)
	d.shaders.SetShaderCount(1)
	// Compiled is pre-populated so this test exercises the state-tracking
	// skip logic without depending on a real naga translation succeeding.
	shaderID := d.shaders.RegisterShader(0, &core.Shader{Name: "lit", Compiled: &compiledShader{}})
	d.materials.Insert(0, &core.Material{Name: "m", ShaderID: shaderID})

	d.bindMaterial(0)
	if !d.state.haveShader || d.state.boundShader != shaderID {
		t.Fatalf("expected shader %v bound, got %+v", shaderID, d.state)
	}

	before := d.state
	d.bindMaterial(0)
	if d.state != before {
		t.Fatalf("expected no state change on redundant bind, got %+v vs %+v", d.state, before)
	}
}

func TestDevice_SetDepthTestTracksLatestState(t *testing.T) {
	d := newTestDevice(t)
	d.setDepthTest(true, core.DepthTestGEQUAL)
	if !d.state.haveDepth || !d.state.depthTestEnabled {
		t.Fatal("expected depth test enabled after first call")
	}

	d.setDepthTest(false, core.DepthTestALWAYS)
	if d.state.depthTestEnabled {
		t.Fatal("expected depth test disabled after differing call")
	}
}
