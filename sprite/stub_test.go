package sprite

import (
	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/hal"
)

// stubDevice is a no-op hal.Device for exercising queue/cache flush paths
// without a real backend, matching the pack's own noop-backend-for-tests
// convention.
type stubDevice struct{}

func (stubDevice) SetShaderCount(int) {}
func (stubDevice) LoadShaderCode(int, *core.Shader) core.ShaderID {
	return core.ShaderID(0)
}

func (stubDevice) InitializeMaterial(*core.MaterialCreateInfo, *core.MaterialID) core.MaterialID {
	return core.InvalidMaterialID
}
func (stubDevice) InitializeTexture(string, int, bool, bool, bool) core.TextureID {
	return core.InvalidTextureID
}
func (stubDevice) InitializeRenderObject(*core.RenderObjectCreateInfo) core.RenderID {
	return core.InvalidRenderID
}
func (stubDevice) PostInitializeRenderObject(core.RenderID)          {}
func (stubDevice) DestroyRenderObject(core.RenderID)                 {}
func (stubDevice) RemoveMaterial(core.MaterialID)                    {}
func (stubDevice) ClearMaterials(bool)                                {}
func (stubDevice) SetTopologyMode(core.RenderID, core.Topology)      {}
func (stubDevice) SetClearColor(float32, float32, float32, float32) {}
func (stubDevice) SetVSyncEnabled(bool)                              {}
func (stubDevice) OnWindowSizeChanged(int, int)                      {}
func (stubDevice) DrawStringSS(string, string, core.Vec3, core.Vec4) {}
func (stubDevice) DrawStringWS(string, string, core.Vec3, core.Vec4) {}
func (stubDevice) EnqueueSprite(hal.SpriteDraw)                      {}
func (stubDevice) SetDebugLines([]hal.DebugLine)                     {}
func (stubDevice) SetCamera(core.Camera)                             {}
func (stubDevice) RegisterPointLight(core.PointLight) core.PointLightID {
	return core.InvalidPointLightID
}
func (stubDevice) UpdatePointLight(core.PointLightID, core.PointLight) {}
func (stubDevice) RemovePointLight(core.PointLightID)                  {}
func (stubDevice) RegisterDirectionalLight(core.DirectionalLight)      {}
func (stubDevice) RemoveDirectionalLight()                             {}
func (stubDevice) Update(float64)                                      {}
func (stubDevice) Draw()                                               {}
