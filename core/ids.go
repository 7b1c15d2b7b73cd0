package core

import "fmt"

// MaterialID identifies a registered Material. IDs are dense 32-bit indices,
// not pointers — the renderer's tables own the authoritative objects and
// every other system (game objects, render objects) holds only the ID.
type MaterialID uint32

// ShaderID identifies a registered Shader.
type ShaderID uint32

// TextureID identifies a registered Texture.
type TextureID uint32

// RenderID identifies a registered RenderObject.
type RenderID uint32

// PointLightID identifies a registered point light.
type PointLightID uint32

// InvalidMaterialID is the reserved sentinel for "no material".
const InvalidMaterialID MaterialID = 0xFFFFFFFF

// InvalidShaderID is the reserved sentinel for "no shader".
const InvalidShaderID ShaderID = 0xFFFFFFFF

// InvalidTextureID is the reserved sentinel for "no texture".
const InvalidTextureID TextureID = 0xFFFFFFFF

// InvalidRenderID is the reserved sentinel for "no render object".
const InvalidRenderID RenderID = 0xFFFFFFFF

// InvalidPointLightID is the reserved sentinel for "no point light".
const InvalidPointLightID PointLightID = 0xFFFFFFFF

func (id MaterialID) String() string {
	if id == InvalidMaterialID {
		return "Material(invalid)"
	}
	return fmt.Sprintf("Material(%d)", uint32(id))
}

func (id ShaderID) String() string {
	if id == InvalidShaderID {
		return "Shader(invalid)"
	}
	return fmt.Sprintf("Shader(%d)", uint32(id))
}

func (id TextureID) String() string {
	if id == InvalidTextureID {
		return "Texture(invalid)"
	}
	return fmt.Sprintf("Texture(%d)", uint32(id))
}

func (id RenderID) String() string {
	if id == InvalidRenderID {
		return "RenderObject(invalid)"
	}
	return fmt.Sprintf("RenderObject(%d)", uint32(id))
}

// slotAllocator hands out the smallest nonnegative integer not currently in
// use, and allows that integer to be reused once freed. It backs
// GetNextAvailableMaterialID / GetNextAvailableRenderID and friends.
//
// used[i] is true when slot i is occupied. The allocator never shrinks
// `used`; freed slots are simply marked false and considered again by the
// next Acquire.
type slotAllocator struct {
	used []bool
}

// Acquire returns the smallest free slot index and marks it used.
func (a *slotAllocator) Acquire() uint32 {
	for i, inUse := range a.used {
		if !inUse {
			a.used[i] = true
			return uint32(i)
		}
	}
	a.used = append(a.used, true)
	return uint32(len(a.used) - 1)
}

// Release frees a previously acquired slot so a future Acquire may reuse it.
// Releasing a slot that was never acquired, or double-releasing, is a no-op.
func (a *slotAllocator) Release(index uint32) {
	if int(index) < len(a.used) {
		a.used[index] = false
	}
}

// Reserve marks index as used, growing the allocator if needed. Used when a
// caller supplies a replaceID explicitly (InitializeMaterial's replaceID
// parameter) instead of letting the allocator pick the slot.
func (a *slotAllocator) Reserve(index uint32) {
	for uint32(len(a.used)) <= index {
		a.used = append(a.used, false)
	}
	a.used[index] = true
}

// InUse reports whether index currently holds a live resource.
func (a *slotAllocator) InUse(index uint32) bool {
	return int(index) < len(a.used) && a.used[index]
}
