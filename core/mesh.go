package core

// MeshHandle identifies a mesh owned by the external mesh subsystem. The
// renderer never parses mesh files itself; it only holds
// this handle and the VertexBufferData/index slice the mesh subsystem
// produced from it.
type MeshHandle uint64

// MeshProvider is the contract the mesh subsystem (an external collaborator,
// out of scope here) fulfills for the renderer: resolving a mesh
// handle to its current vertex/index data, and notifying the renderer when
// a mesh is reloaded so dependent render objects can be recreated.
type MeshProvider interface {
	// Resolve returns the current VertexBufferData and optional index
	// slice for handle.
	Resolve(handle MeshHandle) (*VertexBufferData, []uint32, bool)
}

// ReloadListener is notified when a mesh handle's data changes on disk so
// the renderer can recreate any render object that referenced it.
type ReloadListener func(handle MeshHandle)

// MeshReloadBroker fans out mesh-reload notifications from the mesh
// subsystem to every renderer subscriber (normally just one: the
// render.Renderer instance owning the affected RenderObjectTable).
type MeshReloadBroker struct {
	listeners []ReloadListener
}

// Subscribe registers fn to be called on every future Notify.
func (b *MeshReloadBroker) Subscribe(fn ReloadListener) {
	b.listeners = append(b.listeners, fn)
}

// Notify informs every subscriber that handle's mesh data changed.
func (b *MeshReloadBroker) Notify(handle MeshHandle) {
	for _, fn := range b.listeners {
		fn(handle)
	}
}
