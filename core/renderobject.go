package core

// Topology selects the primitive assembly mode for a draw.
type Topology int

const (
	TopologyTriangleList Topology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyPointList
)

// CullFace selects which winding is culled. CullFaceInvalid means "inherit
// the object's own cull face" when it appears in a DrawCallInfo override
// (an open question in the original design).
type CullFace int

const (
	CullFaceBack CullFace = iota
	CullFaceFront
	CullFaceNone
	CullFaceInvalid
)

// DepthTestFunc selects the depth comparison. The engine defaults to
// reverse-Z, so the default is GEQUAL everywhere except passes that
// explicitly override to ALWAYS (deferred shading, selected-object
// wireframe).
type DepthTestFunc int

const (
	DepthTestGEQUAL DepthTestFunc = iota
	DepthTestALWAYS
	DepthTestLEQUAL
)

// GameObjectRef is an opaque back-reference to the owning scene object. The
// renderer never dereferences scene-tree state itself (out of scope
// here) — it only carries the ID so the frame graph can ask the owner
// (an external collaborator) for its current world transform and visibility.
type GameObjectRef uint64

// RenderObjectCreateInfo is the input to InitializeRenderObject.
type RenderObjectCreateInfo struct {
	MaterialID MaterialID
	VertexData *VertexBufferData
	Indices    []uint32 // optional; nil means non-indexed draw

	Owner GameObjectRef

	Topology         Topology
	CullFace         CullFace
	DepthTestFunc    DepthTestFunc
	DepthWriteEnable bool
	EditorObject     bool
}

// RenderObject is one drawable instance: a MaterialID + vertex (and optional
// index) stream + per-object render state, plus a back-reference to its
// owning scene object for transform/visibility.
type RenderObject struct {
	ID         RenderID
	MaterialID MaterialID
	VertexData *VertexBufferData
	Indices    []uint32

	Owner GameObjectRef

	Topology         Topology
	CullFace         CullFace
	DepthTestFunc    DepthTestFunc
	DepthWriteEnable bool
	EditorObject     bool

	// DynamicUBOOffset indexes this object's slice of a shared dynamic
	// uniform buffer ring (original engine's per-object UBO offset).
	// Neither hal backend reads this field.
	DynamicUBOOffset uint32

	// Native holds the backend-cached pipeline + layout + descriptor set
	// (Vulkan) or VAO (OpenGL), opaque to core.
	Native any

	Visible bool
}

// RenderObjectTable owns every live RenderObject, indexed by the lowest
// free RenderID. Destroying an object frees its slot so the next
// GetNextAvailableRenderID call may return it.
type RenderObjectTable struct {
	byID  map[RenderID]*RenderObject
	slots slotAllocator

	// Dirty is set whenever the live set changes shape (insert/remove) so
	// the frame graph knows to rebatch.
	Dirty bool
}

// NewRenderObjectTable returns an empty table.
func NewRenderObjectTable() *RenderObjectTable {
	return &RenderObjectTable{byID: make(map[RenderID]*RenderObject)}
}

// GetNextAvailableRenderID returns the smallest unused RenderID.
func (t *RenderObjectTable) GetNextAvailableRenderID() RenderID {
	for i := uint32(0); ; i++ {
		if !t.slots.InUse(i) {
			return RenderID(i)
		}
	}
}

// Insert registers obj at obj.ID, flags the batch cache dirty and returns
// the ID (assigns the lowest free ID if obj.ID was left as InvalidRenderID).
func (t *RenderObjectTable) Insert(obj *RenderObject) RenderID {
	if obj.ID == InvalidRenderID {
		obj.ID = t.GetNextAvailableRenderID()
	}
	t.slots.Reserve(uint32(obj.ID))
	t.byID[obj.ID] = obj
	t.Dirty = true
	return obj.ID
}

// Get returns the render object for id, or nil.
func (t *RenderObjectTable) Get(id RenderID) *RenderObject {
	return t.byID[id]
}

// Destroy removes the render object at id and frees its slot.
func (t *RenderObjectTable) Destroy(id RenderID) {
	delete(t.byID, id)
	t.slots.Release(uint32(id))
	t.Dirty = true
}

// All returns every live (id, object) pair. Order is unspecified.
func (t *RenderObjectTable) All() map[RenderID]*RenderObject {
	return t.byID
}
