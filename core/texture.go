package core

import "path/filepath"

// CubeFace indexes the six faces of a cubemap in the load order the original
// renderer uses: +X(right), -X(left), +Y(up), -Y(down), +Z(back), -Z(front).
type CubeFace int

const (
	CubeFaceRight CubeFace = iota
	CubeFaceLeft
	CubeFaceUp
	CubeFaceDown
	CubeFaceBack
	CubeFaceFront
)

// CubeFaceOrder is the canonical RT, LF, UP, DN, BK, FT load order.
var CubeFaceOrder = [6]CubeFace{CubeFaceRight, CubeFaceLeft, CubeFaceUp, CubeFaceDown, CubeFaceBack, CubeFaceFront}

// Texture describes a loaded 2D or cubemap image plus its upload flags.
// Backend-specific handles (image/memory/view/sampler/descriptor) are
// opaque to core and stored in Native for the active hal implementation to
// type-assert.
type Texture struct {
	Path string

	Width, Height int
	ChannelCount  int
	MipLevels     int

	HDR              bool
	FlipVertically   bool
	GenerateMipMaps  bool

	// CubemapFacePaths, when non-empty, holds six absolute paths in
	// CubeFaceOrder order; Path is empty for cubemaps.
	CubemapFacePaths [6]string

	// Native is the backend handle bundle (image, memory, view, sampler,
	// descriptor info on Vulkan; texture object + sampler on OpenGL).
	Native any
}

// IsCubemap reports whether t was loaded as a six-face cubemap.
func (t *Texture) IsCubemap() bool {
	for _, p := range t.CubemapFacePaths {
		if p != "" {
			return true
		}
	}
	return false
}

// NormalizedFormatChannels returns the channel count a loaded image is
// normalized to for GPU upload: 4-channel source data always uploads as
// RGBA (R8G8B8A8_UNORM for LDR, R32G32B32A32_SFLOAT for HDR); 1-3 channel
// sources upload as loaded.
func NormalizedFormatChannels(sourceChannels int) int {
	if sourceChannels >= 4 {
		return 4
	}
	return sourceChannels
}

// TextureCache maps absolute path -> *Texture. Lookup is a linear scan over
// a small vector (image counts are in the hundreds,
// not large enough to warrant a hash index contention point on reload).
type TextureCache struct {
	byPath []*Texture
	ids    []TextureID
	slots  slotAllocator
}

// NewTextureCache returns an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{}
}

// Find returns the TextureID already registered for absPath, if any.
func (c *TextureCache) Find(absPath string) (TextureID, bool) {
	clean := filepath.Clean(absPath)
	for i, tex := range c.byPath {
		if tex != nil && filepath.Clean(tex.Path) == clean {
			return c.ids[i], true
		}
	}
	return InvalidTextureID, false
}

// Register interns tex, deduplicating by tex.Path (non-cubemaps) or by the
// first non-empty cubemap face path. If an entry already exists for that
// path its slot is reused (editor reload semantics) rather than appending a
// duplicate, and the returned bool is false to signal "already present".
func (c *TextureCache) Register(tex *Texture) (TextureID, bool) {
	key := tex.Path
	if key == "" {
		key = tex.CubemapFacePaths[0]
	}
	if key != "" {
		if id, ok := c.Find(key); ok {
			c.byPath[id] = tex
			return id, false
		}
	}

	id := TextureID(c.slots.Acquire())
	for TextureID(len(c.byPath)) <= id {
		c.byPath = append(c.byPath, nil)
		c.ids = append(c.ids, InvalidTextureID)
	}
	c.byPath[id] = tex
	c.ids[id] = id
	return id, true
}

// Get returns the texture for id, or nil if id does not name a live texture.
// A failed load must never leave a stale non-nil entry behind — failed
// loads must not corrupt the table, so callers should
// only call Register after a successful decode.
func (c *TextureCache) Get(id TextureID) *Texture {
	if int(id) < 0 || int(id) >= len(c.byPath) {
		return nil
	}
	return c.byPath[id]
}

// Remove evicts the texture at id, freeing its slot for reuse.
func (c *TextureCache) Remove(id TextureID) {
	if int(id) < 0 || int(id) >= len(c.byPath) {
		return
	}
	c.byPath[id] = nil
	c.slots.Release(uint32(id))
}
