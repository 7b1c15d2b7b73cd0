// Package opengl implements hal.Device as a state-machine backend: bound
// shader/framebuffer/depth-test state is tracked and only re-issued to the
// driver when it changes, the idiom the pack's own OpenGL renderer uses.
// Shaders are authored once in WGSL and translated to GLSL 4.30 at load
// time via naga, since OpenGL has no WGSL front end of its own.
package opengl
