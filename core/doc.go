// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package core owns the renderer's resource data model: shaders, materials,
// textures, render objects, vertex streams, framebuffers and lights. It has
// no dependency on a graphics backend — the hal package and its vulkan/opengl
// implementations consume these types, never the reverse.
//
// Resources are addressed by opaque dense IDs (MaterialID, ShaderID,
// TextureID, RenderID, PointLightID). Tables hand out the lowest free ID on
// creation and free the slot on destruction so that IDs stay dense within a
// backend without ever being interpreted as pointers.
package core
