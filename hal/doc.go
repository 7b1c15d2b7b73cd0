// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hal defines the renderer's backend-agnostic contract: the set of
// operations every higher layer (resource caches, the frame graph, IBL
// precompute, font baking, UI mesh) uses regardless of which graphics
// backend is linked in.
//
// # Architecture
//
// The HAL is organized into a small number of layers:
//
//  1. Backend - identifies and constructs a Device for one GPU programming
//     model (explicit, Vulkan-like; or state-machine, OpenGL-like).
//  2. Device  - the renderer interface proper: material/texture/render
//     object lifetime, per-frame Update/Draw, light registration.
//
// Exactly two backends implement this contract (hal/vulkan, hal/opengl).
// The backend is chosen at build time via Go build tags and registered
// through RegisterBackend from an init() function; there is no runtime
// backend switch.
//
// # Design Principles
//
// The HAL prioritizes a single, simple call discipline over defensive
// validation: all calls are single-threaded from the main loop except the
// two explicitly async operations package render exposes (screenshot
// encode, shader hot-reload). Invalid IDs are logged and are a no-op rather
// than a panic; only GPU allocation failure and device/surface loss are
// unrecoverable.
//
// # Resource Types
//
// Backend-owned GPU handles (images, buffers, descriptor sets, pipelines)
// are never exposed as typed Go interfaces to callers above hal — they are
// stored as opaque `any` values on the core package's data types (Texture,
// Material, RenderObject, Framebuffer) and type-asserted only inside the
// owning backend package.
//
// # Backend Registration
//
//	backend, ok := hal.GetBackend(hal.BackendVulkan)
//	if !ok {
//		return fmt.Errorf("vulkan backend not available")
//	}
//	device, err := backend.NewDevice(cfg)
//
// # Error Handling
//
// See error.go for the sentinel errors returned for unrecoverable states.
// Recoverable errors (missing texture, failed shader compile) are not
// returned at all — they are logged through Logger() and the caller
// receives a placeholder resource.
package hal
