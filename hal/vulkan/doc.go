// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vulkan implements hal.Device over the native Vulkan loader using
// goffi, the renderer's explicit-recording backend. Shaders are consumed as
// prebuilt SPIR-V (no runtime translation — that is the OpenGL backend's
// job). Resources are keyed by the core package's dense IDs and command
// buffers are re-recorded once per frame from the core resource tables
// rather than cached per render object, since the renderer's scenes are
// small enough that redundant re-recording costs less than a dependency
// graph to avoid it.
package vulkan
