// Package frame holds the backend-agnostic half of the draw pipeline: the
// ordering and batching decisions that do not depend on
// which GPU programming model executes them. A hal.Device implementation
// calls Graph.Plan once per frame and walks the returned Plan, issuing its
// own native draw calls for each batch. The package also runs the shadow
// cascade, GBuffer, SSAO, deferred-shading and post-process passes on the
// CPU against plain float32 buffers (RunDeferredPipeline), which both hal
// backends call from Draw.
package frame
