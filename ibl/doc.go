// Package ibl precomputes image-based-lighting data for a material: an
// equirectangular HDR probe image is turned into a cubemap, then into a
// small convolved irradiance cubemap and a roughness mip chain, plus a
// material-independent BRDF integration LUT. Reflection
// probe recapture replays a caller-supplied scene-to-cubemap render
// through the same convolution/prefilter steps.
//
// The reduced-scope hal backends in this rewrite don't expose a full
// offscreen six-face render pipeline, so every step here runs on the CPU
// against plain float32 pixel buffers rather than issuing GPU draw calls —
// the math matches the documented algorithm (equirect atan2/asin sampling,
// hemisphere convolution, importance-sampled GGX, split-sum BRDF
// integration); only the execution engine differs from a real renderer.
package ibl
