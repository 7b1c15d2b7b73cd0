// Package debugdraw buffers physics debug lines for one frame and flushes
// them as a single line-list draw. The API shape follows bullet physics'
// btIDebugDraw contract (drawLine/setDebugMode/getDebugMode), the same
// contract the original engine's GLPhysicsDebugDraw/VulkanPhysicsDebugDraw
// implemented — the renderer only needs the line-buffering half of that
// contract since physics simulation itself is out of scope.
package debugdraw
