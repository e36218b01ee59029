// Package g3d is a small forward renderer for instanced, textured meshes on
// top of the gogpu HAL.
//
// The work is split across packages:
//
//   - gpu: device, queue and surface ownership; buffers, textures, samplers,
//     bind groups and WGSL shader pipelines.
//   - render: camera, resource registries, the main pass and the Renderer
//     that draws a per-frame object queue.
//
// This package only holds the shared logger:
//
//	g3d.SetLogger(slog.Default())
//
// A runnable example lives in cmd/g3ddemo.
package g3d
