// Package render draws instanced, textured meshes to a window surface.
//
// A Renderer owns a gpu.Context, a Camera whose view-projection is bound
// at group 0, and a queue of RenderObjects rebuilt every frame:
//
//	r, err := render.New(window)
//	shader, _ := r.CreateShaderFromSource("default", render.DefaultShaderSource)
//	material, _ := r.CreateMaterial("tree", shader, texture)
//	mesh, _ := r.CreateMesh("pentagon", vertices, indices)
//
//	// each frame
//	r.PushObject(&render.RenderObject{Mesh: mesh, Material: material,
//	    Instances: instances, InstanceCount: n})
//	err = r.Render()
//
// # Bind groups
//
// Group 0 holds the global bindings: the camera uniform (binding 0), a
// trilinear sampler (1) and a point sampler (2). Group 1 is the material:
// a texture (0) and a sampler (1). Vertex buffer slot 0 is the mesh,
// slot 1 the per-instance model matrices (shader locations 5 to 8).
//
// # Resources
//
// Shaders and materials are shared by pointer; replacing a registry entry
// leaves existing holders untouched. Meshes and textures are owned by
// whoever registered them and freed by Resources.Destroy.
//
// # Errors
//
// Render returns surface errors unwrapped. ClassifySurfaceError tells
// recoverable ones (lost, outdated) from fatal ones (out of memory).
package render
