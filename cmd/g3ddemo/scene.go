package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/g3d/internal/config"
	"github.com/gogpu/g3d/render"
)

// Registry IDs used by the demo.
const (
	defaultShaderID render.ID = 1
	treeTextureID   render.ID = 1
	treeMaterialID  render.ID = 1
	pentagonMeshID  render.ID = 1
)

// scene is the rotating instance grid.
type scene struct {
	object    *render.RenderObject
	models    []mgl32.Mat4
	instances *gpu.Buffer
	speed     float32
}

func newScene(r *render.Renderer, cfg config.Config) (*scene, error) {
	res := r.Resources()

	var shader *gpu.Shader
	var err error
	if cfg.Assets.Shader == "" {
		shader, err = r.CreateShaderFromSource("default.wgsl", render.DefaultShaderSource)
	} else {
		shader, err = r.CreateShader(cfg.AssetPath(cfg.Assets.Shader))
	}
	if err != nil {
		return nil, err
	}
	res.Shaders.Add(defaultShaderID, shader)

	var tex *gpu.Texture
	if cfg.Assets.Texture == "" {
		tex, err = r.Context().CreateTextureFromImage("checkerboard", checkerboard(256, 32))
	} else {
		tex, err = r.Context().CreateTexture(cfg.AssetPath(cfg.Assets.Texture))
	}
	if err != nil {
		return nil, err
	}
	res.Textures.Add(treeTextureID, tex)

	mat, err := r.CreateMaterial("tree", shader, tex)
	if err != nil {
		return nil, err
	}
	res.Materials.Add(treeMaterialID, mat)

	mesh, err := r.CreateMesh("pentagon", pentagonVertices, pentagonIndices)
	if err != nil {
		return nil, err
	}
	res.Meshes.Add(pentagonMeshID, mesh)

	models := grid(cfg.Scene.GridSize, cfg.Scene.Displacement)
	instances, err := render.NewInstanceBuffer(r.Context(), "grid_instances", models)
	if err != nil {
		return nil, err
	}

	return &scene{
		object: &render.RenderObject{
			Mesh:          mesh,
			Material:      mat,
			Pass:          render.Opaque,
			Instances:     instances,
			InstanceCount: uint32(len(models)), //nolint:gosec // grid size is validated
		},
		models:    models,
		instances: instances,
		speed:     cfg.Scene.RotationSpeed,
	}, nil
}

// update rotates every instance by dt*speed and uploads the matrices.
func (s *scene) update(dt float32) error {
	rotate(s.models, dt*s.speed)
	return s.instances.Write(0, render.PackMatrices(s.models))
}

// destroy frees the instance buffer. Registered resources are freed by
// the renderer.
func (s *scene) destroy() {
	s.instances.Destroy()
}
