package render

import (
	"slices"
	"testing"

	"github.com/gogpu/g3d/gpu"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry[string]()
	if _, ok := r.Get(1); ok {
		t.Fatal("Get on empty registry reported a hit")
	}
	if _, replaced := r.Add(1, "a"); replaced {
		t.Error("first Add reported a replacement")
	}
	old, replaced := r.Add(1, "b")
	if !replaced || old != "a" {
		t.Errorf("Add over existing = (%q, %v), want (\"a\", true)", old, replaced)
	}
	if v, _ := r.Get(1); v != "b" {
		t.Errorf("Get(1) = %q, want \"b\"", v)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryRemoveAndIDs(t *testing.T) {
	r := NewRegistry[int]()
	for _, id := range []ID{7, 2, 5} {
		r.Add(id, int(id))
	}
	if got := r.IDs(); !slices.Equal(got, []ID{2, 5, 7}) {
		t.Errorf("IDs() = %v, want [2 5 7]", got)
	}
	if v, ok := r.Remove(5); !ok || v != 5 {
		t.Errorf("Remove(5) = (%d, %v), want (5, true)", v, ok)
	}
	if _, ok := r.Remove(5); ok {
		t.Error("second Remove(5) reported a hit")
	}
}

func TestMaterialKeepsReplacedShader(t *testing.T) {
	res := NewResources()
	first := &gpu.Shader{}
	second := &gpu.Shader{}

	res.Shaders.Add(1, first)
	mat := &Material{Shader: first}
	res.Materials.Add(1, mat)

	res.Shaders.Add(1, second)

	got, _ := res.Shaders.Get(1)
	if got != second {
		t.Error("registry does not hold the replacement shader")
	}
	m, _ := res.Materials.Get(1)
	if m.Shader != first {
		t.Error("material lost its original shader")
	}
}

func TestIDsArePerRegistry(t *testing.T) {
	res := NewResources()
	res.Meshes.Add(1, &Mesh{NumIndices: 3})
	res.Textures.Add(1, &gpu.Texture{})

	if m, ok := res.Meshes.Get(1); !ok || m.NumIndices != 3 {
		t.Error("mesh 1 missing")
	}
	if _, ok := res.Textures.Get(1); !ok {
		t.Error("texture 1 missing")
	}
	if _, ok := res.Materials.Get(1); ok {
		t.Error("material 1 should not exist")
	}
}

func TestResourcesDestroy(t *testing.T) {
	r, _ := newTestRenderer(t, 64, 64)
	obj := newTestObject(t, r, 1)

	// A material whose shader was replaced in the registry still has its
	// shader freed.
	other, err := r.CreateShaderFromSource("other", DefaultShaderSource)
	if err != nil {
		t.Fatalf("CreateShaderFromSource: %v", err)
	}
	r.Resources().Shaders.Add(1, other)

	r.Resources().Destroy()

	if obj.Material.Shader.Pipeline() != nil {
		t.Error("replaced shader not destroyed")
	}
	if other.Pipeline() != nil {
		t.Error("registered shader not destroyed")
	}
	if obj.Material.BindGroup != nil {
		t.Error("material bind group not destroyed")
	}
	res := r.Resources()
	if res.Shaders.Len()+res.Materials.Len()+res.Meshes.Len()+res.Textures.Len() != 0 {
		t.Error("registries not emptied")
	}
}

func TestResourcesDestroyNilEntries(t *testing.T) {
	res := NewResources()
	res.Shaders.Add(1, nil)
	res.Materials.Add(1, nil)
	res.Materials.Add(2, &Material{})
	res.Meshes.Add(1, nil)
	res.Textures.Add(1, nil)

	res.Destroy()

	if n := res.Shaders.Len() + res.Materials.Len() + res.Meshes.Len() + res.Textures.Len(); n != 0 {
		t.Errorf("%d entries left after Destroy, want 0", n)
	}
}
