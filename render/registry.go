package render

import (
	"maps"
	"slices"

	"github.com/gogpu/g3d/gpu"
)

// ID identifies a resource within one Registry. IDs are chosen by the
// caller and are unique per registry only.
type ID uint32

// Registry maps caller-chosen IDs to resources. Adding an existing ID
// replaces the entry. Values are shared pointers: replacing an entry does
// not affect holders of the old value.
//
// A Registry is not safe for concurrent use.
type Registry[T any] struct {
	items map[ID]T
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[ID]T)}
}

// Add stores v under id, replacing any previous entry. It returns the
// replaced value and whether there was one.
//
// A replaced *gpu.Shader must outlive every Material built from it. Leave
// it to Resources.Destroy, which frees shaders still referenced by
// registered materials, rather than destroying it on replacement.
func (r *Registry[T]) Add(id ID, v T) (old T, replaced bool) {
	old, replaced = r.items[id]
	r.items[id] = v
	return old, replaced
}

// Get returns the entry for id.
func (r *Registry[T]) Get(id ID) (T, bool) {
	v, ok := r.items[id]
	return v, ok
}

// Remove deletes and returns the entry for id.
func (r *Registry[T]) Remove(id ID) (T, bool) {
	v, ok := r.items[id]
	delete(r.items, id)
	return v, ok
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int { return len(r.items) }

// IDs returns the registered IDs in ascending order.
func (r *Registry[T]) IDs() []ID {
	return slices.Sorted(maps.Keys(r.items))
}

// Resources groups the per-type registries of a renderer.
type Resources struct {
	Shaders   *Registry[*gpu.Shader]
	Materials *Registry[*Material]
	Meshes    *Registry[*Mesh]
	Textures  *Registry[*gpu.Texture]
}

// NewResources returns empty registries.
func NewResources() *Resources {
	return &Resources{
		Shaders:   NewRegistry[*gpu.Shader](),
		Materials: NewRegistry[*Material](),
		Meshes:    NewRegistry[*Mesh](),
		Textures:  NewRegistry[*gpu.Texture](),
	}
}

// Destroy releases every registered resource and the shaders registered
// materials still reference, each shader once. Nil entries are skipped.
// The registries are emptied.
func (r *Resources) Destroy() {
	shaders := make(map[*gpu.Shader]struct{})
	for _, id := range r.Materials.IDs() {
		m, _ := r.Materials.Remove(id)
		if m == nil {
			continue
		}
		if m.Shader != nil {
			shaders[m.Shader] = struct{}{}
		}
		m.Destroy()
	}
	for _, id := range r.Shaders.IDs() {
		if s, _ := r.Shaders.Remove(id); s != nil {
			shaders[s] = struct{}{}
		}
	}
	for s := range shaders {
		s.Destroy()
	}
	for _, id := range r.Meshes.IDs() {
		if m, _ := r.Meshes.Remove(id); m != nil {
			m.Destroy()
		}
	}
	for _, id := range r.Textures.IDs() {
		if t, _ := r.Textures.Remove(id); t != nil {
			t.Destroy()
		}
	}
}
