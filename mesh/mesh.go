// Package mesh defines the hierarchical mesh node model: tagged nodes
// that are geometry, groups of other meshes, or both, linked by owned
// edges carrying optional translations.
package mesh

import (
	"github.com/spaghettifunk/polymesh/geometry"
)

// Mesh is any mesh node, whether it contains geometry, other meshes,
// or a mix of both.
type Mesh struct {
	// Kind is the node type tag.
	Kind Kind
	// Geometry is the optional payload for this node.
	Geometry *geometry.Config
	// Metadata is arbitrary per-node metadata.
	Metadata Metadata
	// Children are the owned child edges, in insertion order. The order
	// is meaningful: it is the enumeration order used by flattening.
	Children []Edge
}

// New creates a mesh node with no metadata and no children.
func New(kind Kind, geo *geometry.Config) *Mesh {
	return &Mesh{
		Kind:     kind,
		Geometry: geo,
	}
}

// ContainsGeometry reports whether this node carries renderable
// geometry. The kind alone is not enough: a Group with a stray payload
// still counts, so both the tag and the payload are consulted.
func (m *Mesh) ContainsGeometry() bool {
	return m.Kind == KindGeometry || m.Kind == KindGeoGroup || m.Geometry != nil
}

// Name returns the display name from metadata, or DefaultMeshName.
func (m *Mesh) Name() string {
	name, err := m.Metadata.Get(MetaKeyName)
	if err != nil {
		return DefaultMeshName
	}
	return name
}

// SetName stores the display name in metadata.
func (m *Mesh) SetName(name string) {
	m.Metadata.Set(MetaKeyName, name)
}

// UsesRuntimeCulling reports whether this mesh requests the BETA
// "Runtime Culling" feature.
func (m *Mesh) UsesRuntimeCulling() bool {
	value, err := m.Metadata.Get(MetaKeyRuntimeCulling)
	if err != nil {
		return false
	}
	return value == RuntimeCullingOn
}

// EnableRuntimeCulling turns the runtime culling flag on.
func (m *Mesh) EnableRuntimeCulling() {
	m.Metadata.Set(MetaKeyRuntimeCulling, RuntimeCullingOn)
}

// AddMetadata adds arbitrary data to the mesh.
func (m *Mesh) AddMetadata(key, value string) {
	m.Metadata.Set(key, value)
}

// MetaField looks up arbitrary metadata, failing with
// core.ErrKeyNotFound when absent.
func (m *Mesh) MetaField(key string) (string, error) {
	return m.Metadata.Get(key)
}

// AddChild appends a child edge, preserving insertion order.
func (m *Mesh) AddChild(child Edge) {
	m.Children = append(m.Children, child)
}

// ToMeta converts this mesh into the descriptor that describes it:
// kind, metadata and child topology, without any geometry payload.
// Child translations are copied verbatim, keeping the unset/zero
// distinction.
func (m *Mesh) ToMeta() *Meta {
	children := make([]ChildRef, 0, len(m.Children))
	for i := range m.Children {
		children = append(children, ChildRef{
			Path:        m.Children[i].Path,
			Translation: m.Children[i].Translation,
		})
	}
	return &Meta{
		Version:  LatestMetaVersion,
		Kind:     m.Kind,
		Metadata: m.Metadata.ToMap(),
		Children: children,
	}
}
