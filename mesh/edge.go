package mesh

import (
	"github.com/spaghettifunk/polymesh/math"
)

// Edge is an owned parent→child link carrying an optional translation.
// The child mesh belongs to exactly one edge (or is the tree root);
// nothing else may hold a reference to it, which keeps the structure a
// tree with no cycles or aliasing.
type Edge struct {
	// Path locates the child: a relative path fragment when built from
	// storage, an opaque name for in-memory trees.
	Path string
	// Mesh is the owned child subtree.
	Mesh *Mesh
	// Translation is the edge-local offset from the parent. nil means
	// zero, never "unknown".
	Translation *math.Vec3
}

// TranslationOrZero returns the edge translation, or the identity when unset.
func (e *Edge) TranslationOrZero() math.Vec3 {
	if e.Translation == nil {
		return math.NewVec3Zero()
	}
	return *e.Translation
}

// ComposeWith returns a new edge with this edge's path and mesh whose
// translation is the sum of both edges' translations. The ancestor is
// expected to already carry the accumulated offset from the root; a nil
// ancestor yields an unchanged copy. The child subtree is shared, not
// cloned.
func (e *Edge) ComposeWith(ancestor *Edge) Edge {
	if ancestor == nil {
		return Edge{Path: e.Path, Mesh: e.Mesh, Translation: e.Translation}
	}
	sum := e.TranslationOrZero().Add(ancestor.TranslationOrZero())
	return Edge{Path: e.Path, Mesh: e.Mesh, Translation: &sum}
}
