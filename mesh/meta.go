package mesh

import (
	"github.com/spaghettifunk/polymesh/math"
)

// LatestMetaVersion is the descriptor schema version written by this
// library. Readers accept anything up to and including it.
const LatestMetaVersion uint32 = 1

// ChildRef references a child inside a descriptor by path and optional
// translation. A nil translation survives serialization as null, so
// "unset" and "zero" stay distinguishable through a round trip.
type ChildRef struct {
	Path        string     `json:"path"`
	Translation *math.Vec3 `json:"translation"`
}

// Meta is the serializable, geometry-free summary of a mesh node:
// version tag, kind, metadata and child topology. It is used to
// persist and rebuild topology, never to carry geometry.
type Meta struct {
	Version  uint32            `json:"version"`
	Kind     Kind              `json:"mesh_type"`
	Metadata map[string]string `json:"metadata"`
	Children []ChildRef        `json:"children"`
}

// IsGroup reports whether the described node is a pure container, i.e.
// one that carries no geometry payload of its own.
func (pm *Meta) IsGroup() bool {
	return pm.Kind == KindGroup
}
