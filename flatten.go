package polymesh

import (
	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/geometry"
	"github.com/spaghettifunk/polymesh/mesh"
)

// FlattenGeometry walks an in-memory mesh tree whose edges carry local
// translations and returns every geometry payload repositioned into
// the root's coordinate space, in pre-order with children in
// declaration order. The walk is pure: the tree is never modified and
// each emitted payload is a copy.
//
// This deliberately stays separate from BuildTree: the builder bakes
// transforms in at load time, this walk bakes them in at flatten time,
// and running both over the same nodes would apply them twice.
func FlattenGeometry(root *mesh.Mesh) []*geometry.Config {
	allGeo := []*geometry.Config{}
	flattenRecursive(root, nil, &allGeo)
	return allGeo
}

func flattenRecursive(node *mesh.Mesh, ancestor *mesh.Edge, allGeo *[]*geometry.Config) {
	for i := range node.Children {
		// The child's translation expressed cumulatively from the root.
		absChild := node.Children[i].ComposeWith(ancestor)

		if absChild.Mesh.ContainsGeometry() {
			if absChild.Mesh.Geometry != nil {
				*allGeo = append(*allGeo, absChild.Mesh.Geometry.Transformed(absChild.TranslationOrZero()))
			} else {
				core.LogWarn("mesh %q is tagged %s but has no payload, skipping", absChild.Mesh.Name(), absChild.Mesh.Kind)
			}
		}

		flattenRecursive(absChild.Mesh, &absChild, allGeo)
	}
}
