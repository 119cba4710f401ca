// Package polymesh flattens hierarchical mesh scenes: trees of nodes
// that are geometry, groups of other meshes, or a mix of both, where
// every parent→child edge may carry a translation. Trees are either
// materialized from external storage with BuildTree, which bakes the
// accumulated translation into each leaf as it loads, or walked in
// memory with FlattenGeometry, which repositions already-attached
// payloads into the root's coordinate space.
package polymesh

import (
	"fmt"

	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/geometry"
	"github.com/spaghettifunk/polymesh/math"
	"github.com/spaghettifunk/polymesh/mesh"
)

// MaxTreeDepth bounds builder recursion. Descriptor trees come from
// disk, where a loop of relative paths would otherwise recurse without
// end.
const MaxTreeDepth = 64

// Storage is the external collaborator the tree builder reads from. A
// child's locator is the parent locator concatenated with the child's
// path, with no normalization.
type Storage interface {
	LoadGroupDescriptor(locator string) (*mesh.Meta, error)
	LoadGeometry(locator string) (*geometry.Config, error)
}

// FlatMesh is a fully built scene: the root descriptor plus every
// reachable leaf mesh, each positioned in the root's coordinate space.
type FlatMesh struct {
	RootMeta *mesh.Meta
	Meshes   []*mesh.Mesh
}

// BuildTree loads the descriptor tree rooted at the given locator and
// collects its leaf meshes in pre-order, children in declaration
// order, with every leaf's geometry repositioned by the sum of the
// edge translations from the root. Any load failure aborts the whole
// build; there are no partial results.
func BuildTree(store Storage, rootLocator string) (*FlatMesh, error) {
	rootMeta, err := store.LoadGroupDescriptor(rootLocator)
	if err != nil {
		return nil, err
	}

	meshes, err := collectMeshes(store, rootLocator, rootMeta, math.NewVec3Zero(), 0)
	if err != nil {
		return nil, err
	}
	core.LogDebug("built tree from %s: %d meshes", rootLocator, len(meshes))

	return &FlatMesh{
		RootMeta: rootMeta,
		Meshes:   meshes,
	}, nil
}

func collectMeshes(store Storage, locator string, meta *mesh.Meta, transform math.Vec3, depth int) ([]*mesh.Mesh, error) {
	if depth > MaxTreeDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", core.ErrTreeTooDeep, locator, depth)
	}

	// Anything that is not a pure group bottoms out here: load its
	// payload and bake the accumulated translation in.
	if !meta.IsGroup() {
		cfg, err := store.LoadGeometry(locator)
		if err != nil {
			return nil, err
		}
		node := mesh.New(meta.Kind, cfg.Transformed(transform))
		node.Metadata = mesh.MetadataFromMap(meta.Metadata)
		return []*mesh.Mesh{node}, nil
	}

	var out []*mesh.Mesh
	for _, child := range meta.Children {
		childLocator := locator + child.Path
		childMeta, err := store.LoadGroupDescriptor(childLocator)
		if err != nil {
			return nil, err
		}
		childTransform := transform
		if child.Translation != nil {
			childTransform = transform.Add(*child.Translation)
		}
		sub, err := collectMeshes(store, childLocator, childMeta, childTransform, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}
