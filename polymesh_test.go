package polymesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/geometry"
	"github.com/spaghettifunk/polymesh/math"
	"github.com/spaghettifunk/polymesh/mesh"
)

// fakeStorage serves descriptors and payloads from memory, keyed by
// the exact locator string the builder composes.
type fakeStorage struct {
	metas map[string]*mesh.Meta
	geos  map[string]*geometry.Config
}

func (f *fakeStorage) LoadGroupDescriptor(locator string) (*mesh.Meta, error) {
	if m, ok := f.metas[locator]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrDescriptorLoad, locator)
}

func (f *fakeStorage) LoadGeometry(locator string) (*geometry.Config, error) {
	if g, ok := f.geos[locator]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrGeometryLoad, locator)
}

func payload(name string) *geometry.Config {
	return geometry.NewConfig(name, []math.Vertex3D{
		{Position: math.NewVec3Zero()},
	}, []uint32{0})
}

func vec(x, y, z float32) *math.Vec3 {
	v := math.NewVec3(x, y, z)
	return &v
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	store := &fakeStorage{
		metas: map[string]*mesh.Meta{
			"root": {
				Version:  mesh.LatestMetaVersion,
				Kind:     mesh.KindGroup,
				Children: []mesh.ChildRef{{Path: "/a", Translation: vec(1, 0, 0)}},
			},
			"root/a": {
				Version:  mesh.LatestMetaVersion,
				Kind:     mesh.KindGeometry,
				Metadata: map[string]string{"name": "leaf"},
			},
		},
		geos: map[string]*geometry.Config{
			"root/a": payload("P"),
		},
	}

	flat, err := BuildTree(store, "root")
	require.NoError(t, err)
	assert.Equal(t, mesh.KindGroup, flat.RootMeta.Kind)
	require.Len(t, flat.Meshes, 1)

	leaf := flat.Meshes[0]
	assert.Equal(t, "leaf", leaf.Name())
	assert.Equal(t, mesh.KindGeometry, leaf.Kind)
	require.NotNil(t, leaf.Geometry)
	assert.Equal(t, "P", leaf.Geometry.Name)
	assert.Equal(t, math.NewVec3(1, 0, 0), leaf.Geometry.Vertices[0].Position)
}

func TestBuildTreeAccumulatesTranslation(t *testing.T) {
	store := &fakeStorage{
		metas: map[string]*mesh.Meta{
			"root": {
				Kind:     mesh.KindGroup,
				Children: []mesh.ChildRef{{Path: "/mid", Translation: vec(1, 0, 0)}},
			},
			"root/mid": {
				Kind:     mesh.KindGroup,
				Children: []mesh.ChildRef{{Path: "/leaf", Translation: vec(0, 2, 0)}},
			},
			"root/mid/leaf": {Kind: mesh.KindGeometry},
		},
		geos: map[string]*geometry.Config{
			"root/mid/leaf": payload("Q"),
		},
	}

	flat, err := BuildTree(store, "root")
	require.NoError(t, err)
	require.Len(t, flat.Meshes, 1)
	assert.Equal(t, math.NewVec3(1, 2, 0), flat.Meshes[0].Geometry.Vertices[0].Position)
	assert.Equal(t, math.NewVec3(1, 2, 0), flat.Meshes[0].Geometry.Center)
}

func TestBuildTreePreservesChildOrder(t *testing.T) {
	store := &fakeStorage{
		metas: map[string]*mesh.Meta{
			"root": {
				Kind: mesh.KindGroup,
				Children: []mesh.ChildRef{
					{Path: "/b"},
					{Path: "/a"},
					{Path: "/c"},
				},
			},
			"root/b": {Kind: mesh.KindGeometry},
			"root/a": {Kind: mesh.KindGeometry},
			"root/c": {Kind: mesh.KindGeometry},
		},
		geos: map[string]*geometry.Config{
			"root/b": payload("B"),
			"root/a": payload("A"),
			"root/c": payload("C"),
		},
	}

	for i := 0; i < 3; i++ {
		flat, err := BuildTree(store, "root")
		require.NoError(t, err)
		require.Len(t, flat.Meshes, 3)
		// Declaration order, not lexical order.
		assert.Equal(t, "B", flat.Meshes[0].Geometry.Name)
		assert.Equal(t, "A", flat.Meshes[1].Geometry.Name)
		assert.Equal(t, "C", flat.Meshes[2].Geometry.Name)
	}
}

func TestBuildTreeFailsFast(t *testing.T) {
	store := &fakeStorage{
		metas: map[string]*mesh.Meta{
			"root": {
				Kind: mesh.KindGroup,
				Children: []mesh.ChildRef{
					{Path: "/ok"},
					{Path: "/broken"},
				},
			},
			"root/ok":     {Kind: mesh.KindGeometry},
			"root/broken": {Kind: mesh.KindGeometry},
		},
		geos: map[string]*geometry.Config{
			"root/ok": payload("ok"),
			// root/broken has a descriptor but no payload.
		},
	}

	flat, err := BuildTree(store, "root")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrGeometryLoad)
	// No partial results.
	assert.Nil(t, flat)

	// A missing descriptor aborts the same way.
	delete(store.metas, "root/broken")
	flat, err = BuildTree(store, "root")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDescriptorLoad)
	assert.Nil(t, flat)
}

func TestBuildTreeDepthCap(t *testing.T) {
	// A child path of "" makes the locator loop back onto itself.
	store := &fakeStorage{
		metas: map[string]*mesh.Meta{
			"root": {
				Kind:     mesh.KindGroup,
				Children: []mesh.ChildRef{{Path: "", Translation: vec(1, 0, 0)}},
			},
		},
	}

	flat, err := BuildTree(store, "root")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTreeTooDeep)
	assert.Nil(t, flat)
}
