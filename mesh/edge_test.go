package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/polymesh/math"
)

func TestTranslationOrZero(t *testing.T) {
	e := Edge{Path: "/a", Mesh: New(KindGroup, nil)}
	assert.Equal(t, math.NewVec3Zero(), e.TranslationOrZero())

	offset := math.NewVec3(1, 2, 3)
	e.Translation = &offset
	assert.Equal(t, offset, e.TranslationOrZero())
}

func TestComposeWithAddsTranslations(t *testing.T) {
	a := math.NewVec3(1, 0, 0)
	b := math.NewVec3(0, 2, 0)

	childMesh := New(KindGeometry, nil)
	ancestorMesh := New(KindGroup, nil)
	child := Edge{Path: "/child", Mesh: childMesh, Translation: &a}
	ancestor := Edge{Path: "/ancestor", Mesh: ancestorMesh, Translation: &b}

	composed := child.ComposeWith(&ancestor)
	require.NotNil(t, composed.Translation)
	assert.Equal(t, a.Add(b), *composed.Translation)
	// Identity always comes from the child edge, never the ancestor.
	assert.Equal(t, "/child", composed.Path)
	assert.Same(t, childMesh, composed.Mesh)

	// Addition commutes, so swapping own and ancestor gives the same sum.
	swapped := ancestor.ComposeWith(&child)
	assert.Equal(t, *composed.Translation, *swapped.Translation)
	assert.Equal(t, "/ancestor", swapped.Path)
}

func TestComposeWithNilAncestor(t *testing.T) {
	offset := math.NewVec3(4, 5, 6)
	e := Edge{Path: "/a", Mesh: New(KindGeometry, nil), Translation: &offset}

	copied := e.ComposeWith(nil)
	assert.Equal(t, e.Path, copied.Path)
	assert.Same(t, e.Mesh, copied.Mesh)
	assert.Equal(t, e.Translation, copied.Translation)
}

func TestComposeWithUnsetTranslations(t *testing.T) {
	child := Edge{Path: "/a", Mesh: New(KindGeometry, nil)}
	ancestor := Edge{Path: "/b", Mesh: New(KindGroup, nil)}

	composed := child.ComposeWith(&ancestor)
	require.NotNil(t, composed.Translation)
	assert.Equal(t, math.NewVec3Zero(), *composed.Translation)
}
