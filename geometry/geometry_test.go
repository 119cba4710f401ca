package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/polymesh/math"
)

func unitQuad(name string) *Config {
	return NewConfig(name, []math.Vertex3D{
		{Position: math.NewVec3(-1, -1, 0)},
		{Position: math.NewVec3(1, -1, 0)},
		{Position: math.NewVec3(1, 1, 0)},
		{Position: math.NewVec3(-1, 1, 0)},
	}, []uint32{0, 1, 2, 2, 3, 0})
}

func TestNewConfigComputesBounds(t *testing.T) {
	c := unitQuad("quad")
	assert.Equal(t, math.NewVec3(-1, -1, 0), c.MinExtents)
	assert.Equal(t, math.NewVec3(1, 1, 0), c.MaxExtents)
	assert.Equal(t, math.NewVec3Zero(), c.Center)
}

func TestNewConfigGeneratesName(t *testing.T) {
	a := NewConfig("", nil, nil)
	b := NewConfig("", nil, nil)
	assert.NotEmpty(t, a.Name)
	assert.NotEqual(t, a.Name, b.Name)
}

func TestTransformed(t *testing.T) {
	c := unitQuad("quad")
	offset := math.NewVec3(1, 2, 3)

	moved := c.Transformed(offset)
	assert.Equal(t, math.NewVec3(0, 1, 3), moved.MinExtents)
	assert.Equal(t, math.NewVec3(2, 3, 3), moved.MaxExtents)
	assert.Equal(t, offset, moved.Center)
	require.Len(t, moved.Vertices, 4)
	assert.Equal(t, math.NewVec3(0, 1, 3), moved.Vertices[0].Position)
	assert.Equal(t, c.Indices, moved.Indices)
	assert.Equal(t, c.Name, moved.Name)

	// The receiver stays put.
	assert.Equal(t, math.NewVec3(-1, -1, 0), c.Vertices[0].Position)
	assert.Equal(t, math.NewVec3Zero(), c.Center)
}

func TestTransformedByZeroIsEqualCopy(t *testing.T) {
	c := unitQuad("quad")
	same := c.Transformed(math.NewVec3Zero())
	assert.Equal(t, c, same)
	assert.NotSame(t, c, same)
}
