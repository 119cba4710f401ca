package geometry

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/polymesh/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a geometry. This is the
 * payload carried by mesh nodes and the unit emitted by flattening.
 */
type Config struct {
	/** @brief The Name of the geometry. */
	Name string `json:"name"`
	/** @brief The name of the material used by the geometry. */
	MaterialName string `json:"material_name,omitempty"`
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D `json:"vertices"`
	/** @brief An array of Indices. */
	Indices []uint32 `json:"indices"`

	Center     math.Vec3 `json:"center"`
	MinExtents math.Vec3 `json:"min_extents"`
	MaxExtents math.Vec3 `json:"max_extents"`
}

// NewConfig builds a geometry config from raw vertex and index data,
// computing center and extents. An empty name is replaced with a
// generated one so every geometry stays addressable.
func NewConfig(name string, vertices []math.Vertex3D, indices []uint32) *Config {
	if name == "" {
		name = uuid.New().String()
	}
	c := &Config{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
	c.recomputeBounds()
	return c
}

func (c *Config) recomputeBounds() {
	if len(c.Vertices) == 0 {
		c.Center = math.NewVec3Zero()
		c.MinExtents = math.NewVec3Zero()
		c.MaxExtents = math.NewVec3Zero()
		return
	}
	min := c.Vertices[0].Position
	max := c.Vertices[0].Position
	for _, v := range c.Vertices[1:] {
		p := v.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	c.MinExtents = min
	c.MaxExtents = max
	c.Center = min.Add(max).MulScalar(0.5)
}

// Transformed returns a deep copy of the geometry repositioned by the
// given translation. Vertex positions, center and extents are offset;
// normals, texture coordinates and colours are untouched. The receiver
// is never modified.
func (c *Config) Transformed(t math.Vec3) *Config {
	out := &Config{
		Name:         c.Name,
		MaterialName: c.MaterialName,
		Vertices:     make([]math.Vertex3D, len(c.Vertices)),
		Indices:      make([]uint32, len(c.Indices)),
		Center:       c.Center.Add(t),
		MinExtents:   c.MinExtents.Add(t),
		MaxExtents:   c.MaxExtents.Add(t),
	}
	for i, v := range c.Vertices {
		v.Position = v.Position.Add(t)
		out.Vertices[i] = v
	}
	copy(out.Indices, c.Indices)
	return out
}
