package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3 `json:"min"`
	/** @brief The maximum extents of the object. */
	Max Vec3 `json:"max"`
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3 `json:"position"`
	/** @brief The normal of the vertex. */
	Normal Vec3 `json:"normal"`
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2 `json:"texcoord"`
	/** @brief The colour of the vertex. */
	Colour Vec4 `json:"colour"`
}
