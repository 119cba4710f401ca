package resources

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief No resource type. Returned for files the manager does not track. */
	ResourceTypeNone ResourceType = iota
	/** @brief Group descriptor resource type (polymeta.json). */
	ResourceTypeDescriptor
	/** @brief Geometry payload resource type (mesh.json). */
	ResourceTypeGeometry
)

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The resource type. */
	Type ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}
