package mesh

import (
	"fmt"

	"github.com/spaghettifunk/polymesh/core"
)

const (
	// MetaKeyName is the reserved metadata key for the display name.
	MetaKeyName = "name"
	// MetaKeyRuntimeCulling is the reserved key for the runtime culling beta flag.
	MetaKeyRuntimeCulling = "_beta_runtime_culling"
	// RuntimeCullingOn is the only value that enables the flag.
	RuntimeCullingOn = "on"

	// DefaultMeshName is returned when no name has been set.
	DefaultMeshName = "Unnamed"
)

// Metadata holds the per-node metadata. The two reserved keys are typed
// fields; everything else lands in the open Extra map so unknown keys
// survive a round trip.
type Metadata struct {
	Name           string
	RuntimeCulling bool
	Extra          map[string]string
}

// Get looks a key up, routing the reserved keys to their typed fields.
// Unset keys fail with core.ErrKeyNotFound.
func (md *Metadata) Get(key string) (string, error) {
	switch key {
	case MetaKeyName:
		if md.Name != "" {
			return md.Name, nil
		}
	case MetaKeyRuntimeCulling:
		if md.RuntimeCulling {
			return RuntimeCullingOn, nil
		}
	default:
		if value, ok := md.Extra[key]; ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", core.ErrKeyNotFound, key)
}

// Set stores a key, routing the reserved keys to their typed fields.
func (md *Metadata) Set(key, value string) {
	switch key {
	case MetaKeyName:
		md.Name = value
	case MetaKeyRuntimeCulling:
		md.RuntimeCulling = value == RuntimeCullingOn
	default:
		if md.Extra == nil {
			md.Extra = make(map[string]string)
		}
		md.Extra[key] = value
	}
}

// ToMap projects the metadata into the flat string map used by the
// exchange form. Reserved fields only appear when set.
func (md *Metadata) ToMap() map[string]string {
	out := make(map[string]string, len(md.Extra)+2)
	for k, v := range md.Extra {
		out[k] = v
	}
	if md.Name != "" {
		out[MetaKeyName] = md.Name
	}
	if md.RuntimeCulling {
		out[MetaKeyRuntimeCulling] = RuntimeCullingOn
	}
	return out
}

// MetadataFromMap rebuilds typed metadata from the exchange form.
func MetadataFromMap(m map[string]string) Metadata {
	var md Metadata
	for k, v := range m {
		md.Set(k, v)
	}
	return md
}
