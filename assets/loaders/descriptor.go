package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/mesh"
	"github.com/spaghettifunk/polymesh/resources"
)

// DescriptorFileName is the file holding a node's descriptor inside
// its locator directory.
const DescriptorFileName = "polymeta.json"

type DescriptorLoader struct{}

func (dl *DescriptorLoader) Load(path string) (*resources.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDescriptorLoad, path, err)
	}

	meta := &mesh.Meta{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDescriptorLoad, path, err)
	}
	if meta.Version > mesh.LatestMetaVersion {
		return nil, fmt.Errorf("%w: %s: %w: version %d, newest supported is %d",
			core.ErrDescriptorLoad, path, core.ErrUnsupportedVersion, meta.Version, mesh.LatestMetaVersion)
	}

	return &resources.Resource{
		Type:     resources.ResourceTypeDescriptor,
		Name:     path,
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     meta,
	}, nil
}

func (dl *DescriptorLoader) Unload(*resources.Resource) error {
	return nil
}
