package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/geometry"
	"github.com/spaghettifunk/polymesh/math"
	"github.com/spaghettifunk/polymesh/resources"
)

// GeometryFileName is the file holding a node's geometry payload
// inside its locator directory.
const GeometryFileName = "mesh.json"

type GeometryLoader struct{}

func (gl *GeometryLoader) Load(path string) (*resources.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrGeometryLoad, path, err)
	}

	cfg := &geometry.Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrGeometryLoad, path, err)
	}
	sanitize(cfg)

	return &resources.Resource{
		Type:     resources.ResourceTypeGeometry,
		Name:     cfg.Name,
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     cfg,
	}, nil
}

func (gl *GeometryLoader) Unload(*resources.Resource) error {
	return nil
}

// sanitize makes an on-disk payload safe to hand out: geometries
// always get a name and vertex colours stay inside [0, 1].
func sanitize(cfg *geometry.Config) {
	if cfg.Name == "" {
		cfg.Name = uuid.New().String()
	}
	for i := range cfg.Vertices {
		c := &cfg.Vertices[i].Colour
		c.X = math.Clamp(c.X, 0.0, 1.0)
		c.Y = math.Clamp(c.Y, 0.0, 1.0)
		c.Z = math.Clamp(c.Z, 0.0, 1.0)
		c.W = math.Clamp(c.W, 0.0, 1.0)
	}
}
