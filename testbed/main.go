/*
This is an example of application that will use the
polymesh package to test things out
*/
package main

import (
	"os"

	"github.com/spaghettifunk/polymesh"
	"github.com/spaghettifunk/polymesh/assets"
	"github.com/spaghettifunk/polymesh/config"
	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/geometry"
	"github.com/spaghettifunk/polymesh/math"
	"github.com/spaghettifunk/polymesh/mesh"
)

func main() {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		core.LogFatal("bad project file: %v", err)
	}
	core.LogSetLevel(cfg.LogLevel)

	// A small in-memory scene: a group holding a geo-group that itself
	// holds a leaf, every edge offset from its parent.
	root := mesh.New(mesh.KindGroup, nil)
	root.SetName("scene")

	platform := mesh.New(mesh.KindGeoGroup, quad("platform", 2.0))
	crate := mesh.New(mesh.KindGeometry, quad("crate", 0.5))
	crate.EnableRuntimeCulling()

	up := math.NewVec3(0, 1, 0)
	aside := math.NewVec3(3, 0, 0)
	platform.AddChild(mesh.Edge{Path: "crate", Mesh: crate, Translation: &up})
	root.AddChild(mesh.Edge{Path: "platform", Mesh: platform, Translation: &aside})

	for _, geo := range polymesh.FlattenGeometry(root) {
		core.LogInfo("flattened %q centered at (%.1f, %.1f, %.1f)",
			geo.Name, geo.Center.X, geo.Center.Y, geo.Center.Z)
	}

	// When a scene exists on disk, build it through the asset manager.
	if _, err := os.Stat(cfg.AssetRoot); err != nil {
		return
	}
	manager, err := assets.NewManager()
	if err != nil {
		core.LogFatal("asset manager: %v", err)
	}
	defer manager.Close()
	if cfg.Watch {
		if err := manager.Watch(cfg.AssetRoot); err != nil {
			core.LogFatal("watch %s: %v", cfg.AssetRoot, err)
		}
	}

	flat, err := polymesh.BuildTree(manager, cfg.AssetRoot)
	if err != nil {
		core.LogFatal("build tree: %v", err)
	}
	core.LogInfo("built %d meshes from %s", len(flat.Meshes), cfg.AssetRoot)
}

func quad(name string, size float32) *geometry.Config {
	s := size * 0.5
	return geometry.NewConfig(name, []math.Vertex3D{
		{Position: math.NewVec3(-s, -s, 0)},
		{Position: math.NewVec3(s, -s, 0)},
		{Position: math.NewVec3(s, s, 0)},
		{Position: math.NewVec3(-s, s, 0)},
	}, []uint32{0, 1, 2, 2, 3, 0})
}
