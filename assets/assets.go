// Package assets is the on-disk storage collaborator: it resolves
// locators to descriptor and geometry files, loads them through
// registered per-type loaders, and optionally watches the asset root
// so cached entries drop when files change underneath it.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/polymesh/assets/loaders"
	"github.com/spaghettifunk/polymesh/core"
	"github.com/spaghettifunk/polymesh/geometry"
	"github.com/spaghettifunk/polymesh/mesh"
	"github.com/spaghettifunk/polymesh/resources"
)

type AssetInfo struct {
	Path       string
	Type       resources.ResourceType
	LastLoaded time.Time
}

type Manager struct {
	assets  map[string]AssetInfo
	loaders map[resources.ResourceType]Loader
	cache   map[string]*resources.Resource

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewManager() (*Manager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[resources.ResourceType]Loader),
		cache:    make(map[string]*resources.Resource),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}

	// Register loaders
	m.registerLoader(resources.ResourceTypeDescriptor, &loaders.DescriptorLoader{})
	m.registerLoader(resources.ResourceTypeGeometry, &loaders.GeometryLoader{})

	return m, nil
}

func (m *Manager) registerLoader(assetType resources.ResourceType, loader Loader) {
	m.loaders[assetType] = loader
}

// Watch starts watching the named directory and all sub-directories,
// indexing every tracked asset file found on the way.
func (m *Manager) Watch(root string) error {
	if m.isClosed {
		return errors.New("asset manager already closed")
	}
	go m.start()
	return m.watchRecursive(root)
}

// Close stops the watcher. Loading still works afterwards; only change
// tracking stops.
func (m *Manager) Close() {
	if m.isClosed {
		return
	}
	m.isClosed = true
	close(m.done)
}

// LoadGroupDescriptor loads the descriptor stored under the locator
// directory. Results are cached until the file changes on disk.
func (m *Manager) LoadGroupDescriptor(locator string) (*mesh.Meta, error) {
	path := fmt.Sprintf("%s/%s", locator, loaders.DescriptorFileName)
	res, err := m.load(resources.ResourceTypeDescriptor, path)
	if err != nil {
		return nil, err
	}
	meta, ok := res.Data.(*mesh.Meta)
	if !ok {
		return nil, fmt.Errorf("%w: %s: loader returned %T", core.ErrDescriptorLoad, path, res.Data)
	}
	return meta, nil
}

// LoadGeometry loads the geometry payload stored under the locator
// directory. Results are cached until the file changes on disk.
func (m *Manager) LoadGeometry(locator string) (*geometry.Config, error) {
	path := fmt.Sprintf("%s/%s", locator, loaders.GeometryFileName)
	res, err := m.load(resources.ResourceTypeGeometry, path)
	if err != nil {
		return nil, err
	}
	cfg, ok := res.Data.(*geometry.Config)
	if !ok {
		return nil, fmt.Errorf("%w: %s: loader returned %T", core.ErrGeometryLoad, path, res.Data)
	}
	return cfg, nil
}

// WriteGroupDescriptor persists a descriptor under the locator
// directory, tagged with the latest schema version.
func (m *Manager) WriteGroupDescriptor(locator string, meta *mesh.Meta) error {
	meta.Version = mesh.LatestMetaVersion
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(locator, 0o755); err != nil {
		return err
	}
	path := fmt.Sprintf("%s/%s", locator, loaders.DescriptorFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	m.invalidate(path)
	return nil
}

func (m *Manager) load(assetType resources.ResourceType, path string) (*resources.Resource, error) {
	m.mutex.RLock()
	cached, ok := m.cache[path]
	m.mutex.RUnlock()
	if ok {
		return cached, nil
	}

	loader, ok := m.loaders[assetType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for asset type: %d", assetType)
	}
	res, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	m.cache[path] = res
	m.assets[path] = AssetInfo{Path: path, Type: assetType, LastLoaded: time.Now()}
	m.mutex.Unlock()

	core.LogDebug("loaded asset %s (%d bytes)", path, res.DataSize)
	return res, nil
}

func (m *Manager) start() {
	for {
		select {

		case e := <-m.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					m.watchRecursive(e.Name)
				}
				continue
			}
			// A write or create makes any cached copy stale; a remove
			// drops the file from the index entirely.
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				m.handleFileEvent(e.Name)
			}
			if e.Op&fsnotify.Remove != 0 {
				m.removeAsset(e.Name)
				m.fsnotify.Remove(e.Name)
			}

		case e := <-m.fsnotify.Errors:
			core.LogError(e.Error())

		case <-m.done:
			m.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch
// list and indexes the asset files it passes.
func (m *Manager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return m.fsnotify.Add(walkPath)
		}
		m.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (m *Manager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == resources.ResourceTypeNone {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.cache, path)
	m.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
}

// Remove the asset from the index if it was deleted
func (m *Manager) removeAsset(path string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.cache, path)
	delete(m.assets, path)
}

func (m *Manager) invalidate(path string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.cache, path)
}

func determineAssetType(path string) resources.ResourceType {
	switch filepath.Base(path) {
	case loaders.DescriptorFileName:
		return resources.ResourceTypeDescriptor
	case loaders.GeometryFileName:
		return resources.ResourceTypeGeometry
	default:
		return resources.ResourceTypeNone
	}
}
