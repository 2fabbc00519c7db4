package resource

import (
	"DodgeBall3D/internal/logger"
	"DodgeBall3D/internal/renderer"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var ErrResourceExists = errors.New("resource already exists")

// Stats provides debugging and profiling information
type Stats struct {
	Meshes      int
	Materials   int
	CacheHits   int
	CacheMisses int
}

// Manager is a name keyed cache of meshes and materials. Entities borrow the
// pointers it hands out; GPU buffers behind a mesh belong to the renderer.
type Manager struct {
	meshes    map[string]*renderer.Mesh
	materials map[string]*renderer.Material
	mu        sync.RWMutex
	stats     Stats
}

func NewManager() *Manager {
	return &Manager{
		meshes:    make(map[string]*renderer.Mesh),
		materials: make(map[string]*renderer.Material),
	}
}

// Mesh returns the cached mesh or builds, caches and returns a new one.
func (m *Manager) Mesh(name string, build func() *renderer.Mesh) *renderer.Mesh {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mesh, exists := m.meshes[name]; exists {
		m.stats.CacheHits++
		return mesh
	}
	m.stats.CacheMisses++

	mesh := build()
	m.meshes[name] = mesh
	logger.Log.Debug("Mesh cached",
		zap.String("name", name),
		zap.Int("vertices", mesh.VertexCount()))
	return mesh
}

// CreateMesh stores mesh under name. Names are never overwritten.
func (m *Manager) CreateMesh(name string, mesh *renderer.Mesh) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.meshes[name]; exists {
		return fmt.Errorf("mesh %q: %w", name, ErrResourceExists)
	}
	m.meshes[name] = mesh
	return nil
}

func (m *Manager) GetMesh(name string) (*renderer.Mesh, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mesh, ok := m.meshes[name]
	return mesh, ok
}

// Material returns the cached material or builds, caches and returns a new one.
func (m *Manager) Material(name string, build func() *renderer.Material) *renderer.Material {
	m.mu.Lock()
	defer m.mu.Unlock()

	if material, exists := m.materials[name]; exists {
		m.stats.CacheHits++
		return material
	}
	m.stats.CacheMisses++

	material := build()
	m.materials[name] = material
	logger.Log.Debug("Material cached", zap.String("name", name))
	return material
}

func (m *Manager) CreateMaterial(name string, material *renderer.Material) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.materials[name]; exists {
		return fmt.Errorf("material %q: %w", name, ErrResourceExists)
	}
	m.materials[name] = material
	return nil
}

func (m *Manager) GetMaterial(name string) (*renderer.Material, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	material, ok := m.materials[name]
	return material, ok
}

// GetStats returns current cache statistics
func (m *Manager) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := m.stats
	stats.Meshes = len(m.meshes)
	stats.Materials = len(m.materials)
	return stats
}

func (m *Manager) LogStats() {
	stats := m.GetStats()
	hitRate := 0.0
	if total := stats.CacheHits + stats.CacheMisses; total > 0 {
		hitRate = float64(stats.CacheHits) / float64(total)
	}
	logger.Log.Info("Resource Manager Stats",
		zap.Int("meshes", stats.Meshes),
		zap.Int("materials", stats.Materials),
		zap.Int("cacheHits", stats.CacheHits),
		zap.Int("cacheMisses", stats.CacheMisses),
		zap.Float64("hitRate", hitRate))
}

// Clear forgets every resource.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.meshes = make(map[string]*renderer.Mesh)
	m.materials = make(map[string]*renderer.Material)
	logger.Log.Info("Resource manager cleared")
}
