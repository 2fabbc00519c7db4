package behaviour

import (
	"DodgeBall3D/internal/logger"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrObjectExists   = errors.New("object already exists")
	ErrObjectNotFound = errors.New("object not found")
)

// ObjectManager owns every live entity by unique name and keeps them in
// creation order.
type ObjectManager struct {
	objects map[string]Entity
	order   []Entity
}

func NewObjectManager() *ObjectManager {
	return &ObjectManager{
		objects: make(map[string]Entity),
		order:   make([]Entity, 0),
	}
}

// CreateObject builds an entity with ctor and registers it under name. A
// duplicate name fails before ctor runs.
func CreateObject[T Entity](m *ObjectManager, name string, ctor func(name string) (T, error)) (T, error) {
	var zero T
	if _, exists := m.objects[name]; exists {
		return zero, fmt.Errorf("create %q: %w", name, ErrObjectExists)
	}
	obj, err := ctor(name)
	if err != nil {
		return zero, fmt.Errorf("create %q: %w", name, err)
	}
	if err := m.Register(obj); err != nil {
		_ = obj.Release()
		return zero, err
	}
	return obj, nil
}

// Register adds an already constructed entity.
func (m *ObjectManager) Register(obj Entity) error {
	name := obj.Name()
	if _, exists := m.objects[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrObjectExists)
	}
	m.objects[name] = obj
	m.order = append(m.order, obj)
	logger.Log.Debug("Object registered", zap.String("name", name))
	return nil
}

func (m *ObjectManager) GetObject(name string) (Entity, bool) {
	obj, ok := m.objects[name]
	return obj, ok
}

// DestroyObject releases the entity and forgets it.
func (m *ObjectManager) DestroyObject(name string) error {
	obj, ok := m.objects[name]
	if !ok {
		return fmt.Errorf("destroy %q: %w", name, ErrObjectNotFound)
	}
	delete(m.objects, name)
	for i, o := range m.order {
		if o == obj {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if err := obj.Release(); err != nil {
		return fmt.Errorf("destroy %q: %w", name, err)
	}
	logger.Log.Debug("Object destroyed", zap.String("name", name))
	return nil
}

// Objects returns the live entities in creation order. The slice is shared.
func (m *ObjectManager) Objects() []Entity {
	return m.order
}

func (m *ObjectManager) Len() int {
	return len(m.order)
}

// Clear releases every entity, newest first.
func (m *ObjectManager) Clear() {
	for i := len(m.order) - 1; i >= 0; i-- {
		obj := m.order[i]
		if err := obj.Release(); err != nil {
			logger.Log.Warn("Release failed", zap.String("name", obj.Name()), zap.Error(err))
		}
	}
	m.objects = make(map[string]Entity)
	m.order = m.order[:0]
}
