package ecs

// Removable is implemented by every component store so the Registry can
// bulk-remove an entity's data from all stores on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a generic typed map store for components. No reflect, no
// interface{} — pure generics. Get doubles as the liveness probe for
// schedulers: a nil, false result means the entity no longer carries the
// component.
type Store[T any] struct {
	data map[EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[EntityID]*T, 256),
	}
}

func (s *Store[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits every (entity, component) pair in unspecified order.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
