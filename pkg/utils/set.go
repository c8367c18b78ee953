package utils

// Set is an unordered collection of distinct values.
type Set[V comparable] struct {
	local map[V]struct{}
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		local: make(map[V]struct{}),
	}
}

func SetFrom[V comparable](items ...V) *Set[V] {
	set := NewSet[V]()
	set.Add(items...)
	return set
}

func (s *Set[V]) Add(value ...V) {
	for _, v := range value {
		s.local[v] = struct{}{}
	}
}

func (s *Set[V]) Remove(key V) {
	delete(s.local, key)
}

func (s *Set[V]) Contains(key V) bool {
	_, ok := s.local[key]
	return ok
}

func (s *Set[V]) Items() []V {
	values := make([]V, 0, len(s.local))
	for value := range s.local {
		values = append(values, value)
	}
	return values
}

func (s *Set[V]) Size() int {
	return len(s.local)
}
