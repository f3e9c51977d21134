package ordered

// Map is an insertion-ordered map. Values are held by pointer so callers can
// update an entry in place after GetOrCreate.
type Map[K comparable, V any] struct {
	index map[K]int
	items []*V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// GetOrCreate returns the entry for key, creating it with newFn on first use.
func (m *Map[K, V]) GetOrCreate(key K, newFn func() V) *V {
	if i, ok := m.index[key]; ok {
		return m.items[i]
	}
	v := newFn()
	m.index[key] = len(m.items)
	m.items = append(m.items, &v)
	return &v
}

func (m *Map[K, V]) Len() int {
	return len(m.items)
}

// Values returns copies of the values in first-insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.items))
	for _, v := range m.items {
		out = append(out, *v)
	}
	return out
}

// Set is an insertion-ordered set.
type Set[K comparable] struct {
	seen  map[K]struct{}
	items []K
}

func NewSet[K comparable]() *Set[K] {
	return &Set[K]{seen: make(map[K]struct{})}
}

// Add appends key if it is not already present and reports whether it was new.
func (s *Set[K]) Add(key K) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, key)
	return true
}

func (s *Set[K]) Items() []K {
	return append([]K(nil), s.items...)
}
