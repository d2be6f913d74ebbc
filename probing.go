package hashmap

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted // tombstone
)

type probeSlot[K comparable, V any] struct {
	key   K
	value V
	state slotState
}

// ProbeMap is a single open-addressed table with linear probing. Removals
// leave tombstones that are transparent to lookups, so removing an entry
// never makes a later-inserted entry with the same home slot unreachable.
//
// The table doubles before an insert if either the prospective load factor
// (size+1)/capacity would exceed 0.7 or the effective load factor
// (size+tombstones)/capacity does, so tombstone accumulation cannot degrade
// probe lengths even when net size stays low. Resizing drops all tombstones.
type ProbeMap[K comparable, V any] struct {
	slots   []probeSlot[K, V]
	hasher  Hasher[K]
	size    int
	deleted int
}

type ProbeOption[K comparable, V any] func(*ProbeMap[K, V])

// WithProbeHasher overrides the default SipHash-1-3 hasher.
func WithProbeHasher[K comparable, V any](h Hasher[K]) ProbeOption[K, V] {
	return func(m *ProbeMap[K, V]) {
		m.hasher = h
	}
}

func NewProbe[K comparable, V any](capacity int, opts ...ProbeOption[K, V]) *ProbeMap[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	m := &ProbeMap[K, V]{slots: make([]probeSlot[K, V], capacity)}
	for _, opt := range opts {
		opt(m)
	}
	if m.hasher == nil {
		m.hasher = NewSipHasher[K]()
	}

	return m
}

func (m *ProbeMap[K, V]) home(key K) int {
	return int(m.hasher.Hash(key) % uint64(len(m.slots)))
}

// lookup probes from the key's home slot. Tombstones never terminate the
// scan; only an empty slot does.
func (m *ProbeMap[K, V]) lookup(key K) (int, bool) {
	idx := m.home(key)
	for range m.slots {
		s := &m.slots[idx]
		if s.state == slotEmpty {
			return 0, false
		}
		if s.state == slotOccupied && s.key == key {
			return idx, true
		}
		idx++
		if idx == len(m.slots) {
			idx = 0
		}
	}
	return 0, false
}

func (m *ProbeMap[K, V]) Insert(key K, value V) error {
	capacity := float64(len(m.slots))
	if float64(m.size+1) > maxLoadProbe*capacity ||
		float64(m.size+m.deleted) > maxLoadProbe*capacity {
		if err := m.resize(); err != nil {
			return err
		}
	}
	return m.insert(key, value)
}

func (m *ProbeMap[K, V]) insert(key K, value V) error {
	// Scan the whole collision chain for the key before reusing a tombstone:
	// placing at the first free slot could duplicate a key that lives past it.
	free := -1
	idx := m.home(key)
	for range m.slots {
		s := &m.slots[idx]
		if s.state == slotOccupied {
			if s.key == key {
				s.value = value
				return nil
			}
		} else {
			if free < 0 {
				free = idx
			}
			if s.state == slotEmpty {
				break
			}
		}
		idx++
		if idx == len(m.slots) {
			idx = 0
		}
	}

	if free < 0 {
		return ErrTableFull
	}

	if m.slots[free].state == slotDeleted {
		m.deleted--
	}
	m.slots[free] = probeSlot[K, V]{key: key, value: value, state: slotOccupied}
	m.size++
	return nil
}

// resize doubles the table, dropping tombstones instead of carrying them
// forward.
func (m *ProbeMap[K, V]) resize() error {
	old := m.slots
	m.slots = make([]probeSlot[K, V], len(old)*2)
	m.size = 0
	m.deleted = 0

	for i := range old {
		if old[i].state != slotOccupied {
			continue
		}
		if err := m.insert(old[i].key, old[i].value); err != nil {
			return err
		}
	}
	return nil
}

func (m *ProbeMap[K, V]) At(key K) (V, error) {
	if idx, ok := m.lookup(key); ok {
		return m.slots[idx].value, nil
	}

	var zero V
	return zero, ErrKeyNotFound
}

func (m *ProbeMap[K, V]) Contains(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

func (m *ProbeMap[K, V]) Remove(key K) (V, bool) {
	idx, ok := m.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}

	value := m.slots[idx].value
	m.slots[idx] = probeSlot[K, V]{state: slotDeleted}
	m.deleted++
	m.size--
	return value, true
}

func (m *ProbeMap[K, V]) Index(key K) (V, error) {
	if v, err := m.At(key); err == nil {
		return v, nil
	}

	var zero V
	if err := m.Insert(key, zero); err != nil {
		return zero, err
	}
	return zero, nil
}

func (m *ProbeMap[K, V]) Len() int { return m.size }

func (m *ProbeMap[K, V]) Empty() bool { return m.size == 0 }

func (m *ProbeMap[K, V]) Clear() {
	clear(m.slots)
	m.size = 0
	m.deleted = 0
}

func (m *ProbeMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.slots))
}

func (m *ProbeMap[K, V]) BucketCount() int { return len(m.slots) }

// Stats is a point-in-time snapshot of a ProbeMap's occupancy.
type Stats struct {
	Size                    int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}

func (m *ProbeMap[K, V]) Stats() Stats {
	st := Stats{
		Size:                    m.size,
		Tombstones:              m.deleted,
		TombstonesCapacityRatio: float32(m.deleted) / float32(len(m.slots)),
	}
	if m.size > 0 {
		st.TombstonesSizeRatio = float32(m.deleted) / float32(m.size)
	}
	return st
}
