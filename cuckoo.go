package hashmap

import "math/rand"

// SeedSource supplies seed words for the cuckoo hashers. It is called twice
// per hasher at construction and at every rehash. Injecting one makes seeding
// deterministic and testable; the default draws from math/rand/v2.
type SeedSource func() uint64

type cuckooEntry[K comparable, V any] struct {
	key      K
	value    V
	occupied bool
}

// CuckooMap keeps two equal-capacity tables addressed by two independently
// seeded hashers, giving O(1) worst-case lookup and removal: every key lives
// either at its hasher1 position in the first table or its hasher2 position
// in the second. Inserts pay for this with an eviction walk bounded by the
// table capacity; when the walk exhausts its budget the map doubles, re-seeds
// both hashers and replays every entry, retrying up to 8 times before giving
// up with ErrCapacityExhausted.
type CuckooMap[K comparable, V any] struct {
	table1    []cuckooEntry[K, V]
	table2    []cuckooEntry[K, V]
	hasher1   Hasher[K]
	hasher2   Hasher[K]
	newHasher SeededHasherFunc[K]
	seed      SeedSource
	size      int
}

type CuckooOption[K comparable, V any] func(*CuckooMap[K, V])

// WithCuckooHasher overrides the default SipHash-1-3 hasher factory. The
// factory must honor its seed words: rehashing relies on fresh seeds to
// break collision patterns.
func WithCuckooHasher[K comparable, V any](f SeededHasherFunc[K]) CuckooOption[K, V] {
	return func(m *CuckooMap[K, V]) {
		m.newHasher = f
	}
}

// WithSeedSource overrides the default random seed source.
func WithSeedSource[K comparable, V any](s SeedSource) CuckooOption[K, V] {
	return func(m *CuckooMap[K, V]) {
		m.seed = s
	}
}

func NewCuckoo[K comparable, V any](capacity int, opts ...CuckooOption[K, V]) *CuckooMap[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	m := &CuckooMap[K, V]{
		table1: make([]cuckooEntry[K, V], capacity),
		table2: make([]cuckooEntry[K, V], capacity),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.newHasher == nil {
		m.newHasher = SipSeeded[K]
	}
	if m.seed == nil {
		m.seed = rand.Uint64
	}
	m.reseed()

	return m
}

func (m *CuckooMap[K, V]) reseed() {
	m.hasher1 = m.newHasher(m.seed(), m.seed())
	m.hasher2 = m.newHasher(m.seed(), m.seed())
}

func (m *CuckooMap[K, V]) pos1(key K) int {
	return int(m.hasher1.Hash(key) % uint64(len(m.table1)))
}

func (m *CuckooMap[K, V]) pos2(key K) int {
	return int(m.hasher2.Hash(key) % uint64(len(m.table2)))
}

// Insert upserts key. After ErrCapacityExhausted the map may be missing the
// entry displaced by the final failed eviction walk and should be discarded.
func (m *CuckooMap[K, V]) Insert(key K, value V) error {
	if float64(m.size+1) > maxLoadCuckoo*float64(len(m.table1)) {
		if err := m.grow(); err != nil {
			return err
		}
	}

	leftover, ok := m.place(key, value)
	for attempt := 0; !ok; attempt++ {
		if attempt == maxRehashAttempts {
			return ErrCapacityExhausted
		}
		// The entry displaced by the failed walk rides along with the rehash;
		// the original pair is then retried against the fresh tables (an
		// upsert if the walk already placed it).
		if err := m.grow(leftover); err != nil {
			return err
		}
		leftover, ok = m.place(key, value)
	}
	return nil
}

// place performs the upsert-or-evict insert against the current tables. When
// the eviction walk exhausts its iteration budget it returns the entry it was
// still holding, which may differ from (key, value) if the walk displaced it.
func (m *CuckooMap[K, V]) place(key K, value V) (cuckooEntry[K, V], bool) {
	p1, p2 := m.pos1(key), m.pos2(key)

	if e := &m.table1[p1]; e.occupied && e.key == key {
		e.value = value
		return cuckooEntry[K, V]{}, true
	}
	if e := &m.table2[p2]; e.occupied && e.key == key {
		e.value = value
		return cuckooEntry[K, V]{}, true
	}

	if e := &m.table1[p1]; !e.occupied {
		*e = cuckooEntry[K, V]{key: key, value: value, occupied: true}
		m.size++
		return cuckooEntry[K, V]{}, true
	}
	if e := &m.table2[p2]; !e.occupied {
		*e = cuckooEntry[K, V]{key: key, value: value, occupied: true}
		m.size++
		return cuckooEntry[K, V]{}, true
	}

	current := cuckooEntry[K, V]{key: key, value: value, occupied: true}
	useFirst := true
	for n := 0; n < len(m.table1); n++ {
		if useFirst {
			e := &m.table1[m.pos1(current.key)]
			if !e.occupied {
				*e = current
				m.size++
				return cuckooEntry[K, V]{}, true
			}
			current, *e = *e, current
		} else {
			e := &m.table2[m.pos2(current.key)]
			if !e.occupied {
				*e = current
				m.size++
				return cuckooEntry[K, V]{}, true
			}
			current, *e = *e, current
		}
		useFirst = !useFirst
	}

	return current, false
}

// grow doubles the capacity, re-seeds both hashers and replays every stored
// entry plus any pending entry from a failed eviction walk. A replay that
// itself exhausts an eviction walk repeats the doubling with fresh seeds,
// reading only the untouched old tables, up to maxRehashAttempts times; on
// exhaustion the pre-grow tables are restored.
func (m *CuckooMap[K, V]) grow(pending ...cuckooEntry[K, V]) error {
	old1, old2, oldSize := m.table1, m.table2, m.size
	oldHasher1, oldHasher2 := m.hasher1, m.hasher2
	capacity := len(m.table1)

	for attempt := 0; attempt < maxRehashAttempts; attempt++ {
		capacity *= 2
		m.table1 = make([]cuckooEntry[K, V], capacity)
		m.table2 = make([]cuckooEntry[K, V], capacity)
		m.size = 0
		m.reseed()

		if m.replay(old1) && m.replay(old2) && m.replay(pending) {
			return nil
		}
	}

	// Restore the hashers along with the tables: the old placements are only
	// reachable under the seeds that made them.
	m.table1, m.table2, m.size = old1, old2, oldSize
	m.hasher1, m.hasher2 = oldHasher1, oldHasher2
	return ErrCapacityExhausted
}

func (m *CuckooMap[K, V]) replay(entries []cuckooEntry[K, V]) bool {
	for i := range entries {
		if !entries[i].occupied {
			continue
		}
		if _, ok := m.place(entries[i].key, entries[i].value); !ok {
			return false
		}
	}
	return true
}

func (m *CuckooMap[K, V]) At(key K) (V, error) {
	if e := &m.table1[m.pos1(key)]; e.occupied && e.key == key {
		return e.value, nil
	}
	if e := &m.table2[m.pos2(key)]; e.occupied && e.key == key {
		return e.value, nil
	}

	var zero V
	return zero, ErrKeyNotFound
}

func (m *CuckooMap[K, V]) Contains(key K) bool {
	e1 := &m.table1[m.pos1(key)]
	e2 := &m.table2[m.pos2(key)]
	return (e1.occupied && e1.key == key) || (e2.occupied && e2.key == key)
}

func (m *CuckooMap[K, V]) Remove(key K) (V, bool) {
	if e := &m.table1[m.pos1(key)]; e.occupied && e.key == key {
		value := e.value
		*e = cuckooEntry[K, V]{}
		m.size--
		return value, true
	}
	if e := &m.table2[m.pos2(key)]; e.occupied && e.key == key {
		value := e.value
		*e = cuckooEntry[K, V]{}
		m.size--
		return value, true
	}

	var zero V
	return zero, false
}

func (m *CuckooMap[K, V]) Index(key K) (V, error) {
	if v, err := m.At(key); err == nil {
		return v, nil
	}

	var zero V
	if err := m.Insert(key, zero); err != nil {
		return zero, err
	}
	return zero, nil
}

func (m *CuckooMap[K, V]) Len() int { return m.size }

func (m *CuckooMap[K, V]) Empty() bool { return m.size == 0 }

func (m *CuckooMap[K, V]) Clear() {
	clear(m.table1)
	clear(m.table2)
	m.size = 0
}

// LoadFactor is size over the per-table capacity; the resize trigger keeps it
// at or below 0.5.
func (m *CuckooMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.table1))
}

// BucketCount is the total slot count across both tables.
func (m *CuckooMap[K, V]) BucketCount() int { return 2 * len(m.table1) }
