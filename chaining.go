package hashmap

import "slices"

type chainEntry[K comparable, V any] struct {
	key   K
	value V
}

// ChainMap resolves collisions with per-bucket entry lists. Before an insert
// would push the load factor above 0.75 the bucket count doubles and every
// entry is redistributed.
type ChainMap[K comparable, V any] struct {
	buckets [][]chainEntry[K, V]
	hasher  Hasher[K]
	size    int
}

type ChainOption[K comparable, V any] func(*ChainMap[K, V])

// WithChainHasher overrides the default SipHash-1-3 hasher.
func WithChainHasher[K comparable, V any](h Hasher[K]) ChainOption[K, V] {
	return func(m *ChainMap[K, V]) {
		m.hasher = h
	}
}

func NewChain[K comparable, V any](capacity int, opts ...ChainOption[K, V]) *ChainMap[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	m := &ChainMap[K, V]{buckets: make([][]chainEntry[K, V], capacity)}
	for _, opt := range opts {
		opt(m)
	}
	if m.hasher == nil {
		m.hasher = NewSipHasher[K]()
	}

	return m
}

func (m *ChainMap[K, V]) bucketIndex(key K) int {
	return int(m.hasher.Hash(key) % uint64(len(m.buckets)))
}

func (m *ChainMap[K, V]) Insert(key K, value V) error {
	if float64(m.size+1) > maxLoadChain*float64(len(m.buckets)) {
		m.resize()
	}
	m.insert(key, value)
	return nil
}

func (m *ChainMap[K, V]) insert(key K, value V) {
	b := m.bucketIndex(key)
	bucket := m.buckets[b]
	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return
		}
	}

	m.buckets[b] = append(bucket, chainEntry[K, V]{key: key, value: value})
	m.size++
}

// resize doubles the bucket count and reinserts every entry. The hasher is
// unchanged; only the modulus moves entries around.
func (m *ChainMap[K, V]) resize() {
	old := m.buckets
	m.buckets = make([][]chainEntry[K, V], len(old)*2)
	m.size = 0

	for _, bucket := range old {
		for _, e := range bucket {
			m.insert(e.key, e.value)
		}
	}
}

func (m *ChainMap[K, V]) At(key K) (V, error) {
	bucket := m.buckets[m.bucketIndex(key)]
	for i := range bucket {
		if bucket[i].key == key {
			return bucket[i].value, nil
		}
	}

	var zero V
	return zero, ErrKeyNotFound
}

func (m *ChainMap[K, V]) Contains(key K) bool {
	bucket := m.buckets[m.bucketIndex(key)]
	for i := range bucket {
		if bucket[i].key == key {
			return true
		}
	}
	return false
}

func (m *ChainMap[K, V]) Remove(key K) (V, bool) {
	b := m.bucketIndex(key)
	bucket := m.buckets[b]
	for i := range bucket {
		if bucket[i].key == key {
			value := bucket[i].value
			m.buckets[b] = slices.Delete(bucket, i, i+1)
			m.size--
			return value, true
		}
	}

	var zero V
	return zero, false
}

func (m *ChainMap[K, V]) Index(key K) (V, error) {
	if v, err := m.At(key); err == nil {
		return v, nil
	}

	var zero V
	if err := m.Insert(key, zero); err != nil {
		return zero, err
	}
	return zero, nil
}

func (m *ChainMap[K, V]) Len() int { return m.size }

func (m *ChainMap[K, V]) Empty() bool { return m.size == 0 }

func (m *ChainMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

func (m *ChainMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

func (m *ChainMap[K, V]) BucketCount() int { return len(m.buckets) }
