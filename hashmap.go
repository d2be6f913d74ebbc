// Package hashmap provides three in-memory map implementations sharing one
// keyed-hashing abstraction: separate chaining (ChainMap), linear probing
// with tombstones (ProbeMap) and cuckoo hashing with bounded eviction and
// adaptive rehashing (CuckooMap).
//
// All variants are single-threaded: concurrent use of one instance without
// external synchronization is undefined.
package hashmap

const (
	// DefaultCapacity is used by constructors given a capacity <= 0.
	DefaultCapacity = 16

	maxLoadChain  = 0.75
	maxLoadProbe  = 0.7
	maxLoadCuckoo = 0.5

	maxRehashAttempts = 8
)

// Map is the operation set shared by all three implementations. The benchmark
// harness consumes maps exclusively through this interface.
type Map[K comparable, V any] interface {
	// Insert upserts key. Only CuckooMap can fail (ErrCapacityExhausted);
	// ProbeMap returns ErrTableFull on a defensive invariant violation.
	Insert(key K, value V) error
	// At returns the value stored under key, or ErrKeyNotFound.
	At(key K) (V, error)
	// Contains reports whether key is present.
	Contains(key K) bool
	// Remove deletes key and returns the removed value; absence is a normal
	// outcome, not an error.
	Remove(key K) (V, bool)
	// Index returns the value stored under key, inserting the zero value
	// first if key is absent.
	Index(key K) (V, error)

	Len() int
	Empty() bool
	Clear()
	// LoadFactor is Len divided by the per-table capacity.
	LoadFactor() float64
	// BucketCount is the total slot count across all tables.
	BucketCount() int
}

var (
	_ Map[int, int] = (*ChainMap[int, int])(nil)
	_ Map[int, int] = (*ProbeMap[int, int])(nil)
	_ Map[int, int] = (*CuckooMap[int, int])(nil)
)
