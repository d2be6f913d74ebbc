package hashmap

import "errors"

var (
	// ErrKeyNotFound is returned by At for absent keys.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrCapacityExhausted is returned by CuckooMap.Insert when the bounded
	// rehash-retry budget runs out. It signals a hasher/seed pathology rather
	// than a normal capacity limit; the map should be discarded.
	ErrCapacityExhausted = errors.New("hashmap: rehash attempts exhausted")

	// ErrTableFull is returned when a probing insert scans every slot without
	// terminating. The resize trigger keeps this structurally unreachable; it
	// exists so an invariant violation fails loudly instead of looping.
	ErrTableFull = errors.New("hashmap: table full")
)
