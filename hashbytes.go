package hashmap

import (
	"encoding/binary"
	"math"
	"reflect"
	"unsafe"
)

// AppendKeyBytes appends the canonical byte representation of key to dst and
// returns the extended slice. The representation is a pure function of the
// key's value, never of its storage address: equal keys always yield identical
// bytes. Fixed-width numeric keys contribute their little-endian encoding,
// strings contribute their raw contents and the empty string contributes
// nothing.
//
// Types not covered by the builtin cases go through a reflection fallback.
// Derived numeric and string types keep the value semantics above; remaining
// comparable kinds (arrays, padding-free structs of fixed-width fields) hash
// by their raw in-memory representation and must not contain pointers or
// strings.
func AppendKeyBytes[K comparable](dst []byte, key K) []byte {
	switch k := any(key).(type) {
	case string:
		return append(dst, k...)
	case int:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case int8:
		return append(dst, byte(k))
	case int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(k))
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(k))
	case int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case uint:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case uint8:
		return append(dst, k)
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, k)
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, k)
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, k)
	case uintptr:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(k))
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(k))
	default:
		return appendReflected(dst, key)
	}
}

func appendReflected[K comparable](dst []byte, key K) []byte {
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.String:
		return append(dst, rv.String()...)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(dst, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(rv.Float()))
	case reflect.Bool:
		if rv.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	default:
		// Raw representation; only valid for trivially-copyable keys.
		return append(dst, unsafe.Slice((*byte)(unsafe.Pointer(&key)), unsafe.Sizeof(key))...)
	}
}

// AppendSliceBytes appends the concatenated raw representations of the
// elements of s. The result is canonical only for fixed-width element types.
func AppendSliceBytes[E any](dst []byte, s []E) []byte {
	if len(s) == 0 {
		return dst
	}
	size := unsafe.Sizeof(s[0])
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*size)
	return append(dst, raw...)
}
