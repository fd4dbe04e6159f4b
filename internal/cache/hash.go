package cache

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// AppendKey appends a stable byte encoding of key to buf. Fixed-width keys use
// their little-endian form, strings are length-prefixed, anything else falls
// back to its %v rendering.
func AppendKey[K cmp.Ordered](buf []byte, key K) []byte {
	switch k := any(key).(type) {
	case string:
		buf = binary.AppendUvarint(buf, uint64(len(k)))
		return append(buf, k...)
	case int:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int32:
		return binary.LittleEndian.AppendUint32(buf, uint32(k))
	case uint:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint64:
		return binary.LittleEndian.AppendUint64(buf, k)
	case uint32:
		return binary.LittleEndian.AppendUint32(buf, k)
	case float64:
		if k == 0 {
			k = 0 // -0 == 0
		}
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(k))
	case float32:
		if k == 0 {
			k = 0
		}
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(k))
	default:
		return fmt.Appendf(buf, "%v\x00", k)
	}
}

// HashKey hashes an ordered key with xxhash, folded to 32 bits for freelru.
func HashKey[K cmp.Ordered](key K) uint32 {
	var scratch [16]byte
	var h uint64
	if s, ok := any(key).(string); ok {
		h = xxhash.Sum64String(s)
	} else {
		h = xxhash.Sum64(AppendKey(scratch[:0], key))
	}
	return uint32(h ^ (h >> 32))
}
