package store

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the entries in order. Equal
// stores hash equal within one process; the seed is not stable across
// processes. The section index is not part of the hash.
func (s *Store) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	for _, k := range s.keys {
		binary.LittleEndian.PutUint64(b[:], maphash.String(hashSeed, k))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], s.vals[k].hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

func (v Value) hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(v.Kind))
	switch v.Kind {
	case ScalarKind:
		h.WriteString(v.Str)
	case ListKind:
		var b [8]byte
		for _, e := range v.Elems {
			// Combine element hashes order-dependently.
			binary.LittleEndian.PutUint64(b[:], maphash.String(hashSeed, e))
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
