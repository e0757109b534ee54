package typeshape

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a structural hash consistent with Equal: Equal descriptors
// hash identically, with record field order and union member order folded
// away. Derived descriptors are cheap to re-hash because children hash
// independently.
func Hash(d Descriptor) uint64 {
	if d == nil {
		return 0
	}
	h := xxhash.New()
	writeByte(h, byte(d.Kind()))
	switch x := d.(type) {
	case *Primitive:
		_, _ = h.WriteString(x.name)
		if x.isLit {
			writeByte(h, 1)
			_, _ = h.WriteString(fmt.Sprintf("%T:%v", x.literal, x.literal))
		}
	case *Record:
		// XOR of per-field hashes keeps the result order-insensitive.
		var acc uint64
		for _, f := range x.fields {
			fh := xxhash.New()
			_, _ = fh.WriteString(f.Name)
			flags := byte(0)
			if f.Optional {
				flags |= 1
			}
			if f.Readonly {
				flags |= 2
			}
			writeByte(fh, flags)
			writeU64(fh, Hash(f.Value))
			acc ^= fh.Sum64()
		}
		writeU64(h, acc)
		writeU64(h, uint64(len(x.fields)))
	case *Tuple:
		for _, e := range x.elems {
			writeU64(h, Hash(e))
		}
	case *Array:
		writeU64(h, Hash(x.elem))
	case *Union:
		var acc uint64
		for _, m := range x.members {
			acc ^= Hash(m)
		}
		writeU64(h, acc)
		writeU64(h, uint64(len(x.members)))
	case *Signature:
		for _, p := range x.params {
			writeU64(h, Hash(p))
		}
		writeByte(h, 0xff)
		writeU64(h, Hash(x.result))
		if x.async {
			writeByte(h, 1)
		}
	case *Tagged:
		_, _ = h.WriteString(x.token)
		writeU64(h, Hash(x.base))
	}
	return h.Sum64()
}

func writeByte(h *xxhash.Digest, b byte) { _, _ = h.Write([]byte{b}) }

func writeU64(h *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

// Interner deduplicates structurally equal descriptors so that repeated
// derivations share one value. Purely an optimization: interning never
// changes the meaning of a descriptor, only its identity.
type Interner struct {
	mu      sync.RWMutex
	buckets map[uint64][]Descriptor
}

// NewInterner returns an empty interner. The zero value is not usable.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[uint64][]Descriptor)}
}

// Intern returns the canonical descriptor structurally equal to d, storing d
// as the canonical value when none exists yet.
func (in *Interner) Intern(d Descriptor) Descriptor {
	if d == nil {
		return nil
	}
	h := Hash(d)
	in.mu.RLock()
	for _, c := range in.buckets[h] {
		if Equal(c, d) {
			in.mu.RUnlock()
			return c
		}
	}
	in.mu.RUnlock()
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, c := range in.buckets[h] {
		if Equal(c, d) {
			return c
		}
	}
	in.buckets[h] = append(in.buckets[h], d)
	return d
}
