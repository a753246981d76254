package pseudoknot

import (
	"encoding/binary"
	"math/bits"
)

// regionSet is a candidate solution: a set of regions encoded as a bitset
// over each region's index within its cluster. Clusters are small, so
// union, membership and structural deduplication stay cheap, and identical
// tied candidates collapse naturally when keyed by key().
type regionSet []uint64

// newRegionSet returns the empty set sized for a cluster of k regions.
func newRegionSet(k int) regionSet {
	return make(regionSet, (k+63)/64)
}

func (s regionSet) clone() regionSet {
	c := make(regionSet, len(s))
	copy(c, s)
	return c
}

// with returns a copy of s extended by region index i.
func (s regionSet) with(i int) regionSet {
	c := s.clone()
	c[i/64] |= 1 << uint(i%64)
	return c
}

func (s regionSet) has(i int) bool {
	return s[i/64]&(1<<uint(i%64)) != 0
}

// union returns a fresh set holding every member of s and t.
func (s regionSet) union(t regionSet) regionSet {
	c := s.clone()
	for w, word := range t {
		c[w] |= word
	}
	return c
}

func (s regionSet) empty() bool {
	for _, word := range s {
		if word != 0 {
			return false
		}
	}
	return true
}

// each calls fn with every member index in ascending order.
func (s regionSet) each(fn func(i int)) {
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			fn(w*64 + b)
			word &^= 1 << uint(b)
		}
	}
}

// key returns a stable byte-string identity for map deduplication and for
// ordering candidates deterministically (big-endian, high words first, so
// keys sort like the sets' numeric values).
func (s regionSet) key() string {
	buf := make([]byte, 8*len(s))
	for w := range s {
		binary.BigEndian.PutUint64(buf[8*w:], s[len(s)-1-w])
	}
	return string(buf)
}
