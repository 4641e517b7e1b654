// Package bitmap implements the packed validity bitmap backing nullable
// columns. One bit per slot, set means valid. Bits at indexes >= Len are
// always zero so popcounts stay exact.
package bitmap

import "math/bits"

const wordBits = 64

// Bitmap is a resizable packed bitset.
type Bitmap struct {
	words  []uint64
	length int
}

// New returns a bitmap of n bits, all unset.
func New(n int) *Bitmap {
	return &Bitmap{
		words:  make([]uint64, (n+wordBits-1)/wordBits),
		length: n,
	}
}

// NewAllSet returns a bitmap of n bits, all set.
func NewAllSet(n int) *Bitmap {
	bm := New(n)
	bm.SetAll()
	return bm
}

// Len returns the number of bits.
func (bm *Bitmap) Len() int {
	return bm.length
}

// Get reports whether bit i is set.
func (bm *Bitmap) Get(i int) bool {
	return bm.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Set sets or clears bit i.
func (bm *Bitmap) Set(i int, v bool) {
	if v {
		bm.words[i/wordBits] |= 1 << (uint(i) % wordBits)
	} else {
		bm.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
	}
}

// Append grows the bitmap by one bit with the given value.
func (bm *Bitmap) Append(v bool) {
	if bm.length/wordBits >= len(bm.words) {
		bm.words = append(bm.words, 0)
	}
	bm.length++
	bm.Set(bm.length-1, v)
}

// SetAll sets every bit in [0, Len).
func (bm *Bitmap) SetAll() {
	for i := range bm.words {
		bm.words[i] = ^uint64(0)
	}
	bm.clearTail()
}

// Count returns the number of set bits.
func (bm *Bitmap) Count() int {
	total := 0
	for _, w := range bm.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Clone returns an independent copy.
func (bm *Bitmap) Clone() *Bitmap {
	cp := &Bitmap{
		words:  make([]uint64, len(bm.words)),
		length: bm.length,
	}
	copy(cp.words, bm.words)
	return cp
}

// And intersects bm with other in place. Lengths must match.
func (bm *Bitmap) And(other *Bitmap) {
	for i := range bm.words {
		bm.words[i] &= other.words[i]
	}
}

// Or unions bm with other in place. Lengths must match.
func (bm *Bitmap) Or(other *Bitmap) {
	for i := range bm.words {
		bm.words[i] |= other.words[i]
	}
}

// Words exposes the backing words for word-at-a-time kernels. The slice
// must not be resized by callers.
func (bm *Bitmap) Words() []uint64 {
	return bm.words
}

// clearTail zeroes the bits past length in the last word.
func (bm *Bitmap) clearTail() {
	if rem := bm.length % wordBits; rem != 0 && len(bm.words) > 0 {
		bm.words[len(bm.words)-1] &= (1 << uint(rem)) - 1
	}
}

// And returns the intersection of a and b as a new bitmap. Either argument
// may be nil, meaning "all set"; the result is nil only when both are.
func And(a, b *Bitmap) *Bitmap {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}
	out := a.Clone()
	out.And(b)
	return out
}
