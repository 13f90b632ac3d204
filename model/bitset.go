package model

import "math/bits"

// wordBits is the number of cells packed into one word of a bitSet
const wordBits = 32

// bitSet is a fixed-length set of bits packed into uint32 words
type bitSet struct {
	length int
	words  []uint32
}

// newBitSet allocates a bitSet holding n cleared bits
func newBitSet(n int) *bitSet {
	return &bitSet{
		length: n,
		words:  make([]uint32, (n+wordBits-1)/wordBits),
	}
}

// Len returns the number of bits in the set
func (b *bitSet) Len() int {
	return b.length
}

// Get reports whether bit i is set
func (b *bitSet) Get(i int) bool {
	return b.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Set sets bit i to value
func (b *bitSet) Set(i int, value bool) {
	mask := uint32(1) << (uint(i) % wordBits)
	if value {
		b.words[i/wordBits] |= mask
	} else {
		b.words[i/wordBits] &^= mask
	}
}

// Toggle flips bit i
func (b *bitSet) Toggle(i int) {
	b.words[i/wordBits] ^= 1 << (uint(i) % wordBits)
}

// Clear unsets every bit
func (b *bitSet) Clear() {
	clear(b.words)
}

// CopyFrom overwrites b with the contents of src, both sets must have the same length
func (b *bitSet) CopyFrom(src *bitSet) {
	copy(b.words, src.words)
}

// Count returns the number of set bits
func (b *bitSet) Count() (count int) {
	for _, w := range b.words {
		count += bits.OnesCount32(w)
	}
	return
}

// Words exposes the backing words without copying
func (b *bitSet) Words() []uint32 {
	return b.words
}
