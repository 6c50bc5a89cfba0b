package bitgrid

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// BitSet is a fixed-capacity bit container used as a slot's domain of
// candidate module ids. Capacity is set once at construction and never
// grows; every operation is total over [0, Capacity()).
type BitSet struct {
	bits     *bitset.BitSet
	capacity uint
}

// NewBitSet returns an empty BitSet with room for capacity bits.
func NewBitSet(capacity uint) *BitSet {
	return &BitSet{bits: bitset.New(capacity), capacity: capacity}
}

// Full returns a BitSet of the given capacity with bits [0, count) set.
// count must be <= capacity.
func Full(capacity, count uint) *BitSet {
	b := NewBitSet(capacity)
	for i := uint(0); i < count; i++ {
		b.bits.Set(i)
	}
	return b
}

// Capacity reports the fixed bit width of b.
func (b *BitSet) Capacity() uint {
	return b.capacity
}

// Set sets bit i.
func (b *BitSet) Set(i uint) {
	b.bits.Set(i)
}

// Clear clears bit i.
func (b *BitSet) Clear(i uint) {
	b.bits.Clear(i)
}

// Test reports whether bit i is set.
func (b *BitSet) Test(i uint) bool {
	return b.bits.Test(i)
}

// FindFirstSet returns the least index >= from that is set, or (0, false)
// if no such index exists.
func (b *BitSet) FindFirstSet(from uint) (uint, bool) {
	return b.bits.NextSet(from)
}

// PopCount returns the number of set bits.
func (b *BitSet) PopCount() uint {
	return b.bits.Count()
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	return b.bits.None()
}

// Union returns a new BitSet holding the elementwise union of b and other.
func (b *BitSet) Union(other *BitSet) *BitSet {
	return &BitSet{bits: b.bits.Union(other.bits), capacity: b.capacity}
}

// Intersection returns a new BitSet holding the elementwise intersection
// of b and other.
func (b *BitSet) Intersection(other *BitSet) *BitSet {
	return &BitSet{bits: b.bits.Intersection(other.bits), capacity: b.capacity}
}

// UnionInPlace ORs other into b without allocating.
func (b *BitSet) UnionInPlace(other *BitSet) {
	b.bits.InPlaceUnion(other.bits)
}

// IntersectInPlace ANDs other into b without allocating.
func (b *BitSet) IntersectInPlace(other *BitSet) {
	b.bits.InPlaceIntersection(other.bits)
}

// Equal reports whether b and other hold the same set bits.
func (b *BitSet) Equal(other *BitSet) bool {
	return b.bits.Equal(other.bits)
}

// Clone returns an independent copy of b.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{bits: b.bits.Clone(), capacity: b.capacity}
}

// Iterator returns a restartable ascending iterator over b's set bits.
// Mutating b after the iterator is taken is not observed by it.
func (b *BitSet) Iterator() *BitIterator {
	return &BitIterator{snapshot: b.Clone(), next: 0}
}

// RandomSetBit returns a uniformly chosen set bit of b using r, or
// (0, false) if b is empty.
func (b *BitSet) RandomSetBit(r *rand.Rand) (uint, bool) {
	n := b.PopCount()
	if n == 0 {
		return 0, false
	}
	k := r.Intn(int(n))
	it := b.Iterator()
	for i := 0; ; i++ {
		idx, ok := it.Next()
		if !ok {
			return 0, false
		}
		if i == k {
			return idx, true
		}
	}
}

// BitIterator yields the set bits of a BitSet snapshot in ascending order.
type BitIterator struct {
	snapshot *BitSet
	next     uint
}

// Next returns the next set index, or (0, false) when exhausted.
func (it *BitIterator) Next() (uint, bool) {
	idx, ok := it.snapshot.FindFirstSet(it.next)
	if !ok {
		return 0, false
	}
	it.next = idx + 1
	return idx, true
}
