package bitgrid

import (
	"math/rand"
	"testing"
)

func TestBitSet_SetTestClear(t *testing.T) {
	b := NewBitSet(8)
	if !b.IsEmpty() {
		t.Fatalf("new bitset should be empty")
	}
	b.Set(3)
	if !b.Test(3) {
		t.Errorf("Test(3) = false after Set(3)")
	}
	if b.Test(4) {
		t.Errorf("Test(4) = true before Set(4)")
	}
	b.Clear(3)
	if b.Test(3) {
		t.Errorf("Test(3) = true after Clear(3)")
	}
}

func TestBitSet_PopCount(t *testing.T) {
	b := Full(16, 5)
	if got := b.PopCount(); got != 5 {
		t.Errorf("PopCount() = %d; want 5", got)
	}
	for i := uint(0); i < 5; i++ {
		if !b.Test(i) {
			t.Errorf("Full(16,5) missing bit %d", i)
		}
	}
	if b.Test(5) {
		t.Errorf("Full(16,5) set bit 5; want unset")
	}
}

func TestBitSet_FindFirstSet(t *testing.T) {
	b := NewBitSet(32)
	b.Set(2)
	b.Set(9)

	cases := []struct {
		from int
		want uint
		ok   bool
	}{
		{0, 2, true},
		{3, 9, true},
		{10, 0, false},
	}
	for _, tc := range cases {
		got, ok := b.FindFirstSet(uint(tc.from))
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("FindFirstSet(%d) = (%d,%v); want (%d,%v)", tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBitSet_UnionIntersection(t *testing.T) {
	a := NewBitSet(8)
	a.Set(1)
	a.Set(2)
	b := NewBitSet(8)
	b.Set(2)
	b.Set(3)

	u := a.Union(b)
	for _, bit := range []uint{1, 2, 3} {
		if !u.Test(bit) {
			t.Errorf("Union missing bit %d", bit)
		}
	}

	i := a.Intersection(b)
	if i.PopCount() != 1 || !i.Test(2) {
		t.Errorf("Intersection = %v; want only bit 2", i)
	}

	// originals must be untouched by the copying variants.
	if a.Test(3) || b.Test(1) {
		t.Errorf("Union/Intersection mutated an operand")
	}
}

func TestBitSet_InPlaceOps(t *testing.T) {
	a := NewBitSet(8)
	a.Set(1)
	b := NewBitSet(8)
	b.Set(1)
	b.Set(4)

	a.UnionInPlace(b)
	if a.PopCount() != 2 || !a.Test(1) || !a.Test(4) {
		t.Errorf("UnionInPlace result = %v; want bits {1,4}", a)
	}

	c := NewBitSet(8)
	c.Set(1)
	c.Set(4)
	c.Set(5)
	a.IntersectInPlace(c)
	if a.PopCount() != 2 || !a.Test(1) || !a.Test(4) {
		t.Errorf("IntersectInPlace result = %v; want bits {1,4}", a)
	}
}

func TestBitSet_Equal(t *testing.T) {
	a := Full(8, 3)
	b := Full(8, 3)
	if !a.Equal(b) {
		t.Errorf("two Full(8,3) bitsets should be equal")
	}
	b.Set(5)
	if a.Equal(b) {
		t.Errorf("bitsets differ after mutating one")
	}
}

func TestBitSet_CloneIsIndependent(t *testing.T) {
	a := NewBitSet(8)
	a.Set(1)
	clone := a.Clone()
	clone.Set(2)
	if a.Test(2) {
		t.Errorf("mutating clone affected original")
	}
}

func TestBitSet_IteratorAscendingAndRestartable(t *testing.T) {
	b := NewBitSet(16)
	for _, bit := range []uint{5, 1, 9, 1} {
		b.Set(bit)
	}
	want := []uint{1, 5, 9}

	for attempt := 0; attempt < 2; attempt++ {
		it := b.Iterator()
		var got []uint
		for {
			idx, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, idx)
		}
		if len(got) != len(want) {
			t.Fatalf("attempt %d: iterator yielded %v; want %v", attempt, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("attempt %d: iterator[%d] = %d; want %d", attempt, i, got[i], want[i])
			}
		}
	}
}

func TestBitSet_RandomSetBit(t *testing.T) {
	b := NewBitSet(8)
	if _, ok := b.RandomSetBit(rand.New(rand.NewSource(1))); ok {
		t.Errorf("RandomSetBit on empty set should report !ok")
	}

	b.Set(2)
	b.Set(6)
	r := rand.New(rand.NewSource(1))
	seen := map[uint]bool{}
	for i := 0; i < 50; i++ {
		bit, ok := b.RandomSetBit(r)
		if !ok {
			t.Fatalf("RandomSetBit reported !ok on non-empty set")
		}
		if bit != 2 && bit != 6 {
			t.Fatalf("RandomSetBit returned %d; want 2 or 6", bit)
		}
		seen[bit] = true
	}
	if len(seen) != 2 {
		t.Errorf("RandomSetBit over 50 draws only saw %v; want both candidates", seen)
	}
}
