package posting

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestBuilder_AddAggregatesTF(t *testing.T) {
	b := NewBuilder[int](rand.New(rand.NewSource(1)))
	b.Add(3)
	b.Add(1)
	b.Add(3)
	b.Add(2)
	b.Add(1)
	b.Add(1)

	l := b.Build()
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	tests := []struct {
		id     int
		wantTF int
	}{
		{1, 3},
		{2, 1},
		{3, 2},
	}
	for _, tt := range tests {
		tf, ok := l.TF(tt.id)
		if !ok {
			t.Errorf("TF(%d) not found", tt.id)
		}
		if tf != tt.wantTF {
			t.Errorf("TF(%d) = %d, want %d", tt.id, tf, tt.wantTF)
		}
	}
}

func TestBuilder_BuildIsAscending(t *testing.T) {
	b := NewBuilder[int](rand.New(rand.NewSource(7)))
	for _, id := range []int{5, 1, 9, 3, 7, 1, 5} {
		b.Add(id)
	}
	l := b.Build()
	for i := 1; i < l.Len(); i++ {
		if l.At(i-1).ID >= l.At(i).ID {
			t.Fatalf("postings not strictly ascending at %d: %v >= %v", i, l.At(i-1).ID, l.At(i).ID)
		}
	}
}

func TestMergeSorted_SumsTFOnCollision(t *testing.T) {
	a := NewList([]int{1, 3, 5}, []int{1, 2, 1})
	b := NewList([]int{2, 3, 6}, []int{4, 5, 1})

	merged := MergeSorted(a, b)
	want := map[int]int{1: 1, 2: 4, 3: 7, 5: 1, 6: 1}
	if merged.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", merged.Len(), len(want))
	}
	for id, wantTF := range want {
		tf, ok := merged.TF(id)
		if !ok || tf != wantTF {
			t.Errorf("TF(%d) = %d,%v want %d", id, tf, ok, wantTF)
		}
	}
	for i := 1; i < merged.Len(); i++ {
		if merged.At(i-1).ID >= merged.At(i).ID {
			t.Fatalf("merged postings not ascending at %d", i)
		}
	}
}

func TestIntKeyedCodecRoundTrip(t *testing.T) {
	l := NewList([]int{1, 2, 9}, []int{3, 1, 4})
	var buf bytes.Buffer
	if err := EncodeIntKeyed(&buf, "banana", l); err != nil {
		t.Fatalf("EncodeIntKeyed: %v", err)
	}

	term, got, err := DecodeIntKeyed(&buf)
	if err != nil {
		t.Fatalf("DecodeIntKeyed: %v", err)
	}
	if term != "banana" {
		t.Errorf("term = %q, want banana", term)
	}
	if got.Len() != l.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), l.Len())
	}
	for i := 0; i < l.Len(); i++ {
		if got.At(i) != l.At(i) {
			t.Errorf("At(%d) = %+v, want %+v", i, got.At(i), l.At(i))
		}
	}
}

func TestStringKeyedCodecRoundTrip(t *testing.T) {
	l := NewList([]string{"D1", "D2"}, []int{2, 5})
	var buf bytes.Buffer
	if err := EncodeStringKeyed(&buf, "apple", l); err != nil {
		t.Fatalf("EncodeStringKeyed: %v", err)
	}

	term, got, err := DecodeStringKeyed(&buf)
	if err != nil {
		t.Fatalf("DecodeStringKeyed: %v", err)
	}
	if term != "apple" {
		t.Errorf("term = %q, want apple", term)
	}
	for i := 0; i < l.Len(); i++ {
		if got.At(i) != l.At(i) {
			t.Errorf("At(%d) = %+v, want %+v", i, got.At(i), l.At(i))
		}
	}
}
