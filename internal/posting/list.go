package posting

import "cmp"

// Entry is a single (id, term-frequency) pair.
type Entry[K cmp.Ordered] struct {
	ID K
	TF int
}

// List is an immutable, id-ascending posting list. It is deliberately a pair
// of parallel slices rather than a slice of structs or a linked structure:
// once built, nothing but sequential and positional access is ever needed
// again, and two flat arrays keep the merge and serialization paths simple.
type List[K cmp.Ordered] struct {
	ids []K
	tfs []int
}

// NewList wraps already id-ascending, duplicate-free ids/tfs slices of equal
// length without copying. Callers that cannot already guarantee ascending
// order should go through Builder instead.
func NewList[K cmp.Ordered](ids []K, tfs []int) *List[K] {
	return &List[K]{ids: ids, tfs: tfs}
}

// Len reports the number of documents the term occurs in (df(t)).
func (l *List[K]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ids)
}

// At returns the i'th posting in ascending id order.
func (l *List[K]) At(i int) Entry[K] {
	return Entry[K]{ID: l.ids[i], TF: l.tfs[i]}
}

// IDs exposes the ascending id slice, e.g. for building a roaring bitmap.
func (l *List[K]) IDs() []K { return l.ids }

// TF returns the term frequency for id, and whether id occurs at all. It
// performs a binary search since ids are guaranteed ascending.
func (l *List[K]) TF(id K) (int, bool) {
	lo, hi := 0, len(l.ids)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case l.ids[mid] == id:
			return l.tfs[mid], true
		case l.ids[mid] < id:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// MergeSorted merges any number of already id-ascending lists into one,
// summing tf when the same id appears in more than one input list. This is
// the aggregation rule the SPIMI merge phase applies when several run files
// hold postings for the same term.
func MergeSorted[K cmp.Ordered](lists ...*List[K]) *List[K] {
	idx := make([]int, len(lists))
	totalCap := 0
	for _, l := range lists {
		totalCap += l.Len()
	}
	ids := make([]K, 0, totalCap)
	tfs := make([]int, 0, totalCap)

	for {
		has := -1
		var min K
		for i, l := range lists {
			if idx[i] >= l.Len() {
				continue
			}
			id := l.ids[idx[i]]
			if has == -1 || id < min {
				has = i
				min = id
			}
		}
		if has == -1 {
			break
		}

		sum := 0
		for i, l := range lists {
			if idx[i] < l.Len() && l.ids[idx[i]] == min {
				sum += l.tfs[idx[i]]
				idx[i]++
			}
		}
		ids = append(ids, min)
		tfs = append(tfs, sum)
	}

	return &List[K]{ids: ids, tfs: tfs}
}
