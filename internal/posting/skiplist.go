// Package posting implements the posting-list data structures shared by all
// three index layouts: a term's occurrences across documents, stored as
// (id, tf) pairs in strictly ascending id order.
//
// The ordered-insert structure below is adapted from a skip list originally
// built to track token *positions* (docid, offset) for phrase search. The
// posting lists in this package never carry positions (phrase and proximity
// search exist only in the root package's positional index), so the
// structure has been narrowed to a single ordered key (the document
// identifier) with an accumulating term-frequency count at each node, and the
// tower-pointer binary serialization that used to reconstruct a linked
// position graph has been dropped in favor of a flat two-array encoding (see
// codec.go) — once a list is fully built there is nothing left to do with it
// but walk it front to back in order, so the skip list's express lanes only
// earn their keep during construction.
package posting

import (
	"cmp"
	"math/rand"
)

const maxHeight = 32

type node[K cmp.Ordered] struct {
	id    K
	tf    int
	tower [maxHeight]*node[K]
}

// Builder accumulates postings for a single term while a block of
// (id, term) pairs is being inverted. Documents may arrive in any order;
// Add aggregates repeated ids by incrementing tf, exactly as the in-memory
// indexer's Counter pass does in the reference implementation.
type Builder[K cmp.Ordered] struct {
	head   *node[K]
	height int
	count  int
	rng    *rand.Rand
}

// NewBuilder returns an empty posting-list builder.
func NewBuilder[K cmp.Ordered](rng *rand.Rand) *Builder[K] {
	return &Builder[K]{head: &node[K]{}, height: 1, rng: rng}
}

// Add records one more occurrence of id, creating the entry with tf=1 the
// first time id is seen and incrementing tf on every subsequent call.
func (b *Builder[K]) Add(id K) {
	found, journey := b.search(id)
	if found != nil {
		found.tf++
		return
	}

	height := b.randomHeight()
	n := &node[K]{id: id, tf: 1}
	for level := 0; level < height; level++ {
		pred := journey[level]
		if pred == nil {
			pred = b.head
		}
		n.tower[level] = pred.tower[level]
		pred.tower[level] = n
	}
	if height > b.height {
		b.height = height
	}
	b.count++
}

// AddWithTF is Add generalized to an explicit, possibly >1 increment — used
// when folding an already-aggregated posting (e.g. a SPIMI run's line) into
// a builder rather than replaying individual token occurrences.
func (b *Builder[K]) AddWithTF(id K, tf int) {
	found, journey := b.search(id)
	if found != nil {
		found.tf += tf
		return
	}

	height := b.randomHeight()
	n := &node[K]{id: id, tf: tf}
	for level := 0; level < height; level++ {
		pred := journey[level]
		if pred == nil {
			pred = b.head
		}
		n.tower[level] = pred.tower[level]
		pred.tower[level] = n
	}
	if height > b.height {
		b.height = height
	}
	b.count++
}

func (b *Builder[K]) search(key K) (*node[K], [maxHeight]*node[K]) {
	var journey [maxHeight]*node[K]
	current := b.head
	for level := b.height - 1; level >= 0; level-- {
		for current.tower[level] != nil && current.tower[level].id < key {
			current = current.tower[level]
		}
		journey[level] = current
	}
	next := current.tower[0]
	if next != nil && next.id == key {
		return next, journey
	}
	return nil, journey
}

func (b *Builder[K]) randomHeight() int {
	height := 1
	for b.rng.Float64() < 0.5 && height < maxHeight {
		height++
	}
	return height
}

// Build flattens the builder into an immutable, id-ascending List.
func (b *Builder[K]) Build() *List[K] {
	ids := make([]K, 0, b.count)
	tfs := make([]int, 0, b.count)
	for n := b.head.tower[0]; n != nil; n = n.tower[0] {
		ids = append(ids, n.id)
		tfs = append(tfs, n.tf)
	}
	return &List[K]{ids: ids, tfs: tfs}
}
