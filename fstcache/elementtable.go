package fstcache

import (
	"sync"

	"github.com/katalvlaran/wfst/fst"
)

// ElementTable interns algorithm-specific composite descriptors (e.g.
// synchronize's (StateId, residual, residual) triples) to StateId,
// assigning a new id
// the first time a given descriptor is seen and returning the existing
// one thereafter. This is the Go equivalent of the reference
// implementation's unordered_map<Element, StateId> plus a
// vector<Element> reverse map, generalized across every algorithm that
// needs this exact pattern instead of being duplicated per package.
type ElementTable[E comparable] struct {
	mu     sync.Mutex
	toID   map[E]fst.StateId
	fromID []E
}

// NewElementTable returns an empty ElementTable.
func NewElementTable[E comparable]() *ElementTable[E] {
	return &ElementTable[E]{toID: make(map[E]fst.StateId)}
}

// FindOrCreate returns the StateId already assigned to elem, or
// allocates and returns a new one.
func (t *ElementTable[E]) FindOrCreate(elem E) fst.StateId {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.toID[elem]; ok {
		return id
	}
	id := fst.StateId(len(t.fromID))
	t.fromID = append(t.fromID, elem)
	t.toID[elem] = id

	return id
}

// Element returns the descriptor interned at id.
func (t *ElementTable[E]) Element(id fst.StateId) E {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.fromID[id]
}

// Size returns the number of distinct elements interned so far.
func (t *ElementTable[E]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.fromID)
}
