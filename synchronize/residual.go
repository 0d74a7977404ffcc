package synchronize

import (
	"encoding/binary"
	"sync"

	"github.com/katalvlaran/wfst/fst"
)

// residual is a sequence of labels still owed to one tape before it
// catches up with the other. Residual values are interned: two equal
// label sequences always resolve to the same residualID, so Element
// equality (and hence state identity) reduces to plain integer
// comparison.
type residual []fst.Label

// residualID is the id a residualInterner assigns to one distinct
// residual value.
type residualID int32

// residualInterner maps residual label sequences to stable ids,
// content-addressed the same way PathInterner
// (other_examples/Sumatoshi-tech-codefang__path_interner.go) maps path
// strings to PathIDs: a map keyed by an encoded string plus a reverse
// slice, guarded by one mutex, ids assigned sequentially so the
// reverse slice can be indexed directly. Using Go-owned slices and
// strings here (rather than OpenFST's hash-set of heap-allocated
// string pointers) leaves the memory to the garbage collector. An
// interned residual is kept for the interner's whole lifetime and is
// reclaimed only once the owning delayed Fst and its copies are
// unreachable.
type residualInterner struct {
	mu  sync.Mutex
	ids map[string]residualID
	rev []residual
}

func newResidualInterner() *residualInterner {
	return &residualInterner{ids: make(map[string]residualID)}
}

// intern returns the id for r, assigning a new one on first sight. r
// must not be mutated by the caller afterward.
func (ri *residualInterner) intern(r residual) residualID {
	key := encodeResidual(r)

	ri.mu.Lock()
	defer ri.mu.Unlock()

	if id, ok := ri.ids[key]; ok {
		return id
	}
	id := residualID(len(ri.rev))
	ri.rev = append(ri.rev, r)
	ri.ids[key] = id

	return id
}

// lookup returns the residual interned at id.
func (ri *residualInterner) lookup(id residualID) residual {
	ri.mu.Lock()
	defer ri.mu.Unlock()

	return ri.rev[id]
}

// encodeResidual produces a comparable map key for r, since label
// slices are not themselves comparable in Go.
func encodeResidual(r residual) string {
	buf := make([]byte, 8*len(r))
	for i, l := range r {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(l))
	}

	return string(buf)
}

// car returns the first label of s, or l if s is empty. Mirrors
// SynchronizeFstImpl::Car.
func car(s residual, l fst.Label) fst.Label {
	if len(s) > 0 {
		return s[0]
	}

	return l
}

// cdr computes the residual left after removing the first label of s,
// then appending l if s was non-empty. Mirrors
// SynchronizeFstImpl::Cdr.
func cdr(ri *residualInterner, s residual, l fst.Label) residualID {
	r := make(residual, 0, len(s))
	if len(s) > 0 {
		r = append(r, s[1:]...)
		if l != fst.Epsilon {
			r = append(r, l)
		}
	}

	return ri.intern(r)
}

// concat appends l to s (if l is not the epsilon sentinel). Mirrors
// SynchronizeFstImpl::Concat.
func concat(ri *residualInterner, s residual, l fst.Label) residualID {
	r := make(residual, len(s), len(s)+1)
	copy(r, s)
	if l != fst.Epsilon {
		r = append(r, l)
	}

	return ri.intern(r)
}

// empty reports whether the concatenation of s and l would be empty.
// Mirrors SynchronizeFstImpl::Empty.
func empty(s residual, l fst.Label) bool {
	if len(s) == 0 {
		return l == fst.Epsilon
	}

	return false
}
